package material

import (
	"github.com/EpikSushi21/go-phong-raytracer/pkg/core"
)

// Material describes the reflectance terms consumed by the shading model.
// The tracer itself reads only the emissive term; the ambient, diffuse and
// specular terms are read inside each light's illumination computation.
type Material interface {
	Emissive() core.Vec3
	Ambient() core.Vec3
	Diffuse() core.Vec3
	Specular() core.Vec3
	Shininess() float64
}

// Phong is a plain Phong material with constant reflectance terms
type Phong struct {
	EmissiveColor core.Vec3
	AmbientColor  core.Vec3
	DiffuseColor  core.Vec3
	SpecularColor core.Vec3
	Shine         float64
}

// NewPhong creates a material with the given diffuse color, a matching
// ambient term, a white specular highlight and no emission
func NewPhong(diffuse core.Vec3, shininess float64) Phong {
	return Phong{
		AmbientColor:  diffuse,
		DiffuseColor:  diffuse,
		SpecularColor: core.NewVec3(1, 1, 1),
		Shine:         shininess,
	}
}

func (m Phong) Emissive() core.Vec3 { return m.EmissiveColor }
func (m Phong) Ambient() core.Vec3  { return m.AmbientColor }
func (m Phong) Diffuse() core.Vec3  { return m.DiffuseColor }
func (m Phong) Specular() core.Vec3 { return m.SpecularColor }
func (m Phong) Shininess() float64  { return m.Shine }
