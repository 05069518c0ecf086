package lights

import (
	"math"

	"github.com/EpikSushi21/go-phong-raytracer/pkg/core"
	"github.com/EpikSushi21/go-phong-raytracer/pkg/material"
)

// Light interface for light sources contributing local illumination
type Light interface {
	// LocalIllumination returns the light's ambient+diffuse+specular
	// contribution at a shaded point. eyeVector is the unit direction from
	// the point toward the viewer. Returns zero when the light is disabled
	// or the point falls outside a variant-specific constraint (e.g. a
	// spot light's cone).
	LocalIllumination(eyeVector, point, normal core.Vec3, mat material.Material, uv core.Vec2) core.Vec3

	// LightVector returns the unit direction from the point toward the
	// light, or a constant direction for directional lights
	LightVector(point core.Vec3) core.Vec3

	// LightDistance returns the Euclidean distance from the point to the
	// light, or +Inf for lights with no position
	LightDistance(point core.Vec3) float64
}

// Source holds the color terms and the enabled switch shared by every
// light variant
type Source struct {
	AmbientColor  core.Vec3 // Ambient color and intensity of the light
	DiffuseColor  core.Vec3 // Diffuse color and intensity of the light
	SpecularColor core.Vec3 // Specular color and intensity of the light
	Enabled       bool      // Shading is performed only when true
}

// NewSource creates the shared color terms with the given diffuse color,
// no ambient term and a white specular term
func NewSource(diffuseColor core.Vec3) Source {
	return Source{
		DiffuseColor:  diffuseColor,
		SpecularColor: core.NewVec3(1, 1, 1),
		Enabled:       true,
	}
}

// phong evaluates the Phong reflection terms for a light vector at a
// shaded point. lightVector and eyeVector must be unit vectors.
func (s Source) phong(lightVector, eyeVector, normal core.Vec3, mat material.Material) core.Vec3 {
	total := s.AmbientColor.MultiplyVec(mat.Ambient())

	nDotL := normal.Dot(lightVector)
	if nDotL <= 0 {
		return total
	}

	total = total.Add(s.DiffuseColor.MultiplyVec(mat.Diffuse()).Multiply(nDotL))

	// reflect(-l, n) = 2(n.l)n - l, pointing away from the surface
	reflected := lightVector.Negate().Reflect(normal)
	rDotE := reflected.Dot(eyeVector)
	if rDotE > 0 {
		total = total.Add(s.SpecularColor.MultiplyVec(mat.Specular()).Multiply(math.Pow(rDotE, mat.Shininess())))
	}

	return total
}
