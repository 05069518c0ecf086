package lights

import (
	"math"

	"github.com/EpikSushi21/go-phong-raytracer/pkg/core"
	"github.com/EpikSushi21/go-phong-raytracer/pkg/material"
)

// AmbientLight simulates bounced light scattered so much that its source
// direction is lost. It contributes a flat term only; keep the intensity
// low to avoid washing out diffuse and specular effects from the other
// variants.
type AmbientLight struct {
	Source
}

// NewAmbientLight creates an ambient light with the given color
func NewAmbientLight(color core.Vec3) *AmbientLight {
	return &AmbientLight{Source: NewSource(color)}
}

// LocalIllumination returns the flat ambient term
func (l *AmbientLight) LocalIllumination(eyeVector, point, normal core.Vec3, mat material.Material, uv core.Vec2) core.Vec3 {
	if !l.Enabled {
		return core.Vec3{}
	}
	return l.DiffuseColor.MultiplyVec(mat.Ambient())
}

// LightVector returns the zero vector; ambient light has no direction
func (l *AmbientLight) LightVector(point core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// LightDistance returns +Inf; ambient light has no position
func (l *AmbientLight) LightDistance(point core.Vec3) float64 {
	return math.Inf(1)
}
