package lights

import (
	"github.com/EpikSushi21/go-phong-raytracer/pkg/core"
	"github.com/EpikSushi21/go-phong-raytracer/pkg/material"
)

// SpotLight simulates a positional light restricted to a cone. Points
// inside the cone receive the positional contribution scaled by a linear
// falloff from full intensity on the axis to zero at the edge; points
// outside receive nothing.
type SpotLight struct {
	PositionalLight
	SpotDirection core.Vec3 // Unit vector in the direction the light is shining
	CutoffCosine  float64   // Cosine of the half-angle of the cone
}

// NewSpotLight creates a spot light at the given position shining along
// direction, which is normalized at construction. cutoffCosine is the
// cosine of the half-angle of the beam.
func NewSpotLight(position, direction core.Vec3, cutoffCosine float64, color core.Vec3) *SpotLight {
	return &SpotLight{
		PositionalLight: *NewPositionalLight(position, color),
		SpotDirection:   direction.Normalize(),
		CutoffCosine:    cutoffCosine,
	}
}

// LocalIllumination returns the positional Phong contribution scaled by
// the cone falloff. The cone boundary is exclusive: a point whose angle
// cosine equals the cutoff receives nothing.
func (l *SpotLight) LocalIllumination(eyeVector, point, normal core.Vec3, mat material.Material, uv core.Vec2) core.Vec3 {
	if !l.Enabled {
		return core.Vec3{}
	}

	negLightVec := l.LightVector(point).Negate()
	cosAngle := negLightVec.Dot(l.SpotDirection)
	if cosAngle <= l.CutoffCosine {
		return core.Vec3{}
	}

	falloff := 1 - (1-cosAngle)/(1-l.CutoffCosine)
	return l.PositionalLight.LocalIllumination(eyeVector, point, normal, mat, uv).Multiply(falloff)
}
