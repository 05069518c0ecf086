package lights

import (
	"github.com/EpikSushi21/go-phong-raytracer/pkg/core"
	"github.com/EpikSushi21/go-phong-raytracer/pkg/material"
)

// PositionalLight simulates a light source with an explicit position that
// shines equally in all directions
type PositionalLight struct {
	Source
	Position core.Vec3 // Light position in world coordinates
}

// NewPositionalLight creates a positional light at the given position
func NewPositionalLight(position, color core.Vec3) *PositionalLight {
	return &PositionalLight{
		Source:   NewSource(color),
		Position: position,
	}
}

// LocalIllumination returns the Phong contribution of the light at the
// shaded point
func (l *PositionalLight) LocalIllumination(eyeVector, point, normal core.Vec3, mat material.Material, uv core.Vec2) core.Vec3 {
	if !l.Enabled {
		return core.Vec3{}
	}
	return l.phong(l.LightVector(point), eyeVector, normal, mat)
}

// LightVector returns the unit direction from the point toward the light
func (l *PositionalLight) LightVector(point core.Vec3) core.Vec3 {
	return l.Position.Subtract(point).Normalize()
}

// LightDistance returns the Euclidean distance from the point to the light
func (l *PositionalLight) LightDistance(point core.Vec3) float64 {
	return l.Position.Distance(point)
}
