package lights

import (
	"math"

	"github.com/EpikSushi21/go-phong-raytracer/pkg/core"
	"github.com/EpikSushi21/go-phong-raytracer/pkg/material"
)

// DirectionalLight simulates a light source so distant that all of its
// rays arrive parallel. It has no position, only a direction, and its
// distance to any point is infinite.
type DirectionalLight struct {
	Source
	// Direction is the unit vector pointing toward the light, opposite
	// the direction in which the light is shining
	Direction core.Vec3
}

// NewDirectionalLight creates a directional light. direction points toward
// the light and is normalized at construction.
func NewDirectionalLight(direction, color core.Vec3) *DirectionalLight {
	return &DirectionalLight{
		Source:    NewSource(color),
		Direction: direction.Normalize(),
	}
}

// LocalIllumination returns the Phong contribution of the light at the
// shaded point
func (l *DirectionalLight) LocalIllumination(eyeVector, point, normal core.Vec3, mat material.Material, uv core.Vec2) core.Vec3 {
	if !l.Enabled {
		return core.Vec3{}
	}
	return l.phong(l.Direction, eyeVector, normal, mat)
}

// LightVector returns the constant light direction regardless of the point
func (l *DirectionalLight) LightVector(point core.Vec3) core.Vec3 {
	return l.Direction
}

// LightDistance returns +Inf; directional light is not attenuated by
// distance
func (l *DirectionalLight) LightDistance(point core.Vec3) float64 {
	return math.Inf(1)
}
