package geometry

import (
	"math"

	"github.com/EpikSushi21/go-phong-raytracer/pkg/core"
	"github.com/EpikSushi21/go-phong-raytracer/pkg/material"
)

// Surface interface for implicit surfaces that can be intersected by rays
type Surface interface {
	// Intersect tests the ray against the surface and returns a hit record.
	// A miss is reported by T == +Inf; the other fields are meaningful only
	// when T is finite.
	Intersect(ray core.Ray) HitRecord
}

// DefaultUV is the parameterization reported by surfaces that do not
// compute a real one
func DefaultUV() core.Vec2 {
	return core.NewVec2(0.5, 0.5)
}

// HitRecord contains information about a ray-surface intersection
type HitRecord struct {
	T        float64           // Ray parameter at the intersection, +Inf when there is no hit
	Point    core.Vec3         // Point of intersection
	Normal   core.Vec3         // Surface normal at the intersection
	Material material.Material // Material of the hit surface
	UV       core.Vec2         // Surface parameterization at the intersection
}

// Miss returns a hit record representing no intersection
func Miss() HitRecord {
	return HitRecord{T: math.Inf(1), UV: DefaultUV()}
}

// IsHit reports whether the record represents an actual intersection
func (h HitRecord) IsHit() bool {
	return !math.IsInf(h.T, 1)
}
