package geometry

import (
	"fmt"

	"github.com/EpikSushi21/go-phong-raytracer/pkg/core"
	"github.com/EpikSushi21/go-phong-raytracer/pkg/material"
)

// Plane represents an infinite single-sided plane defined by a point and normal.
// Rays hit it only from the front side: a ray whose direction opposes the
// normal intersects, anything parallel or approaching from behind misses.
type Plane struct {
	Point    core.Vec3         // A point on the plane
	Normal   core.Vec3         // Unit normal
	Material material.Material // Material of the plane
}

// NewPlane creates a plane from a point and a normal
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: mat,
	}
}

// NewPlaneFromPoints creates a plane through three non-collinear vertices.
// The plane passes through v0 with normal normalize((v2-v1) x (v0-v1)).
func NewPlaneFromPoints(v0, v1, v2 core.Vec3, mat material.Material) (*Plane, error) {
	normal := v2.Subtract(v1).Cross(v0.Subtract(v1))
	if normal.Length() == 0 {
		return nil, fmt.Errorf("plane vertices %v, %v, %v are collinear", v0, v1, v2)
	}
	return &Plane{
		Point:    v0,
		Normal:   normal.Normalize(),
		Material: mat,
	}, nil
}

// Intersect tests if a ray intersects the front face of the plane
func (p *Plane) Intersect(ray core.Ray) HitRecord {
	denominator := ray.Direction.Dot(p.Normal)

	// Front-face hits only: parallel and back-face rays miss
	if denominator >= 0 {
		return Miss()
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator

	return HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   p.Normal,
		Material: p.Material,
		UV:       DefaultUV(),
	}
}
