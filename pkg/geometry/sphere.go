package geometry

import (
	"math"

	"github.com/EpikSushi21/go-phong-raytracer/pkg/core"
	"github.com/EpikSushi21/go-phong-raytracer/pkg/material"
)

// Sphere represents a sphere defined by a center point and radius
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Intersect tests if a ray intersects the sphere, reporting the nearest
// intersection in front of the ray origin
func (s *Sphere) Intersect(ray core.Ray) HitRecord {
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return Miss()
	}

	sqrtD := math.Sqrt(discriminant)

	// Nearest non-negative root
	t := (-halfB - sqrtD) / a
	if t < 0 {
		t = (-halfB + sqrtD) / a
		if t < 0 {
			return Miss()
		}
	}

	point := ray.At(t)
	normal := point.Subtract(s.Center).Multiply(1 / s.Radius)

	return HitRecord{
		T:        t,
		Point:    point,
		Normal:   normal,
		Material: s.Material,
		UV:       s.uvAt(normal),
	}
}

// uvAt maps a unit outward normal to spherical surface coordinates
func (s *Sphere) uvAt(normal core.Vec3) core.Vec2 {
	theta := math.Acos(-normal.Y)
	phi := math.Atan2(-normal.Z, normal.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
