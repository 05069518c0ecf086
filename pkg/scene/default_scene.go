package scene

import (
	"math"

	"github.com/EpikSushi21/go-phong-raytracer/pkg/core"
	"github.com/EpikSushi21/go-phong-raytracer/pkg/geometry"
	"github.com/EpikSushi21/go-phong-raytracer/pkg/lights"
	"github.com/EpikSushi21/go-phong-raytracer/pkg/material"
)

// NewDefaultScene creates a scene with a ground plane, two spheres, dim
// ambient fill and a positional key light
func NewDefaultScene() *Scene {
	ground := material.NewPhong(core.NewVec3(0.4, 0.4, 0.4), 16)
	red := material.NewPhong(core.NewVec3(0.8, 0.2, 0.2), 64)
	blue := material.NewPhong(core.NewVec3(0.2, 0.3, 0.8), 64)

	ambient := lights.NewAmbientLight(core.NewVec3(0.15, 0.15, 0.15))
	key := lights.NewPositionalLight(core.NewVec3(4, 6, 2), core.NewVec3(0.9, 0.9, 0.9))

	return &Scene{
		Surfaces: []geometry.Surface{
			geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), ground),
			geometry.NewSphere(core.NewVec3(-1.2, 0, -6), 1.0, red),
			geometry.NewSphere(core.NewVec3(1.2, -0.4, -5), 0.6, blue),
		},
		Lights: []lights.Light{ambient, key},
	}
}

// NewSpotScene creates a scene with a ground plane and a sphere lit by a
// spot light aimed at the sphere, with a faint directional fill
func NewSpotScene() *Scene {
	ground := material.NewPhong(core.NewVec3(0.5, 0.5, 0.45), 8)
	green := material.NewPhong(core.NewVec3(0.2, 0.7, 0.3), 32)

	spotPosition := core.NewVec3(0, 5, -3)
	spotTarget := core.NewVec3(0, 0, -6)
	spotDirection := spotTarget.Subtract(spotPosition)
	cutoff := math.Cos(25 * math.Pi / 180)

	ambient := lights.NewAmbientLight(core.NewVec3(0.05, 0.05, 0.05))
	spot := lights.NewSpotLight(spotPosition, spotDirection, cutoff, core.NewVec3(1, 1, 0.9))
	fill := lights.NewDirectionalLight(core.NewVec3(-1, 1, 1), core.NewVec3(0.1, 0.1, 0.15))

	return &Scene{
		Surfaces: []geometry.Surface{
			geometry.NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), ground),
			geometry.NewSphere(core.NewVec3(0, 0, -6), 1.0, green),
		},
		Lights: []lights.Light{ambient, spot, fill},
	}
}
