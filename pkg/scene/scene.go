package scene

import (
	"fmt"

	"github.com/EpikSushi21/go-phong-raytracer/pkg/geometry"
	"github.com/EpikSushi21/go-phong-raytracer/pkg/lights"
)

// Scene owns the surface and light storage for a render. Scenes are
// assembled before rendering and are read-only for its duration; the
// tracer holds views into these slices but never allocates or frees
// them. Encounter order matters: the closest-hit scan resolves ties in
// favor of the earlier surface.
type Scene struct {
	Surfaces []geometry.Surface
	Lights   []lights.Light
}

// Validate fails fast on a malformed scene instead of letting nil
// references or NaNs propagate through shading
func (s *Scene) Validate() error {
	for i, surface := range s.Surfaces {
		if surface == nil {
			return fmt.Errorf("scene surface %d is nil", i)
		}
	}
	for i, light := range s.Lights {
		if light == nil {
			return fmt.Errorf("scene light %d is nil", i)
		}
	}
	return nil
}
