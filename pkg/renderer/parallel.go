package renderer

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RaytraceSceneParallel renders the full frame with rows distributed
// across the given number of goroutines (NumCPU when workers <= 0).
// Each pixel is independent given the frozen scene state and the inner
// surface scan keeps its order, so the output is pixel-identical to
// RaytraceScene. The framebuffer must accept disjoint-pixel writes from
// concurrent goroutines.
func (rt *RayTracer) RaytraceSceneParallel(workers int) error {
	if err := rt.checkConfigured(); err != nil {
		return err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var g errgroup.Group
	g.SetLimit(workers)

	for y := 0; y < rt.ny; y++ {
		y := y
		g.Go(func() error {
			for x := 0; x < rt.nx; x++ {
				rt.fb.SetPixel(x, y, rt.TraceRay(rt.viewRay(x, y), rt.recursionDepth))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if rt.logger != nil {
		rt.logger.Printf("rendered %dx%d pixels on %d workers over %d surfaces and %d lights",
			rt.nx, rt.ny, workers, len(rt.surfaces), len(rt.lights))
	}
	return nil
}
