package renderer

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/EpikSushi21/go-phong-raytracer/pkg/core"
	"github.com/EpikSushi21/go-phong-raytracer/pkg/geometry"
	"github.com/EpikSushi21/go-phong-raytracer/pkg/lights"
	"github.com/EpikSushi21/go-phong-raytracer/pkg/scene"
)

// setupDemoRender points a tracer at the built-in default scene
func setupDemoRender(t *testing.T, fb Framebuffer) *RayTracer {
	t.Helper()

	demo := scene.NewDefaultScene()
	if err := demo.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	rt := newTestTracer(t, fb, core.NewVec3(0.1, 0.1, 0.12))
	if err := rt.SetCameraFrame(core.NewVec3(0, 0.5, 2), core.NewVec3(0, -0.1, -1), core.NewVec3(0, 1, 0)); err != nil {
		t.Fatalf("SetCameraFrame: %v", err)
	}
	if err := rt.CalculatePerspectiveViewingParameters(60); err != nil {
		t.Fatalf("CalculatePerspectiveViewingParameters: %v", err)
	}
	if err := rt.SetScene(demo.Surfaces, demo.Lights); err != nil {
		t.Fatalf("SetScene: %v", err)
	}
	return rt
}

func TestRaytraceSceneParallel_MatchesSerial(t *testing.T) {
	serial := newTestBuffer(16, 9)
	if err := setupDemoRender(t, serial).RaytraceScene(); err != nil {
		t.Fatalf("Serial render: %v", err)
	}

	for _, workers := range []int{1, 4, 0} {
		parallel := newTestBuffer(16, 9)
		if err := setupDemoRender(t, parallel).RaytraceSceneParallel(workers); err != nil {
			t.Fatalf("Parallel render (%d workers): %v", workers, err)
		}

		if diff := cmp.Diff(serial.pixels, parallel.pixels); diff != "" {
			t.Errorf("Parallel render with %d workers differs from serial (-serial +parallel):\n%s", workers, diff)
		}
	}
}

func TestRaytraceSceneParallel_RequiresViewingParameters(t *testing.T) {
	rt := newTestTracer(t, newTestBuffer(2, 2), core.Vec3{})

	if err := rt.RaytraceSceneParallel(2); err == nil {
		t.Error("Expected error before viewing parameters are calculated")
	}
}

func TestRaytraceSceneParallel_TieBreakPreserved(t *testing.T) {
	// Two coincident stub surfaces: the first in scan order must win in
	// every pixel regardless of worker count
	first := stubSurface{geometry.HitRecord{
		T:        3,
		Normal:   core.NewVec3(0, 0, 1),
		Material: testMaterial(core.NewVec3(1, 0, 0)),
		UV:       geometry.DefaultUV(),
	}}
	second := stubSurface{geometry.HitRecord{
		T:        3,
		Normal:   core.NewVec3(0, 0, 1),
		Material: testMaterial(core.NewVec3(0, 1, 0)),
		UV:       geometry.DefaultUV(),
	}}
	ambient := lights.NewAmbientLight(core.NewVec3(1, 1, 1))

	fb := newTestBuffer(4, 4)
	rt := newTestTracer(t, fb, core.Vec3{})
	if err := rt.SetCameraFrame(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0)); err != nil {
		t.Fatalf("SetCameraFrame: %v", err)
	}
	if err := rt.CalculatePerspectiveViewingParameters(90); err != nil {
		t.Fatalf("CalculatePerspectiveViewingParameters: %v", err)
	}
	if err := rt.SetScene([]geometry.Surface{first, second}, []lights.Light{ambient}); err != nil {
		t.Fatalf("SetScene: %v", err)
	}

	if err := rt.RaytraceSceneParallel(4); err != nil {
		t.Fatalf("RaytraceSceneParallel: %v", err)
	}

	// Ambient term of the winning material: red ambient reflectance
	expected := core.NewVec3(1, 0, 0)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := fb.at(x, y); got != expected {
				t.Errorf("Pixel (%d,%d): expected first-surface color %v, got %v", x, y, expected, got)
			}
		}
	}
}
