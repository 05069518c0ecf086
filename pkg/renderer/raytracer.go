package renderer

import (
	"fmt"
	"math"

	"github.com/EpikSushi21/go-phong-raytracer/pkg/core"
	"github.com/EpikSushi21/go-phong-raytracer/pkg/geometry"
	"github.com/EpikSushi21/go-phong-raytracer/pkg/lights"
)

// shadowBias offsets secondary ray origins along the surface normal so
// they do not re-intersect the surface they started on
const shadowBias = 1e-6

// RayTracer renders a scene of implicit surfaces and lights into a
// framebuffer using Phong local illumination. It holds non-owning views
// of the surface and light collections; the scene owns the storage.
type RayTracer struct {
	fb           Framebuffer
	defaultColor core.Vec3 // Background color for rays that hit nothing
	logger       core.Logger

	// Camera frame: right-handed orthonormal basis, w points backward
	// along the negated viewing direction
	eye     core.Vec3
	u, v, w core.Vec3

	// View plane limits and pixel grid
	leftLimit, rightLimit float64
	topLimit, bottomLimit float64
	distToPlane           float64
	nx, ny                int
	renderPerspective     bool

	surfaces []geometry.Surface
	lights   []lights.Light

	recursionDepth int

	// EnableShadows casts a feeler ray toward each light and skips lights
	// blocked by another surface. Off by default; turning it on changes
	// every rendered pixel.
	EnableShadows bool
	// EnableReflections adds recursive mirror bounces limited by the
	// recursion depth. Off by default.
	EnableReflections bool
}

// NewRayTracer creates a raytracer writing to the given framebuffer.
// Rays that hit no surface produce defaultColor.
func NewRayTracer(fb Framebuffer, defaultColor core.Vec3) (*RayTracer, error) {
	if fb == nil {
		return nil, fmt.Errorf("raytracer requires a framebuffer")
	}
	if fb.Width() <= 0 || fb.Height() <= 0 {
		return nil, fmt.Errorf("framebuffer dimensions %dx%d must be positive", fb.Width(), fb.Height())
	}
	return &RayTracer{
		fb:             fb,
		defaultColor:   defaultColor,
		recursionDepth: 2,
	}, nil
}

// SetLogger sets an optional logger for render progress output
func (rt *RayTracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// SetRecursionDepth bounds the reflection recursion. It has no effect on
// output unless EnableReflections is set.
func (rt *RayTracer) SetRecursionDepth(depth int) {
	rt.recursionDepth = depth
}

// SetScene points the tracer at the scene's surface and light collections.
// The tracer does not copy or own them; they must not be mutated during a
// render.
func (rt *RayTracer) SetScene(surfaces []geometry.Surface, sceneLights []lights.Light) error {
	for i, s := range surfaces {
		if s == nil {
			return fmt.Errorf("surface %d is nil", i)
		}
	}
	for i, l := range sceneLights {
		if l == nil {
			return fmt.Errorf("light %d is nil", i)
		}
	}
	rt.surfaces = surfaces
	rt.lights = sceneLights
	return nil
}

// SetCameraFrame positions the camera and computes the orthonormal basis
// from the viewing direction and an up hint. The two must not be parallel.
func (rt *RayTracer) SetCameraFrame(eye, viewingDirection, up core.Vec3) error {
	if viewingDirection.Length() == 0 {
		return fmt.Errorf("viewing direction must be non-zero")
	}

	w := viewingDirection.Negate().Normalize()
	uCross := up.Cross(w)
	if uCross.Length() < 1e-12 {
		return fmt.Errorf("viewing direction %v and up hint %v are parallel", viewingDirection, up)
	}

	rt.eye = eye
	rt.w = w
	rt.u = uCross.Normalize()
	rt.v = rt.w.Cross(rt.u).Normalize()
	return nil
}

// CalculatePerspectiveViewingParameters derives the view plane limits for
// a perspective projection from a vertical field of view in degrees. The
// plane height is fixed at 2 and the plane distance follows from the FOV.
func (rt *RayTracer) CalculatePerspectiveViewingParameters(verticalFovDegrees float64) error {
	if verticalFovDegrees <= 0 || verticalFovDegrees >= 180 {
		return fmt.Errorf("vertical field of view %.2f must be in (0, 180) degrees", verticalFovDegrees)
	}

	rt.nx = rt.fb.Width()
	rt.ny = rt.fb.Height()

	rt.topLimit = 1.0
	rt.bottomLimit = -rt.topLimit
	rt.distToPlane = rt.topLimit / math.Tan(verticalFovDegrees*math.Pi/180.0/2.0)
	rt.rightLimit = rt.topLimit * (float64(rt.nx) / float64(rt.ny))
	rt.leftLimit = -rt.rightLimit

	rt.renderPerspective = true
	return nil
}

// CalculateOrthographicViewingParameters derives the view plane limits
// for an orthographic projection from the view plane height. Rays start
// on the view plane itself.
func (rt *RayTracer) CalculateOrthographicViewingParameters(viewPlaneHeight float64) error {
	if viewPlaneHeight == 0 {
		return fmt.Errorf("view plane height must be non-zero")
	}

	rt.nx = rt.fb.Width()
	rt.ny = rt.fb.Height()

	rt.topLimit = math.Abs(viewPlaneHeight) / 2.0
	rt.rightLimit = rt.topLimit * (float64(rt.nx) / float64(rt.ny))
	rt.leftLimit = -rt.rightLimit
	rt.bottomLimit = -rt.topLimit
	rt.distToPlane = 0.0

	rt.renderPerspective = false
	return nil
}

// ImagePlaneCoordinates maps a pixel to view plane coordinates, sampling
// at the pixel center. Both projection modes share this mapping.
func (rt *RayTracer) ImagePlaneCoordinates(x, y int) (s, t float64) {
	s = (float64(x)+0.5)*((rt.rightLimit-rt.leftLimit)/float64(rt.nx)) + rt.leftLimit
	t = (float64(y)+0.5)*((rt.topLimit-rt.bottomLimit)/float64(rt.ny)) + rt.bottomLimit
	return s, t
}

// PerspectiveViewRay generates the primary ray for a pixel in perspective
// mode: all rays share the eye as origin
func (rt *RayTracer) PerspectiveViewRay(x, y int) core.Ray {
	s, t := rt.ImagePlaneCoordinates(x, y)

	direction := rt.w.Negate().Multiply(rt.distToPlane).
		Add(rt.u.Multiply(s)).
		Add(rt.v.Multiply(t)).
		Normalize()

	return core.NewRay(rt.eye, direction)
}

// OrthoViewRay generates the primary ray for a pixel in orthographic
// mode: rays start on the view plane and share the viewing direction
func (rt *RayTracer) OrthoViewRay(x, y int) core.Ray {
	s, t := rt.ImagePlaneCoordinates(x, y)

	origin := rt.eye.Add(rt.u.Multiply(s)).Add(rt.v.Multiply(t))

	return core.NewRay(origin, rt.w.Negate().Normalize())
}

// FindClosestIntersection scans every surface in order and returns the
// hit with the smallest t. The comparison is strictly-less, so the first
// surface in scan order wins ties. Returns a miss record when nothing is
// hit.
func (rt *RayTracer) FindClosestIntersection(ray core.Ray) geometry.HitRecord {
	closest := geometry.Miss()

	for _, surface := range rt.surfaces {
		if hit := surface.Intersect(ray); hit.T < closest.T {
			closest = hit
		}
	}

	return closest
}

// TraceRay returns the color seen along a ray: the default color on a
// miss, otherwise the hit material's emissive term plus every light's
// local illumination. recursionLevel bounds the optional reflection
// bounces and is ignored while EnableReflections is off.
func (rt *RayTracer) TraceRay(ray core.Ray, recursionLevel int) core.Vec3 {
	closestHit := rt.FindClosestIntersection(ray)
	if !closestHit.IsHit() {
		return rt.defaultColor
	}

	totalColor := closestHit.Material.Emissive()
	eyeVector := ray.Direction.Negate().Normalize()

	for _, light := range rt.lights {
		if rt.EnableShadows && rt.lightBlocked(closestHit, light) {
			continue
		}
		totalColor = totalColor.Add(light.LocalIllumination(
			eyeVector, closestHit.Point, closestHit.Normal, closestHit.Material, closestHit.UV))
	}

	if rt.EnableReflections && recursionLevel > 0 {
		reflectDirection := ray.Direction.Reflect(closestHit.Normal)
		reflectRay := core.NewRay(
			closestHit.Point.Add(closestHit.Normal.Multiply(shadowBias)), reflectDirection)
		totalColor = totalColor.Add(rt.TraceRay(reflectRay, recursionLevel-1))
	}

	return totalColor
}

// lightBlocked casts a shadow feeler from the hit point toward the light
// and reports whether another surface sits between them
func (rt *RayTracer) lightBlocked(hit geometry.HitRecord, light lights.Light) bool {
	feelerDirection := light.LightVector(hit.Point)
	if feelerDirection.LengthSquared() == 0 {
		// Ambient light has no direction and cannot be occluded
		return false
	}

	feeler := core.NewRay(hit.Point.Add(hit.Normal.Multiply(shadowBias)), feelerDirection)
	blocker := rt.FindClosestIntersection(feeler)

	return blocker.IsHit() && blocker.T > 0 && blocker.T < light.LightDistance(hit.Point)
}

// viewRay generates the primary ray for a pixel in the active projection
// mode
func (rt *RayTracer) viewRay(x, y int) core.Ray {
	if rt.renderPerspective {
		return rt.PerspectiveViewRay(x, y)
	}
	return rt.OrthoViewRay(x, y)
}

// checkConfigured verifies the viewing parameters have been calculated
func (rt *RayTracer) checkConfigured() error {
	if rt.nx <= 0 || rt.ny <= 0 {
		return fmt.Errorf("viewing parameters not calculated; call CalculatePerspectiveViewingParameters or CalculateOrthographicViewingParameters first")
	}
	return nil
}

// RaytraceScene renders the full frame, tracing one primary ray per pixel
// and writing each color to the framebuffer. Rendering is a pure function
// of the camera and scene state: repeated calls with unchanged state
// produce identical output.
func (rt *RayTracer) RaytraceScene() error {
	if err := rt.checkConfigured(); err != nil {
		return err
	}

	for y := 0; y < rt.ny; y++ {
		for x := 0; x < rt.nx; x++ {
			rt.fb.SetPixel(x, y, rt.TraceRay(rt.viewRay(x, y), rt.recursionDepth))
		}
	}

	if rt.logger != nil {
		rt.logger.Printf("rendered %dx%d pixels over %d surfaces and %d lights",
			rt.nx, rt.ny, len(rt.surfaces), len(rt.lights))
	}
	return nil
}
