package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/EpikSushi21/go-phong-raytracer/pkg/core"
	"github.com/EpikSushi21/go-phong-raytracer/pkg/renderer"
	"github.com/EpikSushi21/go-phong-raytracer/pkg/scene"
)

// createScene builds one of the built-in scenes by name
func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	case "spot":
		return scene.NewSpotScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'spot'")
	projection := flag.String("projection", "perspective", "Projection: 'perspective' or 'ortho'")
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 225, "Image height in pixels")
	fov := flag.Float64("fov", 60, "Vertical field of view in degrees (perspective)")
	orthoHeight := flag.Float64("ortho-height", 4, "View plane height (orthographic)")
	workers := flag.Int("parallel", 0, "Render rows in parallel on this many workers (0 = serial)")
	shadows := flag.Bool("shadows", false, "Cast shadow feeler rays")
	reflections := flag.Bool("reflections", false, "Add recursive mirror reflections")
	depth := flag.Int("depth", 2, "Reflection recursion depth")
	output := flag.String("output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Phong Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Ground plane and two spheres under a positional light")
		fmt.Println("  spot    - Sphere under a spot light cone")
		return
	}

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		log.Fatalf("Error creating scene: %v", err)
	}
	if err := selectedScene.Validate(); err != nil {
		log.Fatalf("Invalid scene: %v", err)
	}

	fb := renderer.NewImageBuffer(*width, *height)

	rt, err := renderer.NewRayTracer(fb, core.NewVec3(0.1, 0.1, 0.12))
	if err != nil {
		log.Fatalf("Error creating raytracer: %v", err)
	}
	rt.SetLogger(log.Default())
	rt.EnableShadows = *shadows
	rt.EnableReflections = *reflections
	rt.SetRecursionDepth(*depth)

	if err := rt.SetScene(selectedScene.Surfaces, selectedScene.Lights); err != nil {
		log.Fatalf("Error setting scene: %v", err)
	}
	if err := rt.SetCameraFrame(core.NewVec3(0, 0.5, 2), core.NewVec3(0, -0.1, -1), core.NewVec3(0, 1, 0)); err != nil {
		log.Fatalf("Error setting camera frame: %v", err)
	}

	switch *projection {
	case "perspective":
		err = rt.CalculatePerspectiveViewingParameters(*fov)
	case "ortho":
		err = rt.CalculateOrthographicViewingParameters(*orthoHeight)
	default:
		log.Fatalf("Unknown projection: %s", *projection)
	}
	if err != nil {
		log.Fatalf("Error calculating viewing parameters: %v", err)
	}

	fmt.Printf("Rendering %s scene (%s, %dx%d)...\n", *sceneType, *projection, *width, *height)

	startTime := time.Now()
	if *workers > 0 {
		err = rt.RaytraceSceneParallel(*workers)
	} else {
		err = rt.RaytraceScene()
	}
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	filename := *output
	if filename == "" {
		outputDir := filepath.Join("output", *sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			log.Fatalf("Error creating output directory: %v", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	file, err := os.Create(filename)
	if err != nil {
		log.Fatalf("Error creating file: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, fb.Image()); err != nil {
		log.Fatalf("Error saving PNG: %v", err)
	}

	fmt.Printf("Render saved as %s\n", filename)
}
