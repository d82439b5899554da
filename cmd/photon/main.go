package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/df07/go-progressive-raytracer/pkg/logx"
	"github.com/df07/go-progressive-raytracer/pkg/scenes"
)

// Config holds all the configuration for the renderer.
type Config struct {
	Scene      string
	Output     string
	StackSize  int
	Samples    int
	Depth      int
	BloomDepth int
	Help       bool
}

func main() {
	config := parseFlags()
	if config.Help {
		showHelp()
		return
	}

	if err := logx.Init(); err != nil {
		fmt.Printf("Could not initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logx.Sync()

	tracer, camera, ok := scenes.Build(config.Scene, config.Depth)
	if !ok {
		fmt.Printf("Error: unknown scene %q\n", config.Scene)
		os.Exit(1)
	}
	if config.Samples > 0 {
		camera.SamplesPerPixel = config.Samples
	}

	fmt.Printf("Rendering scene %q...\n", config.Scene)
	startTime := time.Now()
	image := camera.Shoot(tracer, config.StackSize, config.BloomDepth)
	renderTime := time.Since(startTime)
	logx.Log.Info("render complete", zap.String("scene", config.Scene), zap.Duration("elapsed", renderTime))

	if err := os.MkdirAll(filepath.Dir(config.Output), 0o755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}
	if err := image.Save(config.Output); err != nil {
		logx.Log.Error("could not save image", zap.String("path", config.Output), zap.Error(err))
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render completed in %v, saved as %s\n", renderTime, config.Output)
}

func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.Scene, "scene", "reflective-floor", "Scene to render")
	flag.StringVar(&config.Output, "output", "render.png", "Output PNG path")
	flag.IntVar(&config.StackSize, "stacks", 8, "Number of independently rendered, then averaged, image stacks")
	flag.IntVar(&config.Samples, "samples", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&config.Depth, "depth", 0, "Maximum bounce depth (0 = scene default)")
	flag.IntVar(&config.BloomDepth, "bloom", 4, "Number of bloom blur passes (0 disables bloom)")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.Parse()
	return config
}

func showHelp() {
	fmt.Println("photon - a Monte-Carlo path tracer")
	fmt.Println("Usage: photon [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Built-in scenes:")
	fmt.Println("  empty              - flat grey environment, nothing to hit")
	fmt.Println("  emissive-sphere    - a single glowing sphere against a black sky")
	fmt.Println("  reflective-floor   - a mirrored sphere over a diffuse floor")
	fmt.Println("  refractive-sphere  - a glass sphere over a diffuse floor")
	fmt.Println("  checker-sphere     - a marbled sphere over a checkered floor")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  photon --scene=checker-sphere --samples=64 --output=out/checker.png")
}
