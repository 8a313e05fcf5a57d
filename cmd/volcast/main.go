// Command volcast is an interactive GPU volume viewer: it ray-casts a 3-D
// density dataset through a colormap transfer function, with orbit, pan,
// and zoom camera controls.
//
// Controls:
//
//	left drag   orbit the camera around the volume
//	right drag  pan the orbit target
//	scroll      zoom in and out
//	V           cycle the dataset
//	C           cycle the colormap
//	space       reset the camera
//	escape      quit
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strconv"
	"strings"

	"github.com/Carmen-Shannon/volcast/viewer"
	"github.com/Carmen-Shannon/volcast/viewer/colormap"
	"github.com/Carmen-Shannon/volcast/viewer/renderer"
	"github.com/Carmen-Shannon/volcast/viewer/scene"
	"github.com/Carmen-Shannon/volcast/viewer/volume"
)

func main() {
	dataset := flag.String("dataset", "", "initial dataset name (default: first registered)")
	colormapName := flag.String("colormap", "", "initial colormap name (default: first registered)")
	width := flag.Int("width", 1280, "window width in pixels")
	height := flag.Int("height", 720, "window height in pixels")
	rawPath := flag.String("raw", "", "path to a headerless 8-bit raw volume to load")
	rawDims := flag.String("raw-dims", "", "dimensions of the raw volume as WxHxD, e.g. 256x256x178")
	colormapImage := flag.String("colormap-image", "", "path to an image file to load as a colormap")
	resolution := flag.Uint("resolution", 64, "edge length in voxels of the built-in procedural datasets")
	workers := flag.Int("workers", runtime.NumCPU(), "worker count for dataset synthesis")
	uncapped := flag.Bool("uncapped", false, "present without vsync")
	fpsCap := flag.Float64("fps-cap", 0, "frame rate cap (0 = uncapped)")
	profile := flag.Bool("profile", false, "log frame pacing statistics")
	software := flag.Bool("software", false, "force the fallback software adapter")
	flag.Parse()

	volumes := volume.NewStore(
		volume.WithResolution(uint32(*resolution)),
		volume.WithSynthesisWorkers(*workers),
	)
	if *rawPath != "" {
		w, h, d, err := parseDims(*rawDims)
		if err != nil {
			log.Fatalf("invalid -raw-dims: %v", err)
		}
		loaded, err := volume.LoadRaw(*rawPath, w, h, d)
		if err != nil {
			log.Fatalf("failed to load raw volume: %v", err)
		}
		if err := volumes.Register(loaded); err != nil {
			log.Fatalf("failed to register raw volume: %v", err)
		}
		if *dataset == "" {
			*dataset = loaded.Name
		}
	}

	colormaps := colormap.NewStore()
	if *colormapImage != "" {
		loaded, err := colormap.LoadImage(*colormapImage)
		if err != nil {
			log.Fatalf("failed to load colormap image: %v", err)
		}
		if err := colormaps.Register(loaded); err != nil {
			log.Fatalf("failed to register colormap: %v", err)
		}
		if *colormapName == "" {
			*colormapName = loaded.Name
		}
	}

	sceneOptions := []scene.SceneBuilderOption{
		scene.WithVolumeStore(volumes),
		scene.WithColormapStore(colormaps),
	}
	if *dataset != "" {
		sceneOptions = append(sceneOptions, scene.WithInitialVolume(*dataset))
	}
	if *colormapName != "" {
		sceneOptions = append(sceneOptions, scene.WithInitialColormap(*colormapName))
	}

	var rendererOptions []renderer.RendererBuilderOption
	if *uncapped {
		rendererOptions = append(rendererOptions, renderer.WithPresentMode(renderer.PresentModeUncapped))
	}
	if *software {
		rendererOptions = append(rendererOptions, renderer.WithForceSoftwareRenderer(true))
	}

	v, err := viewer.NewViewer(
		viewer.WithTitle("volcast"),
		viewer.WithSize(*width, *height),
		viewer.WithRendererOptions(rendererOptions...),
		viewer.WithSceneOptions(sceneOptions...),
	)
	if err != nil {
		log.Fatalf("failed to start viewer: %v", err)
	}
	if *profile {
		v.EnableProfiler()
	}
	if *fpsCap > 0 {
		v.SetFrameLimit(*fpsCap)
	}

	log.Printf("datasets: %s", strings.Join(volumes.Names(), ", "))
	log.Printf("colormaps: %s", strings.Join(colormaps.Names(), ", "))
	v.Run()
}

// parseDims parses a WxHxD dimension string.
func parseDims(s string) (width, height, depth uint32, err error) {
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("want WxHxD, got %q", s)
	}
	dims := make([]uint32, 3)
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil || n == 0 {
			return 0, 0, 0, fmt.Errorf("bad dimension %q", p)
		}
		dims[i] = uint32(n)
	}
	return dims[0], dims[1], dims[2], nil
}
