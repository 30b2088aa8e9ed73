// Command firetrace renders a YAML scene file to a PNG or WebP image.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"github.com/ashgrove/firetrace/pkg/camera"
	"github.com/ashgrove/firetrace/pkg/pixel"
	"github.com/ashgrove/firetrace/pkg/render"
	"github.com/ashgrove/firetrace/pkg/sceneio"
)

type config struct {
	SceneFile string
	Samples   int
	Name      string
	Out       string
	Workers   int
	UseBVH    bool
}

func main() {
	cfg := parseFlags()

	sc, camCfg, err := sceneio.Load(cfg.SceneFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "firetrace: %v\n", err)
		os.Exit(1)
	}

	cam := camera.New(camCfg)
	logger := log.New(os.Stdout, "", log.LstdFlags)

	renderCfg := render.Config{
		Width:   camCfg.ImageWidth,
		Height:  camCfg.ImageHeight,
		Samples: cfg.Samples,
		Workers: cfg.Workers,
		UseBVH:  cfg.UseBVH,
		Logger:  logger,
	}

	start := time.Now()
	buf := render.Render(sc, cam, renderCfg)
	logger.Printf("%s rendered in %v", cfg.Name, time.Since(start))

	outPath := cfg.Out
	if outPath == "" {
		outPath = cfg.Name + ".png"
	}
	if err := writeImage(outPath, camCfg.ImageWidth, camCfg.ImageHeight, buf); err != nil {
		fmt.Fprintf(os.Stderr, "firetrace: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() config {
	cfg := config{}
	flag.StringVar(&cfg.SceneFile, "scene-file", "", "path to a YAML scene file (required)")
	flag.IntVar(&cfg.Samples, "samples", 0, "samples per pixel (0 uses the renderer default of 128)")
	flag.StringVar(&cfg.Name, "name", "render", "label used for the default output filename")
	flag.StringVar(&cfg.Out, "out", "", "output image path (.png or .webp); defaults to <name>.png")
	flag.IntVar(&cfg.Workers, "workers", 0, "parallel workers (0 auto-detects CPU count)")
	flag.BoolVar(&cfg.UseBVH, "use-bvh", true, "accelerate ray intersection with a BVH")
	flag.Parse()

	if cfg.SceneFile == "" {
		fmt.Fprintln(os.Stderr, "firetrace: -scene-file is required")
		flag.Usage()
		os.Exit(1)
	}
	return cfg
}

// writeImage packs a render buffer into an image.RGBA and encodes it to
// path, choosing PNG or WebP by file extension.
func writeImage(path string, width, height int, buf []pixel.RGB) error {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, c := range buf {
		x, y := i%width, i/width
		img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		if err := nativewebp.Encode(f, img, nil); err != nil {
			return fmt.Errorf("encode webp: %w", err)
		}
	default:
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
	}
	return nil
}

