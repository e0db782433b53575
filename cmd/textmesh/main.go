// Command textmesh builds the fill and outline of a string and writes a
// PNG preview of both.
//
// Usage:
//
//	textmesh -attrs "value: Hello; font: embed:goregular; align: center" -output hello.png
//	textmesh -config label.yaml -attrs "color: #0af"
//
// Declarations in -attrs are applied on top of the -config file.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/gogpu/textmesh"
	"github.com/gogpu/textmesh/preview"
	"github.com/gogpu/textmesh/scene"
	"github.com/gogpu/textmesh/text"
)

func main() {
	var (
		attrs   = flag.String("attrs", "", "attribute declarations, e.g. \"value: Hi; color: red\"")
		config  = flag.String("config", "", "YAML configuration file")
		output  = flag.String("output", "text.png", "output PNG file")
		width   = flag.Int("width", 1024, "image width")
		height  = flag.Int("height", 512, "image height")
		stroke  = flag.Float64("stroke", 2, "outline width in pixels (0 hides the outline)")
		parser  = flag.String("parser", "", "binary font parser (gotext or ximage)")
		timeout = flag.Duration("timeout", 30*time.Second, "font fetch timeout")
		presets = flag.Bool("presets", false, "list font presets and exit")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *presets {
		names := text.Presets()
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("%-24s %s\n", name, text.Resolve(name))
		}
		return
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	textmesh.SetLogger(logger)

	cfg, err := loadConfig(*config)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg = cfg.WithAttributes(*attrs)

	exOpts := []text.ExtractorOption{text.WithLogger(logger)}
	if *parser != "" {
		exOpts = append(exOpts, text.WithParser(*parser))
	}

	node := scene.NewGroup()
	c := textmesh.New(node, textmesh.WithExtractor(text.NewExtractor(exOpts...)))
	c.Init(cfg)
	defer c.Remove()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	if err := c.Wait(ctx); err != nil {
		log.Fatalf("Failed to build text: %v", err)
	}
	pair := c.Pair()

	img, err := preview.Render(pair.Fill, pair.Outline, preview.Options{
		Width:       *width,
		Height:      *height,
		Padding:     16,
		StrokeWidth: *stroke,
		Background:  color.RGBA{R: 0x40, G: 0x40, B: 0x48, A: 0xff},
	})
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	if err := preview.WritePNG(f, img); err != nil {
		f.Close()
		log.Fatalf("Failed to save: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Saved %s (%dx%d): %d triangles, %d outline lines, offset %.3f\n",
		*output, *width, *height, pair.Fill.TriangleCount(), len(pair.Outline.Lines), pair.Offset)
}

func loadConfig(path string) (textmesh.Config, error) {
	if path == "" {
		return textmesh.DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return textmesh.Config{}, err
	}
	defer f.Close()
	return textmesh.LoadConfig(f)
}
