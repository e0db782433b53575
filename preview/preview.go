// Package preview rasterizes text fills and outlines to images on the CPU.
// It is meant for inspection and golden tests, not for production rendering.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/gogpu/textmesh/geom"
	"github.com/gogpu/textmesh/mesh"
	"golang.org/x/image/vector"
)

// Options controls the raster size and appearance.
type Options struct {
	// Width and Height are the image size in pixels.
	Width, Height int

	// Padding is the margin in pixels kept around the geometry.
	Padding float64

	// StrokeWidth is the outline width in pixels. Zero hides the outline.
	StrokeWidth float64

	// Background fills the image before drawing. Nil leaves it transparent.
	Background color.Color
}

// DefaultOptions returns a 512x256 transparent raster with a 1px outline.
func DefaultOptions() Options {
	return Options{Width: 512, Height: 256, Padding: 8, StrokeWidth: 1}
}

// viewport maps world coordinates (Y up) into pixels (Y down), fitting
// the bounds into the image with a uniform scale.
type viewport struct {
	scale  float64
	tx, ty float64
	height float64
}

func newViewport(b geom.Box, o Options) viewport {
	w, h := float64(o.Width), float64(o.Height)
	availW, availH := w-2*o.Padding, h-2*o.Padding
	if b.IsEmpty() || availW <= 0 || availH <= 0 {
		return viewport{scale: 1, height: h}
	}

	scale := math.Inf(1)
	if bw := b.Width(); bw > 0 {
		scale = availW / bw
	}
	if bh := b.Height(); bh > 0 {
		scale = math.Min(scale, availH/bh)
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}
	return viewport{
		scale:  scale,
		tx:     (w-b.Width()*scale)/2 - b.Min.X*scale,
		ty:     (h-b.Height()*scale)/2 - b.Min.Y*scale,
		height: h,
	}
}

func (v viewport) apply(p geom.Point) (float32, float32) {
	return float32(p.X*v.scale + v.tx), float32(v.height - (p.Y*v.scale + v.ty))
}

// Render draws the fill and then the outline on top of it. Either may be
// nil. The view is fitted to the union of their bounds.
func Render(fill *mesh.Fill, outline *mesh.Outline, o Options) (*image.RGBA, error) {
	if o.Width <= 0 || o.Height <= 0 {
		return nil, fmt.Errorf("preview: invalid size %dx%d", o.Width, o.Height)
	}
	img := image.NewRGBA(image.Rect(0, 0, o.Width, o.Height))
	if o.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(o.Background), image.Point{}, draw.Src)
	}

	bounds := geom.EmptyBox()
	if fill != nil {
		bounds = bounds.Union(fill.Bounds)
	}
	if outline != nil {
		bounds = bounds.Union(outline.Bounds)
	}
	vp := newViewport(bounds, o)

	if fill != nil && fill.TriangleCount() > 0 {
		rast := vector.NewRasterizer(o.Width, o.Height)
		rast.DrawOp = draw.Over
		for i := 0; i+2 < len(fill.Indices); i += 3 {
			a := fill.Positions[fill.Indices[i]]
			b := fill.Positions[fill.Indices[i+1]]
			c := fill.Positions[fill.Indices[i+2]]
			rast.MoveTo(vp.apply(a))
			rast.LineTo(vp.apply(b))
			rast.LineTo(vp.apply(c))
			rast.ClosePath()
		}
		rast.Draw(img, img.Bounds(), image.NewUniform(materialColor(fill.Material)), image.Point{})
	}

	if outline != nil && o.StrokeWidth > 0 && len(outline.Lines) > 0 {
		rast := vector.NewRasterizer(o.Width, o.Height)
		rast.DrawOp = draw.Over
		half := o.StrokeWidth / 2
		for _, l := range outline.Lines {
			for i := 0; i+1 < len(l.Points); i++ {
				strokeSegment(rast, vp, l.Points[i], l.Points[i+1], half)
			}
		}
		rast.Draw(img, img.Bounds(), image.NewUniform(materialColor(outline.Material)), image.Point{})
	}
	return img, nil
}

// strokeSegment adds a quad of half-width half (pixels) around p0-p1.
// Every quad is wound the same way so overlaps at joins accumulate.
func strokeSegment(rast *vector.Rasterizer, vp viewport, p0, p1 geom.Point, half float64) {
	x0, y0 := vp.apply(p0)
	x1, y1 := vp.apply(p1)
	dx, dy := float64(x1-x0), float64(y1-y0)
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	// Extend along the segment so adjacent quads overlap at corners.
	ex, ey := float32(dx/l*half), float32(dy/l*half)
	nx, ny := float32(-dy/l*half), float32(dx/l*half)

	rast.MoveTo(x0-ex+nx, y0-ey+ny)
	rast.LineTo(x1+ex+nx, y1+ey+ny)
	rast.LineTo(x1+ex-nx, y1+ey-ny)
	rast.LineTo(x0-ex-nx, y0-ey-ny)
	rast.ClosePath()
}

func materialColor(m mesh.Material) color.NRGBA {
	c := m.RGBA()
	to8 := func(f float32) uint8 {
		return uint8(math.Round(float64(min(max(f, 0), 1)) * 255))
	}
	return color.NRGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: to8(c[3])}
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("preview: encode png: %w", err)
	}
	return nil
}
