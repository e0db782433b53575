package text

import (
	"fmt"

	"github.com/gogpu/textmesh/geom"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.
func (ximageParser) Parse(data []byte) (Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageFont{font: f, upem: float64(f.UnitsPerEm())}, nil
}

// ximageFont implements Font on top of sfnt.Font. Every call uses its own
// sfnt.Buffer, so the font may be shared between goroutines.
type ximageFont struct {
	font *sfnt.Font
	upem float64
}

// Name implements Font.
func (f *ximageFont) Name() string {
	name, err := f.font.Name(nil, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// ppem loads outlines at one pixel per font unit so coordinates stay in
// font units.
func (f *ximageFont) ppem() fixed.Int26_6 {
	return fixed.Int26_6(f.upem * 64)
}

// LineHeight implements Font.
func (f *ximageFont) LineHeight(size float64) float64 {
	var buf sfnt.Buffer
	m, err := f.font.Metrics(&buf, f.ppem(), font.HintingNone)
	if err != nil {
		return size
	}
	return fixedToFloat64(m.Height) * size / f.upem
}

// Layout implements Font. Unmapped runes use glyph 0 (.notdef).
// Kerning from the kern table is applied when present.
func (f *ximageFont) Layout(line []rune, size float64) []PlacedGlyph {
	var buf sfnt.Buffer
	scale := size / f.upem
	ppem := f.ppem()

	placed := make([]PlacedGlyph, 0, len(line))
	var (
		x    float64
		prev sfnt.GlyphIndex
	)
	for i, r := range line {
		idx, err := f.font.GlyphIndex(&buf, r)
		if err != nil {
			idx = 0
		}
		if i > 0 {
			if k, err := f.font.Kern(&buf, prev, idx, ppem, font.HintingNone); err == nil {
				x += fixedToFloat64(k) * scale
			}
		}
		pg := PlacedGlyph{
			Rune:    r,
			Origin:  geom.Pt(x, 0),
			Outline: f.outline(&buf, idx, scale),
			Missing: idx == 0,
		}
		x += pg.Outline.Advance
		prev = idx
		placed = append(placed, pg)
	}
	return placed
}

func (f *ximageFont) outline(buf *sfnt.Buffer, idx sfnt.GlyphIndex, scale float64) GlyphOutline {
	ppem := f.ppem()
	var advance float64
	if adv, err := f.font.GlyphAdvance(buf, idx, ppem, font.HintingNone); err == nil {
		advance = fixedToFloat64(adv) * scale
	}

	segments, err := f.font.LoadGlyph(buf, idx, ppem, nil)
	if err != nil {
		return GlyphOutline{Advance: advance}
	}

	// sfnt reports Y growing downwards.
	b := outlineBuilder{scale: scale}
	for _, seg := range segments {
		a := seg.Args
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			b.moveTo(fixedToFloat64(a[0].X), -fixedToFloat64(a[0].Y))
		case sfnt.SegmentOpLineTo:
			b.lineTo(fixedToFloat64(a[0].X), -fixedToFloat64(a[0].Y))
		case sfnt.SegmentOpQuadTo:
			b.quadTo(
				fixedToFloat64(a[0].X), -fixedToFloat64(a[0].Y),
				fixedToFloat64(a[1].X), -fixedToFloat64(a[1].Y),
			)
		case sfnt.SegmentOpCubeTo:
			b.cubicTo(
				fixedToFloat64(a[0].X), -fixedToFloat64(a[0].Y),
				fixedToFloat64(a[1].X), -fixedToFloat64(a[1].Y),
				fixedToFloat64(a[2].X), -fixedToFloat64(a[2].Y),
			)
		}
	}
	return GlyphOutline{Segments: b.segs, Advance: advance}
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
