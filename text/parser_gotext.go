package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/textmesh/geom"
	"golang.org/x/image/math/fixed"
)

// gotextParser implements FontParser with go-text/typesetting. Lines are
// shaped with its HarfBuzz port, so kerning, ligatures and mark
// positioning from the font's GPOS/GSUB tables are honoured.
type gotextParser struct{}

// Parse implements FontParser.
func (gotextParser) Parse(data []byte) (Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	f := &gotextFont{
		font: face.Font,
		upem: float64(face.Font.Upem()),
	}
	f.shapers.New = func() any { return &shaping.HarfbuzzShaper{} }
	return f, nil
}

// gotextFont holds the read-only *font.Font. A font.Face and a
// HarfbuzzShaper are not safe for concurrent use, so each Layout call gets
// its own face and borrows a shaper from the pool.
type gotextFont struct {
	font    *font.Font
	upem    float64
	shapers sync.Pool
}

// Name implements Font.
func (f *gotextFont) Name() string {
	return f.font.Describe().Family
}

// LineHeight implements Font.
func (f *gotextFont) LineHeight(size float64) float64 {
	ext, ok := font.NewFace(f.font).FontHExtents()
	if !ok {
		return size
	}
	return float64(ext.Ascender-ext.Descender+ext.LineGap) * size / f.upem
}

// Layout implements Font.
func (f *gotextFont) Layout(line []rune, size float64) []PlacedGlyph {
	if len(line) == 0 {
		return nil
	}
	face := font.NewFace(f.font)
	input := shaping.Input{
		Text:      line,
		RunStart:  0,
		RunEnd:    len(line),
		Direction: di.DirectionLTR,
		Face:      face,
		// shape in font units; scaled below
		Size:     fixed.Int26_6(f.upem * 64),
		Script:   detectScript(line),
		Language: language.NewLanguage("en"),
	}

	hb := f.shapers.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	f.shapers.Put(hb)

	scale := size / f.upem
	placed := make([]PlacedGlyph, 0, len(out.Glyphs))
	var x float64
	for _, g := range out.Glyphs {
		r := rune(0)
		if ci := g.TextIndex(); ci >= 0 && ci < len(line) {
			r = line[ci]
		}
		placed = append(placed, PlacedGlyph{
			Rune:    r,
			Origin:  geom.Pt((x+fixedToFloat64(g.XOffset))*scale, fixedToFloat64(g.YOffset)*scale),
			Outline: gotextOutline(face, g.GlyphID, fixedToFloat64(g.Advance)*scale, scale),
			Missing: g.GlyphID == 0,
		})
		x += fixedToFloat64(g.Advance)
	}
	return placed
}

func gotextOutline(face *font.Face, gid font.GID, advance, scale float64) GlyphOutline {
	data, ok := face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return GlyphOutline{Advance: advance}
	}
	b := outlineBuilder{scale: scale}
	for _, seg := range data.Segments {
		a := seg.Args
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			b.moveTo(float64(a[0].X), float64(a[0].Y))
		case ot.SegmentOpLineTo:
			b.lineTo(float64(a[0].X), float64(a[0].Y))
		case ot.SegmentOpQuadTo:
			b.quadTo(float64(a[0].X), float64(a[0].Y), float64(a[1].X), float64(a[1].Y))
		case ot.SegmentOpCubeTo:
			b.cubicTo(
				float64(a[0].X), float64(a[0].Y),
				float64(a[1].X), float64(a[1].Y),
				float64(a[2].X), float64(a[2].Y),
			)
		}
	}
	return GlyphOutline{Segments: b.segs, Advance: advance}
}

// detectScript returns the script of the first non-space rune.
// Mixed-script lines are shaped with that single script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
