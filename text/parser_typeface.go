package text

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// typefaceFile mirrors the fields of a three.js typeface JSON document that
// are needed for layout.
type typefaceFile struct {
	FamilyName         string                   `json:"familyName"`
	Resolution         float64                  `json:"resolution"`
	UnderlineThickness float64                  `json:"underlineThickness"`
	BoundingBox        typefaceBox              `json:"boundingBox"`
	Glyphs             map[string]typefaceGlyph `json:"glyphs"`
}

type typefaceBox struct {
	XMin float64 `json:"xMin"`
	XMax float64 `json:"xMax"`
	YMin float64 `json:"yMin"`
	YMax float64 `json:"yMax"`
}

type typefaceGlyph struct {
	HA float64 `json:"ha"`
	O  string  `json:"o"`
}

// typefaceParser parses three.js typeface JSON.
type typefaceParser struct{}

// Parse implements FontParser.
func (typefaceParser) Parse(data []byte) (Font, error) {
	var file typefaceFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("text: failed to parse typeface: %w", err)
	}
	if file.Resolution <= 0 {
		return nil, fmt.Errorf("%w: resolution %v", ErrMalformedTypeface, file.Resolution)
	}
	if len(file.Glyphs) == 0 {
		return nil, fmt.Errorf("%w: no glyphs", ErrMalformedTypeface)
	}

	f := &typefaceFont{
		name:       file.FamilyName,
		resolution: file.Resolution,
		lineHeight: file.BoundingBox.YMax - file.BoundingBox.YMin + file.UnderlineThickness,
		glyphs:     make(map[rune]typefaceOutline, len(file.Glyphs)),
	}
	for key, g := range file.Glyphs {
		r, size := utf8.DecodeRuneInString(key)
		if r == utf8.RuneError || size != len(key) {
			continue
		}
		cmds, err := parseTypefaceCommands(g.O)
		if err != nil {
			return nil, fmt.Errorf("%w: glyph %q: %v", ErrMalformedTypeface, key, err)
		}
		f.glyphs[r] = typefaceOutline{advance: g.HA, cmds: cmds}
	}
	return f, nil
}

// typefaceCmd is one drawing command with its arguments in font units,
// already reordered so that control points come before the end point.
type typefaceCmd struct {
	op   OutlineOp
	args []float64
}

type typefaceOutline struct {
	advance float64
	cmds    []typefaceCmd
}

// parseTypefaceCommands parses an "o" string such as "m 0 0 l 10 0 q 5 5 0 10".
// Quadratic and cubic commands list the end point first.
func parseTypefaceCommands(o string) ([]typefaceCmd, error) {
	tokens := strings.Fields(o)
	var cmds []typefaceCmd
	for i := 0; i < len(tokens); {
		action := tokens[i]
		i++

		var (
			op OutlineOp
			n  int
		)
		switch action {
		case "m":
			op, n = OutlineOpMoveTo, 2
		case "l":
			op, n = OutlineOpLineTo, 2
		case "q":
			op, n = OutlineOpQuadTo, 4
		case "b":
			op, n = OutlineOpCubicTo, 6
		case "z":
			continue
		default:
			return nil, fmt.Errorf("unknown command %q", action)
		}
		if i+n > len(tokens) {
			return nil, fmt.Errorf("command %q: want %d arguments, have %d", action, n, len(tokens)-i)
		}
		args := make([]float64, n)
		for k := range args {
			v, err := strconv.ParseFloat(tokens[i+k], 64)
			if err != nil {
				return nil, fmt.Errorf("command %q: %w", action, err)
			}
			args[k] = v
		}
		i += n

		// end point first in the file, last in our segments
		if n > 2 {
			reordered := make([]float64, 0, n)
			reordered = append(reordered, args[2:]...)
			args = append(reordered, args[:2]...)
		}
		cmds = append(cmds, typefaceCmd{op: op, args: args})
	}
	return cmds, nil
}

// typefaceFont is a parsed typeface. It is immutable after Parse.
type typefaceFont struct {
	name       string
	resolution float64
	lineHeight float64
	glyphs     map[rune]typefaceOutline
}

// Name implements Font.
func (f *typefaceFont) Name() string { return f.name }

// LineHeight implements Font.
func (f *typefaceFont) LineHeight(size float64) float64 {
	return f.lineHeight * size / f.resolution
}

// Layout implements Font. Missing characters are drawn with the '?' glyph;
// if the font lacks that too the character takes no space.
func (f *typefaceFont) Layout(line []rune, size float64) []PlacedGlyph {
	scale := size / f.resolution
	placed := make([]PlacedGlyph, 0, len(line))
	var x float64
	for _, r := range line {
		g, ok := f.glyphs[r]
		pg := PlacedGlyph{Rune: r, Missing: !ok}
		if !ok {
			g, ok = f.glyphs['?']
		}
		pg.Origin.X = x
		if ok {
			pg.Outline = g.outline(scale)
			x += pg.Outline.Advance
		}
		placed = append(placed, pg)
	}
	return placed
}

func (g typefaceOutline) outline(scale float64) GlyphOutline {
	b := outlineBuilder{scale: scale}
	for _, c := range g.cmds {
		a := c.args
		switch c.op {
		case OutlineOpMoveTo:
			b.moveTo(a[0], a[1])
		case OutlineOpLineTo:
			b.lineTo(a[0], a[1])
		case OutlineOpQuadTo:
			b.quadTo(a[0], a[1], a[2], a[3])
		case OutlineOpCubicTo:
			b.cubicTo(a[0], a[1], a[2], a[3], a[4], a[5])
		}
	}
	return GlyphOutline{Segments: b.segs, Advance: g.advance * scale}
}
