package text

import (
	"bytes"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/textmesh/geom"
)

// Format classifies raw font data.
type Format uint8

const (
	// FormatTypeface is three.js typeface JSON.
	FormatTypeface Format = iota

	// FormatBinary is a TrueType or OpenType font file.
	FormatBinary
)

// String returns a string representation of the format.
func (f Format) String() string {
	if f == FormatTypeface {
		return "typeface"
	}
	return "binary"
}

// DetectFormat reports the format of data: JSON when the first
// non-whitespace byte is '{', binary otherwise.
func DetectFormat(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return FormatTypeface
	}
	return FormatBinary
}

// FontParser turns raw font data into a Font.
type FontParser interface {
	Parse(data []byte) (Font, error)
}

// Font is a parsed font able to lay out a single line of text.
// Implementations must be safe for concurrent use.
type Font interface {
	// Name returns the family name, or "" when unknown.
	Name() string

	// Layout positions the glyphs of one line along the baseline starting at
	// the origin, with outlines scaled so that one em equals size.
	Layout(line []rune, size float64) []PlacedGlyph

	// LineHeight returns the distance between consecutive baselines at size.
	LineHeight(size float64) float64
}

// PlacedGlyph is one glyph of a laid out line.
type PlacedGlyph struct {
	// Rune is the character the glyph was produced for.
	Rune rune

	// Origin is the pen position of the glyph.
	Origin geom.Point

	// Outline is the glyph outline relative to Origin.
	Outline GlyphOutline

	// Missing is set when the font has no glyph for Rune. Outline then holds
	// the fallback glyph, or nothing when the font has no fallback either.
	Missing bool
}

// Parser names registered by default.
const (
	ParserTypeface = "typeface"
	ParserGoText   = "gotext"
	ParserXImage   = "ximage"
)

var (
	typefaceParsers = gpucontext.NewRegistry[FontParser](gpucontext.WithPriority(ParserTypeface))
	binaryParsers   = gpucontext.NewRegistry[FontParser](gpucontext.WithPriority(ParserGoText, ParserXImage))
)

func init() {
	typefaceParsers.Register(ParserTypeface, func() FontParser { return typefaceParser{} })
	binaryParsers.Register(ParserGoText, func() FontParser { return gotextParser{} })
	binaryParsers.Register(ParserXImage, func() FontParser { return ximageParser{} })
}

func registry(f Format) *gpucontext.Registry[FontParser] {
	if f == FormatTypeface {
		return typefaceParsers
	}
	return binaryParsers
}

// RegisterParser registers or replaces a parser for the given format.
// Safe for concurrent use.
func RegisterParser(f Format, name string, factory func() FontParser) {
	registry(f).Register(name, factory)
}

// UnregisterParser removes a parser for the given format.
func UnregisterParser(f Format, name string) {
	registry(f).Unregister(name)
}

// ParserFor returns the parser to use for data together with its name.
// If name is non-empty and registered for the detected format, that parser
// is used; otherwise the highest priority parser for the format is chosen.
func ParserFor(data []byte, name string) (FontParser, string, error) {
	reg := registry(DetectFormat(data))
	if name != "" && reg.Has(name) {
		return reg.Get(name), name, nil
	}
	best := reg.BestName()
	if best == "" {
		return nil, "", ErrNoParser
	}
	return reg.Get(best), best, nil
}
