package text

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gogpu/textmesh/geom"
	"github.com/gogpu/textmesh/internal/cache"
	"golang.org/x/text/unicode/norm"
)

// Extractor turns a string into glyph shapes using a font fetched from a
// locator. An Extractor is safe for concurrent use.
type Extractor struct {
	opts  extractorOptions
	fonts *cache.Cache[string, Font]
	log   *slog.Logger
}

// NewExtractor creates an Extractor.
func NewExtractor(opts ...ExtractorOption) *Extractor {
	o := defaultExtractorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &Extractor{opts: o, log: o.logger}
	if e.log == nil {
		e.log = slog.New(discardHandler{})
	}
	if o.cacheSize > 0 {
		e.fonts = cache.New[string, Font](o.cacheSize)
	}
	return e
}

// Divisions returns the number of segments each curve is flattened into.
func (e *Extractor) Divisions() int {
	return e.opts.divisions
}

// Load fetches and parses the font at locator.
// Errors are returned as *FontLoadError.
func (e *Extractor) Load(ctx context.Context, locator string) (Font, error) {
	if e.fonts != nil {
		f, ok := e.fonts.Get(locator)
		st := e.fonts.Stats()
		if ok {
			e.log.Debug("text: font cache hit", "locator", locator, "hits", st.Hits, "misses", st.Misses)
			return f, nil
		}
		e.log.Debug("text: font cache miss", "locator", locator, "hits", st.Hits, "misses", st.Misses)
	}

	data, err := e.opts.fetcher.Fetch(ctx, locator)
	if err == nil && len(data) == 0 {
		err = ErrEmptyFontData
	}
	if err != nil {
		return nil, &FontLoadError{Locator: locator, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, &FontLoadError{Locator: locator, Err: err}
	}

	parser, name, err := ParserFor(data, e.opts.parser)
	if err != nil {
		return nil, &FontLoadError{Locator: locator, Err: err}
	}
	e.log.Debug("text: parsing font", "locator", locator, "parser", name, "bytes", len(data))
	f, err := parser.Parse(data)
	if err != nil {
		return nil, &FontLoadError{Locator: locator, Err: err}
	}

	if e.fonts != nil && e.fonts.Add(locator, f) {
		st := e.fonts.Stats()
		e.log.Debug("text: font cache full, evicted oldest", "size", st.Len, "capacity", st.Capacity)
	}
	return f, nil
}

// Extract loads the font at locator and returns the shapes of value laid out
// at the given em size. Glyphs run left to right from the origin along the
// baseline; each '\n' starts a new line one line height lower.
//
// Exactly one fetch is issued per call unless the font cache is enabled.
// Fetch, parse and cancellation failures are returned as *FontLoadError.
func (e *Extractor) Extract(ctx context.Context, locator, value string, size float64) ([]Shape, error) {
	f, err := e.Load(ctx, locator)
	if err != nil {
		return nil, err
	}
	shapes := e.Layout(f, value, size)
	if err := ctx.Err(); err != nil {
		return nil, &FontLoadError{Locator: locator, Err: err}
	}
	return shapes, nil
}

// Layout lays out value with an already loaded font.
func (e *Extractor) Layout(f Font, value string, size float64) []Shape {
	value = norm.NFC.String(value)
	lineHeight := f.LineHeight(size)

	var (
		shapes []Shape
		glyph  int
	)
	for i, line := range strings.Split(value, "\n") {
		origin := geom.Pt(0, -float64(i)*lineHeight)
		for _, pg := range f.Layout([]rune(line), size) {
			if pg.Missing {
				if pg.Outline.IsEmpty() {
					e.log.Warn("text: missing glyph skipped", "rune", string(pg.Rune))
				} else {
					e.log.Warn("text: missing glyph replaced", "rune", string(pg.Rune))
				}
			}
			contours := pg.Outline.Contours(e.opts.divisions, origin.Add(pg.Origin))
			shapes = append(shapes, GroupContours(glyph, contours)...)
			glyph++
		}
	}
	return shapes
}

// discardHandler drops every record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }
