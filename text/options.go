package text

import (
	"log/slog"

	"github.com/gogpu/textmesh/geom"
)

// ExtractorOption configures an Extractor.
type ExtractorOption func(*extractorOptions)

type extractorOptions struct {
	fetcher   Fetcher
	divisions int
	parser    string
	cacheSize int
	logger    *slog.Logger
}

func defaultExtractorOptions() extractorOptions {
	return extractorOptions{
		fetcher:   &DefaultFetcher{},
		divisions: geom.DefaultDivisions,
	}
}

// WithFetcher sets the transport used to retrieve font data.
func WithFetcher(f Fetcher) ExtractorOption {
	return func(o *extractorOptions) {
		if f != nil {
			o.fetcher = f
		}
	}
}

// WithCurveSegments sets how many straight segments each curve is split into.
// Values below 1 are ignored.
func WithCurveSegments(n int) ExtractorOption {
	return func(o *extractorOptions) {
		if n >= 1 {
			o.divisions = n
		}
	}
}

// WithParser forces the named parser when it is registered for the format
// of the fetched data.
func WithParser(name string) ExtractorOption {
	return func(o *extractorOptions) {
		o.parser = name
	}
}

// WithFontCache keeps up to n parsed fonts keyed by locator. A cached font
// is not fetched again. Caching is off by default.
func WithFontCache(n int) ExtractorOption {
	return func(o *extractorOptions) {
		o.cacheSize = n
	}
}

// WithLogger sets the logger for fetch, parse and glyph diagnostics.
func WithLogger(l *slog.Logger) ExtractorOption {
	return func(o *extractorOptions) {
		o.logger = l
	}
}
