package textmesh

import (
	"log/slog"

	"github.com/gogpu/textmesh/tessellate"
	"github.com/gogpu/textmesh/text"
)

// Option configures a Component.
//
// Example:
//
//	c := textmesh.New(node,
//	    textmesh.WithExtractor(text.NewExtractor(text.WithFontCache(4))),
//	)
type Option func(*options)

type options struct {
	extractor    *text.Extractor
	triangulator tessellate.Triangulator
	logger       *slog.Logger
	fillName     string
	outlineName  string
}

func defaultOptions() options {
	return options{
		triangulator: tessellate.Earcut{},
		fillName:     "text_mesh",
		outlineName:  "text_outline",
	}
}

// WithExtractor sets the shape extractor. The default extractor fetches
// with text.DefaultFetcher and shares the component logger.
func WithExtractor(e *text.Extractor) Option {
	return func(o *options) {
		o.extractor = e
	}
}

// WithTriangulator replaces the fill triangulator.
func WithTriangulator(t tessellate.Triangulator) Option {
	return func(o *options) {
		if t != nil {
			o.triangulator = t
		}
	}
}

// WithLogger sets the component logger. Without it the package logger
// from Logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithNames sets the display names of the fill and outline handles.
func WithNames(fill, outline string) Option {
	return func(o *options) {
		o.fillName = fill
		o.outlineName = outline
	}
}
