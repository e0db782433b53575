package textmesh

import (
	"errors"

	"github.com/gogpu/textmesh/text"
)

// ErrAttach is returned, wrapped, when the scene node rejects a published
// object. Nothing stays attached after it.
var ErrAttach = errors.New("textmesh: attach failed")

// FontLoadError reports a font that could not be fetched or parsed.
// It is the text package's error type; use errors.As to inspect it.
type FontLoadError = text.FontLoadError
