package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when a fetch yields no bytes.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoParser is returned when no registered parser accepts the data format.
	ErrNoParser = errors.New("text: no font parser registered")

	// ErrUnknownEmbed is returned for an embed: locator naming no bundled font.
	ErrUnknownEmbed = errors.New("text: unknown embedded font")

	// ErrFetchStatus is returned when an HTTP fetch completes with a non-2xx status.
	ErrFetchStatus = errors.New("text: unexpected fetch status")

	// ErrMalformedTypeface is returned for typeface JSON missing required fields.
	ErrMalformedTypeface = errors.New("text: malformed typeface")
)

// FontLoadError reports that the font at Locator could not be fetched,
// parsed or was abandoned because the load was cancelled.
type FontLoadError struct {
	Locator string
	Err     error
}

func (e *FontLoadError) Error() string {
	return fmt.Sprintf("text: load font %q: %v", e.Locator, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FontLoadError) Unwrap() error {
	return e.Err
}
