package text

import "strings"

// DefaultFont is the preset used when a font name is not recognised.
const DefaultFont = "helvetiker_regular"

// EmbedScheme prefixes locators served from fonts compiled into the binary.
const EmbedScheme = "embed:"

const typefaceBaseURL = "https://threejs.org/examples/fonts/"

var presets = map[string]string{
	"gentilis_regular":   typefaceBaseURL + "gentilis_regular.typeface.json",
	"gentilis_bold":      typefaceBaseURL + "gentilis_bold.typeface.json",
	"optimer_regular":    typefaceBaseURL + "optimer_regular.typeface.json",
	"optimer_bold":       typefaceBaseURL + "optimer_bold.typeface.json",
	"helvetiker_regular": typefaceBaseURL + "helvetiker_regular.typeface.json",
	"helvetiker_bold":    typefaceBaseURL + "helvetiker_bold.typeface.json",
	"go_regular":         EmbedScheme + "goregular",
	"go_bold":            EmbedScheme + "gobold",
}

// Resolve maps a font identifier to a locator.
//
// Identifiers that already point at a resource (a .json, .ttf or .otf path
// or URL, or an embed: locator) are returned unchanged. Preset names map to
// their locator, and anything else resolves to DefaultFont. Resolve never
// fails.
func Resolve(id string) string {
	if IsDirectReference(id) {
		return id
	}
	if loc, ok := presets[id]; ok {
		return loc
	}
	return presets[DefaultFont]
}

// IsDirectReference reports whether id names a font resource rather than a
// preset.
func IsDirectReference(id string) bool {
	if strings.HasPrefix(id, EmbedScheme) {
		return true
	}
	lower := strings.ToLower(id)
	for _, ext := range []string{".json", ".ttf", ".otf"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Presets returns the names of the built-in font presets.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
