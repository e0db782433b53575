package textmesh

import (
	"strings"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS-style color: "#rgb", "#rgba", "#rrggbb",
// "#rrggbbaa" or a CSS color name such as "tomato". Components are
// returned in [0, 1]. ok is false when s is not a color.
func ParseColor(s string) (c gputypes.Color, ok bool) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	if named, found := colornames.Map[strings.ToLower(s)]; found {
		return gputypes.Color{
			R: float64(named.R) / 255,
			G: float64(named.G) / 255,
			B: float64(named.B) / 255,
			A: float64(named.A) / 255,
		}, true
	}
	return gputypes.Color{}, false
}

// colorOr parses s, falling back to fallback when s is not a color.
func colorOr(s, fallback string) gputypes.Color {
	if c, ok := ParseColor(s); ok {
		return c
	}
	c, _ := ParseColor(fallback)
	return c
}

func parseHexColor(hex string) (gputypes.Color, bool) {
	digits := make([]uint32, len(hex))
	for i := 0; i < len(hex); i++ {
		v, ok := hexDigit(hex[i])
		if !ok {
			return gputypes.Color{}, false
		}
		digits[i] = v
	}

	var r, g, b, a uint32
	a = 255
	switch len(digits) {
	case 3: // RGB
		r, g, b = digits[0]*17, digits[1]*17, digits[2]*17
	case 4: // RGBA
		r, g, b, a = digits[0]*17, digits[1]*17, digits[2]*17, digits[3]*17
	case 6: // RRGGBB
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
	case 8: // RRGGBBAA
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
		a = digits[6]<<4 | digits[7]
	default:
		return gputypes.Color{}, false
	}
	return gputypes.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	}
	return 0, false
}
