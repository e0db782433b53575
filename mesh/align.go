package mesh

import (
	"strings"

	"github.com/gogpu/textmesh/geom"
)

// Align selects how text is placed horizontally.
type Align uint8

const (
	// AlignLeft is the default alignment.
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// String returns the attribute spelling of the alignment.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlign parses an alignment name. "centre" is accepted as a spelling
// of center; anything unrecognised yields AlignLeft.
func ParseAlign(s string) Align {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centre":
		return AlignCenter
	case "right":
		return AlignRight
	default:
		return AlignLeft
	}
}

// AlignOffset returns the X translation applied to both the fill and the
// outline for the given union bounds. With w the box width:
//
//	left   -w
//	center -w/2
//	right  +w
//
// An empty box yields 0.
func AlignOffset(b geom.Box, a Align) float64 {
	if b.IsEmpty() {
		return 0
	}
	w := b.Width()
	switch a {
	case AlignCenter:
		return -0.5 * w
	case AlignRight:
		return w
	default:
		return -w
	}
}
