package textmesh

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want gputypes.Color
		ok   bool
	}{
		{"#000", gputypes.Color{A: 1}, true},
		{"#FFF", gputypes.Color{R: 1, G: 1, B: 1, A: 1}, true},
		{"#f00", gputypes.Color{R: 1, A: 1}, true},
		{"#0f08", gputypes.Color{G: 1, A: 136.0 / 255}, true},
		{"#00ff00", gputypes.Color{G: 1, A: 1}, true},
		{"#0000ff00", gputypes.Color{B: 1}, true},
		{" red ", gputypes.Color{R: 1, A: 1}, true},
		{"White", gputypes.Color{R: 1, G: 1, B: 1, A: 1}, true},
		{"#12", gputypes.Color{}, false},
		{"#ggg", gputypes.Color{}, false},
		{"chartreusy", gputypes.Color{}, false},
		{"", gputypes.Color{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, %v; want %+v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestColorOr(t *testing.T) {
	if got := colorOr("blue", DefaultColor); got != (gputypes.Color{B: 1, A: 1}) {
		t.Errorf("colorOr(blue) = %+v", got)
	}
	if got := colorOr("#xyz", DefaultOutlineColor); got != (gputypes.Color{R: 1, G: 1, B: 1, A: 1}) {
		t.Errorf("colorOr(invalid) = %+v, want fallback white", got)
	}
}
