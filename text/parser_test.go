package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"json", []byte(`{"glyphs":{}}`), FormatTypeface},
		{"json with space", []byte("\n  {}"), FormatTypeface},
		{"ttf", goregular.TTF, FormatBinary},
		{"empty", nil, FormatBinary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat(tt.data); got != tt.want {
				t.Errorf("DetectFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParserFor(t *testing.T) {
	_, name, err := ParserFor([]byte(`{}`), "")
	if err != nil || name != ParserTypeface {
		t.Errorf("ParserFor(json) = %q, %v", name, err)
	}
	_, name, err = ParserFor(goregular.TTF, "")
	if err != nil || name != ParserGoText {
		t.Errorf("ParserFor(ttf) = %q, %v; want gotext", name, err)
	}
	_, name, err = ParserFor(goregular.TTF, ParserXImage)
	if err != nil || name != ParserXImage {
		t.Errorf("ParserFor(ttf, ximage) = %q, %v", name, err)
	}
	// a name registered for the other format is ignored
	_, name, _ = ParserFor(goregular.TTF, ParserTypeface)
	if name != ParserGoText {
		t.Errorf("ParserFor(ttf, typeface) = %q, want gotext", name)
	}
}

func TestRegisterParser(t *testing.T) {
	sentinel := errors.New("custom parser")
	RegisterParser(FormatTypeface, "custom", func() FontParser { return failingParser{sentinel} })
	defer UnregisterParser(FormatTypeface, "custom")

	p, name, err := ParserFor([]byte(`{}`), "custom")
	if err != nil || name != "custom" {
		t.Fatalf("ParserFor = %q, %v", name, err)
	}
	if _, err := p.Parse(nil); !errors.Is(err, sentinel) {
		t.Errorf("Parse() error = %v, want sentinel", err)
	}
}

type failingParser struct{ err error }

func (p failingParser) Parse([]byte) (Font, error) { return nil, p.err }

func TestTypefaceParse(t *testing.T) {
	f, err := typefaceParser{}.Parse(fixtureData(t))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if f.Name() != "Fixture" {
		t.Errorf("Name() = %q", f.Name())
	}
	if lh := f.LineHeight(2); !approx(lh, 2.1) {
		t.Errorf("LineHeight(2) = %v, want 2.1", lh)
	}

	placed := f.Layout([]rune("OZA"), 1)
	if len(placed) != 3 {
		t.Fatalf("Layout() = %d glyphs, want 3", len(placed))
	}
	wantX := []float64{0, 0.7, 1.1}
	for i, pg := range placed {
		if !approx(pg.Origin.X, wantX[i]) {
			t.Errorf("glyph %d origin = %v, want %v", i, pg.Origin.X, wantX[i])
		}
	}
	if !placed[1].Missing || placed[1].Outline.IsEmpty() {
		t.Error("Z should be missing and replaced by '?'")
	}
	if placed[0].Missing || placed[2].Missing {
		t.Error("O and A are in the font")
	}
}

func TestTypefaceQuadOrder(t *testing.T) {
	cmds, err := parseTypefaceCommands("m 0 0 q 10 0 5 5 b 1 2 3 4 5 6")
	if err != nil {
		t.Fatalf("parse error = %v", err)
	}
	if len(cmds) != 3 {
		t.Fatalf("got %d commands, want 3", len(cmds))
	}
	q := cmds[1].args
	if q[0] != 5 || q[1] != 5 || q[2] != 10 || q[3] != 0 {
		t.Errorf("quad args = %v, want control then end", q)
	}
	b := cmds[2].args
	want := []float64{3, 4, 5, 6, 1, 2}
	for i := range want {
		if b[i] != want[i] {
			t.Fatalf("cubic args = %v, want %v", b, want)
		}
	}
}

func TestTypefaceParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"zero resolution", `{"resolution":0,"glyphs":{"a":{"ha":1,"o":""}}}`, ErrMalformedTypeface},
		{"no glyphs", `{"resolution":1000,"glyphs":{}}`, ErrMalformedTypeface},
		{"bad command", `{"resolution":1000,"glyphs":{"a":{"ha":1,"o":"x 1 2"}}}`, ErrMalformedTypeface},
		{"short args", `{"resolution":1000,"glyphs":{"a":{"ha":1,"o":"m 1"}}}`, ErrMalformedTypeface},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := typefaceParser{}.Parse([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := (typefaceParser{}).Parse([]byte(`{not json`)); err == nil {
		t.Error("Parse(invalid json) should fail")
	}
}

func TestBinaryParsers(t *testing.T) {
	for _, p := range []struct {
		name   string
		parser FontParser
	}{
		{ParserGoText, gotextParser{}},
		{ParserXImage, ximageParser{}},
	} {
		t.Run(p.name, func(t *testing.T) {
			f, err := p.parser.Parse(goregular.TTF)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if f.LineHeight(1) <= 1 {
				t.Errorf("LineHeight(1) = %v, want > 1", f.LineHeight(1))
			}
			placed := f.Layout([]rune("Ho"), 1)
			if len(placed) != 2 {
				t.Fatalf("Layout() = %d glyphs, want 2", len(placed))
			}
			if placed[1].Origin.X <= 0 || placed[1].Origin.X >= 1 {
				t.Errorf("second glyph origin = %v, want in (0, 1)", placed[1].Origin.X)
			}
			for _, pg := range placed {
				if pg.Missing || pg.Outline.IsEmpty() {
					t.Errorf("glyph %q missing or empty", pg.Rune)
				}
			}
		})
	}

	if _, err := (ximageParser{}).Parse([]byte("not a font")); err == nil {
		t.Error("ximage Parse(garbage) should fail")
	}
	if _, err := (gotextParser{}).Parse([]byte("not a font")); err == nil {
		t.Error("gotext Parse(garbage) should fail")
	}
}
