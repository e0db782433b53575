package textmesh

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/textmesh/mesh"
	"github.com/gogpu/textmesh/text"
	"gopkg.in/yaml.v3"
)

// Default attribute values.
const (
	DefaultColor        = "#000"
	DefaultOutlineColor = "#FFF"
	DefaultAlign        = "left"
	DefaultSide         = "front"
	DefaultOpacity      = 1.0
	DefaultSize         = 1.0
)

// Config is the configuration of one render cycle. Every field is kept as
// given; invalid values degrade to defaults when the cycle runs.
type Config struct {
	Value        string  `yaml:"value"`
	Color        string  `yaml:"color"`
	OutlineColor string  `yaml:"outlineColor"`
	Font         string  `yaml:"font"`
	Align        string  `yaml:"align"`
	Opacity      float64 `yaml:"opacity"`
	Side         string  `yaml:"side"`

	// Size is the em size in world units.
	Size float64 `yaml:"size"`
}

// DefaultConfig returns the configuration used for absent attributes.
func DefaultConfig() Config {
	return Config{
		Color:        DefaultColor,
		OutlineColor: DefaultOutlineColor,
		Font:         text.DefaultFont,
		Align:        DefaultAlign,
		Opacity:      DefaultOpacity,
		Side:         DefaultSide,
		Size:         DefaultSize,
	}
}

// ParseAttributes parses the host attribute form
//
//	value: Hello; color: #f00; align: center
//
// on top of DefaultConfig.
func ParseAttributes(s string) Config {
	return DefaultConfig().WithAttributes(s)
}

// WithAttributes returns c with the declarations in s applied. Keys are
// case-sensitive, unknown keys are ignored, and a number that does not
// parse keeps its previous value.
func (c Config) WithAttributes(s string) Config {
	for _, decl := range strings.Split(s, ";") {
		key, val, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		key, val = strings.TrimSpace(key), strings.TrimSpace(val)
		switch key {
		case "value":
			c.Value = val
		case "color":
			c.Color = val
		case "outlineColor":
			c.OutlineColor = val
		case "font":
			c.Font = val
		case "align":
			c.Align = val
		case "side":
			c.Side = val
		case "opacity":
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				c.Opacity = f
			}
		case "size":
			if f, err := strconv.ParseFloat(val, 64); err == nil {
				c.Size = f
			}
		}
	}
	return c
}

// LoadConfig decodes a YAML configuration on top of DefaultConfig.
// Unknown keys are an error.
func LoadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("textmesh: decode config: %w", err)
	}
	return c, nil
}

// Locator returns the font locator the configuration resolves to.
func (c Config) Locator() string {
	return text.Resolve(c.Font)
}

// AlignMode returns the parsed alignment.
func (c Config) AlignMode() mesh.Align {
	return mesh.ParseAlign(c.Align)
}

// SideMode returns the parsed side.
func (c Config) SideMode() mesh.Side {
	return mesh.ParseSide(c.Side)
}

// EmSize returns Size, or DefaultSize when Size is not a positive number.
func (c Config) EmSize() float64 {
	if c.Size <= 0 || math.IsNaN(c.Size) || math.IsInf(c.Size, 0) {
		return DefaultSize
	}
	return c.Size
}

// FillMaterial returns the material of the glyph fill.
func (c Config) FillMaterial() mesh.Material {
	return mesh.NewMaterial(colorOr(c.Color, DefaultColor), c.Opacity, c.SideMode())
}

// OutlineMaterial returns the material shared by all outline lines.
func (c Config) OutlineMaterial() mesh.Material {
	return mesh.NewMaterial(colorOr(c.OutlineColor, DefaultOutlineColor), 1, c.SideMode())
}
