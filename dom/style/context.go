package style

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/npillmayer/styledtext/css"
	yaml "gopkg.in/yaml.v3"
)

// ErrNoDefaultStyle is returned by contexts which cannot provide a root style.
var ErrNoDefaultStyle = errors.New("no default text style available")

// Token identifies the ambient rendering conditions. Tokens are compared with
// ==, so their dynamic types must be comparable.
type Token interface{}

// Context is the ambient rendering context resolvers read from. It is owned
// by the caller; resolvers never modify it.
type Context interface {
	// Token changes whenever the default style or the scale factor change.
	Token() Token
	// DefaultStyle is the style root resolvers start from.
	DefaultStyle() (TextStyle, error)
	// TextScaleFactor is applied multiplicatively to absolute lengths.
	TextScaleFactor() float64
}

// StaticContext is a Context holding its values in memory. Every Update
// produces a new token, invalidating all resolvers which were resolved
// against the previous values.
type StaticContext struct {
	style      TextStyle
	hasStyle   bool
	scale      float64
	generation uint64
}

type staticToken struct {
	ctx        *StaticContext
	generation uint64
}

// NewContext creates a context with a default style and a text scale factor.
// A non-positive scale is replaced by 1.
func NewContext(ts TextStyle, scale float64) *StaticContext {
	c := &StaticContext{}
	c.Update(ts, scale)
	return c
}

// Update replaces default style and scale factor.
func (c *StaticContext) Update(ts TextStyle, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	c.style, c.hasStyle, c.scale = ts, true, scale
	c.generation++
}

// Token is part of interface Context.
func (c *StaticContext) Token() Token {
	return staticToken{ctx: c, generation: c.generation}
}

// DefaultStyle is part of interface Context.
func (c *StaticContext) DefaultStyle() (TextStyle, error) {
	if !c.hasStyle {
		return TextStyle{}, ErrNoDefaultStyle
	}
	return c.style, nil
}

// TextScaleFactor is part of interface Context.
func (c *StaticContext) TextScaleFactor() float64 {
	if c.scale <= 0 {
		return 1
	}
	return c.scale
}

var _ Context = &StaticContext{}

// --- Configuration ---------------------------------------------------------

// ContextConfig is the serialized form of a StaticContext.
//
//	text_scale_factor: 1.2
//	default_style:
//	  font_family: serif
//	  font_size: 16
//	  font_weight: 400
//	  color: "#333"
type ContextConfig struct {
	TextScaleFactor float64     `yaml:"text_scale_factor"`
	DefaultStyle    StyleConfig `yaml:"default_style"`
}

// StyleConfig is the serialized form of a TextStyle.
type StyleConfig struct {
	FontFamily string  `yaml:"font_family"`
	FontSize   float64 `yaml:"font_size"`
	FontWeight int     `yaml:"font_weight"`
	Italic     bool    `yaml:"italic"`
	Color      string  `yaml:"color"`
}

// DefaultContextConfig is used for fields missing from a configuration.
var DefaultContextConfig = ContextConfig{
	TextScaleFactor: 1,
	DefaultStyle: StyleConfig{
		FontFamily: "sans-serif",
		FontSize:   14,
		FontWeight: int(FontWeightNormal),
		Color:      "black",
	},
}

// LoadContextConfig reads a YAML context configuration and creates a
// StaticContext from it.
func LoadContextConfig(r io.Reader) (*StaticContext, error) {
	conf := DefaultContextConfig
	if err := yaml.NewDecoder(r).Decode(&conf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("style: cannot read context configuration: %w", err)
	}
	return conf.Context()
}

// Context creates a StaticContext from a configuration.
func (conf ContextConfig) Context() (*StaticContext, error) {
	ts, err := conf.DefaultStyle.TextStyle()
	if err != nil {
		return nil, err
	}
	return NewContext(ts, conf.TextScaleFactor), nil
}

// TextStyle converts a style configuration.
func (sc StyleConfig) TextStyle() (TextStyle, error) {
	ts := TextStyle{
		FontFamily: sc.FontFamily,
		FontSize:   sc.FontSize,
		FontWeight: FontWeight(sc.FontWeight),
	}
	if sc.FontSize <= 0 {
		return ts, fmt.Errorf("style: font size must be positive, is %v", sc.FontSize)
	}
	if ts.FontWeight == 0 {
		ts.FontWeight = FontWeightNormal
	}
	if sc.Italic {
		ts.FontStyle = FontStyleItalic
	}
	ts.Color = color.Black
	if sc.Color != "" {
		c, err := css.ParseColor(sc.Color)
		if err != nil {
			return ts, err
		}
		ts.Color = c
	}
	return ts, nil
}
