package css

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrUnknownColor is returned for color values ParseColor does not understand.
var ErrUnknownColor = errors.New("unknown color")

var namedColors = map[string]color.RGBA{
	"black":   {0, 0, 0, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"red":     {0xff, 0, 0, 0xff},
	"green":   {0, 0x80, 0, 0xff},
	"lime":    {0, 0xff, 0, 0xff},
	"blue":    {0, 0, 0xff, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"grey":    {0x80, 0x80, 0x80, 0xff},
	"silver":  {0xc0, 0xc0, 0xc0, 0xff},
	"maroon":  {0x80, 0, 0, 0xff},
	"purple":  {0x80, 0, 0x80, 0xff},
	"fuchsia": {0xff, 0, 0xff, 0xff},
	"olive":   {0x80, 0x80, 0, 0xff},
	"yellow":  {0xff, 0xff, 0, 0xff},
	"navy":    {0, 0, 0x80, 0xff},
	"teal":    {0, 0x80, 0x80, 0xff},
	"aqua":    {0, 0xff, 0xff, 0xff},
	"orange":  {0xff, 0xa5, 0, 0xff},
}

// ParseColor parses named colors, "transparent" and hex notations
// (#rgb, #rrggbb, #rrggbbaa).
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "transparent" {
		return color.Transparent, nil
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
