package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// FontStyle is either normal or italic.
type FontStyle uint8

// Font styles.
const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
)

// FontWeight is a numeric CSS font weight, 100 … 900.
type FontWeight uint16

// Common font weights.
const (
	FontWeightNormal FontWeight = 400
	FontWeightBold   FontWeight = 700
)

// ParseFontWeight understands numeric weights and the keywords
// "normal" and "bold".
func ParseFontWeight(p Property) (FontWeight, error) {
	switch kw := p.Keyword(); kw {
	case "normal":
		return FontWeightNormal, nil
	case "bold":
		return FontWeightBold, nil
	default:
		n, err := strconv.Atoi(kw)
		if err != nil || n < 100 || n > 900 || n%100 != 0 {
			return 0, fmt.Errorf("style: invalid font weight %q", p)
		}
		return FontWeight(n), nil
	}
}

// Decoration is a set of text decoration lines.
type Decoration uint8

// Decoration lines.
const (
	DecorationNone    Decoration = 0
	DecorationStrike  Decoration = 0x01
	DecorationOver    Decoration = 0x02
	DecorationUnder   Decoration = 0x04
	decorationAllMask Decoration = 0x07
)

// With returns d with line l switched on or off.
func (d Decoration) With(l Decoration, on bool) Decoration {
	if on {
		return (d | l) & decorationAllMask
	}
	return d &^ l
}

// Has is true if all lines of l are set in d.
func (d Decoration) Has(l Decoration) bool {
	return l != 0 && d&l == l
}

func (d Decoration) String() string {
	if d == DecorationNone {
		return "none"
	}
	var parts []string
	if d.Has(DecorationUnder) {
		parts = append(parts, "underline")
	}
	if d.Has(DecorationOver) {
		parts = append(parts, "overline")
	}
	if d.Has(DecorationStrike) {
		parts = append(parts, "line-through")
	}
	return strings.Join(parts, " ")
}

// DecorationStyle is the line style of text decorations.
type DecorationStyle uint8

// Decoration styles. The zero value means "not set".
const (
	DecorationStyleUnset DecorationStyle = iota
	DecorationStyleSolid
	DecorationStyleDouble
	DecorationStyleDotted
	DecorationStyleDashed
	DecorationStyleWavy
)

// ParseDecorationStyle parses a text-decoration-style keyword.
func ParseDecorationStyle(p Property) (DecorationStyle, error) {
	switch p.Keyword() {
	case "solid":
		return DecorationStyleSolid, nil
	case "double":
		return DecorationStyleDouble, nil
	case "dotted":
		return DecorationStyleDotted, nil
	case "dashed":
		return DecorationStyleDashed, nil
	case "wavy":
		return DecorationStyleWavy, nil
	}
	return DecorationStyleUnset, fmt.Errorf("style: invalid decoration style %q", p)
}

// TextAlign is the horizontal alignment of text in a block.
type TextAlign uint8

// Text alignments.
const (
	TextAlignStart TextAlign = iota
	TextAlignEnd
	TextAlignLeft
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

// ParseTextAlign parses a text-align keyword.
func ParseTextAlign(p Property) (TextAlign, error) {
	switch p.Keyword() {
	case "start":
		return TextAlignStart, nil
	case "end":
		return TextAlignEnd, nil
	case "left":
		return TextAlignLeft, nil
	case "right":
		return TextAlignRight, nil
	case "center":
		return TextAlignCenter, nil
	case "justify":
		return TextAlignJustify, nil
	}
	return TextAlignStart, fmt.Errorf("style: invalid text alignment %q", p)
}

// TextStyle is a resolved text style. Values of TextStyle are produced by
// resolvers and are never shared mutably.
type TextStyle struct {
	Color           color.Color
	FontFamily      string
	FontSize        float64 // absolute, in logical pixels
	FontStyle       FontStyle
	FontWeight      FontWeight
	Decoration      Decoration
	DecorationStyle DecorationStyle
}

func (ts TextStyle) String() string {
	return fmt.Sprintf("TextStyle(%q %.4gpx w%d italic=%v deco=%s)",
		ts.FontFamily, ts.FontSize, ts.FontWeight, ts.FontStyle == FontStyleItalic,
		ts.Decoration)
}
