package style

import (
	"image/color"

	"github.com/npillmayer/styledtext/css"
)

// Stock builders for the properties of TextStyle. Use them with Enqueue.

// Italic switches the font style.
func Italic(_ *Resolver, ts TextStyle, italic bool) TextStyle {
	if italic {
		ts.FontStyle = FontStyleItalic
	} else {
		ts.FontStyle = FontStyleNormal
	}
	return ts
}

// Weight sets the font weight.
func Weight(_ *Resolver, ts TextStyle, w FontWeight) TextStyle {
	ts.FontWeight = w
	return ts
}

// Foreground sets the text color.
func Foreground(_ *Resolver, ts TextStyle, c color.Color) TextStyle {
	ts.Color = c
	return ts
}

// Family sets the font family.
func Family(_ *Resolver, ts TextStyle, family string) TextStyle {
	ts.FontFamily = family
	return ts
}

// DecorationLine switches a set of decoration lines on or off.
type DecorationLine struct {
	Lines Decoration
	On    bool
}

// Decorate applies a DecorationLine.
func Decorate(_ *Resolver, ts TextStyle, d DecorationLine) TextStyle {
	ts.Decoration = ts.Decoration.With(d.Lines, d.On)
	return ts
}

// DecorationLineStyle sets the decoration style.
func DecorationLineStyle(_ *Resolver, ts TextStyle, s DecorationStyle) TextStyle {
	ts.DecorationStyle = s
	return ts
}

// FontSize sets the font size from a length. EM lengths are relative to the
// font size inherited so far, which already carries the text scale factor;
// PX lengths get scaled by the factor of the resolver's rendering context.
func FontSize(r *Resolver, ts TextStyle, l css.Length) TextStyle {
	scale := 1.0
	if ctx := r.Context(); ctx != nil && l.Unit == css.PX {
		scale = ctx.TextScaleFactor()
	}
	ts.FontSize = l.Resolve(ts.FontSize, scale)
	return ts
}

// Align sets the text alignment override of the resolver. The style itself
// passes through unchanged.
func Align(r *Resolver, ts TextStyle, a TextAlign) TextStyle {
	r.SetTextAlign(a)
	return ts
}
