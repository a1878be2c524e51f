package css

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/npillmayer/styledtext/maybe"
	"go.uber.org/multierr"
)

// --- Margin ----------------------------------------------------------------

// Margin holds an optional length per box edge.
type Margin struct {
	Top    maybe.Maybe[Length]
	Right  maybe.Maybe[Length]
	Bottom maybe.Maybe[Length]
	Left   maybe.Maybe[Length]
}

// IsNotEmpty is true if at least one edge has a positive length.
func (m Margin) IsNotEmpty() bool {
	for _, e := range [4]maybe.Maybe[Length]{m.Top, m.Right, m.Bottom, m.Left} {
		if l, ok := e.Get(); ok && l.IsNotEmpty() {
			return true
		}
	}
	return false
}

// CopyWith returns a new margin, taking the edges set in o and falling back
// to m for the others.
func (m Margin) CopyWith(o Margin) Margin {
	return Margin{
		Top:    o.Top.Or(m.Top),
		Right:  o.Right.Or(m.Right),
		Bottom: o.Bottom.Or(m.Bottom),
		Left:   o.Left.Or(m.Left),
	}
}

// ParseMargin parses a margin shorthand of one to four lengths, distributed
// clockwise from the top edge as in CSS:
//
//	1em          => all edges
//	1em 2px      => top+bottom, right+left
//	1em 2px 3px  => top, right+left, bottom
//
// Values which cannot be parsed (e.g. "auto") leave their edges unset; all
// failures are reported in the returned error, together with the partial
// margin.
func ParseMargin(value string) (Margin, error) {
	fields := strings.Fields(value)
	if len(fields) == 0 || len(fields) > 4 {
		return Margin{}, fmt.Errorf("expecting 1-4 values for margin, have %q", value)
	}
	var errs error
	lengths := make([]maybe.Maybe[Length], len(fields))
	for i, f := range fields {
		l, err := ParseLength(f)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		lengths[i] = maybe.Just(l)
	}
	e := distribute4(lengths)
	return Margin{Top: e[0], Right: e[1], Bottom: e[2], Left: e[3]}, errs
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
func distribute4[T any](v []T) [4]T {
	var r [4]T
	switch len(v) {
	case 1:
		r = [4]T{v[0], v[0], v[0], v[0]}
	case 2:
		r = [4]T{v[0], v[1], v[0], v[1]}
	case 3:
		r = [4]T{v[0], v[1], v[2], v[1]}
	case 4:
		r = [4]T{v[0], v[1], v[2], v[3]}
	}
	return r
}

// --- Borders ---------------------------------------------------------------

// BorderStyle is the line style of a border side. Only styles which have a
// text decoration counterpart are modelled.
type BorderStyle uint8

// Border styles.
const (
	BorderDashed BorderStyle = iota + 1
	BorderDotted
	BorderDouble
	BorderSolid
)

func (s BorderStyle) String() string {
	switch s {
	case BorderDashed:
		return "dashed"
	case BorderDotted:
		return "dotted"
	case BorderDouble:
		return "double"
	case BorderSolid:
		return "solid"
	}
	return "none"
}

// ErrUnknownBorderStyle is returned by ParseBorderStyle.
var ErrUnknownBorderStyle = errors.New("unknown border style")

// ParseBorderStyle parses one of "dashed", "dotted", "double" and "solid".
func ParseBorderStyle(s string) (BorderStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dashed":
		return BorderDashed, nil
	case "dotted":
		return BorderDotted, nil
	case "double":
		return BorderDouble, nil
	case "solid":
		return BorderSolid, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBorderStyle, s)
}

// BorderSide describes one edge of a border.
type BorderSide struct {
	Color maybe.Maybe[color.Color]
	Style maybe.Maybe[BorderStyle]
	Width maybe.Maybe[Length]
}

// CopyWith returns a new border side, taking the fields set in o and falling
// back to b for the others.
func (b BorderSide) CopyWith(o BorderSide) BorderSide {
	return BorderSide{
		Color: o.Color.Or(b.Color),
		Style: o.Style.Or(b.Style),
		Width: o.Width.Or(b.Width),
	}
}

// ParseBorderSide parses a border shorthand like "1px dashed #ccc".
// Tokens may appear in any order.
func ParseBorderSide(value string) (BorderSide, error) {
	var side BorderSide
	var errs error
	for _, f := range strings.Fields(value) {
		if s, err := ParseBorderStyle(f); err == nil {
			side.Style = maybe.Just(s)
			continue
		}
		if l, err := ParseLength(f); err == nil {
			side.Width = maybe.Just(l)
			continue
		}
		if c, err := ParseColor(f); err == nil {
			side.Color = maybe.Just(c)
			continue
		}
		errs = multierr.Append(errs, fmt.Errorf("border: cannot interpret %q", f))
	}
	return side, errs
}

// Borders holds an optional border side per box edge.
type Borders struct {
	Top    maybe.Maybe[BorderSide]
	Right  maybe.Maybe[BorderSide]
	Bottom maybe.Maybe[BorderSide]
	Left   maybe.Maybe[BorderSide]
}

// CopyWith returns a new border set, taking the sides set in o and falling
// back to b for the others.
func (b Borders) CopyWith(o Borders) Borders {
	return Borders{
		Top:    o.Top.Or(b.Top),
		Right:  o.Right.Or(b.Right),
		Bottom: o.Bottom.Or(b.Bottom),
		Left:   o.Left.Or(b.Left),
	}
}
