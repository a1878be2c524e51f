package css

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

// ErrUnsupportedUnit is returned for length units we cannot resolve,
// e.g. percentages or viewport units.
var ErrUnsupportedUnit = errors.New("unsupported length unit")

// ErrNegativeLength is returned when parsing a length with a negative magnitude.
var ErrNegativeLength = errors.New("length must not be negative")

// ErrMalformedLength is returned for input which is not a number with an
// optional unit.
var ErrMalformedLength = errors.New("malformed length")

// LengthUnit is the unit of a Length.
type LengthUnit uint8

// Length units. PX is the default.
const (
	PX LengthUnit = iota // absolute logical pixel
	EM                   // relative to the font size of the resolved text style
)

func (u LengthUnit) String() string {
	switch u {
	case PX:
		return "px"
	case EM:
		return "em"
	}
	return fmt.Sprintf("LengthUnit(%d)", u)
}

// Length is a non-negative dimension with a unit.
type Length struct {
	Number float64
	Unit   LengthUnit
}

// NewLength creates a length. A negative or NaN magnitude is a contract
// violation and panics.
func NewLength(n float64, unit LengthUnit) Length {
	assertThat(!math.IsNaN(n) && n >= 0, "length magnitude must not be negative, is %v", n)
	assertThat(unit == PX || unit == EM, "unknown length unit %d", unit)
	return Length{Number: n, Unit: unit}
}

// Px is a shortcut for NewLength(n, PX).
func Px(n float64) Length {
	return NewLength(n, PX)
}

// Em is a shortcut for NewLength(n, EM).
func Em(n float64) Length {
	return NewLength(n, EM)
}

// IsNotEmpty is true if the magnitude is positive.
func (l Length) IsNotEmpty() bool {
	return l.Number > 0
}

// Resolve returns the absolute value of l. fontSize is the font size of the
// current resolved text style, scale is the text scale factor of the
// rendering context. It is applied to both units.
func (l Length) Resolve(fontSize, scale float64) float64 {
	var v float64
	switch l.Unit {
	case EM:
		v = fontSize * l.Number
	default:
		v = l.Number
	}
	return v * scale
}

func (l Length) String() string {
	return strconv.FormatFloat(l.Number, 'f', -1, 64) + l.Unit.String()
}

// pxPerDU converts from tyse dimension units to CSS pixels (96px = 1in).
var pxPerDU = 96.0 / float64(dimen.IN)

var absoluteUnits = map[string]float64{
	"pt": float64(dimen.PT) * pxPerDU,
	"mm": float64(dimen.MM) * pxPerDU,
	"in": 96.0,
}

// ParseLength parses a CSS length like "1.5em", "12px", "10pt" or "0".
// A missing unit means PX. Print units are converted to PX.
func ParseLength(s string) (Length, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Length{}, fmt.Errorf("%w: empty input", ErrMalformedLength)
	}
	num, unit := splitUnit(s)
	n, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return Length{}, fmt.Errorf("%w: %q", ErrMalformedLength, s)
	}
	if n < 0 {
		return Length{}, fmt.Errorf("%w: %q", ErrNegativeLength, s)
	}
	switch unit {
	case "", "px":
		return Length{Number: n, Unit: PX}, nil
	case "em":
		return Length{Number: n, Unit: EM}, nil
	}
	if f, ok := absoluteUnits[unit]; ok {
		tracer().Debugf("css: normalizing %s to px", s)
		return Length{Number: n * f, Unit: PX}, nil
	}
	return Length{}, fmt.Errorf("%w: %q", ErrUnsupportedUnit, s)
}

func splitUnit(s string) (string, string) {
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if c == '%' || (c >= 'a' && c <= 'z') {
			i--
			continue
		}
		break
	}
	return s[:i], s[i:]
}
