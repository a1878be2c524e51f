package blocktree

import (
	"fmt"

	"github.com/npillmayer/styledtext/dom/style"
)

// Kind is the tag of a tree node.
type Kind uint8

// Node kinds.
const (
	KindBlock Kind = iota
	KindData
	KindSpace
	KindWidget
)

func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "block"
	case KindData:
		return "data"
	case KindSpace:
		return "space"
	case KindWidget:
		return "widget"
	}
	return "?"
}

// Widget is an opaque renderable item, produced and consumed by clients.
type Widget interface{}

// Bit is the content of a leaf node. The set of bits is closed: DataBit,
// SpaceBit and WidgetBit.
type Bit interface {
	Kind() Kind
	// HasTrailingSpace is true for bits which end in a collapsible space.
	HasTrailingSpace() bool
	isBit()
}

// DataBit is a non-empty run of text, styled by a resolver. OnTap is an
// optional activation callback which is carried along but never called
// from within this package.
type DataBit struct {
	Data     string
	Resolver *style.Resolver
	OnTap    func()
}

// Kind is part of interface Bit.
func (DataBit) Kind() Kind { return KindData }

// HasTrailingSpace is part of interface Bit.
func (DataBit) HasTrailingSpace() bool { return false }

func (DataBit) isBit() {}

// WithData returns a copy of b with its text replaced.
func (b DataBit) WithData(data string) DataBit {
	assertThat(data != "", "data bit must not be empty")
	b.Data = data
	return b
}

// WithResolver returns a copy of b styled by r.
func (b DataBit) WithResolver(r *style.Resolver) DataBit {
	if r != nil {
		b.Resolver = r
	}
	return b
}

// WithTap returns a copy of b with its activation callback replaced.
func (b DataBit) WithTap(onTap func()) DataBit {
	if onTap != nil {
		b.OnTap = onTap
	}
	return b
}

func (b DataBit) String() string {
	return fmt.Sprintf("%q", b.Data)
}

// SpaceBit is a single logical space. If Data is set, the bit holds literal
// whitespace (for example from pre-formatted text) and does not count as a
// trailing space.
type SpaceBit struct {
	Data string
}

// Kind is part of interface Bit.
func (SpaceBit) Kind() Kind { return KindSpace }

// HasTrailingSpace is part of interface Bit.
func (b SpaceBit) HasTrailingSpace() bool { return b.Data == "" }

func (SpaceBit) isBit() {}

func (b SpaceBit) String() string {
	if b.Data == "" {
		return "␣"
	}
	return fmt.Sprintf("␣%q", b.Data)
}

// PlaceholderAlignment tells how an embedded item is aligned with the
// surrounding text.
type PlaceholderAlignment uint8

// Placeholder alignments.
const (
	AlignBaseline PlaceholderAlignment = iota
	AlignAboveBaseline
	AlignBelowBaseline
	AlignTop
	AlignBottom
	AlignMiddle
)

// TextBaseline selects the baseline used for AlignBaseline and friends.
type TextBaseline uint8

// Baselines.
const (
	BaselineAlphabetic TextBaseline = iota
	BaselineIdeographic
)

// Placeholder describes an embedded item inside a run of text.
type Placeholder struct {
	Alignment PlaceholderAlignment
	Baseline  TextBaseline
	Child     Widget
}

// WidgetBit is a placeholder for non-text content.
type WidgetBit struct {
	Placeholder Placeholder
}

// Kind is part of interface Bit.
func (WidgetBit) Kind() Kind { return KindWidget }

// HasTrailingSpace is part of interface Bit.
func (WidgetBit) HasTrailingSpace() bool { return false }

func (WidgetBit) isBit() {}

// WithChild returns a copy of b with the embedded item replaced.
func (b WidgetBit) WithChild(w Widget) WidgetBit {
	if w != nil {
		b.Placeholder.Child = w
	}
	return b
}

// WithAlignment returns a copy of b with alignment and baseline replaced.
func (b WidgetBit) WithAlignment(a PlaceholderAlignment, base TextBaseline) WidgetBit {
	b.Placeholder.Alignment = a
	b.Placeholder.Baseline = base
	return b
}

func (b WidgetBit) String() string {
	return fmt.Sprintf("widget(%v)", b.Placeholder.Child)
}

var _ Bit = DataBit{}
var _ Bit = SpaceBit{}
var _ Bit = WidgetBit{}
