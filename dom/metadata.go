package dom

import (
	"image/color"

	"github.com/npillmayer/styledtext/dom/style"
	"github.com/npillmayer/styledtext/maybe"
	"golang.org/x/net/html"
)

// Metadata accumulates style and behaviour intents for a single element.
//
// Scalar intents are optional values; merging an absent value never clears
// a present one. Raw declarations are kept as an ordered list of key/value
// strings until they are iterated for the first time with Styles. From
// then on they are frozen.
//
// Metadata is not safe for concurrent use.
type Metadata struct {
	ops       []Op
	bound     Ops
	parentOps maybe.Maybe[Ops]
	element   *html.Node
	resolver  *style.Resolver

	color           maybe.Maybe[color.Color]
	decoStrike      maybe.Maybe[bool]
	decoOver        maybe.Maybe[bool]
	decoUnder       maybe.Maybe[bool]
	decorationStyle maybe.Maybe[style.DecorationStyle]
	fontFamily      maybe.Maybe[string]
	fontSize        maybe.Maybe[string]
	fontStyleItalic maybe.Maybe[bool]
	fontWeight      maybe.Maybe[style.FontWeight]
	textAlign       maybe.Maybe[style.TextAlign]
	blockElement    maybe.Maybe[bool]
	notRenderable   maybe.Maybe[bool]

	styles       []string
	stylesFrozen bool
}

// NewMetadata creates empty metadata. Merge(nil, …) does the same.
func NewMetadata() *Metadata {
	return &Metadata{}
}

// BindElement associates meta with its element. Binding sorts the build ops
// by ascending priority (stable for equal priorities) and freezes them.
// An element may be bound only once.
func (meta *Metadata) BindElement(e *html.Node) {
	assertThat(e != nil, "cannot bind nil element")
	if meta.element != nil {
		assertThat(false, "metadata already bound to element <%s>", meta.element.Data)
	}
	meta.element = e
	meta.bound = freezeOps(meta.ops)
	meta.ops = nil
	tracer().Debugf("dom: bound <%s> with %d op(s)", e.Data, meta.bound.Len())
}

// Element returns the element meta is bound to, or nil.
func (meta *Metadata) Element() *html.Node {
	return meta.element
}

// IsBound is true after BindElement has been called.
func (meta *Metadata) IsBound() bool {
	return meta.element != nil
}

// SetResolver associates the style resolver of the element. It may be set
// only once.
func (meta *Metadata) SetResolver(r *style.Resolver) {
	assertThat(r != nil, "cannot set nil resolver")
	assertThat(meta.resolver == nil, "resolver already set")
	meta.resolver = r
}

// Resolver returns the style resolver of the element, or nil.
func (meta *Metadata) Resolver() *style.Resolver {
	return meta.resolver
}

// Ops returns the build ops. Before binding, a snapshot of the ops in merge
// order is returned; afterwards the ops sorted by priority.
func (meta *Metadata) Ops() Ops {
	if meta.IsBound() {
		return meta.bound
	}
	snapshot := make([]Op, len(meta.ops))
	copy(snapshot, meta.ops)
	return Ops{ops: snapshot}
}

// HasOps is true if at least one build op has been merged.
func (meta *Metadata) HasOps() bool {
	return len(meta.ops) > 0 || meta.bound.Len() > 0
}

// ParentOps returns the build ops inherited from the enclosing element.
func (meta *Metadata) ParentOps() Ops {
	return meta.parentOps.WithDefault(Ops{})
}

// HasParents is true if parent ops have been assigned, even if empty.
func (meta *Metadata) HasParents() bool {
	return meta.parentOps.IsJust()
}

// IsBlockElement is true if the block level override is set, or if any of
// the build ops is block level.
func (meta *Metadata) IsBlockElement() bool {
	if meta.blockElement.WithDefault(false) {
		return true
	}
	return meta.Ops().AnyBlock()
}

// IsNotRenderable is true if the element should not produce content.
func (meta *Metadata) IsNotRenderable() bool {
	return meta.notRenderable.WithDefault(false)
}

// Color returns the color intent.
func (meta *Metadata) Color() maybe.Maybe[color.Color] { return meta.color }

// DecoStrike returns the line-through intent.
func (meta *Metadata) DecoStrike() maybe.Maybe[bool] { return meta.decoStrike }

// DecoOver returns the overline intent.
func (meta *Metadata) DecoOver() maybe.Maybe[bool] { return meta.decoOver }

// DecoUnder returns the underline intent.
func (meta *Metadata) DecoUnder() maybe.Maybe[bool] { return meta.decoUnder }

// DecorationStyle returns the decoration style intent.
func (meta *Metadata) DecorationStyle() maybe.Maybe[style.DecorationStyle] {
	return meta.decorationStyle
}

// FontFamily returns the font family intent.
func (meta *Metadata) FontFamily() maybe.Maybe[string] { return meta.fontFamily }

// FontSize returns the raw font size intent, e.g. "1.2em".
func (meta *Metadata) FontSize() maybe.Maybe[string] { return meta.fontSize }

// FontStyleItalic returns the italic intent.
func (meta *Metadata) FontStyleItalic() maybe.Maybe[bool] { return meta.fontStyleItalic }

// FontWeight returns the font weight intent.
func (meta *Metadata) FontWeight() maybe.Maybe[style.FontWeight] { return meta.fontWeight }

// TextAlign returns the text alignment intent.
func (meta *Metadata) TextAlign() maybe.Maybe[style.TextAlign] { return meta.textAlign }

// Styles calls f for every raw declaration, in order. The first call
// freezes the declarations.
func (meta *Metadata) Styles(f func(key, value string)) {
	meta.stylesFrozen = true
	for i := 0; i+1 < len(meta.styles); i += 2 {
		f(meta.styles[i], meta.styles[i+1])
	}
}

// StylesFrozen is true once the declarations have been iterated.
func (meta *Metadata) StylesFrozen() bool {
	return meta.stylesFrozen
}

func (meta *Metadata) String() string {
	if meta.element == nil {
		return "Metadata(unbound)"
	}
	return "Metadata(<" + meta.element.Data + ">)"
}
