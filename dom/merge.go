package dom

import (
	"image/color"

	"github.com/npillmayer/styledtext/css"
	"github.com/npillmayer/styledtext/dom/style"
	"github.com/npillmayer/styledtext/maybe"
)

// Intent is a single change to merge into a Metadata instance.
type Intent func(meta *Metadata)

// Merge applies intents to meta, in order, and returns meta. If meta is nil,
// a new instance is created.
func Merge(meta *Metadata, intents ...Intent) *Metadata {
	if meta == nil {
		meta = NewMetadata()
	}
	for _, intent := range intents {
		if intent != nil {
			intent(meta)
		}
	}
	return meta
}

// WithOp adds a build op, unless it is already present. Once the metadata
// is bound, ops may no longer be added; merging an op already bound is a
// no-op.
func WithOp(op Op) Intent {
	assertThat(op != nil, "cannot merge nil op")
	return func(meta *Metadata) {
		if meta.IsBound() {
			assertThat(meta.bound.Contains(op), "cannot add op %v after element has been bound", op)
			return
		}
		if indexOp(meta.ops, op) < 0 {
			meta.ops = append(meta.ops, op)
		}
	}
}

// WithParentOps sets the ops of the enclosing element. Parent ops may be set
// only once.
func WithParentOps(ops Ops) Intent {
	return func(meta *Metadata) {
		assertThat(meta.parentOps.IsNothing(), "parent ops already set")
		meta.parentOps = maybe.Just(ops)
	}
}

// WithStyles appends raw declarations, given as k0, v0, k1, v1, ….
func WithStyles(kv ...string) Intent {
	assertThat(len(kv)%2 == 0, "styles must come in key/value pairs, have %d strings", len(kv))
	return func(meta *Metadata) {
		assertThat(!meta.stylesFrozen, "styles already frozen")
		meta.styles = append(meta.styles, kv...)
	}
}

// WithStylesPrepend inserts raw declarations in front of existing ones.
// Prepended declarations lose against later ones with the same key.
func WithStylesPrepend(kv ...string) Intent {
	assertThat(len(kv)%2 == 0, "styles must come in key/value pairs, have %d strings", len(kv))
	return func(meta *Metadata) {
		assertThat(!meta.stylesFrozen, "styles already frozen")
		styles := make([]string, 0, len(kv)+len(meta.styles))
		styles = append(styles, kv...)
		meta.styles = append(styles, meta.styles...)
	}
}

// WithColor sets the text color. A nil color is ignored.
func WithColor(c color.Color) Intent {
	return func(meta *Metadata) {
		if c != nil {
			meta.color = maybe.Just(c)
		}
	}
}

// WithDecoStrike switches line-through decoration.
func WithDecoStrike(on bool) Intent {
	return func(meta *Metadata) { meta.decoStrike = maybe.Just(on) }
}

// WithDecoOver switches overline decoration.
func WithDecoOver(on bool) Intent {
	return func(meta *Metadata) { meta.decoOver = maybe.Just(on) }
}

// WithDecoUnder switches underline decoration.
func WithDecoUnder(on bool) Intent {
	return func(meta *Metadata) { meta.decoUnder = maybe.Just(on) }
}

// WithDecorationStyle sets the line style of decorations.
func WithDecorationStyle(s style.DecorationStyle) Intent {
	return func(meta *Metadata) {
		if s != style.DecorationStyleUnset {
			meta.decorationStyle = maybe.Just(s)
		}
	}
}

// WithDecorationStyleFromBorder sets the decoration line style matching a
// border style.
func WithDecorationStyleFromBorder(bs css.BorderStyle) Intent {
	var s style.DecorationStyle
	switch bs {
	case css.BorderDashed:
		s = style.DecorationStyleDashed
	case css.BorderDotted:
		s = style.DecorationStyleDotted
	case css.BorderDouble:
		s = style.DecorationStyleDouble
	case css.BorderSolid:
		s = style.DecorationStyleSolid
	}
	return WithDecorationStyle(s)
}

// WithFontFamily sets the font family. An empty name is ignored.
func WithFontFamily(family string) Intent {
	return func(meta *Metadata) {
		if family != "" {
			meta.fontFamily = maybe.Just(family)
		}
	}
}

// WithFontSize sets the raw font size, e.g. "12px". Parsing is deferred
// until the style is resolved. An empty value is ignored.
func WithFontSize(size string) Intent {
	return func(meta *Metadata) {
		if size != "" {
			meta.fontSize = maybe.Just(size)
		}
	}
}

// WithFontStyleItalic switches italic text.
func WithFontStyleItalic(italic bool) Intent {
	return func(meta *Metadata) { meta.fontStyleItalic = maybe.Just(italic) }
}

// WithFontWeight sets the font weight. A zero weight is ignored.
func WithFontWeight(w style.FontWeight) Intent {
	return func(meta *Metadata) {
		if w != 0 {
			meta.fontWeight = maybe.Just(w)
		}
	}
}

// WithTextAlign sets the text alignment.
func WithTextAlign(a style.TextAlign) Intent {
	return func(meta *Metadata) { meta.textAlign = maybe.Just(a) }
}

// WithBlockElement overrides the block level property.
func WithBlockElement(block bool) Intent {
	return func(meta *Metadata) { meta.blockElement = maybe.Just(block) }
}

// WithNotRenderable marks the element as producing no content.
func WithNotRenderable(not bool) Intent {
	return func(meta *Metadata) { meta.notRenderable = maybe.Just(not) }
}
