/*
Package builder drives the conversion of an HTML element tree into styled
widgets.

For every element the builder collects metadata (package dom) from the
build ops bound to the element, the ops of the enclosing element, user
agent defaults and the element's style attribute. It attaches a style
resolver, chained to the resolver of the enclosing element, and appends the
element's text content into a text block tree (package blocktree).

Block level elements produce pieces: runs of text blocks interleaved with
the widgets of nested block level elements. Build ops may post-process the
pieces, a Converter turns them into widgets, and build ops may finally
post-process the widgets. Inline elements open a sub-block within the
current run of text instead.

	b := builder.New(ctx,
	    builder.WithBinder(binder),
	    builder.WithConverter(builder.TextConverter{}))
	widgets, err := b.Build(doc)

Builders are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package builder

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'styledtext.builder'
func tracer() tracing.Trace {
	return tracing.Select("styledtext.builder")
}
