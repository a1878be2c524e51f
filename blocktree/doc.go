/*
Package blocktree holds runs of styled text and embedded content in a
hierarchical tree of text blocks.

A Tree is an arena of nodes. Nodes are either blocks, which have an ordered
list of children and a style resolver scoping them, or leaves carrying a Bit:
a run of text (DataBit), a logical space (SpaceBit) or a placeholder for
non-text content (WidgetBit). Leaves never have children and are never empty.
Nodes are addressed by stable indices into the arena; a Block is a handle
for a block node, a Pos is a handle for any node.

	tree := blocktree.New()
	root := tree.NewBlock(resolver)
	root.AddText("Hello")
	root.AddSpace()
	em := root.Sub(resolver.Sub())
	em.AddText("World")

Structural queries (first and last meaningful leaf, next leaf, trailing
whitespace) work across arbitrarily nested and possibly empty sub-blocks.
Edits (collapsing whitespace, trimming, removing trailing leaves, rebuilding
leaves in place) keep the block structure intact.

Trees are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package blocktree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'styledtext.blocktree'
func tracer() tracing.Trace {
	return tracing.Select("styledtext.blocktree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("blocktree: "+msg, msgargs...)
		panic(msg)
	}
}
