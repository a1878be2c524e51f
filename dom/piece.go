package dom

import (
	"fmt"

	"github.com/npillmayer/styledtext/blocktree"
	"github.com/npillmayer/styledtext/maybe"
)

// BuiltPiece is a unit of content produced for an element: either a block of
// styled text or a list of ready-made widgets, never both.
type BuiltPiece struct {
	block   maybe.Maybe[blocktree.Block]
	widgets []blocktree.Widget
}

// TextPiece creates a piece holding a text block.
func TextPiece(b blocktree.Block) BuiltPiece {
	return BuiltPiece{block: maybe.Just(b)}
}

// WidgetPiece creates a piece holding widgets. At least one widget is
// required.
func WidgetPiece(ws ...blocktree.Widget) BuiltPiece {
	assertThat(len(ws) > 0, "widget piece needs widgets")
	return BuiltPiece{widgets: ws}
}

// Block returns the text block of a text piece.
func (p BuiltPiece) Block() maybe.Maybe[blocktree.Block] {
	return p.block
}

// Widgets returns the widgets of a widget piece.
func (p BuiltPiece) Widgets() []blocktree.Widget {
	return p.widgets
}

// HasWidgets is true for widget pieces.
func (p BuiltPiece) HasWidgets() bool {
	return p.block.IsNothing()
}

func (p BuiltPiece) String() string {
	if b, ok := p.block.Get(); ok {
		return fmt.Sprintf("piece(block %d)", b.Ref())
	}
	return fmt.Sprintf("piece(%d widgets)", len(p.widgets))
}
