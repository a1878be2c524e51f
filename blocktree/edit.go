package blocktree

import (
	"strings"

	"github.com/npillmayer/styledtext/maybe"
)

// AddText appends a run of text, styled by the resolver of b.
func (b Block) AddText(data string) Pos {
	assertThat(data != "", "data bit must not be empty")
	return b.tree.appendLeaf(b.ref, DataBit{Data: data, Resolver: b.Resolver()})
}

// AddWidget appends a placeholder for an embedded item.
func (b Block) AddWidget(ph Placeholder) Pos {
	return b.tree.appendLeaf(b.ref, WidgetBit{Placeholder: ph})
}

// AddBit appends a leaf. A DataBit without a resolver gets the resolver of b.
func (b Block) AddBit(bit Bit) Pos {
	assertThat(bit != nil, "cannot add nil bit")
	if d, ok := bit.(DataBit); ok {
		assertThat(d.Data != "", "data bit must not be empty")
		if d.Resolver == nil {
			bit = d.WithResolver(b.Resolver())
		}
	}
	return b.tree.appendLeaf(b.ref, bit)
}

// AddSpace appends a space, collapsing it with a preceding space.
//
// If the leaf preceding the insertion point (see Last) is a space, no new
// leaf is added. Literal whitespace, if given, is concatenated into that
// preceding space instead. AddSpace reports whether a leaf has been added
// or updated.
func (b Block) AddSpace(literal ...string) bool {
	data := strings.Join(literal, "")
	if l, ok := b.tree.last(b.ref); ok {
		if sp, isSpace := b.tree.at(l).bit.(SpaceBit); isSpace {
			if data == "" {
				return false
			}
			sp.Data += data
			b.tree.at(l).bit = sp
			return true
		}
	}
	b.tree.appendLeaf(b.ref, SpaceBit{Data: data})
	return true
}

// RemoveLast removes the last leaf of b and returns its bit. Trailing
// sub-blocks which hold no leaf are removed on the way. If b is empty,
// Nothing is returned.
func (b Block) RemoveLast() maybe.Maybe[Bit] {
	return b.tree.removeLast(b.ref)
}

func (t *Tree) removeLast(ref Ref) maybe.Maybe[Bit] {
	for {
		n := t.at(ref)
		if len(n.children) == 0 {
			return maybe.Nothing[Bit]()
		}
		lastChild := n.children[len(n.children)-1]
		if t.at(lastChild).kind == KindBlock {
			if removed := t.removeLast(lastChild); removed.IsJust() {
				return removed
			}
			tracer().Debugf("blocktree: dropping empty block %d", lastChild)
		}
		n = t.at(ref)
		n.children = n.children[:len(n.children)-1]
		if t.at(lastChild).kind != KindBlock {
			return maybe.Just(t.at(lastChild).bit)
		}
	}
}

// TrimRight removes trailing spaces from b.
func (b Block) TrimRight() {
	for !b.IsEmpty() && b.HasTrailingSpace() {
		b.RemoveLast()
	}
}

// RebuildBits replaces every leaf within b, at any depth, with the result
// of f. Blocks are never replaced. f must not return nil.
func (b Block) RebuildBits(f func(Bit) Bit) {
	b.tree.rebuild(b.ref, f)
}

func (t *Tree) rebuild(ref Ref, f func(Bit) Bit) {
	for _, c := range t.at(ref).children {
		if t.at(c).kind == KindBlock {
			t.rebuild(c, f)
			continue
		}
		bit := f(t.at(c).bit)
		assertThat(bit != nil, "rebuild must not return nil")
		n := t.at(c)
		n.bit = bit
		n.kind = bit.Kind()
	}
}

// ForEachBit calls visit for every leaf within b, at any depth, in document
// order or, if reversed is set, in reverse document order. visit receives
// the position of the leaf and its index within its own block. If visit
// returns false, the iteration stops and ForEachBit returns false.
func (b Block) ForEachBit(visit func(Pos, int) bool, reversed bool) bool {
	return b.tree.forEach(b.ref, visit, reversed)
}

func (t *Tree) forEach(ref Ref, visit func(Pos, int) bool, reversed bool) bool {
	kids := t.at(ref).children
	l := len(kids)
	for j := 0; j < l; j++ {
		i := j
		if reversed {
			i = l - 1 - j
		}
		c := kids[i]
		var cont bool
		if t.at(c).kind == KindBlock {
			cont = t.forEach(c, visit, reversed)
		} else {
			cont = visit(Pos{tree: t, ref: c}, i)
		}
		if !cont {
			return false
		}
	}
	return true
}
