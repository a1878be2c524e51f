package blocktree

import "github.com/npillmayer/styledtext/maybe"

// firstIn searches the subtree of ref for its first leaf, left to right.
func (t *Tree) firstIn(ref Ref) (Ref, bool) {
	n := t.at(ref)
	switch n.kind {
	case KindBlock:
		for _, c := range n.children {
			if f, ok := t.firstIn(c); ok {
				return f, true
			}
		}
		return noRef, false
	default:
		return ref, true
	}
}

// lastIn searches the subtree of ref for its last leaf, right to left.
// Child skip is not searched.
func (t *Tree) lastIn(ref Ref, skip Ref) (Ref, bool) {
	n := t.at(ref)
	switch n.kind {
	case KindBlock:
		for i := len(n.children) - 1; i >= 0; i-- {
			c := n.children[i]
			if c == skip {
				continue
			}
			if l, ok := t.lastIn(c, noRef); ok {
				return l, true
			}
		}
		return noRef, false
	default:
		return ref, true
	}
}

// last searches the subtree of ref, then every ancestor of ref, innermost
// first. A subtree already searched is not entered again.
func (t *Tree) last(ref Ref) (Ref, bool) {
	if l, ok := t.lastIn(ref, noRef); ok {
		return l, true
	}
	for child, parent := ref, t.at(ref).parent; parent != noRef; child, parent = parent, t.at(parent).parent {
		if l, ok := t.lastIn(parent, child); ok {
			return l, true
		}
	}
	return noRef, false
}

func (t *Tree) indexOf(parent, child Ref) int {
	for i, c := range t.at(parent).children {
		if c == child {
			return i
		}
	}
	return -1
}

func (t *Tree) next(ref Ref) maybe.Maybe[Pos] {
	for child, parent := ref, t.at(ref).parent; parent != noRef; child, parent = parent, t.at(parent).parent {
		siblings := t.at(parent).children
		i := t.indexOf(parent, child)
		assertThat(i >= 0, "node %d is not a child of its parent %d", child, parent)
		for _, s := range siblings[i+1:] {
			if f, ok := t.firstIn(s); ok {
				return maybe.Just(Pos{tree: t, ref: f})
			}
		}
	}
	return maybe.Nothing[Pos]()
}

// First returns the first meaningful leaf within b, if any.
func (b Block) First() maybe.Maybe[Pos] {
	if f, ok := b.tree.firstIn(b.ref); ok {
		return maybe.Just(Pos{tree: b.tree, ref: f})
	}
	return maybe.Nothing[Pos]()
}

// Last returns the last meaningful leaf of b. If b is empty, the search
// continues within the enclosing blocks, innermost first. For a block which
// is currently being appended to, this is the leaf new content will follow.
func (b Block) Last() maybe.Maybe[Pos] {
	if l, ok := b.tree.last(b.ref); ok {
		return maybe.Just(Pos{tree: b.tree, ref: l})
	}
	return maybe.Nothing[Pos]()
}

// Next returns the first meaningful leaf after b, searching later siblings
// of b and then ascending to the siblings of its ancestors.
func (b Block) Next() maybe.Maybe[Pos] {
	return b.tree.next(b.ref)
}

// IsEmpty is true if b contains no leaf, at any depth.
func (b Block) IsEmpty() bool {
	_, ok := b.tree.firstIn(b.ref)
	return !ok
}

// HasTrailingSpace is true if the last meaningful leaf (see Last) ends in a
// collapsible space, or if there is no such leaf at all.
func (b Block) HasTrailingSpace() bool {
	l, ok := b.tree.last(b.ref)
	if !ok {
		return true
	}
	return b.tree.at(l).bit.HasTrailingSpace()
}
