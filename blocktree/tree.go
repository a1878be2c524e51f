package blocktree

import (
	"github.com/npillmayer/styledtext/dom/style"
	"github.com/npillmayer/styledtext/maybe"
)

// Ref is the index of a node in the arena of a Tree. Refs stay valid for the
// lifetime of the tree, even for nodes which have been removed from their
// parent.
type Ref int32

const noRef Ref = -1

type node struct {
	kind     Kind
	parent   Ref
	children []Ref           // blocks only
	bit      Bit             // leaves only
	resolver *style.Resolver // blocks only
}

// Tree is an arena of block and leaf nodes. A tree may hold more than one
// root block.
type Tree struct {
	nodes []node
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{nodes: make([]node, 0, 32)}
}

func (t *Tree) alloc(n node) Ref {
	t.nodes = append(t.nodes, n)
	return Ref(len(t.nodes) - 1)
}

func (t *Tree) at(ref Ref) *node {
	return &t.nodes[ref]
}

// NewBlock creates a root block scoped to resolver r.
func (t *Tree) NewBlock(r *style.Resolver) Block {
	assertThat(r != nil, "block needs a style resolver")
	ref := t.alloc(node{kind: KindBlock, parent: noRef, resolver: r})
	return Block{tree: t, ref: ref}
}

// Len returns the number of nodes ever allocated in t.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// --- Handles ---------------------------------------------------------------

// Block is a handle for a block node. The zero value is not a valid block.
type Block struct {
	tree *Tree
	ref  Ref
}

// Tree returns the tree b lives in.
func (b Block) Tree() *Tree {
	return b.tree
}

// Ref returns the arena index of b.
func (b Block) Ref() Ref {
	return b.ref
}

// Resolver returns the style resolver scoping b.
func (b Block) Resolver() *style.Resolver {
	return b.tree.at(b.ref).resolver
}

// Pos returns a position handle for b.
func (b Block) Pos() Pos {
	return Pos{tree: b.tree, ref: b.ref}
}

// Parent returns the enclosing block, if b is not a root.
func (b Block) Parent() maybe.Maybe[Block] {
	p := b.tree.at(b.ref).parent
	if p == noRef {
		return maybe.Nothing[Block]()
	}
	return maybe.Just(Block{tree: b.tree, ref: p})
}

// Children returns positions for the direct children of b, sub-blocks
// included.
func (b Block) Children() []Pos {
	kids := b.tree.at(b.ref).children
	pp := make([]Pos, len(kids))
	for i, k := range kids {
		pp[i] = Pos{tree: b.tree, ref: k}
	}
	return pp
}

// Len returns the number of direct children of b.
func (b Block) Len() int {
	return len(b.tree.at(b.ref).children)
}

// Pos is a handle for any node of a tree, leaf or block.
type Pos struct {
	tree *Tree
	ref  Ref
}

// Ref returns the arena index of the node.
func (p Pos) Ref() Ref {
	return p.ref
}

// Kind returns the tag of the node.
func (p Pos) Kind() Kind {
	return p.tree.at(p.ref).kind
}

// Bit returns the content of a leaf, or nil for blocks.
func (p Pos) Bit() Bit {
	return p.tree.at(p.ref).bit
}

// AsBlock returns the node as a block, if it is one.
func (p Pos) AsBlock() maybe.Maybe[Block] {
	if p.Kind() != KindBlock {
		return maybe.Nothing[Block]()
	}
	return maybe.Just(Block{tree: p.tree, ref: p.ref})
}

// Block returns the block owning the node. For root blocks, the block
// itself is returned.
func (p Pos) Block() Block {
	parent := p.tree.at(p.ref).parent
	if parent == noRef {
		return Block{tree: p.tree, ref: p.ref}
	}
	return Block{tree: p.tree, ref: parent}
}

// Next returns the first meaningful leaf following the node, searching
// later siblings first and then ascending.
func (p Pos) Next() maybe.Maybe[Pos] {
	return p.tree.next(p.ref)
}

// Sub creates a new child block of b, scoped to resolver r, and appends it
// to the children of b.
func (b Block) Sub(r *style.Resolver) Block {
	assertThat(r != nil, "block needs a style resolver")
	ref := b.tree.alloc(node{kind: KindBlock, parent: b.ref, resolver: r})
	n := b.tree.at(b.ref)
	n.children = append(n.children, ref)
	return Block{tree: b.tree, ref: ref}
}

func (t *Tree) appendLeaf(parent Ref, bit Bit) Pos {
	ref := t.alloc(node{kind: bit.Kind(), parent: parent, bit: bit})
	n := t.at(parent)
	n.children = append(n.children, ref)
	return Pos{tree: t, ref: ref}
}
