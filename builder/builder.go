package builder

import (
	"fmt"
	"strings"

	"github.com/npillmayer/styledtext/blocktree"
	"github.com/npillmayer/styledtext/dom"
	"github.com/npillmayer/styledtext/dom/style"
	"golang.org/x/net/html"
)

// Builder converts HTML element trees into widgets.
type Builder struct {
	ctx       style.Context
	binders   []Binder
	converter Converter
	root      *style.Resolver
	tree      *blocktree.Tree
}

// Option configures a Builder.
type Option func(*Builder)

// WithBinder adds a binder. Ops of all binders are merged, in the order the
// binders have been added.
func WithBinder(binder Binder) Option {
	return func(b *Builder) {
		if binder != nil {
			b.binders = append(b.binders, binder)
		}
	}
}

// WithConverter sets the converter. The default is TextConverter.
func WithConverter(c Converter) Option {
	return func(b *Builder) {
		if c != nil {
			b.converter = c
		}
	}
}

// WithRootResolver sets the resolver the resolvers of top-level elements
// are chained to. Steps enqueued on it apply to the whole document. The
// default is a fresh root resolver per build.
func WithRootResolver(r *style.Resolver) Option {
	return func(b *Builder) {
		b.root = r
	}
}

// New creates a builder which resolves styles within the rendering
// context ctx.
func New(ctx style.Context, opts ...Option) *Builder {
	if ctx == nil {
		panic("builder: rendering context must not be nil")
	}
	b := &Builder{ctx: ctx, converter: TextConverter{}}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Tree returns the text block tree of the most recent build.
func (b *Builder) Tree() *blocktree.Tree {
	return b.tree
}

// Build converts the tree under root into widgets. root may be a document
// node or an element.
func (b *Builder) Build(root *html.Node) ([]blocktree.Widget, error) {
	if root == nil {
		return nil, nil
	}
	b.tree = blocktree.New()
	rootRes := b.root
	if rootRes == nil {
		rootRes = style.NewResolver()
	}
	meta := dom.NewMetadata()
	meta.SetResolver(rootRes)
	f := newFrame(b.tree, rootRes)
	var err error
	if root.Type == html.ElementNode {
		err = b.element(root, nil, f)
	} else {
		err = b.children(root, nil, f)
	}
	if err != nil {
		return nil, err
	}
	f.finish()
	tracer().Debugf("builder: %d top-level piece(s)", len(f.pieces))
	return b.converter.Convert(b.ctx, meta, f.pieces)
}

// Collect builds the metadata for element e, given the metadata of the
// enclosing element (nil for top-level elements). It merges the ops of the
// enclosing element and the ops of all binders, lets the child hooks of all
// enclosing elements inspect the metadata, binds it to e and interprets user agent defaults,
// default styles of ops and the style attribute, in this order of
// increasing precedence.
func (b *Builder) Collect(e *html.Node, parent *dom.Metadata) *dom.Metadata {
	var parentOps dom.Ops
	if parent != nil {
		parentOps = parent.ParentOps().Concat(parent.Ops().ChildHooks())
	}
	meta := dom.Merge(nil, dom.WithParentOps(parentOps))
	for _, binder := range b.binders {
		for _, op := range binder.Bind(e) {
			dom.Merge(meta, dom.WithOp(op))
		}
	}
	for i := 0; i < parentOps.Len(); i++ {
		meta = dom.OnChild(parentOps.At(i), meta, e)
	}
	meta.BindElement(e)
	defaults := []string{"display", string(style.DisplayPropertyForHTMLNode(e))}
	ops := meta.Ops()
	for i := 0; i < ops.Len(); i++ {
		defaults = append(defaults, style.Flatten(dom.DefaultStyles(ops.At(i), meta))...)
	}
	dom.Merge(meta, dom.WithStylesPrepend(defaults...))
	if attr, ok := attribute(e, "style"); ok {
		kvs, err := style.ParseInline(attr)
		if err != nil {
			tracer().Errorf("builder: <%s>: %v", e.Data, err)
		} else {
			dom.Merge(meta, dom.WithStyles(style.Flatten(kvs)...))
		}
	}
	if err := dom.ApplyDeclarations(meta); err != nil {
		tracer().Infof("builder: <%s>: %v", e.Data, err)
	}
	return meta
}

func (b *Builder) children(n *html.Node, meta *dom.Metadata, f *frame) error {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			f.text(c.Data)
		case html.ElementNode:
			if err := b.element(c, meta, f); err != nil {
				return err
			}
		case html.DocumentNode:
			if err := b.children(c, meta, f); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *Builder) element(e *html.Node, parent *dom.Metadata, f *frame) error {
	meta := b.Collect(e, parent)
	if meta.IsNotRenderable() {
		tracer().Debugf("builder: skipping <%s>", e.Data)
		return nil
	}
	r := dom.AttachResolver(meta, f.cur.Resolver())
	ops := meta.Ops()
	if !meta.IsBlockElement() {
		f.open(r)
		err := b.children(e, meta, f)
		pieces := []dom.BuiltPiece{dom.TextPiece(f.cur)}
		f.close()
		if err != nil {
			return err
		}
		for i := 0; i < ops.Len(); i++ {
			pieces = dom.OnPieces(ops.At(i), meta, pieces)
		}
		for _, p := range pieces {
			for _, w := range p.Widgets() {
				f.cur.AddWidget(blocktree.Placeholder{Child: w})
			}
		}
		return nil
	}
	f.flush()
	inner := newFrame(f.tree, r)
	if err := b.children(e, meta, inner); err != nil {
		return err
	}
	inner.finish()
	pieces := inner.pieces
	for i := 0; i < ops.Len(); i++ {
		pieces = dom.OnPieces(ops.At(i), meta, pieces)
	}
	ws, err := b.converter.Convert(b.ctx, meta, pieces)
	if err != nil {
		return fmt.Errorf("builder: cannot convert <%s>: %w", e.Data, err)
	}
	for i := 0; i < ops.Len(); i++ {
		ws = dom.OnWidgets(ops.At(i), meta, ws)
	}
	if len(ws) > 0 {
		f.pieces = append(f.pieces, dom.WidgetPiece(ws...))
	}
	return nil
}

func attribute(e *html.Node, key string) (string, bool) {
	for _, a := range e.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

// --- Frames ----------------------------------------------------------------

// frame collects the pieces of a block level element. Text is appended at
// cur, which is either the current text block or the innermost sub-block of
// the currently open inline elements.
type frame struct {
	tree     *blocktree.Tree
	resolver *style.Resolver
	root     blocktree.Block
	cur      blocktree.Block
	inline   []*style.Resolver
	pieces   []dom.BuiltPiece
}

func newFrame(tree *blocktree.Tree, r *style.Resolver) *frame {
	f := &frame{tree: tree, resolver: r}
	f.root = tree.NewBlock(r)
	f.cur = f.root
	return f
}

func (f *frame) open(r *style.Resolver) {
	f.inline = append(f.inline, r)
	f.cur = f.cur.Sub(r)
}

func (f *frame) close() {
	f.inline = f.inline[:len(f.inline)-1]
	parent, ok := f.cur.Parent().Get()
	if !ok {
		panic("builder: unbalanced inline element")
	}
	f.cur = parent
}

// finish closes the current text block.
func (f *frame) finish() {
	f.root.TrimRight()
	if !f.root.IsEmpty() {
		f.pieces = append(f.pieces, dom.TextPiece(f.root))
	}
}

// flush closes the current text block and starts a new one, re-opening the
// sub-blocks of all open inline elements.
func (f *frame) flush() {
	f.finish()
	f.root = f.tree.NewBlock(f.resolver)
	f.cur = f.root
	for _, r := range f.inline {
		f.cur = f.cur.Sub(r)
	}
}

// text appends a text node, collapsing white space. Leading white space is
// dropped at the start of a text block.
func (f *frame) text(s string) {
	words := strings.FieldsFunc(s, isHTMLSpace)
	leading := s != "" && isHTMLSpace(rune(s[0]))
	trailing := s != "" && isHTMLSpace(rune(s[len(s)-1]))
	if (leading || len(words) == 0 && s != "") && f.cur.Last().IsJust() {
		f.cur.AddSpace()
	}
	for i, w := range words {
		if i > 0 {
			f.cur.AddSpace()
		}
		f.cur.AddText(w)
	}
	if trailing && len(words) > 0 {
		f.cur.AddSpace()
	}
}

func isHTMLSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}
