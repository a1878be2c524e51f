package dom

import (
	"reflect"
	"sort"

	"github.com/npillmayer/styledtext/blocktree"
	"github.com/npillmayer/styledtext/dom/style"
	"github.com/npillmayer/styledtext/maybe"
	"golang.org/x/net/html"
)

// DefaultPriority is the priority of ops which do not state one.
const DefaultPriority = 10

// Op is a build op. Ops with lower priority run first.
//
// Ops are identified by ==. Implement Op on a pointer type; ops of a
// non-comparable dynamic type are never considered equal, not even to
// themselves.
type Op interface {
	Priority() int
	// IsBlockElement tells whether elements bound to the op are block level.
	IsBlockElement() bool
}

// DefaultStyler is implemented by ops which contribute default declarations
// for an element. Defaults are placed in front of all other declarations.
type DefaultStyler interface {
	DefaultStyles(meta *Metadata) []style.KeyValue
}

// ChildHook is implemented by ops which inspect or rewrite the metadata of
// child elements before those are visited.
type ChildHook interface {
	OnChild(meta *Metadata, e *html.Node) *Metadata
}

// PiecesHook is implemented by ops which post-process the pieces built for
// an element.
type PiecesHook interface {
	OnPieces(meta *Metadata, pieces []BuiltPiece) []BuiltPiece
}

// WidgetsHook is implemented by ops which post-process the widgets
// converted for an element.
type WidgetsHook interface {
	OnWidgets(meta *Metadata, ws []blocktree.Widget) []blocktree.Widget
}

// DefaultStyles returns the default declarations of op, if it is a
// DefaultStyler.
func DefaultStyles(op Op, meta *Metadata) []style.KeyValue {
	if ds, ok := op.(DefaultStyler); ok {
		return ds.DefaultStyles(meta)
	}
	return nil
}

// HasChildHook is true if op has a child hook to run. OpFuncs without a
// Child func do not.
func HasChildHook(op Op) bool {
	if _, ok := op.(ChildHook); !ok {
		return false
	}
	if f, ok := op.(*OpFuncs); ok {
		return f.Child != nil
	}
	return true
}

// OnChild calls the child hook of op, if any. A hook returning nil keeps
// meta.
func OnChild(op Op, meta *Metadata, e *html.Node) *Metadata {
	if h, ok := op.(ChildHook); ok {
		if m := h.OnChild(meta, e); m != nil {
			return m
		}
	}
	return meta
}

// OnPieces calls the pieces hook of op, if any.
func OnPieces(op Op, meta *Metadata, pieces []BuiltPiece) []BuiltPiece {
	if h, ok := op.(PiecesHook); ok {
		return h.OnPieces(meta, pieces)
	}
	return pieces
}

// OnWidgets calls the widgets hook of op, if any. If the hook returns an
// empty result, the input is returned unchanged.
func OnWidgets(op Op, meta *Metadata, ws []blocktree.Widget) []blocktree.Widget {
	if h, ok := op.(WidgetsHook); ok {
		if out := h.OnWidgets(meta, ws); len(out) > 0 {
			return out
		}
		tracer().Debugf("dom: op returned no widgets, keeping %d", len(ws))
	}
	return ws
}

// --- OpFuncs ---------------------------------------------------------------

// OpFuncs is an Op assembled from optional functions. Use it by pointer:
//
//	bold := &dom.OpFuncs{
//	    Name: "bold",
//	    Defaults: func(*dom.Metadata) []style.KeyValue {
//	        return []style.KeyValue{{Key: "font-weight", Value: "bold"}}
//	    },
//	}
//
// Block defaults to true if and only if Widgets is set.
type OpFuncs struct {
	Name     string
	Rank     maybe.Maybe[int]  // priority, DefaultPriority if unset
	Block    maybe.Maybe[bool] // block level override
	Defaults func(meta *Metadata) []style.KeyValue
	Child    func(meta *Metadata, e *html.Node) *Metadata
	Pieces   func(meta *Metadata, pieces []BuiltPiece) []BuiltPiece
	Widgets  func(meta *Metadata, ws []blocktree.Widget) []blocktree.Widget
}

// Priority is part of interface Op.
func (op *OpFuncs) Priority() int {
	return op.Rank.WithDefault(DefaultPriority)
}

// IsBlockElement is part of interface Op.
func (op *OpFuncs) IsBlockElement() bool {
	return op.Block.WithDefault(op.Widgets != nil)
}

// DefaultStyles is part of interface DefaultStyler.
func (op *OpFuncs) DefaultStyles(meta *Metadata) []style.KeyValue {
	if op.Defaults == nil {
		return nil
	}
	return op.Defaults(meta)
}

// OnChild is part of interface ChildHook.
func (op *OpFuncs) OnChild(meta *Metadata, e *html.Node) *Metadata {
	if op.Child == nil {
		return meta
	}
	return op.Child(meta, e)
}

// OnPieces is part of interface PiecesHook.
func (op *OpFuncs) OnPieces(meta *Metadata, pieces []BuiltPiece) []BuiltPiece {
	if op.Pieces == nil {
		return pieces
	}
	return op.Pieces(meta, pieces)
}

// OnWidgets is part of interface WidgetsHook.
func (op *OpFuncs) OnWidgets(meta *Metadata, ws []blocktree.Widget) []blocktree.Widget {
	if op.Widgets == nil {
		return ws
	}
	return op.Widgets(meta, ws)
}

func (op *OpFuncs) String() string {
	if op.Name == "" {
		return "op"
	}
	return op.Name
}

var _ Op = &OpFuncs{}
var _ DefaultStyler = &OpFuncs{}
var _ ChildHook = &OpFuncs{}
var _ PiecesHook = &OpFuncs{}
var _ WidgetsHook = &OpFuncs{}

// --- Ops -------------------------------------------------------------------

// Ops is a frozen sequence of build ops, sorted by ascending priority.
// The zero value is an empty sequence.
type Ops struct {
	ops []Op
}

func freezeOps(ops []Op) Ops {
	sorted := make([]Op, len(ops))
	copy(sorted, ops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() < sorted[j].Priority()
	})
	return Ops{ops: sorted}
}

// Len returns the number of ops.
func (o Ops) Len() int {
	return len(o.ops)
}

// At returns the i-th op.
func (o Ops) At(i int) Op {
	return o.ops[i]
}

// Slice returns a copy of the ops.
func (o Ops) Slice() []Op {
	c := make([]Op, len(o.ops))
	copy(c, o.ops)
	return c
}

// Contains checks whether op is a member of o.
func (o Ops) Contains(op Op) bool {
	return indexOp(o.ops, op) >= 0
}

// AnyBlock is true if any op of o is block level.
func (o Ops) AnyBlock() bool {
	for _, op := range o.ops {
		if op.IsBlockElement() {
			return true
		}
	}
	return false
}

// ChildHooks returns the ops of o which have a child hook, in order.
func (o Ops) ChildHooks() Ops {
	var hooks []Op
	for _, op := range o.ops {
		if HasChildHook(op) {
			hooks = append(hooks, op)
		}
	}
	return Ops{ops: hooks}
}

// Concat returns the ops of o followed by the ops of other.
func (o Ops) Concat(other Ops) Ops {
	if len(other.ops) == 0 {
		return o
	}
	if len(o.ops) == 0 {
		return other
	}
	ops := make([]Op, 0, len(o.ops)+len(other.ops))
	ops = append(ops, o.ops...)
	return Ops{ops: append(ops, other.ops...)}
}

func indexOp(ops []Op, op Op) int {
	for i, o := range ops {
		if sameOp(o, op) {
			return i
		}
	}
	return -1
}

// sameOp compares ops by ==, without panicking on non-comparable types.
func sameOp(a, b Op) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || ta == nil || !ta.Comparable() {
		return false
	}
	return a == b
}
