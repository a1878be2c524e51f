package dom

import (
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/styledtext/blocktree"
	"github.com/npillmayer/styledtext/css"
	"github.com/npillmayer/styledtext/dom/style"
	"github.com/npillmayer/styledtext/maybe"
	"go.uber.org/multierr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func op(name string, prio int) *OpFuncs {
	return &OpFuncs{Name: name, Rank: maybe.Just(prio)}
}

func element(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
}

func expectPanic(t *testing.T, what string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("expected %s to panic, didn't", what)
		}
	}()
	f()
}

func names(ops Ops) string {
	s := ""
	for i := 0; i < ops.Len(); i++ {
		s += ops.At(i).(*OpFuncs).Name
	}
	return s
}

func TestOpsSortedOnBind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext.dom")
	defer teardown()
	//
	a, b, c, d := op("a", 5), op("b", 1), op("c", 5), op("d", 1)
	meta := Merge(nil, WithOp(a), WithOp(b))
	meta = Merge(meta, WithOp(c), WithOp(a), WithOp(d))
	if names(meta.Ops()) != "abcd" {
		t.Errorf("expected merge order abcd before binding, is %s", names(meta.Ops()))
	}
	meta.BindElement(element("p"))
	if names(meta.Ops()) != "bdac" {
		t.Errorf("expected bound order bdac, is %s", names(meta.Ops()))
	}
	if !meta.HasOps() {
		t.Error("expected metadata to have ops")
	}
}

func TestBindTwicePanics(t *testing.T) {
	meta := NewMetadata()
	meta.BindElement(element("p"))
	expectPanic(t, "second bind", func() {
		meta.BindElement(element("div"))
	})
	if meta.Element().Data != "p" {
		t.Errorf("expected element to stay <p>, is <%s>", meta.Element().Data)
	}
}

func TestOpsFrozenAfterBind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext.dom")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	a, b := op("a", 5), op("b", 1)
	meta := Merge(nil, WithOp(a), WithOp(b))
	meta.BindElement(element("span"))
	Merge(meta, WithOp(a))
	if names(meta.Ops()) != "ba" {
		t.Errorf("expected re-merging a bound op to change nothing, is %s", names(meta.Ops()))
	}
	expectPanic(t, "merging a new op after bind", func() {
		Merge(meta, WithOp(op("x", 0)))
	})
	if names(meta.Ops()) != "ba" {
		t.Errorf("expected bound ops to stay ba, is %s", names(meta.Ops()))
	}
	ops := meta.Ops().Slice()
	ops[0] = op("z", 0)
	if names(meta.Ops()) != "ba" {
		t.Error("expected ops to be immune to changes of a copy")
	}
}

func TestStyleBatches(t *testing.T) {
	meta := Merge(nil, WithStyles("color", "red"))
	expectPanic(t, "odd-length batch", func() {
		Merge(meta, WithStyles("font-size"))
	})
	expectPanic(t, "odd-length prepend batch", func() {
		Merge(meta, WithStylesPrepend("a", "b", "c"))
	})
	Merge(meta, WithStylesPrepend("font-weight", "bold"), WithStyles("color", "blue"))
	var got []string
	meta.Styles(func(k, v string) {
		got = append(got, k+":"+v)
	})
	if len(got) != 3 || got[0] != "font-weight:bold" || got[2] != "color:blue" {
		t.Errorf("expected [font-weight:bold color:red color:blue], is %v", got)
	}
	if !meta.StylesFrozen() {
		t.Error("expected styles to be frozen after iteration")
	}
	expectPanic(t, "merging styles after freeze", func() {
		Merge(meta, WithStyles("color", "green"))
	})
}

func TestParentOpsWriteOnce(t *testing.T) {
	parent := Merge(nil, WithOp(op("p", 1)))
	parent.BindElement(element("div"))
	meta := Merge(nil, WithParentOps(parent.Ops()))
	if !meta.HasParents() || meta.ParentOps().Len() != 1 {
		t.Error("expected parent ops to be set")
	}
	expectPanic(t, "second parent ops", func() {
		Merge(meta, WithParentOps(Ops{}))
	})
}

func TestResolverWriteOnce(t *testing.T) {
	meta := NewMetadata()
	meta.SetResolver(style.NewResolver())
	expectPanic(t, "second resolver", func() {
		meta.SetResolver(style.NewResolver())
	})
}

func TestIsBlockElement(t *testing.T) {
	if NewMetadata().IsBlockElement() {
		t.Error("expected fresh metadata not to be block level")
	}
	meta := Merge(nil, WithBlockElement(true))
	if !meta.IsBlockElement() {
		t.Error("expected override to make element block level without ops")
	}
	blockOp := &OpFuncs{Block: maybe.Just(true)}
	meta = Merge(nil, WithOp(op("inline", 1)), WithOp(blockOp))
	if !meta.IsBlockElement() {
		t.Error("expected block level op to make element block level")
	}
	widgetOp := &OpFuncs{Widgets: func(_ *Metadata, ws []blocktree.Widget) []blocktree.Widget {
		return ws
	}}
	if !widgetOp.IsBlockElement() {
		t.Error("expected op with widgets hook to be block level by default")
	}
	if op("x", 1).IsBlockElement() || (&OpFuncs{}).Priority() != DefaultPriority {
		t.Error("expected plain op to be inline with default priority")
	}
}

func TestScalarIntentsNeverClear(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	meta := Merge(nil, WithColor(red), WithFontFamily("serif"), WithFontWeight(style.FontWeightBold))
	Merge(meta, WithColor(nil), WithFontFamily(""), WithFontWeight(0), WithFontSize(""))
	if c, _ := meta.Color().Get(); c != red {
		t.Errorf("expected color to stay red, is %v", c)
	}
	if f, _ := meta.FontFamily().Get(); f != "serif" {
		t.Errorf("expected family to stay serif, is %q", f)
	}
	if w, _ := meta.FontWeight().Get(); w != style.FontWeightBold {
		t.Errorf("expected weight to stay bold, is %d", w)
	}
	if meta.FontSize().IsJust() {
		t.Error("expected empty font size to be ignored")
	}
	Merge(meta, WithFontFamily("mono"), WithDecorationStyleFromBorder(css.BorderDotted))
	if f, _ := meta.FontFamily().Get(); f != "mono" {
		t.Errorf("expected family to be overwritten, is %q", f)
	}
	if s, _ := meta.DecorationStyle().Get(); s != style.DecorationStyleDotted {
		t.Errorf("expected dotted decoration from border style, is %d", s)
	}
}

func TestHookDefaults(t *testing.T) {
	meta := NewMetadata()
	var plain Op = op("plain", 1)
	ws := []blocktree.Widget{"w"}
	dropAll := &OpFuncs{Widgets: func(*Metadata, []blocktree.Widget) []blocktree.Widget {
		return nil
	}}
	if out := OnWidgets(dropAll, meta, ws); len(out) != 1 {
		t.Errorf("expected empty hook result to keep input, is %v", out)
	}
	if out := OnWidgets(plain, meta, ws); len(out) != 1 {
		t.Errorf("expected identity without hook, is %v", out)
	}
	if OnChild(plain, meta, element("b")) != meta {
		t.Error("expected child hook default to return its input")
	}
	if DefaultStyles(plain, meta) != nil {
		t.Error("expected no default styles without hook")
	}
	pieces := []BuiltPiece{WidgetPiece("x")}
	if out := OnPieces(plain, meta, pieces); len(out) != 1 || !out[0].HasWidgets() {
		t.Errorf("expected pieces to pass through, is %v", out)
	}
}

func TestApplyDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext.dom")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	meta := Merge(nil, WithStyles(
		"color", "#00ff00",
		"font-weight", "bold",
		"text-decoration", "underline dotted red",
		"display", "block",
		"font-size", "50%",
		"font-style", "slanted",
		"font-family", `"Fira Sans", sans-serif`,
		"margin", "1em",
	))
	err := ApplyDeclarations(meta)
	if n := len(multierr.Errors(err)); n != 2 {
		t.Errorf("expected 2 declaration errors, have %d: %v", n, err)
	}
	if w, _ := meta.FontWeight().Get(); w != style.FontWeightBold {
		t.Errorf("expected bold, is %d", w)
	}
	if u, _ := meta.DecoUnder().Get(); !u {
		t.Error("expected underline")
	}
	if s, _ := meta.DecorationStyle().Get(); s != style.DecorationStyleDotted {
		t.Errorf("expected dotted decoration, is %d", s)
	}
	if !meta.IsBlockElement() {
		t.Error("expected display:block to make element block level")
	}
	if meta.FontSize().IsJust() || meta.FontStyleItalic().IsJust() {
		t.Error("expected malformed declarations to be skipped")
	}
	if f, _ := meta.FontFamily().Get(); f != "Fira Sans" {
		t.Errorf("expected first family unquoted, is %q", f)
	}
	if _, _, b, _ := meta.Color().WithDefault(color.Black).RGBA(); b != 0 {
		t.Errorf("expected green, is %v", meta.Color())
	}
}

func TestAttachResolver(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext.dom")
	defer teardown()
	//
	ctx := style.NewContext(style.TextStyle{FontFamily: "serif", FontSize: 16, FontWeight: 400}, 1)
	root := style.NewResolver()
	meta := Merge(nil, WithStyles(
		"font-size", "2em",
		"font-weight", "700",
		"text-decoration-line", "line-through underline",
		"text-align", "center",
		"font-style", "italic",
	))
	if err := ApplyDeclarations(meta); err != nil {
		t.Fatal(err)
	}
	r := AttachResolver(meta, root)
	if meta.Resolver() != r {
		t.Error("expected resolver to be set for metadata")
	}
	ts, err := r.Resolve(ctx).Get()
	if err != nil {
		t.Fatal(err)
	}
	if ts.FontSize != 32 || ts.FontWeight != 700 || ts.FontStyle != style.FontStyleItalic {
		t.Errorf("unexpected resolved style %v", ts)
	}
	if !ts.Decoration.Has(style.DecorationStrike|style.DecorationUnder) || ts.Decoration.Has(style.DecorationOver) {
		t.Errorf("expected strike and underline, is %s", ts.Decoration)
	}
	if a, _ := r.TextAlign().Get(); a != style.TextAlignCenter {
		t.Errorf("expected center alignment, is %v", a)
	}
	if ts, _ = root.Resolve(ctx).Get(); ts.FontSize != 16 {
		t.Errorf("expected parent style to be unaffected, is %v", ts)
	}
}

func TestDisplayOverrides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext.dom")
	defer teardown()
	//
	meta := Merge(nil, WithStyles("display", "block", "display", "inline"))
	if err := ApplyDeclarations(meta); err != nil {
		t.Fatal(err)
	}
	if meta.IsBlockElement() {
		t.Error("expected display:inline to override display:block")
	}
	blockOp := &OpFuncs{Name: "block", Block: maybe.Just(true)}
	meta = Merge(nil, WithOp(blockOp), WithStyles("display", "inline-block"))
	if err := ApplyDeclarations(meta); err != nil {
		t.Fatal(err)
	}
	if !meta.IsBlockElement() {
		t.Error("expected block level op to keep element block level")
	}
	meta = Merge(nil, WithStyles("display", "none", "display", "block"))
	if err := ApplyDeclarations(meta); err != nil {
		t.Fatal(err)
	}
	if meta.IsNotRenderable() || !meta.IsBlockElement() {
		t.Error("expected display:block to override display:none")
	}
}

func TestOpsSnapshotBeforeBind(t *testing.T) {
	meta := Merge(nil, WithOp(op("a", 1)))
	ops := meta.Ops()
	Merge(meta, WithOp(op("b", 0)))
	if names(ops) != "a" {
		t.Errorf("expected unbound ops view to stay a, is %s", names(ops))
	}
	if names(meta.Ops()) != "ab" {
		t.Errorf("expected ops ab, is %s", names(meta.Ops()))
	}
}

func TestChildHooks(t *testing.T) {
	keep := func(meta *Metadata, _ *html.Node) *Metadata { return meta }
	a, b, c := op("a", 1), op("b", 2), op("c", 3)
	a.Child, c.Child = keep, keep
	meta := Merge(nil, WithOp(a), WithOp(b), WithOp(c))
	meta.BindElement(element("ul"))
	hooks := meta.Ops().ChildHooks()
	if names(hooks) != "ac" {
		t.Errorf("expected child hooks ac, is %s", names(hooks))
	}
	if names(Ops{}.Concat(hooks).Concat(freezeOps([]Op{b}))) != "acb" {
		t.Error("expected concatenation to keep order of both sequences")
	}
	if HasChildHook(b) {
		t.Error("expected op without Child func to have no child hook")
	}
}

type valueOp struct {
	tags []string
}

func (valueOp) Priority() int        { return DefaultPriority }
func (valueOp) IsBlockElement() bool { return false }

func TestNonComparableOps(t *testing.T) {
	v := valueOp{tags: []string{"x"}}
	meta := Merge(nil, WithOp(v), WithOp(v), WithOp(op("a", 1)))
	if meta.Ops().Len() != 3 {
		t.Errorf("expected non-comparable ops never to be deduplicated, have %d ops", meta.Ops().Len())
	}
	if meta.Ops().Contains(v) {
		t.Error("expected non-comparable op not to be found")
	}
}
