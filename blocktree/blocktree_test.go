package blocktree

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/styledtext/dom/style"
	tp "github.com/xlab/treeprint"
)

func newRoot() Block {
	return New().NewBlock(style.NewResolver())
}

func TestBlockEmpty(t *testing.T) {
	root := newRoot()
	if !root.IsEmpty() {
		t.Error("expected new block to be empty")
	}
	if !root.HasTrailingSpace() {
		t.Error("expected empty block to report trailing space")
	}
	if root.First().IsJust() || root.Last().IsJust() {
		t.Error("expected empty block to have neither first nor last")
	}
	if root.Parent().IsJust() {
		t.Error("expected root block to have no parent")
	}
	root.Sub(root.Resolver().Sub()).Sub(style.NewResolver())
	if !root.IsEmpty() {
		t.Error("expected block with empty sub-blocks only to be empty")
	}
}

func TestAddSpaceCollapses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext.blocktree")
	defer teardown()
	//
	root := newRoot()
	if !root.AddSpace() {
		t.Error("expected first space to be added")
	}
	if root.AddSpace() {
		t.Error("expected second space to collapse")
	}
	if root.Len() != 1 {
		t.Logf("tree =\n%s", printBlock(root))
		t.Errorf("expected a single space, have %d children", root.Len())
	}
	root.AddText("x")
	root.AddSpace()
	if kinds(root) != "space data space" {
		t.Logf("tree =\n%s", printBlock(root))
		t.Errorf("expected [space data space], is [%s]", kinds(root))
	}
}

func TestAddSpaceLiteral(t *testing.T) {
	root := newRoot()
	root.AddText("a")
	root.AddSpace()
	if !root.AddSpace("\n") {
		t.Error("expected literal whitespace to update the preceding space")
	}
	if root.Len() != 2 {
		t.Fatalf("expected literal to be merged, have %d children", root.Len())
	}
	sp := root.Children()[1].Bit().(SpaceBit)
	if sp.Data != "\n" {
		t.Errorf("expected space data to be newline, is %q", sp.Data)
	}
	if root.HasTrailingSpace() {
		t.Error("expected literal whitespace not to count as trailing space")
	}
}

func TestAddSpaceAcrossBlocks(t *testing.T) {
	root := newRoot()
	root.AddText("a")
	root.AddSpace()
	sub := root.Sub(root.Resolver().Sub())
	if last, ok := sub.Last().Get(); !ok || last.Kind() != KindSpace {
		t.Fatal("expected empty sub-block to see the preceding space as its last leaf")
	}
	if sub.AddSpace() {
		t.Error("expected space in sub-block to collapse with preceding space")
	}
	if !sub.IsEmpty() {
		t.Error("expected sub-block to stay empty")
	}
	sub.AddText("b")
	if sub.HasTrailingSpace() {
		t.Error("expected sub-block ending in text to have no trailing space")
	}
}

func TestTrimRight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext.blocktree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	root := newRoot()
	root.AddText("a")
	root.AddBit(SpaceBit{})
	root.AddBit(SpaceBit{})
	root.TrimRight()
	if root.Len() != 1 {
		t.Logf("tree =\n%s", printBlock(root))
		t.Fatalf("expected a single leaf after trimming, have %d", root.Len())
	}
	if d, ok := root.Children()[0].Bit().(DataBit); !ok || d.Data != "a" {
		t.Errorf("expected remaining leaf to be data 'a', is %v", root.Children()[0].Bit())
	}
	//
	root = newRoot()
	root.AddText("a")
	sub := root.Sub(root.Resolver().Sub())
	sub.AddSpace()
	root.Sub(root.Resolver().Sub())
	root.TrimRight()
	if kinds(root) != "data block" || !sub.IsEmpty() {
		t.Logf("tree =\n%s", printBlock(root))
		t.Errorf("expected trailing space in nested block to be trimmed, is [%s]", kinds(root))
	}
	//
	root = newRoot()
	root.AddSpace()
	root.TrimRight()
	if !root.IsEmpty() {
		t.Error("expected block holding a single space to be trimmed to empty")
	}
}

func TestRemoveLastCascades(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledtext.blocktree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	root := newRoot()
	root.AddText("a")
	sub := root.Sub(root.Resolver().Sub())
	sub.AddText("b")
	root.Sub(root.Resolver().Sub())
	t.Logf("tree =\n%s", printBlock(root))
	removed, ok := root.RemoveLast().Get()
	if !ok || removed.(DataBit).Data != "b" {
		t.Fatalf("expected to remove 'b', removed %v", removed)
	}
	if root.Len() != 2 {
		t.Errorf("expected empty trailing block to be dropped, have %d children", root.Len())
	}
	removed, _ = root.RemoveLast().Get()
	if removed.(DataBit).Data != "a" {
		t.Errorf("expected to remove 'a', removed %v", removed)
	}
	if root.Len() != 0 {
		t.Errorf("expected emptied sub-block to be dropped, have %d children", root.Len())
	}
	if root.RemoveLast().IsJust() {
		t.Error("expected nothing to remove from empty block")
	}
}

func TestFirstLastNext(t *testing.T) {
	root := newRoot()
	s1 := root.Sub(root.Resolver().Sub())
	s1.AddText("a")
	s2 := root.Sub(root.Resolver().Sub())
	s3 := root.Sub(root.Resolver().Sub())
	s3.AddText("b")
	s3.AddSpace()
	if f, _ := root.First().Get(); f.Bit().(DataBit).Data != "a" {
		t.Errorf("expected first leaf to be 'a', is %v", f.Bit())
	}
	if l, _ := root.Last().Get(); l.Kind() != KindSpace {
		t.Errorf("expected last leaf to be a space, is %v", l.Kind())
	}
	if l, _ := s2.Last().Get(); l.Kind() != KindSpace {
		t.Errorf("expected last of empty block to ascend to the last leaf of its parent, is %v", l.Kind())
	}
	if n, _ := s1.Next().Get(); n.Bit().(DataBit).Data != "b" {
		t.Errorf("expected next after first block to be 'b', is %v", n.Bit())
	}
	a, _ := s1.First().Get()
	if n, _ := a.Next().Get(); n.Bit().(DataBit).Data != "b" {
		t.Errorf("expected next after 'a' to be 'b', is %v", n.Bit())
	}
	if a.Block().Ref() != s1.Ref() {
		t.Error("expected leaf 'a' to be owned by first sub-block")
	}
	sp, _ := root.Last().Get()
	if sp.Next().IsJust() {
		t.Error("expected no leaf after the last one")
	}
	if root.Next().IsJust() {
		t.Error("expected root block to have no next leaf")
	}
}

func TestLastOfEmptyNestedBlocks(t *testing.T) {
	root := newRoot()
	outer := root.Sub(root.Resolver().Sub())
	inner := outer.Sub(outer.Resolver().Sub())
	if inner.Last().IsJust() {
		t.Error("expected no last leaf in a tree without leaves")
	}
	root.AddText("tail")
	if l, _ := inner.Last().Get(); l.Bit().(DataBit).Data != "tail" {
		t.Errorf("expected ascent to find 'tail', found %v", l.Bit())
	}
}

func TestRebuildBits(t *testing.T) {
	root := newRoot()
	root.AddText("a")
	sub := root.Sub(root.Resolver().Sub())
	sub.AddText("b")
	sub.AddWidget(Placeholder{Child: "img"})
	tapped := 0
	root.RebuildBits(func(b Bit) Bit {
		if d, ok := b.(DataBit); ok {
			return d.WithData(strings.ToUpper(d.Data)).WithTap(func() { tapped++ })
		}
		return b
	})
	if kinds(root) != "data block" || kinds(sub) != "data widget" {
		t.Errorf("expected structure to be kept, is [%s] / [%s]", kinds(root), kinds(sub))
	}
	var texts []string
	root.ForEachBit(func(p Pos, _ int) bool {
		if d, ok := p.Bit().(DataBit); ok {
			texts = append(texts, d.Data)
			d.OnTap()
		}
		return true
	}, false)
	if strings.Join(texts, "") != "AB" {
		t.Errorf("expected rebuilt texts AB, is %v", texts)
	}
	if tapped != 2 {
		t.Errorf("expected both data bits to carry the tap callback, called %d times", tapped)
	}
	d := sub.Children()[0].Bit().(DataBit)
	if d.Resolver != sub.Resolver() {
		t.Error("expected rebuilt data bit to keep its resolver")
	}
}

func TestForEachBit(t *testing.T) {
	root := newRoot()
	root.AddText("a")
	sub := root.Sub(root.Resolver().Sub())
	sub.AddText("b")
	sub.AddText("c")
	root.AddText("d")
	var seq []string
	var idx []int
	all := root.ForEachBit(func(p Pos, i int) bool {
		seq = append(seq, p.Bit().(DataBit).Data)
		idx = append(idx, i)
		return true
	}, true)
	if !all || strings.Join(seq, "") != "dcba" {
		t.Errorf("expected reversed visit dcba, is %v", seq)
	}
	if idx[0] != 2 || idx[1] != 1 || idx[2] != 0 || idx[3] != 0 {
		t.Errorf("expected indices within owning blocks [2 1 0 0], is %v", idx)
	}
	seq = seq[:0]
	all = root.ForEachBit(func(p Pos, _ int) bool {
		seq = append(seq, p.Bit().(DataBit).Data)
		return len(seq) < 2
	}, false)
	if all || strings.Join(seq, "") != "ab" {
		t.Errorf("expected visit to stop after ab, is %v (%v)", seq, all)
	}
}

func TestAddEmptyTextPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected empty data bit to panic, didn't")
		}
	}()
	newRoot().AddText("")
}

// --- Helpers ---------------------------------------------------------------

func kinds(b Block) string {
	var k []string
	for _, c := range b.Children() {
		k = append(k, c.Kind().String())
	}
	return strings.Join(k, " ")
}

func printBlock(b Block) string {
	p := tp.New()
	ppt(p, b)
	return p.String()
}

func ppt(p tp.Tree, b Block) {
	branch := p.AddBranch("block")
	for _, c := range b.Children() {
		if sub, ok := c.AsBlock().Get(); ok {
			ppt(branch, sub)
			continue
		}
		branch.AddNode(c.Bit())
	}
}
