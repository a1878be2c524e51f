package domdbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/styledtext/blocktree"
	"github.com/npillmayer/styledtext/dom/style"
)

func buildTree() blocktree.Block {
	root := blocktree.New().NewBlock(style.NewResolver())
	root.AddText("Hello")
	root.AddSpace()
	em := root.Sub(root.Resolver().Sub())
	style.Enqueue(em.Resolver(), style.Italic, true)
	em.AddText("World")
	return root
}

func TestPrint(t *testing.T) {
	out := Print(buildTree())
	t.Logf("tree =\n%s", out)
	if !strings.Contains(out, `"Hello"`) || !strings.Contains(out, `"World"`) {
		t.Error("expected both data bits in printout")
	}
	if strings.Count(out, "block") != 2 {
		t.Errorf("expected 2 blocks in printout, have %d", strings.Count(out, "block"))
	}
}

func TestGraphViz(t *testing.T) {
	ctx := style.NewContext(style.TextStyle{FontFamily: "serif", FontSize: 12}, 1)
	var buf bytes.Buffer
	ToGraphViz(buildTree(), &buf, ctx)
	dot := buf.String()
	if !strings.HasPrefix(dot, "digraph g {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("expected a digraph, have\n%s", dot)
	}
	if strings.Count(dot, "shape=ellipse") != 2 {
		t.Errorf("expected 2 block nodes, have\n%s", dot)
	}
	if !strings.Contains(dot, "<td>true</td>") {
		t.Errorf("expected italic style record for inner block, have\n%s", dot)
	}
}
