/*
Package domdbg implements helpers to debug text block trees.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/styledtext/blocktree"
	"github.com/npillmayer/styledtext/dom/style"
	tp "github.com/xlab/treeprint"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	Context   style.Context
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	StyleTmpl *template.Template
	StyleEdge *template.Template
}

// ToGraphViz outputs a diagram for a text block tree. The diagram is in
// GraphViz (DOT) format. Clients have to provide the root block, a Writer,
// and an optional rendering context. If a context is given, every block is
// annotated with its resolved text style.
func ToGraphViz(root blocktree.Block, w io.Writer, ctx style.Context) {
	tmpl, err := template.New("blocks").Parse(graphHeadTmpl)
	if err != nil {
		panic(err)
	}
	gparams := graphParamsType{Fontname: "Helvetica", Context: ctx}
	gparams.NodeTmpl = template.Must(template.New("blocknode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(blockNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("blockedge").Parse(blockEdgeTmpl))
	gparams.StyleTmpl = template.Must(template.New("textstyle").Parse(textStyleTmpl))
	gparams.StyleEdge = template.Must(template.New("styleedge").Parse(styleEdgeTmpl))
	err = tmpl.Execute(w, gparams)
	if err != nil {
		panic(err)
	}
	nodes(root.Pos(), w, &gparams)
	w.Write([]byte("}\n"))
}

// Dotty is a helper for testing. Given a block and a testing.T, it will
// create a Graphiviz image of the tree under `root` and write it to
// a file in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(root blocktree.Block, ctx style.Context, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "blocks.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing block digraph to %s\n", tmpfile.Name())
	ToGraphViz(root, tmpfile, ctx)
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing block tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

// Print returns an indented text rendering of the tree under root.
func Print(root blocktree.Block) string {
	p := tp.New()
	p.SetValue(blockLabel(root))
	printChildren(p, root)
	return p.String()
}

func printChildren(p tp.Tree, b blocktree.Block) {
	for _, c := range b.Children() {
		if sub, ok := c.AsBlock().Get(); ok {
			printChildren(p.AddBranch(blockLabel(sub)), sub)
			continue
		}
		p.AddNode(c.Bit())
	}
}

func blockLabel(b blocktree.Block) string {
	return fmt.Sprintf("block %d", b.Ref())
}

type node struct {
	P    blocktree.Pos
	Name string
}

func nodeName(p blocktree.Pos) string {
	return fmt.Sprintf("node%05d", p.Ref())
}

func nodes(p blocktree.Pos, w io.Writer, gparams *graphParamsType) {
	blockNode(p, w, gparams)
	if b, ok := p.AsBlock().Get(); ok {
		for _, ch := range b.Children() {
			nodes(ch, w, gparams)
			blockEdge(p, ch, w, gparams)
		}
	}
}

func blockNode(p blocktree.Pos, w io.Writer, gparams *graphParamsType) {
	if err := gparams.NodeTmpl.Execute(w, &node{p, nodeName(p)}); err != nil {
		panic(err)
	}
	if b, ok := p.AsBlock().Get(); ok && gparams.Context != nil {
		blockStyle(b, nodeName(p), w, gparams)
	}
}

type styleRecord struct {
	Node       string
	Properties [][2]string
}

func blockStyle(b blocktree.Block, name string, w io.Writer, gparams *graphParamsType) {
	rec := styleRecord{Node: name}
	ts, err := b.Resolver().Resolve(gparams.Context).Get()
	if err != nil {
		rec.Properties = append(rec.Properties, [2]string{"error", err.Error()})
	} else {
		rec.Properties = append(rec.Properties,
			[2]string{"font-family", ts.FontFamily},
			[2]string{"font-size", fmt.Sprintf("%.4gpx", ts.FontSize)},
			[2]string{"font-weight", fmt.Sprintf("%d", ts.FontWeight)},
			[2]string{"italic", fmt.Sprintf("%v", ts.FontStyle == style.FontStyleItalic)},
			[2]string{"decoration", ts.Decoration.String()},
		)
	}
	if err := gparams.StyleTmpl.Execute(w, rec); err != nil {
		panic(err)
	}
	if err := gparams.StyleEdge.Execute(w, rec); err != nil {
		panic(err)
	}
}

type edge struct {
	N1, N2 node
}

func blockEdge(p1, p2 blocktree.Pos, w io.Writer, gparams *graphParamsType) {
	e := edge{node{p1, nodeName(p1)}, node{p2, nodeName(p2)}}
	if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
		panic(err)
	}
}

func shortText(p blocktree.Pos) string {
	s := "\"\\\""
	var data string
	switch bit := p.Bit().(type) {
	case blocktree.DataBit:
		data = bit.Data
	case blocktree.SpaceBit:
		data = " " + bit.Data
	case blocktree.WidgetBit:
		data = fmt.Sprintf("%v", bit.Placeholder.Child)
	}
	if len(data) > 10 {
		s += data[:10] + "...\\\"\""
	} else {
		s += data + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [{{ .Fontname }} = "helvetica" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const blockNodeTmpl = `{{ if eq .P.Kind.String "block" }}
{{ .Name }}	[ label={{ printf "%q" .P.Kind.String }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ else }}
{{ .Name }}	[ label={{ shortstring .P }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ end }}
`

const textStyleTmpl = `{{ printf "ts%s" .Node }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">text style</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ index . 0 }}:</td><td>{{ index . 1 }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const blockEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const styleEdgeTmpl = `{{ .Node }} -> {{ printf "ts%s" .Node }} [dir=none weight=1 style="dashed"] ;
`
