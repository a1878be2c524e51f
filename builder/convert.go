package builder

import (
	"fmt"
	"strings"

	"github.com/npillmayer/styledtext/blocktree"
	"github.com/npillmayer/styledtext/dom"
	"github.com/npillmayer/styledtext/dom/style"
)

// Converter turns the pieces built for an element into widgets. When
// Convert is called, the build ops of the element have already
// post-processed the pieces.
type Converter interface {
	Convert(ctx style.Context, meta *dom.Metadata, pieces []dom.BuiltPiece) ([]blocktree.Widget, error)
}

// Paragraph is the widget TextConverter produces for a text block.
type Paragraph struct {
	Align style.TextAlign
	Spans []Span
}

// Text returns the plain text of p.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, s := range p.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

func (p Paragraph) String() string {
	return fmt.Sprintf("Paragraph(%q)", p.Text())
}

// Span is a run of text with a resolved style, or an embedded widget.
type Span struct {
	Text   string
	Style  style.TextStyle
	Widget blocktree.Widget
	OnTap  func()
}

// TextConverter converts every text block into a Paragraph of styled spans
// and passes widget pieces through.
type TextConverter struct{}

// Convert is part of interface Converter.
func (TextConverter) Convert(ctx style.Context, meta *dom.Metadata,
	pieces []dom.BuiltPiece) ([]blocktree.Widget, error) {
	//
	var ws []blocktree.Widget
	for _, piece := range pieces {
		b, ok := piece.Block().Get()
		if !ok {
			ws = append(ws, piece.Widgets()...)
			continue
		}
		p, err := paragraph(ctx, b)
		if err != nil {
			return ws, err
		}
		if len(p.Spans) > 0 {
			ws = append(ws, p)
		}
	}
	return ws, nil
}

func paragraph(ctx style.Context, b blocktree.Block) (Paragraph, error) {
	if _, err := b.Resolver().Resolve(ctx).Get(); err != nil {
		return Paragraph{}, err
	}
	p := Paragraph{Align: b.Resolver().TextAlign().WithDefault(style.TextAlignStart)}
	var err error
	b.ForEachBit(func(pos blocktree.Pos, _ int) bool {
		var span Span
		switch bit := pos.Bit().(type) {
		case blocktree.DataBit:
			span.Text, span.OnTap = bit.Data, bit.OnTap
			span.Style, err = bit.Resolver.Resolve(ctx).Get()
		case blocktree.SpaceBit:
			span.Text = " "
			if bit.Data != "" {
				span.Text = bit.Data
			}
			span.Style, err = pos.Block().Resolver().Resolve(ctx).Get()
		case blocktree.WidgetBit:
			span.Widget = bit.Placeholder.Child
		}
		if err != nil {
			return false
		}
		p.Spans = appendSpan(p.Spans, span)
		return true
	}, false)
	return p, err
}

// appendSpan merges plain text spans of equal style.
func appendSpan(spans []Span, s Span) []Span {
	if n := len(spans); n > 0 {
		last := &spans[n-1]
		if mergeable(*last) && mergeable(s) && sameStyle(last.Style, s.Style) {
			last.Text += s.Text
			return spans
		}
	}
	return append(spans, s)
}

func mergeable(s Span) bool {
	return s.Widget == nil && s.OnTap == nil
}

func sameStyle(a, b style.TextStyle) bool {
	if a.FontFamily != b.FontFamily || a.FontSize != b.FontSize || a.FontStyle != b.FontStyle ||
		a.FontWeight != b.FontWeight || a.Decoration != b.Decoration ||
		a.DecorationStyle != b.DecorationStyle {
		return false
	}
	if a.Color == nil || b.Color == nil {
		return a.Color == b.Color
	}
	r1, g1, b1, a1 := a.Color.RGBA()
	r2, g2, b2, a2 := b.Color.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

var _ Converter = TextConverter{}
