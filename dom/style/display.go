package style

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DisplayMode is a type for CSS property "display".
type DisplayMode uint16

// Flags for box context and display mode (outer and inner).
const (
	NoMode          DisplayMode = iota   // unset or error condition
	DisplayNone     DisplayMode = 0x0001 // CSS outer display = none
	BlockMode       DisplayMode = 0x0002 // CSS block context (inner or outer)
	InlineMode      DisplayMode = 0x0004 // CSS inline context
	ListItemMode    DisplayMode = 0x0020 // CSS list-item display
	TableMode       DisplayMode = 0x0100 // CSS table display property (inner or outer)
	InnerBlockMode  DisplayMode = 0x0200 // CSS inner block mode (inline-block)
	InnerInlineMode DisplayMode = 0x0400 // CSS inner inline mode (paragraphs)
)

var allDisplayModes = []DisplayMode{
	DisplayNone, BlockMode, InlineMode, ListItemMode, TableMode,
	InnerBlockMode, InnerInlineMode,
}

var displayModeNames = map[DisplayMode]string{
	DisplayNone:     "none",
	BlockMode:       "block",
	InlineMode:      "inline",
	ListItemMode:    "list-item",
	TableMode:       "table",
	InnerBlockMode:  "inner-block",
	InnerInlineMode: "inner-inline",
}

// Outer returns outer mode
func (disp DisplayMode) Outer() DisplayMode {
	return disp & 0x000f
}

// Inner returns inner mode
func (disp DisplayMode) Inner() DisplayMode {
	return disp & 0xfff0
}

// IsBlockLevel return true if it has outer display level of BlockMode.
func (disp DisplayMode) IsBlockLevel() bool {
	return disp&0x000f == BlockMode
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

func (disp DisplayMode) String() string {
	if disp == NoMode {
		return "NoMode"
	}
	var b bytes.Buffer
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			if b.Len() > 0 {
				b.WriteString(" ")
			}
			b.WriteString(displayModeNames[m])
		}
	}
	return b.String()
}

// ParseDisplay returns mode flags from a display property (outer and inner).
func ParseDisplay(display Property) (DisplayMode, error) {
	switch display.Keyword() {
	case "":
		return NoMode, nil
	case "none":
		return DisplayNone, nil
	case "block":
		return BlockMode | InnerBlockMode, nil
	case "inline":
		return InlineMode | InnerInlineMode, nil
	case "list-item":
		return ListItemMode | BlockMode, nil
	case "inline-block":
		return InlineMode | InnerBlockMode, nil
	case "table":
		return BlockMode | TableMode, nil
	case "inline-table":
		return InlineMode | TableMode, nil
	}
	return NoMode, fmt.Errorf("style: unknown display mode %q", display)
}

// DisplayPropertyForHTMLNode returns the user-agent default `display`
// property for an HTML node.
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		return "inline"
	}
	switch node.DataAtom {
	case atom.Head, atom.Script, atom.Style, atom.Template, atom.Title, atom.Meta, atom.Link:
		return "none"
	case atom.Li:
		return "list-item"
	case atom.Table:
		return "table"
	case atom.Html, atom.Body, atom.Address, atom.Article, atom.Aside, atom.Blockquote,
		atom.Dd, atom.Div, atom.Dl, atom.Dt, atom.Figure, atom.Footer, atom.Form,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Header, atom.Hr,
		atom.Main, atom.Nav, atom.Ol, atom.P, atom.Pre, atom.Section, atom.Ul:
		return "block"
	}
	return "inline"
}
