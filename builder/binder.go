package builder

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/styledtext/dom"
	"golang.org/x/net/html"
)

// Binder selects the build ops for an element.
type Binder interface {
	Bind(e *html.Node) []dom.Op
}

// BinderFunc is an adapter to use ordinary functions as Binders.
type BinderFunc func(e *html.Node) []dom.Op

// Bind is part of interface Binder.
func (f BinderFunc) Bind(e *html.Node) []dom.Op {
	return f(e)
}

// SelectorBinder binds ops to elements matching CSS selectors.
//
//	sb := builder.NewSelectorBinder()
//	sb.Add("a[href]", linkOp)
//	sb.Add("h1, h2, h3", headingOp)
//
// Ops of all matching rules are returned, in rule order.
type SelectorBinder struct {
	rules []rule
}

type rule struct {
	selector string
	match    cascadia.Selector
	ops      []dom.Op
}

// NewSelectorBinder creates a binder without rules.
func NewSelectorBinder() *SelectorBinder {
	return &SelectorBinder{}
}

// Add binds ops to all elements matching selector.
func (sb *SelectorBinder) Add(selector string, ops ...dom.Op) error {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return fmt.Errorf("builder: invalid selector %q: %w", selector, err)
	}
	sb.rules = append(sb.rules, rule{selector: selector, match: sel, ops: ops})
	return nil
}

// MustAdd is like Add, but panics on invalid selectors.
func (sb *SelectorBinder) MustAdd(selector string, ops ...dom.Op) *SelectorBinder {
	if err := sb.Add(selector, ops...); err != nil {
		panic(err)
	}
	return sb
}

// Bind is part of interface Binder.
func (sb *SelectorBinder) Bind(e *html.Node) []dom.Op {
	var ops []dom.Op
	for _, r := range sb.rules {
		if r.match.Match(e) {
			tracer().Debugf("builder: <%s> matches %q", e.Data, r.selector)
			ops = append(ops, r.ops...)
		}
	}
	return ops
}

var _ Binder = &SelectorBinder{}
var _ Binder = BinderFunc(nil)
