package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/styledtext/css"
	"github.com/npillmayer/styledtext/dom/style"
	"go.uber.org/multierr"
)

// ApplyDeclarations interprets the raw declarations of meta and merges the
// intents they express. Iterating the declarations freezes them.
// Declarations for properties without a text style counterpart are
// skipped. Malformed declarations are skipped as well; their errors are
// combined and returned.
func ApplyDeclarations(meta *Metadata) error {
	var errs error
	var intents []Intent
	meta.Styles(func(key, value string) {
		intent, err := declaration(key, style.Property(value))
		if err != nil {
			tracer().Infof("dom: skipping declaration %s: %v", key, err)
			errs = multierr.Append(errs, fmt.Errorf("dom: declaration %s: %w", key, err))
			return
		}
		if intent != nil {
			intents = append(intents, intent)
		}
	})
	Merge(meta, intents...)
	return errs
}

func declaration(key string, p style.Property) (Intent, error) {
	if p.IsEmpty() || p.IsInherit() || p.IsInitial() {
		return nil, nil
	}
	switch key {
	case "color":
		c, err := p.Color()
		if err != nil {
			return nil, err
		}
		return WithColor(c), nil
	case "font-family":
		return WithFontFamily(firstFamily(string(p))), nil
	case "font-size":
		if _, err := p.Length(); err != nil {
			return nil, err
		}
		return WithFontSize(strings.TrimSpace(string(p))), nil
	case "font-style":
		switch p.Keyword() {
		case "italic", "oblique":
			return WithFontStyleItalic(true), nil
		case "normal":
			return WithFontStyleItalic(false), nil
		}
		return nil, fmt.Errorf("invalid font style %q", p)
	case "font-weight":
		w, err := style.ParseFontWeight(p)
		if err != nil {
			return nil, err
		}
		return WithFontWeight(w), nil
	case "text-decoration", "text-decoration-line":
		return decorationLines(p, key == "text-decoration")
	case "text-decoration-style":
		s, err := style.ParseDecorationStyle(p)
		if err != nil {
			return nil, err
		}
		return WithDecorationStyle(s), nil
	case "text-align":
		a, err := style.ParseTextAlign(p)
		if err != nil {
			return nil, err
		}
		return WithTextAlign(a), nil
	case "display":
		d, err := style.ParseDisplay(p)
		if err != nil {
			return nil, err
		}
		if d.Contains(style.DisplayNone) {
			return WithNotRenderable(true), nil
		}
		return func(meta *Metadata) {
			Merge(meta, WithNotRenderable(false), WithBlockElement(d.IsBlockLevel()))
		}, nil
	}
	tracer().Debugf("dom: no text style counterpart for property %s", key)
	return nil, nil
}

// decorationLines interprets text-decoration-line and, if shorthand is set,
// the text-decoration shorthand. Colors within the shorthand are ignored.
func decorationLines(p style.Property, shorthand bool) (Intent, error) {
	var intents []Intent
	for _, tok := range strings.Fields(p.Keyword()) {
		switch tok {
		case "none":
			intents = append(intents, WithDecoStrike(false), WithDecoOver(false), WithDecoUnder(false))
		case "line-through":
			intents = append(intents, WithDecoStrike(true))
		case "overline":
			intents = append(intents, WithDecoOver(true))
		case "underline":
			intents = append(intents, WithDecoUnder(true))
		default:
			if !shorthand {
				return nil, fmt.Errorf("invalid decoration line %q", tok)
			}
			if s, err := style.ParseDecorationStyle(style.Property(tok)); err == nil {
				intents = append(intents, WithDecorationStyle(s))
			} else if _, err := css.ParseColor(tok); err != nil {
				return nil, fmt.Errorf("invalid text decoration %q", tok)
			}
		}
	}
	return func(meta *Metadata) {
		Merge(meta, intents...)
	}, nil
}

func firstFamily(families string) string {
	first := strings.SplitN(families, ",", 2)[0]
	return strings.Trim(strings.TrimSpace(first), `"'`)
}

// --- Resolver steps --------------------------------------------------------

// AttachResolver creates the style resolver for meta as a child of parent
// (or as a root resolver, if parent is nil), enqueues the style intents of
// meta onto it and sets it for meta. Intents merged later are not seen by
// the resolver.
func AttachResolver(meta *Metadata, parent *style.Resolver) *style.Resolver {
	var r *style.Resolver
	if parent == nil {
		r = style.NewResolver()
	} else {
		r = parent.Sub()
	}
	meta.SetResolver(r)
	if f, ok := meta.fontFamily.Get(); ok {
		style.Enqueue(r, style.Family, f)
	}
	if s, ok := meta.fontSize.Get(); ok {
		style.Enqueue(r, fontSize, s)
	}
	if w, ok := meta.fontWeight.Get(); ok {
		style.Enqueue(r, style.Weight, w)
	}
	if it, ok := meta.fontStyleItalic.Get(); ok {
		style.Enqueue(r, style.Italic, it)
	}
	if c, ok := meta.color.Get(); ok {
		style.Enqueue(r, style.Foreground, c)
	}
	for _, d := range []struct {
		on   func() (bool, bool)
		line style.Decoration
	}{
		{meta.decoStrike.Get, style.DecorationStrike},
		{meta.decoOver.Get, style.DecorationOver},
		{meta.decoUnder.Get, style.DecorationUnder},
	} {
		if on, ok := d.on(); ok {
			style.Enqueue(r, style.Decorate, style.DecorationLine{Lines: d.line, On: on})
		}
	}
	if s, ok := meta.decorationStyle.Get(); ok {
		style.Enqueue(r, style.DecorationLineStyle, s)
	}
	if a, ok := meta.textAlign.Get(); ok {
		style.Enqueue(r, style.Align, a)
	}
	return r
}

// fontSize parses a raw font size at resolution time. Unparsable sizes keep
// the inherited size.
func fontSize(r *style.Resolver, ts style.TextStyle, raw string) style.TextStyle {
	l, err := css.ParseLength(raw)
	if err != nil {
		tracer().Errorf("dom: cannot resolve font size %q: %v", raw, err)
		return ts
	}
	return style.FontSize(r, ts, l)
}
