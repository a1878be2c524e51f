package style

import (
	"github.com/npillmayer/styledtext/css"
	"github.com/npillmayer/styledtext/maybe"
	"github.com/npillmayer/styledtext/result"
)

// Builder is a resolver step with a captured input. It receives the resolver
// it runs for, the style resolved so far and its input, and returns the next
// style.
type Builder[T any] func(r *Resolver, ts TextStyle, input T) TextStyle

type step func(r *Resolver, ts TextStyle) TextStyle

// Resolver lazily computes the TextStyle for one scope of a text block tree.
//
// A resolver starts from the resolved style of its parent (or the default
// style of the rendering context, for root resolvers) and applies its
// queued steps in order. The outcome is cached against the token of the
// rendering context; resolving again under the same token returns the
// cached style without running any step. A different token drops the
// cache, including the text alignment override, and recomputes.
//
// Once a style is cached the resolver is sealed: enqueueing further steps
// is a contract violation and panics.
type Resolver struct {
	parent    *Resolver
	steps     []step
	token     Token
	hasToken  bool
	ctx       Context
	output    maybe.Maybe[TextStyle]
	textAlign maybe.Maybe[TextAlign]
}

// NewResolver creates a root resolver, i.e. one which starts from the
// default style of the rendering context.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Sub creates a resolver chained to r.
func (r *Resolver) Sub() *Resolver {
	return &Resolver{parent: r}
}

// Parent returns the enclosing resolver, if any.
func (r *Resolver) Parent() maybe.Maybe[*Resolver] {
	if r.parent == nil {
		return maybe.Nothing[*Resolver]()
	}
	return maybe.Just(r.parent)
}

// Enqueue appends a step to the queue of r. Steps run in enqueue order.
func Enqueue[T any](r *Resolver, b Builder[T], input T) {
	assertThat(b != nil, "cannot enqueue nil builder")
	r.enqueue(func(r *Resolver, ts TextStyle) TextStyle {
		return b(r, ts, input)
	})
}

func (r *Resolver) enqueue(s step) {
	assertThat(r.output.IsNothing(), "cannot add builder after being resolved")
	r.steps = append(r.steps, s)
}

// IsSealed is true once a style has been cached.
func (r *Resolver) IsSealed() bool {
	return r.output.IsJust()
}

// Len returns the number of queued steps.
func (r *Resolver) Len() int {
	return len(r.steps)
}

// Context returns the rendering context of the current resolution. Steps
// use it to access the text scale factor. It is nil before the first call
// to Resolve.
func (r *Resolver) Context() Context {
	return r.ctx
}

// Resolve returns the text style of r under the rendering context ctx.
// Failures to obtain the root default style are returned as errors.
func (r *Resolver) Resolve(ctx Context) result.Result[TextStyle] {
	tok := ctx.Token()
	if r.hasToken && r.token == tok {
		if ts, ok := r.output.Get(); ok {
			return result.Ok(ts)
		}
	} else {
		r.reset(tok)
	}
	r.ctx = ctx
	var ts TextStyle
	if r.parent == nil {
		base, err := ctx.DefaultStyle()
		if err != nil {
			tracer().Errorf("style: cannot resolve root style: %v", err)
			return result.Err[TextStyle](err)
		}
		ts = base
	} else {
		base, err := r.parent.Resolve(ctx).Get()
		if err != nil {
			return result.Err[TextStyle](err)
		}
		ts = base
	}
	for _, s := range r.steps {
		ts = s(r, ts)
	}
	r.output = maybe.Just(ts)
	return result.Ok(ts)
}

func (r *Resolver) reset(tok Token) {
	if r.hasToken {
		tracer().Debugf("style: rendering context changed, dropping cached style")
	}
	r.token = tok
	r.hasToken = true
	r.output = maybe.Nothing[TextStyle]()
	r.textAlign = maybe.Nothing[TextAlign]()
}

// SetTextAlign sets a local text alignment override. Steps call this during
// resolution.
func (r *Resolver) SetTextAlign(a TextAlign) {
	r.textAlign = maybe.Just(a)
}

// TextAlign returns the local alignment override or, if none is set, the
// alignment of the nearest ancestor which has one.
func (r *Resolver) TextAlign() maybe.Maybe[TextAlign] {
	for it := r; it != nil; it = it.parent {
		if it.textAlign.IsJust() {
			return it.textAlign
		}
	}
	return maybe.Nothing[TextAlign]()
}

// ResolveLength resolves a length against the font size of r's style and
// the text scale factor of ctx.
func ResolveLength(l css.Length, r *Resolver, ctx Context) result.Result[float64] {
	return result.Map(func(ts TextStyle) float64 {
		return l.Resolve(ts.FontSize, ctx.TextScaleFactor())
	}, r.Resolve(ctx))
}
