/*
Package maybe provides an option type for values which may be absent.

Structural queries on text blocks and style resolvers answer with a Maybe
instead of a nil pointer: "no first bit", "no text alignment" and "no
parent" are normal outcomes, not errors.

	var pos blocktree.Pos
	switch m := block.First().Match(); m {
	case m.Just(&pos):
		...
	case m.Nothing():
		...
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is either Just a value or Nothing.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing is the absent value for T. The zero value of Maybe[T] is Nothing
// as well, which lets structs carry optional fields without initialization.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromOK lifts a (value, ok) pair, as returned by map lookups and the like.
func FromOK[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

// Match returns a matcher for switch-style destructuring.
func (m Maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// IsJust is true if a value is present.
func (m Maybe[T]) IsJust() bool {
	return m.tag
}

// IsNothing is true if no value is present.
func (m Maybe[T]) IsNothing() bool {
	return !m.tag
}

// Get returns the value and a presence flag.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

// WithDefault returns the value, or def if absent.
func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to a present value.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Or returns m if present, otherwise other.
func (m Maybe[T]) Or(other Maybe[T]) Maybe[T] {
	if m.tag {
		return m
	}
	return other
}

// OrElse is like Or, but computes the alternative lazily.
func (m Maybe[T]) OrElse(f func() Maybe[T]) Maybe[T] {
	if m.tag {
		return m
	}
	return f()
}

// AndThen chains a computation which may itself produce Nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map converts the value of x, possibly to a different type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher destructures a Maybe inside a switch statement.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m Maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
