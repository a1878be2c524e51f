/*
Package result provides a type for the outcome of a computation that may fail.

Style resolution returns a Result rather than a (value, error) pair so that
callers may thread resolved values through further computations (Map,
AndThen) and unpack only at the edge.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

// Result is either Ok with a value or Err with an error.
type Result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return Result[T]{value: x}
}

// Err wraps a failure. A nil err yields Ok with the zero value.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// Of converts a conventional (value, error) pair.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

// Match returns a matcher for switch-style destructuring.
func (r Result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

// Get unpacks r into a conventional (value, error) pair.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// IsOk is true for successful results.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Error returns the failure, or nil.
func (r Result[T]) Error() error {
	return r.err
}

// WithDefault returns the value, or def for failures.
func (r Result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// Map converts the value of a successful result. Failures pass through.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	if r.err != nil {
		return Err[S](r.err)
	}
	return Ok(f(r.value))
}

// AndThen chains a computation which may fail itself.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	if r.err != nil {
		return Err[S](r.err)
	}
	return f(r.value)
}

// --- Matching --------------------------------------------------------------

// Matcher destructures a Result inside a switch statement.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r Result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
