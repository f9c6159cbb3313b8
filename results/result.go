package results

import "fmt"

// Result holds either a success payload of type S or a failure payload of type E.
// A Result should be created by calling Ok or Err. Once created it never changes variant.
//
// The zero value is a failure holding the zero value of E.
type Result[S any, E any] struct {
	ok  bool
	val S
	err E
}

// Ok creates a successful Result holding data.
// The error type comes first so it can be given explicitly while S is inferred: Ok[string](3)
func Ok[E any, S any](data S) Result[S, E] {
	return Result[S, E]{ok: true, val: data}
}

// Err creates a failed Result holding e.
// The success type comes first so it can be given explicitly while E is inferred: Err[int]("bad input")
func Err[S any, E any](e E) Result[S, E] {
	return Result[S, E]{err: e}
}

// FromPair converts a (value, error) pair into a Result. A non-nil err produces a failure.
func FromPair[S any](val S, err error) Result[S, error] {
	if err != nil {
		return Err[S](err)
	}
	return Ok[error](val)
}

// IsOk reports whether r is the success variant.
func (r Result[S, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether r is the failure variant.
func (r Result[S, E]) IsErr() bool {
	return !r.ok
}

// Value returns the success payload and true, or the zero value of S and false.
func (r Result[S, E]) Value() (S, bool) {
	return r.val, r.ok
}

// Failure returns the failure payload and true, or the zero value of E and false.
func (r Result[S, E]) Failure() (E, bool) {
	return r.err, !r.ok
}

// Or returns the success payload, or defaultValue if r is a failure.
func (r Result[S, E]) Or(defaultValue S) S {
	if r.ok {
		return r.val
	}
	return defaultValue
}

// String formats r as Ok(<payload>) or Err(<payload>) using the %v verb.
func (r Result[S, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.val)
	}
	return fmt.Sprintf("Err(%v)", r.err)
}
