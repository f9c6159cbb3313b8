package results

import (
	"reflect"
	"runtime"
)

// Throw returns the success payload. If r is a failure it panics with the stored
// failure payload itself. The payload is not wrapped, so a recover sees exactly
// the value that was passed to Err.
func (r Result[S, E]) Throw() S {
	if !r.ok {
		panic(r.err)
	}
	return r.val
}

// ThrowMap returns the success payload. If r is a failure it panics with a value
// derived from mapper:
//
//	a non-nil func with one parameter that accepts E and one result
//	    mapper is called once with the failure payload and its result is raised
//	anything else
//	    mapper itself is raised unchanged (a message string, a sentinel error, ...)
//
// Named func types and funcs returning concrete types such as *MyError count as callable.
// A func whose parameter cannot hold an E is treated as a plain value.
//
// mapper is never called or inspected when r is a success.
func (r Result[S, E]) ThrowMap(mapper any) S {
	if r.ok {
		return r.val
	}

	switch m := mapper.(type) {
	case func(E) any:
		if m != nil {
			panic(m(r.err))
		}
	case func(E) error:
		if m != nil {
			panic(m(r.err))
		}
	case func(E) string:
		if m != nil {
			panic(m(r.err))
		}
	default:
		if fn, ok := mapperFunc[E](mapper); ok {
			arg := reflect.ValueOf(&r.err).Elem()
			panic(fn.Call([]reflect.Value{arg})[0].Interface())
		}
	}
	panic(mapper)
}

// mapperFunc reports whether v is a non-nil func with the shape func(E) T.
func mapperFunc[E any](v any) (reflect.Value, bool) {
	fn := reflect.ValueOf(v)
	if fn.Kind() != reflect.Func || fn.IsNil() {
		return reflect.Value{}, false
	}

	ft := fn.Type()
	if ft.NumIn() != 1 || ft.NumOut() != 1 || ft.IsVariadic() {
		return reflect.Value{}, false
	}

	et := reflect.TypeOf((*E)(nil)).Elem()
	if !et.AssignableTo(ft.In(0)) {
		return reflect.Value{}, false
	}
	return fn, true
}

// Catch runs f and converts a panic raised inside it back into a failure holding the
// recovered value. When f returns normally the result is a success holding its return value.
//
// The recovered value is stored as-is, so a payload raised by Throw comes back with the same
// identity. A panic(nil) is caught as a failure holding nil.
//
// Values implementing runtime.Error, such as a nil dereference or an index out of range, keep
// panicking instead of being caught. This includes a failure payload that is itself a
// runtime.Error raised with Throw.
func Catch[S any](f func() S) (res Result[S, any]) {
	defer func() {
		if r := recover(); r != nil {
			// panic(nil), e.g. Throw on a nil error payload
			if _, ok := r.(*runtime.PanicNilError); ok {
				res = Err[S, any](nil)
				return
			}
			if rerr, ok := r.(runtime.Error); ok {
				panic(rerr)
			}
			res = Err[S, any](r)
		}
	}()

	return Ok[any](f())
}
