package calc

import (
	"math"
	"reflect"
	"strconv"

	"github.com/abevier/result/results"
	"golang.org/x/exp/constraints"
)

const (
	// ErrNotNumbers is the failure payload reported by Add when either operand is not numeric.
	ErrNotNumbers = "Both arguments are not numbers"
	// ErrOverflow is the failure payload reported by Sum when an integer sum does not fit in T.
	ErrOverflow = "integer overflow"
)

type number interface {
	constraints.Integer | constraints.Float
}

// Sum adds a and b in T. Integer sums that wrap around fail with ErrOverflow; float sums always succeed.
func Sum[T number](a, b T) results.Result[T, string] {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return results.Err[T](ErrOverflow)
	}
	return results.Ok[string](s)
}

type kind int

const (
	signed kind = iota
	unsigned
	floating
)

type operand struct {
	kind kind
	i    int64
	u    uint64
	f    float64
}

func (o operand) float() float64 {
	switch o.kind {
	case signed:
		return float64(o.i)
	case unsigned:
		return float64(o.u)
	default:
		return o.f
	}
}

// classify accepts any value whose underlying kind is numeric, including named types.
func classify(v any) (operand, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return operand{kind: signed, i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return operand{kind: unsigned, u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return operand{kind: floating, f: rv.Float()}, true
	default:
		return operand{}, false
	}
}

func widen[T number](r results.Result[T, string]) (any, bool) {
	v, ok := r.Value()
	return v, ok
}

// Add sums a and b when both are numeric values. Any other operand yields a failure holding ErrNotNumbers.
//
// Two signed integers sum to an int64 and two unsigned integers to a uint64, as long as the sum fits.
// Mixed signed and unsigned operands sum to an int64 when the unsigned one fits in an int64.
// Everything else, including integer sums that overflow, sums to a float64.
func Add(a, b any) results.Result[any, string] {
	x, okA := classify(a)
	y, okB := classify(b)
	if !okA || !okB {
		return results.Err[any](ErrNotNumbers)
	}

	var (
		v  any
		ok bool
	)
	switch {
	case x.kind == signed && y.kind == signed:
		v, ok = widen(Sum(x.i, y.i))
	case x.kind == unsigned && y.kind == unsigned:
		v, ok = widen(Sum(x.u, y.u))
	case x.kind == signed && y.kind == unsigned && y.u <= math.MaxInt64:
		v, ok = widen(Sum(x.i, int64(y.u)))
	case x.kind == unsigned && y.kind == signed && x.u <= math.MaxInt64:
		v, ok = widen(Sum(int64(x.u), y.i))
	}
	if !ok {
		v, _ = widen(Sum(x.float(), y.float()))
	}
	return results.Ok[string](v)
}

// AddStrings parses a and b as decimal numbers and sums them with Add.
// Integers parse to int64 and other decimals to float64. An operand that does not parse is
// handed to Add as the raw string.
func AddStrings(a, b string) results.Result[any, string] {
	return Add(parse(a), parse(b))
}

func parse(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return s
	}
	return f
}
