package results

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var ErrTest = errors.New("test err")

type record struct {
	Code   int
	Reason string
}

func TestResult(t *testing.T) {
	require := require.New(t)

	r := Ok[string](3)
	require.True(r.IsOk())
	require.False(r.IsErr())
	require.Equal(3, r.Or(0))
	require.Equal(3, r.Throw())

	r = Err[int]("bad input")
	require.False(r.IsOk())
	require.True(r.IsErr())
	require.Equal(0, r.Or(0))
}

func TestExhaustive(t *testing.T) {
	require := require.New(t)

	check := func(isOk, isErr bool) {
		require.NotEqual(isOk, isErr)
	}

	ri := Ok[string](1)
	check(ri.IsOk(), ri.IsErr())
	ri = Err[int]("")
	check(ri.IsOk(), ri.IsErr())

	rr := Ok[record]("done")
	check(rr.IsOk(), rr.IsErr())
	rr = Err[string](record{Code: 400, Reason: "bad request"})
	check(rr.IsOk(), rr.IsErr())

	rn := Err[struct{}](42)
	check(rn.IsOk(), rn.IsErr())

	re := Ok[error](0.5)
	check(re.IsOk(), re.IsErr())
	re = Err[float64](ErrTest)
	check(re.IsOk(), re.IsErr())
}

func TestZeroValue(t *testing.T) {
	require := require.New(t)

	var r Result[int, string]
	require.True(r.IsErr())
	require.False(r.IsOk())
	require.Equal(7, r.Or(7))

	e, ok := r.Failure()
	require.True(ok)
	require.Equal("", e)
}

func TestOr(t *testing.T) {
	require := require.New(t)

	for _, x := range []int{-1, 0, 1, 42} {
		for _, d := range []int{-5, 0, 99} {
			require.Equal(x, Ok[string](x).Or(d))
			require.Equal(d, Err[int]("nope").Or(d))
		}
	}

	p := &record{Code: 1}
	d := &record{Code: 2}
	require.Same(p, Ok[string](p).Or(d))
	require.Same(d, Err[*record]("nope").Or(d))
}

func TestValue(t *testing.T) {
	require := require.New(t)

	r := Ok[string]("hello")
	v, ok := r.Value()
	require.True(ok)
	require.Equal("hello", v)

	_, ok = r.Failure()
	require.False(ok)

	r = Err[string]("bad input")
	v, ok = r.Value()
	require.False(ok)
	require.Equal("", v)

	e, ok := r.Failure()
	require.True(ok)
	require.Equal("bad input", e)
}

func TestFromPair(t *testing.T) {
	require := require.New(t)

	r := FromPair(1, nil)
	require.True(r.IsOk())
	require.Equal(1, r.Throw())

	r = FromPair(0, ErrTest)
	require.True(r.IsErr())

	err, ok := r.Failure()
	require.True(ok)
	require.ErrorIs(err, ErrTest)
}

func TestString(t *testing.T) {
	require := require.New(t)

	require.Equal("Ok(3)", Ok[string](3).String())
	require.Equal("Err(bad input)", Err[int]("bad input").String())
	require.Equal("Err({400 bad request})", Err[int](record{Code: 400, Reason: "bad request"}).String())
}

func TestConcurrentReaders(t *testing.T) {
	require := require.New(t)

	ok := Ok[string](42)
	bad := Err[int]("bad input")

	wg := sync.WaitGroup{}
	mismatches := make(chan int, 100)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			if !ok.IsOk() || ok.Or(n) != 42 || !bad.IsErr() || bad.Or(n) != n {
				mismatches <- n
			}
		}(i)
	}

	wg.Wait()
	close(mismatches)

	var failed []int
	for n := range mismatches {
		failed = append(failed, n)
	}
	require.Empty(failed)
}
