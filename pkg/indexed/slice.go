package indexed

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// ============================================================================
// DYNAMIC-LENGTH BUILDER
// ============================================================================

// Slice builds a slice of runtime-determined length n by invoking gen once
// per index, in ascending order:
//
//	squares := indexed.Slice(8, func(i int) int { return i * i })
//
// The slice is allocated with capacity n up front and filled by appending,
// so at every moment it is a valid, fully-initialised (if shorter) slice;
// capacity is an optimisation, not an invariant.
//
// n = 0 returns an empty slice without invoking gen. A negative n panics
// with an error wrapping ErrNegativeLength.
//
// If gen panics partway through, the elements appended so far are released
// in reverse order via the WithRelease hook (if any) before the panic
// continues.
func Slice[T any, I constraints.Integer](n I, gen func(I) T, opts ...Option[T]) []T {
	if n < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeLength, n))
	}
	config := ApplyOptions(opts...)
	out := make([]T, 0, n)
	if config.release != nil {
		defer func() {
			if len(out) == int(n) {
				return
			}
			for j := len(out) - 1; j >= 0; j-- {
				config.release(out[j])
			}
		}()
	}
	for i := I(0); i < n; i++ {
		out = append(out, gen(i))
	}
	return out
}

// SliceErr is the fallible form of Slice: the generator may reject an
// index by returning an error, which aborts construction.
//
// On failure the elements appended so far are released in reverse order
// via the WithRelease hook (if any), and the generator's error is returned
// wrapped with the failing index.
func SliceErr[T any, I constraints.Integer](n I, gen func(I) (T, error), opts ...Option[T]) ([]T, error) {
	if n < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeLength, n))
	}
	config := ApplyOptions(opts...)
	out := make([]T, 0, n)
	if config.release != nil {
		defer func() {
			if len(out) == int(n) {
				return
			}
			for j := len(out) - 1; j >= 0; j-- {
				config.release(out[j])
			}
		}()
	}
	for i := I(0); i < n; i++ {
		v, err := gen(i)
		if err != nil {
			return nil, fmt.Errorf("indexed: generator failed at index %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
