package indexed

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// ============================================================================
// FIXED-SIZE PRIMITIVE (1D)
// ============================================================================

// Array builds a fixed-size array by invoking gen once per index, in
// ascending order. The array type is passed as the type argument A, so the
// element type needs neither a meaningful zero value nor any constructor:
//
//	road := indexed.Array[[3]House](func(i int) House {
//		return House{Number: i + 1}
//	})
//
// Each generated element is written straight into its slot of the result;
// no scratch buffer is built and converted afterwards. Named array types
// work the same as literal ones.
//
// A zero-length array returns immediately without invoking gen.
//
// Array panics with an error wrapping ErrNotArray or ErrElementType if A
// is not an array of T; Go cannot express "array of any length" as a
// constraint, so the shape is checked at runtime instead.
//
// Parameters:
//   gen: The generator, invoked with each index 0..N and returning the
//        element for that slot.
//   opts: Optional configuration, e.g. WithRelease.
//
// Returns:
//   A: The fully-initialised array.
func Array[A, T any, I constraints.Integer](gen func(I) T, opts ...Option[T]) A {
	config := ApplyOptions(opts...)
	var out A
	fillSlots(slotView[A, T](&out), gen, config.release)
	return out
}

// ArrayErr is the fallible form of Array: the generator may reject an
// index by returning an error, which aborts construction.
//
// On failure the elements built so far are released in reverse order via
// the WithRelease hook (if any), the zero value of A is returned, and the
// generator's error is returned wrapped with the failing index.
//
// Parameters:
//   gen: The generator, returning the element for an index or an error.
//   opts: Optional configuration, e.g. WithRelease.
//
// Returns:
//   A: The fully-initialised array, or the zero value on failure.
//   error: The first generator error, wrapped with its index.
func ArrayErr[A, T any, I constraints.Integer](gen func(I) (T, error), opts ...Option[T]) (A, error) {
	config := ApplyOptions(opts...)
	var out A
	if err := fillSlotsErr(slotView[A, T](&out), gen, config.release); err != nil {
		var zero A
		return zero, err
	}
	return out, nil
}

// slotView validates that A is an array of T and returns a slice sharing
// the array's storage, so that writing slot i initialises element i of the
// array in place. Panics on a shape mismatch.
func slotView[A, T any](out *A) []T {
	at := reflect.TypeFor[A]()
	if at.Kind() != reflect.Array {
		panic(fmt.Errorf("%w: %s", ErrNotArray, at))
	}
	et := reflect.TypeFor[T]()
	if at.Elem() != et {
		panic(fmt.Errorf("%w: %s holds %s, generator yields %s", ErrElementType, at, at.Elem(), et))
	}
	rv := reflect.ValueOf(out).Elem()
	return rv.Slice(0, at.Len()).Interface().([]T)
}

// fillSlots writes gen(i) into slots[i] for ascending i. If gen panics
// partway through, the slots filled so far are released in reverse order
// before the panic continues unwinding; slots never written are not
// touched.
func fillSlots[T any, I constraints.Integer](slots []T, gen func(I) T, release func(T)) {
	filled := 0
	if release != nil {
		defer func() {
			if filled == len(slots) {
				return // Completed normally; ownership is the caller's.
			}
			for j := filled - 1; j >= 0; j-- {
				release(slots[j])
			}
		}()
	}
	for i := range slots {
		slots[i] = gen(I(i))
		filled++
	}
}

// fillSlotsErr is fillSlots for a fallible generator. The same unwind
// discipline covers both a returned error and a panic.
func fillSlotsErr[T any, I constraints.Integer](slots []T, gen func(I) (T, error), release func(T)) error {
	filled := 0
	if release != nil {
		defer func() {
			if filled == len(slots) {
				return
			}
			for j := filled - 1; j >= 0; j-- {
				release(slots[j])
			}
		}()
	}
	for i := range slots {
		v, err := gen(I(i))
		if err != nil {
			return fmt.Errorf("indexed: generator failed at index %d: %w", i, err)
		}
		slots[i] = v
		filled++
	}
	return nil
}
