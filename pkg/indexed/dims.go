package indexed

import "golang.org/x/exp/constraints"

// ============================================================================
// MULTI-DIMENSIONAL BUILDERS (2D..6D)
// ============================================================================
//
// Each K-dimensional builder is a thin composition over the 1D primitive:
// the outermost dimension is an Array of (K-1)-dimensional blocks, and the
// per-block generator fixes the outer index as the last component of the
// index tuple handed to gen. Go cannot denote "the element type of a type
// parameter", so every nesting level is its own type parameter: A is the
// whole array, B..F the successively inner block types.
//
// The index tuple is ordered innermost first: the element stored at
// result[iK]...[i1] is gen([K]I{i1, ..., iK}). Within a dimension, indices
// are generated in ascending order, so iteration is row-major with the
// outermost dimension varying slowest.
//
// A WithRelease hook is lifted through every level: abandoning construction
// releases complete inner blocks element by element, in reverse order, on
// top of the partial block's own unwind.

// Array2 builds a two-dimensional array A = [N2]B, B = [N1]T:
//
//	grid := indexed.Array2[[12][34]Cell, [34]Cell](func(ix [2]int) Cell {
//		return Cell{Col: ix[0], Row: ix[1]}
//	})
//
// grid[y][x] holds the element generated for [2]int{x, y}.
func Array2[A, B, T any, I constraints.Integer](gen func([2]I) T, opts ...Option[T]) A {
	rel := releaseOf(opts)
	return Array[A, B](func(i2 I) B {
		return Array[B, T](func(i1 I) T {
			return gen([2]I{i1, i2})
		}, opts...)
	}, blockOptions(liftRelease[B, T](rel))...)
}

// Array3 builds a three-dimensional array A = [N3]B, B = [N2]C, C = [N1]T.
func Array3[A, B, C, T any, I constraints.Integer](gen func([3]I) T, opts ...Option[T]) A {
	rel := releaseOf(opts)
	return Array[A, B](func(i3 I) B {
		return Array2[B, C, T](func(ix [2]I) T {
			return gen([3]I{ix[0], ix[1], i3})
		}, opts...)
	}, blockOptions(liftRelease[B, C](liftRelease[C, T](rel)))...)
}

// Array4 builds a four-dimensional array A = [N4]B, B = [N3]C, C = [N2]D,
// D = [N1]T.
func Array4[A, B, C, D, T any, I constraints.Integer](gen func([4]I) T, opts ...Option[T]) A {
	rel := releaseOf(opts)
	return Array[A, B](func(i4 I) B {
		return Array3[B, C, D, T](func(ix [3]I) T {
			return gen([4]I{ix[0], ix[1], ix[2], i4})
		}, opts...)
	}, blockOptions(liftRelease[B, C](liftRelease[C, D](liftRelease[D, T](rel))))...)
}

// Array5 builds a five-dimensional array A = [N5]B down to E = [N1]T.
func Array5[A, B, C, D, E, T any, I constraints.Integer](gen func([5]I) T, opts ...Option[T]) A {
	rel := releaseOf(opts)
	return Array[A, B](func(i5 I) B {
		return Array4[B, C, D, E, T](func(ix [4]I) T {
			return gen([5]I{ix[0], ix[1], ix[2], ix[3], i5})
		}, opts...)
	}, blockOptions(liftRelease[B, C](liftRelease[C, D](liftRelease[D, E](liftRelease[E, T](rel)))))...)
}

// Array6 builds a six-dimensional array A = [N6]B down to F = [N1]T.
func Array6[A, B, C, D, E, F, T any, I constraints.Integer](gen func([6]I) T, opts ...Option[T]) A {
	rel := releaseOf(opts)
	return Array[A, B](func(i6 I) B {
		return Array5[B, C, D, E, F, T](func(ix [5]I) T {
			return gen([6]I{ix[0], ix[1], ix[2], ix[3], ix[4], i6})
		}, opts...)
	}, blockOptions(liftRelease[B, C](liftRelease[C, D](liftRelease[D, E](liftRelease[E, F](liftRelease[F, T](rel))))))...)
}

// releaseOf extracts the release hook, if any, from a builder's options.
func releaseOf[T any](opts []Option[T]) func(T) {
	return ApplyOptions(opts...).release
}

// liftRelease turns a release hook for elements of type T into one for a
// whole block of type A = [N]T, releasing the block's elements in reverse
// order. A nil hook lifts to nil.
func liftRelease[A, T any](release func(T)) func(A) {
	if release == nil {
		return nil
	}
	return func(block A) {
		slots := slotView[A, T](&block)
		for j := len(slots) - 1; j >= 0; j-- {
			release(slots[j])
		}
	}
}

// blockOptions wraps a lifted release hook into the option list for the
// outer dimension's Array call; a nil hook yields no options.
func blockOptions[B any](release func(B)) []Option[B] {
	if release == nil {
		return nil
	}
	return []Option[B]{WithRelease(release)}
}
