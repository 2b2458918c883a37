package indexed

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// ============================================================================
// PARALLEL DYNAMIC-LENGTH BUILDER
// ============================================================================

// ParallelSlice builds a slice of length n like Slice, but invokes the
// generator from concurrent workers. It is intended for expensive
// generators (hashing, network-free encoding, simulation cells) where the
// per-element cost dwarfs the coordination overhead.
//
// The index space is split into contiguous chunks, one per worker; each
// worker walks its chunk in ascending order and writes into disjoint slots
// of the pre-sized result. Unlike the synchronous builders, the generator
// is therefore NOT invoked in globally ascending order, and it must be safe
// for concurrent use.
//
// The first generator error cancels the remaining work and is returned
// wrapped with its index; if ctx is cancelled, ctx's error is returned.
// Either way every element that finished building is released exactly once
// via the WithRelease hook (if any) and no slice is returned.
//
// The degree of parallelism comes from WithParallelism; without it, one
// worker per logical CPU is used.
//
// Parameters:
//   ctx: The context for cancellation.
//   n: The number of elements to build.
//   gen: The generator. Invoked concurrently; returns the element for an
//        index or an error.
//   opts: Optional configuration, e.g. WithRelease, WithParallelism.
//
// Returns:
//   []T: The fully-initialised slice, or nil on failure.
//   error: The first generator error or the context's error.
func ParallelSlice[T any, I constraints.Integer](
	ctx context.Context,
	n I,
	gen func(I) (T, error),
	opts ...Option[T],
) ([]T, error) {
	if n < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeLength, n))
	}
	config := ApplyOptions(opts...)
	total := int(n)
	if total == 0 {
		return []T{}, nil
	}

	dop := sanitizeDOP(config.dop)
	if dop > total {
		dop = total
	}
	chunk := (total + dop - 1) / dop

	out := make([]T, total)
	// Per-worker fill watermarks. Written only by the owning worker; the
	// errgroup Wait orders them before the release pass below.
	marks := make([]int, dop)

	g, gCtx := errgroup.WithContext(ctx)
	for w := 0; w < dop; w++ {
		start := w * chunk
		end := min(start+chunk, total)
		if start >= end {
			break
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gCtx.Err(); err != nil {
					return err
				}
				v, err := gen(I(i))
				if err != nil {
					return fmt.Errorf("indexed: generator failed at index %d: %w", i, err)
				}
				out[i] = v
				marks[w] = i + 1 - start
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if config.release != nil {
			for w := dop - 1; w >= 0; w-- {
				start := w * chunk
				for j := marks[w] - 1; j >= 0; j-- {
					config.release(out[start+j])
				}
			}
		}
		return nil, err
	}
	return out, nil
}

// sanitizeDOP ensures the degree of parallelism is a valid positive
// integer, defaulting to the number of logical CPUs (GOMAXPROCS).
func sanitizeDOP(dop int) int {
	if dop <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return dop
}
