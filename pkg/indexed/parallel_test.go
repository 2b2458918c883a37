package indexed

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestParallelSliceMatchesSequential(t *testing.T) {
	ctx := context.Background()
	gen := func(i int) (int, error) { return i * i, nil }

	got, err := ParallelSlice(ctx, 1000, gen, WithParallelism[int](4))
	if err != nil {
		t.Fatalf("ParallelSlice failed: %v", err)
	}
	want := Slice(1000, func(i int) int { return i * i })
	if len(got) != len(want) {
		t.Fatalf("expected length %d, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestParallelSliceEmpty(t *testing.T) {
	s, err := ParallelSlice(context.Background(), 0, func(i int) (int, error) {
		t.Errorf("generator invoked for empty slice (index %d)", i)
		return 0, nil
	}, WithParallelism[int](4))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s == nil || len(s) != 0 {
		t.Errorf("expected empty slice, got %v", s)
	}
}

func TestParallelSliceDefaultDOP(t *testing.T) {
	// No WithParallelism: one worker per logical CPU.
	s, err := ParallelSlice(context.Background(), 100, func(i int) (int, error) {
		return i, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range s {
		if v != i {
			t.Errorf("index %d: expected %d, got %d", i, i, v)
		}
	}
}

func TestParallelSliceSingleWorker(t *testing.T) {
	// WithParallelism(1) collapses to a single worker, so the generator
	// runs in globally ascending order.
	var seen []int
	s, err := ParallelSlice(context.Background(), 50, func(i int) (int, error) {
		seen = append(seen, i)
		return i, nil
	}, WithParallelism[int](1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != 50 || len(seen) != 50 {
		t.Fatalf("expected 50 elements and 50 invocations, got %d and %d", len(s), len(seen))
	}
	for i, idx := range seen {
		if idx != i {
			t.Errorf("invocation %d: expected index %d, got %d", i, i, idx)
		}
	}
}

func TestParallelSliceErrorReleases(t *testing.T) {
	boom := errors.New("boom")
	var built, released atomic.Int64

	s, err := ParallelSlice(context.Background(), 256,
		func(i int) (int, error) {
			if i == 100 {
				return 0, boom
			}
			built.Add(1)
			return i, nil
		},
		WithRelease(func(int) { released.Add(1) }),
		WithParallelism[int](4),
	)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom, got %v", err)
	}
	if s != nil {
		t.Errorf("expected nil slice on failure, got length %d", len(s))
	}
	// Every element that finished building is released exactly once.
	// Workers that raced past the failure may have built more or fewer
	// elements, so only the accounting identity is stable.
	if released.Load() != built.Load() {
		t.Errorf("built %d elements but released %d", built.Load(), released.Load())
	}
}

func TestParallelSliceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParallelSlice(ctx, 1000, func(i int) (int, error) {
		return i, nil
	}, WithParallelism[int](4))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestParallelSliceNegativeLengthPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for negative length")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNegativeLength) {
			t.Errorf("expected ErrNegativeLength, got %v", r)
		}
	}()
	ParallelSlice(context.Background(), -1, func(i int) (int, error) {
		return i, nil
	})
}
