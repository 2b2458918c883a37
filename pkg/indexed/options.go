package indexed

// Config holds configuration for the builders.
type Config[T any] struct {
	release func(T)
	dop     int
}

// Option is a functional option for configuring a builder call.
type Option[T any] func(*Config[T])

// DefaultConfig returns the default configuration: no release hook.
func DefaultConfig[T any]() Config[T] {
	return Config[T]{}
}

// WithRelease installs a disposal hook for already-built elements.
//
// The hook is only invoked when construction is abandoned partway through
// (a generator error or panic): each element built so far is released
// exactly once, in reverse build order, before the failure propagates.
// It is never invoked on a successful build.
func WithRelease[T any](fn func(T)) Option[T] {
	return func(c *Config[T]) {
		c.release = fn
	}
}

// WithParallelism sets the degree of parallelism for ParallelSlice; the
// synchronous builders ignore it. Values <= 0 (including the default)
// select the number of logical CPUs (GOMAXPROCS).
//
// The element type cannot be inferred from the argument, so call sites
// name it explicitly: WithParallelism[Shard](8).
func WithParallelism[T any](dop int) Option[T] {
	return func(c *Config[T]) {
		c.dop = dop
	}
}

// ApplyOptions applies the given options to the default configuration.
func ApplyOptions[T any](opts ...Option[T]) Config[T] {
	config := DefaultConfig[T]()
	for _, opt := range opts {
		opt(&config)
	}
	return config
}
