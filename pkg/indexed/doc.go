// Package indexed builds indexable containers by invoking a generator
// function exactly once per index.
//
// It removes the usual "initialise to a dummy value, then overwrite" dance
// for element types that have no meaningful zero value, by writing each
// generated element straight into its final slot. Fixed-size arrays of one
// to six dimensions and runtime-length slices are supported.
//
// Key properties:
//   - The generator runs exactly once per valid index, in ascending order.
//   - No partially-built container is ever returned to the caller.
//   - An optional release hook disposes of already-built elements when a
//     generator fails or panics partway through.
//
// Basic usage is a single call: pick the builder matching the container
// shape, hand it a generator, and receive the fully-initialised value.
package indexed
