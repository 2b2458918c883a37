package indexed

import "errors"

// Sentinel errors for builder misuse. The array builders panic with an
// error wrapping one of these, since a mismatched type argument is a
// programming error no correct call site can recover from.
var (
	// ErrNotArray indicates the container type argument is not an array type.
	ErrNotArray = errors.New("indexed: container type is not an array")

	// ErrElementType indicates the array's element type does not match the
	// generator's result type.
	ErrElementType = errors.New("indexed: array element type mismatch")

	// ErrNegativeLength indicates a negative length was passed to a
	// dynamic-length builder.
	ErrNegativeLength = errors.New("indexed: negative length")
)
