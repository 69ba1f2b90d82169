package vector

import "errors"

var (
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("vector: index out of bounds")
	// ErrEmpty signals an operation that requires a non-empty vector.
	ErrEmpty = errors.New("vector: empty vector")
)
