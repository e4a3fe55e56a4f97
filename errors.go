package vec

import "github.com/pkg/errors"

// ErrAllocationFailure is returned when the storage layer cannot satisfy a
// capacity request. It is never retried or downgraded, and every growth
// path that fails with it leaves the vector exactly as it was.
var ErrAllocationFailure = errors.New("vec: allocation failure")

// IsAllocationFailure reports whether err originated in the storage layer
// rather than in one of the element type's own operations.
func IsAllocationFailure(err error) bool {
	return errors.Is(err, ErrAllocationFailure)
}
