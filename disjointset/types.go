// Package disjointset defines the Forest type and its sentinel errors.
package disjointset

import "errors"

var (
	// ErrInvalidSize indicates a forest was requested with fewer than one element.
	ErrInvalidSize = errors.New("disjointset: size must be at least 1")

	// ErrIndexOutOfRange indicates an index outside [0, n).
	ErrIndexOutOfRange = errors.New("disjointset: index out of range")
)

// Forest is a union-find structure over indices 0..n-1.
// parent[i] == i marks a root; size[r] is meaningful only for roots.
type Forest struct {
	parent []int
	size   []int
	roots  int // number of current clusters
}
