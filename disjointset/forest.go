package disjointset

import "fmt"

// New returns a forest of n singleton clusters (each index is its own root, size 1).
//
// Returns ErrInvalidSize if n < 1.
func New(n int) (*Forest, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	f := &Forest{
		parent: make([]int, n),
		size:   make([]int, n),
		roots:  n,
	}
	for i := range f.parent {
		f.parent[i] = i
		f.size[i] = 1
	}

	return f, nil
}

// Len returns the number of elements n the forest was created with.
func (f *Forest) Len() int { return len(f.parent) }

// Count returns the current number of clusters.
func (f *Forest) Count() int { return f.roots }

// Find returns the canonical root of x and compresses the path so that every
// node visited now points straight at the root. Cluster membership never changes.
//
// The walk is iterative in two passes: first follow parents to the root, then
// rewrite every node on the path. Auxiliary space is O(1) regardless of chain length.
//
// Returns ErrIndexOutOfRange if x is not in [0, n).
func (f *Forest) Find(x int) (int, error) {
	if err := f.check(x); err != nil {
		return 0, err
	}

	return f.find(x), nil
}

// Union merges the clusters of x and y.
// It returns false, with no observable change, when x and y are already connected,
// and true when two clusters were merged.
//
// The smaller cluster's root is attached under the larger one; on equal sizes
// y's root goes under x's root.
//
// Returns ErrIndexOutOfRange if x or y is not in [0, n).
func (f *Forest) Union(x, y int) (bool, error) {
	if err := f.check(x); err != nil {
		return false, err
	}
	if err := f.check(y); err != nil {
		return false, err
	}

	rootX, rootY := f.find(x), f.find(y)
	if rootX == rootY {
		return false, nil
	}
	if f.size[rootX] < f.size[rootY] {
		rootX, rootY = rootY, rootX
	}
	f.parent[rootY] = rootX
	f.size[rootX] += f.size[rootY]
	f.roots--

	return true, nil
}

// Connected reports whether x and y share a canonical root.
func (f *Forest) Connected(x, y int) (bool, error) {
	rx, err := f.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := f.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// Size returns the number of elements in x's cluster.
func (f *Forest) Size(x int) (int, error) {
	r, err := f.Find(x)
	if err != nil {
		return 0, err
	}

	return f.size[r], nil
}

// CircuitSizes returns the size of every current cluster, one entry per root,
// in ascending root-index order. The entries always sum to Len().
func (f *Forest) CircuitSizes() []int {
	sizes := make([]int, 0, f.roots)
	for i := range f.parent {
		if f.parent[i] == i {
			sizes = append(sizes, f.size[i])
		}
	}

	return sizes
}

// find is Find without bounds checking.
func (f *Forest) find(x int) int {
	// 1. Locate the root.
	root := x
	for f.parent[root] != root {
		root = f.parent[root]
	}
	// 2. Point every node on the path at it.
	for f.parent[x] != root {
		next := f.parent[x]
		f.parent[x] = root
		x = next
	}

	return root
}

func (f *Forest) check(x int) error {
	if x < 0 || x >= len(f.parent) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, x, len(f.parent))
	}

	return nil
}
