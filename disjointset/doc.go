// Package disjointset implements a Disjoint-Set Forest (union-find) over the
// dense index range 0..n-1, tracking the size of every cluster.
//
// What & Why
//
//   - Each index starts as its own singleton cluster. Union merges the clusters
//     of two indices; Find returns the canonical root shared by every member of a
//     cluster.
//
//   - Union-by-size attaches the smaller cluster's root under the larger one
//     (equal sizes attach y's root under x's root), and Find performs full path
//     compression. Together they give near-constant amortized cost per call,
//     which matters because a caller may issue up to C(n,2) union attempts.
//
//   - Storage is two flat slices addressed by index (parent and size). There are
//     no node objects and no pointers between them.
//
// Invariants
//
//   - Every index reaches exactly one root by following parent links; a root is
//     its own parent.
//   - The size recorded at a root equals the number of indices resolving to it.
//     Sizes at non-root indices are stale and never read.
//   - The values returned by CircuitSizes always sum to Len().
//
// Error Conditions
//
//   - ErrInvalidSize     : New called with n < 1.
//   - ErrIndexOutOfRange : an index outside [0, n) passed to Find, Union, Connected or Size.
//
// Complexity
//
//   - New: O(n). Find/Union: O(α(n)) amortized. CircuitSizes: O(n·α(n)). Count: O(1).
//
// A Forest is not safe for concurrent use; it is owned by a single runner.
package disjointset
