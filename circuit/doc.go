// Package circuit drives closest-pair connection of 3-D points: it feeds the
// pairwise edge schedule, shortest first, into a disjointset.Forest and stops
// under one of two termination policies.
//
// Policies
//
//   - RunBounded (bounded attempts): examine the first k scheduled edges,
//     attempting a union on every one whether or not its endpoints are already
//     connected. Every examined edge counts against k. Afterwards the cluster
//     sizes are sorted descending and the three largest are multiplied.
//     Fewer than three clusters is ErrInsufficientClusters.
//
//   - RunUntilSingle (full connectivity): keep consuming edges until a single
//     cluster remains and report the pair whose union caused that final merge.
//     Only successful unions change the remaining-cluster count.
//
// Both policies are deterministic: the edge schedule is a stable sort over
// generation order, and the union phase is strictly sequential.
//
// Diagnostics
//
//	WithOnConnect and WithOnSkip install hooks called for every merged or
//	skipped edge, with the attempt number, the edge and both points. The
//	package itself never prints or logs.
//
// Error Conditions
//
//   - ErrInvalidBudget        : RunBounded with k < 0.
//   - ErrInsufficientClusters : fewer than three clusters after the budget is used.
//   - ErrDisconnectedInput    : RunUntilSingle cannot reach a single cluster
//     (fewer than two points, so no final merge exists).
//   - ErrProductOverflow      : SingleResult.XProduct does not fit in int64.
//   - ctx.Err()               : the WithContext context was cancelled mid-run.
//   - disjointset.ErrInvalidSize, point.ErrCoordinateOverflow from the layers below.
//
// Complexity: O(n² log n) time for scheduling, O(n²) memory; the union phase
// is O(E·α(n)) for E consumed edges.
package circuit
