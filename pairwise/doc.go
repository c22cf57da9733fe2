// Package pairwise enumerates every unordered pair of points in a point.Store,
// computes its exact squared distance, and schedules the pairs for consumption
// in ascending distance order.
//
// Generation
//
//   - Generate produces the C(n,2) edges (A, B, Squared) with A < B in generation
//     order: ascending A, then ascending B.
//   - Rows (all pairs sharing the same A) are independent and are computed
//     concurrently by up to WithWorkers goroutines via errgroup. Row A is written
//     into its own precomputed slot range, so the result is identical to the
//     sequential enumeration whatever the scheduling.
//   - The enumeration is intentionally O(n²); no spatial index is used.
//
// Scheduling
//
//   - Schedule stable-sorts edges by Squared, so equal distances keep generation
//     order. Consumers rely on that order being reproducible.
//   - The returned Stream is finite and non-restartable.
//
// Error Conditions
//
//   - point.ErrCoordinateOverflow : some pair's squared distance does not fit in int64.
//   - ErrTooManyPoints            : C(n,2) edges cannot be addressed on this platform.
//   - ctx.Err()                   : the WithContext context was cancelled before all rows ran.
//
// Complexity: Generate O(n²) time and memory; Schedule O(E log E) with E = C(n,2).
package pairwise
