// Package circuit defines options, results and sentinel errors for both policies.
package circuit

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/circuits/pairwise"
	"github.com/katalvlaran/circuits/point"
)

var (
	// ErrInvalidBudget indicates a negative attempt budget.
	ErrInvalidBudget = errors.New("circuit: attempt budget must be non-negative")

	// ErrInsufficientClusters indicates fewer than three clusters remain, so the
	// product of the three largest is undefined.
	ErrInsufficientClusters = errors.New("circuit: fewer than three clusters")

	// ErrDisconnectedInput indicates the edge schedule ran out before every point
	// joined a single cluster.
	ErrDisconnectedInput = errors.New("circuit: points cannot be joined into a single cluster")

	// ErrProductOverflow indicates that the X-coordinate product does not fit in int64.
	ErrProductOverflow = errors.New("circuit: x-coordinate product overflows int64")
)

// Step describes one examined edge, passed to diagnostic hooks.
type Step struct {
	// Attempt is the 1-based number of the edge among all edges examined so far.
	Attempt int
	// Edge is the scheduled pair and its squared distance.
	Edge pairwise.Edge
	// From and To are the points at Edge.A and Edge.B.
	From, To point.Point
	// Merged reports whether the union joined two clusters.
	Merged bool
}

// Options configures a run.
type Options struct {
	// Ctx is checked before every examined edge and between distance rows.
	// Defaults to context.Background().
	Ctx context.Context

	// Workers bounds concurrent distance computation; see pairwise.WithWorkers.
	Workers int

	// OnConnect, if non-nil, is called after every successful union.
	OnConnect func(Step)

	// OnSkip, if non-nil, is called for every edge whose endpoints were already connected.
	OnSkip func(Step)
}

// Option mutates Options.
type Option func(*Options)

// WithContext makes a run stop with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// WithWorkers sets the number of goroutines computing pairwise distances.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithOnConnect installs a hook called for every merged edge.
func WithOnConnect(fn func(Step)) Option {
	return func(o *Options) {
		o.OnConnect = fn
	}
}

// WithOnSkip installs a hook called for every edge joining an already-connected pair.
func WithOnSkip(fn func(Step)) Option {
	return func(o *Options) {
		o.OnSkip = fn
	}
}

// DefaultOptions returns Options with default pairwise workers and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: pairwise.DefaultOptions().Workers,
	}
}

// BoundedResult is the outcome of RunBounded.
type BoundedResult struct {
	// Sizes holds every cluster size, largest first. Sum(Sizes) == number of points.
	Sizes []int
	// Product is Sizes[0]·Sizes[1]·Sizes[2].
	Product int
	// Attempts is the number of edges examined (≤ k).
	Attempts int
	// Merges is the number of those edges that joined two clusters.
	Merges int
}

// SingleResult is the outcome of RunUntilSingle.
type SingleResult struct {
	// A and B are the indices (A < B) of the pair whose union produced one cluster.
	A, B int
	// PointA and PointB are the points at A and B.
	PointA, PointB point.Point
	// Attempts is the number of edges examined, Merges the number that joined clusters.
	Attempts, Merges int
}

// XProduct returns PointA.X · PointB.X.
// Returns ErrProductOverflow when the product is outside the int64 range.
func (r SingleResult) XProduct() (int64, error) {
	a, b := r.PointA.X, r.PointB.X
	hi, lo := bits.Mul64(absUint(a), absUint(b))
	negative := (a < 0) != (b < 0)
	switch {
	case hi != 0:
		return 0, fmt.Errorf("%w: %d × %d", ErrProductOverflow, a, b)
	case negative && lo <= 1<<63:
		return int64(-lo), nil // -2^63 is representable
	case !negative && lo <= math.MaxInt64:
		return int64(lo), nil
	}

	return 0, fmt.Errorf("%w: %d × %d", ErrProductOverflow, a, b)
}

// absUint returns |v| as uint64; it is exact for math.MinInt64.
func absUint(v int64) uint64 {
	if v < 0 {
		return -uint64(v)
	}

	return uint64(v)
}
