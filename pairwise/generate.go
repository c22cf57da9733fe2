package pairwise

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/circuits/point"
)

// PairCount returns C(n,2), the number of unordered pairs of n points.
// Returns ErrTooManyPoints if the count does not fit in int.
func PairCount(n int) (int, error) {
	if n < 2 {
		return 0, nil
	}
	// n*(n-1)/2 without intermediate overflow: halve the even factor first.
	a, b := n, n-1
	if a%2 == 0 {
		a /= 2
	} else {
		b /= 2
	}
	if a > math.MaxInt/b {
		return 0, fmt.Errorf("%w: n=%d", ErrTooManyPoints, n)
	}

	return a * b, nil
}

// rowOffset returns the index in the generation-ordered edge slice of the
// first pair (i, i+1).
func rowOffset(n, i int) int {
	// Rows 0..i-1 hold (n-1) + (n-2) + ... + (n-i) pairs.
	return i*(n-1) - i*(i-1)/2
}

// Generate returns every pair (i, j), i < j, of store with its squared distance,
// in generation order (ascending i, then ascending j).
//
// Steps:
//  1. Size the output exactly with PairCount.
//  2. Launch one errgroup task per row i, bounded by Options.Workers.
//     Task i fills out[rowOffset(i) : rowOffset(i)+(n-1-i)] and nothing else.
//  3. Wait; the first overflow error or a cancelled Options.Ctx aborts the
//     result. Rows not yet started are skipped once the context is done.
//
// Complexity: O(n²) time and memory.
func Generate(store point.Store, opts ...Option) ([]Edge, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers < 1 {
		o.Workers = 1
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}

	n := store.Len()
	total, err := PairCount(n)
	if err != nil {
		return nil, err
	}
	out := make([]Edge, total)
	if total == 0 {
		return out, nil
	}

	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)
	for i := 0; i < n-1; i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row := out[rowOffset(n, i) : rowOffset(n, i)+(n-1-i)]
			pi := store.At(i)
			for k := range row {
				j := i + 1 + k
				sq, err := point.SquaredDistance(pi, store.At(j))
				if err != nil {
					return fmt.Errorf("pairwise: pair (%d, %d): %w", i, j, err)
				}
				row[k] = Edge{A: i, B: j, Squared: sq}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
