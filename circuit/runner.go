package circuit

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/circuits/disjointset"
	"github.com/katalvlaran/circuits/pairwise"
	"github.com/katalvlaran/circuits/point"
)

// run is the state shared by both policies for the duration of one call.
// It exclusively owns the forest and the stream.
type run struct {
	store    point.Store
	forest   *disjointset.Forest
	stream   *pairwise.Stream
	opts     Options
	attempts int
	merges   int
}

// newRun copies points into a Store, builds the forest and schedules all edges.
func newRun(points []point.Point, opts []Option) (*run, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	store := point.NewStore(points)
	forest, err := disjointset.New(store.Len())
	if err != nil {
		return nil, err
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	edges, err := pairwise.Generate(store,
		pairwise.WithWorkers(o.Workers),
		pairwise.WithContext(o.Ctx),
	)
	if err != nil {
		return nil, err
	}

	return &run{
		store:  store,
		forest: forest,
		stream: pairwise.Schedule(edges),
		opts:   o,
	}, nil
}

// step consumes the next edge and attempts a union on it.
// ok is false once the schedule is exhausted. A done context is returned as
// err before the edge is consumed.
func (r *run) step() (e pairwise.Edge, merged, ok bool, err error) {
	if err := r.opts.Ctx.Err(); err != nil {
		return e, false, false, err
	}
	e, ok = r.stream.Next()
	if !ok {
		return e, false, false, nil
	}
	r.attempts++
	merged, err = r.forest.Union(e.A, e.B)
	if err != nil {
		return e, false, true, err
	}
	if merged {
		r.merges++
	}

	hook := r.opts.OnSkip
	if merged {
		hook = r.opts.OnConnect
	}
	if hook != nil {
		hook(Step{
			Attempt: r.attempts,
			Edge:    e,
			From:    r.store.At(e.A),
			To:      r.store.At(e.B),
			Merged:  merged,
		})
	}

	return e, merged, true, nil
}

// RunBounded examines the k closest pairs of points in schedule order,
// attempting a union on each, and reports the resulting cluster sizes.
//
// Steps:
//  1. Reject k < 0 with ErrInvalidBudget.
//  2. Build the forest and the edge schedule.
//  3. Consume edges until k have been examined or the schedule is exhausted.
//     Every examined edge counts, merged or not.
//  4. Sort cluster sizes descending. With fewer than three clusters return
//     ErrInsufficientClusters; otherwise multiply the three largest.
//
// A context installed with WithContext is checked before every edge.
//
// On ErrInsufficientClusters the returned result still carries Sizes, Attempts
// and Merges (Product is 0) so callers can report what was reached.
//
// Complexity: O(n² log n) scheduling + O(k·α(n)) unions.
func RunBounded(points []point.Point, k int, opts ...Option) (BoundedResult, error) {
	if k < 0 {
		return BoundedResult{}, fmt.Errorf("%w: got %d", ErrInvalidBudget, k)
	}
	r, err := newRun(points, opts)
	if err != nil {
		return BoundedResult{}, err
	}

	for r.attempts < k {
		_, _, ok, err := r.step()
		if err != nil {
			return BoundedResult{}, err
		}
		if !ok {
			break
		}
	}

	sizes := r.forest.CircuitSizes()
	slices.SortFunc(sizes, func(a, b int) int { return cmp.Compare(b, a) })
	res := BoundedResult{Sizes: sizes, Attempts: r.attempts, Merges: r.merges}
	if len(sizes) < 3 {
		return res, fmt.Errorf("%w: %d after %d attempts", ErrInsufficientClusters, len(sizes), r.attempts)
	}
	res.Product = sizes[0] * sizes[1] * sizes[2]

	return res, nil
}

// RunUntilSingle connects closest pairs until every point belongs to one
// cluster and reports the pair whose union performed that final merge.
//
// Steps:
//  1. With fewer than two points there is no final merge: ErrDisconnectedInput.
//     For n = 0 the schedule is empty. For n = 1 the single point is already one
//     cluster, but no union ever produced it, so there is no pair to report;
//     this is returned as ErrDisconnectedInput rather than a placeholder (0, 0).
//  2. Build the forest and the edge schedule.
//  3. Consume edges; each successful union lowers the cluster count by one and
//     becomes the last successful pair. Stop when the count reaches 1.
//  4. If the schedule runs dry first, return ErrDisconnectedInput.
//
// A context installed with WithContext is checked before every edge; once it
// is done the run stops with ctx.Err().
//
// Complexity: O(n² log n) scheduling + O(E·α(n)) unions for E consumed edges.
func RunUntilSingle(points []point.Point, opts ...Option) (SingleResult, error) {
	if len(points) < 2 {
		return SingleResult{}, fmt.Errorf("%w: need at least 2 points, got %d", ErrDisconnectedInput, len(points))
	}
	r, err := newRun(points, opts)
	if err != nil {
		return SingleResult{}, err
	}

	var last pairwise.Edge
	for r.forest.Count() > 1 {
		e, merged, ok, err := r.step()
		if err != nil {
			return SingleResult{}, err
		}
		if !ok {
			return SingleResult{}, fmt.Errorf("%w: %d clusters left", ErrDisconnectedInput, r.forest.Count())
		}
		if merged {
			last = e
		}
	}

	return SingleResult{
		A:        last.A,
		B:        last.B,
		PointA:   r.store.At(last.A),
		PointB:   r.store.At(last.B),
		Attempts: r.attempts,
		Merges:   r.merges,
	}, nil
}
