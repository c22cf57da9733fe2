package pairwise

import (
	"cmp"
	"slices"
)

// Stream yields edges in scheduled order. It is finite and cannot be rewound.
// A Stream is owned by a single consumer.
type Stream struct {
	edges []Edge
	pos   int
}

// Schedule sorts edges ascending by Squared and returns a Stream over them.
// The sort is stable: edges of equal distance keep their relative input order,
// which for Generate's output is ascending A, then ascending B.
//
// Schedule takes ownership of edges and sorts it in place.
//
// Complexity: O(E log E).
func Schedule(edges []Edge) *Stream {
	slices.SortStableFunc(edges, func(a, b Edge) int {
		return cmp.Compare(a.Squared, b.Squared)
	})

	return &Stream{edges: edges}
}

// Next returns the next edge and true, or the zero Edge and false once the
// stream is exhausted.
func (s *Stream) Next() (Edge, bool) {
	if s.pos >= len(s.edges) {
		return Edge{}, false
	}
	e := s.edges[s.pos]
	s.pos++

	return e, true
}

// Remaining returns the number of edges not yet consumed.
func (s *Stream) Remaining() int { return len(s.edges) - s.pos }
