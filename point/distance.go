package point

import (
	"math"
	"math/bits"
)

// SquaredDistance returns Σ(a_k − b_k)² over the three axes in exact integer
// arithmetic. The square root is never taken here; it is only ever needed for
// human-readable diagnostics.
//
// Returns ErrCoordinateOverflow when an axis difference or the final sum cannot
// be represented in int64.
//
// Complexity: O(1).
func SquaredDistance(a, b Point) (int64, error) {
	var sum uint64
	for _, d := range [3][2]int64{{a.X, b.X}, {a.Y, b.Y}, {a.Z, b.Z}} {
		sq, ok := squaredDiff(d[0], d[1])
		if !ok {
			return 0, ErrCoordinateOverflow
		}
		// sum and sq are both ≤ MaxInt64, so the uint64 addition cannot wrap.
		sum += sq
		if sum > math.MaxInt64 {
			return 0, ErrCoordinateOverflow
		}
	}

	return int64(sum), nil
}

// squaredDiff returns (a−b)² as uint64, and false if it exceeds MaxInt64.
func squaredDiff(a, b int64) (uint64, bool) {
	// |a−b| always fits in uint64 even when a−b overflows int64.
	var abs uint64
	if a >= b {
		abs = uint64(a) - uint64(b)
	} else {
		abs = uint64(b) - uint64(a)
	}
	hi, lo := bits.Mul64(abs, abs)
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}

	return lo, true
}
