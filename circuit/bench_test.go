package circuit_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/circuits/circuit"
	"github.com/katalvlaran/circuits/point"
)

func benchPoints(n int) []point.Point {
	r := rand.New(rand.NewSource(42))
	pts := make([]point.Point, n)
	for i := range pts {
		pts[i] = point.Point{X: r.Int63n(100000), Y: r.Int63n(100000), Z: r.Int63n(100000)}
	}

	return pts
}

// BenchmarkRunBounded measures 1000 attempts over 1000 random points.
func BenchmarkRunBounded(b *testing.B) {
	pts := benchPoints(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = circuit.RunBounded(pts, 1000)
	}
}

// BenchmarkRunUntilSingle measures full connectivity over 1000 random points.
func BenchmarkRunUntilSingle(b *testing.B) {
	pts := benchPoints(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = circuit.RunUntilSingle(pts)
	}
}
