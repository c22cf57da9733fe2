// Package pairwise defines Edge, Stream, generation options and sentinel errors.
package pairwise

import (
	"context"
	"errors"
	"math"
	"runtime"
)

// ErrTooManyPoints indicates that the number of pairs would overflow int.
var ErrTooManyPoints = errors.New("pairwise: too many points to enumerate all pairs")

// Edge is a candidate connection between points A and B, A < B.
// Squared is the exact squared Euclidean distance between them.
type Edge struct {
	A, B    int
	Squared int64
}

// Distance returns the Euclidean distance as float64.
// It exists for human-readable output only; ordering always uses Squared.
func (e Edge) Distance() float64 { return math.Sqrt(float64(e.Squared)) }

// Options configures Generate.
type Options struct {
	// Ctx cancels generation between rows; defaults to context.Background().
	Ctx context.Context

	// Workers bounds the number of rows computed concurrently. Values < 1 mean 1.
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// WithWorkers sets the number of concurrent row workers.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithContext sets the context checked before each row is computed.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// DefaultOptions returns Options with a background context and
// Workers = runtime.GOMAXPROCS(0).
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
	}
}
