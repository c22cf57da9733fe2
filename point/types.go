// Package point defines the Point and Store types and sentinel errors.
package point

import (
	"errors"
	"strconv"
)

var (
	// ErrEmptyInput indicates that parsing produced no points at all.
	ErrEmptyInput = errors.New("point: input contains no points")

	// ErrMalformedLine indicates a line that is not exactly three comma-separated integers.
	ErrMalformedLine = errors.New("point: malformed coordinate line")

	// ErrCoordinateOverflow indicates that a squared distance does not fit in int64.
	ErrCoordinateOverflow = errors.New("point: squared distance overflows int64")
)

// Point is a position in 3-D integer space. It is immutable once loaded.
type Point struct {
	X, Y, Z int64
}

// String renders p as "x,y,z", the same form it is parsed from.
func (p Point) String() string {
	b := make([]byte, 0, 32)
	b = strconv.AppendInt(b, p.X, 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, p.Y, 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, p.Z, 10)

	return string(b)
}

// Store is an ordered, immutable sequence of points indexed 0..Len()-1.
// The zero Store is empty and ready to use.
type Store struct {
	pts []Point
}

// NewStore returns a Store holding a private copy of pts, so later mutation
// of the caller's slice is never observed through the Store.
func NewStore(pts []Point) Store {
	cp := make([]Point, len(pts))
	copy(cp, pts)

	return Store{pts: cp}
}

// Len returns the number of points in the store.
func (s Store) Len() int { return len(s.pts) }

// At returns the point at index i. The caller guarantees 0 <= i < Len();
// indices handed out by this module (edge endpoints) always satisfy that.
func (s Store) At(i int) Point { return s.pts[i] }

// Points returns a copy of all points in index order.
func (s Store) Points() []Point {
	cp := make([]Point, len(s.pts))
	copy(cp, s.pts)

	return cp
}
