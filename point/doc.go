// Package point provides the immutable, index-addressed store of 3-D integer
// positions that every other package of circuits works on.
//
// What & Why
//
//   - A Point is three signed 64-bit coordinates (X, Y, Z). It carries no
//     identity of its own: a point is identified solely by its index in a Store.
//
//   - Distances are always squared Euclidean distances computed in exact integer
//     arithmetic. SquaredDistance refuses to wrap on overflow and reports
//     ErrCoordinateOverflow instead, so ordering decisions made on top of it are
//     never corrupted by silent int64 wrap-around.
//
//   - Parse and ParseFile read the plain-text "x,y,z" format, one point per line.
//
// Error Conditions
//
//   - ErrEmptyInput         : the input contained no points.
//   - ErrMalformedLine      : a line did not hold exactly three integer fields.
//   - ErrCoordinateOverflow : the squared distance of two points exceeds int64.
//
// Complexity
//
//   - NewStore, Points: O(n) time and memory (defensive copy).
//   - At, Len, SquaredDistance: O(1).
//   - Parse: O(total input size).
package point
