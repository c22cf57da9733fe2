// Package circuits connects points in 3-D space closest-first and tracks which
// of them end up transitively joined into the same circuit.
//
// What is inside?
//
//	point/       — immutable Point store, exact squared distances, "x,y,z" parsing
//	disjointset/ — union-find forest with union-by-size and full path compression
//	pairwise/    — all-pairs edge generation (concurrent rows) and the stable edge schedule
//	circuit/     — the two termination policies: bounded attempts and full connectivity
//	cmd/circuits — command-line front end (bounded, single, solve)
//
// Data flows one way: points → all pairs with squared distances → stable sort
// by distance → sequential unions → report.
//
// Quick example:
//
//	pts, _ := point.ParseFile("input.txt")
//	res, err := circuit.RunBounded(pts, 1000)
//	// res.Product is the product of the three largest circuit sizes.
//
//	final, err := circuit.RunUntilSingle(pts)
//	// final.XProduct() multiplies (with overflow check) the X coordinates of the last joined pair.
//
// All pairwise distances are computed (O(n²)); no spatial index is used.
package circuits
