package circuit_test

import (
	"fmt"

	"github.com/katalvlaran/circuits/circuit"
	"github.com/katalvlaran/circuits/point"
)

// ExampleRunBounded connects the ten closest pairs of the 20 example junction
// boxes and prints each decision, then the product of the three largest circuits.
func ExampleRunBounded() {
	pts, err := point.ParseFile("testdata/example.txt")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := circuit.RunBounded(pts, 10,
		circuit.WithOnConnect(func(s circuit.Step) {
			fmt.Printf("Connected %v and %v (distance: %.2f)\n", s.From, s.To, s.Edge.Distance())
		}),
		circuit.WithOnSkip(func(s circuit.Step) {
			fmt.Printf("Skipped %v and %v (already in same circuit)\n", s.From, s.To)
		}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Sizes, res.Product)

	// Output:
	// Connected 162,817,812 and 425,690,689 (distance: 316.90)
	// Connected 162,817,812 and 431,825,988 (distance: 321.56)
	// Connected 906,360,560 and 805,96,715 (distance: 322.37)
	// Skipped 431,825,988 and 425,690,689 (already in same circuit)
	// Connected 862,61,35 and 984,92,344 (distance: 333.66)
	// Connected 52,470,668 and 117,168,530 (distance: 338.34)
	// Connected 819,987,18 and 941,993,340 (distance: 344.39)
	// Connected 906,360,560 and 739,650,466 (distance: 347.60)
	// Connected 346,949,466 and 425,690,689 (distance: 350.79)
	// Connected 906,360,560 and 984,92,344 (distance: 352.94)
	// [5 4 2 2 1 1 1 1 1 1 1] 40
}

// ExampleRunUntilSingle reports the pair whose connection joins every box.
func ExampleRunUntilSingle() {
	pts, err := point.ParseFile("testdata/example.txt")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := circuit.RunUntilSingle(pts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	xp, err := res.XProduct()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%v × %v: %d\n", res.PointA, res.PointB, xp)

	// Output:
	// 216,146,977 × 117,168,530: 25272
}
