package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/mstcluster/matrix"
)

// ExamplePairwise computes Euclidean distances for three points and lists the
// complete-graph edges.
func ExamplePairwise() {
	points := [][]float64{{0, 0}, {3, 4}, {6, 8}}

	d, err := matrix.Pairwise(points)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(d)
	fmt.Println(d.Edges())
	// Output:
	// [0, 5, 10]
	// [5, 0, 5]
	// [10, 5, 0]
	// [0-1(5) 0-2(10) 1-2(5)]
}
