package edgefold_test

import (
	"fmt"

	"github.com/KiyoMenager/distance-matrix/edgefold"
)

// ExampleMap labels every hop of a delivery round, wrap edge included.
func ExampleMap() {
	stops := []string{"depot", "north", "east"}

	hops := edgefold.Map(stops, func(from, to string) string {
		return from + "→" + to
	}, edgefold.Cyclic)

	for _, hop := range hops {
		fmt.Println(hop)
	}
	// Output:
	// depot→north
	// north→east
	// east→depot
}

// ExampleReduce totals per-edge weights over an open path and a closed tour.
func ExampleReduce() {
	seq := []int{1, 2, 3}
	sum := func(u, v, acc int) int { return acc + u + v }

	fmt.Println(edgefold.Reduce(seq, 0, sum, edgefold.Acyclic))
	fmt.Println(edgefold.Reduce(seq, 0, sum, edgefold.Cyclic))
	// Output:
	// 8
	// 12
}
