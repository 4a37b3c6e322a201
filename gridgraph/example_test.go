package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/regiongrow/gridgraph"
)

// ExampleGridGraph_ComponentsOf counts the background regions a segmentation
// pass would have to paint.
//
//	0 1 0
//	1 1 1
//	0 1 0
func ExampleGridGraph_ComponentsOf() {
	gg, err := gridgraph.NewGridGraph([][]int{
		{0, 1, 0},
		{1, 1, 1},
		{0, 1, 0},
	})
	if err != nil {
		panic(err)
	}
	for _, comp := range gg.ComponentsOf(0) {
		x, y := gg.Coordinate(comp[0])
		fmt.Printf("region at (%d,%d) size %d\n", x, y, len(comp))
	}
	fmt.Println("foreground regions:", gg.CountComponents(1))
	// Output:
	// region at (0,0) size 1
	// region at (2,0) size 1
	// region at (0,2) size 1
	// region at (2,2) size 1
	// foreground regions: 1
}
