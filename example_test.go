package regions_test

import (
	"fmt"

	"github.com/complexvariables/regions"
)

func ExamplePolygon_Winding() {
	square, _ := regions.NewPolygonFromVertices([]complex128{-1 - 1i, 1 - 1i, 1 + 1i, -1 + 1i}, regions.DefaultTolerance)
	fmt.Println(square.Winding(0), square.Winding(3))
	// Output: 1 0
}

func ExampleInterior() {
	fmt.Println(regions.UnitDisk.Contains(0.3+0.4i), regions.UnitDisk.Contains(2))
	// Output: true false
}

func ExampleUnion() {
	pair := regions.Union(
		regions.Interior(regions.NewCircle(-1, 1)),
		regions.Interior(regions.NewCircle(1, 1)),
	)
	fmt.Println(pair.Contains(1), pair.Contains(3i))
	// Output: true false
}
