package grid_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// ExampleInternalSpace shows how internal cells and walls land in the real grid.
func ExampleInternalSpace() {
	s := grid.InternalSpace(7, 5)
	a, b := grid.Coord{Row: 1, Col: 1}, grid.Coord{Row: 1, Col: 2}

	fmt.Println("internal:", s.Width, "x", s.Height)
	fmt.Println("cell", a, "->", grid.Real(a))
	fmt.Println("wall", a, b, "->", grid.Between(a, b))
	// Output:
	// internal: 3 x 2
	// cell (1,1) -> (2,2)
	// wall (1,1) (1,2) -> (2,3)
}
