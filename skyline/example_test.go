package skyline_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/expr"
	"github.com/katalvlaran/lvlalg/skyline"
)

// ExampleLU_Solve factors the 1-D Laplacian stencil and solves against a
// load whose exact solution is the all-ones vector.
func ExampleLU_Solve() {
	a := skyline.FromDense(expr.FromSlice(3, 3, expr.RowMajor, []float64{
		2, -1, 0,
		-1, 2, -1,
		0, -1, 2,
	}), expr.RowMajor)

	lu := skyline.NewLU(a)
	if err := lu.Compute(); err != nil {
		fmt.Println("error:", err)

		return
	}
	x := make([]float64, 3)
	if err := lu.Solve(x, []float64{1, 0, 1}); err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("x = [%.4f %.4f %.4f]\n", x[0], x[1], x[2])
	// Output:
	// x = [1.0000 1.0000 1.0000]
}
