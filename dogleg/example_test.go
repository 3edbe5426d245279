package dogleg_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/dogleg"
)

// ExampleStep contrasts a radius wide enough for the full Gauss-Newton
// step with one that caps the step at the trust-region boundary.
func ExampleStep() {
	var (
		r    = []float64{1, 0, 1} // R = I
		diag = []float64{1, 1}
		qtb  = []float64{3, 4}
		x    = make([]float64, 2)
	)
	dogleg.Step(x, r, diag, qtb, 10)
	fmt.Printf("inside  = [%.4f %.4f]\n", x[0], x[1])

	dogleg.Step(x, r, diag, qtb, 1)
	fmt.Printf("clipped = [%.4f %.4f]\n", x[0], x[1])
	// Output:
	// inside  = [3.0000 4.0000]
	// clipped = [0.6000 0.8000]
}
