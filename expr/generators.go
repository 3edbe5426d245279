// SPDX-License-Identifier: MIT
package expr

import (
	"math/rand/v2"

	"github.com/katalvlaran/lvlalg/scalar"
)

// constantExpr is a lazy leaf whose every coefficient is the same value.
type constantExpr[T scalar.Scalar] struct {
	rows, cols int
	v          T
}

func (e constantExpr[T]) Rows() int { return e.rows }
func (e constantExpr[T]) Cols() int { return e.cols }

func (e constantExpr[T]) At(r, c int) T {
	checkShapeIndex(e.rows, e.cols, r, c)
	return e.v
}

func (e constantExpr[T]) Flags() Flags { return FlagRowMajor | FlagLinear }
func (e constantExpr[T]) Cost() int { return scalar.ReadCost[T]() }

// identityExpr is a lazy leaf with ones on the diagonal and zeros elsewhere.
type identityExpr[T scalar.Scalar] struct {
	n int
}

func (e identityExpr[T]) Rows() int { return e.n }
func (e identityExpr[T]) Cols() int { return e.n }

func (e identityExpr[T]) At(r, c int) T {
	checkShapeIndex(e.n, e.n, r, c)
	if r == c {
		return scalar.FromFloat[T](1)
	}
	var zero T
	return zero
}

func (e identityExpr[T]) Flags() Flags { return FlagRowMajor }
func (e identityExpr[T]) Cost() int { return 1 }

// checkShapeIndex panics with ErrIndexOutOfRange when (r, c) lies outside a
// rows×cols shape. Generator leaves share it instead of owning storage.
func checkShapeIndex(rows, cols, r, c int) {
	if r < 0 || r >= rows || c < 0 || c >= cols {
		panic(ErrIndexOutOfRange)
	}
}

// Constant returns a lazy rows×cols expression whose coefficients all equal
// v. No storage is allocated; materialize it with Assign or Materialize.
func Constant[T scalar.Scalar](rows, cols int, v T) Expr[T] {
	if rows <= 0 || cols <= 0 {
		panic(ErrInvalidDimensions)
	}
	return constantExpr[T]{rows: rows, cols: cols, v: v}
}

// Zeros returns a lazy rows×cols expression of zeros.
func Zeros[T scalar.Scalar](rows, cols int) Expr[T] {
	var zero T
	return Constant[T](rows, cols, zero)
}

// Ones returns a lazy rows×cols expression of ones.
func Ones[T scalar.Scalar](rows, cols int) Expr[T] {
	return Constant[T](rows, cols, scalar.FromFloat[T](1))
}

// Identity returns a lazy n×n identity expression.
func Identity[T scalar.Scalar](n int) Expr[T] {
	if n <= 0 {
		panic(ErrInvalidDimensions)
	}
	return identityExpr[T]{n: n}
}

// Random returns a rows×cols matrix with coefficients drawn uniformly from
// [-1, 1); complex types get independent real and imaginary draws. The
// caller supplies the generator, keeping tests reproducible.
func Random[T scalar.Scalar](rows, cols int, rng *rand.Rand) *Dense[T] {
	d := NewDense[T](rows, cols)
	for i := range d.data {
		d.data[i] = randomScalar[T](rng)
	}
	return d
}

// RandomSymmetric returns a random symmetric n×n matrix (R+Rᵀ)/2 with
// float64 coefficients.
func RandomSymmetric(n int, rng *rand.Rand) *Dense[float64] {
	d := Random[float64](n, n, rng)
	for r := 0; r < n; r++ {
		for c := 0; c < r; c++ {
			m := (d.data[r*n+c] + d.data[c*n+r]) / 2
			d.data[r*n+c], d.data[c*n+r] = m, m
		}
	}
	return d
}

// RandomSPD returns a random symmetric positive-definite n×n matrix,
// RᵀR shifted by n on the diagonal to keep the spectrum safely positive.
func RandomSPD(n int, rng *rand.Rand) *Dense[float64] {
	r := Random[float64](n, n, rng)
	d := NewDense[float64](n, n)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			var sum float64
			for k := 0; k < n; k++ {
				sum += r.data[k*n+i] * r.data[k*n+j]
			}
			d.data[i*n+j], d.data[j*n+i] = sum, sum
		}
		d.data[i*n+i] += float64(n)
	}
	return d
}

// randomScalar draws one uniform coefficient in [-1, 1) for any Scalar.
func randomScalar[T scalar.Scalar](rng *rand.Rand) T {
	re := 2*rng.Float64() - 1
	if scalar.IsComplex[T]() {
		return scalar.FromComplex[T](complex(re, 2*rng.Float64()-1))
	}
	return scalar.FromFloat[T](re)
}
