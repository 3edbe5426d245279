// SPDX-License-Identifier: MIT

// Package eigen - public solver surface.
//
// Purpose:
//   - Own the solver state machine: New preallocates, Compute /
//     ComputeGeneralized run the pipeline and flip the computed flags,
//     accessors hand results out only after a successful solve.
//   - Keep the pipeline order fixed and explicit: load → (Cholesky reduce) →
//     tridiagonalize → accumulate Q → QR iterate → sort → (back-transform).
//
// Contract:
//   - Structural misuse (non-square input, reading results too early) panics
//     with a package sentinel; numerical failure is returned as an error and
//     leaves the solver in the not-computed state.
//   - Only the lower triangle of the input is referenced; the strict upper
//     triangle may hold anything.

package eigen

import (
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/katalvlaran/lvlalg/expr"
)

// SelfAdjoint computes spectral factorizations A = V·diag(λ)·Vᵀ of real
// symmetric matrices, and of symmetric pencils (A, B) with B positive
// definite. The zero value is not usable; construct with New.
//
// A solver is reusable: every Compute resets the previous results and
// recycles the scratch buffers when the dimension is unchanged. Not safe
// for concurrent use.
type SelfAdjoint struct {
	n          int
	values     []float64            // spectrum, ascending after a successful solve
	vectors    *expr.Dense[float64] // eigenvector columns, row-major
	work       []float64            // working copy consumed by the reduction
	subdiag    []float64            // n-1 tridiagonal couplings
	tau        []float64            // n-1 Householder scalars
	scratch    []float64            // length-n blas workspace
	chol       llt                  // B factor for the generalized problem
	computed   bool
	hasVectors bool
}

// New returns a solver preallocated for n×n problems (n ≥ 1). Handing a
// matrix of a different dimension to Compute later regrows the buffers
// transparently.
func New(n int) *SelfAdjoint {
	if n < 1 {
		panic(expr.ErrInvalidDimensions)
	}
	s := &SelfAdjoint{}
	s.resize(n)

	return s
}

// resize readies every buffer for an n×n solve and drops previous results.
func (s *SelfAdjoint) resize(n int) {
	s.n = n
	s.values = grow(s.values, n)
	s.work = grow(s.work, n*n)
	s.subdiag = grow(s.subdiag, n-1)
	s.tau = grow(s.tau, n-1)
	s.scratch = grow(s.scratch, n)
	if s.vectors == nil {
		s.vectors = expr.NewDense[float64](n, n)
	} else {
		s.vectors.Resize(n, n)
	}
	s.computed = false
	s.hasVectors = false
}

// grow reslices buf to n entries, reallocating only when capacity is short.
func grow(buf []float64, n int) []float64 {
	if cap(buf) < n {
		return make([]float64, n)
	}

	return buf[:n]
}

// Compute factors the symmetric matrix a into eigenvalues and (unless
// WithoutVectors) orthonormal eigenvectors.
//
// Implementation:
//   - Stage 1: copy a into the working buffer (lower triangle authoritative).
//   - Stage 2: Householder tridiagonalization, Q accumulated on demand.
//   - Stage 3: Wilkinson-shifted implicit QR until every coupling deflates.
//   - Stage 4: selection sort into ascending order, columns in tow.
//
// Errors:
//   - ErrNoConvergence when the sweep budget runs out (see
//     WithMaxIterations); the solver stays in the not-computed state.
//
// Panics:
//   - expr.ErrNotSquare when a is not square.
//
// Complexity:
//   - Time O(n³), space O(n²) held inside the solver.
func (s *SelfAdjoint) Compute(a *expr.Dense[float64], opts ...Option) error {
	if a.Rows() != a.Cols() {
		panic(expr.ErrNotSquare)
	}
	o := gatherOptions(opts...)
	s.resize(a.Rows())
	s.loadWork(a)

	return s.solve(o)
}

// ComputeGeneralized solves the pencil A·x = λ·B·x for symmetric A and
// symmetric positive definite B.
//
// Implementation:
//   - Stage 1: factor B = L·Lᵀ; a non-positive pivot aborts the solve
//     before the pencil is touched.
//   - Stage 2: reduce to the standard problem C = L⁻¹·A·L⁻ᵀ (two Trsm).
//   - Stage 3: run the standard pipeline on C.
//   - Stage 4: normalize the standard-form columns, then back-transform
//     V ← L⁻ᵀ·V. A column y that is unit in the Euclidean norm maps to
//     x = L⁻ᵀ·y that is unit in the B-inner product ⟨x, B·x⟩, so
//     normalizing on the standard side both undoes accumulated scale drift
//     and keeps Vᵀ·B·V at the identity.
//
// Errors:
//   - ErrNotPositiveDefinite when B has no Cholesky factor.
//   - ErrNoConvergence as for Compute.
//
// Panics:
//   - expr.ErrNotSquare when either input is not square,
//     expr.ErrShapeMismatch when their dimensions differ.
func (s *SelfAdjoint) ComputeGeneralized(a, b *expr.Dense[float64], opts ...Option) error {
	if a.Rows() != a.Cols() || b.Rows() != b.Cols() {
		panic(expr.ErrNotSquare)
	}
	if b.Rows() != a.Rows() {
		panic(expr.ErrShapeMismatch)
	}
	o := gatherOptions(opts...)
	s.resize(a.Rows())

	// Stage 1: factor B.
	s.loadWork(b)
	if err := s.chol.compute(s.work, s.n); err != nil {
		return err
	}

	// Stage 2: fold the factor into A. The triangular solves read the full
	// matrix, so mirror the authoritative lower triangle up first.
	s.loadWork(a)
	s.symmetrizeWork()
	s.chol.reducePencil(s.work)

	// Stage 3: standard solve on the reduced matrix.
	if err := s.solve(o); err != nil {
		return err
	}

	// Stage 4: back to pencil eigenvectors.
	if o.computeVectors {
		v := s.vectors.RawData()
		normalizeColumns(v, s.n)
		s.chol.backTransform(v)
	}

	return nil
}

// solve runs the standard pipeline on the working buffer.
func (s *SelfAdjoint) solve(o Options) error {
	// Trivial solve: a 1×1 matrix is its own spectrum.
	if s.n == 1 {
		s.values[0] = s.work[0]
		if o.computeVectors {
			s.vectors.Set(0, 0, 1)
		}
		s.computed = true
		s.hasVectors = o.computeVectors

		return nil
	}

	tridiagonalize(s.work, s.n, s.values, s.subdiag, s.tau, s.scratch)

	var q []float64
	if o.computeVectors {
		q = s.vectors.RawData()
		setIdentity(q, s.n)
		accumulateQ(s.work, s.n, s.tau, q, s.scratch)
	}

	if err := qrIterate(s.values, s.subdiag, q, s.n, o.computeVectors, o.maxIterations*s.n); err != nil {
		return err
	}

	sortEigenpairs(s.values, q, s.n, o.computeVectors)
	s.computed = true
	s.hasVectors = o.computeVectors

	return nil
}

// loadWork copies a into the row-major working buffer.
func (s *SelfAdjoint) loadWork(a *expr.Dense[float64]) {
	// Fast path: matching layout is a single copy.
	if a.Order() == expr.RowMajor {
		copy(s.work, a.RawData())

		return
	}
	var r, c int
	for r = 0; r < s.n; r++ {
		for c = 0; c < s.n; c++ {
			s.work[r*s.n+c] = a.At(r, c)
		}
	}
}

// symmetrizeWork mirrors the lower triangle of the working buffer onto the
// strict upper triangle, for the pencil path where full-matrix kernels run.
func (s *SelfAdjoint) symmetrizeWork() {
	var r, c int
	for r = 0; r < s.n; r++ {
		for c = r + 1; c < s.n; c++ {
			s.work[r*s.n+c] = s.work[c*s.n+r]
		}
	}
}

// Eigenvalues returns the spectrum in ascending order as a fresh slice.
//
// Panics:
//   - ErrNotComputed before a successful solve.
func (s *SelfAdjoint) Eigenvalues() []float64 {
	if !s.computed {
		panic(ErrNotComputed)
	}
	out := make([]float64, s.n)
	copy(out, s.values)

	return out
}

// Eigenvectors returns a copy of the eigenvector matrix; column i pairs
// with Eigenvalues()[i]. For the standard problem the columns are
// orthonormal; for the generalized problem they are B-orthonormal.
//
// Panics:
//   - ErrNotComputed before a successful solve,
//   - ErrVectorsNotComputed after a WithoutVectors solve.
func (s *SelfAdjoint) Eigenvectors() *expr.Dense[float64] {
	s.needVectors()

	return s.vectors.Clone()
}

// OperatorSqrt returns V·diag(√λ)·Vᵀ, the square root of the operator.
// Meaningful only for a non-negative spectrum: a negative eigenvalue turns
// into NaN entries (math.Sqrt semantics) rather than an error.
//
// Panics:
//   - ErrNotComputed / ErrVectorsNotComputed as for Eigenvectors.
func (s *SelfAdjoint) OperatorSqrt() *expr.Dense[float64] {
	return s.operatorMap(math.Sqrt)
}

// OperatorInverseSqrt returns V·diag(1/√λ)·Vᵀ, the inverse square root of
// the operator. A zero eigenvalue propagates ±Inf entries, a negative one
// NaN; the caller owns the definiteness check.
//
// Panics:
//   - ErrNotComputed / ErrVectorsNotComputed as for Eigenvectors.
func (s *SelfAdjoint) OperatorInverseSqrt() *expr.Dense[float64] {
	return s.operatorMap(func(x float64) float64 { return 1 / math.Sqrt(x) })
}

// operatorMap builds V·diag(f(λ))·Vᵀ: one strided column scaling over a
// copy of V, then a single Gemm against Vᵀ.
func (s *SelfAdjoint) operatorMap(f func(float64) float64) *expr.Dense[float64] {
	s.needVectors()
	var (
		scaled = s.vectors.Clone()
		out    = expr.NewDense[float64](s.n, s.n)
		sd     = scaled.RawData()
		i      int
	)
	for i = 0; i < s.n; i++ {
		blas64.Scal(f(s.values[i]), blas64.Vector{N: s.n, Inc: s.n, Data: sd[i:]})
	}
	blas64.Gemm(blas.NoTrans, blas.Trans, 1,
		blas64.General{Rows: s.n, Cols: s.n, Stride: s.n, Data: sd},
		blas64.General{Rows: s.n, Cols: s.n, Stride: s.n, Data: s.vectors.RawData()},
		0, blas64.General{Rows: s.n, Cols: s.n, Stride: s.n, Data: out.RawData()})

	return out
}

// needVectors guards every accessor that hands out eigenvector data.
func (s *SelfAdjoint) needVectors() {
	if !s.computed {
		panic(ErrNotComputed)
	}
	if !s.hasVectors {
		panic(ErrVectorsNotComputed)
	}
}

// sortEigenpairs orders the spectrum ascending by straight selection sort,
// swapping eigenvector columns alongside their values. The quadratic scan
// is immaterial next to the O(n³) factorization that produced the input.
func sortEigenpairs(values, q []float64, n int, withVectors bool) {
	var i, j, k int
	for i = 0; i < n-1; i++ {
		k = i
		for j = i + 1; j < n; j++ {
			if values[j] < values[k] {
				k = j
			}
		}
		if k == i {
			continue
		}
		values[i], values[k] = values[k], values[i]
		if withVectors {
			blas64.Swap(
				blas64.Vector{N: n, Inc: n, Data: q[i:]},
				blas64.Vector{N: n, Inc: n, Data: q[k:]})
		}
	}
}

// normalizeColumns rescales every column of the row-major matrix v to unit
// Euclidean length, skipping exact zero columns.
func normalizeColumns(v []float64, n int) {
	var (
		col  blas64.Vector
		norm float64
		i    int
	)
	for i = 0; i < n; i++ {
		col = blas64.Vector{N: n, Inc: n, Data: v[i:]}
		norm = blas64.Nrm2(col)
		if norm > 0 {
			blas64.Scal(1/norm, col)
		}
	}
}
