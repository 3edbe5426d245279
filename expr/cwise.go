// SPDX-License-Identifier: MIT
package expr

import "github.com/katalvlaran/lvlalg/scalar"

// nestCostThreshold caps the per-coefficient cost a subtree may carry before
// nesting it into a larger expression materializes it first. An operand
// pricier than two libm calls per read is cheaper to cache than to
// recompute.
const nestCostThreshold = 10

// nest prepares e for use as an operand of a larger expression. Subtrees
// flagged FlagEvalBeforeNesting are evaluated into a Dense temporary once;
// everything else is passed through untouched.
func nest[T scalar.Scalar](e Expr[T]) Expr[T] {
	if e.Flags().Has(FlagEvalBeforeNesting) {
		return Materialize(e)
	}
	return e
}

// markCostly sets FlagEvalBeforeNesting once a node's per-coefficient cost
// crosses the nesting threshold.
func markCostly(f Flags, cost int) Flags {
	if cost > nestCostThreshold {
		f |= FlagEvalBeforeNesting
	}
	return f
}

// UnaryExpr applies a functor to every coefficient of one operand.
type UnaryExpr[T scalar.Scalar] struct {
	op      UnaryOp[T]
	operand Expr[T]
	flags   Flags
	cost    int
}

// CwiseUnary returns the lazy coefficient-wise application of op to a.
func CwiseUnary[T scalar.Scalar](op UnaryOp[T], a Expr[T]) Expr[T] {
	a = nest[T](a)
	d := op.Descriptor()

	var (
		af    = a.Flags()
		flags = af & (FlagRowMajor | FlagLinear)
		cost  = a.Cost() + d.Cost
	)
	if d.Vectorizable && af.Has(FlagVectorizable) {
		flags |= FlagVectorizable
	}
	return &UnaryExpr[T]{op: op, operand: a, flags: markCostly(flags, cost), cost: cost}
}

func (e *UnaryExpr[T]) Rows() int { return e.operand.Rows() }
func (e *UnaryExpr[T]) Cols() int { return e.operand.Cols() }

func (e *UnaryExpr[T]) At(r, c int) T {
	return e.op.Apply(e.operand.At(r, c))
}

func (e *UnaryExpr[T]) Flags() Flags    { return e.flags }
func (e *UnaryExpr[T]) Cost() int       { return e.cost }
func (e *UnaryExpr[T]) operands() []any { return []any{e.operand} }

// BinaryExpr combines two same-shape operands coefficient by coefficient.
type BinaryExpr[T scalar.Scalar] struct {
	op       BinaryOp[T]
	lhs, rhs Expr[T]
	flags    Flags
	cost     int
}

// CwiseBinary returns the lazy coefficient-wise combination op(a, b). It
// panics with ErrShapeMismatch unless a and b agree on both dimensions.
func CwiseBinary[T scalar.Scalar](op BinaryOp[T], a, b Expr[T]) Expr[T] {
	sameShape[T](a, b)
	a, b = nest[T](a), nest[T](b)
	d := op.Descriptor()

	var (
		lf, rf    = a.Flags(), b.Flags()
		sameOrder = lf&FlagRowMajor == rf&FlagRowMajor
		flags     = lf & FlagRowMajor
		cost      = a.Cost() + b.Cost() + d.Cost
	)
	if sameOrder && lf.Has(FlagLinear) && rf.Has(FlagLinear) {
		flags |= FlagLinear
	}
	if sameOrder && d.Vectorizable && lf.Has(FlagVectorizable) && rf.Has(FlagVectorizable) {
		flags |= FlagVectorizable
	}
	return &BinaryExpr[T]{op: op, lhs: a, rhs: b, flags: markCostly(flags, cost), cost: cost}
}

func (e *BinaryExpr[T]) Rows() int { return e.lhs.Rows() }
func (e *BinaryExpr[T]) Cols() int { return e.lhs.Cols() }

func (e *BinaryExpr[T]) At(r, c int) T {
	return e.op.Apply(e.lhs.At(r, c), e.rhs.At(r, c))
}

func (e *BinaryExpr[T]) Flags() Flags    { return e.flags }
func (e *BinaryExpr[T]) Cost() int       { return e.cost }
func (e *BinaryExpr[T]) operands() []any { return []any{e.lhs, e.rhs} }

// castExpr re-types the coefficients of its operand.
type castExpr[F, T scalar.Scalar] struct {
	operand Expr[F]
	flags   Flags
	cost    int
}

// Cast returns a lazy view of a with every coefficient converted from F to
// T. Narrowing a complex expression to a real one panics with
// scalar.ErrComplexToRealCast at construction; take the real part
// explicitly instead.
func Cast[F, T scalar.Scalar](a Expr[F]) Expr[T] {
	if scalar.IsComplex[F]() && !scalar.IsComplex[T]() {
		panic(scalar.ErrComplexToRealCast)
	}
	a = nest[F](a)
	return &castExpr[F, T]{
		operand: a,
		flags:   a.Flags() & (FlagRowMajor | FlagLinear),
		cost:    a.Cost() + 1,
	}
}

func (e *castExpr[F, T]) Rows() int { return e.operand.Rows() }
func (e *castExpr[F, T]) Cols() int { return e.operand.Cols() }

func (e *castExpr[F, T]) At(r, c int) T {
	return scalar.Cast[F, T](e.operand.At(r, c))
}

func (e *castExpr[F, T]) Flags() Flags    { return e.flags }
func (e *castExpr[F, T]) Cost() int       { return e.cost }
func (e *castExpr[F, T]) operands() []any { return []any{e.operand} }

// ---------------------------------------------------------------------------
// Named constructors
// ---------------------------------------------------------------------------

// Add returns the lazy sum a + b.
func Add[T scalar.Scalar](a, b Expr[T]) Expr[T] {
	return CwiseBinary[T](AddOp[T]{}, a, b)
}

// Sub returns the lazy difference a - b.
func Sub[T scalar.Scalar](a, b Expr[T]) Expr[T] {
	return CwiseBinary[T](SubOp[T]{}, a, b)
}

// CwiseProduct returns the lazy coefficient-wise product a ∘ b.
func CwiseProduct[T scalar.Scalar](a, b Expr[T]) Expr[T] {
	return CwiseBinary[T](MulOp[T]{}, a, b)
}

// CwiseQuotient returns the lazy coefficient-wise quotient a / b.
func CwiseQuotient[T scalar.Scalar](a, b Expr[T]) Expr[T] {
	return CwiseBinary[T](DivOp[T]{}, a, b)
}

// CwiseMin returns the lazy coefficient-wise minimum of a and b.
func CwiseMin[T scalar.Real](a, b Expr[T]) Expr[T] {
	return CwiseBinary[T](MinOp[T]{}, a, b)
}

// CwiseMax returns the lazy coefficient-wise maximum of a and b.
func CwiseMax[T scalar.Real](a, b Expr[T]) Expr[T] {
	return CwiseBinary[T](MaxOp[T]{}, a, b)
}

// Neg returns the lazy negation -a.
func Neg[T scalar.Scalar](a Expr[T]) Expr[T] {
	return CwiseUnary[T](NegOp[T]{}, a)
}

// CwiseAbs returns the lazy coefficient-wise absolute value of a.
func CwiseAbs[T scalar.Scalar](a Expr[T]) Expr[T] {
	return CwiseUnary[T](AbsOp[T]{}, a)
}

// CwiseAbs2 returns the lazy coefficient-wise squared absolute value of a.
func CwiseAbs2[T scalar.Scalar](a Expr[T]) Expr[T] {
	return CwiseUnary[T](Abs2Op[T]{}, a)
}

// CwiseConj returns the lazy coefficient-wise complex conjugate of a.
func CwiseConj[T scalar.Scalar](a Expr[T]) Expr[T] {
	return CwiseUnary[T](ConjOp[T]{}, a)
}

// CwiseReal returns the lazy coefficient-wise real part of a, with each
// coefficient carried as a T of zero imaginary part.
func CwiseReal[T scalar.Scalar](a Expr[T]) Expr[T] {
	return CwiseUnary[T](RealOp[T]{}, a)
}

// CwiseImag returns the lazy coefficient-wise imaginary part of a, with
// each coefficient carried as a T of zero imaginary part.
func CwiseImag[T scalar.Scalar](a Expr[T]) Expr[T] {
	return CwiseUnary[T](ImagOp[T]{}, a)
}

// CwiseInverse returns the lazy coefficient-wise reciprocal of a.
func CwiseInverse[T scalar.Scalar](a Expr[T]) Expr[T] {
	return CwiseUnary[T](InvOp[T]{}, a)
}

// CwiseSqrt returns the lazy coefficient-wise square root of a.
func CwiseSqrt[T scalar.Scalar](a Expr[T]) Expr[T] {
	return CwiseUnary[T](SqrtOp[T]{}, a)
}

// CwiseExp returns the lazy coefficient-wise exponential of a.
func CwiseExp[T scalar.Scalar](a Expr[T]) Expr[T] {
	return CwiseUnary[T](ExpOp[T]{}, a)
}

// CwiseLog returns the lazy coefficient-wise natural logarithm of a.
func CwiseLog[T scalar.Scalar](a Expr[T]) Expr[T] {
	return CwiseUnary[T](LogOp[T]{}, a)
}

// CwiseSin returns the lazy coefficient-wise sine of a.
func CwiseSin[T scalar.Scalar](a Expr[T]) Expr[T] {
	return CwiseUnary[T](SinOp[T]{}, a)
}

// CwiseCos returns the lazy coefficient-wise cosine of a.
func CwiseCos[T scalar.Scalar](a Expr[T]) Expr[T] {
	return CwiseUnary[T](CosOp[T]{}, a)
}

// CwisePow returns the lazy coefficient-wise power a^p.
func CwisePow[T scalar.Scalar](a Expr[T], p T) Expr[T] {
	return CwiseUnary[T](PowOp[T]{Exponent: p}, a)
}

// ScalarMul returns the lazy scaling s · a.
func ScalarMul[T scalar.Scalar](a Expr[T], s T) Expr[T] {
	return CwiseUnary[T](Bind1st[T](MulOp[T]{}, s), a)
}

// ScalarDiv returns the lazy scaling a / s, dividing each coefficient
// rather than multiplying by a precomputed reciprocal.
func ScalarDiv[T scalar.Scalar](a Expr[T], s T) Expr[T] {
	return CwiseUnary[T](Bind2nd[T](DivOp[T]{}, s), a)
}

// ScalarAdd returns the lazy shift a + s on every coefficient.
func ScalarAdd[T scalar.Scalar](a Expr[T], s T) Expr[T] {
	return CwiseUnary[T](Bind2nd[T](AddOp[T]{}, s), a)
}
