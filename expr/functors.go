// SPDX-License-Identifier: MIT
package expr

import "github.com/katalvlaran/lvlalg/scalar"

// Descriptor advertises a functor's evaluation profile to the engine: the
// per-coefficient cost (in package scalar's units) feeding nesting
// decisions, and whether a whole-buffer kernel may replace the scalar loop.
type Descriptor struct {
	Cost         int
	Vectorizable bool
}

// UnaryOp is a coefficient-wise function of one operand.
type UnaryOp[T scalar.Scalar] interface {
	Apply(x T) T
	Descriptor() Descriptor
}

// BinaryOp is a coefficient-wise function of two operands.
type BinaryOp[T scalar.Scalar] interface {
	Apply(x, y T) T
	Descriptor() Descriptor
}

// transcendentalCost prices one libm-class call: five multiplies in T.
func transcendentalCost[T scalar.Scalar]() int { return 5 * scalar.MulCost[T]() }

// ---------------------------------------------------------------------------
// Binary catalog
// ---------------------------------------------------------------------------

// AddOp computes x + y.
type AddOp[T scalar.Scalar] struct{}

func (AddOp[T]) Apply(x, y T) T { return x + y }
func (AddOp[T]) Descriptor() Descriptor {
	return Descriptor{Cost: scalar.AddCost[T](), Vectorizable: true}
}

// SubOp computes x - y.
type SubOp[T scalar.Scalar] struct{}

func (SubOp[T]) Apply(x, y T) T { return x - y }
func (SubOp[T]) Descriptor() Descriptor {
	return Descriptor{Cost: scalar.AddCost[T](), Vectorizable: true}
}

// MulOp computes x · y.
type MulOp[T scalar.Scalar] struct{}

func (MulOp[T]) Apply(x, y T) T { return x * y }
func (MulOp[T]) Descriptor() Descriptor {
	return Descriptor{Cost: scalar.MulCost[T](), Vectorizable: true}
}

// DivOp computes x / y.
type DivOp[T scalar.Scalar] struct{}

func (DivOp[T]) Apply(x, y T) T { return x / y }
func (DivOp[T]) Descriptor() Descriptor {
	return Descriptor{Cost: scalar.MulCost[T](), Vectorizable: true}
}

// MinOp computes the smaller of x and y. Defined for real scalars only.
type MinOp[T scalar.Real] struct{}

func (MinOp[T]) Apply(x, y T) T {
	if y < x {
		return y
	}
	return x
}
func (MinOp[T]) Descriptor() Descriptor { return Descriptor{Cost: 1, Vectorizable: true} }

// MaxOp computes the larger of x and y. Defined for real scalars only.
type MaxOp[T scalar.Real] struct{}

func (MaxOp[T]) Apply(x, y T) T {
	if y > x {
		return y
	}
	return x
}
func (MaxOp[T]) Descriptor() Descriptor { return Descriptor{Cost: 1, Vectorizable: true} }

// ---------------------------------------------------------------------------
// Unary catalog
// ---------------------------------------------------------------------------

// NegOp computes -x.
type NegOp[T scalar.Scalar] struct{}

func (NegOp[T]) Apply(x T) T { return -x }
func (NegOp[T]) Descriptor() Descriptor {
	return Descriptor{Cost: scalar.AddCost[T](), Vectorizable: true}
}

// AbsOp computes |x|, returned as a T with zero imaginary part for complex
// types. The complex modulus prices like a square root.
type AbsOp[T scalar.Scalar] struct{}

func (AbsOp[T]) Apply(x T) T { return scalar.FromFloat[T](scalar.Abs(x)) }
func (AbsOp[T]) Descriptor() Descriptor {
	if scalar.IsComplex[T]() {
		return Descriptor{Cost: transcendentalCost[T]()}
	}
	return Descriptor{Cost: scalar.AddCost[T](), Vectorizable: true}
}

// Abs2Op computes |x|², returned as a T with zero imaginary part for complex
// types.
type Abs2Op[T scalar.Scalar] struct{}

func (Abs2Op[T]) Apply(x T) T { return scalar.FromFloat[T](scalar.Abs2(x)) }
func (Abs2Op[T]) Descriptor() Descriptor {
	return Descriptor{Cost: scalar.AddCost[T]() + scalar.MulCost[T](), Vectorizable: true}
}

// ConjOp computes the complex conjugate; for real scalars it is the
// identity.
type ConjOp[T scalar.Scalar] struct{}

func (ConjOp[T]) Apply(x T) T { return scalar.Conj(x) }
func (ConjOp[T]) Descriptor() Descriptor {
	if scalar.IsComplex[T]() {
		return Descriptor{Cost: scalar.AddCost[T](), Vectorizable: true}
	}
	return Descriptor{Cost: 0, Vectorizable: true}
}

// RealOp extracts the real part of x, returned as a T with zero imaginary
// part; for real scalars it is the identity.
type RealOp[T scalar.Scalar] struct{}

func (RealOp[T]) Apply(x T) T { return scalar.RealPart(x) }
func (RealOp[T]) Descriptor() Descriptor {
	return Descriptor{Cost: 0, Vectorizable: !scalar.IsComplex[T]()}
}

// ImagOp extracts the imaginary part of x, returned as a T with zero
// imaginary part; for real scalars it is constantly zero.
type ImagOp[T scalar.Scalar] struct{}

func (ImagOp[T]) Apply(x T) T { return scalar.ImagPart(x) }
func (ImagOp[T]) Descriptor() Descriptor {
	return Descriptor{Cost: 0, Vectorizable: !scalar.IsComplex[T]()}
}

// InvOp computes 1/x.
type InvOp[T scalar.Scalar] struct{}

func (InvOp[T]) Apply(x T) T { return scalar.FromFloat[T](1) / x }
func (InvOp[T]) Descriptor() Descriptor {
	return Descriptor{Cost: scalar.MulCost[T]()}
}

// SqrtOp computes √x.
type SqrtOp[T scalar.Scalar] struct{}

func (SqrtOp[T]) Apply(x T) T { return scalar.Sqrt(x) }
func (SqrtOp[T]) Descriptor() Descriptor { return Descriptor{Cost: transcendentalCost[T]()} }

// ExpOp computes eˣ.
type ExpOp[T scalar.Scalar] struct{}

func (ExpOp[T]) Apply(x T) T { return scalar.Exp(x) }
func (ExpOp[T]) Descriptor() Descriptor { return Descriptor{Cost: transcendentalCost[T]()} }

// LogOp computes the natural logarithm of x.
type LogOp[T scalar.Scalar] struct{}

func (LogOp[T]) Apply(x T) T { return scalar.Log(x) }
func (LogOp[T]) Descriptor() Descriptor { return Descriptor{Cost: transcendentalCost[T]()} }

// SinOp computes sin x.
type SinOp[T scalar.Scalar] struct{}

func (SinOp[T]) Apply(x T) T { return scalar.Sin(x) }
func (SinOp[T]) Descriptor() Descriptor { return Descriptor{Cost: transcendentalCost[T]()} }

// CosOp computes cos x.
type CosOp[T scalar.Scalar] struct{}

func (CosOp[T]) Apply(x T) T { return scalar.Cos(x) }
func (CosOp[T]) Descriptor() Descriptor { return Descriptor{Cost: transcendentalCost[T]()} }

// PowOp computes x^Exponent with the exponent captured at construction.
type PowOp[T scalar.Scalar] struct {
	Exponent T
}

func (p PowOp[T]) Apply(x T) T { return scalar.Pow(x, p.Exponent) }
func (PowOp[T]) Descriptor() Descriptor { return Descriptor{Cost: transcendentalCost[T]()} }

// ---------------------------------------------------------------------------
// Composition
// ---------------------------------------------------------------------------

// bound1st fixes the first operand of a binary functor: Apply(y) = op(a, y).
type bound1st[T scalar.Scalar] struct {
	op BinaryOp[T]
	a  T
}

func (b bound1st[T]) Apply(y T) T { return b.op.Apply(b.a, y) }
func (b bound1st[T]) Descriptor() Descriptor { return b.op.Descriptor() }

// bound2nd fixes the second operand of a binary functor: Apply(x) = op(x, b).
type bound2nd[T scalar.Scalar] struct {
	op BinaryOp[T]
	b  T
}

func (b bound2nd[T]) Apply(x T) T { return b.op.Apply(x, b.b) }
func (b bound2nd[T]) Descriptor() Descriptor { return b.op.Descriptor() }

// negated post-composes negation: Apply(x) = -op(x).
type negated[T scalar.Scalar] struct {
	op UnaryOp[T]
}

func (n negated[T]) Apply(x T) T { return -n.op.Apply(x) }
func (n negated[T]) Descriptor() Descriptor {
	d := n.op.Descriptor()
	d.Cost++
	return d
}

// Bind1st turns a binary functor into a unary one with its first operand
// fixed to a, so Apply(y) = op(a, y).
func Bind1st[T scalar.Scalar](op BinaryOp[T], a T) UnaryOp[T] {
	return bound1st[T]{op: op, a: a}
}

// Bind2nd turns a binary functor into a unary one with its second operand
// fixed to b, so Apply(x) = op(x, b).
func Bind2nd[T scalar.Scalar](op BinaryOp[T], b T) UnaryOp[T] {
	return bound2nd[T]{op: op, b: b}
}

// NegateOf post-composes negation onto op, so Apply(x) = -op(x). One
// negation is added to the cost; vectorizability is inherited.
func NegateOf[T scalar.Scalar](op UnaryOp[T]) UnaryOp[T] {
	return negated[T]{op: op}
}
