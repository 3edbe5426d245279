// Package scalar defines the numeric trait layer shared by every lvlalg package:
// the Scalar type set, machine precision constants, approximate-comparison
// predicates, and the elementary real/complex functions dispatched per type.
//
// What is scalar?
//
//	A small, allocation-free toolbox answering the questions the expression
//	and decomposition layers keep asking about their element type:
//	  - How precise is T? (Epsilon, Precision)
//	  - Are these two values "the same" numerically? (IsApprox, IsMuchSmallerThan)
//	  - What do conj/|x|/√x/eˣ mean for T? (Conj, Abs, Sqrt, Exp, ...)
//	  - How expensive is an add or a multiply in T? (AddCost, MulCost)
//
// Why a separate package?
//
//   - expr, eigen, skyline and dogleg all consume the same trait surface;
//     keeping it leaf-level avoids import cycles and keeps each user honest
//     about what it needs.
//   - The comparison predicates are the single source of truth for every
//     tolerance decision in the library, including the eigensolver's
//     deflation test.
//
// Determinism: all functions are pure; no package state, no randomness.
//
// Complexity: every function is O(1).
//
// Errors: the predicates panic with ErrNonPositivePrecision when given a
// tolerance ≤ 0; Cast panics with ErrComplexToRealCast on a lossy
// complex→real conversion. Nothing here returns an error value.
//
// See also: package expr for the expression layer built on these traits.
package scalar
