// Package expr provides lazy, composable matrix and vector expressions over
// the scalar types defined in package scalar.
//
// What:
//
//	■ Expr[T]    - read-only expression contract: shape, coefficient access,
//	               structural Flags, per-coefficient Cost.
//	■ Mutable[T] - writable extension used by assignment destinations.
//	■ Dense[T]   - concrete storage leaf over a flat buffer, row- or
//	               column-major.
//	■ Cwise*     - coefficient-wise unary/binary nodes built from a functor
//	               catalog with cost and vectorizability descriptors.
//	■ Views      - Transpose, Block, Row, Col, Segment, Head, Tail; writable
//	               when their base is writable.
//	■ Assign     - the evaluation engine: shape resolution, aliasing
//	               detection, traversal-order selection and kernel dispatch.
//	■ Dot layer  - Dot, Sum, SquaredNorm, Norm, Normalized, Trace and the
//	               fuzzy matrix predicates.
//
// Why:
//
// Composing arithmetic on matrices naively allocates one temporary per
// operator. Here every operator returns a lightweight node that only records
// its operands and functor; coefficients are computed on demand, and an
// entire tree collapses into the destination in a single fused traversal at
// assignment time. Costly subtrees are materialized exactly once when nested,
// so work is never duplicated by re-reads.
//
// Evaluation strategy:
//
//	■ The destination's storage order picks the loop nest, so packed buffers
//	  are always written sequentially.
//	■ Trees whose flags admit it are routed to whole-buffer kernels from
//	  gonum.org/v1/gonum/floats instead of the scalar loop.
//	■ When the destination also appears as a leaf of the source tree, the
//	  source is evaluated into a temporary first; plain element-wise overlap
//	  is detected as safe and keeps the fast path.
//
// Complexity:
//
//	■ Node construction: O(1).
//	■ At on a tree: O(depth) per coefficient.
//	■ Assign / Materialize: O(rows·cols) coefficient evaluations.
//
// Errors:
//
// Structural misuse (shape mismatches, out-of-range indices, writing through
// a read-only view) panics with one of the package sentinels, mirroring an
// assertion failure. No operation in this package returns an error value.
//
// See also: package eigen for spectral decompositions, package skyline for
// profile-stored sparse factorization, package dogleg for trust-region steps.
package expr
