// SPDX-License-Identifier: MIT

// Package eigen: functional configuration for the spectral solver.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
package eigen

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultMaxIterations is the per-dimension sweep multiplier: a solve on
	// an n×n matrix is granted DefaultMaxIterations·n QR sweeps before it
	// gives up with ErrNoConvergence. Thirty sweeps per eigenvalue is far
	// beyond what implicit-shift QR needs on any symmetric input (two to
	// three is typical); hitting the budget signals NaN/Inf data.
	DefaultMaxIterations = 30

	// DefaultComputeVectors controls whether the orthogonal factor Q is
	// accumulated alongside the eigenvalues. Accumulation dominates the
	// constant factor of the O(n³) cost, so eigenvalue-only callers should
	// switch it off via WithoutVectors.
	DefaultComputeVectors = true
)

// Internal panic messages (no magic strings).
const panicMaxIterationsInvalid = "eigen: WithMaxIterations: n must be positive"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	computeVectors bool // DefaultComputeVectors
	maxIterations  int  // DefaultMaxIterations (sweeps per dimension)
}

// WithoutVectors restricts the solve to eigenvalues only.
//
// Behavior highlights:
//   - Skips both the accumulation of Q during tridiagonalization and the
//     Givens updates during the QR sweeps (roughly a 3× speedup).
//   - Eigenvectors() panics with ErrVectorsNotComputed afterwards.
//
// Returns:
//   - Option: functional setter.
func WithoutVectors() Option {
	return func(o *Options) { o.computeVectors = false }
}

// WithMaxIterations overrides the sweep budget multiplier: the solver runs
// at most n·iters implicit-shift sweeps on an n×n matrix.
//
// Inputs:
//   - iters: positive sweeps-per-dimension count.
//
// Errors:
//   - Panics with a stable message when iters < 1.
//
// Notes:
//   - Lowering the budget below ~3 makes ErrNoConvergence reachable on
//     well-conditioned inputs; useful only for testing the failure path.
func WithMaxIterations(iters int) Option {
	if iters < 1 {
		panic(panicMaxIterationsInvalid)
	}

	// Assign validated budget multiplier
	return func(o *Options) { o.maxIterations = iters }
}

// gatherOptions resolves user options over the documented defaults,
// last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		computeVectors: DefaultComputeVectors,
		maxIterations:  DefaultMaxIterations,
	}
	for _, set := range user {
		set(&o) // apply in order
	}

	return o
}
