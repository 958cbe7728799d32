// SPDX-License-Identifier: MIT

// Package numlab is a small laboratory of classical numerical methods,
// each applied to a concrete engineering model.
//
// 🚀 What is in numlab?
//
//	• Root finding: bisection and Newton–Raphson with full iteration traces
//	• Dense matrices: row-major storage with safe accessors and minors
//	• Linear systems: Gaussian and Gauss–Jordan elimination, cofactor or
//	  LU determinant, adjugate, inverse, residual check
//	• Finite differences: forward, backward, central and Richardson
//	  estimates, concurrent sweeps and convergence-order studies
//
// Under the hood:
//
//	rootfind/    Bisection, NewtonRaphson, Trace, options and hooks
//	matrix/      Dense, Minor/Induced, Mul/MatVec/Scale/Transpose, gonum bridge
//	linsolve/    GaussianEliminate, GaussJordan, Determinant, Adjoint, Inverse, Residual
//	finitediff/  Forward, Backward, Central, Richardson, Sweep, Study
//	cmd/numlab   CLI running the resonance, mesh-current and thermistor exercises
//
// Every core routine checks its preconditions and reports failures as
// wrapped sentinel errors (errors.Is); none of them panic on bad input or
// mutate its arguments.
//
// ⚙️ Quick start:
//
//	go run ./cmd/numlab all
//	go run ./cmd/numlab config init numlab.toml
//	go run ./cmd/numlab diff --config numlab.toml --format yaml
package numlab
