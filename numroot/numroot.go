// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package numroot implements the multivariate root finder (spec.md C5)
// that the solver loop (package solve) escalates to whenever a genuinely
// coupled batch of constraints remains. It wraps gosl/num.NlSolver the
// same way ana.PressCylin.Calc_c wraps it in the teacher pack: build a
// residual callback, hand it to NlSolver with a numerical Jacobian (we
// have no closed form for d(residual)/d(var) -- the residual runs through
// an arbitrary expression tree), and read the converged point back.
package numroot

import (
	"math"

	"github.com/cpmech/gosl/num"

	"github.com/dfwyatt/eutactic/expr"
)

// Residual is a single equation's lhs-minus-rhs, evaluated with a set of
// trial variable bindings extended onto a base context.
type Residual interface {
	// Eval returns lhs(ctx)-rhs(ctx); ok is false if either side is
	// still undefined once vars are bound (a malformed caller error).
	Eval(ctx *expr.Context) (float64, bool)
}

// MaxIter is an iteration count for the root finder. Solve does not read
// it: the iteration cap in effect is num.NlSolver's own, set by Init.
var MaxIter = 200

// ErrNoConverge is returned when the underlying solver fails to converge
// or returns a non-finite point.
type ErrNoConverge struct {
	Vars []string
}

func (e *ErrNoConverge) Error() string {
	return "numerical root finder did not converge for variables " + joinNames(e.Vars)
}

func joinNames(names []string) string {
	s := ""
	for i, n := range names {
		if i > 0 {
			s += ", "
		}
		s += n
	}
	return s
}

// extraResidualTol bounds how close a residual beyond the square subsystem
// (see below) must land to the converged point for an over-determined
// system to count as consistent, rather than reporting non-convergence.
const extraResidualTol = 1e-6

// Solve finds x such that residuals[i](ctx extended with vars=x) == 0 for
// every i, seeding the initial guess from refCtx (or 0.0 when refCtx is
// nil or holds no value for a variable), and writes the solution back into
// ctx on success.
//
// num.NlSolver, like its one call site in the teacher pack
// (ana.PressCylin.Calc_c), only solves square systems: neq must equal
// len(x). The caller (package solve) may hand over more residuals than
// variables when a batch of constraints is over-determined -- spec.md
// §4.4/§4.5 keep that case in scope. Rather than fail outright, the
// first len(vars) residuals are solved as the square subsystem and the
// remainder are checked for consistency at the converged point: an
// over-determined system is only solvable when the extra equations don't
// contradict the rest.
func Solve(residuals []Residual, ctx *expr.Context, vars []*expr.Var, refCtx *expr.Context) error {

	n := len(vars)
	m := len(residuals)
	if n == 0 || m < n {
		return &ErrNoConverge{Vars: names(vars)}
	}

	x0 := make([]float64, n)
	for i, v := range vars {
		if refCtx != nil {
			if val, ok := refCtx.Get(v.Nm); ok && !math.IsNaN(val) && !math.IsInf(val, 0) {
				x0[i] = val
				continue
			}
		}
		x0[i] = 0.0
	}

	primary := residuals[:n]
	extra := residuals[n:]

	ffcn := func(fx, x []float64) error {
		trial := ctx.Copy()
		for i, v := range vars {
			trial.Set(v.Nm, x[i])
		}
		for i, r := range primary {
			val, ok := r.Eval(trial)
			if !ok {
				return &ErrNoConverge{Vars: names(vars)}
			}
			fx[i] = val
		}
		return nil
	}

	var nls num.NlSolver
	defer nls.Clean()
	nls.Init(n, ffcn, nil, nil, true, true, nil)
	err := nls.Solve(x0, true)
	if err != nil {
		return &ErrNoConverge{Vars: names(vars)}
	}
	for _, xi := range x0 {
		if math.IsNaN(xi) || math.IsInf(xi, 0) {
			return &ErrNoConverge{Vars: names(vars)}
		}
	}

	if len(extra) > 0 {
		trial := ctx.Copy()
		for i, v := range vars {
			trial.Set(v.Nm, x0[i])
		}
		for _, r := range extra {
			val, ok := r.Eval(trial)
			if !ok || math.IsNaN(val) || math.Abs(val) > extraResidualTol {
				return &ErrNoConverge{Vars: names(vars)}
			}
		}
	}

	for i, v := range vars {
		ctx.Set(v.Nm, x0[i])
	}
	return nil
}

func names(vars []*expr.Var) []string {
	out := make([]string, len(vars))
	for i, v := range vars {
		out[i] = v.Nm
	}
	return out
}
