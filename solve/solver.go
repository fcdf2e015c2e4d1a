// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"errors"

	"github.com/dfwyatt/eutactic/constraint"
	"github.com/dfwyatt/eutactic/expr"
	"github.com/dfwyatt/eutactic/numroot"
	"github.com/dfwyatt/eutactic/report"
)

// residual adapts an equality constraint to numroot.Residual: lhs-rhs.
type residual struct{ c *constraint.Equality }

func (r residual) Eval(ctx *expr.Context) (float64, bool) {
	lv, lok := r.c.LHS.Value(ctx)
	rv, rok := r.c.RHS.Value(ctx)
	if !lok || !rok {
		return 0, false
	}
	return lv - rv, true
}

// Solve runs the classification loop of spec.md §4.4 against ctx
// (caller-owned; already carries whatever bindings the front-end wrote),
// optionally seeding the numerical solver's initial guess from refCtx.
// sink receives one diagnostic line per step (see SPEC_FULL.md §6 for the
// line formats); pass report.Discard for silent operation.
func (o *Problem) Solve(ctx *expr.Context, refCtx *expr.Context, sink report.Sink) error {

	if sink == nil {
		sink = report.Discard
	}

	pending := append([]*constraint.Equality(nil), o.constraints...)
	var solveSeq []string

	for len(pending) > 0 {
		progress := false

		next := pending[:0:0]
		for _, c := range pending {
			undef := c.UndefinedVars(ctx)
			distinct := uniqueVars(undef)

			switch {
			case len(undef) == 0, len(undef) == 1:
				if err := c.Propagate(ctx); err != nil {
					var oc *constraint.OverconstrainedError
					if errors.As(err, &oc) {
						sink.Line("Error: %q is overconstrained (lhs=%v, rhs=%v)", c.Name(), oc.LHS, oc.RHS)
					} else {
						sink.Line("Error: %v", err)
					}
					return classify(err)
				}
				if len(undef) == 1 {
					v, _ := undef[0].Value(ctx)
					sink.Line("Solved %q analytically giving %s=%v", c.Name(), undef[0].Name(), v)
				} else {
					sink.Line("Checked %q and found it consistent", c.Name())
				}
				solveSeq = append(solveSeq, c.Name())
				progress = true

			case len(distinct) == 1:
				sink.Line("Solving %q numerically due to a repeated unknown (%s)...", c.Name(), distinct[0].Name())
				if err := numroot.Solve([]numroot.Residual{residual{c}}, ctx, distinct, refCtx); err != nil {
					return fail(NumericalFailure, err)
				}
				v, _ := distinct[0].Value(ctx)
				sink.Line("Solved %q numerically giving %s=%v", c.Name(), distinct[0].Name(), v)
				solveSeq = append(solveSeq, c.Name())
				progress = true

			default:
				next = append(next, c)
			}
		}
		pending = next

		if !progress {
			remaining := uniqueVarsAcross(pending, ctx)
			if len(pending) >= len(remaining) {
				sink.Line("Solving %d remaining constraint(s) numerically...", len(pending))
				residuals := make([]numroot.Residual, len(pending))
				for i, c := range pending {
					residuals[i] = residual{c}
				}
				if err := numroot.Solve(residuals, ctx, remaining, refCtx); err != nil {
					return fail(NumericalFailure, err)
				}
				for _, c := range pending {
					solveSeq = append(solveSeq, c.Name())
				}
				sink.Line("Solved remaining constraints numerically")
				pending = nil
			} else {
				return failf(Underconstrained,
					"%d remaining constraint(s) but %d remaining unknown(s)",
					len(pending), len(remaining))
			}
		}
	}

	o.solveSeq = solveSeq
	return nil
}

func classify(err error) error {
	var ae *expr.AssignError
	if errors.As(err, &ae) && ae.Kind == expr.DomainError {
		return fail(DomainErr, err)
	}
	return fail(Overconstrained, err)
}

func uniqueVars(vars []*expr.Var) []*expr.Var {
	seen := make(map[string]bool)
	var out []*expr.Var
	for _, v := range vars {
		if !seen[v.Nm] {
			seen[v.Nm] = true
			out = append(out, v)
		}
	}
	return out
}

func uniqueVarsAcross(cs []*constraint.Equality, ctx *expr.Context) []*expr.Var {
	var all []*expr.Var
	for _, c := range cs {
		all = append(all, c.UndefinedVars(ctx)...)
	}
	return uniqueVars(all)
}
