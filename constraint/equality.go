// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package constraint implements the single constraint kind this solver
// supports: equality between two expression trees. The Python original
// also defined SumConstraint/ProductConstraint/PowerConstraint, but its own
// parser never constructed them and its author flagged them "left over
// from a previous approach... not guaranteed to work" -- they are
// subsumed here by an Equality wrapping a Binary expression, which is the
// only shape the grammar (package probfile) ever produces.
package constraint

import (
	"fmt"

	"github.com/dfwyatt/eutactic/expr"
)

// Equality is lhs = rhs, named for diagnostics. It holds no values of its
// own; all state lives in the expr.Context supplied to Propagate.
type Equality struct {
	Nm  string
	LHS expr.Expr
	RHS expr.Expr
}

// New returns a named equality constraint; if name is empty, line defaults
// to "Line <n>" per the problem grammar (package probfile), not here.
func New(name string, lhs, rhs expr.Expr) *Equality {
	return &Equality{Nm: name, LHS: lhs, RHS: rhs}
}

// Name returns the constraint's diagnostic name.
func (o *Equality) Name() string { return o.Nm }

// TextFormula returns the constraint's textual form, e.g. "a = (m * a)".
func (o *Equality) TextFormula() string {
	return o.LHS.Name() + " = " + o.RHS.Name()
}

// Exprs returns the constraint's two child expressions.
func (o *Equality) Exprs() []expr.Expr { return []expr.Expr{o.LHS, o.RHS} }

// UndefinedVars returns, with duplicates, every variable undefined in ctx
// across both sides, left-to-right.
func (o *Equality) UndefinedVars(ctx *expr.Context) []*expr.Var {
	vars := o.LHS.UndefinedVars(ctx)
	vars = append(vars, o.RHS.UndefinedVars(ctx)...)
	return vars
}

// OverconstrainedError is returned by Propagate when both sides are
// defined and disagree.
type OverconstrainedError struct {
	Name    string
	Formula string
	LHS, RHS float64
}

func (e *OverconstrainedError) Error() string {
	return fmt.Sprintf("%q (%s) is overconstrained (lhs=%v, rhs=%v)", e.Name, e.Formula, e.LHS, e.RHS)
}

// Propagate implements spec.md's three-way dispatch: if one side is
// defined it is imposed on the other; if both are defined they must agree
// within expr.Eps; if neither is defined, Propagate is a no-op (ok,
// nothing solved yet -- the solver loop will retry later or escalate).
func (o *Equality) Propagate(ctx *expr.Context) error {
	lv, lok := o.LHS.Value(ctx)
	rv, rok := o.RHS.Value(ctx)
	switch {
	case !lok && !rok:
		return nil
	case lok && !rok:
		if err := o.RHS.Assign(lv, ctx); err != nil {
			return wrap(o, err)
		}
	case !lok && rok:
		if err := o.LHS.Assign(rv, ctx); err != nil {
			return wrap(o, err)
		}
	default:
		if diff := lv - rv; diff > expr.Eps || diff < -expr.Eps {
			return &OverconstrainedError{Name: o.Nm, Formula: o.TextFormula(), LHS: lv, RHS: rv}
		}
	}
	return nil
}

func wrap(o *Equality, err error) error {
	return fmt.Errorf("constraint %q (%s): %w", o.Nm, o.TextFormula(), err)
}

// LeafSetters returns every (leaf, slot-setter) pair reachable from either
// side of the equality, used by package classdef to rewire a cloned
// constraint's Var leaves onto an instance's own variables.
func (o *Equality) LeafSetters() []expr.LeafSetter {
	var setters []expr.LeafSetter
	if o.LHS.IsComposite() {
		setters = append(setters, o.LHS.LeafSetters()...)
	} else {
		leaf := o.LHS
		setters = append(setters, expr.LeafSetter{Leaf: leaf, Slot: func(r expr.Expr) { o.LHS = r }})
	}
	if o.RHS.IsComposite() {
		setters = append(setters, o.RHS.LeafSetters()...)
	} else {
		leaf := o.RHS
		setters = append(setters, expr.LeafSetter{Leaf: leaf, Slot: func(r expr.Expr) { o.RHS = r }})
	}
	return setters
}

// Copy returns a deep, independent copy of the constraint, renamed to name
// if name is non-empty (used by package classdef to qualify an instance's
// constraint names).
func (o *Equality) Copy(name string) *Equality {
	n := name
	if n == "" {
		n = o.Nm
	}
	return &Equality{Nm: n, LHS: expr.Clone(o.LHS), RHS: expr.Clone(o.RHS)}
}
