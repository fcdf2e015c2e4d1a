// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solve implements the Problem type and its iterative
// constraint-classification loop (spec.md C4, §4.4): the engine that
// dispatches each constraint to symbolic propagation or, when the
// constraints stall, to the numerical root finder (package numroot).
package solve

import (
	"github.com/dfwyatt/eutactic/constraint"
	"github.com/dfwyatt/eutactic/expr"
)

// Problem owns the expressions of interest, the constraints, a default
// context, and -- after a successful Solve -- the sequence the
// constraints were dispatched in, for diagnostics (spec.md §3).
type Problem struct {
	Name string

	varsByName map[string]*expr.Var
	varOrder   []string

	constsByName map[string]*expr.Const

	constraints []*constraint.Equality

	defaultCtx *expr.Context

	solveSeq []string
}

// New returns an empty, named problem.
func New(name string) *Problem {
	return &Problem{
		Name:         name,
		varsByName:   make(map[string]*expr.Var),
		constsByName: make(map[string]*expr.Const),
		defaultCtx:   expr.NewContext(),
	}
}

// Var returns the problem's interned variable named name, creating it on
// first mention the way package probfile's parser interns identifiers.
func (o *Problem) Var(name string) *expr.Var {
	if v, ok := o.varsByName[name]; ok {
		return v
	}
	v := expr.NewVar(name)
	o.varsByName[name] = v
	o.varOrder = append(o.varOrder, name)
	return v
}

// SetDefault records a default value for a variable's initializer
// (`name := expr` in the problem grammar); it does not mark the variable
// as a constant.
func (o *Problem) SetDefault(name string, value float64) {
	o.Var(name) // ensure interned
	o.defaultCtx.Set(name, value)
}

// AddConst adds a named immutable constant to the problem's expressions of
// interest (`name == expr` in the grammar).
func (o *Problem) AddConst(c *expr.Const) {
	o.constsByName[c.Nm] = c
}

// AddConstraint adds an equality constraint, interning every Var it
// touches into the problem's expressions of interest.
func (o *Problem) AddConstraint(c *constraint.Equality) {
	o.constraints = append(o.constraints, c)
	for _, leaf := range c.LHS.LeafSetters() {
		if v, ok := leaf.Leaf.(*expr.Var); ok {
			o.internVar(v)
		}
	}
	for _, leaf := range c.RHS.LeafSetters() {
		if v, ok := leaf.Leaf.(*expr.Var); ok {
			o.internVar(v)
		}
	}
}

func (o *Problem) internVar(v *expr.Var) {
	if _, ok := o.varsByName[v.Nm]; ok {
		return
	}
	o.varsByName[v.Nm] = v
	o.varOrder = append(o.varOrder, v.Nm)
}

// InternVar adds v to the problem's expressions of interest without
// giving it a default value, used by package classdef when exposing an
// Instance's variables to a Problem.
func (o *Problem) InternVar(v *expr.Var) {
	o.internVar(v)
}

// DefaultContext returns a context holding every default value set by the
// problem's initializers. Callers should Copy() it before mutating.
func (o *Problem) DefaultContext() *expr.Context {
	return o.defaultCtx
}

// Variable holds a variable's name and its default value, for
// Problem.Variables.
type Variable struct {
	Name         string
	DefaultValue float64
	HasDefault   bool
}

// Variables returns every variable mentioned in the problem, in first-seen
// order, with its default value if the grammar's initializer set one.
func (o *Problem) Variables() []Variable {
	out := make([]Variable, 0, len(o.varOrder))
	for _, name := range o.varOrder {
		v := Variable{Name: name}
		if val, ok := o.defaultCtx.Get(name); ok {
			v.DefaultValue = val
			v.HasDefault = true
		}
		out = append(out, v)
	}
	return out
}

// ConstraintInfo describes one constraint for a host front-end (spec.md
// §6): its name, its textual formula, and the names of the expressions
// (variables and constants) it touches.
type ConstraintInfo struct {
	Name        string
	Formula     string
	ChildNames  []string
}

// Constraints returns every constraint's diagnostic info, in the order
// they were added.
func (o *Problem) Constraints() []ConstraintInfo {
	out := make([]ConstraintInfo, 0, len(o.constraints))
	for _, c := range o.constraints {
		names := map[string]bool{}
		var order []string
		for _, leaf := range c.LeafSetters() {
			n := leaf.Leaf.Name()
			if !names[n] {
				names[n] = true
				order = append(order, n)
			}
		}
		out = append(out, ConstraintInfo{Name: c.Name(), Formula: c.TextFormula(), ChildNames: order})
	}
	return out
}

// SolveSequence returns the ordered list of constraint names from the last
// successful Solve, or nil if none has succeeded yet.
func (o *Problem) SolveSequence() []string {
	return o.solveSeq
}
