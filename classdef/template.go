// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package classdef implements the object/class template mechanism
// (spec.md C6, §4.6): a Template holds prototype variables and
// constraints; Instantiate clones them under a qualified namespace and
// rewires the clone's leaves onto the instance's own variables, the way
// mreten.GetModel's allocator registry manufactures a fresh, independent
// model per key instead of sharing one across callers.
//
// Supplementing the distilled spec: original_source/objects.py's NIObject
// left this rewiring as an explicit no-op ("Need to find the instance
// variables corresponding to the variables in the class definition...
// pass"). This package completes the mechanism spec.md §4.6 requires.
package classdef

import (
	"github.com/cpmech/gosl/fun"

	"github.com/dfwyatt/eutactic/constraint"
	"github.com/dfwyatt/eutactic/expr"
	"github.com/dfwyatt/eutactic/solve"
)

// Template is the prototype a class defines: a list of variables and a
// list of constraints relating them, plus an optional set of default
// overrides (a class carrying e.g. a fixed Young's modulus for every
// instance unless the caller overrides it). Templates are never added to
// a Problem directly; only an Instance derived from one is. Overrides
// are held the same way msolid's constitutive models hold their
// parameters, fun.Prms -- a named (N) scalar (V) bag -- rather than a
// bespoke map, so a class definition reads the same whether it is
// naming a physical parameter or an equation-solver default.
type Template struct {
	Name        string
	Vars        []*expr.Var
	Constraints []*constraint.Equality
	Defaults    fun.Prms
}

// NewTemplate returns an empty, named template.
func NewTemplate(name string) *Template {
	return &Template{Name: name}
}

// SetDefault records a default value for one of the template's
// prototype variables (by its unqualified name), applied to every
// Instance unless the caller later overrides it on the instance's own
// context.
func (o *Template) SetDefault(varName string, value float64) {
	for i, p := range o.Defaults {
		if p.N == varName {
			o.Defaults[i].V = value
			return
		}
	}
	o.Defaults = append(o.Defaults, &fun.Prm{N: varName, V: value})
}

// AddVar adds a prototype variable to the template.
func (o *Template) AddVar(v *expr.Var) {
	o.Vars = append(o.Vars, v)
}

// AddConstraint adds a prototype constraint to the template.
func (o *Template) AddConstraint(c *constraint.Equality) {
	o.Constraints = append(o.Constraints, c)
}

// Instance is a namespaced clone of a Template: every prototype variable
// is renamed instanceName+"."+originalName and every prototype
// constraint's expression tree is rewired onto the instance's own
// variable copies. No node of an Instance's trees is shared with the
// Template or with any sibling Instance (the template-isolation
// invariant, spec.md §8).
type Instance struct {
	Name        string
	Vars        []*expr.Var
	Constraints []*constraint.Equality
	Defaults    fun.Prms
}

// Instantiate clones tmpl under instanceName.
func Instantiate(tmpl *Template, instanceName string) *Instance {

	// 1. deep-copy every prototype variable, renamed, and index by its
	// original (unqualified) name.
	byOriginalName := make(map[string]*expr.Var, len(tmpl.Vars))
	instVars := make([]*expr.Var, len(tmpl.Vars))
	for i, v := range tmpl.Vars {
		qualified := expr.NewVar(instanceName + "." + v.Nm)
		instVars[i] = qualified
		byOriginalName[v.Nm] = qualified
	}

	// 2. deep-copy every prototype constraint, then walk its leaf setters
	// and rewire any leaf whose original identity matches a prototype
	// variable onto the instance's own copy.
	instConstraints := make([]*constraint.Equality, len(tmpl.Constraints))
	for i, c := range tmpl.Constraints {
		clone := c.Copy(instanceName + "." + c.Name())
		for _, setter := range clone.LeafSetters() {
			leafVar, ok := setter.Leaf.(*expr.Var)
			if !ok {
				continue
			}
			if replacement, found := byOriginalName[leafVar.Nm]; found {
				setter.Slot(replacement)
			}
		}
		instConstraints[i] = clone
	}

	// 3. requalify the template's default overrides onto the instance's
	// own variable names.
	instDefaults := make(fun.Prms, len(tmpl.Defaults))
	for i, p := range tmpl.Defaults {
		instDefaults[i] = &fun.Prm{N: instanceName + "." + p.N, V: p.V}
	}

	return &Instance{Name: instanceName, Vars: instVars, Constraints: instConstraints, Defaults: instDefaults}
}

// AddTo exposes the instance's variables and constraints to p as a unit:
// every variable first, then every constraint, matching
// problem.add_object in spec.md §4.6. Default overrides carried by the
// template are applied before the constraints, so a later explicit
// SetDefault call on p can still shadow them.
func (o *Instance) AddTo(p *solve.Problem) {
	for _, v := range o.Vars {
		p.InternVar(v)
	}
	for _, d := range o.Defaults {
		p.SetDefault(d.N, d.V)
	}
	for _, c := range o.Constraints {
		p.AddConstraint(c)
	}
}
