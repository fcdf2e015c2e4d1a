// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "fmt"

// Fixed is a literal numeric value, unnamed except by its own textual form.
type Fixed struct {
	V float64
}

// NewFixed returns a literal expression holding v.
func NewFixed(v float64) *Fixed { return &Fixed{V: v} }

func (o *Fixed) Name() string { return fmt.Sprintf("%v", o.V) }

func (o *Fixed) Value(ctx *Context) (float64, bool) { return o.V, true }

func (o *Fixed) Assign(target float64, ctx *Context) error {
	if !eq(target, o.V) {
		return overconstrained(o.Name(), o.V, target)
	}
	return nil
}

func (o *Fixed) IsComposite() bool                        { return false }
func (o *Fixed) Children() []Expr                         { return nil }
func (o *Fixed) UndefinedVars(ctx *Context) []*Var        { return nil }
func (o *Fixed) LeafSetters() []LeafSetter                { return []LeafSetter{{Leaf: o, Slot: func(Expr) {}}} }

// Const is a named immutable value, e.g. pi or e.
type Const struct {
	Nm string
	V  float64
}

// NewConst returns a named constant expression.
func NewConst(name string, v float64) *Const { return &Const{Nm: name, V: v} }

func (o *Const) Name() string { return o.Nm }

func (o *Const) Value(ctx *Context) (float64, bool) { return o.V, true }

func (o *Const) Assign(target float64, ctx *Context) error {
	if !eq(target, o.V) {
		return overconstrained(o.Nm, o.V, target)
	}
	return nil
}

func (o *Const) IsComposite() bool                 { return false }
func (o *Const) Children() []Expr                  { return nil }
func (o *Const) UndefinedVars(ctx *Context) []*Var { return nil }
func (o *Const) LeafSetters() []LeafSetter         { return []LeafSetter{{Leaf: o, Slot: func(Expr) {}}} }

// Var is an unknown scalar bound through a Context. Two Var nodes sharing a
// name denote the same variable: Context bindings, the solver's unknown
// sets and the template instantiator (package classdef) all key on Nm.
type Var struct {
	Nm string
}

// NewVar returns a variable expression named name.
func NewVar(name string) *Var { return &Var{Nm: name} }

func (o *Var) Name() string { return o.Nm }

func (o *Var) Value(ctx *Context) (float64, bool) { return ctx.Get(o.Nm) }

func (o *Var) Assign(target float64, ctx *Context) error {
	ctx.Set(o.Nm, target)
	return nil
}

func (o *Var) IsComposite() bool { return false }
func (o *Var) Children() []Expr  { return nil }

func (o *Var) UndefinedVars(ctx *Context) []*Var {
	if _, defined := ctx.Get(o.Nm); defined {
		return nil
	}
	return []*Var{o}
}

func (o *Var) LeafSetters() []LeafSetter {
	return []LeafSetter{{Leaf: o, Slot: func(Expr) {}}}
}
