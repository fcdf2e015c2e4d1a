// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "math"

// UnaryOp identifies a unary operator kind.
type UnaryOp int

const (
	Sin UnaryOp = iota
	Cos
	Tan
)

func (op UnaryOp) String() string {
	switch op {
	case Sin:
		return "sin"
	case Cos:
		return "cos"
	case Tan:
		return "tan"
	}
	return "?"
}

// unaryRule holds a unary operator's forward function and its inverse,
// keyed by UnaryOp the way mreten.GetModel keys liquid-retention models by
// name; here the "allocator" is the pair of closures instead of a factory.
type unaryRule struct {
	forward func(float64) float64
	inverse func(target float64) (float64, error) // returns arg s.t. forward(arg)==target
}

var unaryRules = map[UnaryOp]unaryRule{
	Sin: {
		forward: math.Sin,
		inverse: func(t float64) (float64, error) {
			if t < -1 || t > 1 {
				return 0, domainError("sin", t)
			}
			return math.Asin(t), nil
		},
	},
	Cos: {
		forward: math.Cos,
		inverse: func(t float64) (float64, error) {
			if t < -1 || t > 1 {
				return 0, domainError("cos", t)
			}
			return math.Acos(t), nil
		},
	},
	Tan: {
		forward: math.Tan,
		inverse: func(t float64) (float64, error) {
			return math.Atan(t), nil
		},
	},
}

// Unary is a one-argument composite expression: sin, cos or tan of Arg.
type Unary struct {
	Op  UnaryOp
	Arg Expr
}

// NewUnary returns a new unary expression op(arg).
func NewUnary(op UnaryOp, arg Expr) *Unary {
	return &Unary{Op: op, Arg: arg}
}

func (o *Unary) Name() string {
	return o.Op.String() + "(" + o.Arg.Name() + ")"
}

func (o *Unary) Value(ctx *Context) (float64, bool) {
	v, ok := o.Arg.Value(ctx)
	if !ok {
		return 0, false
	}
	r := unaryRules[o.Op].forward(v)
	if !finite(r) {
		return 0, false
	}
	return r, true
}

func (o *Unary) Assign(target float64, ctx *Context) error {
	if v, ok := o.Arg.Value(ctx); ok {
		got := unaryRules[o.Op].forward(v)
		if !finite(got) {
			return domainError(o.Name(), target)
		}
		if !eq(got, target) {
			return overconstrained(o.Name(), got, target)
		}
		return nil
	}
	argTarget, err := unaryRules[o.Op].inverse(target)
	if err != nil {
		return err
	}
	return o.Arg.Assign(argTarget, ctx)
}

func (o *Unary) IsComposite() bool { return true }
func (o *Unary) Children() []Expr  { return []Expr{o.Arg} }

func (o *Unary) UndefinedVars(ctx *Context) []*Var {
	return o.Arg.UndefinedVars(ctx)
}

func (o *Unary) LeafSetters() []LeafSetter {
	setters := o.Arg.LeafSetters()
	if !o.Arg.IsComposite() {
		leaf := o.Arg
		setters = []LeafSetter{{Leaf: leaf, Slot: func(r Expr) { o.Arg = r }}}
	}
	return setters
}
