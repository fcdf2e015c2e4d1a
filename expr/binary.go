// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "math"

// BinaryOp identifies a binary operator kind.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Pow
)

func (op BinaryOp) Symbol() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "^"
	}
	return "?"
}

// binaryRule holds a binary operator's forward function and its two partial
// inverses (solve for A given B and the target, and vice versa), the same
// allocator-table idiom as unaryRules.
type binaryRule struct {
	forward func(a, b float64) float64
	// invA solves A given (B, target): A op B = target
	invA func(b, target float64) (float64, error)
	// invB solves B given (A, target): A op B = target
	invB func(a, target float64) (float64, error)
}

var binaryRules = map[BinaryOp]binaryRule{
	Add: {
		forward: func(a, b float64) float64 { return a + b },
		invA:    func(b, t float64) (float64, error) { return t - b, nil },
		invB:    func(a, t float64) (float64, error) { return t - a, nil },
	},
	Sub: {
		forward: func(a, b float64) float64 { return a - b },
		invA:    func(b, t float64) (float64, error) { return t + b, nil },
		invB:    func(a, t float64) (float64, error) { return a - t, nil },
	},
	Mul: {
		forward: func(a, b float64) float64 { return a * b },
		invA:    func(b, t float64) (float64, error) { return t / b, nil },
		invB:    func(a, t float64) (float64, error) { return t / a, nil },
	},
	Div: {
		forward: func(a, b float64) float64 { return a / b },
		// a/b = t, b known => a = t*b
		invA: func(b, t float64) (float64, error) {
			a := t * b
			if !finite(a) {
				return 0, domainError("/", t)
			}
			return a, nil
		},
		// a/b = t, a known => b = a/t
		invB: func(a, t float64) (float64, error) {
			b := a / t
			if !finite(b) {
				return 0, domainError("/", t)
			}
			return b, nil
		},
	},
	Pow: {
		forward: math.Pow,
		// a^b = t, b (exponent) known => a = t^(1/b) -- principal real root only
		invA: func(exp, t float64) (float64, error) {
			a := math.Pow(t, 1/exp)
			if !finite(a) {
				return 0, domainError("^", t)
			}
			return a, nil
		},
		// a^b = t, a (base) known => b = ln(t)/ln(a)
		invB: func(base, t float64) (float64, error) {
			b := math.Log(t) / math.Log(base)
			if !finite(b) {
				return 0, domainError("^", t)
			}
			return b, nil
		},
	},
}

// Binary is a two-argument composite expression: A op B.
type Binary struct {
	Op   BinaryOp
	A, B Expr
}

// NewBinary returns a new binary expression A op B.
func NewBinary(op BinaryOp, a, b Expr) *Binary {
	return &Binary{Op: op, A: a, B: b}
}

func (o *Binary) Name() string {
	return "(" + o.A.Name() + " " + o.Op.Symbol() + " " + o.B.Name() + ")"
}

func (o *Binary) Value(ctx *Context) (float64, bool) {
	va, oka := o.A.Value(ctx)
	vb, okb := o.B.Value(ctx)
	if !oka || !okb {
		return 0, false
	}
	v := binaryRules[o.Op].forward(va, vb)
	if !finite(v) {
		return 0, false
	}
	return v, true
}

func (o *Binary) Assign(target float64, ctx *Context) error {
	va, oka := o.A.Value(ctx)
	vb, okb := o.B.Value(ctx)
	switch {
	case oka && okb:
		got := binaryRules[o.Op].forward(va, vb)
		if !finite(got) {
			return domainError(o.Name(), target)
		}
		if !eq(got, target) {
			return overconstrained(o.Name(), got, target)
		}
		return nil
	case oka && !okb:
		want, err := binaryRules[o.Op].invB(va, target)
		if err != nil {
			return err
		}
		return o.B.Assign(want, ctx)
	case !oka && okb:
		want, err := binaryRules[o.Op].invA(vb, target)
		if err != nil {
			return err
		}
		return o.A.Assign(want, ctx)
	default:
		// neither leg defined: assignment cannot be propagated here: the
		// outer solver must try a different path or escalate to numerical.
		return nil
	}
}

func (o *Binary) IsComposite() bool { return true }
func (o *Binary) Children() []Expr  { return []Expr{o.A, o.B} }

func (o *Binary) UndefinedVars(ctx *Context) []*Var {
	vars := o.A.UndefinedVars(ctx)
	vars = append(vars, o.B.UndefinedVars(ctx)...)
	return vars
}

func (o *Binary) LeafSetters() []LeafSetter {
	var setters []LeafSetter
	if o.A.IsComposite() {
		setters = append(setters, o.A.LeafSetters()...)
	} else {
		leaf := o.A
		setters = append(setters, LeafSetter{Leaf: leaf, Slot: func(r Expr) { o.A = r }})
	}
	if o.B.IsComposite() {
		setters = append(setters, o.B.LeafSetters()...)
	} else {
		leaf := o.B
		setters = append(setters, LeafSetter{Leaf: leaf, Slot: func(r Expr) { o.B = r }})
	}
	return setters
}
