// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package expr implements the expression tree at the core of the equation
// solver: a fixed set of node kinds (Fixed, Const, Var, Unary, Binary), each
// supporting two-way evaluation -- forward Value and inverse Assign.
package expr

import (
	"fmt"
	"math"
)

// Eps is the tolerance used for all numeric equality checks in this package
// and in package constraint: |x-y| <= Eps counts as equal.
var Eps = 10 * (math.Nextafter(1, 2) - 1)

// LeafSetter replaces a leaf Expr inside its parent; package classdef uses
// it to rewire a cloned constraint tree onto an instance's own variables,
// and package solve walks the leaves to enumerate a constraint's
// variables (see Expr.LeafSetters).
type LeafSetter struct {
	Leaf  Expr
	Slot  func(replacement Expr)
}

// Expr is the capability set every node in the tree implements. There is no
// class hierarchy: Fixed, Const, Var, Unary and Binary are the only
// concrete kinds, each a plain struct satisfying this interface.
type Expr interface {
	// Name returns the node's derived textual form (e.g. "(a + b)").
	Name() string

	// Value returns the node's value and whether it is defined: a node is
	// defined iff every descendant leaf is defined in ctx.
	Value(ctx *Context) (val float64, defined bool)

	// Assign attempts to impose target on this node, writing through to
	// whichever descendant leaf is unknown. It fails with an
	// *AssignError if the node is over-constrained, a unary inverse is
	// asked to leave its domain, or a binary result or inverse is not
	// finite.
	Assign(target float64, ctx *Context) error

	// IsComposite is true for Unary/Binary, false for Fixed/Const/Var.
	IsComposite() bool

	// Children returns the node's direct children (empty for leaves).
	Children() []Expr

	// UndefinedVars lists, with duplicates, every Var leaf undefined in
	// ctx, in left-to-right traversal order.
	UndefinedVars(ctx *Context) []*Var

	// LeafSetters returns (leaf, slot-setter) pairs for every reachable
	// leaf, used by package classdef to rewire a cloned tree.
	LeafSetters() []LeafSetter
}

// AssignErrorKind distinguishes the two ways Assign can fail.
type AssignErrorKind int

const (
	// Overconstrained means both sides of the assignment are already
	// defined and disagree.
	Overconstrained AssignErrorKind = iota
	// DomainError means a unary inverse (asin, acos) was asked for a
	// value outside its domain, or a binary operator's result or inverse
	// (e.g. for / or ^) came out NaN or infinite.
	DomainError
)

// AssignError is returned by Expr.Assign on failure.
type AssignError struct {
	Kind AssignErrorKind
	Node string
	Msg  string
}

func (e *AssignError) Error() string {
	return e.Node + ": " + e.Msg
}

func overconstrained(node string, have, want float64) error {
	return &AssignError{
		Kind: Overconstrained,
		Node: node,
		Msg:  fmt.Sprintf("is overconstrained: have %v, want %v", have, want),
	}
}

func domainError(node string, target float64) error {
	return &AssignError{
		Kind: DomainError,
		Node: node,
		Msg:  fmt.Sprintf("target value %v is outside the function's domain", target),
	}
}

func eq(a, b float64) bool {
	return math.Abs(a-b) <= Eps
}

// finite reports whether v is neither NaN nor +/-Inf. A composite whose
// forward or inverse evaluation leaves this domain (1/0, log(0), 0^-1, ...)
// must be treated as undefined rather than handed a non-finite float.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
