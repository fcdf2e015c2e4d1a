// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// Clone returns a deep, structurally-independent copy of e: no node of the
// clone is shared with e. Used by package classdef to instantiate a
// template's constraints before rewiring their Var leaves onto an
// instance's own variables.
func Clone(e Expr) Expr {
	switch n := e.(type) {
	case *Fixed:
		return &Fixed{V: n.V}
	case *Const:
		return &Const{Nm: n.Nm, V: n.V}
	case *Var:
		return &Var{Nm: n.Nm}
	case *Unary:
		return &Unary{Op: n.Op, Arg: Clone(n.Arg)}
	case *Binary:
		return &Binary{Op: n.Op, A: Clone(n.A), B: Clone(n.B)}
	default:
		panic("expr: Clone: unknown node kind")
	}
}
