// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package constraint

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/dfwyatt/eutactic/expr"
)

func Test_constraint01(tst *testing.T) {

	chk.PrintTitle("constraint01: Propagate imposes the defined side onto the undefined one")

	ctx := expr.NewContext()
	ctx.Set("a", 5)
	c := New("eq", expr.NewVar("a"), expr.NewVar("b"))
	if err := c.Propagate(ctx); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	bv, ok := ctx.Get("b")
	if !ok {
		tst.Fatalf("b should have been assigned")
	}
	chk.Scalar(tst, "b", 1e-15, bv, 5)
}

func Test_constraint02(tst *testing.T) {

	chk.PrintTitle("constraint02: Propagate is a no-op when neither side is defined")

	ctx := expr.NewContext()
	c := New("eq", expr.NewVar("a"), expr.NewVar("b"))
	if err := c.Propagate(ctx); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if _, ok := ctx.Get("a"); ok {
		tst.Fatalf("a must remain undefined")
	}
	if _, ok := ctx.Get("b"); ok {
		tst.Fatalf("b must remain undefined")
	}
}

func Test_constraint03(tst *testing.T) {

	chk.PrintTitle("constraint03: Propagate detects a disagreement between two defined sides")

	ctx := expr.NewContext()
	ctx.Set("a", 1)
	ctx.Set("b", 2)
	c := New("eq", expr.NewVar("a"), expr.NewVar("b"))
	err := c.Propagate(ctx)
	if err == nil {
		tst.Fatalf("expected an overconstrained error")
	}
	if _, ok := err.(*OverconstrainedError); !ok {
		tst.Fatalf("expected *OverconstrainedError, got %T: %v", err, err)
	}
}

func Test_constraint04(tst *testing.T) {

	chk.PrintTitle("constraint04: Copy is structurally independent of the original")

	a := expr.NewVar("a")
	b := expr.NewVar("b")
	orig := New("eq", a, b)
	clone := orig.Copy("eq-clone")

	for _, setter := range clone.LeafSetters() {
		if v, ok := setter.Leaf.(*expr.Var); ok && v.Nm == "a" {
			setter.Slot(expr.NewVar("renamed"))
		}
	}
	if orig.LHS.(*expr.Var).Nm != "a" {
		tst.Fatalf("mutating the clone must not affect the original's LHS")
	}
	if clone.Name() != "eq-clone" {
		tst.Fatalf("expected clone name %q, got %q", "eq-clone", clone.Name())
	}
}
