// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_expr01(tst *testing.T) {

	chk.PrintTitle("expr01: forward value of a binary expression")

	ctx := NewContext()
	ctx.Set("a", 3)
	ctx.Set("b", 4)
	e := NewBinary(Add, NewVar("a"), NewVar("b"))
	v, ok := e.Value(ctx)
	if !ok {
		tst.Fatalf("expected defined value")
	}
	chk.Scalar(tst, "a+b", 1e-15, v, 7)
}

func Test_expr02(tst *testing.T) {

	chk.PrintTitle("expr02: zero is a valid, defined value (not undefined)")

	ctx := NewContext()
	ctx.Set("x", 0.0)
	v := NewVar("x")
	val, ok := v.Value(ctx)
	if !ok {
		tst.Fatalf("x=0 must read back as defined")
	}
	chk.Scalar(tst, "x", 1e-15, val, 0)
	if len(v.UndefinedVars(ctx)) != 0 {
		tst.Fatalf("x=0 must not be reported as undefined")
	}
}

func Test_expr03(tst *testing.T) {

	chk.PrintTitle("expr03: Assign propagates through one unknown leg")

	ctx := NewContext()
	ctx.Set("m", 68)
	ctx.Set("a", 9.81)
	f := NewVar("F")
	rhs := NewBinary(Mul, NewVar("m"), NewVar("a"))
	val, ok := rhs.Value(ctx)
	if !ok {
		tst.Fatalf("rhs should be fully defined")
	}
	if aerr := f.Assign(val, ctx); aerr != nil {
		tst.Fatalf("unexpected error: %v", aerr)
	}
	got, _ := f.Value(ctx)
	chk.Scalar(tst, "F", 1e-9, got, 68*9.81)
}

func Test_expr04(tst *testing.T) {

	chk.PrintTitle("expr04: inverse assignment through Mul/Pow (pH definition)")

	// [H+] = 10^(-1*pH); pH=7 known, [H+] unknown
	ctx := NewContext()
	ctx.Set("pH", 7)
	hconc := NewVar("[H+]")
	rhs := NewBinary(Pow, NewFixed(10), NewBinary(Mul, NewFixed(-1), NewVar("pH")))
	val, ok := rhs.Value(ctx)
	if !ok {
		tst.Fatalf("rhs should be fully defined")
	}
	if err := hconc.Assign(val, ctx); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	got, _ := hconc.Value(ctx)
	chk.Scalar(tst, "[H+]", 1e-12, got, 1e-7)
}

func Test_expr05(tst *testing.T) {

	chk.PrintTitle("expr05: Assign correctness invariant for Unary (sin)")

	ctx := NewContext()
	s := NewUnary(Sin, NewVar("x"))
	target := 0.5
	if err := s.Assign(target, ctx); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	got, ok := s.Value(ctx)
	if !ok {
		tst.Fatalf("expected defined value after assign")
	}
	chk.Scalar(tst, "sin(x)", Eps, got, target)
}

func Test_expr06(tst *testing.T) {

	chk.PrintTitle("expr06: asin domain error (sin inverse) does not mutate context")

	ctx := NewContext()
	s := NewUnary(Sin, NewVar("x"))
	err := s.Assign(1.5, ctx)
	if err == nil {
		tst.Fatalf("expected a domain error for target outside [-1,1]")
	}
	aerr, ok := err.(*AssignError)
	if !ok || aerr.Kind != DomainError {
		tst.Fatalf("expected a DomainError, got %v", err)
	}
	if _, defined := ctx.Get("x"); defined {
		tst.Fatalf("x must remain undefined after a failed assign")
	}
}

func Test_expr07(tst *testing.T) {

	chk.PrintTitle("expr07: overconstrained binary assignment is detected")

	ctx := NewContext()
	ctx.Set("a", 1)
	ctx.Set("b", 2)
	sum := NewBinary(Add, NewVar("a"), NewVar("b"))
	err := sum.Assign(10, ctx)
	if err == nil {
		tst.Fatalf("expected overconstrained error")
	}
	aerr, ok := err.(*AssignError)
	if !ok || aerr.Kind != Overconstrained {
		tst.Fatalf("expected an Overconstrained error, got %v", err)
	}
}

func Test_expr08(tst *testing.T) {

	chk.PrintTitle("expr08: ExtendedWith does not mutate the receiver")

	ctx := NewContext()
	ctx.Set("x", 1)
	ext := ctx.ExtendedWith(Binding{Name: "y", Value: 2})
	if _, ok := ctx.Get("y"); ok {
		tst.Fatalf("original context must not gain the new binding")
	}
	xv, _ := ext.Get("x")
	yv, _ := ext.Get("y")
	chk.Scalar(tst, "ext.x", 1e-15, xv, 1)
	chk.Scalar(tst, "ext.y", 1e-15, yv, 2)
}

func Test_expr09(tst *testing.T) {

	chk.PrintTitle("expr09: Clone produces a structurally independent tree")

	orig := NewBinary(Add, NewVar("a"), NewVar("b"))
	clone := Clone(orig).(*Binary)
	clone.A.(*Var).Nm = "renamed"
	if orig.A.(*Var).Nm != "a" {
		tst.Fatalf("mutating the clone must not affect the original")
	}
}

func Test_expr11(tst *testing.T) {

	chk.PrintTitle("expr11: Value reports undefined rather than +Inf for 1/0")

	ctx := NewContext()
	ctx.Set("x", 0.0)
	e := NewBinary(Div, NewFixed(1), NewVar("x"))
	_, ok := e.Value(ctx)
	if ok {
		tst.Fatalf("1/0 must be undefined, not a defined +Inf")
	}
}

func Test_expr12(tst *testing.T) {

	chk.PrintTitle("expr12: Pow's inverse rejects a target that yields a non-finite base")

	ctx := NewContext()
	e := NewBinary(Pow, NewVar("a"), NewFixed(0))
	err := e.Assign(5, ctx)
	if err == nil {
		tst.Fatalf("expected a domain error, a^0=5 has no finite solution for a")
	}
	aerr, ok := err.(*AssignError)
	if !ok || aerr.Kind != DomainError {
		tst.Fatalf("expected a DomainError, got %v", err)
	}
	if _, defined := ctx.Get("a"); defined {
		tst.Fatalf("a must remain undefined after a failed assign")
	}
}

func Test_expr10(tst *testing.T) {

	chk.PrintTitle("expr10: repeated-variable constraint sin(x)+x evaluates consistently")

	ctx := NewContext()
	ctx.Set("x", 0.5109734)
	e := NewBinary(Add, NewUnary(Sin, NewVar("x")), NewVar("x"))
	v, ok := e.Value(ctx)
	if !ok {
		tst.Fatalf("expected defined value")
	}
	if math.Abs(v-1) > 1e-6 {
		tst.Fatalf("sin(x)+x should be close to 1 at the known root, got %v", v)
	}
}
