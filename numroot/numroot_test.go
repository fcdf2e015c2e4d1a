// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numroot

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/dfwyatt/eutactic/expr"
)

// linResidual is x - target, used to drive the solver to a known scalar
// root independent of package solve's residual adapter.
type linResidual struct {
	v      *expr.Var
	target float64
}

func (r linResidual) Eval(ctx *expr.Context) (float64, bool) {
	v, ok := r.v.Value(ctx)
	if !ok {
		return 0, false
	}
	return v - r.target, true
}

func Test_numroot01(tst *testing.T) {

	chk.PrintTitle("numroot01: single-variable root finding converges to the known root")

	x := expr.NewVar("x")
	ctx := expr.NewContext()
	err := Solve([]Residual{linResidual{v: x, target: 3.25}}, ctx, []*expr.Var{x}, nil)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	xv, _ := ctx.Get("x")
	chk.Scalar(tst, "x", 1e-6, xv, 3.25)
}

// planeResidual is a*x+b*y-c, used to build an over-determined (m>n)
// linear system out of independent equations.
type planeResidual struct {
	x, y    *expr.Var
	a, b, c float64
}

func (r planeResidual) Eval(ctx *expr.Context) (float64, bool) {
	xv, okx := r.x.Value(ctx)
	yv, oky := r.y.Value(ctx)
	if !okx || !oky {
		return 0, false
	}
	return r.a*xv + r.b*yv - r.c, true
}

func Test_numroot03(tst *testing.T) {

	chk.PrintTitle("numroot03: over-determined (m>n) but consistent system converges")

	x := expr.NewVar("x")
	y := expr.NewVar("y")
	ctx := expr.NewContext()
	residuals := []Residual{
		planeResidual{x: x, y: y, a: 1, b: 1, c: 3},   // x+y=3
		planeResidual{x: x, y: y, a: 1, b: -1, c: -1},  // x-y=-1
		planeResidual{x: x, y: y, a: 2, b: 1, c: 4},   // 2x+y=4
	}
	err := Solve(residuals, ctx, []*expr.Var{x, y}, nil)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	xv, _ := ctx.Get("x")
	yv, _ := ctx.Get("y")
	chk.Scalar(tst, "x", 1e-6, xv, 1)
	chk.Scalar(tst, "y", 1e-6, yv, 2)
}

func Test_numroot04(tst *testing.T) {

	chk.PrintTitle("numroot04: over-determined (m>n) and inconsistent system fails without panicking")

	x := expr.NewVar("x")
	y := expr.NewVar("y")
	ctx := expr.NewContext()
	residuals := []Residual{
		planeResidual{x: x, y: y, a: 1, b: 1, c: 3},
		planeResidual{x: x, y: y, a: 1, b: -1, c: -1},
		planeResidual{x: x, y: y, a: 2, b: 1, c: 99}, // contradicts the other two
	}
	err := Solve(residuals, ctx, []*expr.Var{x, y}, nil)
	if err == nil {
		tst.Fatalf("expected a non-convergence error for an inconsistent system")
	}
	if _, ok := err.(*ErrNoConverge); !ok {
		tst.Fatalf("expected *ErrNoConverge, got %T: %v", err, err)
	}
}

func Test_numroot02(tst *testing.T) {

	chk.PrintTitle("numroot02: seeding the initial guess from refCtx")

	x := expr.NewVar("x")
	ctx := expr.NewContext()
	ref := expr.NewContext()
	ref.Set("x", 3.0) // close to the root, a good starting guess
	err := Solve([]Residual{linResidual{v: x, target: 3.1}}, ctx, []*expr.Var{x}, ref)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	xv, _ := ctx.Get("x")
	if math.Abs(xv-3.1) > 1e-6 {
		tst.Fatalf("expected x close to 3.1, got %v", xv)
	}
}
