// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refsol

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_refsol01(tst *testing.T) {
	chk.PrintTitle("refsol01: Newton's second law")
	n := Newton2Law{M: 68, A: 9.81}
	chk.Scalar(tst, "F", 1e-12, n.F(), 667.08)
}

func Test_refsol02(tst *testing.T) {
	chk.PrintTitle("refsol02: pH definition")
	ph := PHDef{PH: 7}
	chk.Scalar(tst, "[H+]", 1e-12, ph.HConcentration(), 1e-7)
}

func Test_refsol03(tst *testing.T) {
	chk.PrintTitle("refsol03: coupled sum/product roots")
	c := CoupledSumProduct{S: 3, P: 2}
	x1, y1, x2, y2, ok := c.Roots()
	if !ok {
		tst.Fatalf("expected a real solution")
	}
	chk.Scalar(tst, "x1+y1", 1e-12, x1+y1, 3)
	chk.Scalar(tst, "x1*y1", 1e-12, x1*y1, 2)
	chk.Scalar(tst, "x2+y2", 1e-12, x2+y2, 3)
	chk.Scalar(tst, "x2*y2", 1e-12, x2*y2, 2)
}
