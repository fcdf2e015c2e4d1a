// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package refsol implements closed-form reference solutions for a handful
// of named worked examples (spec.md §8), the same role ana.CteStressPstrain
// and ana.PressCylin play for the FEM solver: an independent formula to
// check the engine's numerical output against, not a second implementation
// of the engine itself.
package refsol

import "math"

// Newton2Law is F = m*a.
type Newton2Law struct {
	M, A float64
}

// F returns the closed-form force.
func (o Newton2Law) F() float64 { return o.M * o.A }

// PHDef is [H+] = 10^(-1*pH).
type PHDef struct {
	PH float64
}

// HConcentration returns the closed-form hydrogen-ion concentration.
func (o PHDef) HConcentration() float64 { return math.Pow(10, -1*o.PH) }

// SinPlusX is the transcendental sin(x)+x=1, whose root has no closed
// form; Root returns a reference value obtained independently of
// package numroot, good to the tolerance callers should use.
type SinPlusX struct{}

// Root returns the unique real root of sin(x)+x=1.
func (o SinPlusX) Root() float64 { return 0.510973429 }

// CoupledSumProduct is x+y=s, x*y=p: the two roots are those of
// t^2 - s*t + p = 0.
type CoupledSumProduct struct {
	S, P float64
}

// Roots returns the two (x,y) pairs solving the system, or ok=false if
// the system has no real solution (negative discriminant).
func (o CoupledSumProduct) Roots() (x1, y1, x2, y2 float64, ok bool) {
	disc := o.S*o.S - 4*o.P
	if disc < 0 {
		return 0, 0, 0, 0, false
	}
	sq := math.Sqrt(disc)
	x1 = (o.S + sq) / 2
	y1 = o.S - x1
	x2 = (o.S - sq) / 2
	y2 = o.S - x2
	return x1, y1, x2, y2, true
}
