// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/io"

	"github.com/dfwyatt/eutactic/probfile"
	"github.com/dfwyatt/eutactic/report"
	"github.com/dfwyatt/eutactic/solve"
)

func main() {

	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(3)
		}
	}()

	io.Pf("\neutactic -- small-system equation solver\n\n")

	flag.Parse()
	var fnamepath string
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	} else {
		io.PfRed("Please, provide a problem filename. Ex.: newton.prob\n")
		os.Exit(1)
	}

	prob, err := probfile.Load(fnamepath)
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}

	sink := report.NewConsole()
	ctx := prob.DefaultContext().Copy()
	if err := prob.Solve(ctx, nil, sink); err != nil {
		io.PfRed("ERROR: %v\n", err)
		if serr, ok := err.(*solve.Error); ok {
			switch serr.Kind {
			case solve.Underconstrained:
				os.Exit(2)
			case solve.NumericalFailure:
				os.Exit(3)
			default:
				os.Exit(2)
			}
		}
		os.Exit(2)
	}

	io.Pfgreen("\nSolved %q:\n", prob.Name)
	for _, v := range prob.Variables() {
		if val, ok := ctx.Get(v.Name); ok {
			io.Pf("  %s = %v\n", v.Name, val)
		}
	}
}
