// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// +build ignore

// DumpProblem loads a .prob file and prints its variables, constants and
// constraints without solving it, the same "inspect before running" role
// GeostCalc.go plays for a .sim file.
package main

import (
	"flag"

	"github.com/cpmech/gosl/io"

	"github.com/dfwyatt/eutactic/probfile"
)

func main() {

	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	flag.Parse()
	if len(flag.Args()) < 1 {
		io.PfRed("Please, provide a .prob filename. Ex.: newton.prob\n")
		return
	}
	fnamepath := flag.Arg(0)

	prob, err := probfile.Load(fnamepath)
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		return
	}

	io.Pfyel("\nvariables:\n")
	for _, v := range prob.Variables() {
		if v.HasDefault {
			io.Pf("  %s := %v\n", v.Name, v.DefaultValue)
		} else {
			io.Pf("  %s\n", v.Name)
		}
	}

	io.Pfyel("\nconstraints:\n")
	for _, c := range prob.Constraints() {
		io.Pf("  %s: %s\n", c.Name, c.Formula)
	}
}
