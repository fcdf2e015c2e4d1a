// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"strings"

	"github.com/cpmech/gosl/io"
)

// Console is a Sink that writes through gosl/io, colour-coding lines the
// way fem.go colours simulation progress with io.Pfyel/io.PfRed: solved
// steps in green, numerical escalation in yellow, failures in red.
type Console struct{}

// NewConsole returns a Sink bound to the process's stdout via gosl/io.
func NewConsole() *Console { return &Console{} }

func (Console) Line(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	switch {
	case strings.HasPrefix(msg, "Error:"):
		io.PfRed("%s\n", msg)
	case strings.HasPrefix(msg, "Solving"):
		io.Pfyel("%s\n", msg)
	case strings.HasPrefix(msg, "Solved"):
		io.Pfgreen("%s\n", msg)
	default:
		io.Pf("%s\n", msg)
	}
}
