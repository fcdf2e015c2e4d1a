// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package report defines the diagnostic sink threaded through the solver
// (spec.md §6): a line-at-a-time callback supplied by the host, so that the
// core never owns process stdout the way a global Tsilent/print idiom
// would (see DESIGN.md on why this replaces gofem's package-level
// utl.Tsilent switch).
package report

import "fmt"

// Sink receives one formatted diagnostic line at a time.
type Sink interface {
	Line(format string, args ...interface{})
}

// Discard is a Sink that drops every line; useful for tests and for
// library callers that don't want diagnostics.
var Discard Sink = discard{}

type discard struct{}

func (discard) Line(format string, args ...interface{}) {}

// Collector is a Sink that records every line verbatim, useful for tests
// that want to assert on the diagnostic stream's content.
type Collector struct {
	Lines []string
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector { return &Collector{} }

func (c *Collector) Line(format string, args ...interface{}) {
	c.Lines = append(c.Lines, fmt.Sprintf(format, args...))
}
