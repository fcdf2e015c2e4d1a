// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// Binding pairs a variable name with a value, used by ExtendedWith.
type Binding struct {
	Name  string
	Value float64
}

// Context maps variable names to either a defined numeric value or
// undefined. Unlike a bare map[string]float64, a variable bound to exactly
// 0.0 reads back as defined -- zero is never confused with undefined (see
// DESIGN.md on the "zero as undefined" bug in the original source).
type Context struct {
	vals    map[string]float64
	defined map[string]bool
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{
		vals:    make(map[string]float64),
		defined: make(map[string]bool),
	}
}

// Get returns the variable's value and whether it is defined.
func (o *Context) Get(name string) (float64, bool) {
	if o == nil {
		return 0, false
	}
	if !o.defined[name] {
		return 0, false
	}
	return o.vals[name], true
}

// Set writes name=value into the context.
func (o *Context) Set(name string, value float64) {
	o.vals[name] = value
	o.defined[name] = true
}

// Unset marks name as undefined again.
func (o *Context) Unset(name string) {
	delete(o.vals, name)
	delete(o.defined, name)
}

// Copy returns an independent copy: mutating the copy never mutates o, and
// vice-versa.
func (o *Context) Copy() *Context {
	n := NewContext()
	for k, v := range o.vals {
		n.vals[k] = v
	}
	for k, v := range o.defined {
		n.defined[k] = v
	}
	return n
}

// ExtendedWith returns a copy of o with the given bindings additionally
// applied; o itself is left untouched.
func (o *Context) ExtendedWith(bindings ...Binding) *Context {
	n := o.Copy()
	for _, b := range bindings {
		n.Set(b.Name, b.Value)
	}
	return n
}

// Names returns every variable name currently defined in this context, in
// no particular order.
func (o *Context) Names() []string {
	names := make([]string, 0, len(o.vals))
	for k := range o.vals {
		names = append(names, k)
	}
	return names
}
