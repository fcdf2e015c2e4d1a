// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package probfile implements the line-oriented problem text parser
// (spec.md C7, §4.7): variable initializers, constant definitions, named
// equality constraints, and recursive imports, producing a *solve.Problem.
// File reading and error wrapping follow inp/sim.go's
// read-then-wrap-with-context convention, adapted from JSON unmarshalling
// to a hand-written recursive-descent expression grammar.
package probfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/io"

	"github.com/dfwyatt/eutactic/constraint"
	"github.com/dfwyatt/eutactic/expr"
	"github.com/dfwyatt/eutactic/solve"
)

// ParseError is one malformed line, file, or import, reported with enough
// context (spec.md §4.7) for a host to show the user.
type ParseError struct {
	File string
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s (in %q)", e.File, e.Line, e.Msg, e.Text)
}

// ParseErrors collects every parse error found while loading a file and
// its imports; parsing continues past each one to surface the rest
// (spec.md §4.7, matching parsedproblem.py's per-line try/continue loop).
type ParseErrors struct {
	Errors []*ParseError
}

func (e *ParseErrors) Error() string {
	lines := make([]string, len(e.Errors))
	for i, pe := range e.Errors {
		lines[i] = pe.Error()
	}
	return strings.Join(lines, "\n")
}

// Load parses path and every file it (recursively) imports into a new
// Problem. It returns the Problem built so far even on error, since a
// caller may still find it useful (spec.md §8 scenario 8: "the first
// inclusion still yields a usable Problem").
func Load(path string) (*solve.Problem, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &ParseErrors{Errors: []*ParseError{{File: path, Msg: "cannot resolve path: " + err.Error()}}}
	}
	prob := solve.New("Problem from file: " + abs)
	consts := map[string]*expr.Const{}
	l := &loader{prob: prob, consts: consts, visiting: map[string]bool{}}
	l.loadFile(abs)
	if len(l.errs) > 0 {
		return prob, &ParseErrors{Errors: l.errs}
	}
	return prob, nil
}

type loader struct {
	prob     *solve.Problem
	consts   map[string]*expr.Const
	visiting map[string]bool // files currently on the import stack, for cycle detection
	errs     []*ParseError
}

func (l *loader) fail(file string, lineNo int, text, msg string) {
	l.errs = append(l.errs, &ParseError{File: file, Line: lineNo, Text: text, Msg: msg})
}

func (l *loader) loadFile(abs string) {
	if l.visiting[abs] {
		l.fail(abs, 0, "", "import cycle detected")
		return
	}
	l.visiting[abs] = true
	defer delete(l.visiting, abs)

	b, err := io.ReadFile(abs)
	if err != nil {
		l.fail(abs, 0, "", fmt.Sprintf("cannot read file: %v", err))
		return
	}

	scanner := bufio.NewScanner(strings.NewReader(string(b)))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		l.loadLine(abs, lineNo, raw)
	}
}

func (l *loader) loadLine(file string, lineNo int, raw string) {

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return
	}

	// import("path")
	if imp, ok := parseImportLine(trimmed); ok {
		sub := filepath.Join(filepath.Dir(file), imp)
		sub, err := filepath.Abs(sub)
		if err != nil {
			l.fail(file, lineNo, raw, "cannot resolve import path: "+err.Error())
			return
		}
		if _, statErr := os.Stat(sub); statErr != nil {
			l.fail(file, lineNo, raw, "cannot import file "+imp+": "+statErr.Error())
			return
		}
		l.loadFile(sub)
		return
	}

	toks, err := lex(trimmed)
	if err != nil {
		l.fail(file, lineNo, raw, err.Error())
		return
	}

	if name, rest, ok := splitAssign(toks, tokAssign); ok {
		l.loadVarInit(file, lineNo, raw, name, rest)
		return
	}
	if name, rest, ok := splitAssign(toks, tokConstAssign); ok {
		l.loadConstDef(file, lineNo, raw, name, rest)
		return
	}
	if lhsToks, rhsToks, title, ok := splitConstraint(toks); ok {
		l.loadConstraint(file, lineNo, raw, lhsToks, rhsToks, title)
		return
	}

	l.fail(file, lineNo, raw, "line matches no grammar rule (expected 'name := expr', 'name == expr', 'expr = expr', or 'import(\"path\")')")
}

func parseImportLine(trimmed string) (path string, ok bool) {
	lower := strings.ToLower(trimmed)
	if !strings.HasPrefix(lower, "import") {
		return "", false
	}
	rest := strings.TrimSpace(trimmed[len("import"):])
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return "", false
	}
	inner := strings.TrimSpace(rest[1 : len(rest)-1])
	if len(inner) < 2 || inner[0] != '"' || inner[len(inner)-1] != '"' {
		return "", false
	}
	return inner[1 : len(inner)-1], true
}

// splitAssign looks for IDENT (tokAssign|tokConstAssign) REST at the start
// of the token stream, per the `name := expr` / `name == expr` grammar.
func splitAssign(toks []token, kind tokenKind) (name string, rest []token, ok bool) {
	if len(toks) < 2 || toks[0].kind != tokIdent || toks[1].kind != kind {
		return "", nil, false
	}
	return toks[0].text, toks[2:], true
}

// splitConstraint splits EXPR = EXPR ["title"] into its halves, scanning
// for a top-level '=' (not inside parens).
func splitConstraint(toks []token) (lhs, rhs []token, title string, ok bool) {
	depth := 0
	eqIdx := -1
	for i, t := range toks {
		switch t.kind {
		case tokLParen:
			depth++
		case tokRParen:
			depth--
		case tokEquals:
			if depth == 0 {
				eqIdx = i
			}
		}
		if eqIdx >= 0 {
			break
		}
	}
	if eqIdx < 0 {
		return nil, nil, "", false
	}
	lhs = append([]token(nil), toks[:eqIdx]...)
	remainder := append([]token(nil), toks[eqIdx+1:]...)
	// strip a trailing quoted title, if present, right before tokEOF
	if len(remainder) >= 2 && remainder[len(remainder)-2].kind == tokString && remainder[len(remainder)-1].kind == tokEOF {
		title = remainder[len(remainder)-2].text
		remainder = append(remainder[:len(remainder)-2], token{kind: tokEOF})
	}
	return lhs, remainder, title, true
}

func (l *loader) loadVarInit(file string, lineNo int, raw, name string, rest []token) {
	rest = append(rest, token{kind: tokEOF})
	p := newExprParser(rest, l.prob, l.consts)
	e, err := p.parseExpr()
	if err != nil {
		l.fail(file, lineNo, raw, "in initializer for "+name+": "+err.Error())
		return
	}
	if err := p.expectEOF(); err != nil {
		l.fail(file, lineNo, raw, "in initializer for "+name+": "+err.Error())
		return
	}
	val, ok := e.Value(expr.NewContext())
	if !ok {
		l.fail(file, lineNo, raw, "initializer for "+name+" does not evaluate in the empty context")
		return
	}
	l.prob.SetDefault(name, val)
}

func (l *loader) loadConstDef(file string, lineNo int, raw, name string, rest []token) {
	rest = append(rest, token{kind: tokEOF})
	p := newExprParser(rest, l.prob, l.consts)
	e, err := p.parseExpr()
	if err != nil {
		l.fail(file, lineNo, raw, "in constant definition for "+name+": "+err.Error())
		return
	}
	if err := p.expectEOF(); err != nil {
		l.fail(file, lineNo, raw, "in constant definition for "+name+": "+err.Error())
		return
	}
	val, ok := e.Value(expr.NewContext())
	if !ok {
		l.fail(file, lineNo, raw, "constant definition for "+name+" does not evaluate in the empty context")
		return
	}
	c := expr.NewConst(name, val)
	l.consts[name] = c
	l.prob.AddConst(c)
}

func (l *loader) loadConstraint(file string, lineNo int, raw string, lhsToks, rhsToks []token, title string) {
	lhsToks = append(lhsToks, token{kind: tokEOF})
	lp := newExprParser(lhsToks, l.prob, l.consts)
	lhs, err := lp.parseExpr()
	if err != nil {
		l.fail(file, lineNo, raw, "in left-hand side: "+err.Error())
		return
	}
	if err := lp.expectEOF(); err != nil {
		l.fail(file, lineNo, raw, "in left-hand side: "+err.Error())
		return
	}
	rp := newExprParser(rhsToks, l.prob, l.consts)
	rhs, err := rp.parseExpr()
	if err != nil {
		l.fail(file, lineNo, raw, "in right-hand side: "+err.Error())
		return
	}
	if err := rp.expectEOF(); err != nil {
		l.fail(file, lineNo, raw, "in right-hand side: "+err.Error())
		return
	}
	name := title
	if name == "" {
		name = "Line " + strconv.Itoa(lineNo)
	}
	l.prob.AddConstraint(constraint.New(name, lhs, rhs))
}
