// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probfile

import (
	"math"
	"strconv"
	"strings"

	"github.com/dfwyatt/eutactic/expr"
	"github.com/dfwyatt/eutactic/solve"
)

// exprParser recursive-descends a line's tokens into an expr.Expr. It
// commits to the precedence spec.md §9 Q2 leaves open: '^' binds
// tightest and is right-associative, then '*'/'/'  , then '+'/'-' , all
// three of the latter left-associative; there is no unary-minus operator,
// a leading sign is folded into the numeric literal by the lexer.
type exprParser struct {
	toks    []token
	pos     int
	prob    *solve.Problem
	consts  map[string]*expr.Const
}

func newExprParser(toks []token, prob *solve.Problem, consts map[string]*expr.Const) *exprParser {
	return &exprParser{toks: toks, prob: prob, consts: consts}
}

func (p *exprParser) peek() token { return p.toks[p.pos] }

func (p *exprParser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

// parseExpr parses the full additive-level expression.
func (p *exprParser) parseExpr() (expr.Expr, error) {
	return p.parseAdditive()
}

// expectEOF fails if any token remains unconsumed, the way pyparsing's
// stringEnd rejects trailing garbage the grammar never asked for (e.g.
// "a = b c"). Callers invoke it once immediately after a successful
// parseExpr, since parseExpr itself only ever promises to consume a
// prefix of the token stream.
func (p *exprParser) expectEOF() error {
	if t := p.peek(); t.kind != tokEOF {
		return &SyntaxError{Msg: "unexpected trailing token " + strconv.Quote(t.text)}
	}
	return nil
}

func (p *exprParser) parseAdditive() (expr.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokOp || (t.text != "+" && t.text != "-") {
			return left, nil
		}
		p.next()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		op := expr.Add
		if t.text == "-" {
			op = expr.Sub
		}
		left = expr.NewBinary(op, left, right)
	}
}

func (p *exprParser) parseMultiplicative() (expr.Expr, error) {
	left, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for {
		t := p.peek()
		if t.kind != tokOp || (t.text != "*" && t.text != "/") {
			return left, nil
		}
		p.next()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		op := expr.Mul
		if t.text == "/" {
			op = expr.Div
		}
		left = expr.NewBinary(op, left, right)
	}
}

// parsePower is right-associative: a^b^c == a^(b^c).
func (p *exprParser) parsePower() (expr.Expr, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	t := p.peek()
	if t.kind == tokOp && t.text == "^" {
		p.next()
		right, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		return expr.NewBinary(expr.Pow, left, right), nil
	}
	return left, nil
}

var unaryFuncs = map[string]expr.UnaryOp{
	"sin": expr.Sin,
	"cos": expr.Cos,
	"tan": expr.Tan,
}

func (p *exprParser) parseAtom() (expr.Expr, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return expr.NewFixed(t.num), nil
	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, &SyntaxError{Msg: "expected )"}
		}
		p.next()
		return inner, nil
	case tokIdent:
		lower := strings.ToLower(t.text)
		if op, ok := unaryFuncs[lower]; ok {
			if p.peek().kind != tokLParen {
				return nil, &SyntaxError{Msg: t.text + " must be followed by ("}
			}
			p.next()
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if p.peek().kind != tokRParen {
				return nil, &SyntaxError{Msg: "expected ) after " + t.text + "(...)"}
			}
			p.next()
			return expr.NewUnary(op, arg), nil
		}
		if lower == "pi" {
			return expr.NewConst("pi", math.Pi), nil
		}
		if lower == "e" {
			return expr.NewConst("e", math.E), nil
		}
		if c, ok := p.consts[t.text]; ok {
			return c, nil
		}
		return p.prob.Var(t.text), nil
	}
	return nil, &SyntaxError{Msg: "unexpected token " + t.text}
}
