package asm

import (
	"acorn65c02/asmerr"
	"acorn65c02/asmtok"
)

// An Expr is a parsed expression: a number/char literal, a symbol
// reference, or a left-associative +/- combination of two Exprs (spec
// §4.3).
type Expr interface {
	// Eval resolves the expression against own (this pass's table-in-
	// progress) falling back to seed (the previous pass's completed
	// table, or nil on the very first pass) for symbols own hasn't bound
	// yet. During the emit phase an unresolvable symbol is fatal;
	// otherwise it defaults to 0x100 so forward references provisionally
	// size as absolute.
	Eval(own, seed *Symbols, emitting bool) (uint32, error)
}

type numberExpr struct{ v uint32 }

func (e numberExpr) Eval(_, _ *Symbols, _ bool) (uint32, error) { return e.v, nil }

type identExpr struct {
	name       string
	file       string
	line, col  int
}

func (e identExpr) Eval(own, seed *Symbols, emitting bool) (uint32, error) {
	if v, ok := own.Get(e.name); ok {
		return v, nil
	}
	if seed != nil {
		if v, ok := seed.Get(e.name); ok {
			return v, nil
		}
	}
	if emitting {
		return 0, &asmerr.SemanticError{File: e.file, Line: e.line, Col: e.col, Message: "undefined symbol: " + e.name}
	}
	return 0x100, nil
}

type binaryExpr struct {
	op   byte // '+' or '-'
	l, r Expr
}

func (e binaryExpr) Eval(own, seed *Symbols, emitting bool) (uint32, error) {
	lv, err := e.l.Eval(own, seed, emitting)
	if err != nil {
		return 0, err
	}
	rv, err := e.r.Eval(own, seed, emitting)
	if err != nil {
		return 0, err
	}
	if e.op == '-' {
		return uint32(int64(lv) - int64(rv)), nil
	}
	return lv + rv, nil
}

// parseExpr parses a full expression from toks, which must be entirely
// consumed (no trailing tokens). It is used for directive operands,
// constant assignments, and instruction operands (after resolveOperand has
// stripped any "#", parentheses or ",X"/",Y"), where the token slice is
// already known to be exactly one expression.
func parseExpr(toks []asmtok.Token) (Expr, error) {
	e, n, err := parseExprPrefix(toks)
	if err != nil {
		return nil, err
	}
	if n != len(toks) {
		t := toks[n]
		return nil, &asmerr.ParseError{File: t.File, Line: t.Line, Col: t.Col, Message: "unexpected token after expression"}
	}
	return e, nil
}

// parseExprPrefix parses as much of a leading expression out of toks as it
// can, returning the number of tokens consumed. parseExpr calls it and then
// rejects any tokens left over.
func parseExprPrefix(toks []asmtok.Token) (Expr, int, error) {
	left, n, err := parsePrimary(toks)
	if err != nil {
		return nil, 0, err
	}
	for n < len(toks) && (toks[n].Kind == asmtok.Plus || toks[n].Kind == asmtok.Minus) {
		op := byte('+')
		if toks[n].Kind == asmtok.Minus {
			op = '-'
		}
		n++
		right, m, err := parsePrimary(toks[n:])
		if err != nil {
			return nil, 0, err
		}
		left = binaryExpr{op: op, l: left, r: right}
		n += m
	}
	return left, n, nil
}

func parsePrimary(toks []asmtok.Token) (Expr, int, error) {
	if len(toks) == 0 {
		return nil, 0, &asmerr.ParseError{Message: "expected expression, found end of line"}
	}
	t := toks[0]
	switch t.Kind {
	case asmtok.Number:
		v, err := asmtok.ParseNumber(t.Lexeme, t.File, t.Line, t.Col)
		if err != nil {
			return nil, 0, err
		}
		return numberExpr{v: v}, 1, nil

	case asmtok.Char:
		v, err := asmtok.ParseChar(t.Lexeme, t.File, t.Line, t.Col)
		if err != nil {
			return nil, 0, err
		}
		return numberExpr{v: uint32(v)}, 1, nil

	case asmtok.Dot:
		if len(toks) < 2 || toks[1].Kind != asmtok.Identifier {
			return nil, 0, &asmerr.ParseError{File: t.File, Line: t.Line, Col: t.Col, Message: "expected identifier after '.'"}
		}
		id := toks[1]
		return identExpr{name: key(id.Lexeme), file: id.File, line: id.Line, col: id.Col}, 2, nil

	case asmtok.Identifier:
		return identExpr{name: key(t.Lexeme), file: t.File, line: t.Line, col: t.Col}, 1, nil

	case asmtok.LParen:
		inner, closeAt, err := matchParen(toks)
		if err != nil {
			return nil, 0, err
		}
		e, err := parseExpr(inner)
		if err != nil {
			return nil, 0, err
		}
		return e, closeAt + 1, nil

	default:
		return nil, 0, &asmerr.ParseError{File: t.File, Line: t.Line, Col: t.Col, Message: "expected expression"}
	}
}

// matchParen expects toks[0] to be an LParen and returns the tokens between
// it and its matching RParen, plus the index of that RParen.
func matchParen(toks []asmtok.Token) ([]asmtok.Token, int, error) {
	depth := 0
	for i, t := range toks {
		switch t.Kind {
		case asmtok.LParen:
			depth++
		case asmtok.RParen:
			depth--
			if depth == 0 {
				return toks[1:i], i, nil
			}
		}
	}
	first := toks[0]
	return nil, 0, &asmerr.ParseError{File: first.File, Line: first.Line, Col: first.Col, Message: "unterminated parenthesis"}
}
