package asm

import (
	"strings"

	"acorn65c02/asmerr"
	"acorn65c02/asmtok"
	"acorn65c02/opcode"
)

// An operandForm is the syntactic shape of an instruction's operand,
// independent of any symbol value. Mode resolution (§4.3's table) narrows a
// form to an addressing Mode once the operand's value is known.
type operandForm int

const (
	formNone operandForm = iota
	formAccumulator
	formImmediate
	formIndirectX // (expr,X)
	formIndirectY // (expr),Y
	formIndirect  // (expr)
	formIndexedX  // expr,X
	formIndexedY  // expr,Y
	formPlain     // expr
)

// resolveOperand classifies toks (the tokens following the mnemonic, up to
// but not including EOL) into a form and, where applicable, the Expr whose
// value participates in mode resolution.
func resolveOperand(toks []asmtok.Token) (operandForm, Expr, error) {
	if len(toks) == 0 {
		return formNone, nil, nil
	}
	if len(toks) == 1 && toks[0].Kind == asmtok.Identifier && strings.EqualFold(toks[0].Lexeme, "A") {
		return formAccumulator, nil, nil
	}
	if toks[0].Kind == asmtok.Hash {
		e, err := parseExpr(toks[1:])
		if err != nil {
			return 0, nil, err
		}
		return formImmediate, e, nil
	}
	if toks[0].Kind == asmtok.LParen {
		inner, closeAt, err := matchParen(toks)
		if err != nil {
			return 0, nil, err
		}
		innerExpr, err := parseExpr(inner)
		if err != nil {
			return 0, nil, err
		}
		after := toks[closeAt+1:]
		switch {
		case len(after) == 0:
			return formIndirect, innerExpr, nil
		case len(after) == 2 && after[0].Kind == asmtok.Comma && after[1].Kind == asmtok.Identifier && strings.EqualFold(after[1].Lexeme, "X"):
			return formIndirectX, innerExpr, nil
		case len(after) == 2 && after[0].Kind == asmtok.Comma && after[1].Kind == asmtok.Identifier && strings.EqualFold(after[1].Lexeme, "Y"):
			return formIndirectY, innerExpr, nil
		default:
			t := toks[0]
			return 0, nil, &asmerr.ParseError{File: t.File, Line: t.Line, Col: t.Col, Message: "malformed indirect operand"}
		}
	}

	if n := len(toks); n >= 2 && toks[n-2].Kind == asmtok.Comma && toks[n-1].Kind == asmtok.Identifier {
		reg := toks[n-1]
		e, err := parseExpr(toks[:n-2])
		if err != nil {
			return 0, nil, err
		}
		switch {
		case strings.EqualFold(reg.Lexeme, "X"):
			return formIndexedX, e, nil
		case strings.EqualFold(reg.Lexeme, "Y"):
			return formIndexedY, e, nil
		default:
			return 0, nil, &asmerr.ParseError{File: reg.File, Line: reg.Line, Col: reg.Col, Message: "unknown index register: " + reg.Lexeme}
		}
	}

	e, err := parseExpr(toks)
	if err != nil {
		return 0, nil, err
	}
	return formPlain, e, nil
}

func hasMode(mnemonic string, m opcode.Mode) bool {
	for _, mm := range opcode.Modes(mnemonic) {
		if mm == m {
			return true
		}
	}
	return false
}

// chooseMode narrows form to a concrete addressing Mode for mnemonic,
// given the operand's evaluated value (ignored by forms whose mode doesn't
// depend on magnitude).
func chooseMode(mnemonic string, form operandForm, value uint32) opcode.Mode {
	switch form {
	case formNone:
		if hasMode(mnemonic, opcode.Accumulator) && !hasMode(mnemonic, opcode.Implied) {
			return opcode.Accumulator
		}
		return opcode.Implied
	case formAccumulator:
		return opcode.Accumulator
	case formImmediate:
		return opcode.Immediate
	case formIndirectX:
		if mnemonic == "JMP" {
			return opcode.IndirectAbsoluteX
		}
		return opcode.IndirectX
	case formIndirectY:
		return opcode.IndirectY
	case formIndirect:
		if value <= 0xFF {
			return opcode.ZeroPageIndirect
		}
		return opcode.Indirect
	case formIndexedX:
		if opcode.IsBranch(mnemonic) {
			return opcode.Relative
		}
		if value <= 0xFF {
			return opcode.ZeroPageX
		}
		return opcode.AbsoluteX
	case formIndexedY:
		if value <= 0xFF {
			return opcode.ZeroPageY
		}
		return opcode.AbsoluteY
	default: // formPlain
		if opcode.IsBranch(mnemonic) {
			return opcode.Relative
		}
		if value <= 0xFF {
			return opcode.ZeroPage
		}
		return opcode.Absolute
	}
}
