package asm

import (
	"strings"

	"acorn65c02/asmerr"
	"acorn65c02/asmsrc"
	"acorn65c02/asmtok"
	"acorn65c02/opcode"
)

// Assemble runs the full pipeline over already include-expanded source:
// lex, parse into statements, then the three-pass fixed-point protocol of
// spec §4.3 (Pass 1a, Pass 1b, Pass 2/emit).
//
// file names the expanded source for error messages when sm is nil; when
// sm is non-nil, errors report the original (file, line) it resolves to.
func Assemble(src, file string, sm *asmsrc.SourceMap) (*Result, error) {
	lex := asmtok.New(src, file, sm)
	toks, err := lex.All()
	if err != nil {
		return nil, err
	}
	stmts, err := Parse(toks)
	if err != nil {
		return nil, err
	}
	return AssembleStatements(stmts)
}

// AssembleStatements runs the fixed-point protocol over pre-parsed
// statements, letting callers reuse a Parse result across repeated
// assembly (e.g. in tests).
func AssembleStatements(stmts []stmt) (*Result, error) {
	pass1a, _, err := runPass(stmts, nil, false)
	if err != nil {
		return nil, err
	}
	pass1b, _, err := runPass(stmts, pass1a, false)
	if err != nil {
		return nil, err
	}
	_, result, err := runPass(stmts, pass1b, true)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// runPass traverses stmts once, building its own symbol table (falling
// back to seed for symbols not yet bound this pass) and, when emitting,
// the address->byte map. It returns the table this pass produced, ready to
// seed the next one.
func runPass(stmts []stmt, seed *Symbols, emitting bool) (*Symbols, *Result, error) {
	own := NewSymbols()
	result := &Result{Bytes: AddressMap{}}
	var pc uint16
	orgSeen := false

	bindLabel := func(s stmt) error {
		if s.label == "" {
			return nil
		}
		if !orgSeen {
			return &asmerr.SemanticError{File: s.file, Line: s.line, Col: s.col, Message: "label defined before .org: " + s.label}
		}
		own.Set(s.label, uint32(pc))
		return nil
	}

	requireOrg := func(s stmt, what string) error {
		if !orgSeen {
			return &asmerr.SemanticError{File: s.file, Line: s.line, Col: s.col, Message: "missing .org before " + what}
		}
		return nil
	}

	for _, s := range stmts {
		if err := bindLabel(s); err != nil {
			return nil, nil, err
		}

		switch s.kind {
		case stmtLabelOnly:
			// nothing further; bindLabel already handled it.

		case stmtConstant:
			v, err := s.constExpr.Eval(own, seed, emitting)
			if err != nil {
				return nil, nil, err
			}
			own.Set(s.constName, v)

		case stmtDirective:
			if err := runDirective(&s, own, seed, emitting, &pc, &orgSeen, result, requireOrg); err != nil {
				return nil, nil, err
			}

		case stmtInstruction:
			if err := requireOrg(s, "instruction"); err != nil {
				return nil, nil, err
			}
			if err := runInstruction(&s, own, seed, emitting, &pc, result); err != nil {
				return nil, nil, err
			}
		}
	}
	return own, result, nil
}

func runDirective(s *stmt, own, seed *Symbols, emitting bool, pc *uint16, orgSeen *bool, result *Result, requireOrg func(stmt, string) error) error {
	switch s.directive {
	case "ORG":
		v, err := s.dirExprs[0].Eval(own, seed, emitting)
		if err != nil {
			return err
		}
		*pc = uint16(v)
		if !*orgSeen {
			*orgSeen = true
			result.Origin = *pc
			result.HasOrigin = true
		}

	case "BYTE":
		if err := requireOrg(*s, ".byte"); err != nil {
			return err
		}
		for _, e := range s.dirExprs {
			v, err := e.Eval(own, seed, emitting)
			if err != nil {
				return err
			}
			if emitting {
				result.Bytes[*pc] = byte(v)
			}
			*pc++
		}

	case "WORD":
		if err := requireOrg(*s, ".word"); err != nil {
			return err
		}
		for _, e := range s.dirExprs {
			v, err := e.Eval(own, seed, emitting)
			if err != nil {
				return err
			}
			if emitting {
				result.Bytes[*pc] = byte(v)
				result.Bytes[*pc+1] = byte(v >> 8)
			}
			*pc += 2
		}

	case "TEXT":
		if err := requireOrg(*s, ".text"); err != nil {
			return err
		}
		for i := 0; i < len(s.literal); i++ {
			if emitting {
				result.Bytes[*pc] = s.literal[i]
			}
			*pc++
		}

	case "OUTPUT":
		result.Output = s.literal

	case "INCLUDE":
		return &asmerr.IncludeError{Path: s.literal, Message: ".include left unresolved by the time assembly ran"}

	default:
		return &asmerr.SemanticError{File: s.file, Line: s.line, Col: s.col, Message: "unknown directive: ." + strings.ToLower(s.directive)}
	}
	return nil
}

func runInstruction(s *stmt, own, seed *Symbols, emitting bool, pc *uint16, result *Result) error {
	var value uint32
	if s.operand != nil {
		v, err := s.operand.Eval(own, seed, emitting)
		if err != nil {
			return err
		}
		value = v
	}

	mode := chooseMode(s.mnemonic, s.form, value)
	opByte, ok := opcode.Encode(s.mnemonic, mode)
	if !ok {
		return &asmerr.SemanticError{File: s.file, Line: s.line, Col: s.col, Message: "unsupported addressing mode for " + s.mnemonic + ": " + mode.String()}
	}
	size := opcode.Length(mode)

	if emitting {
		result.Bytes[*pc] = opByte
		switch mode {
		case opcode.Relative:
			delta := int64(int32(value)) - int64(*pc) - 2
			if delta < -128 || delta > 127 {
				return &asmerr.SemanticError{File: s.file, Line: s.line, Col: s.col, Message: "branch out of range"}
			}
			result.Bytes[*pc+1] = byte(int8(delta))
		case opcode.Immediate, opcode.ZeroPage, opcode.ZeroPageX, opcode.ZeroPageY,
			opcode.ZeroPageIndirect, opcode.IndirectX, opcode.IndirectY:
			result.Bytes[*pc+1] = byte(value)
		case opcode.Absolute, opcode.AbsoluteX, opcode.AbsoluteY, opcode.Indirect, opcode.IndirectAbsoluteX:
			result.Bytes[*pc+1] = byte(value)
			result.Bytes[*pc+2] = byte(value >> 8)
		}
	}

	*pc += uint16(size)
	return nil
}
