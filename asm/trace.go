package asm

import "github.com/davecgh/go-spew/spew"

// Trace, when non-nil, receives one line per completed pass: the pass
// number and a spew dump of its symbol table. Mirrors beevik/go6502's
// verbose/logLine convention, where assembly can optionally narrate its
// own passes for debugging a stuck fixed-point resolution.
type Trace func(line string)

func (t Trace) logPass(pass int, syms *Symbols) {
	if t == nil {
		return
	}
	t("pass " + passName(pass) + ":\n" + spew.Sdump(syms.m))
}

func passName(pass int) string {
	switch pass {
	case 0:
		return "1a"
	case 1:
		return "1b"
	default:
		return "2 (emit)"
	}
}

// AssembleTraced is AssembleStatements with an optional Trace sink over
// each pass's resulting symbol table.
func AssembleTraced(stmts []stmt, trace Trace) (*Result, error) {
	pass1a, _, err := runPass(stmts, nil, false)
	if err != nil {
		return nil, err
	}
	trace.logPass(0, pass1a)

	pass1b, _, err := runPass(stmts, pass1a, false)
	if err != nil {
		return nil, err
	}
	trace.logPass(1, pass1b)

	own, result, err := runPass(stmts, pass1b, true)
	if err != nil {
		return nil, err
	}
	trace.logPass(2, own)
	return result, nil
}
