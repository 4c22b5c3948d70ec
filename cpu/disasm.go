package cpu

import (
	"fmt"

	"acorn65c02/opcode"
)

// mosVectors names the fixed BBC MOS entry points (spec §4.6). A JMP/JSR
// whose absolute target lands on one of these is annotated by name rather
// than the generic "[OS]" tag.
var mosVectors = map[uint16]string{
	0xFFB9: "OSDRM", 0xFFBC: "VDUCHR", 0xFFBF: "OSEVEN", 0xFFC2: "OSINIT",
	0xFFC5: "OSREAD", 0xFFC8: "GSINIT", 0xFFCB: "GSREAD", 0xFFCE: "NVRDCH",
	0xFFD1: "NVWRCH", 0xFFD4: "OSFIND", 0xFFD7: "OSGBPB", 0xFFDA: "OSBPUT",
	0xFFDD: "OSBGET", 0xFFE0: "OSARGS", 0xFFE3: "OSASCI", 0xFFE7: "OSNEWL",
	0xFFEE: "OSWRCH", 0xFFF1: "OSWORD", 0xFFF4: "OSBYTE", 0xFFF7: "OSCLI",
	0xFFFA: "NMI", 0xFFFC: "RESET", 0xFFFE: "IRQ",
}

// Disassemble decodes the single instruction at addr and returns its
// mnemonic-and-operand text together with the address of the next
// instruction. Bytes are read via read rather than a Bus directly so a
// caller can disassemble a byte slice that was never loaded onto one.
func Disassemble(addr uint16, read func(uint16) byte) (text string, next uint16) {
	opByte := read(addr)
	entry, ok := opcode.Table[opByte]
	if !ok {
		return fmt.Sprintf("???  ($%02X)", opByte), addr + 1
	}

	var lo, hi byte
	if entry.Length >= 2 {
		lo = read(addr + 1)
	}
	if entry.Length >= 3 {
		hi = read(addr + 2)
	}
	next = addr + uint16(entry.Length)

	operand, target, hasTarget := operandText(entry.Mode, addr, lo, hi)
	text = entry.Mnemonic
	if operand != "" {
		text += " " + operand
	}
	if hasTarget && (entry.Mnemonic == "JMP" || entry.Mnemonic == "JSR") {
		if name, ok := mosVectors[target]; ok {
			text += "  [" + name + "]"
		} else if target >= 0xC000 {
			text += "  [OS]"
		}
	}
	return text, next
}

// operandText renders an instruction's operand in assembler syntax for the
// given addressing mode, and reports the absolute address it ultimately
// names (for JMP/JSR vector annotation), if any.
func operandText(mode opcode.Mode, pc uint16, lo, hi byte) (text string, target uint16, hasTarget bool) {
	switch mode {
	case opcode.Implied:
		return "", 0, false
	case opcode.Accumulator:
		return "A", 0, false
	case opcode.Immediate:
		return fmt.Sprintf("#$%02X", lo), 0, false
	case opcode.ZeroPage:
		return fmt.Sprintf("$%02X", lo), uint16(lo), true
	case opcode.ZeroPageX:
		return fmt.Sprintf("$%02X,X", lo), 0, false
	case opcode.ZeroPageY:
		return fmt.Sprintf("$%02X,Y", lo), 0, false
	case opcode.ZeroPageIndirect:
		return fmt.Sprintf("($%02X)", lo), 0, false
	case opcode.IndirectX:
		return fmt.Sprintf("($%02X,X)", lo), 0, false
	case opcode.IndirectY:
		return fmt.Sprintf("($%02X),Y", lo), 0, false
	case opcode.Relative:
		t := uint16(int32(pc) + 2 + int32(int8(lo)))
		return fmt.Sprintf("$%04X", t), t, true
	case opcode.Absolute:
		t := uint16(lo) | uint16(hi)<<8
		return fmt.Sprintf("$%04X", t), t, true
	case opcode.AbsoluteX:
		return fmt.Sprintf("$%04X,X", uint16(lo)|uint16(hi)<<8), 0, false
	case opcode.AbsoluteY:
		return fmt.Sprintf("$%04X,Y", uint16(lo)|uint16(hi)<<8), 0, false
	case opcode.Indirect:
		t := uint16(lo) | uint16(hi)<<8
		return fmt.Sprintf("($%04X)", t), t, true
	case opcode.IndirectAbsoluteX:
		return fmt.Sprintf("($%04X,X)", uint16(lo)|uint16(hi)<<8), 0, false
	default:
		return "", 0, false
	}
}
