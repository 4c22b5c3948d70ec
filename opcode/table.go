package opcode

// An Entry describes one legal opcode byte: the mnemonic it assembles from
// or disassembles to, its addressing mode, its length in bytes (including
// the opcode byte), and the base cycle count a correctly-predicted
// execution takes.
type Entry struct {
	Mnemonic string
	Mode     Mode
	Length   byte
	Cycles   byte
}

// Table maps every opcode byte to its Entry. Bytes absent from Table are
// illegal: the CPU core treats them as a one-byte, two-cycle no-op with no
// side effects, and the assembler rejects them at emit time.
var Table = map[byte]Entry{
	// --- load/store ---
	0xA9: {"LDA", Immediate, 2, 2}, 0xA5: {"LDA", ZeroPage, 2, 3}, 0xB5: {"LDA", ZeroPageX, 2, 4},
	0xAD: {"LDA", Absolute, 3, 4}, 0xBD: {"LDA", AbsoluteX, 3, 4}, 0xB9: {"LDA", AbsoluteY, 3, 4},
	0xA1: {"LDA", IndirectX, 2, 6}, 0xB1: {"LDA", IndirectY, 2, 5}, 0xB2: {"LDA", ZeroPageIndirect, 2, 5},

	0xA2: {"LDX", Immediate, 2, 2}, 0xA6: {"LDX", ZeroPage, 2, 3}, 0xB6: {"LDX", ZeroPageY, 2, 4},
	0xAE: {"LDX", Absolute, 3, 4}, 0xBE: {"LDX", AbsoluteY, 3, 4},

	0xA0: {"LDY", Immediate, 2, 2}, 0xA4: {"LDY", ZeroPage, 2, 3}, 0xB4: {"LDY", ZeroPageX, 2, 4},
	0xAC: {"LDY", Absolute, 3, 4}, 0xBC: {"LDY", AbsoluteX, 3, 4},

	0x85: {"STA", ZeroPage, 2, 3}, 0x95: {"STA", ZeroPageX, 2, 4}, 0x8D: {"STA", Absolute, 3, 4},
	0x9D: {"STA", AbsoluteX, 3, 5}, 0x99: {"STA", AbsoluteY, 3, 5}, 0x81: {"STA", IndirectX, 2, 6},
	0x91: {"STA", IndirectY, 2, 6}, 0x92: {"STA", ZeroPageIndirect, 2, 5},

	0x86: {"STX", ZeroPage, 2, 3}, 0x96: {"STX", ZeroPageY, 2, 4}, 0x8E: {"STX", Absolute, 3, 4},
	0x84: {"STY", ZeroPage, 2, 3}, 0x94: {"STY", ZeroPageX, 2, 4}, 0x8C: {"STY", Absolute, 3, 4},

	0x64: {"STZ", ZeroPage, 2, 3}, 0x74: {"STZ", ZeroPageX, 2, 4},
	0x9C: {"STZ", Absolute, 3, 4}, 0x9E: {"STZ", AbsoluteX, 3, 5},

	// --- arithmetic/logic ---
	0x69: {"ADC", Immediate, 2, 2}, 0x65: {"ADC", ZeroPage, 2, 3}, 0x75: {"ADC", ZeroPageX, 2, 4},
	0x6D: {"ADC", Absolute, 3, 4}, 0x7D: {"ADC", AbsoluteX, 3, 4}, 0x79: {"ADC", AbsoluteY, 3, 4},
	0x61: {"ADC", IndirectX, 2, 6}, 0x71: {"ADC", IndirectY, 2, 5}, 0x72: {"ADC", ZeroPageIndirect, 2, 5},

	0xE9: {"SBC", Immediate, 2, 2}, 0xE5: {"SBC", ZeroPage, 2, 3}, 0xF5: {"SBC", ZeroPageX, 2, 4},
	0xED: {"SBC", Absolute, 3, 4}, 0xFD: {"SBC", AbsoluteX, 3, 4}, 0xF9: {"SBC", AbsoluteY, 3, 4},
	0xE1: {"SBC", IndirectX, 2, 6}, 0xF1: {"SBC", IndirectY, 2, 5}, 0xF2: {"SBC", ZeroPageIndirect, 2, 5},

	0x29: {"AND", Immediate, 2, 2}, 0x25: {"AND", ZeroPage, 2, 3}, 0x35: {"AND", ZeroPageX, 2, 4},
	0x2D: {"AND", Absolute, 3, 4}, 0x3D: {"AND", AbsoluteX, 3, 4}, 0x39: {"AND", AbsoluteY, 3, 4},
	0x21: {"AND", IndirectX, 2, 6}, 0x31: {"AND", IndirectY, 2, 5}, 0x32: {"AND", ZeroPageIndirect, 2, 5},

	0x09: {"ORA", Immediate, 2, 2}, 0x05: {"ORA", ZeroPage, 2, 3}, 0x15: {"ORA", ZeroPageX, 2, 4},
	0x0D: {"ORA", Absolute, 3, 4}, 0x1D: {"ORA", AbsoluteX, 3, 4}, 0x19: {"ORA", AbsoluteY, 3, 4},
	0x01: {"ORA", IndirectX, 2, 6}, 0x11: {"ORA", IndirectY, 2, 5}, 0x12: {"ORA", ZeroPageIndirect, 2, 5},

	0x49: {"EOR", Immediate, 2, 2}, 0x45: {"EOR", ZeroPage, 2, 3}, 0x55: {"EOR", ZeroPageX, 2, 4},
	0x4D: {"EOR", Absolute, 3, 4}, 0x5D: {"EOR", AbsoluteX, 3, 4}, 0x59: {"EOR", AbsoluteY, 3, 4},
	0x41: {"EOR", IndirectX, 2, 6}, 0x51: {"EOR", IndirectY, 2, 5}, 0x52: {"EOR", ZeroPageIndirect, 2, 5},

	0xC9: {"CMP", Immediate, 2, 2}, 0xC5: {"CMP", ZeroPage, 2, 3}, 0xD5: {"CMP", ZeroPageX, 2, 4},
	0xCD: {"CMP", Absolute, 3, 4}, 0xDD: {"CMP", AbsoluteX, 3, 4}, 0xD9: {"CMP", AbsoluteY, 3, 4},
	0xC1: {"CMP", IndirectX, 2, 6}, 0xD1: {"CMP", IndirectY, 2, 5}, 0xD2: {"CMP", ZeroPageIndirect, 2, 5},

	0xE0: {"CPX", Immediate, 2, 2}, 0xE4: {"CPX", ZeroPage, 2, 3}, 0xEC: {"CPX", Absolute, 3, 4},
	0xC0: {"CPY", Immediate, 2, 2}, 0xC4: {"CPY", ZeroPage, 2, 3}, 0xCC: {"CPY", Absolute, 3, 4},

	0x24: {"BIT", ZeroPage, 2, 3}, 0x2C: {"BIT", Absolute, 3, 4},
	0x89: {"BIT", Immediate, 2, 2}, 0x34: {"BIT", ZeroPageX, 2, 4}, 0x3C: {"BIT", AbsoluteX, 3, 4},

	0x14: {"TRB", ZeroPage, 2, 5}, 0x1C: {"TRB", Absolute, 3, 6},
	0x04: {"TSB", ZeroPage, 2, 5}, 0x0C: {"TSB", Absolute, 3, 6},

	// --- shifts/rotates ---
	0x0A: {"ASL", Accumulator, 1, 2}, 0x06: {"ASL", ZeroPage, 2, 5}, 0x16: {"ASL", ZeroPageX, 2, 6},
	0x0E: {"ASL", Absolute, 3, 6}, 0x1E: {"ASL", AbsoluteX, 3, 7},

	0x4A: {"LSR", Accumulator, 1, 2}, 0x46: {"LSR", ZeroPage, 2, 5}, 0x56: {"LSR", ZeroPageX, 2, 6},
	0x4E: {"LSR", Absolute, 3, 6}, 0x5E: {"LSR", AbsoluteX, 3, 7},

	0x2A: {"ROL", Accumulator, 1, 2}, 0x26: {"ROL", ZeroPage, 2, 5}, 0x36: {"ROL", ZeroPageX, 2, 6},
	0x2E: {"ROL", Absolute, 3, 6}, 0x3E: {"ROL", AbsoluteX, 3, 7},

	0x6A: {"ROR", Accumulator, 1, 2}, 0x66: {"ROR", ZeroPage, 2, 5}, 0x76: {"ROR", ZeroPageX, 2, 6},
	0x6E: {"ROR", Absolute, 3, 6}, 0x7E: {"ROR", AbsoluteX, 3, 7},

	// --- inc/dec ---
	0xE6: {"INC", ZeroPage, 2, 5}, 0xF6: {"INC", ZeroPageX, 2, 6}, 0xEE: {"INC", Absolute, 3, 6},
	0xFE: {"INC", AbsoluteX, 3, 7}, 0x1A: {"INC", Accumulator, 1, 2},

	0xC6: {"DEC", ZeroPage, 2, 5}, 0xD6: {"DEC", ZeroPageX, 2, 6}, 0xCE: {"DEC", Absolute, 3, 6},
	0xDE: {"DEC", AbsoluteX, 3, 7}, 0x3A: {"DEC", Accumulator, 1, 2},

	0xE8: {"INX", Implied, 1, 2}, 0xC8: {"INY", Implied, 1, 2},
	0xCA: {"DEX", Implied, 1, 2}, 0x88: {"DEY", Implied, 1, 2},

	// --- transfers ---
	0xAA: {"TAX", Implied, 1, 2}, 0x8A: {"TXA", Implied, 1, 2},
	0xA8: {"TAY", Implied, 1, 2}, 0x98: {"TYA", Implied, 1, 2},
	0x9A: {"TXS", Implied, 1, 2}, 0xBA: {"TSX", Implied, 1, 2},

	// --- stack ---
	0x48: {"PHA", Implied, 1, 3}, 0x68: {"PLA", Implied, 1, 4},
	0x08: {"PHP", Implied, 1, 3}, 0x28: {"PLP", Implied, 1, 4},
	0xDA: {"PHX", Implied, 1, 3}, 0xFA: {"PLX", Implied, 1, 4},
	0x5A: {"PHY", Implied, 1, 3}, 0x7A: {"PLY", Implied, 1, 4},

	// --- flags ---
	0x18: {"CLC", Implied, 1, 2}, 0x38: {"SEC", Implied, 1, 2},
	0x58: {"CLI", Implied, 1, 2}, 0x78: {"SEI", Implied, 1, 2},
	0xB8: {"CLV", Implied, 1, 2}, 0xD8: {"CLD", Implied, 1, 2}, 0xF8: {"SED", Implied, 1, 2},

	// --- branches ---
	0x10: {"BPL", Relative, 2, 2}, 0x30: {"BMI", Relative, 2, 2},
	0x50: {"BVC", Relative, 2, 2}, 0x70: {"BVS", Relative, 2, 2},
	0x90: {"BCC", Relative, 2, 2}, 0xB0: {"BCS", Relative, 2, 2},
	0xD0: {"BNE", Relative, 2, 2}, 0xF0: {"BEQ", Relative, 2, 2},
	0x80: {"BRA", Relative, 2, 3},

	// --- jumps/calls/returns ---
	0x4C: {"JMP", Absolute, 3, 3}, 0x6C: {"JMP", Indirect, 3, 5}, 0x7C: {"JMP", IndirectAbsoluteX, 3, 6},
	0x20: {"JSR", Absolute, 3, 6}, 0x40: {"RTI", Implied, 1, 6}, 0x60: {"RTS", Implied, 1, 6},

	// --- misc ---
	0x00: {"BRK", Implied, 1, 7}, 0xEA: {"NOP", Implied, 1, 2},
}

// Lookup returns the Entry for opcode byte b and reports whether b is a
// legal, assigned opcode.
func Lookup(b byte) (Entry, bool) {
	e, ok := Table[b]
	return e, ok
}

// reverse maps (mnemonic, mode) back to the opcode byte that encodes it,
// built once from Table so the assembler never has to scan it linearly.
var reverse = func() map[string]map[Mode]byte {
	m := map[string]map[Mode]byte{}
	for b, e := range Table {
		if m[e.Mnemonic] == nil {
			m[e.Mnemonic] = map[Mode]byte{}
		}
		m[e.Mnemonic][e.Mode] = b
	}
	return m
}()

// Encode returns the opcode byte for mnemonic in mode, and whether that
// combination exists. The assembler calls this once it has resolved which
// addressing mode an operand's syntax selects.
func Encode(mnemonic string, mode Mode) (byte, bool) {
	modes, ok := reverse[mnemonic]
	if !ok {
		return 0, false
	}
	b, ok := modes[mode]
	return b, ok
}

// Modes reports every addressing mode mnemonic supports, in no particular
// order. The assembler uses it to pick Accumulator over Implied for a
// mnemonic written without an operand.
func Modes(mnemonic string) []Mode {
	modes, ok := reverse[mnemonic]
	if !ok {
		return nil
	}
	out := make([]Mode, 0, len(modes))
	for m := range modes {
		out = append(out, m)
	}
	return out
}

// IsBranch reports whether mnemonic is one of the relative-addressed
// branch instructions (the eight conditional branches plus BRA).
func IsBranch(mnemonic string) bool {
	switch mnemonic {
	case "BPL", "BMI", "BVC", "BVS", "BCC", "BCS", "BNE", "BEQ", "BRA":
		return true
	default:
		return false
	}
}
