package cpu

// Instruction semantics, one function per mnemonic, keyed by name in
// instructions below. Descriptions follow
// https://www.nesdev.org/obelisk-6502-guide/reference.html and the 65C02
// additions documented at https://wilsonminesco.com/NMOS-CMOSdifferences/
// and http://6502.org/tutorials/65c02opcodes.html. Unlike the opcode table,
// one function here serves every addressing mode a mnemonic supports; mode
// only matters to a handful of instructions (BIT, the accumulator-vs-memory
// read/write of the shift group) and is passed in for those.

import "acorn65c02/opcode"

type instrFunc func(c *Cpu, mode opcode.Mode, addr uint16)

var instructions = map[string]instrFunc{
	"ADC": opADC, "SBC": opSBC, "AND": opAND, "ORA": opORA, "EOR": opEOR,
	"ASL": opASL, "LSR": opLSR, "ROL": opROL, "ROR": opROR,
	"INC": opINC, "DEC": opDEC, "INX": opINX, "INY": opINY, "DEX": opDEX, "DEY": opDEY,
	"CMP": opCMP, "CPX": opCPX, "CPY": opCPY,
	"BIT": opBIT, "TRB": opTRB, "TSB": opTSB,
	"LDA": opLDA, "LDX": opLDX, "LDY": opLDY,
	"STA": opSTA, "STX": opSTX, "STY": opSTY, "STZ": opSTZ,
	"TAX": opTAX, "TAY": opTAY, "TXA": opTXA, "TYA": opTYA, "TXS": opTXS, "TSX": opTSX,
	"PHA": opPHA, "PLA": opPLA, "PHP": opPHP, "PLP": opPLP,
	"PHX": opPHX, "PLX": opPLX, "PHY": opPHY, "PLY": opPLY,
	"CLC": opCLC, "SEC": opSEC, "CLI": opCLI, "SEI": opSEI, "CLV": opCLV, "CLD": opCLD, "SED": opSED,
	"BPL": opBPL, "BMI": opBMI, "BVC": opBVC, "BVS": opBVS,
	"BCC": opBCC, "BCS": opBCS, "BNE": opBNE, "BEQ": opBEQ, "BRA": opBRA,
	"JMP": opJMP, "JSR": opJSR, "RTS": opRTS, "RTI": opRTI, "BRK": opBRK,
	"NOP": opNOP,
}

// ADC - Add with Carry. A,Z,C,N,V = A+M+C
func opADC(c *Cpu, mode opcode.Mode, addr uint16) {
	c.adc(c.readOperand(mode, addr))
}

// adc is shared by ADC and SBC (SBC(v) == ADC(~v), spec §4.5).
func (c *Cpu) adc(v byte) {
	carry := uint16(0)
	if c.Flags.Carry {
		carry = 1
	}
	sum := uint16(c.A) + uint16(v) + carry
	result := byte(sum)
	c.Flags.Overflow = (^(c.A ^ v) & (c.A ^ result) & 0x80) != 0
	c.Flags.Carry = sum > 0xFF
	c.A = result
	c.Flags.setNZ(c.A)
}

// SBC - Subtract with Carry. A,Z,C,N,V = A-M-(1-C)
func opSBC(c *Cpu, mode opcode.Mode, addr uint16) {
	c.adc(^c.readOperand(mode, addr))
}

// AND - Logical AND. A,Z,N = A&M
func opAND(c *Cpu, mode opcode.Mode, addr uint16) {
	c.A &= c.readOperand(mode, addr)
	c.Flags.setNZ(c.A)
}

// ORA - Logical Inclusive OR. A,Z,N = A|M
func opORA(c *Cpu, mode opcode.Mode, addr uint16) {
	c.A |= c.readOperand(mode, addr)
	c.Flags.setNZ(c.A)
}

// EOR - Exclusive OR. A,Z,N = A^M
func opEOR(c *Cpu, mode opcode.Mode, addr uint16) {
	c.A ^= c.readOperand(mode, addr)
	c.Flags.setNZ(c.A)
}

// ASL - Arithmetic Shift Left. C = bit7 before the shift
func opASL(c *Cpu, mode opcode.Mode, addr uint16) {
	v := c.readOperand(mode, addr)
	c.Flags.Carry = v&0x80 != 0
	v <<= 1
	c.writeOperand(mode, addr, v)
	c.Flags.setNZ(v)
}

// LSR - Logical Shift Right. C = bit0 before the shift
func opLSR(c *Cpu, mode opcode.Mode, addr uint16) {
	v := c.readOperand(mode, addr)
	c.Flags.Carry = v&0x01 != 0
	v >>= 1
	c.writeOperand(mode, addr, v)
	c.Flags.setNZ(v)
}

// ROL - Rotate Left. Carry shifts into bit0; C = bit7 before the rotate
func opROL(c *Cpu, mode opcode.Mode, addr uint16) {
	v := c.readOperand(mode, addr)
	oldCarry := byte(0)
	if c.Flags.Carry {
		oldCarry = 1
	}
	c.Flags.Carry = v&0x80 != 0
	v = (v << 1) | oldCarry
	c.writeOperand(mode, addr, v)
	c.Flags.setNZ(v)
}

// ROR - Rotate Right. Carry shifts into bit7; C = bit0 before the rotate
func opROR(c *Cpu, mode opcode.Mode, addr uint16) {
	v := c.readOperand(mode, addr)
	oldCarry := byte(0)
	if c.Flags.Carry {
		oldCarry = 0x80
	}
	c.Flags.Carry = v&0x01 != 0
	v = (v >> 1) | oldCarry
	c.writeOperand(mode, addr, v)
	c.Flags.setNZ(v)
}

// INC - Increment Memory (or, on the 65C02, the Accumulator)
func opINC(c *Cpu, mode opcode.Mode, addr uint16) {
	v := c.readOperand(mode, addr) + 1
	c.writeOperand(mode, addr, v)
	c.Flags.setNZ(v)
}

// DEC - Decrement Memory (or Accumulator)
func opDEC(c *Cpu, mode opcode.Mode, addr uint16) {
	v := c.readOperand(mode, addr) - 1
	c.writeOperand(mode, addr, v)
	c.Flags.setNZ(v)
}

func opINX(c *Cpu, _ opcode.Mode, _ uint16) { c.X++; c.Flags.setNZ(c.X) }
func opINY(c *Cpu, _ opcode.Mode, _ uint16) { c.Y++; c.Flags.setNZ(c.Y) }
func opDEX(c *Cpu, _ opcode.Mode, _ uint16) { c.X--; c.Flags.setNZ(c.X) }
func opDEY(c *Cpu, _ opcode.Mode, _ uint16) { c.Y--; c.Flags.setNZ(c.Y) }

// compare is shared by CMP/CPX/CPY: C = reg>=v; SetNZ(reg-v).
func compare(f *Flags, reg, v byte) {
	f.Carry = reg >= v
	f.setNZ(reg - v)
}

// CMP - Compare Accumulator
func opCMP(c *Cpu, mode opcode.Mode, addr uint16) { compare(&c.Flags, c.A, c.readOperand(mode, addr)) }

// CPX - Compare X Register
func opCPX(c *Cpu, mode opcode.Mode, addr uint16) { compare(&c.Flags, c.X, c.readOperand(mode, addr)) }

// CPY - Compare Y Register
func opCPY(c *Cpu, mode opcode.Mode, addr uint16) { compare(&c.Flags, c.Y, c.readOperand(mode, addr)) }

// BIT - Bit Test. Z = (A&M)==0 always; N,V from M's bits 7,6 are only set
// for the memory-operand forms, not BIT #imm (spec §4.5).
func opBIT(c *Cpu, mode opcode.Mode, addr uint16) {
	m := c.readOperand(mode, addr)
	c.Flags.Zero = c.A&m == 0
	if mode != opcode.Immediate {
		c.Flags.Negative = m&0x80 != 0
		c.Flags.Overflow = m&0x40 != 0
	}
}

// TRB - Test and Reset Bits. Z = (A&M)==0; M &= ^A
func opTRB(c *Cpu, mode opcode.Mode, addr uint16) {
	m := c.readOperand(mode, addr)
	c.Flags.Zero = c.A&m == 0
	c.writeOperand(mode, addr, m&^c.A)
}

// TSB - Test and Set Bits. Z = (A&M)==0; M |= A
func opTSB(c *Cpu, mode opcode.Mode, addr uint16) {
	m := c.readOperand(mode, addr)
	c.Flags.Zero = c.A&m == 0
	c.writeOperand(mode, addr, m|c.A)
}

// LDA - Load Accumulator
func opLDA(c *Cpu, mode opcode.Mode, addr uint16) {
	c.A = c.readOperand(mode, addr)
	c.Flags.setNZ(c.A)
}

// LDX - Load X Register
func opLDX(c *Cpu, mode opcode.Mode, addr uint16) {
	c.X = c.readOperand(mode, addr)
	c.Flags.setNZ(c.X)
}

// LDY - Load Y Register
func opLDY(c *Cpu, mode opcode.Mode, addr uint16) {
	c.Y = c.readOperand(mode, addr)
	c.Flags.setNZ(c.Y)
}

// STA - Store Accumulator
func opSTA(c *Cpu, mode opcode.Mode, addr uint16) { c.writeOperand(mode, addr, c.A) }

// STX - Store X Register
func opSTX(c *Cpu, mode opcode.Mode, addr uint16) { c.writeOperand(mode, addr, c.X) }

// STY - Store Y Register
func opSTY(c *Cpu, mode opcode.Mode, addr uint16) { c.writeOperand(mode, addr, c.Y) }

// STZ - Store Zero (65C02 addition)
func opSTZ(c *Cpu, mode opcode.Mode, addr uint16) { c.writeOperand(mode, addr, 0) }

func opTAX(c *Cpu, _ opcode.Mode, _ uint16) { c.X = c.A; c.Flags.setNZ(c.X) }
func opTAY(c *Cpu, _ opcode.Mode, _ uint16) { c.Y = c.A; c.Flags.setNZ(c.Y) }
func opTXA(c *Cpu, _ opcode.Mode, _ uint16) { c.A = c.X; c.Flags.setNZ(c.A) }
func opTYA(c *Cpu, _ opcode.Mode, _ uint16) { c.A = c.Y; c.Flags.setNZ(c.A) }
func opTXS(c *Cpu, _ opcode.Mode, _ uint16) { c.SP = c.X }
func opTSX(c *Cpu, _ opcode.Mode, _ uint16) { c.X = c.SP; c.Flags.setNZ(c.X) }

func opPHA(c *Cpu, _ opcode.Mode, _ uint16) { c.push(c.A) }
func opPLA(c *Cpu, _ opcode.Mode, _ uint16) { c.A = c.pull(); c.Flags.setNZ(c.A) }
func opPHX(c *Cpu, _ opcode.Mode, _ uint16) { c.push(c.X) }
func opPLX(c *Cpu, _ opcode.Mode, _ uint16) { c.X = c.pull(); c.Flags.setNZ(c.X) }
func opPHY(c *Cpu, _ opcode.Mode, _ uint16) { c.push(c.Y) }
func opPLY(c *Cpu, _ opcode.Mode, _ uint16) { c.Y = c.pull(); c.Flags.setNZ(c.Y) }

// PHP pushes status with the break and unused bits set, matching BRK's
// convention (spec §4.5 only defines this explicitly for BRK; PHP follows
// the same wire format since both push a P snapshot for later PLP/RTI).
func opPHP(c *Cpu, _ opcode.Mode, _ uint16) { c.push(c.Flags.Pack() | flagBreak) }
func opPLP(c *Cpu, _ opcode.Mode, _ uint16) { c.Flags.unpack(c.pull()) }

func opCLC(c *Cpu, _ opcode.Mode, _ uint16) { c.Flags.Carry = false }
func opSEC(c *Cpu, _ opcode.Mode, _ uint16) { c.Flags.Carry = true }
func opCLI(c *Cpu, _ opcode.Mode, _ uint16) { c.Flags.InterruptDisable = false }
func opSEI(c *Cpu, _ opcode.Mode, _ uint16) { c.Flags.InterruptDisable = true }
func opCLV(c *Cpu, _ opcode.Mode, _ uint16) { c.Flags.Overflow = false }
func opCLD(c *Cpu, _ opcode.Mode, _ uint16) { c.Flags.Decimal = false }
func opSED(c *Cpu, _ opcode.Mode, _ uint16) { c.Flags.Decimal = true }

func branch(c *Cpu, addr uint16, taken bool) {
	if taken {
		c.PC = addr
	}
}

func opBPL(c *Cpu, _ opcode.Mode, addr uint16) { branch(c, addr, !c.Flags.Negative) }
func opBMI(c *Cpu, _ opcode.Mode, addr uint16) { branch(c, addr, c.Flags.Negative) }
func opBVC(c *Cpu, _ opcode.Mode, addr uint16) { branch(c, addr, !c.Flags.Overflow) }
func opBVS(c *Cpu, _ opcode.Mode, addr uint16) { branch(c, addr, c.Flags.Overflow) }
func opBCC(c *Cpu, _ opcode.Mode, addr uint16) { branch(c, addr, !c.Flags.Carry) }
func opBCS(c *Cpu, _ opcode.Mode, addr uint16) { branch(c, addr, c.Flags.Carry) }
func opBNE(c *Cpu, _ opcode.Mode, addr uint16) { branch(c, addr, !c.Flags.Zero) }
func opBEQ(c *Cpu, _ opcode.Mode, addr uint16) { branch(c, addr, c.Flags.Zero) }

// BRA - Branch Always (65C02 addition)
func opBRA(c *Cpu, _ opcode.Mode, addr uint16) { c.PC = addr }

// JMP - Jump. Absolute and Indirect forms to a BBC MOS entry point
// (>=0xC000) are silently skipped (spec §4.5's OS-call skip policy); the
// 65C02 (abs,X) indexed-indirect form is a toolchain addition with no MOS
// analogue and is never skipped.
func opJMP(c *Cpu, mode opcode.Mode, addr uint16) {
	if (mode == opcode.Absolute || mode == opcode.Indirect) && isOsCallTarget(addr) {
		return
	}
	c.PC = addr
}

// JSR - Jump to Subroutine. Pushes PC-1 (the address of the operand's last
// byte), then jumps. Skipped entirely, without pushing, when the target is
// a BBC MOS entry point the core does not implement.
func opJSR(c *Cpu, _ opcode.Mode, addr uint16) {
	if isOsCallTarget(addr) {
		return
	}
	ret := c.PC - 1
	c.push(byte(ret >> 8))
	c.push(byte(ret))
	c.PC = addr
}

// RTS - Return from Subroutine
func opRTS(c *Cpu, _ opcode.Mode, _ uint16) {
	lo := c.pull()
	hi := c.pull()
	c.PC = (uint16(hi)<<8 | uint16(lo)) + 1
}

// RTI - Return from Interrupt
func opRTI(c *Cpu, _ opcode.Mode, _ uint16) {
	c.Flags.unpack(c.pull())
	lo := c.pull()
	hi := c.pull()
	c.PC = uint16(hi)<<8 | uint16(lo)
}

// BRK - Force Interrupt. Pushes PC+1 and P|0x30, sets I, loads PC from the
// IRQ/BRK vector at 0xFFFE, and halts (spec §4.5): this core never resumes
// after BRK on its own.
func opBRK(c *Cpu, _ opcode.Mode, _ uint16) {
	c.PC++
	c.push(byte(c.PC >> 8))
	c.push(byte(c.PC))
	c.push(c.Flags.Pack() | flagBreak)
	c.Flags.InterruptDisable = true
	lo := c.Bus.Read(0xFFFE, false)
	hi := c.Bus.Read(0xFFFF, false)
	c.PC = uint16(hi)<<8 | uint16(lo)
	c.Halted = true
}

// NOP - No Operation
func opNOP(c *Cpu, _ opcode.Mode, _ uint16) {}
