package cpu

import "acorn65c02/opcode"

// effectiveAddress computes the address an instruction's operand refers to
// (spec §4.5). pcStart is the address of the opcode byte itself; lo/hi are
// the 0, 1, or 2 operand bytes already fetched from pcStart+1 and
// pcStart+2. Implied and Accumulator modes don't use the result.
func (c *Cpu) effectiveAddress(pcStart uint16, mode opcode.Mode, lo, hi byte) uint16 {
	switch mode {
	case opcode.Immediate:
		return pcStart + 1

	case opcode.ZeroPage:
		return uint16(lo)
	case opcode.ZeroPageX:
		return uint16(lo + c.X)
	case opcode.ZeroPageY:
		return uint16(lo + c.Y)

	case opcode.Absolute:
		return uint16(lo) | uint16(hi)<<8
	case opcode.AbsoluteX:
		return (uint16(lo) | uint16(hi)<<8) + uint16(c.X)
	case opcode.AbsoluteY:
		return (uint16(lo) | uint16(hi)<<8) + uint16(c.Y)

	case opcode.Indirect:
		// NMOS page-wrap bug, preserved deliberately (spec §9): the high
		// byte is re-read from the same page as the low byte rather than
		// following a real 16-bit carry across the page boundary.
		ptr := uint16(lo) | uint16(hi)<<8
		loB := c.Bus.Read(ptr, false)
		hiB := c.Bus.Read((ptr&0xFF00)|((ptr+1)&0x00FF), false)
		return uint16(loB) | uint16(hiB)<<8

	case opcode.IndirectAbsoluteX:
		// JMP (abs,X): the 65C02 addition indexes before the indirection,
		// so the page-wrap quirk above does not apply here.
		ptr := (uint16(lo) | uint16(hi)<<8) + uint16(c.X)
		loB := c.Bus.Read(ptr, false)
		hiB := c.Bus.Read(ptr+1, false)
		return uint16(loB) | uint16(hiB)<<8

	case opcode.IndirectX:
		zp := lo + c.X
		loB := c.Bus.Read(uint16(zp), false)
		hiB := c.Bus.Read(uint16(zp+1), false)
		return uint16(loB) | uint16(hiB)<<8

	case opcode.IndirectY:
		loB := c.Bus.Read(uint16(lo), false)
		hiB := c.Bus.Read(uint16(lo+1), false)
		return (uint16(loB) | uint16(hiB)<<8) + uint16(c.Y)

	case opcode.ZeroPageIndirect:
		loB := c.Bus.Read(uint16(lo), false)
		hiB := c.Bus.Read(uint16(lo+1), false)
		return uint16(loB) | uint16(hiB)<<8

	case opcode.Relative:
		return uint16(int32(pcStart) + 2 + int32(int8(lo)))

	default: // Implied, Accumulator
		return 0
	}
}
