// Package cpu implements a cycle-accounted, single-stepping 65C02
// interpreter over a flat 64 KiB address space: registers, flags,
// instruction dispatch, and the effective-address arithmetic of every
// addressing mode (spec §4.5). It shares the opcode table with the
// disassembler in this package (spec §4.6).
package cpu

import (
	"acorn65c02/mem"
	"acorn65c02/opcode"
)

// A Cpu is the full, mutable state of one 65C02: registers, flags, a
// pointer to its memory, and a monotonic cycle counter. It has no memory of
// its own; the Bus holds the 64 KiB address space, so a caller can snapshot
// or swap it independently of the registers (spec §5).
type Cpu struct {
	Bus *mem.Bus

	A, X, Y byte
	SP      byte
	PC      uint16
	Flags   Flags

	// Halted becomes true once BRK has run; Step is then a no-op until
	// the next Reset (spec §4.5, §4.7).
	Halted bool

	// Cycles is a monotonic count of cycles consumed since the last
	// Reset; it only ever increases.
	Cycles uint64
}

// New returns a Cpu over bus, in the reset state with PC 0.
func New(bus *mem.Bus) *Cpu {
	c := &Cpu{Bus: bus}
	c.Reset(0)
	return c
}

// Reset initializes registers to their power-on state and sets PC to
// start.
func (c *Cpu) Reset(start uint16) {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.PC = start
	c.Flags = Flags{}
	c.Halted = false
	c.Cycles = 0
}

// Step executes exactly one instruction to completion and returns the
// number of cycles it consumed. It never errors: an unassigned opcode byte
// executes as a one-byte, two-cycle no-op (spec §4.4, §7). Once Halted,
// Step is a no-op returning 0.
func (c *Cpu) Step() byte {
	if c.Halted {
		return 0
	}

	pcStart := c.PC
	opByte := c.Bus.Read(pcStart, false)
	entry, ok := opcode.Lookup(opByte)
	if !ok {
		c.PC = pcStart + 1
		c.Cycles += 2
		return 2
	}

	var lo, hi byte
	if entry.Length >= 2 {
		lo = c.Bus.Read(pcStart+1, false)
	}
	if entry.Length >= 3 {
		hi = c.Bus.Read(pcStart+2, false)
	}

	addr := c.effectiveAddress(pcStart, entry.Mode, lo, hi)
	c.PC = pcStart + uint16(entry.Length)

	exec, ok := instructions[entry.Mnemonic]
	if !ok {
		// Every entry in opcode.Table names a mnemonic this package
		// implements; an unimplemented mnemonic is a programming error,
		// not a runtime condition a caller can hit.
		panic("cpu: no implementation for mnemonic " + entry.Mnemonic)
	}
	exec(c, entry.Mode, addr)

	c.Cycles += uint64(entry.Cycles)
	return entry.Cycles
}

// push writes v at 0x0100|SP and decrements SP, wrapping within the stack
// page as real hardware does.
func (c *Cpu) push(v byte) {
	c.Bus.Write(0x0100|uint16(c.SP), v)
	c.SP--
}

// pull increments SP and reads 0x0100|SP.
func (c *Cpu) pull() byte {
	c.SP++
	return c.Bus.Read(0x0100|uint16(c.SP), false)
}

// readOperand loads the instruction's operand byte: the accumulator itself
// in Accumulator mode, otherwise the byte at addr.
func (c *Cpu) readOperand(mode opcode.Mode, addr uint16) byte {
	if mode == opcode.Accumulator {
		return c.A
	}
	return c.Bus.Read(addr, false)
}

// writeOperand is readOperand's inverse, used by the read-modify-write
// instructions (ASL/LSR/ROL/ROR/INC/DEC/TRB/TSB).
func (c *Cpu) writeOperand(mode opcode.Mode, addr uint16, v byte) {
	if mode == opcode.Accumulator {
		c.A = v
		return
	}
	c.Bus.Write(addr, v)
}

// isOsCallTarget reports whether addr falls in the BBC MOS entry-point
// range this core does not implement (spec §4.5's OS-call skip policy).
func isOsCallTarget(addr uint16) bool {
	return addr >= 0xC000
}
