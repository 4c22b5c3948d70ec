package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"acorn65c02/mem"
)

func newCpu() *Cpu {
	return New(mem.NewBus())
}

func TestStepLoadImmediate(t *testing.T) {
	c := newCpu()
	c.Bus.Load(0x1900, []byte{0xA9, 0x41}) // LDA #'A'
	c.Reset(0x1900)
	cycles := c.Step()
	assert.Equal(t, byte(0x41), c.A)
	assert.Equal(t, byte(2), cycles)
	assert.Equal(t, uint16(0x1902), c.PC)
	assert.False(t, c.Flags.Zero)
	assert.False(t, c.Flags.Negative)
}

// JSR to a BBC MOS entry point is skipped entirely: PC advances past the
// instruction and nothing is pushed.
func TestStepJsrToOsVectorIsSkipped(t *testing.T) {
	c := newCpu()
	c.Bus.Load(0x1900, []byte{0x20, 0xEE, 0xFF, 0x60}) // JSR $FFEE ; RTS
	c.Reset(0x1900)
	sp := c.SP
	c.Step()
	assert.Equal(t, uint16(0x1903), c.PC)
	assert.Equal(t, sp, c.SP)
}

func TestStepJsrRtsRoundTrip(t *testing.T) {
	c := newCpu()
	// JSR $1910 ; BRK
	c.Bus.Load(0x1900, []byte{0x20, 0x10, 0x19, 0x00})
	// at $1910: LDX #1 ; RTS
	c.Bus.Load(0x1910, []byte{0xA2, 0x01, 0x60})
	c.Bus.Load(0xFFFE, []byte{0x00, 0x00})
	c.Reset(0x1900)
	c.Step() // JSR
	assert.Equal(t, uint16(0x1910), c.PC)
	c.Step() // LDX #1
	c.Step() // RTS
	assert.Equal(t, uint16(0x1903), c.PC)
	assert.Equal(t, byte(1), c.X)
}

// BRK halts the core; further Step calls are no-ops.
func TestBrkHalts(t *testing.T) {
	c := newCpu()
	c.Bus.Load(0x1900, []byte{0x00}) // BRK
	c.Bus.Load(0xFFFE, []byte{0x00, 0x02})
	c.Reset(0x1900)
	c.Step()
	assert.True(t, c.Halted)
	pc := c.PC
	cycles := c.Step()
	assert.Equal(t, byte(0), cycles)
	assert.Equal(t, pc, c.PC)
}

// Reset brings the Cpu back to its power-on register state regardless of
// what Step has done to it, and running the same program again from the
// same start address reaches the same end state.
func TestResetIsIdempotent(t *testing.T) {
	c := newCpu()
	c.Bus.Load(0x1900, []byte{0xA9, 0x05, 0xA9, 0x06, 0x00})
	c.Bus.Load(0xFFFE, []byte{0x00, 0x20})

	run := func() Snapshot {
		c.Reset(0x1900)
		for !c.Halted {
			c.Step()
		}
		return c.Snap()
	}

	first := run()
	second := run()
	assert.Equal(t, first, second)
	assert.Equal(t, byte(6), first.A)
}

func TestUnassignedOpcodeIsTwoCycleNop(t *testing.T) {
	c := newCpu()
	c.Bus.Load(0x1900, []byte{0x02}) // unassigned
	c.Reset(0x1900)
	cycles := c.Step()
	assert.Equal(t, byte(2), cycles)
	assert.Equal(t, uint16(0x1901), c.PC)
}

func TestIndirectJmpPageWrapBug(t *testing.T) {
	c := newCpu()
	c.Bus.Load(0x1900, []byte{0x6C, 0xFF, 0x20}) // JMP ($20FF)
	c.Bus.Write(0x20FF, 0x00)
	c.Bus.Write(0x2000, 0x30) // wraps within page 0x20, not 0x2100
	c.Bus.Write(0x2100, 0x99)
	c.Reset(0x1900)
	c.Step()
	assert.Equal(t, uint16(0x3000), c.PC)
}

func TestBranchTaken(t *testing.T) {
	c := newCpu()
	c.Bus.Load(0x1000, []byte{0xA9, 0x00, 0xF0, 0x02, 0xA9, 0x01, 0xA9, 0x02})
	c.Reset(0x1000)
	c.Step() // LDA #0 -> Z set
	c.Step() // BEQ +2 -> skip the LDA #1
	assert.Equal(t, uint16(0x1006), c.PC)
	c.Step() // LDA #2
	assert.Equal(t, byte(2), c.A)
}

// ADC's overflow flag follows the signed-overflow rule for every carry-in,
// accumulator and operand combination: set exactly when the operands share
// a sign and the result's sign differs from theirs.
func TestAdcOverflowEnumeration(t *testing.T) {
	c := newCpu()
	for a := 0; a < 256; a++ {
		for v := 0; v < 256; v++ {
			for _, carryIn := range []bool{false, true} {
				c.A = byte(a)
				c.Flags.Carry = carryIn
				c.adc(byte(v))

				carry := 0
				if carryIn {
					carry = 1
				}
				want := int8(a) + int8(v) + int8(carry)
				wantOverflow := (a^v)&0x80 == 0 && (a^int(want))&0x80 != 0
				assert.Equal(t, wantOverflow, c.Flags.Overflow, "a=%d v=%d carryIn=%v", a, v, carryIn)
			}
		}
	}
}

func TestSbcBorrowsWhenCarryClear(t *testing.T) {
	c := newCpu()
	c.A = 0x05
	c.Flags.Carry = false // borrow in
	opSBC(c, 0, 0)
	// SBC(v) == ADC(^v); with M fetched as 0 via readOperand on mode 0
	// (Implied), this only exercises the shared adc() path's borrow wiring:
	// 5 - 0 - 1 = 4, with no borrow out.
	assert.Equal(t, byte(0x04), c.A)
	assert.True(t, c.Flags.Carry)
}

func TestPushPullRoundTrip(t *testing.T) {
	c := newCpu()
	c.Reset(0)
	c.push(0x42)
	c.push(0x43)
	assert.Equal(t, byte(0x43), c.pull())
	assert.Equal(t, byte(0x42), c.pull())
}

func TestStzClearsMemory(t *testing.T) {
	c := newCpu()
	c.Bus.Write(0x10, 0xFF)
	c.Bus.Load(0x1000, []byte{0x64, 0x10}) // STZ $10
	c.Reset(0x1000)
	c.Step()
	assert.Equal(t, byte(0), c.Bus.Read(0x10, false))
}

func TestBitImmediateDoesNotTouchNV(t *testing.T) {
	c := newCpu()
	c.Bus.Load(0x1000, []byte{0x89, 0x00}) // BIT #$00
	c.Reset(0x1000)
	c.Flags.Negative = true
	c.Flags.Overflow = true
	c.A = 0x01
	c.Step()
	assert.True(t, c.Flags.Zero)
	assert.True(t, c.Flags.Negative) // unchanged by the immediate form
	assert.True(t, c.Flags.Overflow)
}
