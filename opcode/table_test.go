package opcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKnownOpcodes(t *testing.T) {
	cases := []struct {
		b        byte
		mnemonic string
		mode     Mode
		length   byte
		cycles   byte
	}{
		{0xA9, "LDA", Immediate, 2, 2},
		{0x4C, "JMP", Absolute, 3, 3},
		{0x6C, "JMP", Indirect, 3, 5},
		{0x00, "BRK", Implied, 1, 7},
		{0x0A, "ASL", Accumulator, 1, 2},
		{0x80, "BRA", Relative, 2, 3},
		{0x64, "STZ", ZeroPage, 2, 3},
		{0x72, "ADC", ZeroPageIndirect, 2, 5},
		{0x7C, "JMP", IndirectAbsoluteX, 3, 6},
		{0x89, "BIT", Immediate, 2, 2},
	}
	for _, c := range cases {
		e, ok := Lookup(c.b)
		assert.Truef(t, ok, "opcode $%02X should be assigned", c.b)
		assert.Equal(t, c.mnemonic, e.Mnemonic)
		assert.Equal(t, c.mode, e.Mode)
		assert.Equal(t, c.length, e.Length)
		assert.Equal(t, c.cycles, e.Cycles)
	}
}

func TestLookupIllegalOpcodeIsUnassigned(t *testing.T) {
	// $02 is not used by any 65C02 instruction.
	_, ok := Lookup(0x02)
	assert.False(t, ok)
}

func TestEncodeRoundTrip(t *testing.T) {
	for b, e := range Table {
		got, ok := Encode(e.Mnemonic, e.Mode)
		assert.Truef(t, ok, "%s %s should encode", e.Mnemonic, e.Mode)
		assert.Equalf(t, b, got, "%s %s should round-trip to $%02X", e.Mnemonic, e.Mode, b)
	}
}

func TestLengthMatchesMode(t *testing.T) {
	for b, e := range Table {
		assert.Equalf(t, e.Length, Length(e.Mode), "opcode $%02X (%s) mode/length mismatch", b, e.Mnemonic)
	}
}

func TestIsBranch(t *testing.T) {
	assert.True(t, IsBranch("BEQ"))
	assert.True(t, IsBranch("BRA"))
	assert.False(t, IsBranch("JMP"))
	assert.False(t, IsBranch("LDA"))
}

func TestModesReportsAllAddressingModesForMnemonic(t *testing.T) {
	modes := Modes("LDA")
	assert.Contains(t, modes, Immediate)
	assert.Contains(t, modes, ZeroPageIndirect)
	assert.Contains(t, modes, IndirectY)
}
