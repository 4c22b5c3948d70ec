package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func readerOver(data map[uint16]byte) func(uint16) byte {
	return func(addr uint16) byte { return data[addr] }
}

func TestDisassembleImmediate(t *testing.T) {
	text, next := Disassemble(0x1900, readerOver(map[uint16]byte{0x1900: 0xA9, 0x1901: 0x41}))
	assert.Equal(t, "LDA #$41", text)
	assert.Equal(t, uint16(0x1902), next)
}

func TestDisassembleJsrAnnotatesOsVector(t *testing.T) {
	text, next := Disassemble(0x1900, readerOver(map[uint16]byte{0x1900: 0x20, 0x1901: 0xEE, 0x1902: 0xFF}))
	assert.Equal(t, "JSR $FFEE  [OSWRCH]", text)
	assert.Equal(t, uint16(0x1903), next)
}

func TestDisassembleJmpUnknownOsAddressGetsGenericTag(t *testing.T) {
	text, _ := Disassemble(0x1900, readerOver(map[uint16]byte{0x1900: 0x4C, 0x1901: 0x34, 0x1902: 0xC1}))
	assert.Equal(t, "JMP $C134  [OS]", text)
}

func TestDisassembleIllegalOpcode(t *testing.T) {
	text, next := Disassemble(0x1900, readerOver(map[uint16]byte{0x1900: 0x02}))
	assert.Equal(t, "???  ($02)", text)
	assert.Equal(t, uint16(0x1901), next)
}

func TestDisassembleRelativeBranch(t *testing.T) {
	text, next := Disassemble(0x1000, readerOver(map[uint16]byte{0x1000: 0xD0, 0x1001: 0xFD}))
	assert.Equal(t, "BNE $0FFF", text)
	assert.Equal(t, uint16(0x1002), next)
}

func TestDisassembleIndirectAbsoluteX(t *testing.T) {
	text, _ := Disassemble(0x1000, readerOver(map[uint16]byte{0x1000: 0x7C, 0x1001: 0x00, 0x1002: 0x20}))
	assert.Equal(t, "JMP ($2000,X)", text)
}
