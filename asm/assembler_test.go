package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assembleSource(t *testing.T, src string) *Result {
	t.Helper()
	r, err := Assemble(src, "t.s", nil)
	assert.NoError(t, err)
	return r
}

func TestHelloWorldAssembly(t *testing.T) {
	r := assembleSource(t, ".org $1900\nLDA #'A'\nJSR $FFEE\nRTS\n")
	assert.True(t, r.HasOrigin)
	assert.Equal(t, uint16(0x1900), r.Origin)
	_, _, data, ok := r.Flatten()
	assert.True(t, ok)
	assert.Equal(t, []byte{0xA9, 0x41, 0x20, 0xEE, 0xFF, 0x60}, data)
}

func TestForwardReferenceZeroPageSizing(t *testing.T) {
	r := assembleSource(t, ".org $2000\nLDA FOO\nRTS\nFOO = $70\n")
	_, _, data, ok := r.Flatten()
	assert.True(t, ok)
	assert.Equal(t, []byte{0xA5, 0x70, 0x60}, data)
}

func TestBranchEncoding(t *testing.T) {
	r := assembleSource(t, ".org $1000\nloop:\nNOP\nBNE loop\n")
	_, _, data, ok := r.Flatten()
	assert.True(t, ok)
	assert.Equal(t, []byte{0xEA, 0xD0, 0xFD}, data)
}

func TestByteAndWordLittleEndian(t *testing.T) {
	r := assembleSource(t, ".org $3000\n.byte $01,$02\n.word $1234\n")
	_, _, data, ok := r.Flatten()
	assert.True(t, ok)
	assert.Equal(t, []byte{0x01, 0x02, 0x34, 0x12}, data)
}

func TestSizingStableRegardlessOfDefinitionOrder(t *testing.T) {
	before := assembleSource(t, ".org $2000\nK = $70\nLDA K\nRTS\n")
	after := assembleSource(t, ".org $2000\nLDA K\nRTS\nK = $70\n")
	assert.Equal(t, before.Bytes, after.Bytes)
}

func TestBranchOutOfRangeFails(t *testing.T) {
	var src strings.Builder
	src.WriteString(".org $1000\ntarget:\nNOP\n")
	for i := 0; i < 200; i++ {
		src.WriteString("NOP\n")
	}
	src.WriteString("BNE target\n")
	_, err := Assemble(src.String(), "t.s", nil)
	assert.Error(t, err)
}

func TestUndefinedSymbolInEmitPassIsFatal(t *testing.T) {
	_, err := Assemble(".org $1000\nLDA UNDEFINED\n", "t.s", nil)
	assert.Error(t, err)
}

func TestLabelBeforeOrgIsFatal(t *testing.T) {
	_, err := Assemble("start:\n.org $1000\nNOP\n", "t.s", nil)
	assert.Error(t, err)
}

func TestTextDirectiveEmitsAsciiBytes(t *testing.T) {
	r := assembleSource(t, ".org $1000\n.text \"HI\"\n")
	_, _, data, ok := r.Flatten()
	assert.True(t, ok)
	assert.Equal(t, []byte("HI"), data)
}

func TestOutputDirectiveRecordsPath(t *testing.T) {
	r := assembleSource(t, ".org $1000\n.output \"prog.bin\"\nNOP\n")
	assert.Equal(t, "prog.bin", r.Output)
}

func TestIndirectJmpAbsoluteXAssembly(t *testing.T) {
	r := assembleSource(t, ".org $1000\nJMP ($2000,X)\n")
	_, _, data, ok := r.Flatten()
	assert.True(t, ok)
	assert.Equal(t, []byte{0x7C, 0x00, 0x20}, data)
}

func TestZeroPageIndirectAssembly(t *testing.T) {
	r := assembleSource(t, ".org $1000\nADC ($10)\n")
	_, _, data, ok := r.Flatten()
	assert.True(t, ok)
	assert.Equal(t, []byte{0x72, 0x10}, data)
}
