package asmtok

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumberHexBinDecimal(t *testing.T) {
	cases := []struct {
		lexeme string
		want   uint32
	}{
		{"$00", 0}, {"$FF", 0xFF}, {"$c000", 0xc000},
		{"%00000001", 1}, {"%10000000", 0x80},
		{"0", 0}, {"255", 255}, {"65535", 65535},
	}
	for _, c := range cases {
		got, err := ParseNumber(c.lexeme, "t.s", 1, 1)
		assert.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestParseNumberRejectsMalformedLiterals(t *testing.T) {
	for _, lexeme := range []string{"$", "%", "%012", "$zz", ""} {
		_, err := ParseNumber(lexeme, "t.s", 1, 1)
		assert.Error(t, err)
	}
}

func TestParseCharLiteralAndEscapes(t *testing.T) {
	cases := []struct {
		inner string
		want  byte
	}{
		{"A", 'A'}, {"\\n", '\n'}, {"\\r", '\r'}, {"\\t", '\t'},
		{"\\\\", '\\'}, {"\\'", '\''}, {"\\x", 'x'},
	}
	for _, c := range cases {
		got, err := ParseChar(c.inner, "t.s", 1, 1)
		assert.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestParseCharRejectsEmptyOrOverlong(t *testing.T) {
	for _, inner := range []string{"", "abc"} {
		_, err := ParseChar(inner, "t.s", 1, 1)
		assert.Error(t, err)
	}
}
