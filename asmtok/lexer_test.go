package asmtok

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexerBasicInstructionLine(t *testing.T) {
	l := New("LDA #$01,X\n", "t.s", nil)
	toks, err := l.All()
	assert.NoError(t, err)
	assert.Equal(t, []Kind{Identifier, Hash, Number, Comma, Identifier, EOL, EOF}, kinds(toks))
	assert.Equal(t, "LDA", toks[0].Lexeme)
	assert.Equal(t, "$01", toks[2].Lexeme)
}

func TestLexerSkipsCommentsAndWhitespace(t *testing.T) {
	l := New("  NOP   ; a comment\n", "t.s", nil)
	toks, err := l.All()
	assert.NoError(t, err)
	assert.Equal(t, []Kind{Identifier, EOL, EOF}, kinds(toks))
}

func TestLexerLabelAndDottedLocal(t *testing.T) {
	l := New("loop:\n.loop:\nBNE loop.retry\n", "t.s", nil)
	toks, err := l.All()
	assert.NoError(t, err)
	assert.Equal(t, Identifier, toks[0].Kind)
	assert.Equal(t, "loop", toks[0].Lexeme)
	assert.Equal(t, Colon, toks[1].Kind)
	assert.Equal(t, EOL, toks[2].Kind)
	assert.Equal(t, Dot, toks[3].Kind)
	assert.Equal(t, Identifier, toks[4].Kind)
	assert.Equal(t, "loop", toks[4].Lexeme)
}

func TestLexerStringAndCharLiterals(t *testing.T) {
	l := New(".text \"hi\"\nLDA '\\n'\n", "t.s", nil)
	toks, err := l.All()
	assert.NoError(t, err)
	assert.Equal(t, String, toks[2].Kind)
	assert.Equal(t, "hi", toks[2].Lexeme)
}

func TestLexerCharLiteralEscapedQuote(t *testing.T) {
	l := New("LDA '\\''\n", "t.s", nil)
	toks, err := l.All()
	assert.NoError(t, err)
	assert.Equal(t, []Kind{Identifier, Char, EOL, EOF}, kinds(toks))
	assert.Equal(t, "\\'", toks[1].Lexeme)
}

func TestLexerUnterminatedStringIsError(t *testing.T) {
	l := New(".text \"oops\n", "t.s", nil)
	_, err := l.All()
	assert.Error(t, err)
}

func TestLexerUnexpectedCharacterIsError(t *testing.T) {
	l := New("LDA $01 & $02\n", "t.s", nil)
	_, err := l.All()
	assert.Error(t, err)
}

func TestLexerTracksLineAndColumn(t *testing.T) {
	l := New("LDA #$01\nSTA $00\n", "t.s", nil)
	toks, err := l.All()
	assert.NoError(t, err)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 1, toks[0].Col)

	// STA is on line 2
	var sta Token
	for _, tk := range toks {
		if tk.Lexeme == "STA" {
			sta = tk
		}
	}
	assert.Equal(t, 2, sta.Line)
}
