package asmtok

import (
	"strconv"

	"acorn65c02/asmerr"
)

// ParseNumber evaluates a numeric literal lexeme: "$hex", "%bin" (0/1
// digits only), or a plain decimal run of digits. file/line/col are only
// used to annotate a NumericError.
func ParseNumber(lexeme, file string, line, col int) (uint32, error) {
	if lexeme == "" {
		return 0, &asmerr.NumericError{File: file, Line: line, Col: col, Message: "empty numeric literal"}
	}

	switch lexeme[0] {
	case '$':
		digits := lexeme[1:]
		if digits == "" {
			return 0, &asmerr.NumericError{File: file, Line: line, Col: col, Message: "empty hex literal"}
		}
		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return 0, &asmerr.NumericError{File: file, Line: line, Col: col, Message: "invalid hex literal: " + lexeme}
		}
		return uint32(v), nil

	case '%':
		digits := lexeme[1:]
		if digits == "" {
			return 0, &asmerr.NumericError{File: file, Line: line, Col: col, Message: "empty binary literal"}
		}
		for _, c := range digits {
			if c != '0' && c != '1' {
				return 0, &asmerr.NumericError{File: file, Line: line, Col: col, Message: "invalid binary literal: " + lexeme}
			}
		}
		v, err := strconv.ParseUint(digits, 2, 32)
		if err != nil {
			return 0, &asmerr.NumericError{File: file, Line: line, Col: col, Message: "invalid binary literal: " + lexeme}
		}
		return uint32(v), nil

	default:
		v, err := strconv.ParseUint(lexeme, 10, 32)
		if err != nil {
			return 0, &asmerr.NumericError{File: file, Line: line, Col: col, Message: "invalid decimal literal: " + lexeme}
		}
		return uint32(v), nil
	}
}

// ParseChar evaluates the contents of a char-literal lexeme (the text
// between, but not including, the surrounding single quotes), which is
// either a single raw byte, or a backslash escape in {n,r,t,\,'}. Any other
// escaped character yields the literal character following the backslash,
// per spec §4.1.
func ParseChar(inner, file string, line, col int) (byte, error) {
	switch len(inner) {
	case 1:
		return inner[0], nil
	case 2:
		if inner[0] != '\\' {
			return 0, &asmerr.LexicalError{File: file, Line: line, Col: col, Message: "invalid character literal"}
		}
		switch inner[1] {
		case 'n':
			return '\n', nil
		case 'r':
			return '\r', nil
		case 't':
			return '\t', nil
		case '\\':
			return '\\', nil
		case '\'':
			return '\'', nil
		default:
			return inner[1], nil
		}
	default:
		return 0, &asmerr.LexicalError{File: file, Line: line, Col: col, Message: "invalid character literal"}
	}
}
