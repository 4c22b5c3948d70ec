package asm

import "strings"

// Symbols is a case-insensitive identifier -> 16-bit-ish value table. Labels
// and constants live in the same namespace (spec §3); the running program
// counter is not stored here.
type Symbols struct {
	m map[string]uint32
}

// NewSymbols returns an empty table.
func NewSymbols() *Symbols {
	return &Symbols{m: map[string]uint32{}}
}

// Clone returns a table pre-loaded with a copy of s's entries; changes to
// the copy leave s untouched. The assembler's passes do not use it: each
// pass reads the previous pass's table directly and never writes to it.
func (s *Symbols) Clone() *Symbols {
	out := NewSymbols()
	for k, v := range s.m {
		out.m[k] = v
	}
	return out
}

func key(name string) string { return strings.ToUpper(name) }

// Get reports the value bound to name, if any.
func (s *Symbols) Get(name string) (uint32, bool) {
	v, ok := s.m[key(name)]
	return v, ok
}

// Set binds name to v, overwriting any existing binding.
func (s *Symbols) Set(name string, v uint32) {
	s.m[key(name)] = v
}
