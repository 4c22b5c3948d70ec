package cpu

import "fmt"

// Snapshot is a point-in-time copy of a Cpu's register state, independent
// of the Bus it runs over. Where the teacher's debugger rendered this
// directly to a terminal with bubbletea/lipgloss, this core exposes the
// same state as plain data; go-spew's dump format is what callers reach
// for when they need a human-readable trace (see Snapshot.GoString).
type Snapshot struct {
	A, X, Y byte
	SP      byte
	PC      uint16
	Flags   Flags
	Halted  bool
	Cycles  uint64
}

// Snap captures the Cpu's current register state.
func (c *Cpu) Snap() Snapshot {
	return Snapshot{
		A: c.A, X: c.X, Y: c.Y,
		SP: c.SP, PC: c.PC,
		Flags: c.Flags, Halted: c.Halted, Cycles: c.Cycles,
	}
}

// GoString gives Snapshot a %#v form so go-spew (or fmt) renders a single
// dense line instead of walking every struct field.
func (s Snapshot) GoString() string {
	p := s.Flags.Pack()
	return fmt.Sprintf(
		"Snapshot{A:%02X X:%02X Y:%02X SP:%02X PC:%04X P:%02X halted:%v cycles:%d}",
		s.A, s.X, s.Y, s.SP, s.PC, p, s.Halted, s.Cycles,
	)
}
