package cpu

// Flags holds the 65C02 status bits as booleans rather than a packed byte;
// individual instructions read and set them directly, and Pack/unpack
// convert to and from the P register's wire format only at the stack
// boundary (PHP/PLP/RTI/BRK).
//
// 7654 3210
// NV1B DIZC
type Flags struct {
	Negative         bool
	Overflow         bool
	Decimal          bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

const (
	flagCarry    = 0x01
	flagZero     = 0x02
	flagIRQ      = 0x04
	flagDecimal  = 0x08
	flagBreak    = 0x10
	flagUnused   = 0x20
	flagOverflow = 0x40
	flagNegative = 0x80
)

// Pack returns the P register byte for these flags. Bit 5 (unused) is
// always set, per spec; bit 4 (B) is left clear here and supplied by
// callers that push a status byte (BRK ORs in 0x30).
func (f Flags) Pack() byte {
	var p byte = flagUnused
	if f.Carry {
		p |= flagCarry
	}
	if f.Zero {
		p |= flagZero
	}
	if f.InterruptDisable {
		p |= flagIRQ
	}
	if f.Decimal {
		p |= flagDecimal
	}
	if f.Overflow {
		p |= flagOverflow
	}
	if f.Negative {
		p |= flagNegative
	}
	return p
}

// unpack loads flags from a P register byte, as read back by PLP/RTI.
func (f *Flags) unpack(p byte) {
	f.Carry = p&flagCarry != 0
	f.Zero = p&flagZero != 0
	f.InterruptDisable = p&flagIRQ != 0
	f.Decimal = p&flagDecimal != 0
	f.Overflow = p&flagOverflow != 0
	f.Negative = p&flagNegative != 0
}

// setNZ sets Negative and Zero from v, as almost every instruction that
// touches a register or memory operand does.
func (f *Flags) setNZ(v byte) {
	f.Negative = v&0x80 != 0
	f.Zero = v == 0
}
