package cpu

import "strings"

// Flag names one of the seven condition bits of the status register. The
// reserved bit 5 is not a Flag.
type Flag uint8

const (
	Carry Flag = iota
	Zero
	InterruptDisable
	Decimal
	Break
	Overflow
	Negative

	flagCount
)

const (
	// Reserved is bit 5 of the status register, which always reads as 1.
	Reserved uint8 = 0x20

	// StatusAtReset leaves only the reserved bit set.
	StatusAtReset = Reserved
)

var (
	flagMasks  = [flagCount]uint8{0x01, 0x02, 0x04, 0x08, 0x10, 0x40, 0x80}
	flagLabels = [flagCount]string{"C", "Z", "I", "D", "B", "V", "N"}
)

// Flags lists every flag from bit 7 down to bit 0.
var Flags = []Flag{Negative, Overflow, Break, Decimal, InterruptDisable, Zero, Carry}

// Mask returns the status register bit for the flag. Values outside of the
// declared flags have no bit.
func (f Flag) Mask() uint8 {
	if f < flagCount {
		return flagMasks[f]
	}
	return 0
}

func (f Flag) String() string {
	if f < flagCount {
		return flagLabels[f]
	}
	return "?"
}

// setFlag sets or clears exactly one bit of the status register.
func (c *CPU) setFlag(f Flag, value bool) {
	if value {
		c.p |= f.Mask()
	} else {
		c.p &^= f.Mask()
	}
	c.p |= Reserved
}

// Flag reads one bit of the status register.
func (c *CPU) Flag(f Flag) bool {
	return c.p&f.Mask() != 0
}

// setStatus replaces the status register, keeping the reserved bit.
func (c *CPU) setStatus(value uint8) {
	c.p = value | Reserved
}

// setZN sets the zero and negative flags from a result.
func (c *CPU) setZN(value uint8) {
	c.setFlag(Zero, value == 0)
	c.setFlag(Negative, value&0x80 != 0)
}

func (c *CPU) carry() uint8 {
	return c.p & Carry.Mask()
}

// StatusString renders a status byte as NV-BDIZC, upper case for a set bit
// and "·" for a clear one.
func StatusString(p uint8) string {
	var b strings.Builder
	for i, label := range "NV-BDIZC" {
		if p&(0x80>>uint(i)) != 0 {
			b.WriteRune(label)
		} else {
			b.WriteRune('·')
		}
	}
	return b.String()
}
