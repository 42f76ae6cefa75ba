package cpu

// The stack is located in the fixed memory page $0100 to $01FF. The stack
// pointer holds the low 8 bits of the next free slot and wraps within the
// page; over- and underflow are the program's problem, as on the chip.
const stackBase uint16 = 0x0100

func (c *CPU) push(value uint8) error {
	if err := c.mem.Write(stackBase|uint16(c.sp), value); err != nil {
		return err
	}
	c.sp--
	return nil
}

func (c *CPU) pull() (uint8, error) {
	c.sp++
	return c.mem.Read(stackBase | uint16(c.sp))
}

// pushWord pushes the high byte first so the word reads little-endian
// from the stack.
func (c *CPU) pushWord(value uint16) error {
	if err := c.push(uint8(value >> 8)); err != nil {
		return err
	}
	return c.push(uint8(value))
}

func (c *CPU) pullWord() (uint16, error) {
	lo, err := c.pull()
	if err != nil {
		return 0, err
	}
	hi, err := c.pull()
	if err != nil {
		return 0, err
	}
	return word(lo, hi), nil
}
