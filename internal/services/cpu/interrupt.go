package cpu

// Vectors
const (
	NMIVector   uint16 = 0xfffa
	ResetVector uint16 = 0xfffc
	BRKVector   uint16 = 0xfffe // shared with IRQ
)

// brk is the software interrupt. The byte after the opcode is a signature
// byte that is skipped, so the saved PC points two bytes past the BRK.
func brk(c *CPU, _ operand) (int, error) {
	c.pc++
	c.setFlag(Break, true)
	if err := c.pushWord(c.pc); err != nil {
		return 0, err
	}
	if err := c.push(c.p); err != nil {
		return 0, err
	}
	c.setFlag(InterruptDisable, true)
	vector, err := c.readWord(BRKVector)
	if err != nil {
		return 0, err
	}
	c.pc = vector
	return 0, nil
}

func rti(c *CPU, _ operand) (int, error) {
	p, err := c.pull()
	if err != nil {
		return 0, err
	}
	c.setStatus(p)
	pc, err := c.pullWord()
	if err != nil {
		return 0, err
	}
	c.pc = pc
	return 0, nil
}
