package cpu

import "fmt"

// Registers is a snapshot of the register file.
type Registers struct {
	PC uint16 // Program counter
	SP uint8  // Stack pointer
	P  uint8  // Processor status register
	A  uint8  // Accumulator register
	X  uint8  // X index register
	Y  uint8  // Y index register
}

func (r Registers) String() string {
	return fmt.Sprintf("PC:%04X A:%02X X:%02X Y:%02X SP:%02X P:%02X(%s)",
		r.PC, r.A, r.X, r.Y, r.SP, r.P, StatusString(r.P))
}

// Registers returns a copy of the current register file.
func (c *CPU) Registers() Registers {
	return Registers{PC: c.pc, SP: c.sp, P: c.p, A: c.a, X: c.x, Y: c.y}
}

func (c *CPU) A() uint8 {
	return c.a
}
func (c *CPU) X() uint8 {
	return c.x
}
func (c *CPU) Y() uint8 {
	return c.y
}
func (c *CPU) SP() uint8 {
	return c.sp
}
func (c *CPU) P() uint8 {
	return c.p
}
func (c *CPU) PC() uint16 {
	return c.pc
}

// Cycles returns the number of cycles the current instruction still needs
// before the next fetch.
func (c *CPU) Cycles() int {
	return c.cycles
}

// Busy is true while an instruction is still retiring.
func (c *CPU) Busy() bool {
	return c.cycles > 0
}
