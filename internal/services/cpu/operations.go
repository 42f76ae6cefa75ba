package cpu

import (
	is "github.td.teradata.com/sandbox/emu6502/internal/services/instructionSet"
)

// opFunc applies one operation to the CPU. It returns any cycles charged on
// top of the table's base count, which only branches use.
type opFunc func(c *CPU, o operand) (int, error)

// operations is indexed by instructionSet.Operation. Each entry is
// self-contained; addressing has already been resolved.
var operations = [is.Operations]opFunc{
	is.UND: undefined,
	is.ADC: adc, is.AND: and, is.ASL: asl, is.BIT: bit, is.BRK: brk,
	is.BCC: branch(Carry, false), is.BCS: branch(Carry, true),
	is.BNE: branch(Zero, false), is.BEQ: branch(Zero, true),
	is.BPL: branch(Negative, false), is.BMI: branch(Negative, true),
	is.BVC: branch(Overflow, false), is.BVS: branch(Overflow, true),
	is.CLC: flag(Carry, false), is.CLD: flag(Decimal, false),
	is.CLI: flag(InterruptDisable, false), is.CLV: flag(Overflow, false),
	is.SEC: flag(Carry, true), is.SED: flag(Decimal, true), is.SEI: flag(InterruptDisable, true),
	is.CMP: compare(func(c *CPU) uint8 { return c.a }),
	is.CPX: compare(func(c *CPU) uint8 { return c.x }),
	is.CPY: compare(func(c *CPU) uint8 { return c.y }),
	is.DEC: dec, is.DEX: dex, is.DEY: dey,
	is.EOR: eor,
	is.INC: inc, is.INX: inx, is.INY: iny,
	is.JMP: jmp, is.JSR: jsr,
	is.LDA: lda, is.LDX: ldx, is.LDY: ldy,
	is.LSR: lsr,
	is.NOP: nop,
	is.ORA: ora,
	is.PHA: pha, is.PHP: php, is.PLA: pla, is.PLP: plp,
	is.ROL: rol, is.ROR: ror,
	is.RTI: rti, is.RTS: rts,
	is.SBC: sbc,
	is.STA: sta, is.STX: stx, is.STY: sty,
	is.TAX: tax, is.TAY: tay, is.TSX: tsx, is.TXA: txa, is.TXS: txs, is.TYA: tya,
}

func undefined(_ *CPU, _ operand) (int, error) {
	return 0, nil
}

func nop(_ *CPU, _ operand) (int, error) {
	return 0, nil
}

// Arithmetic. Decimal mode is not emulated; ADC and SBC are always binary.

func addWithCarry(c *CPU, m uint8) {
	sum := uint16(c.a) + uint16(m) + uint16(c.carry())
	r := uint8(sum)
	c.setFlag(Carry, sum > 0xff)
	c.setFlag(Overflow, (c.a^r)&(m^r)&0x80 != 0)
	c.a = r
	c.setZN(r)
}

func adc(c *CPU, o operand) (int, error) {
	m, err := c.load(o)
	if err != nil {
		return 0, err
	}
	addWithCarry(c, m)
	return 0, nil
}

// sbc is adc of the one's complement; carry clear means borrow.
func sbc(c *CPU, o operand) (int, error) {
	m, err := c.load(o)
	if err != nil {
		return 0, err
	}
	addWithCarry(c, ^m)
	return 0, nil
}

// Logical

func and(c *CPU, o operand) (int, error) {
	m, err := c.load(o)
	if err != nil {
		return 0, err
	}
	c.a &= m
	c.setZN(c.a)
	return 0, nil
}

func ora(c *CPU, o operand) (int, error) {
	m, err := c.load(o)
	if err != nil {
		return 0, err
	}
	c.a |= m
	c.setZN(c.a)
	return 0, nil
}

func eor(c *CPU, o operand) (int, error) {
	m, err := c.load(o)
	if err != nil {
		return 0, err
	}
	c.a ^= m
	c.setZN(c.a)
	return 0, nil
}

func bit(c *CPU, o operand) (int, error) {
	m, err := c.load(o)
	if err != nil {
		return 0, err
	}
	c.setFlag(Zero, c.a&m == 0)
	c.setFlag(Negative, m&0x80 != 0)
	c.setFlag(Overflow, m&0x40 != 0)
	return 0, nil
}

// Shifts and rotates work on the accumulator or memory depending on how the
// operand resolved.

func shift(c *CPU, o operand, fn func(v uint8) (result uint8, carry bool)) (int, error) {
	v, err := c.load(o)
	if err != nil {
		return 0, err
	}
	r, carry := fn(v)
	if err = c.store(o, r); err != nil {
		return 0, err
	}
	c.setFlag(Carry, carry)
	c.setZN(r)
	return 0, nil
}

func asl(c *CPU, o operand) (int, error) {
	return shift(c, o, func(v uint8) (uint8, bool) {
		return v << 1, v&0x80 != 0
	})
}

func lsr(c *CPU, o operand) (int, error) {
	return shift(c, o, func(v uint8) (uint8, bool) {
		return v >> 1, v&0x01 != 0
	})
}

func rol(c *CPU, o operand) (int, error) {
	in := c.carry()
	return shift(c, o, func(v uint8) (uint8, bool) {
		return v<<1 | in, v&0x80 != 0
	})
}

func ror(c *CPU, o operand) (int, error) {
	in := c.carry() << 7
	return shift(c, o, func(v uint8) (uint8, bool) {
		return v>>1 | in, v&0x01 != 0
	})
}

// Branches cost one extra cycle when taken and another when the target is
// in a different page.

func branch(f Flag, want bool) opFunc {
	return func(c *CPU, o operand) (int, error) {
		if c.Flag(f) != want {
			return 0, nil
		}
		extra := 1
		if o.crossed {
			extra++
		}
		c.pc = o.address
		return extra, nil
	}
}

func flag(f Flag, value bool) opFunc {
	return func(c *CPU, _ operand) (int, error) {
		c.setFlag(f, value)
		return 0, nil
	}
}

func compare(register func(c *CPU) uint8) opFunc {
	return func(c *CPU, o operand) (int, error) {
		m, err := c.load(o)
		if err != nil {
			return 0, err
		}
		r := register(c)
		c.setFlag(Carry, r >= m)
		c.setZN(r - m)
		return 0, nil
	}
}

// Increments and decrements

func modify(c *CPU, o operand, delta uint8) (int, error) {
	v, err := c.load(o)
	if err != nil {
		return 0, err
	}
	v += delta
	if err = c.store(o, v); err != nil {
		return 0, err
	}
	c.setZN(v)
	return 0, nil
}

func inc(c *CPU, o operand) (int, error) {
	return modify(c, o, 1)
}

func dec(c *CPU, o operand) (int, error) {
	return modify(c, o, 0xff)
}

func inx(c *CPU, _ operand) (int, error) {
	c.x++
	c.setZN(c.x)
	return 0, nil
}

func iny(c *CPU, _ operand) (int, error) {
	c.y++
	c.setZN(c.y)
	return 0, nil
}

func dex(c *CPU, _ operand) (int, error) {
	c.x--
	c.setZN(c.x)
	return 0, nil
}

func dey(c *CPU, _ operand) (int, error) {
	c.y--
	c.setZN(c.y)
	return 0, nil
}

// Jumps and subroutines

func jmp(c *CPU, o operand) (int, error) {
	c.pc = o.address
	return 0, nil
}

// jsr saves the address of the last byte of the JSR instruction.
func jsr(c *CPU, o operand) (int, error) {
	if err := c.pushWord(c.pc - 1); err != nil {
		return 0, err
	}
	c.pc = o.address
	return 0, nil
}

func rts(c *CPU, _ operand) (int, error) {
	pc, err := c.pullWord()
	if err != nil {
		return 0, err
	}
	c.pc = pc + 1
	return 0, nil
}

// Loads and stores

func lda(c *CPU, o operand) (int, error) {
	m, err := c.load(o)
	if err != nil {
		return 0, err
	}
	c.a = m
	c.setZN(m)
	return 0, nil
}

func ldx(c *CPU, o operand) (int, error) {
	m, err := c.load(o)
	if err != nil {
		return 0, err
	}
	c.x = m
	c.setZN(m)
	return 0, nil
}

func ldy(c *CPU, o operand) (int, error) {
	m, err := c.load(o)
	if err != nil {
		return 0, err
	}
	c.y = m
	c.setZN(m)
	return 0, nil
}

func sta(c *CPU, o operand) (int, error) {
	return 0, c.store(o, c.a)
}

func stx(c *CPU, o operand) (int, error) {
	return 0, c.store(o, c.x)
}

func sty(c *CPU, o operand) (int, error) {
	return 0, c.store(o, c.y)
}

// Stack

func pha(c *CPU, _ operand) (int, error) {
	return 0, c.push(c.a)
}

// php pushes the status with the break bit set, as the chip does.
func php(c *CPU, _ operand) (int, error) {
	return 0, c.push(c.p | Break.Mask())
}

func pla(c *CPU, _ operand) (int, error) {
	v, err := c.pull()
	if err != nil {
		return 0, err
	}
	c.a = v
	c.setZN(v)
	return 0, nil
}

func plp(c *CPU, _ operand) (int, error) {
	v, err := c.pull()
	if err != nil {
		return 0, err
	}
	c.setStatus(v)
	return 0, nil
}

// Transfers. TXS is the only one that leaves the flags alone.

func tax(c *CPU, _ operand) (int, error) {
	c.x = c.a
	c.setZN(c.x)
	return 0, nil
}

func tay(c *CPU, _ operand) (int, error) {
	c.y = c.a
	c.setZN(c.y)
	return 0, nil
}

func tsx(c *CPU, _ operand) (int, error) {
	c.x = c.sp
	c.setZN(c.x)
	return 0, nil
}

func txa(c *CPU, _ operand) (int, error) {
	c.a = c.x
	c.setZN(c.a)
	return 0, nil
}

func txs(c *CPU, _ operand) (int, error) {
	c.sp = c.x
	return 0, nil
}

func tya(c *CPU, _ operand) (int, error) {
	c.a = c.y
	c.setZN(c.a)
	return 0, nil
}
