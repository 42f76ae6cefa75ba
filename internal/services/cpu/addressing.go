package cpu

import (
	"fmt"

	"github.td.teradata.com/sandbox/emu6502/internal/services/instructionSet"
)

type operandKind uint8

const (
	implied operandKind = iota
	accumulator
	addressed
)

// operand is the outcome of resolving an addressing mode.
type operand struct {
	kind operandKind

	// address is the effective address. For branches it is the target.
	address uint16

	// raw holds the operand bytes as they appeared after the opcode.
	raw uint16

	// crossed is set when indexing moved the effective address into a
	// different page than the unindexed base, or when a branch target is in
	// a different page than the next instruction.
	crossed bool
}

// word composes a 16-bit value from its little-endian halves. All address
// composition goes through here.
func word(lo, hi uint8) uint16 {
	return instructionSet.Word(lo, hi)
}

func samePage(a, b uint16) bool {
	return a&0xff00 == b&0xff00
}

// fetch reads the byte at PC and advances PC.
func (c *CPU) fetch() (uint8, error) {
	v, err := c.mem.Read(c.pc)
	if err != nil {
		return 0, err
	}
	c.pc++
	return v, nil
}

func (c *CPU) fetchWord() (uint16, error) {
	lo, err := c.fetch()
	if err != nil {
		return 0, err
	}
	hi, err := c.fetch()
	if err != nil {
		return 0, err
	}
	return word(lo, hi), nil
}

// readWord reads a little-endian word from address and address+1.
func (c *CPU) readWord(address uint16) (uint16, error) {
	lo, err := c.mem.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := c.mem.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return word(lo, hi), nil
}

// readZeroPageWord reads a pointer from page zero. The high byte comes from
// the next zero page location, wrapping from $FF to $00.
func (c *CPU) readZeroPageWord(zp uint8) (uint16, error) {
	lo, err := c.mem.Read(uint16(zp))
	if err != nil {
		return 0, err
	}
	hi, err := c.mem.Read(uint16(zp + 1))
	if err != nil {
		return 0, err
	}
	return word(lo, hi), nil
}

// indexed adds an index register to a base address, flagging a page cross.
// A sum past $FFFF wraps around the 64K address space into page zero.
func indexed(base uint16, index uint8) operand {
	address := base + uint16(index)
	return operand{kind: addressed, address: address, raw: base, crossed: !samePage(base, address)}
}

// resolve consumes the operand bytes for mode, leaving PC at the next
// instruction, and returns where the operation should find its data.
func (c *CPU) resolve(mode instructionSet.AddrMode) (operand, error) {
	switch mode {
	case instructionSet.IMP:
		return operand{kind: implied}, nil

	case instructionSet.ACC:
		return operand{kind: accumulator}, nil

	case instructionSet.IMM:
		// the operand byte is read in place by the operation
		o := operand{kind: addressed, address: c.pc}
		v, err := c.fetch()
		o.raw = uint16(v)
		return o, err

	case instructionSet.ZPG, instructionSet.ZPX, instructionSet.ZPY:
		zp, err := c.fetch()
		if err != nil {
			return operand{}, err
		}
		o := operand{kind: addressed, raw: uint16(zp)}
		switch mode {
		case instructionSet.ZPX:
			zp += c.x
		case instructionSet.ZPY:
			zp += c.y
		}
		o.address = uint16(zp)
		return o, nil

	case instructionSet.ABS:
		address, err := c.fetchWord()
		return operand{kind: addressed, address: address, raw: address}, err

	case instructionSet.ABX, instructionSet.ABY:
		base, err := c.fetchWord()
		if err != nil {
			return operand{}, err
		}
		if mode == instructionSet.ABX {
			return indexed(base, c.x), nil
		}
		return indexed(base, c.y), nil

	case instructionSet.IZX:
		zp, err := c.fetch()
		if err != nil {
			return operand{}, err
		}
		address, err := c.readZeroPageWord(zp + c.x)
		return operand{kind: addressed, address: address, raw: uint16(zp)}, err

	case instructionSet.IZY:
		zp, err := c.fetch()
		if err != nil {
			return operand{}, err
		}
		base, err := c.readZeroPageWord(zp)
		if err != nil {
			return operand{}, err
		}
		o := indexed(base, c.y)
		o.raw = uint16(zp)
		return o, nil

	case instructionSet.REL:
		d, err := c.fetch()
		if err != nil {
			return operand{}, err
		}
		target := c.pc + uint16(int8(d))
		return operand{kind: addressed, address: target, raw: uint16(d), crossed: !samePage(c.pc, target)}, nil

	case instructionSet.IND:
		pointer, err := c.fetchWord()
		if err != nil {
			return operand{}, err
		}
		lo, err := c.mem.Read(pointer)
		if err != nil {
			return operand{}, err
		}
		// the high byte is fetched without carrying into the pointer's page
		hi, err := c.mem.Read(pointer&0xff00 | uint16(uint8(pointer)+1))
		if err != nil {
			return operand{}, err
		}
		return operand{kind: addressed, address: word(lo, hi), raw: pointer}, nil
	}

	return operand{}, fmt.Errorf("cpu: unknown addressing mode %d", mode)
}

// load reads the operand's value.
func (c *CPU) load(o operand) (uint8, error) {
	if o.kind == accumulator {
		return c.a, nil
	}
	return c.mem.Read(o.address)
}

// store writes a value to wherever the operand points.
func (c *CPU) store(o operand, value uint8) error {
	if o.kind == accumulator {
		c.a = value
		return nil
	}
	return c.mem.Write(o.address, value)
}
