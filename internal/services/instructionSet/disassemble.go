package instructionSet

import (
	"fmt"
	"strings"
)

// Line is one disassembled instruction.
type Line struct {
	Address uint16
	Bytes   []uint8
	OpCode  OpCode
	Text    string
}

func (l Line) String() string {
	hex := make([]string, len(l.Bytes))
	for i, b := range l.Bytes {
		hex[i] = fmt.Sprintf("%02X", b)
	}
	return fmt.Sprintf("%04X  %-8s  %s", l.Address, strings.Join(hex, " "), l.Text)
}

// Word composes a 16-bit value from its little-endian halves.
func Word(lo, hi uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// Format renders an instruction in assembler syntax. address is where the
// opcode sits, used to resolve branch targets.
func Format(oc OpCode, operand uint16, address uint16) string {
	switch oc.AddrMode {
	case IMP:
		return oc.Name
	case ACC:
		return oc.Name + " A"
	case IMM:
		return fmt.Sprintf("%s #$%02X", oc.Name, operand)
	case ZPG:
		return fmt.Sprintf("%s $%02X", oc.Name, operand)
	case ZPX:
		return fmt.Sprintf("%s $%02X,X", oc.Name, operand)
	case ZPY:
		return fmt.Sprintf("%s $%02X,Y", oc.Name, operand)
	case ABS:
		return fmt.Sprintf("%s $%04X", oc.Name, operand)
	case ABX:
		return fmt.Sprintf("%s $%04X,X", oc.Name, operand)
	case ABY:
		return fmt.Sprintf("%s $%04X,Y", oc.Name, operand)
	case IZX:
		return fmt.Sprintf("%s ($%02X,X)", oc.Name, operand)
	case IZY:
		return fmt.Sprintf("%s ($%02X),Y", oc.Name, operand)
	case IND:
		return fmt.Sprintf("%s ($%04X)", oc.Name, operand)
	case REL:
		target := address + 2 + uint16(int8(uint8(operand)))
		return fmt.Sprintf("%s $%04X", oc.Name, target)
	}
	return oc.Name
}

// Disassemble decodes count instructions starting at address, reading bytes
// through read. It stops early at the first byte read cannot supply. A count
// below one yields no lines.
func Disassemble(read func(address uint16) (uint8, error), address uint16, count int) []Line {
	if count <= 0 {
		return nil
	}
	lines := make([]Line, 0, count)
	for len(lines) < count {
		code, err := read(address)
		if err != nil {
			break
		}
		oc := Lookup(code)
		line := Line{Address: address, OpCode: oc, Bytes: []uint8{code}}

		complete := true
		for i := 1; i < oc.Bytes(); i++ {
			b, err := read(address + uint16(i))
			if err != nil {
				complete = false
				break
			}
			line.Bytes = append(line.Bytes, b)
		}
		if !complete {
			break
		}

		var operand uint16
		switch len(line.Bytes) {
		case 2:
			operand = uint16(line.Bytes[1])
		case 3:
			operand = Word(line.Bytes[1], line.Bytes[2])
		}
		line.Text = Format(oc, operand, address)
		lines = append(lines, line)
		address += uint16(len(line.Bytes))
	}
	return lines
}
