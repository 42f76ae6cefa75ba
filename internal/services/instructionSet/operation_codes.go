package instructionSet

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

const (
	// UndefinedCycles is charged for every opcode with no defined operation.
	UndefinedCycles = 2
	undefinedName   = "???"
)

// OpCode is a single entry in the opcode table.
type OpCode struct {
	Name      string    `yaml:"name"`
	OpCode    uint8     `yaml:"opCode"`
	Operation Operation `yaml:"operation"`
	AddrMode  AddrMode  `yaml:"addrMode"`
	Cycles    uint8     `yaml:"cycles"`
	// PageCross is set when the instruction pays an extra cycle for an
	// indexed effective address landing in a different page than its base.
	PageCross bool `yaml:"pageCross,omitempty"`
	Undefined bool `yaml:"undefined,omitempty"`
}

func (oc OpCode) String() string {
	return fmt.Sprintf("%02X %s %s", oc.OpCode, oc.Name, oc.AddrMode)
}

// Bytes is the encoded length of the instruction, opcode included.
func (oc OpCode) Bytes() int {
	return 1 + oc.AddrMode.OperandBytes()
}

// lookup is built once at startup and never changed afterwards.
var lookup [256]OpCode

func init() {
	for i := range lookup {
		lookup[i] = OpCode{
			Name:      undefinedName,
			OpCode:    uint8(i),
			Operation: UND,
			AddrMode:  IMP,
			Cycles:    UndefinedCycles,
			Undefined: true,
		}
	}
	for _, d := range defineOpCodes() {
		d.Name = d.Operation.String()
		lookup[d.OpCode] = d
	}
}

// Lookup returns the table entry for opcode. Every byte has an entry.
func Lookup(opcode uint8) OpCode {
	return lookup[opcode]
}

// Table returns a copy of all 256 entries, indexed by opcode.
func Table() []OpCode {
	t := make([]OpCode, len(lookup))
	copy(t, lookup[:])
	return t
}

// WriteInstructions writes the opcode table to w as yaml.
func WriteInstructions(w io.Writer, includeUndefined bool) error {
	var entries []OpCode
	for _, oc := range lookup {
		if oc.Undefined && !includeUndefined {
			continue
		}
		entries = append(entries, oc)
	}
	bs, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal opCodes: %w", err)
	}
	if _, err = w.Write(bs); err != nil {
		return fmt.Errorf("failed to write opCodes: %w", err)
	}
	return nil
}

func op(code uint8, operation Operation, mode AddrMode, cycles uint8) OpCode {
	return OpCode{OpCode: code, Operation: operation, AddrMode: mode, Cycles: cycles}
}

// opx is op for instructions charging the page crossing penalty.
func opx(code uint8, operation Operation, mode AddrMode, cycles uint8) OpCode {
	oc := op(code, operation, mode, cycles)
	oc.PageCross = true
	return oc
}

// defineOpCodes lists the documented NMOS 6502 instruction set. Cycle
// counts are the base cost; branch penalties are charged at execution.
func defineOpCodes() []OpCode {
	return []OpCode{
		op(0x69, ADC, IMM, 2), op(0x65, ADC, ZPG, 3), op(0x75, ADC, ZPX, 4), op(0x6D, ADC, ABS, 4),
		opx(0x7D, ADC, ABX, 4), opx(0x79, ADC, ABY, 4), op(0x61, ADC, IZX, 6), opx(0x71, ADC, IZY, 5),

		op(0x29, AND, IMM, 2), op(0x25, AND, ZPG, 3), op(0x35, AND, ZPX, 4), op(0x2D, AND, ABS, 4),
		opx(0x3D, AND, ABX, 4), opx(0x39, AND, ABY, 4), op(0x21, AND, IZX, 6), opx(0x31, AND, IZY, 5),

		op(0x0A, ASL, ACC, 2), op(0x06, ASL, ZPG, 5), op(0x16, ASL, ZPX, 6), op(0x0E, ASL, ABS, 6),
		op(0x1E, ASL, ABX, 7),

		op(0x90, BCC, REL, 2), op(0xB0, BCS, REL, 2), op(0xF0, BEQ, REL, 2), op(0x30, BMI, REL, 2),
		op(0xD0, BNE, REL, 2), op(0x10, BPL, REL, 2), op(0x50, BVC, REL, 2), op(0x70, BVS, REL, 2),

		op(0x24, BIT, ZPG, 3), op(0x2C, BIT, ABS, 4),

		op(0x00, BRK, IMP, 7),

		op(0x18, CLC, IMP, 2), op(0xD8, CLD, IMP, 2), op(0x58, CLI, IMP, 2), op(0xB8, CLV, IMP, 2),

		op(0xC9, CMP, IMM, 2), op(0xC5, CMP, ZPG, 3), op(0xD5, CMP, ZPX, 4), op(0xCD, CMP, ABS, 4),
		opx(0xDD, CMP, ABX, 4), opx(0xD9, CMP, ABY, 4), op(0xC1, CMP, IZX, 6), opx(0xD1, CMP, IZY, 5),

		op(0xE0, CPX, IMM, 2), op(0xE4, CPX, ZPG, 3), op(0xEC, CPX, ABS, 4),
		op(0xC0, CPY, IMM, 2), op(0xC4, CPY, ZPG, 3), op(0xCC, CPY, ABS, 4),

		op(0xC6, DEC, ZPG, 5), op(0xD6, DEC, ZPX, 6), op(0xCE, DEC, ABS, 6), op(0xDE, DEC, ABX, 7),
		op(0xCA, DEX, IMP, 2), op(0x88, DEY, IMP, 2),

		op(0x49, EOR, IMM, 2), op(0x45, EOR, ZPG, 3), op(0x55, EOR, ZPX, 4), op(0x4D, EOR, ABS, 4),
		opx(0x5D, EOR, ABX, 4), opx(0x59, EOR, ABY, 4), op(0x41, EOR, IZX, 6), opx(0x51, EOR, IZY, 5),

		op(0xE6, INC, ZPG, 5), op(0xF6, INC, ZPX, 6), op(0xEE, INC, ABS, 6), op(0xFE, INC, ABX, 7),
		op(0xE8, INX, IMP, 2), op(0xC8, INY, IMP, 2),

		op(0x4C, JMP, ABS, 3), op(0x6C, JMP, IND, 5),
		op(0x20, JSR, ABS, 6),

		op(0xA9, LDA, IMM, 2), op(0xA5, LDA, ZPG, 3), op(0xB5, LDA, ZPX, 4), op(0xAD, LDA, ABS, 4),
		opx(0xBD, LDA, ABX, 4), opx(0xB9, LDA, ABY, 4), op(0xA1, LDA, IZX, 6), opx(0xB1, LDA, IZY, 5),

		op(0xA2, LDX, IMM, 2), op(0xA6, LDX, ZPG, 3), op(0xB6, LDX, ZPY, 4), op(0xAE, LDX, ABS, 4),
		opx(0xBE, LDX, ABY, 4),

		op(0xA0, LDY, IMM, 2), op(0xA4, LDY, ZPG, 3), op(0xB4, LDY, ZPX, 4), op(0xAC, LDY, ABS, 4),
		opx(0xBC, LDY, ABX, 4),

		op(0x4A, LSR, ACC, 2), op(0x46, LSR, ZPG, 5), op(0x56, LSR, ZPX, 6), op(0x4E, LSR, ABS, 6),
		op(0x5E, LSR, ABX, 7),

		op(0xEA, NOP, IMP, 2),

		op(0x09, ORA, IMM, 2), op(0x05, ORA, ZPG, 3), op(0x15, ORA, ZPX, 4), op(0x0D, ORA, ABS, 4),
		opx(0x1D, ORA, ABX, 4), opx(0x19, ORA, ABY, 4), op(0x01, ORA, IZX, 6), opx(0x11, ORA, IZY, 5),

		op(0x48, PHA, IMP, 3), op(0x08, PHP, IMP, 3), op(0x68, PLA, IMP, 4), op(0x28, PLP, IMP, 4),

		op(0x2A, ROL, ACC, 2), op(0x26, ROL, ZPG, 5), op(0x36, ROL, ZPX, 6), op(0x2E, ROL, ABS, 6),
		op(0x3E, ROL, ABX, 7),

		op(0x6A, ROR, ACC, 2), op(0x66, ROR, ZPG, 5), op(0x76, ROR, ZPX, 6), op(0x6E, ROR, ABS, 6),
		op(0x7E, ROR, ABX, 7),

		op(0x40, RTI, IMP, 6), op(0x60, RTS, IMP, 6),

		op(0xE9, SBC, IMM, 2), op(0xE5, SBC, ZPG, 3), op(0xF5, SBC, ZPX, 4), op(0xED, SBC, ABS, 4),
		opx(0xFD, SBC, ABX, 4), opx(0xF9, SBC, ABY, 4), op(0xE1, SBC, IZX, 6), opx(0xF1, SBC, IZY, 5),

		op(0x38, SEC, IMP, 2), op(0xF8, SED, IMP, 2), op(0x78, SEI, IMP, 2),

		op(0x85, STA, ZPG, 3), op(0x95, STA, ZPX, 4), op(0x8D, STA, ABS, 4), op(0x9D, STA, ABX, 5),
		op(0x99, STA, ABY, 5), op(0x81, STA, IZX, 6), op(0x91, STA, IZY, 6),

		op(0x86, STX, ZPG, 3), op(0x96, STX, ZPY, 4), op(0x8E, STX, ABS, 4),
		op(0x84, STY, ZPG, 3), op(0x94, STY, ZPX, 4), op(0x8C, STY, ABS, 4),

		op(0xAA, TAX, IMP, 2), op(0xA8, TAY, IMP, 2), op(0xBA, TSX, IMP, 2),
		op(0x8A, TXA, IMP, 2), op(0x9A, TXS, IMP, 2), op(0x98, TYA, IMP, 2),
	}
}
