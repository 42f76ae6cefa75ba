package cpu

import (
	"errors"
	"testing"

	"github.td.teradata.com/sandbox/emu6502/internal/services/instructionSet"
	"github.td.teradata.com/sandbox/emu6502/internal/services/memory"
	"github.td.teradata.com/sandbox/emu6502/internal/test"
)

type quietLogger struct {
	messages []string
}

func (q *quietLogger) Debugf(format string, args ...interface{}) {
	q.messages = append(q.messages, format)
}

// newTestCPU returns a reset CPU over a full 64k memory holding program
// at address 0.
func newTestCPU(t *testing.T, program ...uint8) (*CPU, *memory.Memory) {
	t.Helper()
	mem, err := memory.New(memory.MaxSize)
	test.DemandSuccess(t, err)
	mem.Load(program)
	return New(mem, WithLogger(&quietLogger{})), mem
}

// step runs one whole instruction and returns the number of ticks it took.
func step(t *testing.T, c *CPU) int {
	t.Helper()
	r, err := c.Tick()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, r, Completed)
	n := 1
	for c.Busy() {
		r, err = c.Tick()
		test.DemandSuccess(t, err)
		test.DemandEquality(t, r, InProgress)
		n++
	}
	return n
}

func TestReset(t *testing.T) {
	c, _ := newTestCPU(t)
	c.a, c.x, c.y, c.sp, c.p, c.pc, c.cycles = 1, 2, 3, 4, 0xff, 0x1234, 3
	c.Reset()
	test.ExpectEquality(t, c.Registers(), Registers{PC: 0, SP: 0xff, P: 0x20})
	test.ExpectEquality(t, c.Cycles(), 0)
	test.ExpectEquality(t, c.P()&Reserved, Reserved)
}

func TestFlagRoundTrip(t *testing.T) {
	c, _ := newTestCPU(t)
	for _, f := range Flags {
		for _, v := range []bool{true, false, true} {
			before := c.P()
			c.setFlag(f, v)
			test.ExpectEquality(t, c.Flag(f), v, f)
			test.ExpectEquality(t, c.P()&^f.Mask(), before&^f.Mask(), f)
			test.ExpectEquality(t, c.P()&Reserved, Reserved, f)
		}
	}
}

func TestFlagBits(t *testing.T) {
	expected := map[Flag]uint8{
		Negative: 0x80, Overflow: 0x40, Break: 0x10, Decimal: 0x08,
		InterruptDisable: 0x04, Zero: 0x02, Carry: 0x01,
	}
	for f, mask := range expected {
		test.ExpectEquality(t, f.Mask(), mask, f)
	}
	test.ExpectEquality(t, Flag(42).Mask(), 0)
	test.ExpectEquality(t, StatusString(0xa5), "N·-··I·C")
}

func TestReservedBitSurvivesStatusPull(t *testing.T) {
	// LDA #$00, PHA, PLP
	c, _ := newTestCPU(t, 0xa9, 0x00, 0x48, 0x28)
	step(t, c)
	step(t, c)
	step(t, c)
	test.ExpectEquality(t, c.P(), Reserved)
}

func TestStackRoundTrip(t *testing.T) {
	c, mem := newTestCPU(t)
	sp := c.SP()
	test.DemandSuccess(t, c.push(0x5a))
	test.ExpectEquality(t, c.SP(), sp-1)
	d, _ := mem.Read(0x01ff)
	test.ExpectEquality(t, d, 0x5a)
	v, err := c.pull()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, v, 0x5a)
	test.ExpectEquality(t, c.SP(), sp)
}

func TestStackWraps(t *testing.T) {
	c, _ := newTestCPU(t)
	c.sp = 0
	for i := 0; i < 256; i++ {
		test.DemandSuccess(t, c.push(uint8(i)))
	}
	test.ExpectEquality(t, c.SP(), 0)
	for i := 0; i < 256; i++ {
		v, err := c.pull()
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, v, uint8(255-i))
	}
	test.ExpectEquality(t, c.SP(), 0)
}

func TestWord(t *testing.T) {
	test.ExpectEquality(t, word(0x34, 0x12), 0x1234)
	test.ExpectEquality(t, word(0xff, 0x00), 0x00ff)
	test.ExpectEquality(t, word(0x00, 0xff), 0xff00)
}

func TestResolve(t *testing.T) {
	const origin = 0x0200

	cases := []struct {
		name    string
		mode    instructionSet.AddrMode
		operand []uint8
		x, y    uint8
		data    map[uint16]uint8
		address uint16
		crossed bool
		pc      uint16
	}{
		{name: "zero page", mode: instructionSet.ZPG, operand: []uint8{0x42}, address: 0x0042, pc: origin + 1},
		{name: "zero page x wraps", mode: instructionSet.ZPX, operand: []uint8{0xff}, x: 1, address: 0x0000, pc: origin + 1},
		{name: "zero page y wraps", mode: instructionSet.ZPY, operand: []uint8{0x80}, y: 0xff, address: 0x007f, pc: origin + 1},
		{name: "absolute", mode: instructionSet.ABS, operand: []uint8{0x34, 0x12}, address: 0x1234, pc: origin + 2},
		{name: "absolute x", mode: instructionSet.ABX, operand: []uint8{0x00, 0x12}, x: 0x10, address: 0x1210, pc: origin + 2},
		{name: "absolute x crosses", mode: instructionSet.ABX, operand: []uint8{0xff, 0x00}, x: 1, address: 0x0100, crossed: true, pc: origin + 2},
		{name: "absolute y crosses", mode: instructionSet.ABY, operand: []uint8{0xf0, 0x20}, y: 0x20, address: 0x2110, crossed: true, pc: origin + 2},
		{name: "absolute x wraps", mode: instructionSet.ABX, operand: []uint8{0xff, 0xff}, x: 2, address: 0x0001, crossed: true, pc: origin + 2},
		{name: "indirect x", mode: instructionSet.IZX, operand: []uint8{0x20}, x: 0x04,
			data: map[uint16]uint8{0x24: 0x74, 0x25: 0x20}, address: 0x2074, pc: origin + 1},
		{name: "indirect x wraps pointer", mode: instructionSet.IZX, operand: []uint8{0xfe}, x: 0x01,
			data: map[uint16]uint8{0xff: 0x34, 0x00: 0x12}, address: 0x1234, pc: origin + 1},
		{name: "indirect x wraps index", mode: instructionSet.IZX, operand: []uint8{0xf0}, x: 0x20,
			data: map[uint16]uint8{0x10: 0x00, 0x11: 0x30}, address: 0x3000, pc: origin + 1},
		{name: "indirect y", mode: instructionSet.IZY, operand: []uint8{0x86}, y: 0x10,
			data: map[uint16]uint8{0x86: 0x28, 0x87: 0x40}, address: 0x4038, pc: origin + 1},
		{name: "indirect y crosses", mode: instructionSet.IZY, operand: []uint8{0x86}, y: 0x10,
			data: map[uint16]uint8{0x86: 0xf8, 0x87: 0x40}, address: 0x4108, crossed: true, pc: origin + 1},
		{name: "relative forward", mode: instructionSet.REL, operand: []uint8{0x10}, address: 0x0211, pc: origin + 1},
		{name: "relative backward crosses", mode: instructionSet.REL, operand: []uint8{0xf0}, address: 0x01f1, crossed: true, pc: origin + 1},
		{name: "indirect", mode: instructionSet.IND, operand: []uint8{0x20, 0x01},
			data: map[uint16]uint8{0x0120: 0xfc, 0x0121: 0xba}, address: 0xbafc, pc: origin + 2},
		{name: "indirect page wrap", mode: instructionSet.IND, operand: []uint8{0xff, 0x10},
			data: map[uint16]uint8{0x10ff: 0x00, 0x1000: 0x40, 0x1100: 0x80}, address: 0x4000, pc: origin + 2},
	}

	for _, tc := range cases {
		c, mem := newTestCPU(t)
		for i, v := range tc.operand {
			test.DemandSuccess(t, mem.Write(origin+uint16(i), v))
		}
		for a, v := range tc.data {
			test.DemandSuccess(t, mem.Write(a, v))
		}
		c.pc, c.x, c.y = origin, tc.x, tc.y

		o, err := c.resolve(tc.mode)
		test.DemandSuccess(t, err, tc.name)
		test.ExpectEquality(t, o.kind, addressed, tc.name)
		test.ExpectEquality(t, o.address, tc.address, tc.name)
		test.ExpectEquality(t, o.crossed, tc.crossed, tc.name)
		test.ExpectEquality(t, c.PC(), tc.pc, tc.name)
	}
}

func TestResolveRegisterModes(t *testing.T) {
	c, _ := newTestCPU(t, 0xaa)
	o, err := c.resolve(instructionSet.ACC)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, o.kind, accumulator)
	o, _ = c.resolve(instructionSet.IMP)
	test.ExpectEquality(t, o.kind, implied)
	test.ExpectEquality(t, c.PC(), 0)

	o, _ = c.resolve(instructionSet.IMM)
	test.ExpectEquality(t, o.address, 0)
	test.ExpectEquality(t, c.PC(), 1)
}

func TestORAImmediateCycles(t *testing.T) {
	c, _ := newTestCPU(t, 0x09, 0x00, 0xea)

	r, err := c.Tick()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, Completed)

	base := int(instructionSet.Lookup(0x09).Cycles)
	for i := 0; i < base-1; i++ {
		r, err = c.Tick()
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, r, InProgress, i)
	}

	r, err = c.Tick()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, Completed)
	test.ExpectEquality(t, c.LastInstruction().OpCode.Name, "NOP")

	test.ExpectEquality(t, c.A(), 0)
	test.ExpectSuccess(t, c.Flag(Zero))
	test.ExpectFailure(t, c.Flag(Negative))
}

func TestASLAccumulator(t *testing.T) {
	c, _ := newTestCPU(t, 0x0a)
	c.a = 0x81
	test.ExpectEquality(t, step(t, c), 2)
	test.ExpectSuccess(t, c.Flag(Carry))
	test.ExpectEquality(t, c.A(), 0x02)
	test.ExpectFailure(t, c.Flag(Negative))
	test.ExpectFailure(t, c.Flag(Zero))
}

func TestASLMemory(t *testing.T) {
	c, mem := newTestCPU(t, 0x06, 0x10)
	_ = mem.Write(0x10, 0x40)
	test.ExpectEquality(t, step(t, c), 5)
	d, _ := mem.Read(0x10)
	test.ExpectEquality(t, d, 0x80)
	test.ExpectFailure(t, c.Flag(Carry))
	test.ExpectSuccess(t, c.Flag(Negative))
}

func TestROLUsesPreviousCarry(t *testing.T) {
	c, _ := newTestCPU(t, 0x38, 0x2a, 0x2a)
	c.a = 0x80
	step(t, c) // SEC
	step(t, c) // ROL A
	test.ExpectEquality(t, c.A(), 0x01)
	test.ExpectSuccess(t, c.Flag(Carry))
	step(t, c) // ROL A
	test.ExpectEquality(t, c.A(), 0x03)
	test.ExpectFailure(t, c.Flag(Carry))
}

func TestRORAndLSR(t *testing.T) {
	c, _ := newTestCPU(t, 0x38, 0x6a, 0x4a)
	c.a = 0x01
	step(t, c) // SEC
	step(t, c) // ROR A
	test.ExpectEquality(t, c.A(), 0x80)
	test.ExpectSuccess(t, c.Flag(Carry))
	test.ExpectSuccess(t, c.Flag(Negative))
	step(t, c) // LSR A
	test.ExpectEquality(t, c.A(), 0x40)
	test.ExpectFailure(t, c.Flag(Carry))
	test.ExpectFailure(t, c.Flag(Negative))
}

func TestBIT(t *testing.T) {
	c, mem := newTestCPU(t, 0x24, 0x10)
	_ = mem.Write(0x10, 0xc0)
	c.a = 0x0f
	test.ExpectEquality(t, step(t, c), 3)
	test.ExpectSuccess(t, c.Flag(Zero))
	test.ExpectSuccess(t, c.Flag(Negative))
	test.ExpectSuccess(t, c.Flag(Overflow))
	test.ExpectEquality(t, c.A(), 0x0f)
}

func TestPageCrossPenalty(t *testing.T) {
	// ORA $00FF,X
	c, _ := newTestCPU(t, 0x1d, 0xff, 0x00)
	c.x = 1
	crossed := step(t, c)
	test.ExpectSuccess(t, c.LastInstruction().PageCrossed)

	c, _ = newTestCPU(t, 0x1d, 0xf0, 0x00)
	c.x = 1
	straight := step(t, c)
	test.ExpectFailure(t, c.LastInstruction().PageCrossed)

	test.ExpectEquality(t, straight, 4)
	test.ExpectEquality(t, crossed, straight+1)
}

func TestStoreHasNoPageCrossPenalty(t *testing.T) {
	// STA $00FF,X
	c, mem := newTestCPU(t, 0x9d, 0xff, 0x00)
	c.x, c.a = 1, 0x77
	test.ExpectEquality(t, step(t, c), 5)
	d, _ := mem.Read(0x0100)
	test.ExpectEquality(t, d, 0x77)
}

func TestIndirectYPenalty(t *testing.T) {
	// LDA ($10),Y
	c, mem := newTestCPU(t, 0xb1, 0x10)
	_ = mem.Write(0x10, 0xff)
	_ = mem.Write(0x11, 0x02)
	_ = mem.Write(0x0300, 0x99)
	c.y = 1
	test.ExpectEquality(t, step(t, c), 6)
	test.ExpectEquality(t, c.A(), 0x99)
}

func TestUndefinedOpcode(t *testing.T) {
	c, _ := newTestCPU(t, 0x02, 0xea)
	before := c.Registers()

	ticks := step(t, c)
	test.ExpectEquality(t, ticks, int(instructionSet.Lookup(0x02).Cycles))

	after := c.Registers()
	after.PC = before.PC
	test.ExpectEquality(t, after, before)
	test.ExpectEquality(t, c.PC(), 1)
	test.ExpectSuccess(t, c.LastInstruction().OpCode.Undefined)

	step(t, c)
	test.ExpectFailure(t, c.LastInstruction().OpCode.Undefined)
	test.ExpectEquality(t, c.LastInstruction().OpCode.Operation, instructionSet.NOP)
}

func TestBRK(t *testing.T) {
	c, mem := newTestCPU(t, 0xea, 0x00, 0xff)
	_ = mem.Write(0xfffe, 0x00)
	_ = mem.Write(0xffff, 0x40)
	step(t, c) // NOP

	sp := c.SP()
	test.ExpectEquality(t, step(t, c), 7)

	test.ExpectSuccess(t, c.Flag(Break))
	test.ExpectSuccess(t, c.Flag(InterruptDisable))
	test.ExpectEquality(t, c.SP(), sp-3)
	test.ExpectEquality(t, c.PC(), 0x4000)

	hi, _ := mem.Read(0x0100 | uint16(sp))
	lo, _ := mem.Read(0x0100 | uint16(sp-1))
	p, _ := mem.Read(0x0100 | uint16(sp-2))
	test.ExpectEquality(t, word(lo, hi), 0x0003)
	test.ExpectEquality(t, p&Break.Mask(), Break.Mask())
	test.ExpectEquality(t, p&Reserved, Reserved)
}

func TestBRKThenRTI(t *testing.T) {
	c, mem := newTestCPU(t, 0x00, 0x00, 0xea)
	_ = mem.Write(0xfffe, 0x00)
	_ = mem.Write(0xffff, 0x30)
	_ = mem.Write(0x3000, 0x40) // RTI

	step(t, c)
	test.ExpectEquality(t, step(t, c), 6)
	test.ExpectEquality(t, c.PC(), 0x0002)
	test.ExpectEquality(t, c.SP(), 0xff)
	test.ExpectFailure(t, c.Flag(InterruptDisable))
}

func TestBranches(t *testing.T) {
	cases := []struct {
		name   string
		code   uint8
		offset uint8
		start  uint16
		p      uint8
		pc     uint16
		cycles int
	}{
		{"BPL not taken", 0x10, 0x10, 0x0200, 0x80 | Reserved, 0x0202, 2},
		{"BPL taken", 0x10, 0x10, 0x0200, Reserved, 0x0212, 3},
		{"BMI taken backwards", 0x30, 0xfc, 0x0200, 0x80 | Reserved, 0x01fe, 4},
		{"BNE taken across page", 0xd0, 0x7f, 0x0280, Reserved, 0x0301, 4},
		{"BEQ not taken", 0xf0, 0x7f, 0x0280, Reserved, 0x0282, 2},
		{"BCC taken", 0x90, 0x02, 0x0200, Reserved, 0x0204, 3},
		{"BCS taken", 0xb0, 0x02, 0x0200, 0x01 | Reserved, 0x0204, 3},
		{"BVC taken", 0x50, 0x02, 0x0200, Reserved, 0x0204, 3},
		{"BVS not taken", 0x70, 0x02, 0x0200, Reserved, 0x0202, 2},
	}
	for _, tc := range cases {
		c, mem := newTestCPU(t)
		_ = mem.Write(tc.start, tc.code)
		_ = mem.Write(tc.start+1, tc.offset)
		c.pc, c.p = tc.start, tc.p
		test.ExpectEquality(t, step(t, c), tc.cycles, tc.name)
		test.ExpectEquality(t, c.PC(), tc.pc, tc.name)
	}
}

func TestADC(t *testing.T) {
	cases := []struct {
		a, m    uint8
		carry   bool
		result  uint8
		c, v, n bool
		z       bool
	}{
		{0x01, 0x01, false, 0x02, false, false, false, false},
		{0x01, 0x01, true, 0x03, false, false, false, false},
		{0x7f, 0x01, false, 0x80, false, true, true, false},
		{0xff, 0x01, false, 0x00, true, false, false, true},
		{0x80, 0xff, false, 0x7f, true, true, false, false},
	}
	for i, tc := range cases {
		c, _ := newTestCPU(t, 0x69, tc.m)
		c.a = tc.a
		c.setFlag(Carry, tc.carry)
		step(t, c)
		test.ExpectEquality(t, c.A(), tc.result, i)
		test.ExpectEquality(t, c.Flag(Carry), tc.c, i)
		test.ExpectEquality(t, c.Flag(Overflow), tc.v, i)
		test.ExpectEquality(t, c.Flag(Negative), tc.n, i)
		test.ExpectEquality(t, c.Flag(Zero), tc.z, i)
	}
}

func TestSBC(t *testing.T) {
	cases := []struct {
		a, m   uint8
		carry  bool
		result uint8
		c, v   bool
	}{
		{0x05, 0x03, true, 0x02, true, false},
		{0x05, 0x03, false, 0x01, true, false},
		{0x03, 0x05, true, 0xfe, false, false},
		{0x80, 0x01, true, 0x7f, true, true},
	}
	for i, tc := range cases {
		c, _ := newTestCPU(t, 0xe9, tc.m)
		c.a = tc.a
		c.setFlag(Carry, tc.carry)
		step(t, c)
		test.ExpectEquality(t, c.A(), tc.result, i)
		test.ExpectEquality(t, c.Flag(Carry), tc.c, i)
		test.ExpectEquality(t, c.Flag(Overflow), tc.v, i)
	}
}

func TestCompare(t *testing.T) {
	// CMP #$10, CPX #$20, CPY #$30
	c, _ := newTestCPU(t, 0xc9, 0x10, 0xe0, 0x20, 0xc0, 0x30)
	c.a, c.x, c.y = 0x10, 0x10, 0x40

	step(t, c)
	test.ExpectSuccess(t, c.Flag(Zero))
	test.ExpectSuccess(t, c.Flag(Carry))

	step(t, c)
	test.ExpectFailure(t, c.Flag(Zero))
	test.ExpectFailure(t, c.Flag(Carry))
	test.ExpectSuccess(t, c.Flag(Negative))

	step(t, c)
	test.ExpectSuccess(t, c.Flag(Carry))
	test.ExpectFailure(t, c.Flag(Negative))
}

func TestJSRAndRTS(t *testing.T) {
	// JSR $0010 ; ... $0010: RTS
	c, mem := newTestCPU(t, 0x20, 0x10, 0x00, 0xea)
	_ = mem.Write(0x10, 0x60)

	test.ExpectEquality(t, step(t, c), 6)
	test.ExpectEquality(t, c.PC(), 0x0010)
	test.ExpectEquality(t, c.SP(), 0xfd)
	lo, _ := mem.Read(0x01fe)
	hi, _ := mem.Read(0x01ff)
	test.ExpectEquality(t, word(lo, hi), 0x0002)

	test.ExpectEquality(t, step(t, c), 6)
	test.ExpectEquality(t, c.PC(), 0x0003)
	test.ExpectEquality(t, c.SP(), 0xff)
}

func TestLoadStoreTransfer(t *testing.T) {
	// LDA #$80, TAX, INX, STX $20, LDY $20, DEY, TYA, TXS, TSX
	c, mem := newTestCPU(t, 0xa9, 0x80, 0xaa, 0xe8, 0x86, 0x20, 0xa4, 0x20, 0x88, 0x98, 0x9a, 0xba)
	step(t, c)
	test.ExpectSuccess(t, c.Flag(Negative))
	step(t, c)
	test.ExpectEquality(t, c.X(), 0x80)
	step(t, c)
	test.ExpectEquality(t, c.X(), 0x81)
	step(t, c)
	d, _ := mem.Read(0x20)
	test.ExpectEquality(t, d, 0x81)
	step(t, c)
	test.ExpectEquality(t, c.Y(), 0x81)
	step(t, c)
	test.ExpectEquality(t, c.Y(), 0x80)
	step(t, c)
	test.ExpectEquality(t, c.A(), 0x80)
	step(t, c)
	test.ExpectEquality(t, c.SP(), 0x81)
	step(t, c)
	test.ExpectEquality(t, c.X(), 0x81)
}

func TestIncDecMemory(t *testing.T) {
	// INC $30, DEC $31
	c, mem := newTestCPU(t, 0xe6, 0x30, 0xc6, 0x31)
	_ = mem.Write(0x30, 0xff)
	_ = mem.Write(0x31, 0x01)
	test.ExpectEquality(t, step(t, c), 5)
	d, _ := mem.Read(0x30)
	test.ExpectEquality(t, d, 0x00)
	test.ExpectSuccess(t, c.Flag(Zero))
	step(t, c)
	d, _ = mem.Read(0x31)
	test.ExpectEquality(t, d, 0x00)
	test.ExpectSuccess(t, c.Flag(Zero))
}

func TestPHP(t *testing.T) {
	c, mem := newTestCPU(t, 0x38, 0x08)
	step(t, c)
	test.ExpectEquality(t, step(t, c), 3)
	d, _ := mem.Read(0x01ff)
	test.ExpectEquality(t, d, Reserved|Break.Mask()|Carry.Mask())
	test.ExpectFailure(t, c.Flag(Break))
}

func TestJMPIndirect(t *testing.T) {
	c, mem := newTestCPU(t, 0x6c, 0xff, 0x10)
	_ = mem.Write(0x10ff, 0x34)
	_ = mem.Write(0x1000, 0x12)
	_ = mem.Write(0x1100, 0x56)
	test.ExpectEquality(t, step(t, c), 5)
	test.ExpectEquality(t, c.PC(), 0x1234)
}

func TestCountdownProgram(t *testing.T) {
	// LDX #$05 ; loop: DEX ; BNE loop ; NOP
	c, _ := newTestCPU(t, 0xa2, 0x05, 0xca, 0xd0, 0xfd, 0xea)
	total := step(t, c)
	for c.PC() != 0x0005 {
		total += step(t, c)
	}
	test.ExpectEquality(t, c.X(), 0)
	test.ExpectSuccess(t, c.Flag(Zero))
	// LDX 2, 5 x DEX 2, 4 taken BNE 3, 1 untaken BNE 2
	test.ExpectEquality(t, total, 2+5*2+4*3+2)
}

func TestTickResumesMidInstruction(t *testing.T) {
	c, _ := newTestCPU(t, 0x6d, 0x00, 0x10, 0xea)
	r, _ := c.Tick()
	test.ExpectEquality(t, r, Completed)
	r, _ = c.Tick()
	test.ExpectEquality(t, r, InProgress)
	test.ExpectEquality(t, c.Cycles(), 2)
	test.ExpectSuccess(t, c.Busy())

	r, _ = c.Tick()
	test.ExpectEquality(t, r, InProgress)
	r, _ = c.Tick()
	test.ExpectEquality(t, r, InProgress)
	r, _ = c.Tick()
	test.ExpectEquality(t, r, Completed)
}

func TestAddressFault(t *testing.T) {
	mem, err := memory.New(2000)
	test.DemandSuccess(t, err)
	mem.Load([]uint8{0xad, 0xff, 0xff}) // LDA $FFFF
	c := New(mem, WithLogger(&quietLogger{}))

	_, err = c.Tick()
	test.DemandFailure(t, err)
	var ae *memory.AddressError
	test.ExpectSuccess(t, errors.As(err, &ae))
	test.ExpectEquality(t, ae.Address, 0xffff)
}

func TestFetchFault(t *testing.T) {
	mem, _ := memory.New(4)
	mem.Load([]uint8{0x4c, 0x00, 0x10}) // JMP $1000
	c := New(mem, WithLogger(&quietLogger{}))
	step(t, c)

	_, err := c.Tick()
	test.DemandFailure(t, err)
	var ae *memory.AddressError
	test.ExpectSuccess(t, errors.As(err, &ae))
	test.ExpectEquality(t, ae.Address, 0x1000)
	test.ExpectEquality(t, ae.Op, "read")
}

func TestUndefinedIsLogged(t *testing.T) {
	mem, _ := memory.New(16)
	mem.Load([]uint8{0xff})
	l := &quietLogger{}
	c := New(mem, WithLogger(l))
	_, err := c.Tick()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(l.messages), 1)
}

func TestEveryOperationHasAFunction(t *testing.T) {
	for op := instructionSet.Operation(0); op < instructionSet.Operations; op++ {
		test.ExpectSuccess(t, operations[op] != nil, op)
	}
}

func TestResultString(t *testing.T) {
	test.ExpectEquality(t, Completed.String(), "Completed")
	test.ExpectEquality(t, InProgress.String(), "InProgress")
}
