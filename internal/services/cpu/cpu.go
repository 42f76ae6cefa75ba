package cpu

import (
	"fmt"

	"github.td.teradata.com/sandbox/emu6502/internal/log"
	"github.td.teradata.com/sandbox/emu6502/internal/services/instructionSet"
)

// Memory is the address space as seen by the CPU. Addresses the memory
// cannot serve are reported as errors.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, value uint8) error
}

// Logger receives diagnostics from the CPU.
type Logger interface {
	Debugf(format string, args ...interface{})
}

// Result reports what a tick did.
type Result int

const (
	// InProgress means the tick only burned a cycle of the current instruction.
	InProgress Result = iota
	// Completed means the tick fetched and executed an instruction.
	Completed
)

func (r Result) String() string {
	switch r {
	case InProgress:
		return "InProgress"
	case Completed:
		return "Completed"
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// Instruction records the most recently executed instruction.
type Instruction struct {
	Address     uint16 // where the opcode was fetched
	OpCode      instructionSet.OpCode
	Operand     uint16 // operand bytes as encoded
	Effective   uint16 // resolved address, or branch target
	Cycles      int    // total cycles charged
	PageCrossed bool
	Branched    bool
}

func (in Instruction) String() string {
	return fmt.Sprintf("%04X %02X %s %-3s %04X %dc", in.Address, in.OpCode.OpCode, in.OpCode.Name, in.OpCode.AddrMode, in.Effective, in.Cycles)
}

// CPU is a single 6502 with its register file and cycle counter.
type CPU struct {
	a  uint8
	x  uint8
	y  uint8
	sp uint8
	p  uint8
	pc uint16

	// cycles is the number of ticks the current instruction still occupies
	cycles int

	mem  Memory
	log  Logger
	last Instruction
}

// Option configures a CPU.
type Option func(c *CPU)

// WithLogger directs diagnostics to l instead of the default logger.
func WithLogger(l Logger) Option {
	return func(c *CPU) {
		c.log = l
	}
}

// New creates a CPU attached to mem, in its reset state.
func New(mem Memory, opts ...Option) *CPU {
	c := &CPU{
		mem: mem,
		log: log.GetDefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Reset()
	return c
}

// Reset puts the registers into their power-on state. PC starts at zero,
// where program images are loaded.
func (c *CPU) Reset() {
	c.a = 0
	c.x = 0
	c.y = 0
	c.sp = 0xff
	c.p = StatusAtReset
	c.pc = 0
	c.cycles = 0
	c.last = Instruction{}
}

// LastInstruction returns the instruction executed by the most recent
// completing tick.
func (c *CPU) LastInstruction() Instruction {
	return c.last
}

// Tick advances the CPU by one clock cycle.
//
// While an instruction is retiring the tick only counts down. Otherwise the
// next instruction is fetched and executed in full, and the counter is set
// to the cycles it costs less the one spent on this tick.
//
// A memory fault aborts the instruction part way through; the CPU state is
// then undefined and the error should be treated as fatal.
func (c *CPU) Tick() (Result, error) {
	if c.cycles > 0 {
		c.cycles--
		return InProgress, nil
	}

	address := c.pc
	code, err := c.fetch()
	if err != nil {
		return Completed, fmt.Errorf("cpu: fetch at %04X: %w", address, err)
	}
	oc := instructionSet.Lookup(code)

	o, err := c.resolve(oc.AddrMode)
	if err != nil {
		return Completed, fmt.Errorf("cpu: %s at %04X: %w", oc, address, err)
	}

	extra, err := operations[oc.Operation](c, o)
	if err != nil {
		return Completed, fmt.Errorf("cpu: %s at %04X: %w", oc, address, err)
	}

	cycles := int(oc.Cycles) + extra
	penalty := oc.PageCross && o.crossed
	if penalty {
		cycles++
	}
	c.cycles = cycles - 1

	branched := oc.Operation.IsBranch() && extra > 0
	c.last = Instruction{
		Address:     address,
		OpCode:      oc,
		Operand:     o.raw,
		Effective:   o.address,
		Cycles:      cycles,
		PageCrossed: penalty || (branched && o.crossed),
		Branched:    branched,
	}
	if oc.Undefined {
		c.log.Debugf("undefined opcode %02X at %04X", code, address)
	}
	return Completed, nil
}
