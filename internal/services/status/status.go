package status

import (
	"fmt"

	"github.td.teradata.com/sandbox/emu6502/internal/services/cpu"
)

// Source is the read-only view of the CPU the status line is drawn from.
type Source interface {
	Registers() cpu.Registers
	Cycles() int
	LastInstruction() cpu.Instruction
}

// Status is the one-line register and timing display used when stepping.
type Status struct {
	flags *Flags
	steps *Steps
	clock *Clock
	regs  cpu.Registers
}

func NewStatus() *Status {
	return &Status{
		flags: NewFlags(),
		steps: NewSteps(),
		clock: NewClock(),
	}
}

// Update takes a snapshot of src after a tick that returned result.
func (s *Status) Update(src Source, result cpu.Result) {
	s.regs = src.Registers()
	s.flags.SetFlags(s.regs.P)
	s.steps.SetStep(src.LastInstruction().Cycles, src.Cycles())
	if result == cpu.Completed {
		s.clock.ClockHigh()
	} else {
		s.clock.ClockLow()
	}
}

func (s *Status) CurrentStep() int {
	return s.steps.CurrentStep()
}

func (s *Status) FlagsBlock() string {
	return s.flags.FlagsBlock()
}

func (s *Status) StepBlock() string {
	return s.steps.StepBlock()
}

func (s *Status) Line() string {
	r := s.regs
	return fmt.Sprintf("%s PC:%04X A:%02X X:%02X Y:%02X SP:%02X |%s|%s",
		s.clock.Block(), r.PC, r.A, r.X, r.Y, r.SP, s.FlagsBlock(), s.StepBlock())
}
