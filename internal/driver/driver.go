package driver

import (
	"context"
	"fmt"

	"github.td.teradata.com/sandbox/emu6502/internal/config"
	"github.td.teradata.com/sandbox/emu6502/internal/log"
	"github.td.teradata.com/sandbox/emu6502/internal/services/cpu"
	"github.td.teradata.com/sandbox/emu6502/internal/services/display"
	"github.td.teradata.com/sandbox/emu6502/internal/services/instructionSet"
	"github.td.teradata.com/sandbox/emu6502/internal/services/memory"
	"github.td.teradata.com/sandbox/emu6502/internal/services/serial"
	"github.td.teradata.com/sandbox/emu6502/internal/services/status"
	"github.td.teradata.com/sandbox/emu6502/internal/services/trace"
)

// Reason says why a run stopped.
type Reason int

const (
	Running Reason = iota
	CycleLimit
	Trapped
	Break
	Cancelled
	Quit
	Fault
)

func (r Reason) String() string {
	switch r {
	case Running:
		return "running"
	case CycleLimit:
		return "cycle limit reached"
	case Trapped:
		return "trapped"
	case Break:
		return "BRK executed"
	case Cancelled:
		return "cancelled"
	case Quit:
		return "quit"
	case Fault:
		return "fault"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// Summary describes a finished run.
type Summary struct {
	Cycles       uint64
	Instructions uint64
	Undefined    uint64
	Reason       Reason
	Registers    cpu.Registers
}

func (s Summary) String() string {
	return fmt.Sprintf("%s after %d cycle(s), %d instruction(s): %s", s.Reason, s.Cycles, s.Instructions, s.Registers)
}

// Mirror receives every completed instruction.
type Mirror interface {
	Send(in cpu.Instruction, regs cpu.Registers) error
	Close() error
}

// KeyReader blocks for a single key press.
type KeyReader interface {
	ReadKey() (ascii int, keyCode int, err error)
}

// Driver owns the memory and CPU and runs programs on them.
type Driver struct {
	cfg     *config.Config
	mem     *memory.Memory
	cpu     *cpu.CPU
	history *trace.History
	mirror  Mirror
	term    *display.Terminal
	keys    KeyReader
	status  *status.Status
	step    bool
	page    int
}

type Option func(d *Driver)

// WithTerminal sends step mode output to t.
func WithTerminal(t *display.Terminal) Option {
	return func(d *Driver) {
		d.term = t
	}
}

// WithKeys reads step mode commands from k instead of the terminal.
func WithKeys(k KeyReader) Option {
	return func(d *Driver) {
		d.keys = k
	}
}

// WithMirror replaces the configured serial port.
func WithMirror(m Mirror) Option {
	return func(d *Driver) {
		d.mirror = m
	}
}

// WithStepping pauses after every instruction and waits for a key.
func WithStepping(step bool) Option {
	return func(d *Driver) {
		d.step = step
	}
}

func New(cfg *config.Config, opts ...Option) (*Driver, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mem, err := memory.New(cfg.Memory.Size)
	if err != nil {
		return nil, err
	}

	d := &Driver{
		cfg:    cfg,
		mem:    mem,
		cpu:    cpu.New(mem, cpu.WithLogger(log.GetDefaultLogger())),
		status: status.NewStatus(),
		page:   cfg.Memory.DumpPage,
	}
	if cfg.Trace.Enabled {
		d.history = trace.New(cfg.Trace.History)
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.term == nil {
		d.term = display.New(cfg.Terminal.Width, cfg.Terminal.Height, cfg.Terminal.Colour)
	}
	if d.keys == nil {
		d.keys = d.term
	}
	if d.mirror == nil && cfg.Serial.PortName != "" {
		m, err := serial.Open(cfg.Serial)
		if err != nil {
			return nil, err
		}
		d.mirror = m
	}
	return d, nil
}

// CPU gives read access to the processor, mainly for tests and reports.
func (d *Driver) CPU() *cpu.CPU {
	return d.cpu
}

func (d *Driver) Memory() *memory.Memory {
	return d.mem
}

// History is nil unless tracing is enabled.
func (d *Driver) History() *trace.History {
	return d.history
}

// LoadRom loads a program image at address 0.
func (d *Driver) LoadRom(filename string) error {
	n, err := d.mem.LoadRom(filename)
	if err != nil {
		return err
	}
	log.Infof("Loaded %d byte(s) from %s", n, filename)
	return nil
}

// Load places image at address 0, returning the number of bytes kept.
func (d *Driver) Load(image []byte) int {
	n := d.mem.Load(image)
	if n < len(image) {
		log.Warnf("Image truncated from %d to %d byte(s)", len(image), n)
	}
	return n
}

// Run resets the CPU and ticks it until a stop condition is met, the
// context is cancelled, or memory faults. Only a fault is returned as an
// error.
func (d *Driver) Run(ctx context.Context) (Summary, error) {
	d.cpu.Reset()
	if d.history != nil {
		d.history.Clear()
	}

	var s Summary
	limit := d.cfg.CPU.MaxCycles
	log.Infof("Running from %s", display.HexAddress(d.cpu.PC()))

	for s.Reason == Running {
		if limit > 0 && s.Cycles >= limit {
			s.Reason = CycleLimit
			break
		}

		r, err := d.cpu.Tick()
		s.Cycles++
		if err != nil {
			s.Reason = Fault
			s.Registers = d.cpu.Registers()
			log.Errorf("Stopped on fault: %v", err)
			return s, err
		}
		if r != cpu.Completed {
			continue
		}

		s.Instructions++
		if s.Reason, err = d.completed(ctx, &s); err != nil {
			s.Reason = Fault
			s.Registers = d.cpu.Registers()
			return s, err
		}
	}

	s.Cycles += d.drain(limit, s.Cycles)
	s.Registers = d.cpu.Registers()
	log.Infof("Stopped: %s", s)
	return s, nil
}

// completed handles everything that happens once an instruction has been
// executed and returns the reason to stop, if any.
func (d *Driver) completed(ctx context.Context, s *Summary) (Reason, error) {
	in := d.cpu.LastInstruction()
	regs := d.cpu.Registers()

	if in.OpCode.Undefined {
		s.Undefined++
		log.Warnf("Undefined opcode %s at %s", display.HexData(in.OpCode.OpCode), display.HexAddress(in.Address))
	}
	if d.history != nil {
		d.history.Add(trace.Entry{Cycle: s.Cycles, Instruction: in, Registers: regs})
	}
	if d.mirror != nil {
		if err := d.mirror.Send(in, regs); err != nil {
			return Fault, err
		}
	}

	switch {
	case ctx.Err() != nil:
		return Cancelled, nil
	case d.cfg.CPU.StopOnBrk && in.OpCode.Operation == instructionSet.BRK:
		return Break, nil
	case d.cfg.CPU.StopOnTrap && regs.PC == in.Address:
		log.Infof("Trapped at %s", display.HexAddress(in.Address))
		return Trapped, nil
	}

	if d.step {
		return d.prompt()
	}
	return Running, nil
}

// drain lets the last instruction use up its remaining cycles, within the
// cycle limit.
func (d *Driver) drain(limit, cycles uint64) uint64 {
	var n uint64
	for d.cpu.Busy() && (limit == 0 || cycles+n < limit) {
		_, _ = d.cpu.Tick()
		n++
	}
	return n
}

// Close releases the serial port, if one is open.
func (d *Driver) Close() error {
	if d.mirror == nil {
		return nil
	}
	return d.mirror.Close()
}
