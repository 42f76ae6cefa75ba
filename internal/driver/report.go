package driver

import (
	"io"

	"github.td.teradata.com/sandbox/emu6502/internal/services/cpu"
	"github.td.teradata.com/sandbox/emu6502/internal/services/display"
)

// Report writes the final machine state to w: registers, flags, the code
// around PC, the configured memory page and the instruction history.
func (d *Driver) Report(w io.Writer) {
	cfg := d.cfg.Terminal
	t := display.NewWriter(w, cfg.Width, cfg.Height, cfg.Colour && d.term.Colour())

	regs := d.cpu.Registers()
	d.status.Update(d.cpu, cpu.Completed)

	if rom := d.mem.Filename(); rom != "" {
		t.Printlnf("%sRom%s       %s", display.Yellow, display.Reset, rom)
	}
	t.Printlnf("%sRegisters%s %s", display.Yellow, display.Reset, regs)
	t.Printlnf("%sFlags%s    %s", display.Yellow, display.Reset, d.status.FlagsBlock())
	for _, line := range d.InstructionsBlock(upcoming) {
		t.Println(line)
	}
	if d.page >= 0 {
		for _, line := range d.mem.MemoryBlock(uint16(d.page) << 8) {
			t.Println(line)
		}
	}
	if d.history != nil {
		d.history.Draw(t)
	}
}
