package driver

import (
	"github.td.teradata.com/sandbox/emu6502/internal/services/cpu"
	"github.td.teradata.com/sandbox/emu6502/internal/services/display"
	"github.td.teradata.com/sandbox/emu6502/internal/services/instructionSet"
)

const upcoming = 4

// prompt shows the state after an instruction and waits for a command.
func (d *Driver) prompt() (Reason, error) {
	d.status.Update(d.cpu, cpu.Completed)
	d.draw()

	for {
		a, k, err := d.keys.ReadKey()
		if err != nil {
			return Fault, err
		}

		if k != 0 {
			switch k {
			case display.CursorUp:
				d.movePage(-1)
			case display.CursorDown:
				d.movePage(1)
			default:
				d.term.Bell()
				continue
			}
			d.drawPage()
			continue
		}

		switch a {
		case ' ', '\r', '\n', 'n':
			return Running, nil
		case 'c':
			d.step = false
			return Running, nil
		case 'q':
			return Quit, nil
		case 'h':
			d.Help()
		case 'm':
			if d.page < 0 {
				d.page = int(d.cpu.PC() >> 8)
				d.drawPage()
			} else {
				d.page = -1
			}
		case 't':
			if d.history != nil {
				d.history.Draw(d.term)
			} else {
				d.term.Println("Tracing is disabled")
			}
		default:
			d.term.Bell()
		}
	}
}

func (d *Driver) movePage(delta int) {
	if d.page < 0 {
		d.page = int(d.cpu.PC() >> 8)
	}
	pages := (d.mem.Size() + 255) / 256
	d.page = (d.page + delta + pages) % pages
}

func (d *Driver) draw() {
	d.term.Println(d.status.Line())
	for _, line := range d.InstructionsBlock(upcoming) {
		d.term.Println(line)
	}
	if d.page >= 0 {
		d.drawPage()
	}
}

func (d *Driver) drawPage() {
	for _, line := range d.mem.MemoryBlock(uint16(d.page) << 8) {
		d.term.Println(line)
	}
}

// InstructionsBlock disassembles the last instruction and the next length
// instructions, highlighting the one about to run.
func (d *Driver) InstructionsBlock(length int) (lines []string) {
	last := d.cpu.LastInstruction()
	if last.Cycles > 0 {
		line := instructionSet.Disassemble(d.mem.Read, last.Address, 1)
		if len(line) == 1 {
			lines = append(lines, display.Grey+line[0].String()+display.Reset)
		}
	}
	for i, line := range instructionSet.Disassemble(d.mem.Read, d.cpu.PC(), length) {
		if i == 0 {
			lines = append(lines, display.BrightMagenta+line.String()+display.Reset)
		} else {
			lines = append(lines, display.Magenta+line.String()+display.Reset)
		}
	}
	return lines
}
