package driver

import (
	"github.td.teradata.com/sandbox/emu6502/internal/services/display"
)

var helpKeys = [][2]string{
	{"space", "Next instruction"},
	{"c", "Continue without stepping"},
	{"m", "Toggle memory page"},
	{"↑/↓", "Previous / next memory page"},
	{"t", "Show instruction history"},
	{"h", "Show this page"},
	{"q", "Quit"},
}

// Help lists the keys understood while stepping.
func (d *Driver) Help() {
	t := d.term
	t.Printlnf("%sStep mode%s", display.Yellow, display.Reset)
	for _, k := range helpKeys {
		t.Printlnf("%s%6s%s %s%s", display.Yellow, k[0], display.White, k[1], display.Reset)
	}
}
