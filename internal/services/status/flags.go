package status

import (
	"fmt"

	"github.td.teradata.com/sandbox/emu6502/internal/services/cpu"
	"github.td.teradata.com/sandbox/emu6502/internal/services/display"
)

// Flags renders the status register, colouring each flag by whether it
// changed since the previous render.
type Flags struct {
	flags     uint8
	lastFlags uint8
}

func NewFlags() *Flags {
	return &Flags{
		flags:     cpu.StatusAtReset,
		lastFlags: cpu.StatusAtReset,
	}
}

func (f *Flags) SetFlags(status uint8) {
	f.flags = status
}

func (f *Flags) CurrentFlags() uint8 {
	return f.flags
}

// Changed reports the bits that differ from the last rendered status.
func (f *Flags) Changed() uint8 {
	return f.flags ^ f.lastFlags
}

func (f *Flags) FlagsBlock() string {
	str := ""
	lastColour := ""
	for _, flag := range cpu.Flags {
		isSet := f.flags&flag.Mask() > 0
		wasSet := f.lastFlags&flag.Mask() > 0
		colour := off
		if isSet && !wasSet {
			colour = turnedOn
		} else if isSet && wasSet {
			colour = on
		} else if !isSet && wasSet {
			colour = turnedOff
		}
		if colour == lastColour {
			colour = ""
		} else {
			lastColour = colour
		}
		str = fmt.Sprintf("%s%s %s ", str, colour, flag)
	}
	f.lastFlags = f.flags
	return fmt.Sprintf("%s%s", str, display.Reset)
}
