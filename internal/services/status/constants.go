package status

import "github.td.teradata.com/sandbox/emu6502/internal/services/display"

const (
	off         = display.Grey
	turnedOff   = display.White
	on          = display.Green
	turnedOn    = display.BrightGreen
	step        = display.Reset + display.Cyan
	currentStep = display.BGCyan + display.Black
	clockHigh   = display.BrightGreen
	clockLow    = display.Red
)

// maxSteps is the longest an instruction can take. BRK and the read modify
// write absolute X forms take seven cycles, and no penalty pushes anything
// past that.
const maxSteps = 7
