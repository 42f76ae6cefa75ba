package status

import (
	"fmt"

	"github.td.teradata.com/sandbox/emu6502/internal/services/display"
)

// Steps tracks which cycle of the current instruction the CPU is on.
type Steps struct {
	step  int
	total int
}

func NewSteps() *Steps {
	return &Steps{}
}

// SetStep records the instruction length and the cycles still to run after
// the current tick. It reports whether the step moved.
func (s *Steps) SetStep(total, remaining int) bool {
	step := total - remaining
	changed := step != s.step || total != s.total
	s.step, s.total = step, total
	return changed
}

func (s *Steps) CurrentStep() int {
	return s.step
}

// StepBlock numbers the cycles of the instruction, highlighting the current
// one. Cycles beyond the instruction's length are greyed out.
func (s *Steps) StepBlock() string {
	str, lastColour := "", ""
	for i := 1; i <= maxSteps; i++ {
		colour := step
		if i == s.step {
			colour = currentStep
		} else if i > s.total {
			colour = display.Reset + off
		}
		if colour == lastColour {
			colour = ""
		} else {
			lastColour = colour
		}
		str = fmt.Sprintf("%s%s %d ", str, colour, i)
	}
	return str + display.Reset
}
