package status

import (
	"fmt"

	"github.td.teradata.com/sandbox/emu6502/internal/services/display"
)

// Clock shows whether the last tick completed an instruction (high) or only
// counted down a cycle (low).
type Clock struct {
	state uint8
}

func NewClock() *Clock {
	return &Clock{}
}

func (c *Clock) ClockHigh() {
	c.state = 1
}

func (c *Clock) ClockLow() {
	c.state = 0
}

func (c *Clock) Block() string {
	str := clockLow
	if c.state == 1 {
		str = clockHigh
	}
	return fmt.Sprintf("%sΦ%d%s", str, c.state, display.Reset)
}
