package trace

import (
	"fmt"
	"sync"

	"github.td.teradata.com/sandbox/emu6502/internal/services/cpu"
	"github.td.teradata.com/sandbox/emu6502/internal/services/display"
)

// Entry is one completed instruction together with the registers it left
// behind.
type Entry struct {
	Cycle       uint64
	Instruction cpu.Instruction
	Registers   cpu.Registers
}

func (e Entry) String() string {
	return fmt.Sprintf("%8d  %-28s %s", e.Cycle, e.Instruction, e.Registers)
}

// History keeps the most recent entries, dropping the oldest once full.
// It is safe to read while the driver is adding to it.
type History struct {
	entries  []Entry
	capacity int
	dropped  uint64
	sync     sync.Mutex
}

func New(capacity int) *History {
	if capacity < 0 {
		capacity = 0
	}
	return &History{
		entries:  make([]Entry, 0, capacity),
		capacity: capacity,
	}
}

func (h *History) Add(e Entry) {
	h.sync.Lock()
	defer h.sync.Unlock()

	if h.capacity == 0 {
		h.dropped++
		return
	}
	if len(h.entries) == h.capacity {
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
		h.dropped++
	}
	h.entries = append(h.entries, e)
}

// Entries returns a copy of the history, oldest first.
func (h *History) Entries() []Entry {
	h.sync.Lock()
	defer h.sync.Unlock()

	entries := make([]Entry, len(h.entries))
	copy(entries, h.entries)
	return entries
}

func (h *History) Len() int {
	h.sync.Lock()
	defer h.sync.Unlock()
	return len(h.entries)
}

// Dropped is the number of entries pushed out of the history.
func (h *History) Dropped() uint64 {
	h.sync.Lock()
	defer h.sync.Unlock()
	return h.dropped
}

func (h *History) Clear() {
	h.sync.Lock()
	defer h.sync.Unlock()
	h.entries = h.entries[:0]
	h.dropped = 0
}

// Draw prints the history to t, newest last, keeping to the terminal's
// height.
func (h *History) Draw(t *display.Terminal) {
	entries := h.Entries()
	rows := t.Rows() - 1
	if rows < 1 {
		rows = 1
	}
	if len(entries) > rows {
		entries = entries[len(entries)-rows:]
	}

	t.Printlnf("%sInstruction history%s%s", display.Yellow, display.Reset, h.scrollBar(len(entries), t.Cols()))
	for _, e := range entries {
		t.Println(e.String())
	}
}

func (h *History) scrollBar(shown int, cols int) string {
	total := h.Len()
	format := fmt.Sprintf("%%%ds", cols-19)
	status := ""
	switch {
	case total == 0:
		status = "empty"
	case shown == total && h.Dropped() == 0:
		status = "all"
	default:
		status = fmt.Sprintf("last %d of %d", shown, uint64(total)+h.Dropped())
	}
	return fmt.Sprintf(format, status)
}
