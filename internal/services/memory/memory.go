package memory

import (
	"fmt"
	"os"

	"github.td.teradata.com/sandbox/emu6502/internal/services/display"
)

const (
	// MaxSize is the full 6502 address space.
	MaxSize = 65536

	pageSize = 256
)

// AddressError is returned when an address falls outside of the
// configured memory size.
type AddressError struct {
	Op      string
	Address uint16
	Size    int
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("memory: %s at $%s outside of %d byte(s)", e.Op, display.HexAddress(e.Address), e.Size)
}

// Memory is a flat, fixed size store of bytes addressed from zero.
type Memory struct {
	filename string
	cells    []byte
}

// New creates a zero filled memory of the given size. Sizes outside of
// 1..MaxSize are rejected.
func New(size int) (*Memory, error) {
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("memory: invalid size %d, expected 1 to %d", size, MaxSize)
	}
	return &Memory{cells: make([]byte, size)}, nil
}

// Size returns the number of addressable cells.
func (m *Memory) Size() int {
	return len(m.cells)
}

// Filename returns the name of the last rom loaded, if any.
func (m *Memory) Filename() string {
	return m.filename
}

// Initialize zero fills every cell.
func (m *Memory) Initialize() {
	for i := range m.cells {
		m.cells[i] = 0
	}
}

func (m *Memory) Read(address uint16) (uint8, error) {
	if int(address) >= len(m.cells) {
		return 0, &AddressError{Op: "read", Address: address, Size: len(m.cells)}
	}
	return m.cells[address], nil
}

func (m *Memory) Write(address uint16, data uint8) error {
	if int(address) >= len(m.cells) {
		return &AddressError{Op: "write", Address: address, Size: len(m.cells)}
	}
	m.cells[address] = data
	return nil
}

// Load zero fills memory and copies image to address 0. Anything beyond the
// end of memory is dropped. The number of bytes copied is returned.
func (m *Memory) Load(image []byte) int {
	m.Initialize()
	return copy(m.cells, image)
}

// LoadRom reads filename and loads it at address 0.
func (m *Memory) LoadRom(filename string) (int, error) {
	bs, err := os.ReadFile(filename)
	if err != nil {
		return 0, fmt.Errorf("memory: failed to read rom: %w", err)
	}
	m.filename = filename
	return m.Load(bs), nil
}

// MemoryBlock renders the 256 byte page containing address as a hex dump.
// Cells beyond the end of memory are shown as "--".
func (m *Memory) MemoryBlock(address uint16) (lines []string) {
	start := int(address) - int(address)%pageSize
	lines = append(lines, display.Yellow+"      0  1  2  3  4  5  6  7   8  9  A  B  C  D  E  F"+display.Reset)
	for i := 0; i < 16; i++ {
		line := fmt.Sprintf("%s%s%s ", display.Yellow, display.HexAddress(uint16(start)), display.Reset)
		for j := 0; j < 16; j++ {
			value := "--"
			if start < len(m.cells) {
				value = display.HexData(m.cells[start])
			}
			if start == int(address) {
				value = display.BrightGreen + value + display.Reset
			}
			line += value + " "
			if j == 7 {
				line += " "
			}
			start++
		}
		lines = append(lines, line)
	}
	return lines
}
