package serial

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.td.teradata.com/sandbox/emu6502/internal/config"
	"github.td.teradata.com/sandbox/emu6502/internal/log"
	"github.td.teradata.com/sandbox/emu6502/internal/services/cpu"
	"github.td.teradata.com/sandbox/emu6502/internal/services/display"
	srl "go.bug.st/serial"
)

const (
	// FrameSize is the length of one instruction frame on the wire.
	FrameSize = 9

	frameMarker = 'i'
)

// Mirror sends every completed instruction down a serial line so a real
// 6502 board running the same program can be compared against it.
type Mirror struct {
	port   io.WriteCloser
	name   string
	frames uint64
	frame  [FrameSize]byte
}

// Open opens the configured port. The port name must be set.
func Open(cfg *config.Serial) (*Mirror, error) {
	if cfg == nil || cfg.PortName == "" {
		return nil, fmt.Errorf("serial: no port configured")
	}
	stopBits, err := toStopBits(cfg.StopBits)
	if err != nil {
		return nil, err
	}
	parity, err := toParity(cfg.Parity)
	if err != nil {
		return nil, err
	}
	mode := &srl.Mode{
		DataBits: cfg.DataBits,
		BaudRate: cfg.BaudRate,
		StopBits: stopBits,
		Parity:   parity,
	}
	port, err := srl.Open(cfg.PortName, mode)
	if err != nil {
		return nil, fmt.Errorf("serial: failed to open port %s: %w", cfg.PortName, err)
	}
	log.Infof("Opened port %s at %d baud", cfg.PortName, cfg.BaudRate)
	return newMirror(port, cfg.PortName), nil
}

func newMirror(port io.WriteCloser, name string) *Mirror {
	return &Mirror{
		port: port,
		name: name,
	}
}

func toStopBits(value int) (srl.StopBits, error) {
	switch value {
	case 1:
		return srl.OneStopBit, nil
	case 2:
		return srl.TwoStopBits, nil
	case 15:
		return srl.OnePointFiveStopBits, nil
	default:
		return srl.OneStopBit, fmt.Errorf("serial: invalid stop bits %d", value)
	}
}

func toParity(value int) (srl.Parity, error) {
	switch value {
	case 0:
		return srl.NoParity, nil
	case 1:
		return srl.OddParity, nil
	case 2:
		return srl.EvenParity, nil
	case 3:
		return srl.MarkParity, nil
	case 4:
		return srl.SpaceParity, nil
	default:
		return srl.NoParity, fmt.Errorf("serial: invalid parity %d", value)
	}
}

// Frame encodes an instruction into dst, which must hold FrameSize bytes:
// 'i', the opcode address (little endian), the opcode, then A, X, Y, SP and
// P after execution.
func Frame(dst []byte, in cpu.Instruction, regs cpu.Registers) []byte {
	dst = dst[:FrameSize]
	dst[0] = frameMarker
	binary.LittleEndian.PutUint16(dst[1:3], in.Address)
	dst[3] = in.OpCode.OpCode
	dst[4] = regs.A
	dst[5] = regs.X
	dst[6] = regs.Y
	dst[7] = regs.SP
	dst[8] = regs.P
	return dst
}

// Send writes one frame. A short write is reported as an error.
func (m *Mirror) Send(in cpu.Instruction, regs cpu.Registers) error {
	bs := Frame(m.frame[:], in, regs)
	n, err := m.port.Write(bs)
	if err != nil {
		return fmt.Errorf("serial: failed to send instruction at %s: %w", display.HexAddress(in.Address), err)
	} else if n != FrameSize {
		return fmt.Errorf("serial: unexpected number of bytes sent. Expected %d, sent: %d", FrameSize, n)
	}
	m.frames++
	log.Debugf("%c [%s %s] %s", bs[0], display.HexData(bs[2]), display.HexData(bs[1]), display.HexData(bs[3]))
	return nil
}

// Frames is the number of frames sent so far.
func (m *Mirror) Frames() uint64 {
	return m.frames
}

func (m *Mirror) Name() string {
	return m.name
}

func (m *Mirror) Close() error {
	log.Infof("Closing port %s after %d frame(s)", m.name, m.frames)
	return m.port.Close()
}

// ListPorts returns the serial ports on this machine. On macOS only the
// call-out devices are listed.
func ListPorts() ([]string, error) {
	ports, err := srl.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("serial: listing ports: %w", err)
	}
	return filterPorts(ports), nil
}

func filterPorts(ports []string) []string {
	var callOut []string
	for _, port := range ports {
		if strings.HasPrefix(port, "/dev/cu") {
			callOut = append(callOut, port)
		}
	}
	if len(callOut) == 0 {
		callOut = append(callOut, ports...)
	}
	sort.Strings(callOut)
	return callOut
}
