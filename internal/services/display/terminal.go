package display

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"unicode/utf8"

	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

const (
	Bell = "\a"

	CursorUp    = 38
	CursorDown  = 40
	CursorLeft  = 37
	CursorRight = 39

	ttyDevice = "/dev/tty"
)

var (
	HEX = [16]string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "A", "B", "C", "D", "E", "F"}
	rex = regexp.MustCompile("\u001b\\[[0-9]{1,3}m")
)

// Terminal is a line oriented output sink. Colour sequences are passed
// through when colour is enabled and stripped otherwise.
type Terminal struct {
	writer io.Writer
	cols   int
	rows   int
	colour bool
}

// New creates a terminal over stdout. When stdout is a tty its size is
// taken from the tty, otherwise cols and rows are used as given.
func New(cols, rows int, colour bool) *Terminal {
	t := &Terminal{
		writer: os.Stdout,
		cols:   cols,
		rows:   rows,
		colour: colour,
	}
	fd := int(os.Stdout.Fd())
	if xterm.IsTerminal(fd) {
		if w, h, e := xterm.GetSize(fd); e == nil && w > 0 {
			t.cols = w
			t.rows = h
		}
	} else {
		t.colour = false
	}
	return t
}

// NewWriter creates a terminal writing to w, with no tty detection.
func NewWriter(w io.Writer, cols, rows int, colour bool) *Terminal {
	return &Terminal{
		writer: w,
		cols:   cols,
		rows:   rows,
		colour: colour,
	}
}

func (t *Terminal) Rows() int {
	return t.rows
}
func (t *Terminal) Cols() int {
	return t.cols
}
func (t *Terminal) Colour() bool {
	return t.colour
}

// Println writes text followed by a newline, clipped to the terminal width.
func (t *Terminal) Println(text string) {
	if !t.colour {
		text = StripFormatting(text)
		text = clip(text, t.cols)
	}
	_, _ = fmt.Fprintln(t.writer, text)
}
func (t *Terminal) Printlnf(format string, a ...interface{}) {
	t.Println(fmt.Sprintf(format, a...))
}
func (t *Terminal) Bell() {
	_, _ = fmt.Fprint(t.writer, Bell)
}

// ReadKey puts the controlling tty into raw mode and waits for a single
// key press. Arrow keys are reported through keyCode using the javascript
// key codes, everything else through ascii.
func (t *Terminal) ReadKey() (ascii int, keyCode int, err error) {
	tty, err := term.Open(ttyDevice)
	if err != nil {
		return 0, 0, fmt.Errorf("display: unable to open %s: %w", ttyDevice, err)
	}
	defer func() {
		_ = tty.Restore()
		_ = tty.Close()
	}()
	if err = term.RawMode(tty); err != nil {
		return 0, 0, fmt.Errorf("display: unable to enter raw mode: %w", err)
	}

	bs := make([]byte, 3)
	numRead, err := tty.Read(bs)
	if err != nil {
		return 0, 0, err
	}
	if numRead == 3 && bs[0] == 27 && bs[1] == 91 {
		// Three-character control sequence, beginning with "ESC-[".
		switch bs[2] {
		case 65:
			keyCode = CursorUp
		case 66:
			keyCode = CursorDown
		case 67:
			keyCode = CursorRight
		case 68:
			keyCode = CursorLeft
		}
	} else if numRead == 1 {
		ascii = int(bs[0])
	}
	return ascii, keyCode, nil
}

// clip cuts text to at most cols runes.
func clip(text string, cols int) string {
	if cols <= 0 || utf8.RuneCountInString(text) <= cols {
		return text
	}
	return string([]rune(text)[:cols])
}

func StripFormatting(text string) string {
	return rex.ReplaceAllString(text, "")
}
func HexData(data uint8) string {
	return HEX[data>>4] + HEX[data&15]
}
func HexAddress(address uint16) string {
	return HEX[address>>12] + HEX[address>>8&15] + HEX[address>>4&15] + HEX[address&15]
}
