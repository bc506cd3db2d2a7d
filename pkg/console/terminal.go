package console

import (
	"io"
	"os"
	"strings"

	"github.com/alantheprice/termline/pkg/utils"
)

// SizeFunc reports the terminal dimensions in columns and rows.
type SizeFunc func() (width, height int, err error)

// Terminal is the output sink: it writes plain text and the fixed set of
// cursor/erase commands to an underlying writer. Writes are fire-and-forget,
// nothing is ever read back from the terminal.
type Terminal struct {
	writer io.Writer
	size   SizeFunc
}

// NewTerminal creates a terminal sink writing to w. When w is an *os.File the
// screen size is taken from that file descriptor.
func NewTerminal(w io.Writer) *Terminal {
	t := &Terminal{writer: w}
	fd := -1
	if f, ok := w.(*os.File); ok {
		fd = int(f.Fd())
	}
	t.size = func() (int, int, error) {
		size, err := utils.GetTerminalSize(fd)
		if err != nil {
			return 0, 0, err
		}
		return size.Width, size.Height, nil
	}
	return t
}

// SetSizeFunc overrides how the terminal dimensions are detected.
func (t *Terminal) SetSizeFunc(fn SizeFunc) {
	if fn != nil {
		t.size = fn
	}
}

// Write writes data to the terminal verbatim
func (t *Terminal) Write(data []byte) (int, error) {
	return t.writer.Write(data)
}

// WriteString writes text to the terminal verbatim
func (t *Terminal) WriteString(text string) error {
	_, err := io.WriteString(t.writer, text)
	return err
}

// HideCursor hides the cursor
func (t *Terminal) HideCursor() error { return t.WriteString(hideCursorSeq) }

// ShowCursor shows the cursor
func (t *Terminal) ShowCursor() error { return t.WriteString(showCursorSeq) }

// Home moves the cursor to the top-left corner
func (t *Terminal) Home() error { return t.WriteString(homeSeq) }

// MoveCursor moves cursor to specified position (1-based)
func (t *Terminal) MoveCursor(x, y int) error { return t.WriteString(MoveCursorSeq(x, y)) }

// Up moves the cursor up n rows
func (t *Terminal) Up(n int) error { return t.WriteString(CursorUpSeq(n)) }

// Down moves the cursor down n rows
func (t *Terminal) Down(n int) error { return t.WriteString(CursorDownSeq(n)) }

// Right moves the cursor right n columns
func (t *Terminal) Right(n int) error { return t.WriteString(CursorRightSeq(n)) }

// Left moves the cursor left n columns
func (t *Terminal) Left(n int) error { return t.WriteString(CursorLeftSeq(n)) }

// ClearRight clears from cursor to end of line
func (t *Terminal) ClearRight() error { return t.WriteString(clearRightSeq) }

// ClearLeft clears from the start of the line to the cursor
func (t *Terminal) ClearLeft() error { return t.WriteString(clearLeftSeq) }

// ClearLine clears the current line; the cursor column is left unchanged
func (t *Terminal) ClearLine() error { return t.WriteString(clearLineSeq) }

// ClearDown clears from cursor to end of screen
func (t *Terminal) ClearDown() error { return t.WriteString(clearDownSeq) }

// ClearUp clears from the start of the screen to the cursor
func (t *Terminal) ClearUp() error { return t.WriteString(clearUpSeq) }

// ClearScreen clears the entire screen
func (t *Terminal) ClearScreen() error { return t.WriteString(clearScreenSeq) }

// Reset performs a hard terminal reset
func (t *Terminal) Reset() error { return t.WriteString(resetSeq) }

// NextLine moves the cursor to the start of the next line
func (t *Terminal) NextLine() error { return t.WriteString(nextLineSeq) }

// PrevLine moves the cursor to the start of the previous line
func (t *Terminal) PrevLine() error { return t.WriteString(prevLineSeq) }

// Color returns text wrapped in a 24-bit foreground color.
func (t *Terminal) Color(text string, r, g, b int) string { return Color(text, r, g, b) }

// GetSize returns the current terminal size
func (t *Terminal) GetSize() (width, height int, err error) {
	return t.size()
}

// Drown writes enough blank lines to push everything on screen out of view.
func (t *Terminal) Drown() error {
	_, rows, err := t.GetSize()
	if err != nil {
		return err
	}
	if rows < 2 {
		return nil
	}
	return t.WriteString(strings.Repeat("\n", rows-1))
}
