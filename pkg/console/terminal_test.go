package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal_Commands(t *testing.T) {
	tests := []struct {
		name string
		call func(*Terminal) error
		want string
	}{
		{"hide cursor", (*Terminal).HideCursor, "\x1b[?25l"},
		{"show cursor", (*Terminal).ShowCursor, "\x1b[?25h"},
		{"home", (*Terminal).Home, "\x1b[H"},
		{"goto", func(t *Terminal) error { return t.MoveCursor(10, 2) }, "\x1b[2;10H"},
		{"up", func(t *Terminal) error { return t.Up(3) }, "\x1b[3A"},
		{"down", func(t *Terminal) error { return t.Down(1) }, "\x1b[1B"},
		{"right", func(t *Terminal) error { return t.Right(5) }, "\x1b[5C"},
		{"left", func(t *Terminal) error { return t.Left(1) }, "\x1b[1D"},
		{"clear right", (*Terminal).ClearRight, "\x1b[0K"},
		{"clear left", (*Terminal).ClearLeft, "\x1b[1K"},
		{"clear line", (*Terminal).ClearLine, "\x1b[2K"},
		{"clear down", (*Terminal).ClearDown, "\x1b[0J"},
		{"clear up", (*Terminal).ClearUp, "\x1b[1J"},
		{"clear screen", (*Terminal).ClearScreen, "\x1b[2J"},
		{"reset", (*Terminal).Reset, "\x1bc"},
		{"next line", (*Terminal).NextLine, "\x1b[1E"},
		{"prev line", (*Terminal).PrevLine, "\x1b[1F"},
		{"text", func(t *Terminal) error { return t.WriteString("plain") }, "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.call(NewTerminal(&buf)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestTerminal_Drown(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)
	term.SetSizeFunc(func() (int, int, error) { return 80, 5, nil })

	require.NoError(t, term.Drown())
	assert.Equal(t, "\n\n\n\n", buf.String())
}

func TestTerminal_DrownFallsBackToLines(t *testing.T) {
	t.Setenv("LINES", "3")
	t.Setenv("COLUMNS", "")

	var buf bytes.Buffer
	require.NoError(t, NewTerminal(&buf).Drown())
	assert.Equal(t, "\n\n", buf.String())
}

func TestTerminal_DrownSizeError(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)
	term.SetSizeFunc(func() (int, int, error) { return 0, 0, errors.New("no tty") })

	assert.EqualError(t, term.Drown(), "no tty")
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestTerminal_WriteErrorsSurface(t *testing.T) {
	term := NewTerminal(failingWriter{})
	assert.EqualError(t, term.ClearLine(), "closed")
}
