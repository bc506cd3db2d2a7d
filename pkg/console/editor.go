package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/alantheprice/termline/pkg/utils"
)

// Keys the line editor reacts to. Everything else is stored and echoed as typed.
const (
	CharInterrupt byte = 3   // Ctrl+C
	CharTab       byte = 9   // Tab
	CharEnter     byte = 13  // Enter/Return in raw mode
	CharBackspace byte = 127 // Backspace (DEL)
)

// ErrInterrupt is returned when the user presses Ctrl+C during a prompt.
// The line has already been erased; the caller decides how to shut down.
var ErrInterrupt = errors.New("interrupted")

// LineEditor reads a single line from a raw input source, echoing edits to
// the terminal as they happen.
type LineEditor struct {
	session *Session
	out     *Terminal
	in      InputSource
	logger  *utils.Logger
}

// NewLineEditor creates an editor that stores its state in session.
func NewLineEditor(session *Session, out *Terminal, in InputSource, logger *utils.Logger) *LineEditor {
	return &LineEditor{
		session: session,
		out:     out,
		in:      in,
		logger:  logger,
	}
}

// ReadLine writes prompt and collects keystrokes until Enter, end of input,
// or a full buffer. Ctrl+C aborts with ErrInterrupt. Raw mode is always
// restored and the session deactivated before returning.
func (e *LineEditor) ReadLine(ctx context.Context, prompt string) (line string, err error) {
	if err := e.in.SetRawMode(true); err != nil {
		return "", err
	}
	defer func() {
		if rerr := e.in.SetRawMode(false); rerr != nil && err == nil {
			err = rerr
		}
	}()

	e.session.mu.Lock()
	e.session.begin(prompt)
	werr := e.out.WriteString(prompt)
	e.session.mu.Unlock()

	defer func() {
		e.session.mu.Lock()
		decoded := e.session.end()
		e.session.mu.Unlock()
		if err == nil {
			line = decoded
		}
	}()

	if werr != nil {
		return "", fmt.Errorf("failed to write prompt: %w", werr)
	}

	e.logger.Logf("prompt %q started", prompt)

	// n is only written by this goroutine, so reading it unlocked here is safe.
	for !e.session.full() {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		b, rerr := e.in.ReadByte()
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				e.logger.Log("input closed, confirming current line")
				break
			}
			return "", fmt.Errorf("failed to read input: %w", rerr)
		}

		if err := ctx.Err(); err != nil {
			return "", err
		}

		done, kerr := e.handleKey(b)
		if kerr != nil {
			if errors.Is(kerr, ErrInterrupt) {
				e.logger.Logf("prompt %q interrupted", prompt)
			}
			return "", kerr
		}
		if done {
			break
		}
	}

	e.logger.Logf("prompt %q confirmed with %d bytes", prompt, e.session.n)
	return "", nil
}

// handleKey applies one keystroke. Screen updates for the key are written in
// full before it returns. It reports whether the line is finished.
func (e *LineEditor) handleKey(b byte) (bool, error) {
	s := e.session
	s.mu.Lock()
	defer s.mu.Unlock()

	switch b {
	case CharInterrupt:
		if err := e.out.ClearLine(); err != nil {
			return true, err
		}
		return true, ErrInterrupt
	case CharEnter:
		if err := e.out.ClearLine(); err != nil {
			return true, err
		}
		return true, e.out.WriteString("\r")
	case CharBackspace:
		if s.n == 0 {
			return false, nil
		}
		if err := e.out.Left(1); err != nil {
			return false, err
		}
		if err := e.out.ClearRight(); err != nil {
			return false, err
		}
		s.n--
	case CharTab:
		if err := e.out.WriteString(" "); err != nil {
			return false, err
		}
		s.append(' ')
	default:
		if _, err := e.out.Write([]byte{b}); err != nil {
			return false, err
		}
		s.append(b)
	}
	return false, nil
}
