package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/alantheprice/termline/pkg/utils"
	"golang.org/x/term"
)

// InputSource is a keystroke stream that can be switched into raw mode.
type InputSource interface {
	// SetRawMode enables or disables unbuffered, unechoed input.
	SetRawMode(enabled bool) error
	// ReadByte blocks until one byte is available. A closed stream yields io.EOF.
	ReadByte() (byte, error)
}

// StdinSource reads keystrokes from a file, normally os.Stdin.
type StdinSource struct {
	mu       sync.Mutex
	file     *os.File
	fd       int
	reader   *bufio.Reader
	oldState *term.State
	rawMode  bool
	logger   *utils.Logger
}

// NewStdinSource creates an input source reading from f. Raw mode is only
// applied when f is a terminal; for pipes and regular files it is a no-op.
func NewStdinSource(f *os.File, logger *utils.Logger) *StdinSource {
	return &StdinSource{
		file:   f,
		fd:     int(f.Fd()),
		reader: bufio.NewReader(f),
		logger: logger,
	}
}

// SetRawMode enables or disables raw mode
func (s *StdinSource) SetRawMode(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if enabled == s.rawMode {
		return nil // Already in requested mode
	}

	if enabled {
		if !term.IsTerminal(s.fd) {
			s.rawMode = true
			return nil
		}
		// Save current state and enter raw mode
		oldState, err := term.MakeRaw(s.fd)
		if err != nil {
			return fmt.Errorf("failed to set raw mode: %w", err)
		}
		s.oldState = oldState
		s.rawMode = true
		s.logger.Logf("raw mode enabled on fd %d", s.fd)
		return nil
	}

	// Restore previous state
	if s.oldState != nil {
		if err := term.Restore(s.fd, s.oldState); err != nil {
			return fmt.Errorf("failed to restore terminal: %w", err)
		}
		s.oldState = nil
		s.logger.Logf("raw mode disabled on fd %d", s.fd)
	}
	s.rawMode = false
	return nil
}

// IsRawMode returns true if the source is in raw mode
func (s *StdinSource) IsRawMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rawMode
}

// Restore leaves raw mode if it is active. It is safe to register as a cleanup function.
func (s *StdinSource) Restore() error {
	return s.SetRawMode(false)
}

// ReadByte reads a single byte, blocking until one arrives.
func (s *StdinSource) ReadByte() (byte, error) {
	b, err := s.reader.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
			return 0, io.EOF
		}
		return 0, err
	}
	return b, nil
}

// ReaderSource adapts any io.Reader into an InputSource. Raw mode is a no-op,
// which suits scripted input and piped stdin.
type ReaderSource struct {
	reader *bufio.Reader
}

// NewReaderSource wraps r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{reader: bufio.NewReader(r)}
}

// SetRawMode does nothing; a plain reader has no line discipline.
func (s *ReaderSource) SetRawMode(bool) error { return nil }

// ReadByte reads a single byte, returning io.EOF at the end of the stream.
func (s *ReaderSource) ReadByte() (byte, error) {
	return s.reader.ReadByte()
}
