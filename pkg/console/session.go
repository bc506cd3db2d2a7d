package console

import (
	"sync"

	"golang.org/x/text/encoding/unicode"
)

// DefaultCapacity is the edit buffer size used when none is configured.
const DefaultCapacity = 2048

// Session is the prompt state shared by the line editor and the status
// printer: whether a prompt is open, its text, and the edit buffer.
//
// The editor holds mu while it handles a keystroke and releases it while
// blocked waiting for the next one, so a printer running on another
// goroutine always sees a consistent buffer.
type Session struct {
	mu     sync.Mutex
	active bool
	prompt string
	buf    []byte
	n      int
}

// NewSession creates a session with an edit buffer of the given capacity.
// Non-positive capacities fall back to DefaultCapacity.
func NewSession(capacity int) *Session {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Session{buf: make([]byte, capacity)}
}

// Active reports whether a prompt is currently open.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Prompt returns the text of the current or most recent prompt.
func (s *Session) Prompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prompt
}

// Len returns the number of bytes in the edit buffer.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.n
}

// Capacity returns the fixed size of the edit buffer.
func (s *Session) Capacity() int {
	return len(s.buf)
}

// Line decodes the valid part of the edit buffer.
func (s *Session) Line() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.line()
}

// begin opens a prompt. Caller holds mu.
func (s *Session) begin(prompt string) {
	s.active = true
	s.prompt = prompt
	s.n = 0
}

// end closes the prompt and returns the decoded line. Caller holds mu.
func (s *Session) end() string {
	s.active = false
	return s.line()
}

func (s *Session) full() bool {
	return s.n >= len(s.buf)
}

func (s *Session) append(b byte) {
	s.buf[s.n] = b
	s.n++
}

func (s *Session) pending() []byte {
	return s.buf[:s.n]
}

// line decodes buf[:n] as UTF-8, replacing ill-formed sequences with U+FFFD.
func (s *Session) line() string {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(s.buf[:s.n])
	if err != nil {
		return string(s.buf[:s.n])
	}
	return string(decoded)
}
