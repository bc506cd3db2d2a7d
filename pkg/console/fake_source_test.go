package console

import (
	"io"
)

// scriptedSource replays a fixed byte sequence and then reports EOF (or err).
type scriptedSource struct {
	input    []byte
	pos      int
	rawCalls []bool
	rawErr   error
	readErr  error
	// beforeRead runs before byte pos is handed out; the editor is not
	// holding the session lock at that point.
	beforeRead func(pos int)
}

func newScript(input string) *scriptedSource {
	return &scriptedSource{input: []byte(input)}
}

func (s *scriptedSource) SetRawMode(enabled bool) error {
	if enabled && s.rawErr != nil {
		return s.rawErr
	}
	s.rawCalls = append(s.rawCalls, enabled)
	return nil
}

func (s *scriptedSource) ReadByte() (byte, error) {
	if s.beforeRead != nil {
		s.beforeRead(s.pos)
	}
	if s.pos >= len(s.input) {
		if s.readErr != nil {
			return 0, s.readErr
		}
		return 0, io.EOF
	}
	b := s.input[s.pos]
	s.pos++
	return b, nil
}
