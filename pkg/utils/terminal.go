package utils

import (
	"fmt"

	"golang.org/x/term"
)

// TerminalSize represents the dimensions of the terminal
type TerminalSize struct {
	Width  int
	Height int
}

// Fallback dimensions used when nothing better can be detected.
const (
	DefaultTerminalWidth  = 80
	DefaultTerminalHeight = 24
)

// GetTerminalSize returns the size of the terminal behind fd. A negative fd
// skips straight to the environment fallback. It never fails: when every
// detection method comes up empty the 80x24 default is returned.
func GetTerminalSize(fd int) (*TerminalSize, error) {
	// Method 1: ask the terminal itself
	if fd >= 0 {
		if size, err := getTerminalSizeFd(fd); err == nil {
			return size, nil
		}
	}

	// Method 2: COLUMNS / LINES
	if size, err := getTerminalSizeEnv(); err == nil && size != nil {
		return size, nil
	}

	return &TerminalSize{Width: DefaultTerminalWidth, Height: DefaultTerminalHeight}, nil
}

func getTerminalSizeFd(fd int) (*TerminalSize, error) {
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("fd %d is not a terminal", fd)
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid terminal dimensions: %dx%d", width, height)
	}
	return &TerminalSize{Width: width, Height: height}, nil
}
