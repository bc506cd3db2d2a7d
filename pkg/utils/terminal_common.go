package utils

import (
	"os"
	"strconv"
)

// getTerminalSizeEnv tries to get terminal size from environment variables.
// A missing dimension falls back to the default so LINES alone is enough.
func getTerminalSizeEnv() (*TerminalSize, error) {
	width := 0
	height := 0

	// Try COLUMNS and LINES
	if val := os.Getenv("COLUMNS"); val != "" {
		if w, err := strconv.Atoi(val); err == nil && w > 0 {
			width = w
		}
	}

	if val := os.Getenv("LINES"); val != "" {
		if h, err := strconv.Atoi(val); err == nil && h > 0 {
			height = h
		}
	}

	if width == 0 && height == 0 {
		return nil, nil
	}
	if width == 0 {
		width = DefaultTerminalWidth
	}
	if height == 0 {
		height = DefaultTerminalHeight
	}

	return &TerminalSize{
		Width:  width,
		Height: height,
	}, nil
}
