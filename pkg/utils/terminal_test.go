package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTerminalSize_EnvFallback(t *testing.T) {
	tests := []struct {
		name       string
		columns    string
		lines      string
		wantWidth  int
		wantHeight int
	}{
		{name: "both set", columns: "120", lines: "40", wantWidth: 120, wantHeight: 40},
		{name: "lines only", lines: "50", wantWidth: DefaultTerminalWidth, wantHeight: 50},
		{name: "garbage", columns: "wide", lines: "-3", wantWidth: DefaultTerminalWidth, wantHeight: DefaultTerminalHeight},
		{name: "unset", wantWidth: DefaultTerminalWidth, wantHeight: DefaultTerminalHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("COLUMNS", tt.columns)
			t.Setenv("LINES", tt.lines)

			size, err := GetTerminalSize(-1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantWidth, size.Width)
			assert.Equal(t, tt.wantHeight, size.Height)
		})
	}
}
