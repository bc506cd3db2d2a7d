//go:build windows
// +build windows

package console

import (
	"os"
)

// signalsToCapture returns the list of signals to capture for cleanup on Windows.
// Windows supports os.Interrupt for Ctrl+C; other POSIX signals are not applicable.
func signalsToCapture() []os.Signal {
	return []os.Signal{os.Interrupt}
}

// reRaiseSignal cannot re-raise POSIX signals on Windows; exit after cleanup.
func reRaiseSignal(sig os.Signal) { os.Exit(130) }
