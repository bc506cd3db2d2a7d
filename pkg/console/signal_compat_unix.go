//go:build !windows
// +build !windows

package console

import (
	"os"
	"os/signal"
	"syscall"
)

// signalsToCapture returns the list of signals to capture for cleanup on Unix-like systems.
// SIGINT is included for the cooked-mode gaps between prompts; in raw mode Ctrl+C
// arrives as a byte instead.
func signalsToCapture() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
		syscall.SIGHUP,
	}
}

// reRaiseSignal re-raises a signal so the default handler can run (Unix).
func reRaiseSignal(sig os.Signal) {
	signal.Reset(sig)
	if s, ok := sig.(syscall.Signal); ok {
		_ = syscall.Kill(syscall.Getpid(), s)
	}
}
