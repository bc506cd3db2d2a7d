package console

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
)

// CleanupHandler restores the terminal when the process is asked to stop
// while a prompt holds raw mode.
type CleanupHandler struct {
	cleanupFuncs []func() error
	mu           sync.Mutex
	errOut       io.Writer
	sigChan      chan os.Signal
}

// NewCleanupHandler creates a cleanup handler that runs on termination signals.
func NewCleanupHandler() *CleanupHandler {
	h := newCleanupHandler(os.Stderr)
	h.installSignalHandlers()
	return h
}

func newCleanupHandler(errOut io.Writer) *CleanupHandler {
	return &CleanupHandler{
		cleanupFuncs: make([]func() error, 0),
		errOut:       errOut,
	}
}

// Register adds a cleanup function to be called on exit
func (h *CleanupHandler) Register(fn func() error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cleanupFuncs = append(h.cleanupFuncs, fn)
}

// Cleanup runs all registered cleanup functions
func (h *CleanupHandler) Cleanup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Run cleanup functions in reverse order (LIFO)
	for i := len(h.cleanupFuncs) - 1; i >= 0; i-- {
		if err := h.cleanupFuncs[i](); err != nil {
			fmt.Fprintf(h.errOut, "Cleanup error: %v\n", err)
		}
	}

	// Clear the list
	h.cleanupFuncs = h.cleanupFuncs[:0]
}

// Stop detaches the signal handlers without running cleanup.
func (h *CleanupHandler) Stop() {
	if h.sigChan != nil {
		signal.Stop(h.sigChan)
	}
}

// installSignalHandlers sets up signal handlers for graceful shutdown
func (h *CleanupHandler) installSignalHandlers() {
	sigs := signalsToCapture()
	if len(sigs) == 0 {
		return
	}
	h.sigChan = make(chan os.Signal, 1)
	signal.Notify(h.sigChan, sigs...)

	go func() {
		sig, ok := <-h.sigChan
		if !ok {
			return
		}
		h.Cleanup()

		// Re-raise or exit using cross-platform helper
		reRaiseSignal(sig)
	}()
}

// EnsureCleanup should be deferred in main to ensure cleanup on panic
func (h *CleanupHandler) EnsureCleanup() {
	if r := recover(); r != nil {
		h.Cleanup()
		panic(r) // Re-panic after cleanup
	}
	h.Cleanup()
}
