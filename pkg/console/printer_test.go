package console

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusPrinter_Inactive(t *testing.T) {
	var out bytes.Buffer
	p := NewStatusPrinter(NewSession(0), NewTerminal(&out))

	require.NoError(t, p.Print("log"))
	require.NoError(t, p.Print(""))
	assert.Equal(t, "log\n\n", out.String())
}

func TestStatusPrinter_RedrawsOpenPrompt(t *testing.T) {
	src := newScript("ab\r")
	editor, session, out := newTestEditor(src, 0)
	printer := NewStatusPrinter(session, editor.out)

	src.beforeRead = func(pos int) {
		if pos == 2 {
			require.NoError(t, printer.Print("log"))
		}
	}

	got, err := editor.ReadLine(context.Background(), "> ")
	require.NoError(t, err)
	assert.Equal(t, "ab", got)

	want := "> ab" +
		"\x1b[2K" + "\rlog" + "\n> ab" +
		"\x1b[2K" + "\r"
	assert.Equal(t, want, out.String())
}

func TestStatusPrinter_AfterPromptAppends(t *testing.T) {
	src := newScript("x\r")
	editor, session, out := newTestEditor(src, 0)
	printer := NewStatusPrinter(session, editor.out)

	_, err := editor.ReadLine(context.Background(), "> ")
	require.NoError(t, err)
	out.Reset()

	require.NoError(t, printer.Print("done"))
	assert.Equal(t, "done\n", out.String())
}

// chanSource delivers bytes sent on a channel and reports EOF once it is closed.
type chanSource struct {
	ch chan byte
}

func (s *chanSource) SetRawMode(bool) error { return nil }

func (s *chanSource) ReadByte() (byte, error) {
	b, ok := <-s.ch
	if !ok {
		return 0, io.EOF
	}
	return b, nil
}

func TestStatusPrinter_ConcurrentPrints(t *testing.T) {
	src := &chanSource{ch: make(chan byte)}
	var out syncBuffer
	session := NewSession(0)
	term := NewTerminal(&out)
	editor := NewLineEditor(session, term, src, nil)
	printer := NewStatusPrinter(session, term)

	result := make(chan string, 1)
	go func() {
		line, err := editor.ReadLine(context.Background(), "> ")
		assert.NoError(t, err)
		result <- line
	}()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				assert.NoError(t, printer.Print(fmt.Sprintf("worker %d line %d", i, j)))
			}
		}(i)
	}

	for _, b := range []byte("hello") {
		src.ch <- b
	}
	wg.Wait()
	src.ch <- CharEnter

	assert.Equal(t, "hello", <-result)
	assert.False(t, session.Active())
	assert.Contains(t, out.String(), "worker 3 line 24")
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
