package console

import (
	"context"
	"io"
	"os"

	"github.com/alantheprice/termline/pkg/utils"
)

// Options configures a Console.
type Options struct {
	// Capacity is the edit buffer size in bytes.
	Capacity int
	// Input is the keystroke source. Defaults to stdin.
	Input InputSource
	// Output receives text and escape sequences. Defaults to stdout.
	Output io.Writer
	// Size overrides terminal size detection.
	Size SizeFunc
	// Logger receives diagnostics. Nil disables logging.
	Logger *utils.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithCapacity sets the edit buffer size.
func WithCapacity(n int) Option { return func(o *Options) { o.Capacity = n } }

// WithInput sets the keystroke source.
func WithInput(in InputSource) Option { return func(o *Options) { o.Input = in } }

// WithOutput sets the output writer.
func WithOutput(w io.Writer) Option { return func(o *Options) { o.Output = w } }

// WithSize overrides terminal size detection.
func WithSize(fn SizeFunc) Option { return func(o *Options) { o.Size = fn } }

// WithLogger sets the diagnostics logger.
func WithLogger(l *utils.Logger) Option { return func(o *Options) { o.Logger = l } }

// Console ties the terminal sink, the input source, the line editor and the
// status printer together around one shared Session. Cursor and erase
// primitives are promoted from the embedded Terminal.
type Console struct {
	*Terminal
	session *Session
	input   InputSource
	editor  *LineEditor
	printer *StatusPrinter
	logger  *utils.Logger
}

// New creates a console. Without options it reads stdin and writes stdout.
func New(opts ...Option) *Console {
	o := Options{Capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Output == nil {
		o.Output = os.Stdout
	}
	if o.Input == nil {
		o.Input = NewStdinSource(os.Stdin, o.Logger)
	}

	out := NewTerminal(o.Output)
	out.SetSizeFunc(o.Size)
	session := NewSession(o.Capacity)

	return &Console{
		Terminal: out,
		session:  session,
		input:    o.Input,
		editor:   NewLineEditor(session, out, o.Input, o.Logger),
		printer:  NewStatusPrinter(session, out),
		logger:   o.Logger,
	}
}

// Session exposes the shared prompt state.
func (c *Console) Session() *Session { return c.session }

// Input returns the keystroke source the console reads from.
func (c *Console) Input() InputSource { return c.input }

// Write writes text verbatim.
func (c *Console) Write(text string) error {
	c.session.mu.Lock()
	defer c.session.mu.Unlock()
	return c.Terminal.WriteString(text)
}

// Print writes a line, keeping an open prompt intact.
func (c *Console) Print(line string) error {
	return c.printer.Print(line)
}

// Prompt asks question and returns the line the user typed. It waits
// indefinitely; Ctrl+C yields ErrInterrupt.
func (c *Console) Prompt(question string) (string, error) {
	return c.editor.ReadLine(context.Background(), question)
}

// PromptContext is Prompt with cancellation checked between keystrokes.
func (c *Console) PromptContext(ctx context.Context, question string) (string, error) {
	return c.editor.ReadLine(ctx, question)
}
