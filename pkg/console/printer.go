package console

// StatusPrinter prints whole lines without corrupting a prompt that is being
// edited. While a prompt is open it erases the edit line, prints above it,
// and redraws the prompt with whatever has been typed so far.
type StatusPrinter struct {
	session *Session
	out     *Terminal
}

// NewStatusPrinter creates a printer that consults session before every print.
func NewStatusPrinter(session *Session, out *Terminal) *StatusPrinter {
	return &StatusPrinter{session: session, out: out}
}

// Print writes line followed by a newline, redrawing any open prompt below it.
func (p *StatusPrinter) Print(line string) error {
	s := p.session
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return p.out.WriteString(line + "\n")
	}

	if err := p.out.ClearLine(); err != nil {
		return err
	}
	if err := p.out.WriteString("\r" + line); err != nil {
		return err
	}
	if err := p.out.WriteString("\n" + s.prompt); err != nil {
		return err
	}
	_, err := p.out.Write(s.pending())
	return err
}
