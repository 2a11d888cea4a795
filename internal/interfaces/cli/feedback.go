package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/jhoicas/catalogo-admin/internal/application/ports"
)

const (
	ansiReset = "\x1b[0m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
)

var (
	_ ports.Notifier  = (*TerminalNotifier)(nil)
	_ ports.Confirmer = (*PromptConfirmer)(nil)
)

// TerminalNotifier imprime las notificaciones como líneas "✓ ..." / "✗ ...".
type TerminalNotifier struct {
	mu    sync.Mutex
	out   io.Writer
	color bool
}

// NewTerminalNotifier crea el notifier; color activa los códigos ANSI.
func NewTerminalNotifier(out io.Writer, color bool) *TerminalNotifier {
	return &TerminalNotifier{out: out, color: color}
}

func (n *TerminalNotifier) Notify(message string, severity ports.Severity) {
	mark, tint := "✓", ansiGreen
	if severity == ports.SeverityError {
		mark, tint = "✗", ansiRed
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.color {
		fmt.Fprintf(n.out, "%s%s%s %s\n", tint, mark, ansiReset, message)
		return
	}
	fmt.Fprintf(n.out, "%s %s\n", mark, message)
}

// PromptConfirmer pregunta [y/N] por la terminal. Con assumeYes no pregunta.
type PromptConfirmer struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

func NewPromptConfirmer(in io.Reader, out io.Writer, assumeYes bool) *PromptConfirmer {
	return &PromptConfirmer{in: bufio.NewReader(in), out: out, assumeYes: assumeYes}
}

// Confirm devuelve true solo ante "y" o "yes". EOF o error de lectura cuentan como no.
func (p *PromptConfirmer) Confirm(prompt string) bool {
	if p.assumeYes {
		return true
	}
	fmt.Fprintf(p.out, "%s [y/N]: ", prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(p.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
