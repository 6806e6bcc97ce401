package risl

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Emitter receives diagnostics as they are recorded. Implementations must
// tolerate any volume of diagnostics, including none at all.
type Emitter interface {
	Emit(d Diagnostic)
}

var levelStyles = map[Level]lipgloss.Style{
	LevelBug:     lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
	LevelFatal:   lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true),
	LevelError:   lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	LevelWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
	LevelNote:    lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6")),
	LevelHelp:    lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
}

// humanReadableEmitter prints one line per diagnostic with a
// severity-colored label.
type humanReadableEmitter struct {
	out io.Writer
}

// NewHumanReadableEmitter creates an emitter printing human-readable
// diagnostics to out.
func NewHumanReadableEmitter(out io.Writer) Emitter {
	return &humanReadableEmitter{out: out}
}

func (e *humanReadableEmitter) Emit(d Diagnostic) {
	label := levelStyles[d.Level].Render(d.Level.String())
	if d.Span.IsEmpty() {
		fmt.Fprintf(e.out, "%s: %s\n", label, d.Message)
		return
	}
	fmt.Fprintf(e.out, "%s: %s (bytes %d..%d)\n", label, d.Message, d.Span.Start, d.Span.End)
}

// discardEmitter drops every diagnostic.
type discardEmitter struct{}

// NewDiscardEmitter creates an emitter that discards all output.
func NewDiscardEmitter() Emitter {
	return discardEmitter{}
}

func (discardEmitter) Emit(Diagnostic) {}
