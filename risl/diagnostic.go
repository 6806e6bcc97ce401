package risl

// Level is the severity of a diagnostic.
type Level uint8

const (
	// LevelBug reports a defect in the compiler itself.
	LevelBug Level = iota
	// LevelFatal is an error that causes an immediate abort: configuration
	// errors, internal overflows, some file operation errors.
	LevelFatal
	// LevelError is an error in the code being compiled which prevents
	// compilation from finishing. This is the most common case.
	LevelError
	// LevelWarning is a warning about the code being compiled. It does not
	// prevent compilation from finishing.
	LevelWarning
	// LevelNote gives additional context for another diagnostic.
	LevelNote
	// LevelHelp suggests how to fix something.
	LevelHelp
)

func (l Level) String() string {
	switch l {
	case LevelBug:
		return "bug"
	case LevelFatal:
		return "fatal"
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelNote:
		return "note"
	case LevelHelp:
		return "help"
	}
	return "unknown"
}

// Diagnostic is one message about the code being compiled, tied to the
// source region it concerns. A zero Span marks a diagnostic without a
// location.
type Diagnostic struct {
	Level   Level
	Message string
	Span    Span
}

// DiagContext collects the diagnostics of one compilation and forwards each
// one to its emitter as it is recorded.
type DiagContext struct {
	diagnostics []Diagnostic
	emitter     Emitter
}

// NewDiagContext creates a diagnostics context routing through emitter.
func NewDiagContext(emitter Emitter) *DiagContext {
	return &DiagContext{emitter: emitter}
}

// Emit records the diagnostic and forwards it to the emitter.
func (c *DiagContext) Emit(d Diagnostic) {
	c.diagnostics = append(c.diagnostics, d)
	c.emitter.Emit(d)
}

// Diagnostics returns everything recorded so far, in emission order.
func (c *DiagContext) Diagnostics() []Diagnostic {
	return c.diagnostics
}
