package risl

// ParseContext carries cross-cutting state shared by the parsing phases.
// The lexer stores it at construction and never requires it to act; lexical
// problems surface as tokens, not diagnostics.
type ParseContext struct {
	diag *DiagContext
}

// NewParseContext creates a parse context around the given diagnostics
// context.
func NewParseContext(diag *DiagContext) *ParseContext {
	return &ParseContext{diag: diag}
}

// Diag returns the diagnostics context.
func (c *ParseContext) Diag() *DiagContext {
	return c.diag
}
