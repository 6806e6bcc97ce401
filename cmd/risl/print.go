package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/risl-lang/risl/risl"
)

var (
	kindStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	spanStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	textStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	errTokenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
)

// renderTokens formats a token stream for display, one token per line.
func renderTokens(tokens []risl.Token, source string) string {
	var b strings.Builder
	for _, token := range tokens {
		b.WriteString(renderToken(token, source))
		b.WriteByte('\n')
	}
	return b.String()
}

func renderToken(token risl.Token, source string) string {
	kind := kindStyle.Render(fmt.Sprintf("%-12s", token.Kind))
	if token.Kind == risl.KindErr {
		kind = errTokenStyle.Render(fmt.Sprintf("%-12s", token.Kind))
	}
	text := risl.NewTokenStr(token, source).String()
	if span, ok := tokenSpan(token); ok {
		return fmt.Sprintf("%s %s %s",
			kind,
			spanStyle.Render(fmt.Sprintf("[%d..%d)", span.Start, span.End)),
			textStyle.Render(text))
	}
	return fmt.Sprintf("%s %s", kind, textStyle.Render(text))
}

// tokenSpan returns the display span for span-carrying tokens. Numeric
// literals report their full extent, from the value run (the base prefix is
// not covered by any sub-span) through the suffix.
func tokenSpan(token risl.Token) (risl.Span, bool) {
	switch token.Kind {
	case risl.KindIdentifier, risl.KindString, risl.KindLineComment, risl.KindBlockComment, risl.KindErr:
		return token.Text, true
	case risl.KindInteger:
		return risl.Span{Start: token.Integer.Value.Start, End: token.Integer.Suffix.End}, true
	case risl.KindFloat:
		return risl.Span{Start: token.Float.IntegerPart.Start, End: token.Float.Suffix.End}, true
	}
	return risl.Span{}, false
}
