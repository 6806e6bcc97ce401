package risl

import (
	"unicode"
	"unicode/utf8"
)

// Close approximation of Unicode XID_Start / XID_Continue built from the
// stdlib range tables.
var (
	xidStart    = []*unicode.RangeTable{unicode.L, unicode.Nl, unicode.Other_ID_Start}
	xidContinue = []*unicode.RangeTable{
		unicode.L, unicode.Nl, unicode.Other_ID_Start,
		unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue,
	}
)

func isIdentifierStart(r rune) bool {
	return r == '_' || unicode.In(r, xidStart...)
}

func isIdentifierContinuation(r rune) bool {
	return r == '_' || unicode.In(r, xidContinue...)
}

// The start of a number is always a character between 0 and 9; only
// continuation predicates exist per base.
func isDigitStart(r rune) bool {
	return r >= '0' && r <= '9'
}

func isBinaryDigitContinuation(r rune) bool {
	return r == '0' || r == '1' || r == '_'
}

func isOctalDigitContinuation(r rune) bool {
	return (r >= '0' && r <= '7') || r == '_'
}

func isDecimalDigitContinuation(r rune) bool {
	return (r >= '0' && r <= '9') || r == '_'
}

func isHexDigitContinuation(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F') || r == '_'
}

func isNotNewline(r rune) bool {
	return r != '\n'
}

// Lexer turns one source buffer into a stream of tokens. It holds a
// one-token lookahead slot so that a run of unrecognized characters can be
// returned as a single Err token while the valid token that ended the run
// waits for the next call.
//
// A Lexer is single-use and not safe for concurrent calls.
type Lexer struct {
	ctx        *ParseContext
	source     string
	cursor     cursor
	pending    Token
	hasPending bool
}

// NewLexer creates a lexer over source. The parse context is stored for
// later phases; the lexer itself never requires it to act, so a context
// built around a discard emitter works fine.
func NewLexer(ctx *ParseContext, source string) *Lexer {
	return &Lexer{ctx: ctx, source: source, cursor: newCursor(source)}
}

// Lex tokenizes source and returns all tokens in order.
func Lex(ctx *ParseContext, source string) []Token {
	lexer := NewLexer(ctx, source)
	var tokens []Token
	for {
		token, ok := lexer.NextToken()
		if !ok {
			return tokens
		}
		tokens = append(tokens, token)
	}
}

// takeWhile advances the cursor while pred holds and returns the span that
// was consumed.
func (l *Lexer) takeWhile(pred func(rune) bool) Span {
	start := l.cursor.consumed
	l.cursor.advanceWhile(pred)
	return NewSpan(start, l.cursor.consumed)
}

// tokenizeIdentifier extracts the identifier starting at firstChar, which
// has already been consumed.
func (l *Lexer) tokenizeIdentifier(firstChar rune) Token {
	identifier := l.takeWhile(isIdentifierContinuation)
	// Widen the span to include the already consumed first rune.
	identifier.Start -= ByteIndex(utf8.RuneLen(firstChar))
	return NewSpanToken(KindIdentifier, identifier)
}

// extractNumberBase consumes the base prefix of a number, if present, and
// reports whether one was consumed.
func (l *Lexer) extractNumberBase(firstDigit rune) (IntegerBase, bool) {
	if firstDigit != '0' {
		return BaseDecimal, false
	}
	switch r, _ := l.cursor.peek(); r {
	case 'b':
		l.cursor.next()
		return BaseBinary, true
	case 'o':
		l.cursor.next()
		return BaseOctal, true
	case 'x':
		l.cursor.next()
		return BaseHexadecimal, true
	}
	return BaseDecimal, false
}

// extractFloatExponent consumes an optional sign and the exponent digit
// run. The exponent marker itself has already been consumed; the returned
// span includes the sign when one is present.
func (l *Lexer) extractFloatExponent() Span {
	signed := false
	if r, ok := l.cursor.peek(); ok && (r == '-' || r == '+') {
		l.cursor.next()
		signed = true
	}
	exponent := l.takeWhile(isDecimalDigitContinuation)
	if signed {
		exponent.Start--
	}
	return exponent
}

func digitContinuation(base IntegerBase) func(rune) bool {
	switch base {
	case BaseBinary:
		return isBinaryDigitContinuation
	case BaseOctal:
		return isOctalDigitContinuation
	case BaseHexadecimal:
		return isHexDigitContinuation
	}
	return isDecimalDigitContinuation
}

// tokenizeNumber extracts an integer or float literal starting at
// firstDigit, which has already been consumed. No validation happens here:
// an empty digit run after a base prefix or an empty exponent still
// produces a literal token, and a later phase decides what to do with it.
func (l *Lexer) tokenizeNumber(firstDigit rune) Token {
	base, prefixed := l.extractNumberBase(firstDigit)
	value := l.takeWhile(digitContinuation(base))
	if !prefixed {
		// Include the first digit, always one byte as 0..9 are ASCII.
		value.Start--
	}
	if r, ok := l.cursor.peek(); ok && r == '.' {
		// A dot only makes this a float when what follows is neither
		// another dot (range syntax) nor an identifier start (member
		// access on the integer).
		if after, ok := l.cursor.peekNth(1); ok && after != '.' && !isIdentifierStart(after) {
			l.cursor.next()
			integerPart := value
			fractionalPart := l.takeWhile(isDecimalDigitContinuation)
			exponent := EmptySpan(l.cursor.consumed)
			if e, ok := l.cursor.peek(); ok && (e == 'e' || e == 'E') {
				l.cursor.next()
				exponent = l.extractFloatExponent()
			}
			suffix := l.takeWhile(isIdentifierContinuation)
			return NewFloatToken(FloatLiteral{
				Base:           base,
				IntegerPart:    integerPart,
				FractionalPart: fractionalPart,
				Exponent:       exponent,
				Suffix:         suffix,
			})
		}
	} else if base != BaseHexadecimal {
		// An exponent marker also makes a float, except in hexadecimal
		// where 'e' is a digit and was consumed with the value run.
		if e, ok := l.cursor.peek(); ok && (e == 'e' || e == 'E') {
			integerPart := value
			fractionalPart := EmptySpan(l.cursor.consumed)
			l.cursor.next()
			exponent := l.extractFloatExponent()
			suffix := l.takeWhile(isIdentifierContinuation)
			return NewFloatToken(FloatLiteral{
				Base:           base,
				IntegerPart:    integerPart,
				FractionalPart: fractionalPart,
				Exponent:       exponent,
				Suffix:         suffix,
			})
		}
	}
	suffix := l.takeWhile(isIdentifierContinuation)
	return NewIntegerToken(IntegerLiteral{Base: base, Value: value, Suffix: suffix})
}

// advanceUntilEndOfComment consumes nested block comment content until the
// matching closing delimiter and reports whether that delimiter was found
// before end of input.
func (l *Lexer) advanceUntilEndOfComment() bool {
	level := 1
	for {
		c, ok := l.cursor.next()
		if !ok {
			return false
		}
		switch c {
		case '/':
			if r, ok := l.cursor.peek(); ok && r == '*' {
				l.cursor.next()
				level++
			}
		case '*':
			if r, ok := l.cursor.peek(); ok && r == '/' {
				l.cursor.next()
				level--
			}
		}
		if level == 0 {
			return true
		}
	}
}

// parseToken classifies the already consumed rune c and assembles exactly
// one token, consuming whatever else belongs to it.
func (l *Lexer) parseToken(c rune) Token {
	if unicode.IsSpace(c) {
		l.cursor.advanceWhile(unicode.IsSpace)
		return NewToken(KindWhitespace)
	}
	switch c {
	case '(':
		return NewToken(KindLeftParen)
	case ')':
		return NewToken(KindRightParen)
	case '{':
		return NewToken(KindLeftBrace)
	case '}':
		return NewToken(KindRightBrace)
	case '[':
		return NewToken(KindLeftBracket)
	case ']':
		return NewToken(KindRightBracket)
	case ',':
		return NewToken(KindComma)
	case '.':
		return NewToken(KindDot)
	case '-':
		return NewToken(KindMinus)
	case '+':
		return NewToken(KindPlus)
	case ':':
		return NewToken(KindColon)
	case ';':
		return NewToken(KindSemicolon)
	case '/':
		switch r, _ := l.cursor.peek(); r {
		case '/':
			l.cursor.next()
			return NewSpanToken(KindLineComment, l.takeWhile(isNotNewline))
		case '*':
			l.cursor.next()
			start := l.cursor.consumed
			end := start
			if l.advanceUntilEndOfComment() {
				// Exclude the closing */ that was just consumed.
				end = l.cursor.consumed - 2
			} else {
				// Unterminated comment: the span ends where the input did.
				end = l.cursor.consumed
			}
			return NewSpanToken(KindBlockComment, NewSpan(start, end))
		}
		return NewToken(KindSlash)
	case '\\':
		return NewToken(KindBackslash)
	case '*':
		return NewToken(KindStar)
	case '&':
		return NewToken(KindAmpersand)
	case '|':
		return NewToken(KindPipe)
	case '!':
		if r, ok := l.cursor.peek(); ok && r == '=' {
			l.cursor.next()
			return NewToken(KindNotEqual)
		}
		return NewToken(KindNot)
	case '=':
		if r, ok := l.cursor.peek(); ok && r == '=' {
			l.cursor.next()
			return NewToken(KindEqualEqual)
		}
		return NewToken(KindEqual)
	case '>':
		if r, ok := l.cursor.peek(); ok && r == '=' {
			l.cursor.next()
			return NewToken(KindGreaterEqual)
		}
		return NewToken(KindGreater)
	case '<':
		if r, ok := l.cursor.peek(); ok && r == '=' {
			l.cursor.next()
			return NewToken(KindLessEqual)
		}
		return NewToken(KindLess)
	}
	switch {
	case isDigitStart(c):
		return l.tokenizeNumber(c)
	case isIdentifierStart(c):
		return l.tokenizeIdentifier(c)
	}
	return NewSpanToken(KindErr, NewSpan(l.cursor.consumed-l.cursor.width, l.cursor.consumed))
}

// NextToken returns the next token in the source, or reports false once the
// input is exhausted. Whitespace never surfaces, and adjacent unrecognized
// characters are merged into one Err token emitted in source order before
// the valid token that terminated the run.
func (l *Lexer) NextToken() (Token, bool) {
	if l.hasPending {
		l.hasPending = false
		return l.pending, true
	}
	var invalid Span
	hasInvalid := false
	for {
		c, ok := l.cursor.next()
		if !ok {
			// Flush a trailing run of unrecognized characters.
			if hasInvalid {
				return NewSpanToken(KindErr, invalid), true
			}
			return Token{}, false
		}
		token := l.parseToken(c)
		switch {
		case token.IsSkippable():
			continue
		case token.Kind == KindErr:
			if hasInvalid {
				invalid.Merge(token.Text)
			} else {
				invalid = token.Text
				hasInvalid = true
			}
			continue
		default:
			if hasInvalid {
				// Return the accumulated Err first and keep the valid
				// token for the next call.
				l.pending = token
				l.hasPending = true
				return NewSpanToken(KindErr, invalid), true
			}
			return token, true
		}
	}
}
