package risl

import "fmt"

var kindSpellings = map[TokenKind]string{
	KindLeftParen:    "(",
	KindRightParen:   ")",
	KindLeftBrace:    "{",
	KindRightBrace:   "}",
	KindLeftBracket:  "[",
	KindRightBracket: "]",
	KindComma:        ",",
	KindMinus:        "-",
	KindPlus:         "+",
	KindColon:        ":",
	KindSemicolon:    ";",
	KindSlash:        "/",
	KindBackslash:    "\\",
	KindStar:         "*",
	KindAmpersand:    "&",
	KindPipe:         "|",
	KindNot:          "!",
	KindNotEqual:     "!=",
	KindEqual:        "=",
	KindEqualEqual:   "==",
	KindGreater:      ">",
	KindGreaterEqual: ">=",
	KindLess:         "<",
	KindLessEqual:    "<=",
	KindDot:          ".",
	KindDotDot:       "..",
	KindDotDotEqual:  "..=",
	KindAnd:          "and",
	KindBreak:        "break",
	KindConst:        "const",
	KindContinue:     "continue",
	KindElse:         "else",
	KindEnum:         "enum",
	KindFalse:        "false",
	KindFn:           "fn",
	KindFor:          "for",
	KindIf:           "if",
	KindIn:           "in",
	KindLet:          "let",
	KindMatch:        "match",
	KindMut:          "mut",
	KindNil:          "nil",
	KindOr:           "or",
	KindPub:          "pub",
	KindReturn:       "return",
	KindSelfValue:    "self",
	KindSelfType:     "Self",
	KindStruct:       "struct",
	KindSuper:        "super",
	KindThis:         "this",
	KindTrue:         "true",
	KindWhile:        "while",
	KindWhitespace:   " ",
}

// TokenStr is a read-only view that resolves a token back to displayable
// text against the source it was lexed from. Punctuation and keywords render
// as their fixed spelling; span-carrying tokens render as the substring they
// delimit; numeric literals render their structured sub-spans.
type TokenStr struct {
	token  Token
	source string
}

// NewTokenStr pairs a token with the source buffer it indexes.
func NewTokenStr(token Token, source string) TokenStr {
	return TokenStr{token: token, source: source}
}

func (ts TokenStr) String() string {
	switch ts.token.Kind {
	case KindIdentifier, KindString, KindLineComment, KindBlockComment, KindErr:
		return ts.token.Text.In(ts.source)
	case KindInteger:
		lit := ts.token.Integer
		return fmt.Sprintf("%s, '%s', '%s'",
			lit.Base,
			lit.Value.In(ts.source),
			lit.Suffix.In(ts.source))
	case KindFloat:
		lit := ts.token.Float
		return fmt.Sprintf("{%s, '%s', '%s', '%s', '%s'}",
			lit.Base,
			lit.IntegerPart.In(ts.source),
			lit.FractionalPart.In(ts.source),
			lit.Exponent.In(ts.source),
			lit.Suffix.In(ts.source))
	}
	return kindSpellings[ts.token.Kind]
}
