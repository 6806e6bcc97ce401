package risl

// TokenKind identifies the lexical category of a token.
type TokenKind uint8

const (
	// Single-character tokens
	KindLeftParen TokenKind = iota
	KindRightParen
	KindLeftBrace
	KindRightBrace
	KindLeftBracket
	KindRightBracket
	KindComma
	KindMinus
	KindPlus
	KindColon
	KindSemicolon
	KindSlash
	KindBackslash
	KindStar
	KindAmpersand
	KindPipe
	// One or two character tokens
	KindNot
	KindNotEqual
	KindEqual
	KindEqualEqual
	KindGreater
	KindGreaterEqual
	KindLess
	KindLessEqual
	KindDot
	KindDotDot
	KindDotDotEqual
	// Literals
	KindIdentifier
	KindString
	KindInteger
	KindFloat
	// Keywords
	KindAnd
	KindBreak
	KindConst
	KindContinue
	KindElse
	KindEnum
	KindFalse
	KindFn
	KindFor
	KindIf
	KindIn
	KindLet
	KindMatch
	KindMut
	KindNil
	KindOr
	KindPub
	KindReturn
	KindSelfValue
	KindSelfType
	KindStruct
	KindSuper
	KindThis
	KindTrue
	KindWhile
	// Others
	KindWhitespace
	KindLineComment
	KindBlockComment
	KindErr
)

var kindNames = [...]string{
	KindLeftParen:    "LeftParen",
	KindRightParen:   "RightParen",
	KindLeftBrace:    "LeftBrace",
	KindRightBrace:   "RightBrace",
	KindLeftBracket:  "LeftBracket",
	KindRightBracket: "RightBracket",
	KindComma:        "Comma",
	KindMinus:        "Minus",
	KindPlus:         "Plus",
	KindColon:        "Colon",
	KindSemicolon:    "Semicolon",
	KindSlash:        "Slash",
	KindBackslash:    "Backslash",
	KindStar:         "Star",
	KindAmpersand:    "Ampersand",
	KindPipe:         "Pipe",
	KindNot:          "Not",
	KindNotEqual:     "NotEqual",
	KindEqual:        "Equal",
	KindEqualEqual:   "EqualEqual",
	KindGreater:      "Greater",
	KindGreaterEqual: "GreaterEqual",
	KindLess:         "Less",
	KindLessEqual:    "LessEqual",
	KindDot:          "Dot",
	KindDotDot:       "DotDot",
	KindDotDotEqual:  "DotDotEqual",
	KindIdentifier:   "Identifier",
	KindString:       "String",
	KindInteger:      "Integer",
	KindFloat:        "Float",
	KindAnd:          "And",
	KindBreak:        "Break",
	KindConst:        "Const",
	KindContinue:     "Continue",
	KindElse:         "Else",
	KindEnum:         "Enum",
	KindFalse:        "False",
	KindFn:           "Fn",
	KindFor:          "For",
	KindIf:           "If",
	KindIn:           "In",
	KindLet:          "Let",
	KindMatch:        "Match",
	KindMut:          "Mut",
	KindNil:          "Nil",
	KindOr:           "Or",
	KindPub:          "Pub",
	KindReturn:       "Return",
	KindSelfValue:    "SelfValue",
	KindSelfType:     "SelfType",
	KindStruct:       "Struct",
	KindSuper:        "Super",
	KindThis:         "This",
	KindTrue:         "True",
	KindWhile:        "While",
	KindWhitespace:   "Whitespace",
	KindLineComment:  "LineComment",
	KindBlockComment: "BlockComment",
	KindErr:          "Err",
}

func (k TokenKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// IntegerBase is the numeric base of an integer or float literal.
type IntegerBase uint8

const (
	BaseBinary IntegerBase = iota
	BaseOctal
	BaseDecimal
	BaseHexadecimal
)

func (b IntegerBase) String() string {
	switch b {
	case BaseBinary:
		return "Bin"
	case BaseOctal:
		return "Oct"
	case BaseDecimal:
		return "Dec"
	case BaseHexadecimal:
		return "Hex"
	}
	return "Unknown"
}

// IntegerLiteral delimits a lexed integer: the digit run (excluding any base
// prefix) and the trailing type suffix, which may be empty.
type IntegerLiteral struct {
	Base   IntegerBase
	Value  Span
	Suffix Span
}

// FloatLiteral delimits a lexed floating-point literal. FractionalPart,
// Exponent, and Suffix may all be empty; Exponent includes the sign
// character when one is present.
type FloatLiteral struct {
	Base           IntegerBase
	IntegerPart    Span
	FractionalPart Span
	Exponent       Span
	Suffix         Span
}

// Token is one classified lexical unit. It is a flat, comparable value: the
// payload fields are only meaningful for the kind that carries them (Text
// for identifiers, strings, comments, and error runs; Integer and Float for
// the numeric literals). Tokens never own source text.
type Token struct {
	Kind    TokenKind
	Text    Span
	Integer IntegerLiteral
	Float   FloatLiteral
}

// NewToken builds a token for a kind that carries no payload.
func NewToken(kind TokenKind) Token {
	return Token{Kind: kind}
}

// NewSpanToken builds a token whose payload is a single source span.
func NewSpanToken(kind TokenKind, text Span) Token {
	return Token{Kind: kind, Text: text}
}

// NewIntegerToken builds an integer literal token.
func NewIntegerToken(lit IntegerLiteral) Token {
	return Token{Kind: KindInteger, Integer: lit}
}

// NewFloatToken builds a float literal token.
func NewFloatToken(lit FloatLiteral) Token {
	return Token{Kind: KindFloat, Float: lit}
}

// IsSkippable reports whether the token carries no information for a parser
// and is dropped from the token stream.
func (t Token) IsSkippable() bool {
	return t.Kind == KindWhitespace
}

var keywords = map[string]TokenKind{
	"and":      KindAnd,
	"break":    KindBreak,
	"const":    KindConst,
	"continue": KindContinue,
	"else":     KindElse,
	"enum":     KindEnum,
	"false":    KindFalse,
	"fn":       KindFn,
	"for":      KindFor,
	"if":       KindIf,
	"in":       KindIn,
	"let":      KindLet,
	"match":    KindMatch,
	"mut":      KindMut,
	"nil":      KindNil,
	"or":       KindOr,
	"pub":      KindPub,
	"return":   KindReturn,
	"self":     KindSelfValue,
	"Self":     KindSelfType,
	"struct":   KindStruct,
	"super":    KindSuper,
	"this":     KindThis,
	"true":     KindTrue,
	"while":    KindWhile,
}

// LookupKeyword returns the keyword kind for word, if it is one of the
// reserved words. The lexer itself emits plain Identifier tokens; resolving
// keywords is left to the consumer so that contextual uses stay possible.
func LookupKeyword(word string) (TokenKind, bool) {
	kind, ok := keywords[word]
	return kind, ok
}
