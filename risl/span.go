package risl

import (
	"fmt"
	"math"
)

// ByteIndex addresses a byte in the source buffer being lexed.
type ByteIndex = uint32

// Span is a half-open [Start, End) byte interval into the original source
// buffer. It identifies a substring without copying it, so it is only
// meaningful next to the source it was produced from.
type Span struct {
	Start ByteIndex
	End   ByteIndex
}

// NewSpan builds a span from two byte offsets. It panics if an offset does
// not fit in a ByteIndex.
func NewSpan(start, end int) Span {
	return Span{Start: toByteIndex(start), End: toByteIndex(end)}
}

// EmptySpan returns a zero-width span at the given byte offset.
func EmptySpan(at int) Span {
	return NewSpan(at, at)
}

func toByteIndex(offset int) ByteIndex {
	if offset < 0 || offset > math.MaxUint32 {
		panic(fmt.Sprintf("risl: byte offset %d out of range", offset))
	}
	return ByteIndex(offset)
}

// Merge extends the span to also cover next. next must continue where the
// receiver ends.
func (s *Span) Merge(next Span) {
	s.End = next.End
}

// In resolves the span to its substring of source.
func (s Span) In(source string) string {
	return source[s.Start:s.End]
}

// Len returns the width of the span in bytes.
func (s Span) Len() int {
	return int(s.End - s.Start)
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}
