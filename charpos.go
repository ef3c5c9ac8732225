// Package charpos reports per-character positions over UTF-8 text.
//
// Every character of a string is paired with its 1-indexed line, 1-indexed
// column, and the half-open byte range it occupies. The caller picks which
// of those fields it wants through a type parameter, and the iterator
// yields exactly that shape:
//
//	for pos, c := range charpos.Chars[charpos.LineCol]("Hello 👋\nWorld").All() {
//	    fmt.Printf("[Ln %d, Col %d] %q\n", pos.Line, pos.Col, c)
//	}
//
// Columns count Unicode scalar values, so a 4-byte emoji advances the
// column by 1 and the byte offset by 4. Tab width and grapheme clusters
// are not considered, and a "\r\n" sequence is two characters.
//
// # Shapes
//
// The full record is LineColByteRange; Line, Col, ByteStart, ByteEnd,
// ByteRange, Span, LineCol and LineColByte are its projections, and
// position.Tuple2 through position.Tuple6 combine them:
//
//	it := charpos.Chars[position.Tuple2[charpos.LineCol, charpos.ByteRange]](text)
//
// Subpackages carry the moving parts: pkg/position defines the records,
// pkg/charseq the character-boundary iteration, pkg/tracker the
// line/column bookkeeping, and pkg/pattern, pkg/locate and pkg/walk build
// a small pattern-location toolkit on top of them.
package charpos

import (
	"github.com/codetrail/charpos/pkg/position"
	"github.com/codetrail/charpos/pkg/tracker"
)

// Re-export the record shapes so callers can import just
// "github.com/codetrail/charpos" for everyday use.
type (
	// Line is a 1-indexed line number.
	Line = position.Line

	// Col is a 1-indexed column number.
	Col = position.Col

	// ByteStart is the inclusive start byte offset of a character.
	ByteStart = position.ByteStart

	// ByteEnd is the exclusive end byte offset of a character.
	ByteEnd = position.ByteEnd

	// Span is a raw half-open byte range [Start, End).
	Span = position.Span

	// ByteRange is the byte span of a character as a record shape.
	ByteRange = position.ByteRange

	// LineCol is a combined line and column position.
	LineCol = position.LineCol

	// LineColByte adds the character's start byte to LineCol.
	LineColByte = position.LineColByte

	// LineColByteRange is the full record every other shape projects from.
	LineColByteRange = position.LineColByteRange
)

// Chars returns an iterator over the characters of s, each paired with its
// position projected to T.
func Chars[T position.Shape[T]](s string) *tracker.Iter[T] {
	return tracker.New[T](s)
}

// At returns the line and column of the character containing byteOffset.
// If byteOffset is at or past the end of s, the position one past the final
// character is returned; for an empty string that is 1:1.
func At(s string, byteOffset int) position.LineCol {
	after := position.LineCol{Line: 1, Col: 1}
	it := tracker.New[position.LineColByteRange](s)
	for {
		pos, c, ok := it.Next()
		if !ok {
			return after
		}
		if byteOffset < pos.Range.End {
			return position.LineCol{Line: pos.Line, Col: pos.Col}
		}
		if c == '\n' {
			after = position.LineCol{Line: pos.Line + 1, Col: 1}
		} else {
			after = position.LineCol{Line: pos.Line, Col: pos.Col + 1}
		}
	}
}

// Count returns the number of Unicode scalar values in s.
func Count(s string) int {
	n := 0
	it := tracker.New[position.Line](s)
	for {
		if _, _, ok := it.Next(); !ok {
			return n
		}
		n++
	}
}

// Last returns the full record and character of the final scalar value of
// s. ok is false for an empty string.
func Last(s string) (pos position.LineColByteRange, c rune, ok bool) {
	it := tracker.New[position.LineColByteRange](s)
	for {
		p, r, more := it.Next()
		if !more {
			return pos, c, ok
		}
		pos, c, ok = p, r, true
	}
}
