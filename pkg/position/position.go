// Package position defines the per-character position records produced by
// the tracker, and the conversion lattice that narrows the full record down
// to whichever fields a caller asked for.
//
// LineColByteRange is the full record; every other shape is a pure
// projection of it. Lines and columns are 1-indexed. Columns count Unicode
// scalar values, not bytes: a 4-byte rune advances the byte offset by 4 but
// the column by 1.
package position

import "fmt"

// Line is a 1-indexed line number.
type Line int

// Col is a 1-indexed column number: the count of scalar values since the
// last line start, inclusive.
type Col int

// ByteStart is the inclusive start byte offset of a character.
type ByteStart int

// ByteEnd is the exclusive end byte offset of a character.
type ByteEnd int

// Span is a half-open byte range [Start, End).
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// ByteRange is the byte span of a character as a record shape. It carries
// the same fields as Span; the distinct type exists so that the raw range
// and the record remain separate slots in the conversion lattice.
type ByteRange Span

func (r ByteRange) String() string {
	return Span(r).String()
}

// LineCol is a combined line and column position.
type LineCol struct {
	Line int
	Col  int
}

func (p LineCol) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// LineColByte is a line and column position plus the character's start byte.
type LineColByte struct {
	Line      int
	Col       int
	ByteStart int
}

func (p LineColByte) String() string {
	return fmt.Sprintf("%d:%d+%d", p.Line, p.Col, p.ByteStart)
}

// LineColByteRange is the full per-character record: line, column, and the
// half-open byte range the character occupies. All other shapes in this
// package are projections of it.
type LineColByteRange struct {
	Line  int
	Col   int
	Range Span
}

// ByteStart returns the inclusive start byte offset.
func (p LineColByteRange) ByteStart() int {
	return p.Range.Start
}

// ByteEnd returns the exclusive end byte offset.
func (p LineColByteRange) ByteEnd() int {
	return p.Range.End
}

// ByteRange returns the byte span as a raw range.
func (p LineColByteRange) ByteRange() Span {
	return p.Range
}

func (p LineColByteRange) String() string {
	return fmt.Sprintf("%d:%d (%s)", p.Line, p.Col, p.Range)
}

// Shape constrains the record types an iterator can yield. FromFull builds
// the shape from the full record, keeping only the fields the shape
// carries. The receiver is always the zero value; implementations must not
// read it.
//
// The projection is resolved per instantiation at compile time, so a caller
// that only wants line numbers never touches byte ranges.
type Shape[T any] interface {
	FromFull(LineColByteRange) T
}
