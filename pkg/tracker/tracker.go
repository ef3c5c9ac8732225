// Package tracker turns a UTF-8 string into a stream of per-character
// position records in one forward pass. The record shape is a type
// parameter: ask for position.Line and each step yields just the line
// number, ask for position.LineColByteRange and each step yields the full
// record. See pkg/position for the supported shapes.
package tracker

import (
	"iter"

	"github.com/codetrail/charpos/pkg/charseq"
	"github.com/codetrail/charpos/pkg/position"
)

// Iter walks a string left to right, pairing every character with its
// position projected to T. It does O(1) work per character and performs no
// allocation or I/O.
//
// Iter is fused and single-consumer, like charseq.Ranges.
type Iter[T position.Shape[T]] struct {
	src  *charseq.Ranges
	line int
	col  int
}

// New returns an iterator over the characters of s, positioned at line 1,
// column 1. The string is held by reference and never copied.
func New[T position.Shape[T]](s string) *Iter[T] {
	return &Iter[T]{src: charseq.New(s), line: 1, col: 1}
}

// Next yields the next character and its position. The position reported
// for a line feed is the one the line feed itself occupies; the reset to
// column 1 applies to the character after it.
func (it *Iter[T]) Next() (T, rune, bool) {
	span, c, ok := it.src.Next()
	if !ok {
		var zero T
		return zero, 0, false
	}

	full := position.LineColByteRange{Line: it.line, Col: it.col, Range: span}

	if c == '\n' {
		it.line++
		it.col = 1
	} else {
		it.col++
	}

	var shape T
	return shape.FromFull(full), c, true
}

// Rest returns the not-yet-consumed remainder of the source string without
// advancing the iterator.
func (it *Iter[T]) Rest() string {
	return it.src.Rest()
}

// All adapts the iterator for range-over-func consumption, sharing state
// with Next.
func (it *Iter[T]) All() iter.Seq2[T, rune] {
	return func(yield func(T, rune) bool) {
		for {
			pos, c, ok := it.Next()
			if !ok {
				return
			}
			if !yield(pos, c) {
				return
			}
		}
	}
}
