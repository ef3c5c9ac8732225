// Package charseq iterates the characters of a UTF-8 string together with
// the half-open byte range each one occupies. The yielded ranges are
// contiguous and exhaustive: the first starts at 0, each range starts where
// the previous one ended, and together they cover the whole buffer.
package charseq

import (
	"iter"
	"unicode/utf8"

	"github.com/codetrail/charpos/pkg/position"
)

// Ranges is a pull iterator over (byte range, character) pairs. It holds a
// read-only view of the source string and never copies or allocates.
//
// A Ranges is fused: once Next reports no more characters it keeps doing
// so. Instances are single-consumer; separate instances over the same
// string are independent.
type Ranges struct {
	s   string
	off int
}

// New returns an iterator over the characters of s.
func New(s string) *Ranges {
	return &Ranges{s: s}
}

// Next yields the byte range and character at the current offset and
// advances past it. The third return is false once the string is exhausted.
func (r *Ranges) Next() (position.Span, rune, bool) {
	if r.off >= len(r.s) {
		return position.Span{}, 0, false
	}
	c, size := utf8.DecodeRuneInString(r.s[r.off:])
	span := position.Span{Start: r.off, End: r.off + size}
	r.off = span.End
	return span, c, true
}

// Rest returns the not-yet-consumed remainder of the source string. It does
// not advance the iterator.
func (r *Ranges) Rest() string {
	return r.s[r.off:]
}

// All adapts the iterator for range-over-func consumption. Ranging advances
// the same underlying state as Next, so breaking out and calling Next
// resumes where the loop stopped.
func (r *Ranges) All() iter.Seq2[position.Span, rune] {
	return func(yield func(position.Span, rune) bool) {
		for {
			span, c, ok := r.Next()
			if !ok {
				return
			}
			if !yield(span, c) {
				return
			}
		}
	}
}
