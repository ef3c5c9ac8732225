package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// full is the reference record each projection test narrows from.
var full = LineColByteRange{Line: 2, Col: 7, Range: Span{Start: 17, End: 21}}

func TestProjections(t *testing.T) {
	assert.Equal(t, Line(2), Line(0).FromFull(full))
	assert.Equal(t, Col(7), Col(0).FromFull(full))
	assert.Equal(t, ByteStart(17), ByteStart(0).FromFull(full))
	assert.Equal(t, ByteEnd(21), ByteEnd(0).FromFull(full))
	assert.Equal(t, Span{Start: 17, End: 21}, Span{}.FromFull(full))
	assert.Equal(t, ByteRange{Start: 17, End: 21}, ByteRange{}.FromFull(full))
	assert.Equal(t, LineCol{Line: 2, Col: 7}, LineCol{}.FromFull(full))
	assert.Equal(t, LineColByte{Line: 2, Col: 7, ByteStart: 17}, LineColByte{}.FromFull(full))
}

func TestProjectionIdentity(t *testing.T) {
	assert.Equal(t, full, LineColByteRange{}.FromFull(full))
}

func TestProjectionIgnoresReceiver(t *testing.T) {
	// FromFull is called on the zero value by iterators, but must be a
	// pure function of its argument regardless of receiver contents.
	assert.Equal(t, Line(2), Line(99).FromFull(full))
	assert.Equal(t, LineCol{Line: 2, Col: 7}, LineCol{Line: 5, Col: 5}.FromFull(full))
}

func TestProjectionConsistency(t *testing.T) {
	// Every narrowed shape must agree with the corresponding field of the
	// record it was projected from.
	records := []LineColByteRange{
		{Line: 1, Col: 1, Range: Span{Start: 0, End: 1}},
		{Line: 1, Col: 7, Range: Span{Start: 6, End: 10}},
		{Line: 3, Col: 2, Range: Span{Start: 26, End: 30}},
	}

	for _, rec := range records {
		assert.Equal(t, rec.Line, int(Line(0).FromFull(rec)))
		assert.Equal(t, rec.Col, int(Col(0).FromFull(rec)))
		assert.Equal(t, rec.ByteStart(), int(ByteStart(0).FromFull(rec)))
		assert.Equal(t, rec.ByteEnd(), int(ByteEnd(0).FromFull(rec)))
		assert.Equal(t, rec.ByteRange(), Span{}.FromFull(rec))

		lc := LineCol{}.FromFull(rec)
		assert.Equal(t, rec.Line, lc.Line)
		assert.Equal(t, rec.Col, lc.Col)

		lcb := LineColByte{}.FromFull(rec)
		assert.Equal(t, rec.Line, lcb.Line)
		assert.Equal(t, rec.Col, lcb.Col)
		assert.Equal(t, rec.ByteStart(), lcb.ByteStart)
	}
}
