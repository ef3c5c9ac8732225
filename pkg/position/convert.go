package position

// The conversion lattice: every shape builds itself from the full record.
// Each projection is total and deterministic; composed shapes derive every
// field from the same record, never from independent state.

func (Line) FromFull(p LineColByteRange) Line {
	return Line(p.Line)
}

func (Col) FromFull(p LineColByteRange) Col {
	return Col(p.Col)
}

func (ByteStart) FromFull(p LineColByteRange) ByteStart {
	return ByteStart(p.Range.Start)
}

func (ByteEnd) FromFull(p LineColByteRange) ByteEnd {
	return ByteEnd(p.Range.End)
}

func (Span) FromFull(p LineColByteRange) Span {
	return p.Range
}

func (ByteRange) FromFull(p LineColByteRange) ByteRange {
	return ByteRange(p.Range)
}

func (LineCol) FromFull(p LineColByteRange) LineCol {
	return LineCol{Line: p.Line, Col: p.Col}
}

func (LineColByte) FromFull(p LineColByteRange) LineColByte {
	return LineColByte{Line: p.Line, Col: p.Col, ByteStart: p.Range.Start}
}

// FromFull on the full record is the identity projection.
func (LineColByteRange) FromFull(p LineColByteRange) LineColByteRange {
	return p
}
