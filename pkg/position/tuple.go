package position

// Tuples let a caller ask for several shapes at once, each slot projected
// independently from the same full record. Duplicate slots are fine: both
// receive the same value. Tuples implement Shape of themselves, so they
// nest, though arities 1 through 6 cover what flat combinations need.

// Tuple1 wraps a single shape.
type Tuple1[A Shape[A]] struct {
	A A
}

func (Tuple1[A]) FromFull(p LineColByteRange) Tuple1[A] {
	var a A
	return Tuple1[A]{A: a.FromFull(p)}
}

// Tuple2 pairs two shapes.
type Tuple2[A Shape[A], B Shape[B]] struct {
	A A
	B B
}

func (Tuple2[A, B]) FromFull(p LineColByteRange) Tuple2[A, B] {
	var (
		a A
		b B
	)
	return Tuple2[A, B]{A: a.FromFull(p), B: b.FromFull(p)}
}

// Tuple3 combines three shapes.
type Tuple3[A Shape[A], B Shape[B], C Shape[C]] struct {
	A A
	B B
	C C
}

func (Tuple3[A, B, C]) FromFull(p LineColByteRange) Tuple3[A, B, C] {
	var (
		a A
		b B
		c C
	)
	return Tuple3[A, B, C]{A: a.FromFull(p), B: b.FromFull(p), C: c.FromFull(p)}
}

// Tuple4 combines four shapes.
type Tuple4[A Shape[A], B Shape[B], C Shape[C], D Shape[D]] struct {
	A A
	B B
	C C
	D D
}

func (Tuple4[A, B, C, D]) FromFull(p LineColByteRange) Tuple4[A, B, C, D] {
	var (
		a A
		b B
		c C
		d D
	)
	return Tuple4[A, B, C, D]{
		A: a.FromFull(p),
		B: b.FromFull(p),
		C: c.FromFull(p),
		D: d.FromFull(p),
	}
}

// Tuple5 combines five shapes.
type Tuple5[A Shape[A], B Shape[B], C Shape[C], D Shape[D], E Shape[E]] struct {
	A A
	B B
	C C
	D D
	E E
}

func (Tuple5[A, B, C, D, E]) FromFull(p LineColByteRange) Tuple5[A, B, C, D, E] {
	var (
		a A
		b B
		c C
		d D
		e E
	)
	return Tuple5[A, B, C, D, E]{
		A: a.FromFull(p),
		B: b.FromFull(p),
		C: c.FromFull(p),
		D: d.FromFull(p),
		E: e.FromFull(p),
	}
}

// Tuple6 combines six shapes.
type Tuple6[A Shape[A], B Shape[B], C Shape[C], D Shape[D], E Shape[E], F Shape[F]] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

func (Tuple6[A, B, C, D, E, F]) FromFull(p LineColByteRange) Tuple6[A, B, C, D, E, F] {
	var (
		a A
		b B
		c C
		d D
		e E
		f F
	)
	return Tuple6[A, B, C, D, E, F]{
		A: a.FromFull(p),
		B: b.FromFull(p),
		C: c.FromFull(p),
		D: d.FromFull(p),
		E: e.FromFull(p),
		F: f.FromFull(p),
	}
}
