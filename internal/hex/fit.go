package hex

// resolveFit balances the excess of p over q. While exactly two axes of the
// difference are positive, one unit moves from those two into the third.
// Each unit moved out of the (a, c) pair shifts the placement one cell east
// and each unit out of the (b, c) pair shifts it one cell south-west.
func (p Params) resolveFit(q Params) (Params, Coord) {
	s := p.Sub(q)
	a, b, c := s.A, s.B, s.C
	var fit Coord

	for a > 0 && b > 0 && c <= 0 {
		a--
		b--
		c++
	}
	for a > 0 && b <= 0 && c > 0 {
		a--
		b++
		c--
		fit = fit.Shift(1, 0)
	}
	for a <= 0 && b > 0 && c > 0 {
		a++
		b--
		c--
		fit = fit.Shift(0, 1)
	}
	return Params{A: a, B: b, C: c}, fit
}

// FitRange returns the region of offsets at which q can be placed inside p.
// The result is invalid when q does not fit at all.
func (p Params) FitRange(q Params) Params {
	r, _ := p.resolveFit(q)
	return r
}

// FitOffset returns the origin of the FitRange region relative to p.
func (p Params) FitOffset(q Params) Coord {
	_, fit := p.resolveFit(q)
	return fit
}

// SubgridOutOfBounds reports whether q placed at offset does not fit inside p.
func (p Params) SubgridOutOfBounds(q Params, offset Coord) bool {
	r, fit := p.resolveFit(q)
	if !r.Valid() {
		return true
	}
	return r.OutOfBounds(offset.Add(fit))
}
