package hex

import "sort"

// Row layout
//
// Row 0 is A cells wide. Stepping down to row y, the row loses a cell on the
// left once y >= B and gains one on the right while y < C. Solving that
// recurrence gives
//
//	offset(y) = max(0, y-B+1)
//	width(y)  = A + min(y, C-1) - offset(y)
//
// and the running cell count before row y is the sum of the widths above it.

// rowSpan returns the first x and the width of row y. The caller must have
// checked that y lies in [0, Height()).
func (p Params) rowSpan(y int) (offset, width int) {
	offset = max(0, y-p.B+1)
	width = p.A + min(y, p.C-1) - offset
	return offset, width
}

// rowStart returns the number of cells in rows [0, y).
func (p Params) rowStart(y int) int {
	// Rows above y gain min(r, C-1) cells: 0, 1, ... up to C-1, then flat.
	m := p.C - 1
	k := min(y, m+1)
	grown := k*(k-1)/2 + (y-k)*m

	// Rows above y lose max(0, r-B+1) cells: 0, 1, 2, ... once r reaches B-1.
	n := max(0, y-p.B+1)
	shrunk := n * (n - 1) / 2

	return p.A*y + grown - shrunk
}

// OutOfBounds reports whether c lies outside the region. Every coordinate is
// out of bounds of an invalid region.
func (p Params) OutOfBounds(c Coord) bool {
	if !p.Valid() {
		return true
	}
	if c.Y < 0 || c.Y >= p.Height() {
		return true
	}
	offset, width := p.rowSpan(c.Y)
	return c.X < offset || c.X >= offset+width
}

// Contains reports whether c lies inside the region.
func (p Params) Contains(c Coord) bool {
	return !p.OutOfBounds(c)
}

// AnyOutOfBounds reports whether any coordinate, shifted by offset, falls
// outside the region. It is used to test whether a shape can be placed.
func (p Params) AnyOutOfBounds(coords []Coord, offset Coord) bool {
	for _, c := range coords {
		if p.OutOfBounds(c.Add(offset)) {
			return true
		}
	}
	return false
}

// Index returns the row-major position of c in the order produced by
// Coords, or -1 if c is out of bounds.
func (p Params) Index(c Coord) int {
	if p.OutOfBounds(c) {
		return -1
	}
	offset, _ := p.rowSpan(c.Y)
	return p.rowStart(c.Y) + c.X - offset
}

// CoordAt is the inverse of Index. It returns false when i is not in
// [0, Size()) or the region is invalid.
func (p Params) CoordAt(i int) (Coord, bool) {
	if !p.Valid() || i < 0 || i >= p.Size() {
		return Coord{}, false
	}
	// First row whose start lies beyond i, minus one.
	y := sort.Search(p.Height(), func(r int) bool {
		return p.rowStart(r+1) > i
	})
	offset, _ := p.rowSpan(y)
	return Coord{X: offset + i - p.rowStart(y), Y: y}, true
}

// Coords enumerates every coordinate of the region top to bottom, left to
// right. The first cell is (0, 0) and the result has Size() entries.
func (p Params) Coords() []Coord {
	if !p.Valid() {
		return nil
	}
	coords := make([]Coord, 0, p.Size())
	for y := 0; y < p.Height(); y++ {
		offset, width := p.rowSpan(y)
		for x := offset; x < offset+width; x++ {
			coords = append(coords, C(x, y))
		}
	}
	return coords
}

// FindInBounds nudges c one cell at a time until it lies inside the region:
// vertically first, then toward the row along x. This is a directional
// projection, not a nearest-cell search. An invalid region returns c as is.
func (p Params) FindInBounds(c Coord) Coord {
	if !p.Valid() {
		return c
	}
	h := p.Height()
	for p.OutOfBounds(c) {
		switch {
		case c.Y < 0:
			c = c.Shift(0, 1)
		case c.Y >= h:
			c = c.Shift(0, -1)
		case c.X < 0 || c.X-c.Y+p.B <= 0:
			c = c.Shift(1, 0)
		default:
			c = c.Shift(-1, 0)
		}
	}
	return c
}

// MoveInBounds steps from c in an orthogonal direction, trying the hex
// neighbors that approximate it in mode's preference order. The first
// candidate inside the region wins; if none is, c is returned unchanged.
func (p Params) MoveInBounds(c Coord, d OrthoDir, mode OrthoMode) Coord {
	for _, dir := range mode.candidates(d) {
		if n := c.Neighbor(dir); !p.OutOfBounds(n) {
			return n
		}
	}
	return c
}
