package hex

import "fmt"

// Params describes a finite trapezoid/hexagon shaped region of the lattice.
// A is the West-East extent, B the NE-SW extent and C the NW-SE extent.
// A region is only meaningful when all three are positive.
type Params struct {
	A int `json:"a" yaml:"a"`
	B int `json:"b" yaml:"b"`
	C int `json:"c" yaml:"c"`
}

// P is a convenience constructor for Params.
func P(a, b, c int) Params {
	return Params{A: a, B: b, C: c}
}

// String returns the triple as "(a, b, c)".
func (p Params) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.A, p.B, p.C)
}

// Valid reports whether all three extents are positive.
func (p Params) Valid() bool {
	return p.A > 0 && p.B > 0 && p.C > 0
}

// Height returns the number of rows in the region.
func (p Params) Height() int {
	return p.B + p.C - 1
}

// Size returns the number of cells in the region.
func (p Params) Size() int {
	return p.A*(p.B+p.C-1) + (p.B-1)*(p.C-1)
}

// Add combines two regions the way two trapezoids overlap along a shared
// edge: each axis is summed with a -1 bias.
func (p Params) Add(q Params) Params {
	return Params{A: p.A + q.A - 1, B: p.B + q.B - 1, C: p.C + q.C - 1}
}

// Sub is the inverse of Add: each axis is subtracted with a +1 bias.
// P.Sub(Q) is the range of offsets at which Q can sit inside P.
func (p Params) Sub(q Params) Params {
	return Params{A: p.A - q.A + 1, B: p.B - q.B + 1, C: p.C - q.C + 1}
}

// Rotate permutes the axes for a 120° turn per step.
// A clockwise step maps (a, b, c) to (b, c, a).
func (p Params) Rotate(steps int) Params {
	r := p
	if steps > 0 {
		for i := 0; i < steps%3; i++ {
			r = Params{A: r.B, B: r.C, C: r.A}
		}
	} else if steps < 0 {
		for i := 0; i < (-steps)%3; i++ {
			r = Params{A: r.C, B: r.A, C: r.B}
		}
	}
	return r
}
