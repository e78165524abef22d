// Package hex provides coordinate algebra and region geometry for the
// hexagonal board. It is pure and deterministic: no I/O, no global state.
package hex

import "fmt"

// Coord is an axial position on the infinite hex lattice.
// X runs West to East, Y runs NE to SW. The cubic z component is implied
// (a cubic position (x, y, z) folds into (x+z, y+z)) and never stored.
type Coord struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// C is a convenience constructor for an axial Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Cube builds a Coord from cubic components by folding z into x and y.
func Cube(x, y, z int) Coord {
	return Coord{X: x + z, Y: y + z}
}

// String returns the coordinate as "(x, y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Add returns the vector sum of two coordinates.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the vector difference c - o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Shift returns c offset by the axial vector (dx, dy).
func (c Coord) Shift(dx, dy int) Coord {
	return c.Add(C(dx, dy))
}

// ShiftCube returns c offset by the cubic vector (dx, dy, dz).
func (c Coord) ShiftCube(dx, dy, dz int) Coord {
	return c.Add(Cube(dx, dy, dz))
}

// Neighbor returns the adjacent coordinate in direction d.
// An unknown direction returns c unchanged.
func (c Coord) Neighbor(d Direction) Coord {
	dx, dy := d.Delta()
	return c.Shift(dx, dy)
}

// Neighbors returns the six adjacent coordinates in direction order (NE first).
func (c Coord) Neighbors() [6]Coord {
	var result [6]Coord
	for i, d := range Directions {
		result[i] = c.Neighbor(d)
	}
	return result
}

// Rotate turns c about the origin by 60° per step.
// Positive steps rotate clockwise, negative counter-clockwise.
func (c Coord) Rotate(steps int) Coord {
	r := c
	if steps > 0 {
		for i := 0; i < steps%6; i++ {
			r = Coord{X: r.X - r.Y, Y: r.X}
		}
	} else if steps < 0 {
		for i := 0; i < (-steps)%6; i++ {
			r = Coord{X: r.Y, Y: r.Y - r.X}
		}
	}
	return r
}

// RotateAround turns c about pivot by 60° per step.
func (c Coord) RotateAround(steps int, pivot Coord) Coord {
	return c.Sub(pivot).Rotate(steps).Add(pivot)
}

// Distance returns the number of single steps between a and b.
// Moving along (1,1) is one step in this axial system, so the distance
// is the larger component when both deltas share a sign and their sum otherwise.
func Distance(a, b Coord) int {
	dx := b.X - a.X
	dy := b.Y - a.Y
	if (dx >= 0) == (dy >= 0) {
		return max(abs(dx), abs(dy))
	}
	return abs(dx) + abs(dy)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
