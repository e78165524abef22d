package board

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/hextiles/internal/hex"
	"github.com/vovakirdan/hextiles/internal/tile"
)

// ErrNoElement is returned when applying tile.None.
var ErrNoElement = errors.New("board: no element to apply")

// Policy controls how far a cascade spreads.
type Policy struct {
	// Radius is the hex distance a cascade reaches from its source.
	// Values below 1 are treated as 1.
	Radius int `yaml:"radius" json:"radius"`
	// Chain lets a cell hit by a cascade spread it further when the element
	// cascades on that cell too.
	Chain bool `yaml:"chain" json:"chain"`
}

// DefaultPolicy spreads one ring without chaining.
func DefaultPolicy() Policy {
	return Policy{Radius: 1}
}

// Change records what happened to one cell.
type Change struct {
	Coord    hex.Coord  `json:"coord"`
	Before   tile.State `json:"before"`
	After    tile.State `json:"after"`
	Direct   bool       `json:"direct"`
	Cascaded bool       `json:"cascaded"`
}

// Changed reports whether the cell state differs after the application.
func (c Change) Changed() bool {
	return c.Before != c.After
}

// Result describes one application of an element.
type Result struct {
	Element tile.Element `json:"element"`
	Origin  hex.Coord    `json:"origin"`
	// Changes lists every touched cell in application order. The first
	// entry is always the targeted cell.
	Changes []Change `json:"changes"`
}

// Cascaded reports whether the targeted cell set off a cascade.
func (r Result) Cascaded() bool {
	return len(r.Changes) > 0 && r.Changes[0].Cascaded
}

// ChangedCount returns how many cells actually changed state.
func (r Result) ChangedCount() int {
	n := 0
	for _, c := range r.Changes {
		if c.Changed() {
			n++
		}
	}
	return n
}

// Apply lands element e on the cell at c.
//
// The cascade test reads each cell's state before the element lands on it.
// The target receives the element directly. If it cascades, every cell
// within the policy radius receives the element indirectly. With Chain set,
// each of those cells that cascades in turn spreads again, breadth first.
// A cell is touched at most once per call, so the walk always terminates.
func (b *Board) Apply(c hex.Coord, e tile.Element, policy Policy) (Result, error) {
	if e == tile.None {
		return Result{}, ErrNoElement
	}
	if !b.params.Contains(c) {
		return Result{}, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}

	radius := max(policy.Radius, 1)
	result := Result{Element: e, Origin: c}
	visited := map[hex.Coord]bool{c: true}

	origin := b.land(c, e, true)
	result.Changes = append(result.Changes, origin)
	if !origin.Cascaded {
		return result, nil
	}

	queue := []hex.Coord{c}
	for len(queue) > 0 {
		src := queue[0]
		queue = queue[1:]

		for _, n := range b.within(src, radius) {
			if visited[n] {
				continue
			}
			visited[n] = true

			ch := b.land(n, e, false)
			result.Changes = append(result.Changes, ch)
			if policy.Chain && ch.Cascaded {
				queue = append(queue, n)
			}
		}
	}
	return result, nil
}

// ApplyOnce lands e on the cell at c alone. A cascade is reported in the
// result but does not spread.
func (b *Board) ApplyOnce(c hex.Coord, e tile.Element, direct bool) (Result, error) {
	if e == tile.None {
		return Result{}, ErrNoElement
	}
	if !b.params.Contains(c) {
		return Result{}, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	return Result{Element: e, Origin: c, Changes: []Change{b.land(c, e, direct)}}, nil
}

// Revert undoes a result returned by the most recent Apply.
func (b *Board) Revert(r Result) error {
	for i := len(r.Changes) - 1; i >= 0; i-- {
		ch := r.Changes[i]
		if err := b.Set(ch.Coord, ch.Before); err != nil {
			return fmt.Errorf("board: cannot revert %v: %w", ch.Coord, err)
		}
	}
	return nil
}

// Replay sets every cell in r to its state after the application. It lets
// a copy of the board follow a result produced elsewhere.
func (b *Board) Replay(r Result) error {
	for _, ch := range r.Changes {
		if err := b.Set(ch.Coord, ch.After); err != nil {
			return fmt.Errorf("board: cannot replay %v: %w", ch.Coord, err)
		}
	}
	return nil
}

// land applies e to one in-bounds cell and records the change.
func (b *Board) land(c hex.Coord, e tile.Element, direct bool) Change {
	i := b.params.Index(c)
	before := b.cells[i]
	after := before.Apply(e, direct)
	b.cells[i] = after
	return Change{
		Coord:    c,
		Before:   before,
		After:    after,
		Direct:   direct,
		Cascaded: before.Cascade(e),
	}
}

// within returns the on-board cells at distance 1..radius from c,
// in row-major order.
func (b *Board) within(c hex.Coord, radius int) []hex.Coord {
	var out []hex.Coord
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			n := c.Shift(dx, dy)
			d := hex.Distance(c, n)
			if d == 0 || d > radius || !b.params.Contains(n) {
				continue
			}
			out = append(out, n)
		}
	}
	return out
}
