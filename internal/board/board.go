// Package board owns a bounded hex region of tiles. It locates cells with
// the hex geometry, mutates them with the tile rules, and propagates
// cascades to neighboring cells.
package board

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/hextiles/internal/hex"
	"github.com/vovakirdan/hextiles/internal/tile"
)

var (
	// ErrInvalidParams is returned for regions with a non-positive axis.
	ErrInvalidParams = errors.New("board: invalid region")
	// ErrOutOfBounds is returned when a coordinate lies outside the board.
	ErrOutOfBounds = errors.New("board: coordinate out of bounds")
	// ErrSizeMismatch is returned when loading the wrong number of cells.
	ErrSizeMismatch = errors.New("board: cell count does not match region size")
)

// Board maps every coordinate of a region to a tile state.
// Cells are stored row-major in the order of hex.Params.Coords.
// A Board is not safe for concurrent mutation.
type Board struct {
	params hex.Params
	mode   hex.OrthoMode
	cells  []tile.State
}

// New creates a board whose cells all hold the zero state (sea).
func New(p hex.Params, mode hex.OrthoMode) (*Board, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, p)
	}
	return &Board{
		params: p,
		mode:   mode,
		cells:  make([]tile.State, p.Size()),
	}, nil
}

// Params returns the region of the board.
func (b *Board) Params() hex.Params {
	return b.params
}

// Mode returns the north/south tie-break used by Move.
func (b *Board) Mode() hex.OrthoMode {
	return b.mode
}

// SetMode changes the north/south tie-break used by Move.
func (b *Board) SetMode(mode hex.OrthoMode) {
	b.mode = mode
}

// Len returns the number of cells.
func (b *Board) Len() int {
	return len(b.cells)
}

// Coords returns every coordinate in storage order.
func (b *Board) Coords() []hex.Coord {
	return b.params.Coords()
}

// Contains reports whether c is a cell of the board.
func (b *Board) Contains(c hex.Coord) bool {
	return b.params.Contains(c)
}

// Get returns the state at c. ok is false when c is out of bounds.
func (b *Board) Get(c hex.Coord) (tile.State, bool) {
	i := b.params.Index(c)
	if i < 0 {
		return tile.State{}, false
	}
	return b.cells[i], true
}

// Set stores s at c. The state must be legal and c must be on the board.
func (b *Board) Set(c hex.Coord, s tile.State) error {
	i := b.params.Index(c)
	if i < 0 {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if !s.Valid() {
		return fmt.Errorf("%w: %v at %v", tile.ErrInvalidState, s, c)
	}
	b.cells[i] = s
	return nil
}

// Fill stores s in every cell.
func (b *Board) Fill(s tile.State) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %v", tile.ErrInvalidState, s)
	}
	for i := range b.cells {
		b.cells[i] = s
	}
	return nil
}

// States returns a copy of all cells in storage order.
func (b *Board) States() []tile.State {
	out := make([]tile.State, len(b.cells))
	copy(out, b.cells)
	return out
}

// Load replaces all cells. states must hold exactly Len() legal states in
// storage order; on error the board is left unchanged.
func (b *Board) Load(states []tile.State) error {
	if len(states) != len(b.cells) {
		return fmt.Errorf("%w: got %d, want %d", ErrSizeMismatch, len(states), len(b.cells))
	}
	for i, s := range states {
		if !s.Valid() {
			c, _ := b.params.CoordAt(i)
			return fmt.Errorf("%w: %v at %v", tile.ErrInvalidState, s, c)
		}
	}
	copy(b.cells, states)
	return nil
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{
		params: b.params,
		mode:   b.mode,
		cells:  b.States(),
	}
}

// Equal reports whether two boards have the same region and cells.
// The tie-break mode is not compared.
func (b *Board) Equal(o *Board) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.params != o.params || len(b.cells) != len(o.cells) {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Move steps the cursor at c in an orthogonal direction, staying on the board.
func (b *Board) Move(c hex.Coord, d hex.OrthoDir) hex.Coord {
	return b.params.MoveInBounds(c, d, b.mode)
}

// Clamp projects c onto the board.
func (b *Board) Clamp(c hex.Coord) hex.Coord {
	return b.params.FindInBounds(c)
}

// Center returns the middle cell in storage order, a reasonable cursor start.
func (b *Board) Center() hex.Coord {
	c, _ := b.params.CoordAt(len(b.cells) / 2)
	return c
}
