// Package tile implements the per-cell state machine of the board: the
// composite tile state, its legality invariant, attribute queries, the six
// element transitions, and weighted random state generation.
// This package is UI-agnostic and deterministic.
package tile

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidState is returned when a state violates the legality invariant.
var ErrInvalidState = errors.New("tile: invalid state")

// Elevation is the height layer of a tile.
type Elevation uint8

const (
	Sea Elevation = iota
	Valley
	Plain
	Hill
	Mountain
)

var elevationNames = [...]string{"sea", "valley", "plain", "hill", "mountain"}

// String returns the lowercase name of the elevation.
func (e Elevation) String() string {
	if int(e) < len(elevationNames) {
		return elevationNames[e]
	}
	return fmt.Sprintf("elevation(%d)", e)
}

// Capped reports whether the elevation is Sea or Mountain. Capped tiles
// carry no water or detail.
func (e Elevation) Capped() bool {
	return e == Sea || e == Mountain
}

// Terrain is the surface cover of a tile.
type Terrain uint8

const (
	TerrainStone Terrain = iota
	TerrainGrass
	TerrainSnow

	// TerrainVolcano shares its value with TerrainGrass: the same ordinal
	// reads as a volcano on capped elevations.
	TerrainVolcano = TerrainGrass
)

var terrainNames = [...]string{"stone", "grass", "snow"}

// String returns the lowercase name of the terrain, ignoring elevation.
// Use State.TerrainName for the elevation-aware name.
func (t Terrain) String() string {
	if int(t) < len(terrainNames) {
		return terrainNames[t]
	}
	return fmt.Sprintf("terrain(%d)", t)
}

// WaterKind marks whether a tile holds a water feature.
type WaterKind uint8

const (
	Dry WaterKind = iota
	Feature
)

var waterNames = [...]string{"dry", "feature"}

// String returns the lowercase name of the water value.
func (w WaterKind) String() string {
	if int(w) < len(waterNames) {
		return waterNames[w]
	}
	return fmt.Sprintf("water(%d)", w)
}

// Detail is the structure or vegetation on a tile.
type Detail uint8

const (
	Empty Detail = iota
	Trees
	Village
	Fort
)

var detailNames = [...]string{"empty", "trees", "village", "fort"}

// String returns the lowercase name of the detail.
func (d Detail) String() string {
	if int(d) < len(detailNames) {
		return detailNames[d]
	}
	return fmt.Sprintf("detail(%d)", d)
}

// State is the composite value held by one board cell.
// The zero value (sea, stone, dry, empty) is legal.
type State struct {
	Elevation Elevation
	Terrain   Terrain
	Water     WaterKind
	Detail    Detail
}

// New builds a state without checking it, like a struct literal.
func New(e Elevation, t Terrain, w WaterKind, d Detail) State {
	return State{Elevation: e, Terrain: t, Water: w, Detail: d}
}

// Make builds a state and rejects it if it is not legal.
func Make(e Elevation, t Terrain, w WaterKind, d Detail) (State, error) {
	s := New(e, t, w, d)
	if !s.Valid() {
		return State{}, fmt.Errorf("%w: %s", ErrInvalidState, s)
	}
	return s, nil
}

// Set replaces the whole tuple.
func (s *State) Set(e Elevation, t Terrain, w WaterKind, d Detail) {
	*s = New(e, t, w, d)
}

// ValidState reports whether the tuple is a legal tile:
//   - Sea and Mountain allow any terrain but no water and no detail.
//   - Valley, Plain and Hill on stone allow empty, village or fort when dry,
//     and empty or village with a water feature.
//   - Valley, Plain and Hill on grass or snow allow any detail when dry,
//     and anything but a fort with a water feature.
//
// Out-of-range ordinals are never legal.
func ValidState(e Elevation, t Terrain, w WaterKind, d Detail) bool {
	switch e {
	case Sea, Mountain:
		return t <= TerrainSnow && w == Dry && d == Empty
	case Valley, Plain, Hill:
		switch t {
		case TerrainStone:
			switch w {
			case Dry:
				return d == Empty || d == Village || d == Fort
			case Feature:
				return d == Empty || d == Village
			}
		case TerrainGrass, TerrainSnow:
			switch w {
			case Dry:
				return d <= Fort
			case Feature:
				return d <= Village
			}
		}
	}
	return false
}

// Valid reports whether s is a legal tile.
func (s State) Valid() bool {
	return ValidState(s.Elevation, s.Terrain, s.Water, s.Detail)
}

// Capped reports whether the tile sits at Sea or Mountain.
func (s State) Capped() bool {
	return s.Elevation.Capped()
}

// TerrainName returns the terrain name, reading terrain 1 as "volcano" on
// capped elevations.
func (s State) TerrainName() string {
	if s.Terrain == TerrainVolcano && s.Capped() {
		return "volcano"
	}
	return s.Terrain.String()
}

// String renders the state as elevation/terrain/water/detail,
// for example "mountain/volcano/dry/empty".
func (s State) String() string {
	return s.Elevation.String() + "/" + s.TerrainName() + "/" + s.Water.String() + "/" + s.Detail.String()
}

// ParseState parses the form produced by String. Terrain 1 may be written
// as either "grass" or "volcano". The parsed state must be legal.
func ParseState(text string) (State, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(text)), "/")
	if len(parts) != 4 {
		return State{}, fmt.Errorf("tile: cannot parse state %q: want elevation/terrain/water/detail", text)
	}

	e, ok := lookup(elevationNames[:], parts[0])
	if !ok {
		return State{}, fmt.Errorf("tile: unknown elevation %q", parts[0])
	}
	terrain := parts[1]
	if terrain == "volcano" {
		terrain = "grass"
	}
	t, ok := lookup(terrainNames[:], terrain)
	if !ok {
		return State{}, fmt.Errorf("tile: unknown terrain %q", parts[1])
	}
	w, ok := lookup(waterNames[:], parts[2])
	if !ok {
		return State{}, fmt.Errorf("tile: unknown water %q", parts[2])
	}
	d, ok := lookup(detailNames[:], parts[3])
	if !ok {
		return State{}, fmt.Errorf("tile: unknown detail %q", parts[3])
	}

	return Make(Elevation(e), Terrain(t), WaterKind(w), Detail(d))
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func lookup(names []string, name string) (int, bool) {
	for i, n := range names {
		if n == name {
			return i, true
		}
	}
	return 0, false
}
