package tile_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/hextiles/internal/tile"
)

// allTuples enumerates every in-range (e, t, w, d) combination.
func allTuples() []tile.State {
	var out []tile.State
	for e := tile.Sea; e <= tile.Mountain; e++ {
		for t := tile.TerrainStone; t <= tile.TerrainSnow; t++ {
			for w := tile.Dry; w <= tile.Feature; w++ {
				for d := tile.Empty; d <= tile.Fort; d++ {
					out = append(out, tile.New(e, t, w, d))
				}
			}
		}
	}
	return out
}

// validStates returns every legal state.
func validStates() []tile.State {
	var out []tile.State
	for _, s := range allTuples() {
		if s.Valid() {
			out = append(out, s)
		}
	}
	return out
}

func TestValidStateTruthTable(t *testing.T) {
	type key struct {
		capped  bool
		terrain tile.Terrain
		water   tile.WaterKind
	}
	// Allowed details for each (elevation class, terrain, water).
	allowed := map[key][]tile.Detail{
		{true, tile.TerrainStone, tile.Dry}:      {tile.Empty},
		{true, tile.TerrainGrass, tile.Dry}:      {tile.Empty},
		{true, tile.TerrainSnow, tile.Dry}:       {tile.Empty},
		{false, tile.TerrainStone, tile.Dry}:     {tile.Empty, tile.Village, tile.Fort},
		{false, tile.TerrainStone, tile.Feature}: {tile.Empty, tile.Village},
		{false, tile.TerrainGrass, tile.Dry}:     {tile.Empty, tile.Trees, tile.Village, tile.Fort},
		{false, tile.TerrainGrass, tile.Feature}: {tile.Empty, tile.Trees, tile.Village},
		{false, tile.TerrainSnow, tile.Dry}:      {tile.Empty, tile.Trees, tile.Village, tile.Fort},
		{false, tile.TerrainSnow, tile.Feature}:  {tile.Empty, tile.Trees, tile.Village},
	}

	tuples := allTuples()
	if len(tuples) != 120 {
		t.Fatalf("expected 120 tuples, got %d", len(tuples))
	}

	valid := 0
	for _, s := range tuples {
		expected := false
		for _, d := range allowed[key{s.Elevation.Capped(), s.Terrain, s.Water}] {
			if d == s.Detail {
				expected = true
			}
		}
		got := tile.ValidState(s.Elevation, s.Terrain, s.Water, s.Detail)
		if got != expected {
			t.Errorf("ValidState(%d, %d, %d, %d) = %v, want %v",
				s.Elevation, s.Terrain, s.Water, s.Detail, got, expected)
		}
		if got {
			valid++
		}
	}
	if valid != 63 {
		t.Errorf("expected 63 legal states, got %d", valid)
	}
}

func TestValidStateOutOfRange(t *testing.T) {
	tests := []tile.State{
		tile.New(5, 0, 0, 0),
		tile.New(tile.Plain, 3, 0, 0),
		tile.New(tile.Plain, 0, 2, 0),
		tile.New(tile.Plain, 1, 0, 4),
		tile.New(255, 255, 255, 255),
	}
	for _, s := range tests {
		if s.Valid() {
			t.Errorf("%v should be invalid", s)
		}
	}
}

func TestZeroStateIsLegal(t *testing.T) {
	var s tile.State
	if !s.Valid() {
		t.Error("zero state must be legal")
	}
	if s.String() != "sea/stone/dry/empty" {
		t.Errorf("zero state String() = %q", s.String())
	}
}

func TestMake(t *testing.T) {
	if _, err := tile.Make(tile.Hill, tile.TerrainGrass, tile.Feature, tile.Trees); err != nil {
		t.Errorf("Make of legal state failed: %v", err)
	}
	_, err := tile.Make(tile.Sea, tile.TerrainGrass, tile.Feature, tile.Empty)
	if !errors.Is(err, tile.ErrInvalidState) {
		t.Errorf("Make of illegal state: got %v, want ErrInvalidState", err)
	}
}

func TestSet(t *testing.T) {
	var s tile.State
	s.Set(tile.Plain, tile.TerrainSnow, tile.Dry, tile.Fort)
	if s != tile.New(tile.Plain, tile.TerrainSnow, tile.Dry, tile.Fort) {
		t.Errorf("Set produced %v", s)
	}
	s.Detail = tile.Village
	if s.Detail != tile.Village {
		t.Error("direct field write failed")
	}
}

func TestStateText(t *testing.T) {
	tests := []struct {
		state tile.State
		text  string
	}{
		{tile.New(tile.Mountain, tile.TerrainVolcano, tile.Dry, tile.Empty), "mountain/volcano/dry/empty"},
		{tile.New(tile.Hill, tile.TerrainGrass, tile.Feature, tile.Trees), "hill/grass/feature/trees"},
		{tile.New(tile.Sea, tile.TerrainSnow, tile.Dry, tile.Empty), "sea/snow/dry/empty"},
		{tile.New(tile.Valley, tile.TerrainStone, tile.Dry, tile.Fort), "valley/stone/dry/fort"},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			if got := tc.state.String(); got != tc.text {
				t.Errorf("String() = %q, want %q", got, tc.text)
			}
			parsed, err := tile.ParseState(tc.text)
			if err != nil {
				t.Fatalf("ParseState(%q) failed: %v", tc.text, err)
			}
			if parsed != tc.state {
				t.Errorf("ParseState(%q) = %v", tc.text, parsed)
			}
		})
	}
}

func TestParseStateVariants(t *testing.T) {
	s, err := tile.ParseState("  Mountain/GRASS/dry/empty ")
	if err != nil {
		t.Fatalf("ParseState failed: %v", err)
	}
	if s.Terrain != tile.TerrainVolcano {
		t.Errorf("grass on a mountain should read as terrain 1, got %v", s.Terrain)
	}

	s, err = tile.ParseState("plain/volcano/dry/trees")
	if err != nil {
		t.Fatalf("ParseState failed: %v", err)
	}
	if s.TerrainName() != "grass" {
		t.Errorf("terrain 1 at mid elevation should be named grass, got %q", s.TerrainName())
	}

	bad := []string{
		"",
		"sea/stone/dry",
		"ocean/stone/dry/empty",
		"sea/lava/dry/empty",
		"sea/stone/wet/empty",
		"sea/stone/dry/castle",
		"sea/stone/feature/empty",
	}
	for _, text := range bad {
		if _, err := tile.ParseState(text); err == nil {
			t.Errorf("ParseState(%q) should fail", text)
		}
	}
}

func TestStateTextMarshaling(t *testing.T) {
	want := tile.New(tile.Plain, tile.TerrainStone, tile.Feature, tile.Village)
	text, err := want.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}

	var got tile.State
	if err := got.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %v, want %v", got, want)
	}
	if err := got.UnmarshalText([]byte("nonsense")); err == nil {
		t.Error("UnmarshalText should reject bad input")
	}
}

func TestWaterKindAndWaterElement(t *testing.T) {
	kinds := []struct {
		w    tile.WaterKind
		name string
	}{
		{tile.Dry, "dry"},
		{tile.Feature, "feature"},
		{tile.WaterKind(7), "water(7)"},
	}
	for _, tc := range kinds {
		if got := tc.w.String(); got != tc.name {
			t.Errorf("WaterKind(%d).String() = %q, want %q", uint8(tc.w), got, tc.name)
		}
	}

	if got := tile.Water.String(); got != "water" {
		t.Errorf("Water element String() = %q", got)
	}
	s := tile.New(tile.Hill, tile.TerrainStone, tile.Feature, tile.Empty)
	if !s.Valid() || s.Water != tile.Feature {
		t.Fatalf("unexpected state %v", s)
	}
	if !s.Cascade(tile.Water) {
		t.Error("water on a hill with a lake should cascade")
	}
}
