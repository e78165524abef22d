package board_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/hextiles/internal/board"
	"github.com/vovakirdan/hextiles/internal/core"
	"github.com/vovakirdan/hextiles/internal/hex"
	"github.com/vovakirdan/hextiles/internal/tile"
)

func mustState(t *testing.T, text string) tile.State {
	t.Helper()
	s, err := tile.ParseState(text)
	if err != nil {
		t.Fatalf("ParseState(%q): %v", text, err)
	}
	return s
}

func newBoard(t *testing.T, p hex.Params, fill string) *board.Board {
	t.Helper()
	b, err := board.New(p, hex.OrthoXY)
	if err != nil {
		t.Fatalf("New(%v) failed: %v", p, err)
	}
	if err := b.Fill(mustState(t, fill)); err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	return b
}

func TestNewBoard(t *testing.T) {
	b, err := board.New(hex.P(3, 2, 2), hex.OrthoXY)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if b.Len() != 10 {
		t.Errorf("Len() = %d, want 10", b.Len())
	}
	for _, c := range b.Coords() {
		s, ok := b.Get(c)
		if !ok || s != (tile.State{}) {
			t.Errorf("cell %v = %v, %v; want zero state", c, s, ok)
		}
	}

	_, err = board.New(hex.P(3, 0, 2), hex.OrthoXY)
	if !errors.Is(err, board.ErrInvalidParams) {
		t.Errorf("New with invalid params: got %v, want ErrInvalidParams", err)
	}
}

func TestGetSet(t *testing.T) {
	b := newBoard(t, hex.P(3, 2, 2), "sea/stone/dry/empty")
	village := mustState(t, "plain/stone/dry/village")

	if err := b.Set(hex.C(3, 1), village); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got, ok := b.Get(hex.C(3, 1)); !ok || got != village {
		t.Errorf("Get = %v, %v", got, ok)
	}

	if err := b.Set(hex.C(0, 2), village); !errors.Is(err, board.ErrOutOfBounds) {
		t.Errorf("Set out of bounds: got %v", err)
	}
	illegal := tile.New(tile.Sea, tile.TerrainStone, tile.Feature, tile.Empty)
	if err := b.Set(hex.C(0, 0), illegal); !errors.Is(err, tile.ErrInvalidState) {
		t.Errorf("Set illegal state: got %v", err)
	}
	if _, ok := b.Get(hex.C(-1, 0)); ok {
		t.Error("Get out of bounds should fail")
	}
	if err := b.Fill(illegal); !errors.Is(err, tile.ErrInvalidState) {
		t.Errorf("Fill illegal state: got %v", err)
	}
}

func TestLoadStates(t *testing.T) {
	b := newBoard(t, hex.P(2, 2, 2), "sea/stone/dry/empty")
	states := b.States()
	states[3] = mustState(t, "hill/grass/feature/trees")

	if err := b.Load(states[:3]); !errors.Is(err, board.ErrSizeMismatch) {
		t.Errorf("Load short slice: got %v", err)
	}

	bad := b.States()
	bad[5] = tile.New(tile.Mountain, tile.TerrainStone, tile.Dry, tile.Fort)
	if err := b.Load(bad); !errors.Is(err, tile.ErrInvalidState) {
		t.Errorf("Load illegal state: got %v", err)
	}
	if got, _ := b.Get(hex.C(0, 0)); got != (tile.State{}) {
		t.Error("failed Load must leave the board unchanged")
	}

	if err := b.Load(states); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	c, _ := b.Params().CoordAt(3)
	if got, _ := b.Get(c); got != states[3] {
		t.Errorf("cell %v = %v, want %v", c, got, states[3])
	}

	// States returns a copy.
	snapshot := b.States()
	snapshot[0] = mustState(t, "mountain/snow/dry/empty")
	if got, _ := b.Get(hex.C(0, 0)); got == snapshot[0] {
		t.Error("States must not alias the board")
	}
}

func TestCloneEqual(t *testing.T) {
	b := newBoard(t, hex.P(3, 2, 2), "plain/grass/dry/empty")
	clone := b.Clone()

	if !b.Equal(clone) {
		t.Fatal("clone should equal original")
	}
	if err := clone.Set(hex.C(1, 1), mustState(t, "plain/grass/dry/trees")); err != nil {
		t.Fatal(err)
	}
	if b.Equal(clone) {
		t.Error("modifying the clone must not affect the original")
	}

	other := newBoard(t, hex.P(2, 3, 2), "plain/grass/dry/empty")
	if b.Equal(other) {
		t.Error("boards of different regions are not equal")
	}
	var nilBoard *board.Board
	if b.Equal(nilBoard) || !nilBoard.Equal(nil) {
		t.Error("nil comparisons")
	}
}

func TestMoveAndClamp(t *testing.T) {
	b := newBoard(t, hex.P(3, 2, 2), "sea/stone/dry/empty")

	if got := b.Move(hex.C(1, 1), hex.North); got != hex.C(1, 0) {
		t.Errorf("Move north in xy = %v", got)
	}
	b.SetMode(hex.OrthoXZ)
	if b.Mode() != hex.OrthoXZ {
		t.Fatal("SetMode did not stick")
	}
	if got := b.Move(hex.C(1, 1), hex.North); got != hex.C(0, 0) {
		t.Errorf("Move north in xz = %v", got)
	}
	if got := b.Clamp(hex.C(-4, 1)); got != hex.C(0, 1) {
		t.Errorf("Clamp = %v", got)
	}
	if !b.Contains(b.Center()) {
		t.Errorf("Center %v is off the board", b.Center())
	}
}

func TestStats(t *testing.T) {
	b := newBoard(t, hex.P(2, 2, 2), "plain/grass/dry/trees")
	_ = b.Set(hex.C(0, 0), mustState(t, "sea/volcano/dry/empty"))
	_ = b.Set(hex.C(1, 0), mustState(t, "mountain/snow/dry/empty"))
	_ = b.Set(hex.C(0, 1), mustState(t, "hill/stone/feature/village"))

	st := b.Stats()
	if st.Cells != 7 {
		t.Errorf("Cells = %d", st.Cells)
	}
	if st.Elevation[tile.Plain] != 4 || st.Elevation[tile.Sea] != 1 || st.Elevation[tile.Hill] != 1 {
		t.Errorf("Elevation = %v", st.Elevation)
	}
	if st.Detail[tile.Trees] != 4 || st.Detail[tile.Village] != 1 || st.Detail[tile.Empty] != 2 {
		t.Errorf("Detail = %v", st.Detail)
	}
	if st.Volcanoes != 1 || st.Snow != 1 || st.Lakes != 1 {
		t.Errorf("Volcanoes=%d Snow=%d Lakes=%d", st.Volcanoes, st.Snow, st.Lakes)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	p := hex.P(5, 4, 3)
	gen := func(seed uint64) tile.Generator {
		return tile.Generator{Weights: tile.DefaultWeights(), Sampler: core.NewRNG(seed)}
	}

	a, err := board.Generate(p, hex.OrthoXY, gen(3))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := board.Generate(p, hex.OrthoXY, gen(3))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !a.Equal(b) {
		t.Error("same seed produced different boards")
	}
	for _, s := range a.States() {
		if !s.Valid() {
			t.Fatalf("generated illegal %v", s)
		}
	}

	c, _ := board.Generate(p, hex.OrthoXY, gen(4))
	if a.Equal(c) {
		t.Error("different seeds produced identical boards")
	}
}

func TestGenerateNoise(t *testing.T) {
	p := hex.P(6, 5, 5)
	gen := tile.Generator{Weights: tile.DefaultWeights(), Sampler: core.NewRNG(9), MaxAttempts: 1000}

	a, err := board.GenerateNoise(p, hex.OrthoXY, gen, 42)
	if err != nil {
		t.Fatalf("GenerateNoise failed: %v", err)
	}
	gen.Sampler = core.NewRNG(9)
	b, err := board.GenerateNoise(p, hex.OrthoXY, gen, 42)
	if err != nil {
		t.Fatalf("GenerateNoise failed: %v", err)
	}
	if !a.Equal(b) {
		t.Error("same seeds produced different boards")
	}
	for _, s := range a.States() {
		if !s.Valid() {
			t.Fatalf("generated illegal %v", s)
		}
	}
	if got := gen.Weights.Elevation; got[0] != 2 || got[4] != 1 {
		t.Error("GenerateNoise must not modify the caller's weights")
	}
}

func TestGenerateErrors(t *testing.T) {
	impossible := tile.Weights{
		Elevation: []float64{0, 1},
		Terrain:   []float64{1},
		Water:     []float64{0, 1},
		Detail:    []float64{0, 1},
	}
	gen := tile.Generator{Weights: impossible, Sampler: core.NewRNG(1), MaxAttempts: 10}

	if _, err := board.Generate(hex.P(2, 2, 2), hex.OrthoXY, gen); !errors.Is(err, tile.ErrNoLegalDraw) {
		t.Errorf("Generate: got %v, want ErrNoLegalDraw", err)
	}
	if _, err := board.GenerateNoise(hex.P(2, 2, 2), hex.OrthoXY, gen, 1); !errors.Is(err, tile.ErrNoLegalDraw) {
		t.Errorf("GenerateNoise: got %v, want ErrNoLegalDraw", err)
	}
	if _, err := board.Generate(hex.P(0, 2, 2), hex.OrthoXY, gen); !errors.Is(err, board.ErrInvalidParams) {
		t.Errorf("Generate invalid params: got %v", err)
	}
}
