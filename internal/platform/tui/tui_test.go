package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hextiles/internal/board"
	"github.com/vovakirdan/hextiles/internal/core"
	"github.com/vovakirdan/hextiles/internal/hex"
	"github.com/vovakirdan/hextiles/internal/storage"
	"github.com/vovakirdan/hextiles/internal/tile"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func mountainBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.New(hex.P(3, 2, 2), hex.OrthoXY)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Fill(tile.New(tile.Mountain, tile.TerrainStone, tile.Dry, tile.Empty)); err != nil {
		t.Fatal(err)
	}
	return b
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "tui.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionNorth},
		{runes("k"), core.ActionNorth},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionEast},
		{runes("j"), core.ActionSouth},
		{runes("h"), core.ActionWest},
		{runes("1"), core.ActionAir},
		{runes("3"), core.ActionIce},
		{runes("6"), core.ActionWater},
		{runes("c"), core.ActionToggleChain},
		{runes("u"), core.ActionUndo},
		{runes("s"), core.ActionSave},
		{runes("?"), core.ActionHelp},
		{runes("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("z"), core.ActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKey(tc.msg); got != tc.want {
			t.Errorf("MapKey(%q) = %v, want %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestElementForCoversAllElements(t *testing.T) {
	for i, e := range tile.Elements() {
		if got := elementFor(core.ActionAir + core.Action(i)); got != e {
			t.Errorf("elementFor(%d) = %v, want %v", i, got, e)
		}
	}
}

func TestModelMoveApplyUndo(t *testing.T) {
	b := mountainBoard(t)
	m := NewModel(b, Options{Policy: board.DefaultPolicy()})

	if m.Cursor() != hex.C(2, 1) {
		t.Fatalf("cursor starts at %v", m.Cursor())
	}
	m, _ = m.Act(core.ActionNorth)
	if m.Cursor() != hex.C(2, 0) {
		t.Errorf("north moved to %v", m.Cursor())
	}
	m, _ = m.Act(core.ActionSouth)
	m, _ = m.Act(core.ActionWest)
	if !b.Contains(m.Cursor()) {
		t.Fatalf("cursor left the board: %v", m.Cursor())
	}

	target := m.Cursor()
	before := b.Clone()
	m, cmd := m.Act(core.ActionFire)
	if cmd == nil {
		t.Error("applying should schedule a status expiry")
	}
	if got, _ := b.Get(target); !got.HasAttribute(tile.AttrVolcano) {
		t.Errorf("target = %v, want a volcano", got)
	}
	if !strings.Contains(m.Status(), "fire") {
		t.Errorf("status = %q", m.Status())
	}

	m, _ = m.Act(core.ActionFire)
	if !strings.Contains(m.Status(), tile.Fire.CascadeName()) {
		t.Errorf("eruption status = %q", m.Status())
	}

	m, _ = m.Act(core.ActionUndo)
	m, _ = m.Act(core.ActionUndo)
	if !b.Equal(before) {
		t.Error("two undos should restore the board")
	}
	m, _ = m.Act(core.ActionUndo)
	if m.Status() != "nothing to undo" {
		t.Errorf("status = %q", m.Status())
	}
}

func TestModelToggles(t *testing.T) {
	m := NewModel(mountainBoard(t), Options{})

	m, _ = m.Act(core.ActionToggleChain)
	if !m.Policy().Chain {
		t.Error("chain should be on")
	}
	m, _ = m.Act(core.ActionToggleChain)
	if m.Policy().Chain {
		t.Error("chain should be off")
	}

	m, _ = m.Act(core.ActionHelp)
	if !m.help.ShowAll {
		t.Error("help should expand")
	}

	next, cmd := m.Update(runes("q"))
	if cmd == nil || !next.(Model).IsQuitting() {
		t.Error("q should quit")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).BackToBrowser() {
		t.Error("esc should ask for the browser")
	}
}

func TestModelStatusExpires(t *testing.T) {
	m := NewModel(mountainBoard(t), Options{})
	m, _ = m.Act(core.ActionSave)
	if m.Status() != "saving is disabled" {
		t.Fatalf("status = %q", m.Status())
	}

	stale, _ := m.Update(statusExpiredMsg{id: m.statusID - 1})
	if stale.(Model).Status() == "" {
		t.Error("an older expiry must not clear a newer status")
	}
	fresh, _ := m.Update(statusExpiredMsg{id: m.statusID})
	if fresh.(Model).Status() != "" {
		t.Error("status should clear")
	}
}

func TestModelSaveAndRecordMoves(t *testing.T) {
	store := openStore(t)
	b := mountainBoard(t)
	m := NewModel(b, Options{Name: "ridge", Store: store, Policy: board.DefaultPolicy()})

	m, _ = m.Act(core.ActionSave)
	id := m.BoardID()
	if id == "" {
		t.Fatalf("save did not assign an ID: %q", m.Status())
	}

	m, _ = m.Act(core.ActionFire)
	m, _ = m.Act(core.ActionSave)

	loaded, rec, err := store.LoadBoard(id)
	if err != nil {
		t.Fatalf("LoadBoard failed: %v", err)
	}
	if rec.Name != "ridge" || !loaded.Equal(b) {
		t.Error("saved board does not match")
	}
	moves, err := store.Moves(id, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 1 || moves[0].Element != "fire" || moves[0].Coord != m.Cursor() {
		t.Errorf("moves = %+v", moves)
	}
}

func TestModelViewTooSmall(t *testing.T) {
	m := NewModel(mountainBoard(t), Options{Config: core.RuntimeConfig{ScreenW: 5, ScreenH: 3}})
	if !strings.HasPrefix(m.View(), "Terminal too small") {
		t.Errorf("View = %q", m.View())
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := next.(Model).View()
	if !strings.Contains(view, "untitled") || !strings.Contains(view, "[") {
		t.Errorf("View = %q", view)
	}
}

func TestRenderBoardMatchesText(t *testing.T) {
	b, err := board.Generate(hex.P(4, 3, 2), hex.OrthoXY,
		tile.Generator{Weights: tile.DefaultWeights(), Sampler: core.NewRNG(21)})
	if err != nil {
		t.Fatal(err)
	}

	for _, cursor := range []hex.Coord{hex.C(0, 0), hex.C(2, 1), hex.C(4, 2), hex.C(9, 9)} {
		got := strings.Split(RenderBoard(b, cursor), "\n")
		want := strings.Split(b.RenderText(&cursor), "\n")
		if len(got) != len(want) {
			t.Fatalf("cursor %v: %d rows, want %d", cursor, len(got), len(want))
		}
		for i := range want {
			if strings.TrimRight(got[i], " ") != want[i] {
				t.Errorf("cursor %v row %d:\n got %q\nwant %q", cursor, i, got[i], want[i])
			}
		}
	}
}

func TestSessionFlow(t *testing.T) {
	store := openStore(t)
	opts := SessionOptions{
		Store:  store,
		Policy: board.DefaultPolicy(),
		Config: core.RuntimeConfig{ScreenW: 100, ScreenH: 40},
		NewBoard: func() (*board.Board, error) {
			return mountainBoard(t), nil
		},
	}
	start := NewModel(mountainBoard(t), opts.boardOptions("start", ""))
	s := NewSessionModel(start, opts)

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	step(runes("s"))
	savedID := s.Board().BoardID()
	if savedID == "" {
		t.Fatal("save from session failed")
	}

	step(runes("b"))
	if !s.InBrowser() {
		t.Fatal("b should open the browser")
	}
	if len(s.browser.records) != 1 {
		t.Fatalf("browser lists %d boards", len(s.browser.records))
	}

	step(runes("n"))
	if s.InBrowser() || s.Board().BoardID() != "" || s.Board().opts.Name != "new board 1" {
		t.Fatalf("n should open a fresh board, got %q", s.Board().opts.Name)
	}

	step(runes("b"))
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.InBrowser() || s.Board().BoardID() != savedID {
		t.Fatalf("enter should open the saved board, got %q", s.Board().BoardID())
	}

	step(runes("b"))
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.InBrowser() {
		t.Error("esc should return to the board")
	}

	next, cmd := s.Update(runes("q"))
	if cmd == nil || next.(SessionModel).View() != "" {
		t.Error("q should end the session")
	}
}
