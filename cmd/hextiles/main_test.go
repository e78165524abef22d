package main

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/hextiles/internal/hex"
	"github.com/vovakirdan/hextiles/internal/storage"
)

func useTempDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boards.db")
	prev := flagDBPath
	flagDBPath = path
	t.Cleanup(func() { flagDBPath = prev })
	return path
}

func TestCommandsReturnErrors(t *testing.T) {
	useTempDB(t)

	tests := []struct {
		name string
		run  func() error
		want string
	}{
		{"show unknown board", func() error { return runShow(showCmd, []string{"missing"}) }, "board not found"},
		{"apply unknown board", func() error { return runApply(applyCmd, []string{"missing", "fire", "0", "0"}) }, "board not found"},
		{"apply bad element", func() error { return runApply(applyCmd, []string{"missing", "lava", "0", "0"}) }, "lava"},
		{"apply bad coord", func() error { return runApply(applyCmd, []string{"missing", "fire", "x", "0"}) }, `x "x"`},
		{"delete unknown board", func() error { return runBoardsDelete(boardsDeleteCmd, []string{"missing"}) }, "board not found"},
		{"check missing level", func() error { return runLevelsCheck(levelsCheckCmd, []string{"nope.yaml"}) }, "1 of 1 files invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestShowReleasesStoreOnError(t *testing.T) {
	path := useTempDB(t)

	for i := 0; i < 3; i++ {
		if err := runShow(showCmd, []string{"missing"}); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("run %d: err = %v", i, err)
		}
	}

	store, err := storage.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if _, err := store.ListBoards(1); err != nil {
		t.Errorf("database unusable after failed commands: %v", err)
	}
}

func TestParseParams(t *testing.T) {
	tests := []struct {
		in      string
		want    hex.Params
		wantErr bool
	}{
		{"3,2,2", hex.P(3, 2, 2), false},
		{" 6, 5 ,5", hex.P(6, 5, 5), false},
		{"3,2", hex.Params{}, true},
		{"3,a,2", hex.Params{}, true},
		{"0,2,2", hex.Params{}, true},
	}
	for _, tt := range tests {
		got, err := parseParams(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseParams(%q) err = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseParams(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseCoord(t *testing.T) {
	c, err := parseCoord("2", "-1")
	if err != nil || c != hex.C(2, -1) {
		t.Errorf("parseCoord = %v, %v", c, err)
	}
	if _, err := parseCoord("2", "y"); err == nil {
		t.Error("expected error for non-numeric y")
	}
}
