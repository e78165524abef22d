package levels_test

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/vovakirdan/hextiles/internal/hex"
	"github.com/vovakirdan/hextiles/internal/levels"
	"github.com/vovakirdan/hextiles/internal/tile"
)

// getTestdataPath returns path to testdata/levels.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", "levels")
}

func TestLoaderLoadAll(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 2 {
		t.Fatalf("expected 2 valid levels, got %d", len(lvls))
	}
	for i := 1; i < len(lvls); i++ {
		if lvls[i-1].ID >= lvls[i].ID {
			t.Errorf("levels not sorted: %s >= %s", lvls[i-1].ID, lvls[i].ID)
		}
	}

	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs failed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "lvl01-volcano" || ids[1] != "lvl02-lake" {
		t.Errorf("ListIDs = %v", ids)
	}
}

func TestLoaderLoadByID(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvl, err := loader.LoadByID("lvl02-lake")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Name != "Highland Lake" || lvl.Params != hex.P(4, 3, 3) || lvl.Ortho != hex.OrthoXZ {
		t.Errorf("unexpected level %+v", lvl)
	}
	if filepath.Base(lvl.FilePath) != "lake.json" {
		t.Errorf("FilePath = %q", lvl.FilePath)
	}

	if _, err := loader.LoadByID("nope"); !errors.Is(err, levels.ErrNotFound) {
		t.Errorf("unknown ID: got %v", err)
	}
}

func TestLevelToBoard(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())
	lvl, err := loader.LoadByID("lvl01-volcano")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}
	if lvl.Metadata["hint"] != "fire wakes it" {
		t.Errorf("Metadata = %v", lvl.Metadata)
	}

	b, err := lvl.ToBoard()
	if err != nil {
		t.Fatalf("ToBoard failed: %v", err)
	}
	if b.Len() != 10 || b.Mode() != hex.OrthoXY {
		t.Errorf("board len %d mode %v", b.Len(), b.Mode())
	}
	center, _ := b.Get(hex.C(1, 1))
	if !center.HasAttribute(tile.AttrVolcano) {
		t.Errorf("center = %v, want a volcano", center)
	}
	corner, _ := b.Get(hex.C(0, 0))
	if corner.String() != "mountain/stone/dry/empty" {
		t.Errorf("fill = %v", corner)
	}
}

func TestParseDefaults(t *testing.T) {
	lvl, err := levels.Parse([]byte("id: bare\nparams: {a: 2, b: 1, c: 1}\n"), ".yml")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if lvl.Name != "bare" {
		t.Errorf("Name should default to ID, got %q", lvl.Name)
	}
	if lvl.Ortho != hex.OrthoXY || lvl.Fill != (tile.State{}) || len(lvl.Cells) != 0 {
		t.Errorf("unexpected defaults %+v", lvl)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		doc  string
		code string
	}{
		{"missing params", ".yaml", "id: x\n", levels.CodeSchema},
		{"unknown key", ".yaml", "id: x\nparams: {a: 1, b: 1, c: 1}\nsize: 3\n", levels.CodeSchema},
		{"zero side", ".yaml", "id: x\nparams: {a: 0, b: 1, c: 1}\n", levels.CodeSchema},
		{"string side", ".yaml", "id: x\nparams: {a: three, b: 1, c: 1}\n", levels.CodeSchema},
		{"bad id", ".yaml", "id: Bad Id\nparams: {a: 1, b: 1, c: 1}\n", levels.CodeSchema},
		{"bad ortho", ".yaml", "id: x\nparams: {a: 1, b: 1, c: 1}\northo: yz\n", levels.CodeSchema},
		{"malformed state", ".yaml", "id: x\nparams: {a: 1, b: 1, c: 1}\nfill: sea\n", levels.CodeSchema},
		{"empty document", ".yaml", "", levels.CodeSchema},
		{"json without id", ".json", `{"params": {"a": 1, "b": 1, "c": 1}}`, levels.CodeSchema},
		{"illegal fill", ".yaml", "id: x\nparams: {a: 1, b: 1, c: 1}\nfill: sea/stone/feature/empty\n", levels.CodeInvalidState},
		{"unknown state word", ".yaml", "id: x\nparams: {a: 1, b: 1, c: 1}\ncells:\n  - {x: 0, y: 0, state: sea/lava/dry/empty}\n", levels.CodeInvalidState},
		{"out of bounds", ".yaml", "id: x\nparams: {a: 3, b: 2, c: 2}\ncells:\n  - {x: 0, y: 2, state: sea/stone/dry/empty}\n", levels.CodeOutOfBounds},
		{"duplicate", ".json", `{"id": "x", "params": {"a": 2, "b": 1, "c": 1}, "cells": [
			{"x": 1, "y": 0, "state": "sea/stone/dry/empty"},
			{"x": 1, "y": 0, "state": "plain/grass/dry/empty"}]}`, levels.CodeDuplicateCell},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := levels.Parse([]byte(tc.doc), tc.ext)
			var verr levels.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Code != tc.code {
				t.Errorf("code = %s, want %s (%s)", verr.Code, tc.code, verr.Message)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := levels.Parse([]byte("id: x"), ".toml"); err == nil {
		t.Error("unsupported extension should fail")
	}
	if _, err := levels.Parse([]byte("{not json"), ".json"); err == nil {
		t.Error("malformed JSON should fail")
	}
	if _, err := levels.NewLoader(filepath.Join(t.TempDir(), "missing")).LoadAll(); err == nil {
		t.Error("LoadAll on a missing root should fail")
	}
}
