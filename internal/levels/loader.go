// Package levels loads scenario boards from YAML or JSON files. Each file
// names a region, an optional fill state and a list of placed cells.
package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/hextiles/internal/board"
	"github.com/vovakirdan/hextiles/internal/hex"
	"github.com/vovakirdan/hextiles/internal/levels/formats"
	"github.com/vovakirdan/hextiles/internal/tile"
)

// ErrNotFound is returned by LoadByID for an unknown ID.
var ErrNotFound = errors.New("level not found")

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Params   hex.Params
	Ortho    hex.OrthoMode
	Fill     tile.State
	Cells    map[hex.Coord]tile.State
	Metadata map[string]string
	FilePath string
}

// ToBoard creates a board from the level: every cell starts as Fill and
// placed cells are set on top.
func (l *Level) ToBoard() (*board.Board, error) {
	b, err := board.New(l.Params, l.Ortho)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	if err := b.Fill(l.Fill); err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	for c, s := range l.Cells {
		if err := b.Set(c, s); err != nil {
			return nil, fmt.Errorf("level %s: cell %v: %w", l.ID, c, err)
		}
	}
	return b, nil
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	level, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	level.FilePath = path
	return level, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// Parse decodes a level document in the format named by ext, checks it
// against the level schema and then against the board rules.
func Parse(data []byte, ext string) (Level, error) {
	var (
		yl  formats.YAMLLevel
		doc any
		err error
	)
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		yl, doc, err = formats.ParseYAML(data)
	case ".json":
		yl, doc, err = formats.ParseJSON(data)
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
	if err != nil && doc == nil {
		return Level{}, err
	}
	// Schema errors explain a bad document better than decode errors.
	if verr := ValidateDocument(doc); verr != nil {
		return Level{}, verr
	}
	if err != nil {
		return Level{}, err
	}
	return build(yl)
}

// build converts a schema-valid document into a Level.
func build(yl formats.YAMLLevel) (Level, error) {
	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Params:   hex.P(yl.Params.A, yl.Params.B, yl.Params.C),
		Cells:    make(map[hex.Coord]tile.State, len(yl.Cells)),
		Metadata: yl.Metadata,
	}
	if level.Name == "" {
		level.Name = level.ID
	}
	if !level.Params.Valid() {
		return Level{}, ValidationError{
			Code:    CodeInvalidParams,
			Message: fmt.Sprintf("params %v do not describe a region", level.Params),
		}
	}

	mode, err := hex.ParseOrthoMode(yl.Ortho)
	if err != nil {
		return Level{}, ValidationError{Code: CodeInvalidOrtho, Message: err.Error()}
	}
	level.Ortho = mode

	if yl.Fill != "" {
		fill, err := tile.ParseState(yl.Fill)
		if err != nil {
			return Level{}, ValidationError{Code: CodeInvalidState, Message: "fill: " + err.Error()}
		}
		level.Fill = fill
	}

	for i, cell := range yl.Cells {
		c := hex.C(cell.X, cell.Y)
		if !level.Params.Contains(c) {
			return Level{}, ValidationError{
				Code:    CodeOutOfBounds,
				Message: fmt.Sprintf("cells[%d]: %v is outside region %v", i, c, level.Params),
			}
		}
		if _, dup := level.Cells[c]; dup {
			return Level{}, ValidationError{
				Code:    CodeDuplicateCell,
				Message: fmt.Sprintf("cells[%d]: %v is placed twice", i, c),
			}
		}
		s, err := tile.ParseState(cell.State)
		if err != nil {
			return Level{}, ValidationError{
				Code:    CodeInvalidState,
				Message: fmt.Sprintf("cells[%d]: %v", i, err),
			}
		}
		level.Cells[c] = s
	}
	return level, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
