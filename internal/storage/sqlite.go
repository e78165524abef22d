// Package storage provides SQLite-based persistence for boards and the
// moves played on them.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/hextiles/internal/board"
	"github.com/vovakirdan/hextiles/internal/hex"
)

// ErrNotFound is returned when a board ID is unknown.
var ErrNotFound = errors.New("storage: board not found")

// Store manages the SQLite database connection.
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

// BoardRecord describes a saved board without its cells.
type BoardRecord struct {
	ID        string
	Name      string
	Params    hex.Params
	Ortho     hex.OrthoMode
	Size      int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MoveRecord is one element application recorded against a board.
type MoveRecord struct {
	ID        int64
	BoardID   string
	Element   string
	Coord     hex.Coord
	Direct    bool
	Cascaded  bool
	Changed   int
	CreatedAt time.Time
}

type boardRow struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	A         int    `db:"a"`
	B         int    `db:"b"`
	C         int    `db:"c"`
	Ortho     string `db:"ortho"`
	Size      int    `db:"size"`
	Cells     []byte `db:"cells"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}

func (r boardRow) record() BoardRecord {
	mode, _ := hex.ParseOrthoMode(r.Ortho)
	return BoardRecord{
		ID:        r.ID,
		Name:      r.Name,
		Params:    hex.P(r.A, r.B, r.C),
		Ortho:     mode,
		Size:      r.Size,
		CreatedAt: time.UnixMilli(r.CreatedAt),
		UpdatedAt: time.UnixMilli(r.UpdatedAt),
	}
}

type moveRow struct {
	ID        int64  `db:"id"`
	BoardID   string `db:"board_id"`
	Element   string `db:"element"`
	X         int    `db:"x"`
	Y         int    `db:"y"`
	Direct    bool   `db:"direct"`
	Cascaded  bool   `db:"cascaded"`
	Changed   int    `db:"changed"`
	CreatedAt int64  `db:"created_at"`
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SSH sessions share the store; one connection serializes writers.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS boards (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			a INTEGER NOT NULL,
			b INTEGER NOT NULL,
			c INTEGER NOT NULL,
			ortho TEXT NOT NULL,
			size INTEGER NOT NULL,
			cells BLOB NOT NULL,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_boards_updated ON boards(updated_at DESC);

		CREATE TABLE IF NOT EXISTS moves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			board_id TEXT NOT NULL,
			element TEXT NOT NULL,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			direct INTEGER NOT NULL,
			cascaded INTEGER NOT NULL,
			changed INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_moves_board ON moves(board_id, id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveBoard stores b under a new ID and returns the ID.
func (s *Store) SaveBoard(name string, b *board.Board) (string, error) {
	cells, err := encodeCells(b.States())
	if err != nil {
		return "", fmt.Errorf("storage: cannot save board: %w", err)
	}

	id := uuid.NewString()
	now := s.now().UnixMilli()
	p := b.Params()
	_, err = s.db.Exec(
		`INSERT INTO boards (id, name, a, b, c, ortho, size, cells, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, name, p.A, p.B, p.C, b.Mode().String(), b.Len(), cells, now, now,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save board: %w", err)
	}
	return id, nil
}

// UpdateBoard replaces the stored cells and shape of board id.
func (s *Store) UpdateBoard(id string, b *board.Board) error {
	cells, err := encodeCells(b.States())
	if err != nil {
		return fmt.Errorf("storage: cannot update board %s: %w", id, err)
	}

	p := b.Params()
	result, err := s.db.Exec(
		`UPDATE boards SET a = ?, b = ?, c = ?, ortho = ?, size = ?, cells = ?, updated_at = ?
		 WHERE id = ?`,
		p.A, p.B, p.C, b.Mode().String(), b.Len(), cells, s.now().UnixMilli(), id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update board %s: %w", id, err)
	}
	return expectRow(result, id)
}

// LoadBoard reads board id back.
func (s *Store) LoadBoard(id string) (*board.Board, BoardRecord, error) {
	var row boardRow
	err := s.db.Get(&row, `SELECT * FROM boards WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, BoardRecord{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, BoardRecord{}, fmt.Errorf("storage: cannot load board %s: %w", id, err)
	}

	rec := row.record()
	states, err := decodeCells(row.Cells)
	if err != nil {
		return nil, rec, fmt.Errorf("storage: board %s: %w", id, err)
	}
	b, err := board.New(rec.Params, rec.Ortho)
	if err != nil {
		return nil, rec, fmt.Errorf("storage: board %s: %w", id, err)
	}
	if err := b.Load(states); err != nil {
		return nil, rec, fmt.Errorf("storage: board %s: %w", id, err)
	}
	return b, rec, nil
}

// ListBoards returns the most recently updated boards first.
func (s *Store) ListBoards(limit int) ([]BoardRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	var rows []boardRow
	err := s.db.Select(&rows,
		`SELECT id, name, a, b, c, ortho, size, created_at, updated_at
		 FROM boards
		 ORDER BY updated_at DESC, created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list boards: %w", err)
	}

	records := make([]BoardRecord, len(rows))
	for i, r := range rows {
		records[i] = r.record()
	}
	return records, nil
}

// DeleteBoard removes board id and its move history.
func (s *Store) DeleteBoard(id string) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("storage: cannot delete board %s: %w", id, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM moves WHERE board_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete moves of %s: %w", id, err)
	}
	result, err := tx.Exec("DELETE FROM boards WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete board %s: %w", id, err)
	}
	if err := expectRow(result, id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot delete board %s: %w", id, err)
	}
	return nil
}

// RecordMove appends the application described by res to the history of
// board id. The board must exist.
func (s *Store) RecordMove(id string, res board.Result) (int64, error) {
	var exists int
	if err := s.db.Get(&exists, "SELECT COUNT(*) FROM boards WHERE id = ?", id); err != nil {
		return 0, fmt.Errorf("storage: cannot record move: %w", err)
	}
	if exists == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	direct := len(res.Changes) > 0 && res.Changes[0].Direct
	result, err := s.db.Exec(
		`INSERT INTO moves (board_id, element, x, y, direct, cascaded, changed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, res.Element.String(), res.Origin.X, res.Origin.Y,
		direct, res.Cascaded(), res.ChangedCount(), s.now().UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record move: %w", err)
	}

	moveID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return moveID, nil
}

// Moves returns the latest moves of board id, oldest first.
func (s *Store) Moves(id string, limit int) ([]MoveRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	var rows []moveRow
	err := s.db.Select(&rows,
		`SELECT * FROM (
			SELECT id, board_id, element, x, y, direct, cascaded, changed, created_at
			FROM moves
			WHERE board_id = ?
			ORDER BY id DESC
			LIMIT ?
		 ) ORDER BY id ASC`,
		id, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query moves: %w", err)
	}

	moves := make([]MoveRecord, len(rows))
	for i, r := range rows {
		moves[i] = MoveRecord{
			ID:        r.ID,
			BoardID:   r.BoardID,
			Element:   r.Element,
			Coord:     hex.C(r.X, r.Y),
			Direct:    r.Direct,
			Cascaded:  r.Cascaded,
			Changed:   r.Changed,
			CreatedAt: time.UnixMilli(r.CreatedAt),
		}
	}
	return moves, nil
}

// expectRow maps an update that touched no row to ErrNotFound.
func expectRow(result sql.Result, id string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
