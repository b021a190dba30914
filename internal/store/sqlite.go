package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLite stores each solve as a JSON payload keyed by ID, with the creation
// time kept in its own column for ordering.
type SQLite struct {
	db   *sql.DB
	path string
}

// NewSQLite opens (creating if needed) the database at path.
func NewSQLite(ctx context.Context, path string) (*SQLite, error) {
	if path == "" {
		path = "tableau.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite has a single writer.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS solves (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL,
		status TEXT NOT NULL,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create solves table: %w", err)
	}
	return &SQLite{db: db, path: path}, nil
}

func (s *SQLite) Save(ctx context.Context, r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode solve: %w", err)
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO solves(id, created_at, status, payload) VALUES(?,?,?,?)
		 ON CONFLICT(id) DO UPDATE SET created_at=excluded.created_at, status=excluded.status, payload=excluded.payload`,
		r.ID.String(), r.CreatedAt.UnixNano(), string(r.Status), data); err != nil {
		return fmt.Errorf("upsert solve %s: %w", r.ID, err)
	}
	return nil
}

func (s *SQLite) Get(ctx context.Context, id uuid.UUID) (Record, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM solves WHERE id = ?`, id.String()).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("select solve %s: %w", id, err)
	}
	var r Record
	if err := json.Unmarshal(payload, &r); err != nil {
		return Record{}, fmt.Errorf("decode solve %s: %w", id, err)
	}
	return r, nil
}

func (s *SQLite) List(ctx context.Context, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM solves ORDER BY created_at DESC, id DESC LIMIT ?`, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("select solves: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []Record{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		var r Record
		if err := json.Unmarshal(payload, &r); err != nil {
			return nil, fmt.Errorf("decode solve: %w", err)
		}
		out = append(out, r.Summary())
	}
	return out, rows.Err()
}

func (s *SQLite) Close() error { return s.db.Close() }

// DB exposes the underlying sql.DB for tests.
func (s *SQLite) DB() *sql.DB { return s.db }

// Path returns the database file path.
func (s *SQLite) Path() string { return s.path }
