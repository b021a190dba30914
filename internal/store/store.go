// Package store persists the log of solves served by simplexd so any past
// run can be listed and replayed step by step.
//
// Backends are chosen by DSN scheme:
//
//	memory://              process-local, lost on exit (default)
//	sqlite://<path>        single-file SQLite database, JSON payload column
//	postgres://...         PostgreSQL through a pgx connection pool
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned by Get for an unknown ID.
	ErrNotFound = errors.New("store: solve not found")

	// ErrUnsupportedDSN is returned by Open for an unknown scheme.
	ErrUnsupportedDSN = errors.New("store: unsupported DSN")
)

// Status is the outcome of a stored solve.
type Status string

const (
	StatusOptimal        Status = "optimal"
	StatusUnbounded      Status = "unbounded"
	StatusInfeasible     Status = "infeasible"
	StatusNonConvergence Status = "nonconvergence"
	StatusInvalid        Status = "invalid"
	StatusError          Status = "error"
)

// DefaultListLimit is used by List when limit <= 0.
const DefaultListLimit = 50

// Record is one solve: its input, outcome and, on success, the full history
// and solution as produced by the simplex JSON codec.
type Record struct {
	ID          uuid.UUID       `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	Objective   string          `json:"objective"`
	Constraints []string        `json:"constraints"`
	Direction   string          `json:"direction"`
	Status      Status          `json:"status"`
	Error       string          `json:"error,omitempty"`
	Iterations  int             `json:"iterations"`
	History     json.RawMessage `json:"history,omitempty"`
	Solution    json.RawMessage `json:"solution,omitempty"`
}

// NewRecord returns a Record with a fresh ID and creation time.
func NewRecord(objective string, constraints []string, direction string) Record {
	return Record{
		ID:          uuid.New(),
		CreatedAt:   time.Now().UTC(),
		Objective:   objective,
		Constraints: append([]string(nil), constraints...),
		Direction:   direction,
	}
}

// Summary returns r without its history and solution payloads.
func (r Record) Summary() Record {
	r.History, r.Solution = nil, nil
	return r
}

// Store is the solve log.
type Store interface {
	// Save inserts r, replacing any record with the same ID.
	Save(ctx context.Context, r Record) error
	// Get returns the full record, or ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (Record, error)
	// List returns up to limit summaries, newest first.
	List(ctx context.Context, limit int) ([]Record, error)
	Close() error
}

// Open returns the backend selected by dsn's scheme. maxConns bounds the
// PostgreSQL pool and is ignored by the other backends.
func Open(ctx context.Context, dsn string, maxConns int) (Store, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedDSN, err)
	}
	switch u.Scheme {
	case "memory", "mem":
		return NewMemory(), nil
	case "sqlite", "sqlite3", "file":
		path := strings.TrimPrefix(dsn, u.Scheme+"://")
		return NewSQLite(ctx, path)
	case "postgres", "postgresql":
		return NewPostgres(ctx, dsn, maxConns)
	}
	return nil, fmt.Errorf("%w: scheme %q", ErrUnsupportedDSN, u.Scheme)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}
