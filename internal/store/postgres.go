package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres stores solves in a JSONB column through a pgx pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects, verifies the connection and ensures the table exists.
// maxConns <= 0 keeps the pgx default.
func NewPostgres(ctx context.Context, dsn string, maxConns int) (*Postgres, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if maxConns > 0 {
		poolConfig.MaxConns = int32(maxConns)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS solves (
		id UUID PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL,
		status TEXT NOT NULL,
		payload JSONB NOT NULL
	)`); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure solves table: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Save(ctx context.Context, r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode solve: %w", err)
	}
	if _, err := p.pool.Exec(ctx,
		`INSERT INTO solves(id, created_at, status, payload) VALUES($1,$2,$3,$4)
		 ON CONFLICT(id) DO UPDATE SET created_at=EXCLUDED.created_at, status=EXCLUDED.status, payload=EXCLUDED.payload`,
		r.ID.String(), r.CreatedAt, string(r.Status), data); err != nil {
		return fmt.Errorf("upsert solve %s: %w", r.ID, err)
	}
	return nil
}

func (p *Postgres) Get(ctx context.Context, id uuid.UUID) (Record, error) {
	var payload []byte
	err := p.pool.QueryRow(ctx, `SELECT payload FROM solves WHERE id = $1`, id.String()).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
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

func (p *Postgres) List(ctx context.Context, limit int) ([]Record, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT payload FROM solves ORDER BY created_at DESC, id DESC LIMIT $1`, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("select solves: %w", err)
	}
	defer rows.Close()

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

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
