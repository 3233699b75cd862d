package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bigpicture_agent/pkg/core/utils"
	"bigpicture_agent/pkg/models"
)

// PostgresStore reads MASTER_FILE rows directly from the Supabase Postgres
// database, skipping the REST layer. Selected at startup when DATABASE_URL
// is set.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects a pgx pool to the given database URL. The pool is
// owned by the store; callers close it through Close on shutdown.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	if databaseURL == "" {
		return nil, utils.CreateConfigurationError("record store not configured: DATABASE_URL is empty")
	}

	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// FetchPart selects one row by exact PartNumber match. The wide row is
// serialised to JSON inside Postgres so both store implementations decode
// into the identical generic record.
func (s *PostgresStore) FetchPart(ctx context.Context, partNumber string) (models.PartRecord, error) {
	query := `SELECT row_to_json(m) FROM "MASTER_FILE" m WHERE "PartNumber" = $1 LIMIT 1`

	var raw []byte
	err := s.pool.QueryRow(ctx, query, partNumber).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPartNotFound
		}
		return nil, utils.CreateUpstreamError("record store query failed", err)
	}

	var rec models.PartRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, utils.CreateUpstreamError("record store returned malformed row", err)
	}
	return rec, nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
