//-------------------------------------------------------------------------
//
// pgEdge Credit Profile Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package db

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pgEdge/pgedge-creditgen/internal/logging"
	"github.com/pgEdge/pgedge-creditgen/pkg/version"
)

const metadataTable = "creditgen_metadata"

const createMetadataTableSQL = `
CREATE TABLE IF NOT EXISTS creditgen_metadata (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`

// RunMetadata describes a generation run recorded alongside a load.
type RunMetadata struct {
	Table  string
	Rows   int
	Seed   uint64
	AsOf   time.Time
	Output string
}

func (m RunMetadata) values() map[string]string {
	return map[string]string{
		"table":     m.Table,
		"rows":      strconv.Itoa(m.Rows),
		"seed":      strconv.FormatUint(m.Seed, 10),
		"as_of":     m.AsOf.Format(time.RFC3339),
		"output":    m.Output,
		"version":   version.Short(),
		"loaded_at": time.Now().UTC().Format(time.RFC3339),
	}
}

// SaveMetadata records the run that produced the loaded table.
func SaveMetadata(ctx context.Context, pool *pgxpool.Pool, m RunMetadata) error {
	_, err := pool.Exec(ctx, createMetadataTableSQL)
	if err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	for key, value := range m.values() {
		_, err := pool.Exec(ctx, `
            INSERT INTO creditgen_metadata (key, value) VALUES ($1, $2)
            ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
        `, key, value)
		if err != nil {
			return fmt.Errorf("failed to save metadata %s: %w", key, err)
		}
	}

	logging.Debug().
		Str("table", m.Table).
		Int("rows", m.Rows).
		Uint64("seed", m.Seed).
		Time("as_of", m.AsOf).
		Msg("Saved metadata")

	return nil
}

// GetMetadataValue retrieves a single metadata value by key.
func GetMetadataValue(ctx context.Context, pool *pgxpool.Pool, key string) (string, error) {
	var value string
	err := pool.QueryRow(ctx, `
        SELECT value FROM creditgen_metadata WHERE key = $1
    `, key).Scan(&value)
	if err != nil {
		return "", err
	}
	return value, nil
}

// DropMetadata drops the metadata table.
func DropMetadata(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", metadataTable))
	return err
}
