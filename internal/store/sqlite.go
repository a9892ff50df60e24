package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/PithLimb/StreamingServices/internal/common"
	"github.com/PithLimb/StreamingServices/pkg/catalog"
	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS registry_snapshot (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	data BLOB NOT NULL,
	saved_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

type sqliteGateway struct {
	db *sql.DB
}

// NewSQLiteGateway opens (or creates) the sqlite database at path. The snapshot lives in a single row.
func NewSQLiteGateway(path string) (Gateway, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to sql.Open: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to sql.DB.Ping: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create registry_snapshot table: %w", err)
	}

	return &sqliteGateway{db: db}, nil
}

// Load reads and decodes the snapshot row.
func (g *sqliteGateway) Load(ctx context.Context) (*catalog.Registry, error) {
	var registry *catalog.Registry
	err := instrument(ctx, "load", "sqlite", func(ctx context.Context) error {
		var data []byte
		err := g.db.QueryRowContext(ctx, `SELECT data FROM registry_snapshot WHERE id = 1`).Scan(&data)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoData
		} else if err != nil {
			return fmt.Errorf("failed to query registry_snapshot: %w", err)
		}

		registry, err = Decode(data)
		return err
	})

	return registry, err
}

// Save upserts the snapshot row.
func (g *sqliteGateway) Save(ctx context.Context, registry *catalog.Registry) error {
	return instrument(ctx, "save", "sqlite", func(ctx context.Context) error {
		data, err := Encode(registry)
		if err != nil {
			return err
		}

		_, err = g.db.ExecContext(ctx, `
		INSERT INTO registry_snapshot (id, data, saved_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at
		`, data)
		if err != nil {
			return fmt.Errorf("failed to upsert registry_snapshot: %w", err)
		}

		common.Log.DebugContext(ctx, "Saved catalog", "bytes", len(data), "services", registry.Len())
		return nil
	})
}

func (g *sqliteGateway) Close() error {
	return g.db.Close()
}
