package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/PithLimb/StreamingServices/internal/common"
	"github.com/PithLimb/StreamingServices/pkg/catalog"
	"github.com/dgraph-io/badger/v4"
)

var badgerRegistryKey = []byte("registry")

type badgerGateway struct {
	db *badger.DB
}

// NewBadgerGateway opens (or creates) a badger database in dir and keeps the snapshot under a single key.
func NewBadgerGateway(dir string) (Gateway, error) {
	db, err := badger.Open(
		badger.DefaultOptions(dir).
			WithNumVersionsToKeep(1).
			WithLogger(&badgerLogger{}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to badger.Open: %w", err)
	}

	return &badgerGateway{db: db}, nil
}

// Load reads and decodes the snapshot entry.
func (g *badgerGateway) Load(ctx context.Context) (*catalog.Registry, error) {
	var registry *catalog.Registry
	err := instrument(ctx, "load", "badger", func(ctx context.Context) error {
		return g.db.View(func(txn *badger.Txn) error {
			item, err := txn.Get(badgerRegistryKey)
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNoData
			} else if err != nil {
				return fmt.Errorf("failed to badger.Txn.Get: %w", err)
			}

			data, err := item.ValueCopy(nil)
			if err != nil {
				return fmt.Errorf("failed to badger.Item.ValueCopy: %w", err)
			}

			registry, err = Decode(data)
			return err
		})
	})

	return registry, err
}

// Save replaces the snapshot entry in a single transaction.
func (g *badgerGateway) Save(ctx context.Context, registry *catalog.Registry) error {
	return instrument(ctx, "save", "badger", func(ctx context.Context) error {
		data, err := Encode(registry)
		if err != nil {
			return err
		}

		err = g.db.Update(func(txn *badger.Txn) error {
			return txn.Set(badgerRegistryKey, data)
		})
		if err != nil {
			return fmt.Errorf("failed to badger.DB.Update: %w", err)
		}

		common.Log.DebugContext(ctx, "Saved catalog", "bytes", len(data), "services", registry.Len())
		return nil
	})
}

// Close closes the DB. It's crucial to call it to ensure all the pending updates make their way to disk.
func (g *badgerGateway) Close() error {
	return g.db.Close()
}

type badgerLogger struct{}

func (l *badgerLogger) Errorf(s string, i ...interface{}) {
	common.Log.Error(fmt.Sprintf(s, i...), "component", "badger")
}

func (l *badgerLogger) Warningf(s string, i ...interface{}) {
	common.Log.Warn(fmt.Sprintf(s, i...), "component", "badger")
}

func (l *badgerLogger) Infof(s string, i ...interface{}) {
	common.Log.Debug(fmt.Sprintf(s, i...), "component", "badger")
}

func (l *badgerLogger) Debugf(s string, i ...interface{}) {
	common.Log.Debug(fmt.Sprintf(s, i...), "component", "badger")
}
