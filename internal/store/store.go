package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/PithLimb/StreamingServices/internal/common"
	"github.com/PithLimb/StreamingServices/internal/config"
	"github.com/PithLimb/StreamingServices/pkg/catalog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const tracerName = "github.com/PithLimb/StreamingServices/internal/store"

var (
	// ErrNoData is returned by Gateway.Load when nothing was saved yet.
	ErrNoData = errors.New("no saved data")
	// ErrCorrupt is returned by Gateway.Load when the saved snapshot cannot be decoded.
	ErrCorrupt = errors.New("corrupt snapshot")
	// ErrClosed is returned by a Gateway from Open once it has been closed.
	ErrClosed = errors.New("store closed")
)

// Gateway persists the whole Registry. Every Save rewrites the full snapshot
// and every Load replaces the in-memory state wholesale.
type Gateway interface {
	// Load reads the saved Registry. It returns ErrNoData when nothing was saved yet.
	Load(ctx context.Context) (*catalog.Registry, error)
	// Save replaces the saved Registry with registry in one atomic write.
	Save(ctx context.Context, registry *catalog.Registry) error
	// Close releases the resources held by the backend.
	Close() error
}

// Open creates the Gateway selected by cfg.Store. The returned Gateway is safe
// for concurrent use and Close waits for an in-flight Load or Save.
func Open(cfg *config.Config) (Gateway, error) {
	var (
		gw  Gateway
		err error
	)
	switch cfg.Store {
	case config.StoreFile:
		gw = NewFileGateway(cfg.DataFile)
	case config.StoreBadger:
		gw, err = NewBadgerGateway(cfg.BadgerDir)
	case config.StoreSQLite:
		gw, err = NewSQLiteGateway(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", cfg.Store)
	}
	if err != nil {
		return nil, err
	}
	return newSyncGateway(gw), nil
}

// LoadOrEmpty loads the Registry through gw and falls back to an empty Registry on any failure.
// The returned Registry is never nil; the error only tells the caller why it is empty.
func LoadOrEmpty(ctx context.Context, gw Gateway) (*catalog.Registry, error) {

	ctx, span := otel.Tracer(tracerName).Start(ctx, "store.LoadOrEmpty")
	defer span.End()

	registry, err := gw.Load(ctx)
	switch {
	case errors.Is(err, ErrNoData):
		common.Log.InfoContext(ctx, "No saved data found, starting with an empty catalog")
	case err != nil:
		common.Log.WarnContext(ctx, "Failed to store.Gateway.Load, starting with an empty catalog", "err", err)
		span.RecordError(err)
	default:
		span.SetAttributes(attribute.Int("registry.services", registry.Len()))
		return registry, nil
	}

	return catalog.NewRegistry(), err
}

func persistResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNoData):
		return "empty"
	case errors.Is(err, ErrCorrupt):
		return "corrupt"
	}
	return "error"
}

// instrument wraps a backend operation with a span and the registry_persist_total counter.
func instrument(ctx context.Context, op, backend string, fn func(ctx context.Context) error) error {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "store.Gateway."+op)
	defer span.End()
	span.SetAttributes(attribute.String("store.backend", backend))

	err := fn(ctx)
	if err != nil && !errors.Is(err, ErrNoData) {
		span.RecordError(err)
	}
	common.RegistryPersistTotalIncr(ctx, op, backend, persistResult(err))

	return err
}
