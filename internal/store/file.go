package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/PithLimb/StreamingServices/internal/common"
	"github.com/PithLimb/StreamingServices/pkg/catalog"
)

type fileGateway struct {
	path string
}

// NewFileGateway creates a Gateway keeping the snapshot in a single file at path.
func NewFileGateway(path string) Gateway {
	return &fileGateway{path: path}
}

// Load reads and decodes the snapshot file.
func (g *fileGateway) Load(ctx context.Context) (*catalog.Registry, error) {
	var registry *catalog.Registry
	err := instrument(ctx, "load", "file", func(ctx context.Context) error {
		data, err := os.ReadFile(g.path)
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNoData
		} else if err != nil {
			return fmt.Errorf("failed to os.ReadFile: %w", err)
		}

		registry, err = Decode(data)
		if err != nil {
			return err
		}

		common.Log.DebugContext(ctx, "Loaded catalog", "path", g.path, "bytes", len(data), "services", registry.Len())
		return nil
	})

	return registry, err
}

// Save writes the snapshot to a temporary file next to the target and renames it
// over the target, so readers only ever see a complete snapshot.
func (g *fileGateway) Save(ctx context.Context, registry *catalog.Registry) error {
	return instrument(ctx, "save", "file", func(ctx context.Context) error {
		data, err := Encode(registry)
		if err != nil {
			return err
		}

		if err := writeFileAtomic(g.path, data); err != nil {
			return err
		}

		common.Log.DebugContext(ctx, "Saved catalog", "path", g.path, "bytes", len(data), "services", registry.Len())
		return nil
	})
}

func (g *fileGateway) Close() error {
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to os.CreateTemp: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to os.File.Write: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to os.File.Sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to os.File.Close: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("failed to os.Chmod: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to os.Rename: %w", err)
	}

	return nil
}
