package storage

import (
	"errors"

	"github.com/Oussamaberchi/Quickkt/internal"
	"github.com/Oussamaberchi/Quickkt/internal/config"
)

// NewStateStore picks the backend from config. Every backend satisfies the
// full StateStore contract.
func NewStateStore(cfg *config.Config, logger internal.Logger) (StateStore, error) {
	switch cfg.StorageBackend {
	case "file":
		return NewFileStore(cfg.SnapshotFile, logger)
	case "sqlite":
		return NewSQLiteStore(cfg.SQLitePath, logger)
	case "postgres":
		return NewPostgresStore(cfg.PostgresDSN, logger)
	default:
		return nil, errors.New("storage: unknown backend " + cfg.StorageBackend)
	}
}
