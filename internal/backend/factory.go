package backend

import (
	"fmt"
	"log/slog"

	"budget/internal/filestore"
	"budget/internal/storage"
)

// DefaultFactory builds backends based on configuration.
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory.
func NewFactory(logger *slog.Logger) *DefaultFactory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

// CreateBackend creates the backend selected by cfg.
func (f *DefaultFactory) CreateBackend(cfg Config) (Backend, error) {
	switch cfg.Type {
	case FileBackend:
		f.logger.Info("Initialized file backend", "path", cfg.DataFile)
		return filestore.New(cfg.DataFile), nil
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("create sqlite backend: %w", err)
		}
		f.logger.Info("Initialized sqlite backend", "path", cfg.SQLiteDBPath)
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown backend type %q", cfg.Type)
	}
}
