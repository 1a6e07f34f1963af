package backend

import (
	"context"

	"budget/internal/core"
)

// Backend is the durable store for the ledger.
type Backend interface {
	// Load reads the persisted ledger. A missing resource yields the
	// empty default. Implementations that find the resource malformed
	// return the empty default together with a descriptive error;
	// callers may warn and continue with the default.
	Load(ctx context.Context) (core.Ledger, error)
	// Save overwrites the persisted ledger with l.
	Save(ctx context.Context, l core.Ledger) error
	Close() error
}

// BackendType represents the type of backend.
type BackendType string

const (
	FileBackend   BackendType = "file"
	SQLiteBackend BackendType = "sqlite"
)

// String implements fmt.Stringer.
func (bt BackendType) String() string { return string(bt) }

// IsValid returns true if the backend type is valid.
func (bt BackendType) IsValid() bool {
	switch bt {
	case FileBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// Config holds configuration for backend creation.
type Config struct {
	Type BackendType

	// File backend specific
	DataFile string

	// SQLite specific
	SQLiteDBPath string
}
