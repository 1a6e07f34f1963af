// Package filestore persists the ledger as a single pretty-printed JSON
// document of the form {"transactions": [...], "current_budget": ...}.
// Every save is a full overwrite; there is no locking and the last writer
// wins.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"budget/internal/core"
)

// ErrCorrupted marks a data file that exists but cannot be decoded.
// Load returns the empty default ledger alongside it so callers can warn
// and continue.
var ErrCorrupted = errors.New("data file is corrupted")

type Store struct {
	path string
}

func New(path string) *Store { return &Store{path: path} }

// Load reads the ledger from disk. A missing file yields the empty
// default; a malformed one yields the empty default plus an error
// wrapping ErrCorrupted.
func (s *Store) Load(_ context.Context) (core.Ledger, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return emptyLedger(), nil
	}
	if err != nil {
		return emptyLedger(), fmt.Errorf("read %s: %w", s.path, err)
	}

	// Both top-level keys must be present; a file with either missing is
	// treated the same as unparseable JSON.
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return emptyLedger(), fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	if _, ok := keys["transactions"]; !ok {
		return emptyLedger(), fmt.Errorf("%w: missing transactions key", ErrCorrupted)
	}
	if _, ok := keys["current_budget"]; !ok {
		return emptyLedger(), fmt.Errorf("%w: missing current_budget key", ErrCorrupted)
	}

	var ledger core.Ledger
	if err := json.Unmarshal(raw, &ledger); err != nil {
		return emptyLedger(), fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	if ledger.Transactions == nil {
		ledger.Transactions = []core.Transaction{}
	}
	return ledger, nil
}

// Save overwrites the data file with the full ledger, pretty-printed.
func (s *Store) Save(_ context.Context, l core.Ledger) error {
	if l.Transactions == nil {
		l.Transactions = []core.Transaction{}
	}
	raw, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) Close() error { return nil }

func emptyLedger() core.Ledger {
	return core.Ledger{Transactions: []core.Transaction{}}
}
