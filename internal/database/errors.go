package database

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a requested record does not exist.
	ErrNotFound = errors.New("database: not found")
	// ErrStore wraps every failure reported by the SQLite engine.
	ErrStore = errors.New("database: store failure")
	// ErrMissingContext is returned by repositories built without a connection.
	ErrMissingContext = errors.New("database: missing database context")
)

func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStore, op, err)
}
