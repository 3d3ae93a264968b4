// Package repository defines how the bank's full state is persisted.
//
// A Store serialises a whole Bank in one call and hydrates one in another.
// There are no partial writes or per-entity operations.
package repository

import (
	"context"
	"errors"

	"github.com/amirasaad/retailbank/pkg/domain/bank"
)

var (
	// ErrPersistenceIO is returned when the underlying store cannot be read or written.
	ErrPersistenceIO = errors.New("persistence i/o error")

	// ErrPersistenceFormat is returned when stored data contains an unparseable numeric field.
	ErrPersistenceFormat = errors.New("persistence format error")
)

// Store saves and loads the complete state of a Bank.
type Store interface {
	// Save writes every customer, account and transaction reachable from b.
	// It never mutates b. A failed save may leave the store partially written.
	Save(ctx context.Context, b *bank.Bank) error
	// Load hydrates b from the store. A store that was never written leaves b
	// unchanged and returns nil. On error b is left unchanged.
	Load(ctx context.Context, b *bank.Bank) error
}
