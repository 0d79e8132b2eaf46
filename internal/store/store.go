// Package store owns the application's expense collection.
//
// The collection is volatile and process-scoped: it lives only for
// the lifetime of the hosting process and is never shared across
// instances. The Store is an explicitly owned object injected through
// the server container, so tests can construct isolated instances.
package store

import (
	"sync"

	"github.com/expenso/expense-api/internal/config"
	"github.com/rs/zerolog"
)

// Store is the in-memory expense collection.
//
// Append is the sole mutation; records are never updated or deleted.
// A mutex serializes appends and reads hand out copies, so callers
// can never observe or corrupt internal state.
type Store struct {
	mu       sync.Mutex
	expenses []Expense

	logger *zerolog.Logger
}

// New constructs a Store and, when configured, seeds it with the
// fixed demo expenses.
func New(cfg *config.Config, logger *zerolog.Logger) (*Store, error) {
	s := &Store{
		logger: logger,
	}

	if cfg.Store.SeedDemoData {
		s.expenses = seedExpenses()
		logger.Info().
			Int("records", len(s.expenses)).
			Msg("seeded in-memory expense store")
	}

	return s, nil
}

// Append adds an expense to the collection. Insertion order is
// preserved; presentation order is the service layer's concern.
func (s *Store) Append(e Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, e)
}

// List returns a copy of every stored expense in insertion order.
func (s *Store) List() []Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Len returns the number of stored expenses.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.expenses)
}

// Close releases the store. The collection is in-memory, so there is
// nothing to flush; this exists for lifecycle symmetry with the
// server's other owned resources.
func (s *Store) Close() error {
	s.logger.Info().Msg("closing in-memory expense store")
	return nil
}
