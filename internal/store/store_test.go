package store

import (
	"testing"

	"github.com/expenso/expense-api/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, seed bool) *Store {
	t.Helper()

	cfg := &config.Config{
		Store: config.StoreConfig{SeedDemoData: seed},
	}
	log := zerolog.Nop()

	s, err := New(cfg, &log)
	require.NoError(t, err)
	return s
}

func TestNewSeedsDemoData(t *testing.T) {
	s := newTestStore(t, true)

	expenses := s.List()
	require.Len(t, expenses, 3)

	// Insertion order, not presentation order.
	assert.Equal(t, "e1", expenses[0].ID)
	assert.Equal(t, "e2", expenses[1].ID)
	assert.Equal(t, "e3", expenses[2].ID)
	assert.Equal(t, "Groceries", expenses[0].Description)
	assert.Equal(t, 120.00, expenses[1].Amount)
	assert.Equal(t, "2025-12-01", expenses[2].Date)
}

func TestNewWithoutSeed(t *testing.T) {
	s := newTestStore(t, false)

	assert.Empty(t, s.List())
	assert.Zero(t, s.Len())
}

func TestAppendAndLen(t *testing.T) {
	s := newTestStore(t, false)

	s.Append(Expense{ID: "e-test", Amount: 10, Description: "Lunch", Category: "Food", Date: "2025-12-05"})
	s.Append(Expense{ID: "e-test-2", Amount: 20, Description: "Taxi", Category: "Transport", Date: "2025-12-06"})

	assert.Equal(t, 2, s.Len())

	expenses := s.List()
	require.Len(t, expenses, 2)
	assert.Equal(t, "e-test", expenses[0].ID)
	assert.Equal(t, "e-test-2", expenses[1].ID)
}

func TestListReturnsCopy(t *testing.T) {
	s := newTestStore(t, true)

	expenses := s.List()
	expenses[0].Description = "mutated"

	assert.Equal(t, "Groceries", s.List()[0].Description)
}

func TestCloseIsIdempotent(t *testing.T) {
	s := newTestStore(t, true)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.Equal(t, 3, s.Len())
}
