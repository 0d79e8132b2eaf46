package repository

import (
	"context"

	"github.com/expenso/expense-api/internal/server"
	"github.com/expenso/expense-api/internal/store"
)

// ExpenseRepository performs expense data access against the
// server-owned in-memory store.
//
// Methods take a context for interface symmetry with backed stores;
// the in-process store itself never blocks.
type ExpenseRepository struct {
	server *server.Server
}

// NewExpenseRepository constructs an ExpenseRepository.
func NewExpenseRepository(s *server.Server) *ExpenseRepository {
	return &ExpenseRepository{server: s}
}

// Insert appends an expense to the store. Append is the only mutation
// the repository exposes; expenses are never updated or deleted.
func (r *ExpenseRepository) Insert(ctx context.Context, e store.Expense) error {
	r.server.Store.Append(e)
	return nil
}

// FindAll returns every stored expense in insertion order.
func (r *ExpenseRepository) FindAll(ctx context.Context) ([]store.Expense, error) {
	return r.server.Store.List(), nil
}

// Count returns the number of stored expenses.
func (r *ExpenseRepository) Count(ctx context.Context) (int, error) {
	return r.server.Store.Len(), nil
}
