package repository

import (
	"github.com/expenso/expense-api/internal/server"
)

// Repositories is a container for all repository instances, so the
// service layer receives one object instead of many.
type Repositories struct {
	Expenses *ExpenseRepository
}

// NewRepositories constructs the repository container using the
// application container's shared dependencies.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Expenses: NewExpenseRepository(s),
	}
}
