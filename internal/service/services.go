package service

import (
	"github.com/expenso/expense-api/internal/repository"
	"github.com/expenso/expense-api/internal/server"
)

// Services is a container that groups all business-logic services.
type Services struct {
	Expenses *ExpenseService
}

// NewService constructs the service container.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Expenses: NewExpenseService(s, repos),
	}, nil
}
