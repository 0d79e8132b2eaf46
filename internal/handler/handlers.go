package handler

import (
	"github.com/expenso/expense-api/internal/server"
	"github.com/expenso/expense-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup receives one object instead of many.
type Handlers struct {
	Health  *HealthHandler  // Health serves the service health endpoint.
	Expense *ExpenseHandler // Expense serves the expense collection endpoints.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		Expense: NewExpenseHandler(s, services.Expenses),
	}
}
