package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/expenso/expense-api/internal/repository"
	"github.com/expenso/expense-api/internal/server"
	"github.com/expenso/expense-api/internal/store"
	"github.com/google/uuid"
)

// CreateExpenseInput carries an already-validated expense payload
// from the handler layer. Amount is the parsed numeric value;
// Description and Category are trimmed here, Date is taken verbatim.
type CreateExpenseInput struct {
	Amount      float64
	Description string
	Category    string
	Date        string
}

// ExpenseService implements the expense business operations: listing
// in presentation order, creating records, and exporting.
type ExpenseService struct {
	server *server.Server
	repos  *repository.Repositories
}

// NewExpenseService constructs an ExpenseService.
func NewExpenseService(s *server.Server, repos *repository.Repositories) *ExpenseService {
	return &ExpenseService{
		server: s,
		repos:  repos,
	}
}

// List returns every stored expense sorted by date descending.
//
// Dates are compared as strings, which orders correctly for the fixed
// YYYY-MM-DD shape. The sort operates on a copy; stored insertion
// order is never changed. Equal dates carry no ordering guarantee.
func (s *ExpenseService) List(ctx context.Context) ([]store.Expense, error) {
	expenses, err := s.repos.Expenses.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	sort.Slice(expenses, func(i, j int) bool {
		return expenses[i].Date > expenses[j].Date
	})

	return expenses, nil
}

// Create builds an Expense from validated input and appends it to the
// store. The id is generated with a collision-resistant UUID behind
// the record's "e" prefix, so two creations can never collide.
//
// Create either fully succeeds or leaves the store untouched.
func (s *ExpenseService) Create(ctx context.Context, input CreateExpenseInput) (store.Expense, error) {
	expense := store.Expense{
		ID:          newExpenseID(),
		Amount:      input.Amount,
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
		Date:        input.Date,
	}

	if err := s.repos.Expenses.Insert(ctx, expense); err != nil {
		return store.Expense{}, fmt.Errorf("failed to insert expense: %w", err)
	}

	s.server.Logger.Info().
		Str("expense_id", expense.ID).
		Str("category", expense.Category).
		Str("date", expense.Date).
		Msg("expense created")

	return expense, nil
}

// ExportCSV renders every expense as CSV in the same date-descending
// order the list endpoint uses, with a header row.
func (s *ExpenseService) ExportCSV(ctx context.Context) ([]byte, error) {
	expenses, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{{"id", "amount", "description", "category", "date"}}
	for _, e := range expenses {
		records = append(records, []string{
			e.ID,
			strconv.FormatFloat(e.Amount, 'f', -1, 64),
			e.Description,
			e.Category,
			e.Date,
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to write expense CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// newExpenseID generates a process-independent unique expense id.
// The "e" prefix keeps generated ids in the same namespace as the
// seed records.
func newExpenseID() string {
	return "e" + uuid.NewString()
}
