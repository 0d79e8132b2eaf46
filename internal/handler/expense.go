package handler

import (
	"strconv"
	"strings"

	"github.com/expenso/expense-api/internal/errs"
	"github.com/expenso/expense-api/internal/server"
	"github.com/expenso/expense-api/internal/service"
	"github.com/expenso/expense-api/internal/store"
	"github.com/expenso/expense-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// EmptyRequest is the payload for endpoints that take no input.
type EmptyRequest struct{}

// Validate satisfies validation.Validatable; there is nothing to check.
func (r *EmptyRequest) Validate() error {
	return nil
}

// CreateExpenseRequest is the POST /expenses payload.
//
// Fields are deliberately untyped: the contract requires that a
// wrongly-typed field (say, a numeric description) produces a field
// validation error alongside any other failures, not a bind failure
// that masks them. Validate runs all four checks and collects every
// failure.
type CreateExpenseRequest struct {
	Amount      any `json:"amount"`
	Description any `json:"description"`
	Category    any `json:"category"`
	Date        any `json:"date"`
}

// Validate applies the expense field contracts:
//   - amount: present, non-zero, parseable as a float
//   - description: a string, non-empty after trimming
//   - category: a string, non-empty after trimming
//   - date: a string matching the YYYY-MM-DD shape (format only;
//     calendar correctness is intentionally not checked)
//
// All checks run; every failure is reported.
func (r *CreateExpenseRequest) Validate() error {
	var failures validation.CustomValidationErrors

	if _, ok := parseAmount(r.Amount); !ok {
		failures = append(failures, validation.CustomValidationError{
			Field:   "amount",
			Message: "Valid amount is required",
		})
	}

	if _, ok := nonEmptyString(r.Description); !ok {
		failures = append(failures, validation.CustomValidationError{
			Field:   "description",
			Message: "Description is required",
		})
	}

	if _, ok := nonEmptyString(r.Category); !ok {
		failures = append(failures, validation.CustomValidationError{
			Field:   "category",
			Message: "Category is required",
		})
	}

	if date, ok := r.Date.(string); !ok || !validation.IsValidDateFormat(date) {
		failures = append(failures, validation.CustomValidationError{
			Field:   "date",
			Message: "Valid date is required (YYYY-MM-DD)",
		})
	}

	if len(failures) > 0 {
		return failures
	}
	return nil
}

// MapBindError reclassifies bind failures (malformed JSON bodies) as
// processing errors: the create contract answers those with a 500,
// not a 400.
func (r *CreateExpenseRequest) MapBindError(err error) error {
	return errs.NewInternalServerError("Internal Server Error during expense creation")
}

// input converts the request into the service-layer payload.
// Only meaningful after Validate has passed.
func (r *CreateExpenseRequest) input() service.CreateExpenseInput {
	amount, _ := parseAmount(r.Amount)
	description, _ := r.Description.(string)
	category, _ := r.Category.(string)
	date, _ := r.Date.(string)

	return service.CreateExpenseInput{
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        date,
	}
}

// parseAmount coerces an untyped amount field into a float64.
// Missing values, zero, unparseable strings, and non-numeric types
// all fail the contract.
func parseAmount(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, n != 0
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || f == 0 {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// nonEmptyString reports whether v is a string that still has content
// after trimming whitespace.
func nonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// ListExpensesResponse is the GET /expenses envelope.
type ListExpensesResponse struct {
	Success bool            `json:"success"`
	Data    []store.Expense `json:"data"`
}

// CreateExpenseResponse is the successful POST /expenses envelope.
type CreateExpenseResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    store.Expense `json:"data"`
}

// ExpenseHandler serves the expense collection endpoints.
type ExpenseHandler struct {
	Handler
	expenses *service.ExpenseService
}

// NewExpenseHandler constructs an ExpenseHandler.
func NewExpenseHandler(s *server.Server, expenses *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{
		Handler:  NewHandler(s),
		expenses: expenses,
	}
}

// ListExpenses returns every stored expense, date descending.
func (h *ExpenseHandler) ListExpenses(c echo.Context, req *EmptyRequest) (ListExpensesResponse, error) {
	expenses, err := h.expenses.List(c.Request().Context())
	if err != nil {
		return ListExpensesResponse{}, err
	}

	return ListExpensesResponse{
		Success: true,
		Data:    expenses,
	}, nil
}

// CreateExpense validates and stores a new expense, returning the
// stored record. Any processing failure past validation is reported
// as the creation-specific 500.
func (h *ExpenseHandler) CreateExpense(c echo.Context, req *CreateExpenseRequest) (CreateExpenseResponse, error) {
	expense, err := h.expenses.Create(c.Request().Context(), req.input())
	if err != nil {
		return CreateExpenseResponse{}, errs.NewInternalServerError("Internal Server Error during expense creation")
	}

	return CreateExpenseResponse{
		Success: true,
		Message: "Expense added successfully",
		Data:    expense,
	}, nil
}

// Preflight answers CORS preflight requests. The pipeline writes the
// 204; the CORS middleware has already attached the allow headers.
func (h *ExpenseHandler) Preflight(c echo.Context, req *EmptyRequest) error {
	return nil
}

// ExportExpenses renders the collection as a CSV download.
func (h *ExpenseHandler) ExportExpenses(c echo.Context, req *EmptyRequest) ([]byte, error) {
	return h.expenses.ExportCSV(c.Request().Context())
}
