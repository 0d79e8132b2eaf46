package router

import (
	"net/http"

	"github.com/expenso/expense-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerExpenseRoutes maps the expense collection endpoints.
//
// The collection is method-routed on one path: OPTIONS answers CORS
// preflight with 204, GET lists date-descending, POST validates and
// creates. Unsupported methods fall through to Echo's 405, which the
// global error handler shapes into the method-not-allowed envelope.
func registerExpenseRoutes(r *echo.Echo, h *handler.Handlers) {
	emptyReq := func() *handler.EmptyRequest { return &handler.EmptyRequest{} }

	r.OPTIONS("/expenses", handler.HandleNoContent(
		h.Expense.Handler,
		h.Expense.Preflight,
		http.StatusNoContent,
		emptyReq,
	))

	r.GET("/expenses", handler.Handle(
		h.Expense.Handler,
		h.Expense.ListExpenses,
		http.StatusOK,
		emptyReq,
	))

	r.POST("/expenses", handler.Handle(
		h.Expense.Handler,
		h.Expense.CreateExpense,
		http.StatusCreated,
		func() *handler.CreateExpenseRequest { return &handler.CreateExpenseRequest{} },
	))

	r.GET("/expenses/export", handler.HandleFile(
		h.Expense.Handler,
		h.Expense.ExportExpenses,
		http.StatusOK,
		emptyReq,
		"expenses.csv",
		"text/csv",
	))
}
