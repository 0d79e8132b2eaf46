package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/expenso/expense-api/internal/config"
	"github.com/expenso/expense-api/internal/handler"
	"github.com/expenso/expense-api/internal/middleware"
	"github.com/expenso/expense-api/internal/repository"
	"github.com/expenso/expense-api/internal/server"
	"github.com/expenso/expense-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, seed bool) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "8080",
			ReadTimeout:        5,
			WriteTimeout:       5,
			IdleTimeout:        30,
			CORSAllowedOrigins: []string{"*"},
		},
		Store:         config.StoreConfig{SeedDemoData: seed},
		Observability: config.DefaultObservabilityConfig(),
	}
	log := zerolog.Nop()

	s, err := server.New(cfg, &log, nil)
	require.NoError(t, err)

	repos := repository.NewRepositories(s)
	services, err := service.NewService(s, repos)
	require.NoError(t, err)

	return New(s, handler.NewHandlers(s, services), middleware.NewMiddlewares(s))
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestListExpensesReturnsSeedDataDateDescending(t *testing.T) {
	e := newTestRouter(t, true)

	rec := doJSON(e, http.MethodGet, "/expenses", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 3)

	first := data[0].(map[string]any)
	second := data[1].(map[string]any)
	third := data[2].(map[string]any)

	assert.Equal(t, "e3", first["id"])
	assert.Equal(t, "2025-12-01", first["date"])
	assert.Equal(t, "e2", second["id"])
	assert.Equal(t, "2025-11-30", second["date"])
	assert.Equal(t, "e1", third["id"])
	assert.Equal(t, "2025-11-28", third["date"])
	assert.Equal(t, 4.5, first["amount"])
	assert.Equal(t, "Coffee", first["description"])
}

func TestCreateExpense(t *testing.T) {
	e := newTestRouter(t, true)

	rec := doJSON(e, http.MethodPost, "/expenses",
		`{"amount": 50, "description": "Lunch", "category": "Food", "date": "2025-12-05"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Expense added successfully", body["message"])

	data := body["data"].(map[string]any)
	assert.Equal(t, 50.0, data["amount"])
	assert.Equal(t, "Lunch", data["description"])
	assert.Equal(t, "Food", data["category"])
	assert.Equal(t, "2025-12-05", data["date"])

	id, _ := data["id"].(string)
	assert.True(t, strings.HasPrefix(id, "e"))
	assert.NotContains(t, []string{"e1", "e2", "e3"}, id)

	// The new record shows up in subsequent lists, at the top since
	// its date is the latest.
	rec = doJSON(e, http.MethodGet, "/expenses", "")
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decodeBody(t, rec)["data"].([]any)
	require.Len(t, listed, 4)
	assert.Equal(t, id, listed[0].(map[string]any)["id"])
}

func TestCreateExpenseTrimsStrings(t *testing.T) {
	e := newTestRouter(t, false)

	rec := doJSON(e, http.MethodPost, "/expenses",
		`{"amount": 10, "description": "  Taxi  ", "category": " Transport ", "date": "2025-12-06"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "Taxi", data["description"])
	assert.Equal(t, "Transport", data["category"])
}

func TestCreateExpenseAcceptsStringAmount(t *testing.T) {
	e := newTestRouter(t, false)

	rec := doJSON(e, http.MethodPost, "/expenses",
		`{"amount": "49.99", "description": "Dinner", "category": "Food", "date": "2025-12-07"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, 49.99, data["amount"])
}

func TestCreateExpenseAcceptsImpossibleCalendarDate(t *testing.T) {
	e := newTestRouter(t, false)

	rec := doJSON(e, http.MethodPost, "/expenses",
		`{"amount": 5, "description": "Phantom", "category": "Misc", "date": "2025-02-30"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "2025-02-30", decodeBody(t, rec)["data"].(map[string]any)["date"])
}

func TestCreateExpenseValidationFailure(t *testing.T) {
	e := newTestRouter(t, true)

	// amount fails parsing, description is empty; the date matches the
	// YYYY-MM-DD shape, so it is not rejected despite being impossible.
	rec := doJSON(e, http.MethodPost, "/expenses",
		`{"amount": "abc", "description": "", "category": "Food", "date": "2025-13-40"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Validation Failed", body["error"])

	details, ok := body["details"].([]any)
	require.True(t, ok)
	require.Len(t, details, 2)
	assert.Equal(t, "Valid amount is required", details[0])
	assert.Equal(t, "Description is required", details[1])

	// Nothing was stored.
	rec = doJSON(e, http.MethodGet, "/expenses", "")
	assert.Len(t, decodeBody(t, rec)["data"].([]any), 3)
}

func TestCreateExpenseAllFieldsMissing(t *testing.T) {
	e := newTestRouter(t, false)

	rec := doJSON(e, http.MethodPost, "/expenses", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	details := decodeBody(t, rec)["details"].([]any)
	require.Len(t, details, 4)
	assert.Equal(t, "Valid amount is required", details[0])
	assert.Equal(t, "Description is required", details[1])
	assert.Equal(t, "Category is required", details[2])
	assert.Equal(t, "Valid date is required (YYYY-MM-DD)", details[3])
}

func TestCreateExpenseMalformedBody(t *testing.T) {
	e := newTestRouter(t, true)

	rec := doJSON(e, http.MethodPost, "/expenses", `{"amount": 50,`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Internal Server Error during expense creation", body["error"])
}

func TestMethodNotAllowed(t *testing.T) {
	e := newTestRouter(t, true)

	for _, method := range []string{http.MethodDelete, http.MethodPut, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			rec := doJSON(e, method, "/expenses", "")
			require.Equal(t, http.StatusMethodNotAllowed, rec.Code)

			body := decodeBody(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Method "+method+" Not Allowed", body["error"])
		})
	}
}

func TestPreflightReturnsNoContent(t *testing.T) {
	e := newTestRouter(t, true)

	req := httptest.NewRequest(http.MethodOptions, "/expenses", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example.com")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestCORSHeaderOnSimpleRequest(t *testing.T) {
	e := newTestRouter(t, true)

	req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example.com")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestUnknownRouteReturnsNotFound(t *testing.T) {
	e := newTestRouter(t, true)

	rec := doJSON(e, http.MethodGet, "/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Route not found", body["error"])
}

func TestExportExpensesCSV(t *testing.T) {
	e := newTestRouter(t, true)

	rec := doJSON(e, http.MethodGet, "/expenses/export", "")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "expenses.csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "id,amount,description,category,date", lines[0])
	assert.Equal(t, "e3,4.5,Coffee,Food,2025-12-01", lines[1])
	assert.Equal(t, "e1,75.5,Groceries,Food,2025-11-28", lines[3])
}

func TestHealthStatus(t *testing.T) {
	e := newTestRouter(t, true)

	rec := doJSON(e, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	checks := body["checks"].(map[string]any)
	storeCheck := checks["store"].(map[string]any)
	assert.Equal(t, "healthy", storeCheck["status"])
	assert.Equal(t, 3.0, storeCheck["records"])
}
