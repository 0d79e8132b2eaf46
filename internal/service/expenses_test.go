package service

import (
	"context"
	"strings"
	"testing"

	"github.com/expenso/expense-api/internal/config"
	"github.com/expenso/expense-api/internal/repository"
	"github.com/expenso/expense-api/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, seed bool) *ExpenseService {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Store:   config.StoreConfig{SeedDemoData: seed},
	}
	log := zerolog.Nop()

	s, err := server.New(cfg, &log, nil)
	require.NoError(t, err)

	repos := repository.NewRepositories(s)
	return NewExpenseService(s, repos)
}

func TestListSortsByDateDescending(t *testing.T) {
	svc := newTestService(t, true)

	expenses, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, expenses, 3)

	assert.Equal(t, "e3", expenses[0].ID) // 2025-12-01
	assert.Equal(t, "e2", expenses[1].ID) // 2025-11-30
	assert.Equal(t, "e1", expenses[2].ID) // 2025-11-28

	for i := 1; i < len(expenses); i++ {
		assert.GreaterOrEqual(t, expenses[i-1].Date, expenses[i].Date)
	}
}

func TestListDoesNotMutateStoredOrder(t *testing.T) {
	svc := newTestService(t, true)

	_, err := svc.List(context.Background())
	require.NoError(t, err)

	stored, err := svc.repos.Expenses.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "e1", stored[0].ID)
	assert.Equal(t, "e3", stored[2].ID)
}

func TestCreateTrimsAndCoerces(t *testing.T) {
	svc := newTestService(t, false)

	expense, err := svc.Create(context.Background(), CreateExpenseInput{
		Amount:      49.99,
		Description: "  Lunch  ",
		Category:    " Food ",
		Date:        "2025-12-05",
	})
	require.NoError(t, err)

	assert.Equal(t, 49.99, expense.Amount)
	assert.Equal(t, "Lunch", expense.Description)
	assert.Equal(t, "Food", expense.Category)
	assert.Equal(t, "2025-12-05", expense.Date)
	assert.True(t, strings.HasPrefix(expense.ID, "e"))
}

func TestCreateKeepsImpossibleDateVerbatim(t *testing.T) {
	svc := newTestService(t, false)

	// Calendar correctness is intentionally not checked.
	expense, err := svc.Create(context.Background(), CreateExpenseInput{
		Amount:      10,
		Description: "Phantom",
		Category:    "Misc",
		Date:        "2025-02-30",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-02-30", expense.Date)
}

func TestCreateGeneratesUniqueIDs(t *testing.T) {
	svc := newTestService(t, false)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		expense, err := svc.Create(context.Background(), CreateExpenseInput{
			Amount:      1,
			Description: "x",
			Category:    "y",
			Date:        "2025-01-01",
		})
		require.NoError(t, err)
		assert.False(t, seen[expense.ID], "duplicate id %s", expense.ID)
		seen[expense.ID] = true
	}
}

func TestCreateAppends(t *testing.T) {
	svc := newTestService(t, true)

	_, err := svc.Create(context.Background(), CreateExpenseInput{
		Amount:      50,
		Description: "Lunch",
		Category:    "Food",
		Date:        "2025-12-05",
	})
	require.NoError(t, err)

	count, err := svc.repos.Expenses.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestExportCSV(t *testing.T) {
	svc := newTestService(t, true)

	data, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, "id,amount,description,category,date", lines[0])
	// Same presentation order as the list endpoint.
	assert.Equal(t, "e3,4.5,Coffee,Food,2025-12-01", lines[1])
	assert.Equal(t, "e2,120,Electricity bill,Utilities,2025-11-30", lines[2])
	assert.Equal(t, "e1,75.5,Groceries,Food,2025-11-28", lines[3])
}
