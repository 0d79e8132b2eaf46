package store

// Expense is a single financial record.
//
// Date is kept as a plain YYYY-MM-DD string. Only the shape is
// enforced at creation time; calendar correctness is not checked, so
// a syntactically valid but impossible date is stored verbatim.
type Expense struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
}

// seedExpenses is the fixed demo/test fixture set present at process
// start when seeding is enabled.
func seedExpenses() []Expense {
	return []Expense{
		{ID: "e1", Amount: 75.50, Description: "Groceries", Category: "Food", Date: "2025-11-28"},
		{ID: "e2", Amount: 120.00, Description: "Electricity bill", Category: "Utilities", Date: "2025-11-30"},
		{ID: "e3", Amount: 4.50, Description: "Coffee", Category: "Food", Date: "2025-12-01"},
	}
}
