package core

import "errors"

// Report row types. Reports are read-only aggregates over the current
// budget week; they never mutate the ledger.

// TotalsReport is the headline view for the active week. Remaining is
// budget minus expenses; income does not raise it.
type TotalsReport struct {
	Budget    Money
	Expenses  Money
	Income    Money
	Remaining Money
}

// CategoryAmount represents an amount aggregated by category.
type CategoryAmount struct {
	Category Category
	Amount   Money
}

// DaySummary holds income and expense totals for a single day.
type DaySummary struct {
	Date    Date
	Income  Money
	Expense Money
}

// BreakdownRow is one (category, type) aggregate within a single day.
type BreakdownRow struct {
	Category Category
	Type     TxType
	Amount   Money
}

// DayBreakdown groups one day's transactions by (category, type).
// Rows is empty for days with no transactions.
type DayBreakdown struct {
	Date Date
	Rows []BreakdownRow
}

var (
	ErrNoTransactions = errors.New("no transactions this week")
	ErrNoExpenses     = errors.New("no expense transactions this week")
)
