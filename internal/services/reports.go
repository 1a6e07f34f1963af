package services

import (
	"sort"

	"budget/internal/core"
)

// currentWeek returns the transactions dated inside the active budget
// week, preserving ledger order, plus the week start.
func currentWeek(l core.Ledger) ([]core.Transaction, core.Date, error) {
	if l.CurrentBudget == nil {
		return nil, core.Date{}, core.ErrNoBudget
	}
	weekStart := l.CurrentBudget.WeekStart
	var week []core.Transaction
	for _, tx := range l.Transactions {
		if core.InWeek(tx.Date, weekStart) {
			week = append(week, tx)
		}
	}
	return week, weekStart, nil
}

// Totals sums the active week's expenses and income against the budget.
// Remaining is budget minus expenses only.
func Totals(l core.Ledger) (core.TotalsReport, error) {
	week, _, err := currentWeek(l)
	if err != nil {
		return core.TotalsReport{}, err
	}
	if len(week) == 0 {
		return core.TotalsReport{}, core.ErrNoTransactions
	}

	var expenses, income core.Money
	for _, tx := range week {
		switch tx.Type {
		case core.Expense:
			expenses = expenses.Add(tx.Amount)
		case core.Income:
			income = income.Add(tx.Amount)
		}
	}

	budget := l.CurrentBudget.Amount
	return core.TotalsReport{
		Budget:    budget,
		Expenses:  expenses,
		Income:    income,
		Remaining: budget.Sub(expenses),
	}, nil
}

// CategoryTotals sums the active week's expense transactions per category.
// Categories with no expenses this week do not appear. Rows are ordered
// lexicographically by category name.
func CategoryTotals(l core.Ledger) ([]core.CategoryAmount, error) {
	week, _, err := currentWeek(l)
	if err != nil {
		return nil, err
	}
	if len(week) == 0 {
		return nil, core.ErrNoTransactions
	}

	sums := make(map[core.Category]core.Money)
	for _, tx := range week {
		if tx.Type != core.Expense {
			continue
		}
		sums[tx.Category] = sums[tx.Category].Add(tx.Amount)
	}
	if len(sums) == 0 {
		return nil, core.ErrNoExpenses
	}

	rows := make([]core.CategoryAmount, 0, len(sums))
	for cat, total := range sums {
		rows = append(rows, core.CategoryAmount{Category: cat, Amount: total})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Category < rows[j].Category })
	return rows, nil
}

// DailySummary returns exactly 7 rows, week start first, with income and
// expense totals per day (zero for days without transactions).
func DailySummary(l core.Ledger) ([]core.DaySummary, error) {
	week, weekStart, err := currentWeek(l)
	if err != nil {
		return nil, err
	}
	if len(week) == 0 {
		return nil, core.ErrNoTransactions
	}

	rows := make([]core.DaySummary, 7)
	for i := range rows {
		rows[i].Date = weekStart.AddDays(i)
	}
	for _, tx := range week {
		i := dayOffset(tx.Date, weekStart)
		switch tx.Type {
		case core.Income:
			rows[i].Income = rows[i].Income.Add(tx.Amount)
		case core.Expense:
			rows[i].Expense = rows[i].Expense.Add(tx.Amount)
		}
	}
	return rows, nil
}

// DailyBreakdown returns exactly 7 rows, week start first, each grouping
// that day's transactions by (category, type). Days without transactions
// carry no rows. Groups are ordered by category then type.
func DailyBreakdown(l core.Ledger) ([]core.DayBreakdown, error) {
	week, weekStart, err := currentWeek(l)
	if err != nil {
		return nil, err
	}
	if len(week) == 0 {
		return nil, core.ErrNoTransactions
	}

	type groupKey struct {
		cat core.Category
		typ core.TxType
	}

	days := make([]core.DayBreakdown, 7)
	sums := make([]map[groupKey]core.Money, 7)
	for i := range days {
		days[i].Date = weekStart.AddDays(i)
		sums[i] = make(map[groupKey]core.Money)
	}
	for _, tx := range week {
		i := dayOffset(tx.Date, weekStart)
		k := groupKey{cat: tx.Category, typ: tx.Type}
		sums[i][k] = sums[i][k].Add(tx.Amount)
	}
	for i := range days {
		for k, amount := range sums[i] {
			days[i].Rows = append(days[i].Rows, core.BreakdownRow{
				Category: k.cat,
				Type:     k.typ,
				Amount:   amount,
			})
		}
		rows := days[i].Rows
		sort.Slice(rows, func(a, b int) bool {
			if rows[a].Category != rows[b].Category {
				return rows[a].Category < rows[b].Category
			}
			return rows[a].Type < rows[b].Type
		})
	}
	return days, nil
}

// dayOffset is the 0-6 position of d inside the week. Callers only pass
// dates already filtered into the week.
func dayOffset(d, weekStart core.Date) int {
	return int(d.Sub(weekStart.Time).Hours() / 24)
}
