// Package render formats report data as plain-text tables. It is purely
// cosmetic; all aggregation happens in the services package.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"budget/internal/core"
)

// dayLabelLayout labels daily rows with the weekday name and ISO date.
const dayLabelLayout = "Monday 2006-01-02"

type Renderer struct {
	w        io.Writer
	currency string
}

func New(w io.Writer, currency string) *Renderer {
	return &Renderer{w: w, currency: currency}
}

func (r *Renderer) money(m core.Money) string {
	return fmt.Sprintf("%s%.2f", r.currency, m.Units())
}

// Totals prints the headline budget view for the active week.
func (r *Renderer) Totals(rep core.TotalsReport) {
	fmt.Fprintf(r.w, "\nWeekly Budget: %s\n", r.money(rep.Budget))
	fmt.Fprintf(r.w, "Total Expenses: %s\n", r.money(rep.Expenses))
	fmt.Fprintf(r.w, "Total Income: %s\n", r.money(rep.Income))
	fmt.Fprintf(r.w, "Remaining Budget: %s\n", r.money(rep.Remaining))
}

// CategoryTotals prints one row per category with expenses this week.
func (r *Renderer) CategoryTotals(rows []core.CategoryAmount) {
	fmt.Fprintln(r.w, "\nWeekly Expenses by Category:")
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Category\tExpense Amount")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", row.Category, r.money(row.Amount))
	}
	tw.Flush()
}

// DailySummary prints the 7-day income vs. expense table.
func (r *Renderer) DailySummary(rows []core.DaySummary) {
	fmt.Fprintln(r.w, "\nDaily Summary (Income vs. Expenses):")
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Date\tIncome\tExpenses")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			row.Date.Format(dayLabelLayout), r.money(row.Income), r.money(row.Expense))
	}
	tw.Flush()
}

// DailyBreakdown prints per-day (category, type) tables, with a marker
// for days without transactions.
func (r *Renderer) DailyBreakdown(days []core.DayBreakdown) {
	fmt.Fprintln(r.w, "\nDaily Category Breakdown:")
	for _, day := range days {
		label := day.Date.Format(dayLabelLayout)
		if len(day.Rows) == 0 {
			fmt.Fprintf(r.w, "%s - No transactions\n", label)
			continue
		}
		fmt.Fprintf(r.w, "\nTransactions for %s:\n", label)
		tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "Category\tType\tAmount")
		for _, row := range day.Rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Category, row.Type, r.money(row.Amount))
		}
		tw.Flush()
	}
}
