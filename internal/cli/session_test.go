package cli

import (
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"budget/internal/core"
	"budget/internal/filestore"
	"budget/internal/render"
	"budget/internal/services"
)

// scriptedSession runs the menu loop against a real file store with the
// given keystrokes and returns everything printed.
func scriptedSession(t *testing.T, ledger *core.Ledger, input string) string {
	t.Helper()
	store := filestore.New(filepath.Join(t.TempDir(), "budget.json"))

	out := &bytes.Buffer{}
	prompter := NewPrompter(bufio.NewReader(strings.NewReader(input)), out, "$")
	renderer := render.New(out, "$")
	recorder := services.NewRecorder(store)

	if err := menuLoop(context.Background(), prompter, renderer, recorder, ledger, out); err != nil {
		t.Fatalf("menuLoop: %v", err)
	}
	return out.String()
}

func sessionLedger() *core.Ledger {
	return &core.Ledger{
		Transactions: []core.Transaction{},
		CurrentBudget: &core.BudgetPeriod{
			WeekStart: core.NewDate(2024, 1, 14),
			Amount:    core.Money{Cents: 100000},
		},
	}
}

func TestSessionAddAndReport(t *testing.T) {
	ledger := sessionLedger()
	input := strings.Join([]string{
		"1",     // add transaction
		"0",     // Sunday
		"Lunch", // title
		"200",   // amount
		"0",     // food
		"e",     // expense
		"2",     // totals report
		"6",     // exit
	}, "\n") + "\n"

	text := scriptedSession(t, ledger, input)

	if !strings.Contains(text, "Transaction added successfully.") {
		t.Errorf("add confirmation missing:\n%s", text)
	}
	if !strings.Contains(text, "Total Expenses: $200.00") {
		t.Errorf("totals missing expenses:\n%s", text)
	}
	if !strings.Contains(text, "Remaining Budget: $800.00") {
		t.Errorf("totals missing remaining:\n%s", text)
	}
	if !strings.Contains(text, "Exiting the program. Goodbye!") {
		t.Errorf("exit message missing:\n%s", text)
	}
	if len(ledger.Transactions) != 1 {
		t.Errorf("transactions = %d, want 1", len(ledger.Transactions))
	}
}

func TestSessionEmptyWeekReports(t *testing.T) {
	input := "2\n3\n4\n5\n6\n"
	text := scriptedSession(t, sessionLedger(), input)

	if n := strings.Count(text, "No transactions this week"); n != 4 {
		t.Errorf("empty-week notices = %d, want 4:\n%s", n, text)
	}
}

func TestSessionAbortsAddOnBadDay(t *testing.T) {
	ledger := sessionLedger()
	input := "1\n9\n6\n" // bad day aborts straight back to the menu
	text := scriptedSession(t, ledger, input)

	if !strings.Contains(text, "Invalid day. Please enter a number between 0 and 6.") {
		t.Errorf("day error missing:\n%s", text)
	}
	if len(ledger.Transactions) != 0 {
		t.Error("aborted add must not record anything")
	}
}

func TestSessionInvalidMenuChoiceRetries(t *testing.T) {
	text := scriptedSession(t, sessionLedger(), "9\nx\n6\n")
	if n := strings.Count(text, "Invalid choice. Please enter a number between 1 and 6."); n != 2 {
		t.Errorf("menu retry messages = %d, want 2:\n%s", n, text)
	}
}
