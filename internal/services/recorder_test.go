package services

import (
	"context"
	"errors"
	"testing"

	"budget/internal/core"
)

func weekLedger() core.Ledger {
	return core.Ledger{
		Transactions: []core.Transaction{},
		CurrentBudget: &core.BudgetPeriod{
			WeekStart: core.NewDate(2024, 1, 14),
			Amount:    core.Money{Cents: 100000},
		},
	}
}

func validAdd() AddInput {
	return AddInput{
		DayIndex: 0,
		Title:    "Lunch",
		Amount:   core.Money{Cents: 20000},
		Category: core.Food,
		Type:     core.Expense,
	}
}

func TestRecorderAdd(t *testing.T) {
	saver := &fakeSaver{}
	r := NewRecorder(saver)
	ledger := weekLedger()

	in := validAdd()
	in.DayIndex = 3
	tx, err := r.Add(context.Background(), &ledger, in)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if want := core.NewDate(2024, 1, 17); !tx.Date.Equal(want) {
		t.Errorf("date = %s, want week_start+3 = %s", tx.Date, want)
	}
	if len(ledger.Transactions) != 1 {
		t.Fatalf("transactions = %d, want 1", len(ledger.Transactions))
	}
	if len(saver.saved) != 1 {
		t.Fatalf("saves = %d, want 1 (write-through)", len(saver.saved))
	}
	if len(saver.saved[0].Transactions) != 1 {
		t.Error("persisted snapshot is missing the new transaction")
	}
}

func TestRecorderAddTrimsTitle(t *testing.T) {
	saver := &fakeSaver{}
	r := NewRecorder(saver)
	ledger := weekLedger()

	in := validAdd()
	in.Title = "  Groceries  "
	tx, err := r.Add(context.Background(), &ledger, in)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if tx.Title != "Groceries" {
		t.Errorf("title = %q, want %q", tx.Title, "Groceries")
	}
}

func TestRecorderAddRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AddInput)
		want   error
	}{
		{"day index below range", func(in *AddInput) { in.DayIndex = -1 }, core.ErrInvalidDay},
		{"day index above range", func(in *AddInput) { in.DayIndex = 7 }, core.ErrInvalidDay},
		{"empty title", func(in *AddInput) { in.Title = "" }, core.ErrEmptyTitle},
		{"whitespace title", func(in *AddInput) { in.Title = " \t " }, core.ErrEmptyTitle},
		{"zero amount", func(in *AddInput) { in.Amount = core.Money{} }, core.ErrInvalidAmount},
		{"negative amount", func(in *AddInput) { in.Amount = core.Money{Cents: -500} }, core.ErrInvalidAmount},
		{"unknown category", func(in *AddInput) { in.Category = "travel" }, core.ErrInvalidCategory},
		{"unknown type", func(in *AddInput) { in.Type = "transfer" }, core.ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saver := &fakeSaver{}
			r := NewRecorder(saver)
			ledger := weekLedger()

			in := validAdd()
			tt.mutate(&in)
			_, err := r.Add(context.Background(), &ledger, in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if len(ledger.Transactions) != 0 {
				t.Error("rejected input must not mutate the ledger")
			}
			if len(saver.saved) != 0 {
				t.Error("rejected input must not persist")
			}
		})
	}
}

func TestRecorderAddWithoutBudget(t *testing.T) {
	r := NewRecorder(&fakeSaver{})
	ledger := core.Ledger{}
	if _, err := r.Add(context.Background(), &ledger, validAdd()); !errors.Is(err, core.ErrNoBudget) {
		t.Fatalf("err = %v, want ErrNoBudget", err)
	}
}

func TestRecorderAddSaveFailureRollsBack(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	r := NewRecorder(saver)
	ledger := weekLedger()

	if _, err := r.Add(context.Background(), &ledger, validAdd()); err == nil {
		t.Fatal("expected save error")
	}
	if len(ledger.Transactions) != 0 {
		t.Error("failed save must leave the in-memory ledger unchanged")
	}
}
