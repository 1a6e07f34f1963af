package filestore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"budget/internal/core"
)

func testLedger() core.Ledger {
	return core.Ledger{
		Transactions: []core.Transaction{
			{
				Title:    "Lunch",
				Amount:   core.Money{Cents: 20000},
				Category: core.Food,
				Type:     core.Expense,
				Date:     core.NewDate(2024, 1, 14),
			},
			{
				Title:    "Salary",
				Amount:   core.Money{Cents: 50000},
				Category: core.Other,
				Type:     core.Income,
				Date:     core.NewDate(2024, 1, 15),
			},
		},
		CurrentBudget: &core.BudgetPeriod{
			WeekStart: core.NewDate(2024, 1, 14),
			Amount:    core.Money{Cents: 100000},
		},
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "budget.json"))
	ledger, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ledger.Transactions) != 0 || ledger.CurrentBudget != nil {
		t.Error("missing file must yield the empty default")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "data", "budget.json"))
	want := testLedger()

	if err := s.Save(context.Background(), want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(got.Transactions) != len(want.Transactions) {
		t.Fatalf("transactions = %d, want %d", len(got.Transactions), len(want.Transactions))
	}
	for i := range want.Transactions {
		if got.Transactions[i] != want.Transactions[i] {
			t.Errorf("transaction %d = %+v, want %+v", i, got.Transactions[i], want.Transactions[i])
		}
	}
	if got.CurrentBudget == nil || *got.CurrentBudget != *want.CurrentBudget {
		t.Errorf("budget = %+v, want %+v", got.CurrentBudget, want.CurrentBudget)
	}
}

func TestSaveNilBudget(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "budget.json"))
	if err := s.Save(context.Background(), core.Ledger{}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.CurrentBudget != nil {
		t.Error("nil budget must round-trip as null")
	}
}

func TestSaveWireFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.json")
	s := New(path)
	if err := s.Save(context.Background(), testLedger()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	text := string(raw)
	for _, want := range []string{
		`"transactions"`,
		`"current_budget"`,
		`"week_start": "2024-01-14"`,
		`"amount": 200`,
		`"date": "2024-01-14"`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("data file missing %s:\n%s", want, text)
		}
	}
}

func TestLoadCorruptFile(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "{{{"},
		{"missing transactions key", `{"current_budget": null}`},
		{"missing budget key", `{"transactions": []}`},
		{"wrong value shapes", `{"transactions": [{"amount": "x"}], "current_budget": null}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "budget.json")
			if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}
			ledger, err := New(path).Load(context.Background())
			if !errors.Is(err, ErrCorrupted) {
				t.Fatalf("err = %v, want ErrCorrupted", err)
			}
			if len(ledger.Transactions) != 0 || ledger.CurrentBudget != nil {
				t.Error("corrupt file must still yield the empty default")
			}
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "budget.json"))
	ctx := context.Background()

	if err := s.Save(ctx, testLedger()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(ctx, core.Ledger{}); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Transactions) != 0 || got.CurrentBudget != nil {
		t.Error("save must fully overwrite previous state")
	}
}
