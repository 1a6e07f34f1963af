package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"budget/internal/core"
)

// AddInput carries collector-supplied values for a new transaction. The
// recorder revalidates every field regardless of what the collector
// already checked.
type AddInput struct {
	DayIndex int // offset from the active week's start, 0-6
	Title    string
	Amount   core.Money
	Category core.Category
	Type     core.TxType
}

// Recorder validates and appends transactions to the ledger, scoped to
// the active budget week.
type Recorder struct {
	saver Saver
}

func NewRecorder(saver Saver) *Recorder { return &Recorder{saver: saver} }

// Add validates the input, appends the resulting transaction and persists
// the ledger. The ledger is left untouched on any validation failure.
func (r *Recorder) Add(ctx context.Context, ledger *core.Ledger, in AddInput) (core.Transaction, error) {
	if ledger.CurrentBudget == nil {
		return core.Transaction{}, core.ErrNoBudget
	}
	if in.DayIndex < 0 || in.DayIndex > 6 {
		return core.Transaction{}, core.ErrInvalidDay
	}

	weekStart := ledger.CurrentBudget.WeekStart
	date := weekStart.AddDays(in.DayIndex)
	// Safety net: unreachable while the day index check above holds, but
	// the week bound is an invariant worth keeping explicit.
	if date.After(core.WeekEnd(weekStart)) {
		return core.Transaction{}, core.ErrOutsideWeek
	}

	tx := core.Transaction{
		Title:    strings.TrimSpace(in.Title),
		Amount:   in.Amount,
		Category: in.Category,
		Type:     in.Type,
		Date:     date,
	}
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}

	ledger.Transactions = append(ledger.Transactions, tx)
	if err := r.saver.Save(ctx, *ledger); err != nil {
		// Drop the append so memory matches durable state.
		ledger.Transactions = ledger.Transactions[:len(ledger.Transactions)-1]
		return core.Transaction{}, fmt.Errorf("save ledger: %w", err)
	}

	slog.InfoContext(ctx, "Transaction recorded",
		"title", tx.Title,
		"amount_cents", tx.Amount.Cents,
		"category", tx.Category.String(),
		"type", tx.Type.String(),
		"date", tx.Date.String())

	return tx, nil
}
