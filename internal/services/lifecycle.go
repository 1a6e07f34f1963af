// Package services provides the operational components that mutate and
// query the ledger: budget lifecycle, transaction recording and the four
// weekly report aggregations.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"budget/internal/core"
)

// PromptReason tells the input collector why a budget amount is being
// requested.
type PromptReason int

const (
	// ReasonFirstRun means no budget record exists yet.
	ReasonFirstRun PromptReason = iota
	// ReasonRollover means the stored budget belongs to an earlier week.
	ReasonRollover
)

// BudgetPrompter supplies a budget amount from the user. Implementations
// retry on invalid input and return only once a value parses, or report
// an abort error (e.g. closed input).
type BudgetPrompter interface {
	PromptBudget(ctx context.Context, reason PromptReason, weekStart core.Date) (core.Money, error)
}

// Saver persists the full ledger after a mutation. Every write is a full
// overwrite of the durable state.
type Saver interface {
	Save(ctx context.Context, l core.Ledger) error
}

// Lifecycle ensures the ledger carries a budget for the week containing
// today. It runs once at startup, after the ledger is loaded.
type Lifecycle struct {
	prompter  BudgetPrompter
	saver     Saver
	weekStart time.Weekday
}

func NewLifecycle(prompter BudgetPrompter, saver Saver, weekStart time.Weekday) *Lifecycle {
	return &Lifecycle{prompter: prompter, saver: saver, weekStart: weekStart}
}

// EnsureCurrentBudget checks the stored budget against the week containing
// today. On first run, or when the stored week no longer matches (a
// rollover), it requests a fresh amount, replaces the budget record and
// persists the ledger. The previous week's budget is discarded, not
// archived. Returns true when the ledger was changed.
func (m *Lifecycle) EnsureCurrentBudget(ctx context.Context, ledger *core.Ledger, today core.Date) (bool, error) {
	weekStart := core.CurrentWeekStart(today, m.weekStart)

	reason := ReasonFirstRun
	if ledger.CurrentBudget != nil {
		if ledger.CurrentBudget.WeekStart.Equal(weekStart) {
			return false, nil
		}
		reason = ReasonRollover
		slog.InfoContext(ctx, "New budget week detected",
			"stored_week_start", ledger.CurrentBudget.WeekStart.String(),
			"current_week_start", weekStart.String())
	}

	amount, err := m.prompter.PromptBudget(ctx, reason, weekStart)
	if err != nil {
		return false, fmt.Errorf("prompt budget: %w", err)
	}
	// The prompter already retries bad input; revalidate anyway since the
	// collector is not authoritative.
	if err := amount.Validate(); err != nil {
		return false, err
	}

	ledger.CurrentBudget = &core.BudgetPeriod{WeekStart: weekStart, Amount: amount}
	if err := m.saver.Save(ctx, *ledger); err != nil {
		return false, fmt.Errorf("save ledger: %w", err)
	}
	return true, nil
}
