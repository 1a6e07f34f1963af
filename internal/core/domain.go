package core

import (
	"errors"
	"strings"
)

const (
	Food          Category = "food"
	Shopping      Category = "shopping"
	Entertainment Category = "entertainment"
	Bills         Category = "bills"
	Other         Category = "other"
)

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

type (
	Category string
	TxType   string

	// Transaction is a single recorded income or expense entry. It is
	// immutable once appended to the ledger.
	Transaction struct {
		Title    string   `json:"title"`
		Amount   Money    `json:"amount"`
		Category Category `json:"category"`
		Type     TxType   `json:"type"`
		Date     Date     `json:"date"`
	}

	// BudgetPeriod is the single active 7-day budget window. It is
	// replaced, never mutated, when a new week begins; the previous
	// record is not retained.
	BudgetPeriod struct {
		WeekStart Date  `json:"week_start"`
		Amount    Money `json:"amount"`
	}

	// Ledger is the full persisted state: every transaction ever
	// recorded, across all weeks, plus the current budget (nil before
	// first setup).
	Ledger struct {
		Transactions  []Transaction `json:"transactions"`
		CurrentBudget *BudgetPeriod `json:"current_budget"`
	}
)

var (
	ErrInvalidDay      = errors.New("day index must be between 0 and 6")
	ErrInvalidAmount   = errors.New("amount must be a positive number")
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidType     = errors.New("invalid transaction type")
	ErrNoBudget        = errors.New("no budget set for the current week")
	ErrOutsideWeek     = errors.New("date is outside the current budget week")
)

// Categories lists the fixed category set in prompt order.
func Categories() []Category {
	return []Category{Food, Shopping, Entertainment, Bills, Other}
}

// CategoryAt maps a collector-supplied index to a category.
func CategoryAt(i int) (Category, error) {
	cats := Categories()
	if i < 0 || i >= len(cats) {
		return "", ErrInvalidCategory
	}
	return cats[i], nil
}

func (c Category) IsValid() bool {
	switch c {
	case Food, Shopping, Entertainment, Bills, Other:
		return true
	}
	return false
}

func (c Category) String() string { return string(c) }

// ParseTxType accepts the single-letter prompt shorthand as well as the
// full enum name.
func ParseTxType(s string) (TxType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "i", "income":
		return Income, nil
	case "e", "expense":
		return Expense, nil
	}
	return "", ErrInvalidType
}

func (t TxType) IsValid() bool { return t == Income || t == Expense }

func (t TxType) String() string { return string(t) }

func (tx Transaction) Validate() error {
	if len(strings.TrimSpace(tx.Title)) == 0 {
		return ErrEmptyTitle
	}
	if err := tx.Amount.Validate(); err != nil {
		return err
	}
	if !tx.Category.IsValid() {
		return ErrInvalidCategory
	}
	if !tx.Type.IsValid() {
		return ErrInvalidType
	}
	if tx.Date.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

func (b BudgetPeriod) Validate() error {
	if b.WeekStart.IsZero() {
		return errors.New("week start cannot be zero")
	}
	return b.Amount.Validate()
}
