package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"budget/internal/core"
	"budget/internal/services"
)

var errInvalidMenuChoice = errors.New("invalid choice, enter a number between 1 and 6")

// Prompter collects typed values from an interactive reader. Parsing is
// delegated to pure functions so the retry loops stay thin; the services
// layer revalidates everything it receives.
type Prompter struct {
	in       *bufio.Reader
	out      io.Writer
	currency string
}

func NewPrompter(in *bufio.Reader, out io.Writer, currency string) *Prompter {
	return &Prompter{in: in, out: out, currency: currency}
}

func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ParseDayIndex parses a 0-6 day offset.
func ParseDayIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > 6 {
		return 0, core.ErrInvalidDay
	}
	return n, nil
}

// ParseCategoryChoice parses a category list index.
func ParseCategoryChoice(s string) (core.Category, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return "", core.ErrInvalidCategory
	}
	return core.CategoryAt(n)
}

// ParseMenuChoice parses a 1-6 menu selection.
func ParseMenuChoice(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 6 {
		return 0, errInvalidMenuChoice
	}
	return n, nil
}

// ReadDayIndex lists the active week's days and reads a single choice.
// An invalid entry aborts the add rather than retrying.
func (p *Prompter) ReadDayIndex(weekStart core.Date) (int, error) {
	fmt.Fprintln(p.out, "\nSelect day of the week:")
	for i := 0; i < 7; i++ {
		fmt.Fprintf(p.out, "%d. %s\n", i, weekStart.AddDays(i).Format("Monday"))
	}
	line, err := p.readLine("Enter day number (0-6): ")
	if err != nil {
		return 0, err
	}
	return ParseDayIndex(line)
}

// ReadTitle reads the transaction title. An empty title aborts the add.
func (p *Prompter) ReadTitle() (string, error) {
	line, err := p.readLine("Enter transaction title: ")
	if err != nil {
		return "", err
	}
	if line == "" {
		return "", core.ErrEmptyTitle
	}
	return line, nil
}

// ReadAmount reads a positive decimal amount, retrying until it parses.
func (p *Prompter) ReadAmount() (core.Money, error) {
	for {
		line, err := p.readLine("Enter amount: ")
		if err != nil {
			return core.Money{}, err
		}
		amount, err := core.ParseMoney(line)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid amount. Please enter a positive number.")
			continue
		}
		return amount, nil
	}
}

// ReadCategory lists the fixed categories and retries until a valid
// index is entered.
func (p *Prompter) ReadCategory() (core.Category, error) {
	fmt.Fprintln(p.out, "Select category:")
	for i, cat := range core.Categories() {
		fmt.Fprintf(p.out, "%d. %s\n", i, cat)
	}
	for {
		line, err := p.readLine("Enter category number: ")
		if err != nil {
			return "", err
		}
		cat, err := ParseCategoryChoice(line)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid category selection. Please choose a valid number.")
			continue
		}
		return cat, nil
	}
}

// ReadTxType retries until 'i' or 'e' (or the full word) is entered.
func (p *Prompter) ReadTxType() (core.TxType, error) {
	for {
		line, err := p.readLine("Enter type (income/expense) [i/e]: ")
		if err != nil {
			return "", err
		}
		t, err := core.ParseTxType(line)
		if err != nil {
			fmt.Fprintln(p.out, "Invalid type. Use 'i' for income or 'e' for expense.")
			continue
		}
		return t, nil
	}
}

// ReadMenuChoice retries until a 1-6 selection is entered.
func (p *Prompter) ReadMenuChoice() (int, error) {
	for {
		line, err := p.readLine("\nEnter your choice (1-6): ")
		if err != nil {
			return 0, err
		}
		choice, err := ParseMenuChoice(line)
		if err != nil {
			fmt.Fprintln(p.out, "\nInvalid choice. Please enter a number between 1 and 6.")
			continue
		}
		return choice, nil
	}
}

// PromptBudget implements services.BudgetPrompter. It explains why a
// budget is needed and retries until a positive amount is entered.
func (p *Prompter) PromptBudget(_ context.Context, reason services.PromptReason, weekStart core.Date) (core.Money, error) {
	switch reason {
	case services.ReasonRollover:
		fmt.Fprintf(p.out, "\nNew week detected (current week starts on %s).\n", weekStart)
		fmt.Fprintln(p.out, "Please set a new budget for this week.")
	default:
		fmt.Fprintln(p.out, "\nWelcome! Please set your budget for this week.")
	}
	for {
		line, err := p.readLine(fmt.Sprintf("Enter weekly budget: %s", p.currency))
		if err != nil {
			return core.Money{}, err
		}
		amount, err := core.ParseMoney(line)
		if err != nil {
			fmt.Fprintln(p.out, "Budget must be a positive number.")
			continue
		}
		return amount, nil
	}
}
