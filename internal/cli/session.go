package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"

	"budget/internal/backend"
	"budget/internal/config"
	"budget/internal/core"
	applog "budget/internal/log"
	"budget/internal/render"
	"budget/internal/services"
)

// runSession wires the whole application together and drives the
// interactive menu loop until the user exits.
func runSession(ctx context.Context) error {
	// .env loading is optional for local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := applog.New(applog.Config{
		Level:     applog.ParseLevel(cfg.LogLevel),
		Component: applog.ComponentApp,
	})
	applog.SetDefault(logger)

	factory := backend.NewFactory(logger.WithComponent(applog.ComponentBackend).Logger)
	store, err := factory.CreateBackend(backend.Config{
		Type:         backend.BackendType(cfg.DataBackend),
		DataFile:     cfg.DataFile,
		SQLiteDBPath: cfg.SQLiteDBPath,
	})
	if err != nil {
		return err
	}
	defer store.Close()

	ledger, err := store.Load(ctx)
	if err != nil {
		// Data-loss fallback, not fatal: continue with the empty default.
		logger.Warn("Could not load saved data, starting fresh", applog.FieldError, err)
	}

	out := os.Stdout
	prompter := NewPrompter(bufio.NewReader(os.Stdin), out, cfg.CurrencySymbol)
	renderer := render.New(out, cfg.CurrencySymbol)

	printBanner(out)

	lifecycle := services.NewLifecycle(prompter, store, cfg.WeekStart())
	if _, err := lifecycle.EnsureCurrentBudget(ctx, &ledger, core.Today(time.Now())); err != nil {
		return fmt.Errorf("set up weekly budget: %w", err)
	}

	recorder := services.NewRecorder(store)
	return menuLoop(ctx, prompter, renderer, recorder, &ledger, out)
}

func menuLoop(ctx context.Context, prompter *Prompter, renderer *render.Renderer,
	recorder *services.Recorder, ledger *core.Ledger, out io.Writer) error {
	for {
		printMenu(out)
		choice, err := prompter.ReadMenuChoice()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			handleAdd(ctx, prompter, recorder, ledger, out)
		case 2:
			report, err := services.Totals(*ledger)
			if err != nil {
				fmt.Fprintf(out, "\n%s\n", capitalize(err.Error()))
				continue
			}
			renderer.Totals(report)
		case 3:
			rows, err := services.CategoryTotals(*ledger)
			if err != nil {
				fmt.Fprintf(out, "\n%s\n", capitalize(err.Error()))
				continue
			}
			renderer.CategoryTotals(rows)
		case 4:
			rows, err := services.DailySummary(*ledger)
			if err != nil {
				fmt.Fprintf(out, "\n%s\n", capitalize(err.Error()))
				continue
			}
			renderer.DailySummary(rows)
		case 5:
			days, err := services.DailyBreakdown(*ledger)
			if err != nil {
				fmt.Fprintf(out, "\n%s\n", capitalize(err.Error()))
				continue
			}
			renderer.DailyBreakdown(days)
		case 6:
			fmt.Fprintln(out, "\nExiting the program. Goodbye!")
			return nil
		}
	}
}

// handleAdd collects a transaction interactively and records it. Day and
// title abort on the first invalid entry; amount, category and type are
// retried by the prompter.
func handleAdd(ctx context.Context, prompter *Prompter, recorder *services.Recorder,
	ledger *core.Ledger, out io.Writer) {
	if ledger.CurrentBudget == nil {
		fmt.Fprintln(out, "\nNo budget set for the current week.")
		return
	}
	weekStart := ledger.CurrentBudget.WeekStart

	dayIndex, err := prompter.ReadDayIndex(weekStart)
	if err != nil {
		fmt.Fprintln(out, "Invalid day. Please enter a number between 0 and 6.")
		return
	}
	title, err := prompter.ReadTitle()
	if err != nil {
		fmt.Fprintln(out, "Title cannot be empty.")
		return
	}
	amount, err := prompter.ReadAmount()
	if err != nil {
		return
	}
	category, err := prompter.ReadCategory()
	if err != nil {
		return
	}
	txType, err := prompter.ReadTxType()
	if err != nil {
		return
	}

	if _, err := recorder.Add(ctx, ledger, services.AddInput{
		DayIndex: dayIndex,
		Title:    title,
		Amount:   amount,
		Category: category,
		Type:     txType,
	}); err != nil {
		fmt.Fprintf(out, "\nError: %s\n", err)
		return
	}
	fmt.Fprintln(out, "\nTransaction added successfully.")
}

func printBanner(out io.Writer) {
	fmt.Fprintln(out, "=========================")
	fmt.Fprintln(out, "    Expense Manager")
	fmt.Fprintln(out, "=========================")
}

func printMenu(out io.Writer) {
	fmt.Fprintln(out, "\n--- Expense Manager ---")
	fmt.Fprintln(out, "1. Add Transaction")
	fmt.Fprintln(out, "2. View Total Expenses")
	fmt.Fprintln(out, "3. View Weekly Expenses by Category")
	fmt.Fprintln(out, "4. View Daily Summary (Income vs. Expenses)")
	fmt.Fprintln(out, "5. View Daily Category Breakdown")
	fmt.Fprintln(out, "6. Exit")
}

func capitalize(s string) string {
	if s != "" && s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
