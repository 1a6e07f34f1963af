package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"budget/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository persists the ledger in a local SQLite database. Save is
// a transactional full replace, matching the file backend's overwrite
// contract.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Run migrations
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Load reads the full ledger: all transactions in insertion order plus
// the current budget row if present.
func (r *SQLiteRepository) Load(ctx context.Context) (core.Ledger, error) {
	ledger := core.Ledger{Transactions: []core.Transaction{}}

	rows, err := r.db.QueryContext(ctx,
		`SELECT title, amount_cents, category, type, date FROM transactions ORDER BY id`)
	if err != nil {
		return ledger, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			title, category, txType, date string
			cents                         int64
		)
		if err := rows.Scan(&title, &cents, &category, &txType, &date); err != nil {
			return emptyLedger(), fmt.Errorf("scan transaction: %w", err)
		}
		d, err := core.ParseDate(date)
		if err != nil {
			return emptyLedger(), fmt.Errorf("decode transaction date: %w", err)
		}
		ledger.Transactions = append(ledger.Transactions, core.Transaction{
			Title:    title,
			Amount:   core.Money{Cents: cents},
			Category: core.Category(category),
			Type:     core.TxType(txType),
			Date:     d,
		})
	}
	if err := rows.Err(); err != nil {
		return emptyLedger(), fmt.Errorf("iterate transactions: %w", err)
	}

	var (
		weekStart string
		cents     int64
	)
	err = r.db.QueryRowContext(ctx,
		`SELECT week_start, amount_cents FROM current_budget WHERE id = 1`).
		Scan(&weekStart, &cents)
	switch {
	case err == sql.ErrNoRows:
		// no budget set yet
	case err != nil:
		return emptyLedger(), fmt.Errorf("query current budget: %w", err)
	default:
		d, err := core.ParseDate(weekStart)
		if err != nil {
			return emptyLedger(), fmt.Errorf("decode budget week start: %w", err)
		}
		ledger.CurrentBudget = &core.BudgetPeriod{
			WeekStart: d,
			Amount:    core.Money{Cents: cents},
		}
	}

	return ledger, nil
}

// Save replaces the stored ledger with l inside one transaction.
func (r *SQLiteRepository) Save(ctx context.Context, l core.Ledger) error {
	txn, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer txn.Rollback()

	if _, err := txn.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}
	for _, t := range l.Transactions {
		if _, err := txn.ExecContext(ctx,
			`INSERT INTO transactions (title, amount_cents, category, type, date)
			 VALUES (?, ?, ?, ?, ?)`,
			t.Title, t.Amount.Cents, t.Category.String(), t.Type.String(), t.Date.String()); err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}
	}

	if _, err := txn.ExecContext(ctx, `DELETE FROM current_budget`); err != nil {
		return fmt.Errorf("clear current budget: %w", err)
	}
	if l.CurrentBudget != nil {
		if _, err := txn.ExecContext(ctx,
			`INSERT INTO current_budget (id, week_start, amount_cents) VALUES (1, ?, ?)`,
			l.CurrentBudget.WeekStart.String(), l.CurrentBudget.Amount.Cents); err != nil {
			return fmt.Errorf("insert current budget: %w", err)
		}
	}

	if err := txn.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}

	slog.DebugContext(ctx, "Ledger saved to SQLite",
		"transactions", len(l.Transactions),
		"has_budget", l.CurrentBudget != nil)
	return nil
}

func emptyLedger() core.Ledger {
	return core.Ledger{Transactions: []core.Transaction{}}
}
