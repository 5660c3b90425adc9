//go:build integration

package pgsql_test

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/retailware/cashbox_backend/internal/apperrors"
	"github.com/retailware/cashbox_backend/internal/core/domain"
	portsrepo "github.com/retailware/cashbox_backend/internal/core/ports/repositories"
	"github.com/retailware/cashbox_backend/internal/repositories/database/pgsql"
)

// TestLedgerIntegration exercises the append-only ledger against a real
// PostgreSQL database: rejected debits must leave no trace, transfers must be
// all-or-nothing, and concurrent appends must serialize on the box row.
func TestLedgerIntegration(t *testing.T) {
	ctx := context.Background()

	connStr, cleanup := setupPostgresContainer(t, ctx)
	defer cleanup()

	runMigrations(t, connStr)

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		t.Fatalf("create pool: %v", err)
	}
	defer pool.Close()

	repos := pgsql.NewRepositoryProvider(pool)
	userID := seedUser(t, ctx, pool)

	t.Run("RunningBalanceAcrossAppends", func(t *testing.T) {
		box := openCashBox(t, ctx, repos.CashBoxRepo, userID, decimal.NewFromInt(100))

		first, err := repos.CashBoxRepo.AppendCashBoxTransaction(ctx, cashCredit(box.CashBoxID, userID, decimal.NewFromInt(50)))
		if err != nil {
			t.Fatalf("append credit: %v", err)
		}
		if !first.BalanceAfter.Equal(decimal.NewFromInt(150)) {
			t.Fatalf("balance_after: got %s, want 150", first.BalanceAfter)
		}

		second, err := repos.CashBoxRepo.AppendCashBoxTransaction(ctx, cashDebit(box.CashBoxID, userID, decimal.NewFromInt(20)))
		if err != nil {
			t.Fatalf("append debit: %v", err)
		}
		if !second.BalanceAfter.Equal(decimal.NewFromInt(130)) {
			t.Fatalf("balance_after: got %s, want 130", second.BalanceAfter)
		}

		reloaded, err := repos.CashBoxRepo.FindCashBoxByID(ctx, box.CashBoxID)
		if err != nil {
			t.Fatalf("reload box: %v", err)
		}
		if !reloaded.Balance.Equal(decimal.NewFromInt(130)) {
			t.Fatalf("cached balance: got %s, want 130", reloaded.Balance)
		}
	})

	t.Run("OverdraftWritesNoRow", func(t *testing.T) {
		box := openCashBox(t, ctx, repos.CashBoxRepo, userID, decimal.NewFromInt(100))

		_, err := repos.CashBoxRepo.AppendCashBoxTransaction(ctx, cashDebit(box.CashBoxID, userID, decimal.NewFromInt(900)))
		var balErr *apperrors.InsufficientBalanceError
		if !errors.As(err, &balErr) {
			t.Fatalf("overdraft debit: got %v, want InsufficientBalanceError", err)
		}
		if !balErr.Available.Equal(decimal.NewFromInt(100)) || !balErr.Required.Equal(decimal.NewFromInt(900)) {
			t.Fatalf("overdraft error amounts: available %s required %s", balErr.Available, balErr.Required)
		}

		if n := countCashRows(t, ctx, pool, box.CashBoxID); n != 0 {
			t.Fatalf("ledger rows after rejected debit: got %d, want 0", n)
		}

		reloaded, err := repos.CashBoxRepo.FindCashBoxByID(ctx, box.CashBoxID)
		if err != nil {
			t.Fatalf("reload box: %v", err)
		}
		if !reloaded.Balance.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("cached balance after rejected debit: got %s, want 100", reloaded.Balance)
		}
	})

	t.Run("TransferIsAllOrNothing", func(t *testing.T) {
		source := seedMoneyBox(t, ctx, repos.MoneyBoxRepo, userID, "transfer-source", decimal.NewFromInt(30))
		target := seedMoneyBox(t, ctx, repos.MoneyBoxRepo, userID, "transfer-target", decimal.Zero)

		_, _, err := repos.MoneyBoxRepo.TransferBetweenBoxes(ctx, source.MoneyBoxID, target.MoneyBoxID, decimal.NewFromInt(100), "", userID)
		var balErr *apperrors.InsufficientBalanceError
		if !errors.As(err, &balErr) {
			t.Fatalf("transfer beyond balance: got %v, want InsufficientBalanceError", err)
		}

		if n := countMoneyRows(t, ctx, pool, source.MoneyBoxID) + countMoneyRows(t, ctx, pool, target.MoneyBoxID); n != 0 {
			t.Fatalf("ledger rows after rejected transfer: got %d, want 0", n)
		}

		out, in, err := repos.MoneyBoxRepo.TransferBetweenBoxes(ctx, source.MoneyBoxID, target.MoneyBoxID, decimal.NewFromInt(10), "petty cash top-up", userID)
		if err != nil {
			t.Fatalf("transfer within balance: %v", err)
		}
		if out.ReferenceID == "" || out.ReferenceID != in.ReferenceID {
			t.Fatalf("transfer legs not linked: out %q in %q", out.ReferenceID, in.ReferenceID)
		}
		if !out.BalanceAfter.Equal(decimal.NewFromInt(20)) || !in.BalanceAfter.Equal(decimal.NewFromInt(10)) {
			t.Fatalf("transfer balances: out %s in %s", out.BalanceAfter, in.BalanceAfter)
		}
		if countMoneyRows(t, ctx, pool, source.MoneyBoxID) != 1 || countMoneyRows(t, ctx, pool, target.MoneyBoxID) != 1 {
			t.Fatalf("transfer must write exactly one row per box")
		}
	})

	t.Run("ConcurrentAppendsSerialize", func(t *testing.T) {
		box := openCashBox(t, ctx, repos.CashBoxRepo, userID, decimal.NewFromInt(100))

		results := make([]*domain.CashBoxTransaction, 2)
		errs := make([]error, 2)
		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = repos.CashBoxRepo.AppendCashBoxTransaction(ctx, cashCredit(box.CashBoxID, userID, decimal.NewFromInt(10)))
			}(i)
		}
		wg.Wait()

		for i, err := range errs {
			if err != nil {
				t.Fatalf("concurrent append %d: %v", i, err)
			}
		}
		if results[0].BalanceAfter.Equal(results[1].BalanceAfter) {
			t.Fatalf("concurrent appends produced duplicate balance_after %s", results[0].BalanceAfter)
		}
		total := results[0].BalanceAfter.Add(results[1].BalanceAfter)
		if !total.Equal(decimal.NewFromInt(230)) { // 110 + 120, in either order
			t.Fatalf("concurrent balance_after values: %s and %s", results[0].BalanceAfter, results[1].BalanceAfter)
		}

		reloaded, err := repos.CashBoxRepo.FindCashBoxByID(ctx, box.CashBoxID)
		if err != nil {
			t.Fatalf("reload box: %v", err)
		}
		if !reloaded.Balance.Equal(decimal.NewFromInt(120)) {
			t.Fatalf("cached balance after concurrent appends: got %s, want 120", reloaded.Balance)
		}
	})
}

// --- Setup helpers ---

func setupPostgresContainer(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("cashbox_test"),
		tcpostgres.WithUsername("cashbox"),
		tcpostgres.WithPassword("cashbox"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("get connection string: %v", err)
	}

	cleanup := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	}
	return connStr, cleanup
}

func runMigrations(t *testing.T, connStr string) {
	t.Helper()

	db, err := sql.Open("pgx", connStr)
	if err != nil {
		t.Fatalf("open db for migrations: %v", err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		t.Fatalf("create migrate driver: %v", err)
	}

	// Go test runs with cwd set to this package directory.
	m, err := migrate.NewWithDatabaseInstance("file://../../../../migrations", "postgres", driver)
	if err != nil {
		t.Fatalf("create migrate instance: %v", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		t.Fatalf("run migrations: %v", err)
	}
}

func seedUser(t *testing.T, ctx context.Context, pool *pgxpool.Pool) string {
	t.Helper()
	userID := uuid.NewString()
	now := time.Now().UTC()
	_, err := pool.Exec(ctx,
		`INSERT INTO users (user_id, username, name, password_hash, created_at, created_by, last_updated_at, last_updated_by)
		 VALUES ($1, $2, $3, $4, $5, $1, $5, $1)`,
		userID, "ledger-test-user", "Ledger Test User", "not-a-real-hash", now,
	)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return userID
}

func openCashBox(t *testing.T, ctx context.Context, repo portsrepo.CashBoxRepositoryFacade, userID string, opening decimal.Decimal) domain.CashBox {
	t.Helper()
	now := time.Now().UTC()
	box := domain.CashBox{
		CashBoxID:      uuid.NewString(),
		UserID:         userID,
		Status:         domain.CashBoxOpen,
		OpeningBalance: opening,
		Balance:        opening,
		OpenedAt:       now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := repo.SaveCashBox(ctx, box); err != nil {
		t.Fatalf("open cash box: %v", err)
	}
	t.Cleanup(func() {
		// Unique partial index allows one open box per user.
		if err := repo.CloseCashBox(ctx, box.CashBoxID, userID, time.Now().UTC()); err != nil {
			t.Logf("close cash box: %v", err)
		}
	})
	return box
}

func seedMoneyBox(t *testing.T, ctx context.Context, repo portsrepo.MoneyBoxRepositoryFacade, userID, name string, amount decimal.Decimal) domain.MoneyBox {
	t.Helper()
	now := time.Now().UTC()
	box := domain.MoneyBox{
		MoneyBoxID: uuid.NewString(),
		Name:       name,
		Amount:     amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := repo.SaveMoneyBox(ctx, box); err != nil {
		t.Fatalf("seed money box %s: %v", name, err)
	}
	return box
}

func cashCredit(cashBoxID, userID string, amount decimal.Decimal) domain.CashBoxTransaction {
	return domain.CashBoxTransaction{
		TransactionID: uuid.NewString(),
		CashBoxID:     cashBoxID,
		UserID:        userID,
		Type:          domain.TxnDeposit,
		Direction:     domain.Credit,
		Amount:        amount,
		ReferenceType: domain.RefManual,
		CreatedAt:     time.Now().UTC(),
		CreatedBy:     userID,
	}
}

func cashDebit(cashBoxID, userID string, amount decimal.Decimal) domain.CashBoxTransaction {
	txn := cashCredit(cashBoxID, userID, amount)
	txn.TransactionID = uuid.NewString()
	txn.Type = domain.TxnWithdrawal
	txn.Direction = domain.Debit
	return txn
}

func countCashRows(t *testing.T, ctx context.Context, pool *pgxpool.Pool, cashBoxID string) int {
	t.Helper()
	var n int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM cash_box_transactions WHERE cash_box_id = $1`, cashBoxID).Scan(&n); err != nil {
		t.Fatalf("count cash box transactions: %v", err)
	}
	return n
}

func countMoneyRows(t *testing.T, ctx context.Context, pool *pgxpool.Pool, moneyBoxID string) int {
	t.Helper()
	var n int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM money_box_transactions WHERE money_box_id = $1`, moneyBoxID).Scan(&n); err != nil {
		t.Fatalf("count money box transactions: %v", err)
	}
	return n
}
