package repositories

import (
	"context"
	"time"

	"github.com/retailware/cashbox_backend/internal/core/domain"
)

// CashBoxReader defines read operations for cash boxes and their ledger.
type CashBoxReader interface {
	// FindCashBoxByID retrieves a cash box by its unique identifier.
	FindCashBoxByID(ctx context.Context, cashBoxID string) (*domain.CashBox, error)

	// FindOpenCashBoxByUser retrieves the user's currently open cash box.
	// Returns apperrors.ErrNotFound when the user has no open box.
	FindOpenCashBoxByUser(ctx context.Context, userID string) (*domain.CashBox, error)

	// ListCashBoxTransactions retrieves a paginated slice of the box's ledger
	// using token-based pagination, newest first.
	ListCashBoxTransactions(ctx context.Context, cashBoxID string, limit int, nextToken *string) ([]domain.CashBoxTransaction, *string, error)

	// FindCashBoxTransactionsByDateRange retrieves ledger entries created in [from, to].
	FindCashBoxTransactionsByDateRange(ctx context.Context, cashBoxID string, from, to time.Time) ([]domain.CashBoxTransaction, error)
}

// CashBoxWriter defines write operations for cash boxes and their ledger.
type CashBoxWriter interface {
	// SaveCashBox persists a newly opened cash box.
	SaveCashBox(ctx context.Context, box domain.CashBox) error

	// CloseCashBox marks the box closed. Returns apperrors.ErrNotFound when no
	// matching open box exists.
	CloseCashBox(ctx context.Context, cashBoxID, userID string, closedAt time.Time) error

	// AppendCashBoxTransaction atomically appends a ledger entry: it locks the
	// box row, computes BalanceAfter from the previous entry, rejects debits
	// that would drive the balance negative with InsufficientBalanceError, and
	// inserts the row. The returned entry has BalanceAfter populated.
	AppendCashBoxTransaction(ctx context.Context, txn domain.CashBoxTransaction) (*domain.CashBoxTransaction, error)
}

// CashBoxRepositoryFacade combines all cash box repository interfaces.
type CashBoxRepositoryFacade interface {
	CashBoxReader
	CashBoxWriter
}
