package repositories

import (
	"context"
	"time"

	"github.com/retailware/cashbox_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoneyBoxReader defines read operations for money boxes and their ledger.
type MoneyBoxReader interface {
	// FindMoneyBoxByID retrieves a money box by ID.
	FindMoneyBoxByID(ctx context.Context, moneyBoxID string) (*domain.MoneyBox, error)

	// FindMoneyBoxByName retrieves a money box by its unique name.
	FindMoneyBoxByName(ctx context.Context, name string) (*domain.MoneyBox, error)

	// ListMoneyBoxes retrieves all money boxes ordered by name.
	ListMoneyBoxes(ctx context.Context) ([]domain.MoneyBox, error)

	// ListMoneyBoxTransactions retrieves a paginated slice of the box's ledger
	// using token-based pagination, newest first.
	ListMoneyBoxTransactions(ctx context.Context, moneyBoxID string, limit int, nextToken *string) ([]domain.MoneyBoxTransaction, *string, error)

	// FindMoneyBoxTransactionsByDateRange retrieves ledger entries created in [from, to].
	FindMoneyBoxTransactionsByDateRange(ctx context.Context, moneyBoxID string, from, to time.Time) ([]domain.MoneyBoxTransaction, error)

	// HasTransactions reports whether the box carries any ledger history.
	HasTransactions(ctx context.Context, moneyBoxID string) (bool, error)
}

// MoneyBoxWriter defines write operations for money boxes and their ledger.
type MoneyBoxWriter interface {
	// SaveMoneyBox persists a new money box. Returns apperrors.ErrDuplicate
	// when the name is taken.
	SaveMoneyBox(ctx context.Context, box domain.MoneyBox) error

	// UpdateMoneyBox updates name and notes of an existing box.
	UpdateMoneyBox(ctx context.Context, box domain.MoneyBox) error

	// DeleteMoneyBox removes a box that carries no transaction history.
	// Returns apperrors.ErrConflict when history exists.
	DeleteMoneyBox(ctx context.Context, moneyBoxID string) error

	// AppendMoneyBoxTransaction atomically appends a ledger entry: it locks the
	// box row, computes BalanceAfter, rejects debits that would drive the
	// balance negative with InsufficientBalanceError, inserts the row and
	// updates the box's cached amount within the same transaction.
	AppendMoneyBoxTransaction(ctx context.Context, txn domain.MoneyBoxTransaction) (*domain.MoneyBoxTransaction, error)

	// TransferBetweenBoxes moves amount from one box to another as a single
	// atomic operation producing a linked transfer_out/transfer_in pair. On
	// insufficient source balance no rows are written on either side.
	TransferBetweenBoxes(ctx context.Context, fromBoxID, toBoxID string, amount decimal.Decimal, notes, userID string) (*domain.MoneyBoxTransaction, *domain.MoneyBoxTransaction, error)
}

// MoneyBoxRepositoryFacade combines all money box repository interfaces.
type MoneyBoxRepositoryFacade interface {
	MoneyBoxReader
	MoneyBoxWriter
}
