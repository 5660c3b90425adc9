package services

import (
	"context"
	"time"

	"github.com/retailware/cashbox_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashTransactionParams carries everything needed to post one cash box ledger entry.
type CashTransactionParams struct {
	UserID        string
	Type          domain.TransactionType
	Direction     domain.EntryDirection
	Amount        decimal.Decimal
	ReferenceType domain.ReferenceType
	ReferenceID   string
	Description   string
	Notes         string
}

// CashBoxSvcFacade exposes cash box lifecycle and ledger operations.
type CashBoxSvcFacade interface {
	// OpenCashBox opens a shift till for the user. Only one open box per user
	// is allowed; a second open attempt returns apperrors.ErrConflict.
	OpenCashBox(ctx context.Context, userID string, openingBalance decimal.Decimal) (*domain.CashBox, error)

	// CloseCashBox closes the user's open box and returns it.
	CloseCashBox(ctx context.Context, userID string) (*domain.CashBox, error)

	// GetUserCashBox returns the user's open cash box, or apperrors.ErrNotFound
	// when the user has no open box. Callers that require a box must treat that
	// as "refuse the financial operation".
	GetUserCashBox(ctx context.Context, userID string) (*domain.CashBox, error)

	// AddTransaction appends a ledger entry to the user's open cash box.
	AddTransaction(ctx context.Context, p CashTransactionParams) (*domain.CashBoxTransaction, error)

	// ListTransactions pages through the ledger of the user's open cash box.
	ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.CashBoxTransaction, *string, error)

	// GetTransactionsByDateRange returns ledger entries of the user's open box in [from, to].
	GetTransactionsByDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.CashBoxTransaction, error)
}
