package services

import (
	"context"
	"time"

	"github.com/retailware/cashbox_backend/internal/core/domain"
	"github.com/retailware/cashbox_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// MoneyTransactionParams carries everything needed to post one money box ledger entry.
type MoneyTransactionParams struct {
	MoneyBoxID    string
	UserID        string
	Type          domain.TransactionType
	Direction     domain.EntryDirection
	Amount        decimal.Decimal
	ReferenceType domain.ReferenceType
	ReferenceID   string
	Description   string
	Notes         string
}

// MoneyBoxSvcFacade exposes money box management and ledger operations.
type MoneyBoxSvcFacade interface {
	CreateMoneyBox(ctx context.Context, req dto.CreateMoneyBoxRequest, creatorUserID string) (*domain.MoneyBox, error)
	GetMoneyBoxByID(ctx context.Context, moneyBoxID string) (*domain.MoneyBox, error)
	ListMoneyBoxes(ctx context.Context) ([]domain.MoneyBox, error)
	UpdateMoneyBox(ctx context.Context, moneyBoxID string, req dto.UpdateMoneyBoxRequest, updaterUserID string) (*domain.MoneyBox, error)

	// DeleteMoneyBox removes a box that has no ledger history. A box with
	// transactions returns apperrors.ErrConflict.
	DeleteMoneyBox(ctx context.Context, moneyBoxID string) error

	// AddTransaction appends a ledger entry to the given money box.
	AddTransaction(ctx context.Context, p MoneyTransactionParams) (*domain.MoneyBoxTransaction, error)

	// ManualTransaction posts a user-initiated deposit or withdrawal.
	ManualTransaction(ctx context.Context, moneyBoxID string, req dto.BoxTransactionRequest, userID string) (*domain.MoneyBoxTransaction, error)

	// TransferBetweenBoxes atomically moves amount from one box to another,
	// producing a transfer_out entry on the source and a transfer_in entry on
	// the destination. Either both entries exist afterwards or neither does.
	TransferBetweenBoxes(ctx context.Context, fromBoxID, toBoxID string, amount decimal.Decimal, notes, userID string) (*domain.MoneyBoxTransaction, *domain.MoneyBoxTransaction, error)

	ListTransactions(ctx context.Context, moneyBoxID string, limit int, nextToken *string) ([]domain.MoneyBoxTransaction, *string, error)
	GetTransactionsByDateRange(ctx context.Context, moneyBoxID string, from, to time.Time) ([]domain.MoneyBoxTransaction, error)
}
