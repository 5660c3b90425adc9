package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/retailware/cashbox_backend/internal/apperrors"
	"github.com/retailware/cashbox_backend/internal/core/domain"
	portsrepo "github.com/retailware/cashbox_backend/internal/core/ports/repositories"
	"github.com/retailware/cashbox_backend/internal/models"
	"github.com/retailware/cashbox_backend/internal/utils/mapping"
)

type PgxReceiptRepository struct {
	BaseRepository
}

// newPgxReceiptRepository creates a new repository for receipts.
func newPgxReceiptRepository(pool *pgxpool.Pool) portsrepo.ReceiptRepositoryFacade {
	return &PgxReceiptRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReceiptRepositoryFacade = (*PgxReceiptRepository)(nil)

// SaveCustomerReceipt inserts a customer receipt record.
func (r *PgxReceiptRepository) SaveCustomerReceipt(ctx context.Context, receipt domain.CustomerReceipt) error {
	m := mapping.ToModelCustomerReceipt(receipt)

	query := `
		INSERT INTO customer_receipts (receipt_id, receipt_no, customer_name, amount, payment_method, money_box_id, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReceiptID,
		m.ReceiptNo,
		m.CustomerName,
		m.Amount,
		m.PaymentMethod,
		m.MoneyBoxID,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: receipt with number %q already exists", apperrors.ErrDuplicate, m.ReceiptNo)
		}
		return fmt.Errorf("failed to save customer receipt %s: %w", m.ReceiptID, err)
	}
	return nil
}

// FindCustomerReceiptByID retrieves a customer receipt by its ID.
func (r *PgxReceiptRepository) FindCustomerReceiptByID(ctx context.Context, receiptID string) (*domain.CustomerReceipt, error) {
	query := `
		SELECT receipt_id, receipt_no, customer_name, amount, payment_method, money_box_id, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM customer_receipts
		WHERE receipt_id = $1;
	`
	var m models.CustomerReceipt
	err := r.Pool.QueryRow(ctx, query, receiptID).Scan(
		&m.ReceiptID,
		&m.ReceiptNo,
		&m.CustomerName,
		&m.Amount,
		&m.PaymentMethod,
		&m.MoneyBoxID,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer receipt by ID %s: %w", receiptID, err)
	}

	receipt := mapping.ToDomainCustomerReceipt(m)
	return &receipt, nil
}

// SaveSupplierPayment inserts a supplier payment record.
func (r *PgxReceiptRepository) SaveSupplierPayment(ctx context.Context, receipt domain.SupplierPaymentReceipt) error {
	m := mapping.ToModelSupplierPayment(receipt)

	query := `
		INSERT INTO supplier_payment_receipts (receipt_id, receipt_no, supplier_name, amount, payment_method, money_box_id, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReceiptID,
		m.ReceiptNo,
		m.SupplierName,
		m.Amount,
		m.PaymentMethod,
		m.MoneyBoxID,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: receipt with number %q already exists", apperrors.ErrDuplicate, m.ReceiptNo)
		}
		return fmt.Errorf("failed to save supplier payment %s: %w", m.ReceiptID, err)
	}
	return nil
}

// FindSupplierPaymentByID retrieves a supplier payment by its ID.
func (r *PgxReceiptRepository) FindSupplierPaymentByID(ctx context.Context, receiptID string) (*domain.SupplierPaymentReceipt, error) {
	query := `
		SELECT receipt_id, receipt_no, supplier_name, amount, payment_method, money_box_id, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM supplier_payment_receipts
		WHERE receipt_id = $1;
	`
	var m models.SupplierPaymentReceipt
	err := r.Pool.QueryRow(ctx, query, receiptID).Scan(
		&m.ReceiptID,
		&m.ReceiptNo,
		&m.SupplierName,
		&m.Amount,
		&m.PaymentMethod,
		&m.MoneyBoxID,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier payment by ID %s: %w", receiptID, err)
	}

	receipt := mapping.ToDomainSupplierPayment(m)
	return &receipt, nil
}
