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

type PgxPurchaseRepository struct {
	BaseRepository
}

// newPgxPurchaseRepository creates a new repository for purchase records.
func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

// SavePurchase inserts a new purchase record.
func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase) error {
	m := mapping.ToModelPurchase(purchase)

	query := `
		INSERT INTO purchases (purchase_id, invoice_no, supplier_name, total_amount, paid_amount, payment_method, money_box_id, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PurchaseID,
		m.InvoiceNo,
		m.SupplierName,
		m.TotalAmount,
		m.PaidAmount,
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
			return fmt.Errorf("%w: purchase with invoice %q already exists", apperrors.ErrDuplicate, m.InvoiceNo)
		}
		return fmt.Errorf("failed to save purchase %s: %w", m.PurchaseID, err)
	}
	return nil
}

// FindPurchaseByID retrieves a purchase by its ID.
func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.Purchase, error) {
	query := `
		SELECT purchase_id, invoice_no, supplier_name, total_amount, paid_amount, payment_method, money_box_id, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM purchases
		WHERE purchase_id = $1;
	`
	var m models.Purchase
	err := r.Pool.QueryRow(ctx, query, purchaseID).Scan(
		&m.PurchaseID,
		&m.InvoiceNo,
		&m.SupplierName,
		&m.TotalAmount,
		&m.PaidAmount,
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
		return nil, fmt.Errorf("failed to find purchase by ID %s: %w", purchaseID, err)
	}

	purchase := mapping.ToDomainPurchase(m)
	return &purchase, nil
}

// DeletePurchase removes a purchase record. It exists solely as the
// compensation path when the ledger posting after creation fails.
func (r *PgxPurchaseRepository) DeletePurchase(ctx context.Context, purchaseID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM purchases WHERE purchase_id = $1;`, purchaseID)
	if err != nil {
		return fmt.Errorf("failed to delete purchase %s: %w", purchaseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SavePurchaseReturn inserts a return record against a purchase.
func (r *PgxPurchaseRepository) SavePurchaseReturn(ctx context.Context, ret domain.PurchaseReturn) error {
	m := mapping.ToModelPurchaseReturn(ret)

	query := `
		INSERT INTO purchase_returns (return_id, purchase_id, amount, refund_method, reason, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReturnID,
		m.PurchaseID,
		m.Amount,
		m.RefundMethod,
		m.Reason,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save purchase return %s: %w", m.ReturnID, err)
	}
	return nil
}
