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

type PgxSaleRepository struct {
	BaseRepository
}

// newPgxSaleRepository creates a new repository for sale records.
func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

// SaveSale inserts a new sale record.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	m := mapping.ToModelSale(sale)

	query := `
		INSERT INTO sales (sale_id, invoice_no, customer_name, total_amount, paid_amount, payment_method, money_box_id, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.SaleID,
		m.InvoiceNo,
		m.CustomerName,
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
			return fmt.Errorf("%w: sale with invoice %q already exists", apperrors.ErrDuplicate, m.InvoiceNo)
		}
		return fmt.Errorf("failed to save sale %s: %w", m.SaleID, err)
	}
	return nil
}

// FindSaleByID retrieves a sale by its ID.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `
		SELECT sale_id, invoice_no, customer_name, total_amount, paid_amount, payment_method, money_box_id, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM sales
		WHERE sale_id = $1;
	`
	var m models.Sale
	err := r.Pool.QueryRow(ctx, query, saleID).Scan(
		&m.SaleID,
		&m.InvoiceNo,
		&m.CustomerName,
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
		return nil, fmt.Errorf("failed to find sale by ID %s: %w", saleID, err)
	}

	sale := mapping.ToDomainSale(m)
	return &sale, nil
}

// SaveSaleReturn inserts a refund record against a sale.
func (r *PgxSaleRepository) SaveSaleReturn(ctx context.Context, ret domain.SaleReturn) error {
	m := mapping.ToModelSaleReturn(ret)

	query := `
		INSERT INTO sale_returns (return_id, sale_id, amount, refund_method, reason, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReturnID,
		m.SaleID,
		m.Amount,
		m.RefundMethod,
		m.Reason,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save sale return %s: %w", m.ReturnID, err)
	}
	return nil
}
