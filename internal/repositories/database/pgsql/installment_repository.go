package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/retailware/cashbox_backend/internal/apperrors"
	"github.com/retailware/cashbox_backend/internal/core/domain"
	portsrepo "github.com/retailware/cashbox_backend/internal/core/ports/repositories"
	"github.com/retailware/cashbox_backend/internal/models"
	"github.com/retailware/cashbox_backend/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxInstallmentRepository struct {
	BaseRepository
}

// newPgxInstallmentRepository creates a new repository for installment records.
func newPgxInstallmentRepository(pool *pgxpool.Pool) portsrepo.InstallmentRepositoryFacade {
	return &PgxInstallmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InstallmentRepositoryFacade = (*PgxInstallmentRepository)(nil)

const installmentColumns = `installment_id, sale_id, customer_name, due_date, amount, paid_amount, status, created_at, created_by, last_updated_at, last_updated_by`

func scanInstallment(row pgx.Row) (*models.Installment, error) {
	var m models.Installment
	err := row.Scan(
		&m.InstallmentID,
		&m.SaleID,
		&m.CustomerName,
		&m.DueDate,
		&m.Amount,
		&m.PaidAmount,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveInstallment inserts a new installment record.
func (r *PgxInstallmentRepository) SaveInstallment(ctx context.Context, inst domain.Installment) error {
	m := mapping.ToModelInstallment(inst)

	query := `
		INSERT INTO installments (` + installmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.InstallmentID,
		m.SaleID,
		m.CustomerName,
		m.DueDate,
		m.Amount,
		m.PaidAmount,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save installment %s: %w", m.InstallmentID, err)
	}
	return nil
}

// FindInstallmentByID retrieves an installment by its ID.
func (r *PgxInstallmentRepository) FindInstallmentByID(ctx context.Context, installmentID string) (*domain.Installment, error) {
	query := `SELECT ` + installmentColumns + ` FROM installments WHERE installment_id = $1;`

	m, err := scanInstallment(r.Pool.QueryRow(ctx, query, installmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find installment by ID %s: %w", installmentID, err)
	}

	inst := mapping.ToDomainInstallment(*m)
	return &inst, nil
}

// ListInstallments retrieves all installments ordered by due date.
func (r *PgxInstallmentRepository) ListInstallments(ctx context.Context) ([]domain.Installment, error) {
	query := `SELECT ` + installmentColumns + ` FROM installments ORDER BY due_date ASC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query installments: %w", err)
	}
	defer rows.Close()

	insts := []models.Installment{}
	for rows.Next() {
		m, err := scanInstallment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan installment row: %w", err)
		}
		insts = append(insts, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating installment rows: %w", err)
	}

	return mapping.ToDomainInstallmentSlice(insts), nil
}

// UpdateInstallmentPayment records payment progress on an installment.
func (r *PgxInstallmentRepository) UpdateInstallmentPayment(ctx context.Context, installmentID string, paidAmount decimal.Decimal, status domain.InstallmentStatus, userID string, now time.Time) error {
	query := `
		UPDATE installments
		SET paid_amount = $2, status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE installment_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, installmentID, paidAmount, string(status), now, userID)
	if err != nil {
		return fmt.Errorf("failed to update installment payment %s: %w", installmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
