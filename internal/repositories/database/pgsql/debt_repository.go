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

type PgxDebtRepository struct {
	BaseRepository
}

// newPgxDebtRepository creates a new repository for debt records.
func newPgxDebtRepository(pool *pgxpool.Pool) portsrepo.DebtRepositoryFacade {
	return &PgxDebtRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DebtRepositoryFacade = (*PgxDebtRepository)(nil)

const debtColumns = `debt_id, customer_name, total_amount, paid_amount, status, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanDebt(row pgx.Row) (*models.Debt, error) {
	var m models.Debt
	err := row.Scan(
		&m.DebtID,
		&m.CustomerName,
		&m.TotalAmount,
		&m.PaidAmount,
		&m.Status,
		&m.Notes,
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

// SaveDebt inserts a new debt record.
func (r *PgxDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	m := mapping.ToModelDebt(debt)

	query := `
		INSERT INTO debts (` + debtColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DebtID,
		m.CustomerName,
		m.TotalAmount,
		m.PaidAmount,
		m.Status,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save debt %s: %w", m.DebtID, err)
	}
	return nil
}

// FindDebtByID retrieves a debt by its ID.
func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	query := `SELECT ` + debtColumns + ` FROM debts WHERE debt_id = $1;`

	m, err := scanDebt(r.Pool.QueryRow(ctx, query, debtID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find debt by ID %s: %w", debtID, err)
	}

	debt := mapping.ToDomainDebt(*m)
	return &debt, nil
}

// ListDebts retrieves all debts, outstanding first, newest first within a status.
func (r *PgxDebtRepository) ListDebts(ctx context.Context) ([]domain.Debt, error) {
	query := `
		SELECT ` + debtColumns + `
		FROM debts
		ORDER BY (status = 'paid'), created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query debts: %w", err)
	}
	defer rows.Close()

	debts := []models.Debt{}
	for rows.Next() {
		m, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt row: %w", err)
		}
		debts = append(debts, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating debt rows: %w", err)
	}

	return mapping.ToDomainDebtSlice(debts), nil
}

// UpdateDebtPayment records repayment progress on a debt.
func (r *PgxDebtRepository) UpdateDebtPayment(ctx context.Context, debtID string, paidAmount decimal.Decimal, status domain.DebtStatus, userID string, now time.Time) error {
	query := `
		UPDATE debts
		SET paid_amount = $2, status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE debt_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, debtID, paidAmount, string(status), now, userID)
	if err != nil {
		return fmt.Errorf("failed to update debt payment %s: %w", debtID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
