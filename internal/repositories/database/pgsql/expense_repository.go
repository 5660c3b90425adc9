package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/retailware/cashbox_backend/internal/apperrors"
	"github.com/retailware/cashbox_backend/internal/core/domain"
	portsrepo "github.com/retailware/cashbox_backend/internal/core/ports/repositories"
	"github.com/retailware/cashbox_backend/internal/models"
	"github.com/retailware/cashbox_backend/internal/utils/mapping"
)

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for expense records.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

// SaveExpense inserts a new expense record.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)

	query := `
		INSERT INTO expenses (expense_id, category, amount, payment_method, money_box_id, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.Category,
		m.Amount,
		m.PaymentMethod,
		m.MoneyBoxID,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense %s: %w", m.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves an expense by its ID.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	query := `
		SELECT expense_id, category, amount, payment_method, money_box_id, description, created_at, created_by, last_updated_at, last_updated_by
		FROM expenses
		WHERE expense_id = $1;
	`
	var m models.Expense
	err := r.Pool.QueryRow(ctx, query, expenseID).Scan(
		&m.ExpenseID,
		&m.Category,
		&m.Amount,
		&m.PaymentMethod,
		&m.MoneyBoxID,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}

	expense := mapping.ToDomainExpense(m)
	return &expense, nil
}

// UpdateExpense overwrites the mutable fields of an expense record. The
// ledger consequences of the change are the service's responsibility.
func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)

	query := `
		UPDATE expenses
		SET category = $2, amount = $3, payment_method = $4, money_box_id = $5, description = $6, last_updated_at = $7, last_updated_by = $8
		WHERE expense_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ExpenseID,
		m.Category,
		m.Amount,
		m.PaymentMethod,
		m.MoneyBoxID,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", m.ExpenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpense removes an expense record. Used both for user deletion and as
// the compensation path when the ledger posting after creation fails.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
