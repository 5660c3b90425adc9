package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/retailware/cashbox_backend/internal/apperrors"
	"github.com/retailware/cashbox_backend/internal/core/domain"
	portsrepo "github.com/retailware/cashbox_backend/internal/core/ports/repositories"
	"github.com/retailware/cashbox_backend/internal/models"
	"github.com/retailware/cashbox_backend/internal/utils/mapping"
	"github.com/retailware/cashbox_backend/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

type PgxCashBoxRepository struct {
	BaseRepository
}

// newPgxCashBoxRepository creates a new repository for cash box and ledger data.
func newPgxCashBoxRepository(pool *pgxpool.Pool) portsrepo.CashBoxRepositoryFacade {
	return &PgxCashBoxRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxCashBoxRepository implements portsrepo.CashBoxRepositoryFacade
var _ portsrepo.CashBoxRepositoryFacade = (*PgxCashBoxRepository)(nil)

const cashBoxColumns = `cash_box_id, user_id, status, opening_balance, balance, opened_at, closed_at, created_at, created_by, last_updated_at, last_updated_by`

func scanCashBox(row pgx.Row) (*models.CashBox, error) {
	var m models.CashBox
	err := row.Scan(
		&m.CashBoxID,
		&m.UserID,
		&m.Status,
		&m.OpeningBalance,
		&m.Balance,
		&m.OpenedAt,
		&m.ClosedAt,
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

// SaveCashBox inserts a newly opened cash box. The partial unique index on
// (user_id) WHERE status = 'open' makes a second open box a unique violation.
func (r *PgxCashBoxRepository) SaveCashBox(ctx context.Context, box domain.CashBox) error {
	m := mapping.ToModelCashBox(box)

	query := `
		INSERT INTO cash_boxes (` + cashBoxColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CashBoxID,
		m.UserID,
		m.Status,
		m.OpeningBalance,
		m.Balance,
		m.OpenedAt,
		m.ClosedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: user %s already has an open cash box", apperrors.ErrConflict, m.UserID)
		}
		return fmt.Errorf("failed to save cash box %s: %w", m.CashBoxID, err)
	}
	return nil
}

// FindCashBoxByID retrieves a cash box by its ID.
func (r *PgxCashBoxRepository) FindCashBoxByID(ctx context.Context, cashBoxID string) (*domain.CashBox, error) {
	query := `SELECT ` + cashBoxColumns + ` FROM cash_boxes WHERE cash_box_id = $1;`

	m, err := scanCashBox(r.Pool.QueryRow(ctx, query, cashBoxID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cash box by ID %s: %w", cashBoxID, err)
	}

	box := mapping.ToDomainCashBox(*m)
	return &box, nil
}

// FindOpenCashBoxByUser retrieves the user's currently open cash box.
func (r *PgxCashBoxRepository) FindOpenCashBoxByUser(ctx context.Context, userID string) (*domain.CashBox, error) {
	query := `SELECT ` + cashBoxColumns + ` FROM cash_boxes WHERE user_id = $1 AND status = 'open';`

	m, err := scanCashBox(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find open cash box for user %s: %w", userID, err)
	}

	box := mapping.ToDomainCashBox(*m)
	return &box, nil
}

// CloseCashBox marks the box closed. The status guard means closing an
// already closed box reports ErrNotFound.
func (r *PgxCashBoxRepository) CloseCashBox(ctx context.Context, cashBoxID, userID string, closedAt time.Time) error {
	query := `
		UPDATE cash_boxes
		SET status = 'closed', closed_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE cash_box_id = $1 AND user_id = $2 AND status = 'open';
	`
	cmdTag, err := r.Pool.Exec(ctx, query, cashBoxID, userID, closedAt, userID)
	if err != nil {
		return fmt.Errorf("failed to close cash box %s: %w", cashBoxID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AppendCashBoxTransaction appends one ledger entry inside a DB transaction:
// it locks the box row, derives balance_after from the locked balance, rejects
// debits that would drive the balance negative, inserts the entry and updates
// the cached balance. Entries are never updated or deleted afterwards.
func (r *PgxCashBoxRepository) AppendCashBoxTransaction(ctx context.Context, txn domain.CashBoxTransaction) (*domain.CashBoxTransaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `
		SELECT balance, status
		FROM cash_boxes
		WHERE cash_box_id = $1
		FOR UPDATE;
	`
	var balance decimal.Decimal
	var status string
	if err := tx.QueryRow(ctx, lockQuery, txn.CashBoxID).Scan(&balance, &status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock cash box %s: %w", txn.CashBoxID, err)
	}
	if status != string(domain.CashBoxOpen) {
		return nil, fmt.Errorf("%w: cash box %s is closed", apperrors.ErrConflict, txn.CashBoxID)
	}

	var balanceAfter decimal.Decimal
	switch txn.Direction {
	case domain.Credit:
		balanceAfter = balance.Add(txn.Amount)
	case domain.Debit:
		balanceAfter = balance.Sub(txn.Amount)
		if balanceAfter.IsNegative() {
			return nil, apperrors.NewInsufficientBalanceError("cash box", balance, txn.Amount)
		}
	default:
		return nil, fmt.Errorf("%w: unknown entry direction %q", apperrors.ErrValidation, txn.Direction)
	}

	txn.BalanceAfter = balanceAfter
	m := mapping.ToModelCashBoxTransaction(txn)

	insertQuery := `
		INSERT INTO cash_box_transactions (transaction_id, cash_box_id, user_id, type, direction, amount, reference_type, reference_id, description, notes, balance_after, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.TransactionID,
		m.CashBoxID,
		m.UserID,
		m.Type,
		m.Direction,
		m.Amount,
		m.ReferenceType,
		m.ReferenceID,
		m.Description,
		m.Notes,
		m.BalanceAfter,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert cash box transaction %s: %w", m.TransactionID, err)
	}

	updateQuery := `
		UPDATE cash_boxes
		SET balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE cash_box_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, m.CashBoxID, balanceAfter, m.CreatedAt, m.CreatedBy); err != nil {
		return nil, fmt.Errorf("failed to update cash box balance %s: %w", m.CashBoxID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	result := mapping.ToDomainCashBoxTransaction(m)
	return &result, nil
}

const cashTxnColumns = `transaction_id, cash_box_id, user_id, type, direction, amount, reference_type, reference_id, description, notes, balance_after, created_at, created_by`

func scanCashBoxTransactions(rows pgx.Rows) ([]models.CashBoxTransaction, error) {
	defer rows.Close()

	txns := []models.CashBoxTransaction{}
	for rows.Next() {
		var m models.CashBoxTransaction
		err := rows.Scan(
			&m.TransactionID,
			&m.CashBoxID,
			&m.UserID,
			&m.Type,
			&m.Direction,
			&m.Amount,
			&m.ReferenceType,
			&m.ReferenceID,
			&m.Description,
			&m.Notes,
			&m.BalanceAfter,
			&m.CreatedAt,
			&m.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cash box transaction row: %w", err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cash box transaction rows: %w", err)
	}
	return txns, nil
}

// ListCashBoxTransactions retrieves a paginated slice of the box's ledger
// using token-based pagination, newest first.
func (r *PgxCashBoxRepository) ListCashBoxTransactions(ctx context.Context, cashBoxID string, limit int, nextToken *string) ([]domain.CashBoxTransaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + cashTxnColumns + `
		FROM cash_box_transactions
		WHERE cash_box_id = $1
	`
	orderByClause := `ORDER BY created_at DESC, transaction_id DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{cashBoxID}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastTxnID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}

		// Tuple comparison keeps the cursor stable across same-instant entries.
		cursorClause := `AND (created_at, transaction_id) < ($2, $3)`
		args = append(args, lastCreatedAt, lastTxnID)

		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	}
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions for cash box "+cashBoxID, err)
	}

	txns, err := scanCashBoxTransactions(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(txns) > limit {
		last := txns[limit-1] // last item included in this page
		token := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
		nextTokenVal = &token
		txns = txns[:limit]
	}

	return mapping.ToDomainCashBoxTransactionSlice(txns), nextTokenVal, nil
}

// FindCashBoxTransactionsByDateRange retrieves ledger entries created in [from, to].
func (r *PgxCashBoxRepository) FindCashBoxTransactionsByDateRange(ctx context.Context, cashBoxID string, from, to time.Time) ([]domain.CashBoxTransaction, error) {
	query := `
		SELECT ` + cashTxnColumns + `
		FROM cash_box_transactions
		WHERE cash_box_id = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at ASC, transaction_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, cashBoxID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash box transactions by date range for %s: %w", cashBoxID, err)
	}

	txns, err := scanCashBoxTransactions(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainCashBoxTransactionSlice(txns), nil
}
