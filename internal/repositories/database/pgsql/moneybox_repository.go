package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
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

type PgxMoneyBoxRepository struct {
	BaseRepository
}

// newPgxMoneyBoxRepository creates a new repository for money box and ledger data.
func newPgxMoneyBoxRepository(pool *pgxpool.Pool) portsrepo.MoneyBoxRepositoryFacade {
	return &PgxMoneyBoxRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxMoneyBoxRepository implements portsrepo.MoneyBoxRepositoryFacade
var _ portsrepo.MoneyBoxRepositoryFacade = (*PgxMoneyBoxRepository)(nil)

const moneyBoxColumns = `money_box_id, name, amount, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanMoneyBox(row pgx.Row) (*models.MoneyBox, error) {
	var m models.MoneyBox
	err := row.Scan(
		&m.MoneyBoxID,
		&m.Name,
		&m.Amount,
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

// SaveMoneyBox inserts a new money box. Names are unique.
func (r *PgxMoneyBoxRepository) SaveMoneyBox(ctx context.Context, box domain.MoneyBox) error {
	m := mapping.ToModelMoneyBox(box)

	query := `
		INSERT INTO money_boxes (` + moneyBoxColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.MoneyBoxID,
		m.Name,
		m.Amount,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: money box with name %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save money box %s: %w", m.MoneyBoxID, err)
	}
	return nil
}

// FindMoneyBoxByID retrieves a money box by ID.
func (r *PgxMoneyBoxRepository) FindMoneyBoxByID(ctx context.Context, moneyBoxID string) (*domain.MoneyBox, error) {
	query := `SELECT ` + moneyBoxColumns + ` FROM money_boxes WHERE money_box_id = $1;`

	m, err := scanMoneyBox(r.Pool.QueryRow(ctx, query, moneyBoxID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find money box by ID %s: %w", moneyBoxID, err)
	}

	box := mapping.ToDomainMoneyBox(*m)
	return &box, nil
}

// FindMoneyBoxByName retrieves a money box by its unique name.
func (r *PgxMoneyBoxRepository) FindMoneyBoxByName(ctx context.Context, name string) (*domain.MoneyBox, error) {
	query := `SELECT ` + moneyBoxColumns + ` FROM money_boxes WHERE name = $1;`

	m, err := scanMoneyBox(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find money box by name %q: %w", name, err)
	}

	box := mapping.ToDomainMoneyBox(*m)
	return &box, nil
}

// ListMoneyBoxes retrieves all money boxes ordered by name.
func (r *PgxMoneyBoxRepository) ListMoneyBoxes(ctx context.Context) ([]domain.MoneyBox, error) {
	query := `SELECT ` + moneyBoxColumns + ` FROM money_boxes ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query money boxes: %w", err)
	}
	defer rows.Close()

	boxes := []models.MoneyBox{}
	for rows.Next() {
		var m models.MoneyBox
		err := rows.Scan(
			&m.MoneyBoxID,
			&m.Name,
			&m.Amount,
			&m.Notes,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan money box row: %w", err)
		}
		boxes = append(boxes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating money box rows: %w", err)
	}

	return mapping.ToDomainMoneyBoxSlice(boxes), nil
}

// UpdateMoneyBox updates name and notes of an existing box.
func (r *PgxMoneyBoxRepository) UpdateMoneyBox(ctx context.Context, box domain.MoneyBox) error {
	m := mapping.ToModelMoneyBox(box)

	query := `
		UPDATE money_boxes
		SET name = $2, notes = $3, last_updated_at = $4, last_updated_by = $5
		WHERE money_box_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.MoneyBoxID,
		m.Name,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: money box with name %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to update money box %s: %w", m.MoneyBoxID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// HasTransactions reports whether the box carries any ledger history.
func (r *PgxMoneyBoxRepository) HasTransactions(ctx context.Context, moneyBoxID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM money_box_transactions WHERE money_box_id = $1);`

	var exists bool
	if err := r.Pool.QueryRow(ctx, query, moneyBoxID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check money box history for %s: %w", moneyBoxID, err)
	}
	return exists, nil
}

// DeleteMoneyBox removes a box with no ledger history. The history check and
// the delete run in one transaction so a concurrent append cannot slip in
// between.
func (r *PgxMoneyBoxRepository) DeleteMoneyBox(ctx context.Context, moneyBoxID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT money_box_id FROM money_boxes WHERE money_box_id = $1 FOR UPDATE;`
	var id string
	if err := tx.QueryRow(ctx, lockQuery, moneyBoxID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock money box %s: %w", moneyBoxID, err)
	}

	var hasHistory bool
	existsQuery := `SELECT EXISTS (SELECT 1 FROM money_box_transactions WHERE money_box_id = $1);`
	if err := tx.QueryRow(ctx, existsQuery, moneyBoxID).Scan(&hasHistory); err != nil {
		return fmt.Errorf("failed to check money box history for %s: %w", moneyBoxID, err)
	}
	if hasHistory {
		return fmt.Errorf("%w: money box %s has transaction history", apperrors.ErrConflict, moneyBoxID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM money_boxes WHERE money_box_id = $1;`, moneyBoxID); err != nil {
		return fmt.Errorf("failed to delete money box %s: %w", moneyBoxID, err)
	}

	return r.Commit(ctx, tx)
}

// lockMoneyBox locks one box row and returns its current balance and name.
func lockMoneyBox(ctx context.Context, tx pgx.Tx, moneyBoxID string) (decimal.Decimal, string, error) {
	query := `SELECT amount, name FROM money_boxes WHERE money_box_id = $1 FOR UPDATE;`

	var amount decimal.Decimal
	var name string
	if err := tx.QueryRow(ctx, query, moneyBoxID).Scan(&amount, &name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, "", apperrors.ErrNotFound
		}
		return decimal.Zero, "", fmt.Errorf("failed to lock money box %s: %w", moneyBoxID, err)
	}
	return amount, name, nil
}

// insertMoneyBoxTransaction writes one ledger row and the matching cached
// balance update inside the caller's transaction.
func insertMoneyBoxTransaction(ctx context.Context, tx pgx.Tx, m models.MoneyBoxTransaction) error {
	insertQuery := `
		INSERT INTO money_box_transactions (transaction_id, money_box_id, type, direction, amount, reference_type, reference_id, related_box_id, description, notes, balance_after, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := tx.Exec(ctx, insertQuery,
		m.TransactionID,
		m.MoneyBoxID,
		m.Type,
		m.Direction,
		m.Amount,
		m.ReferenceType,
		m.ReferenceID,
		m.RelatedBoxID,
		m.Description,
		m.Notes,
		m.BalanceAfter,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert money box transaction %s: %w", m.TransactionID, err)
	}

	updateQuery := `
		UPDATE money_boxes
		SET amount = $2, last_updated_at = $3, last_updated_by = $4
		WHERE money_box_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, m.MoneyBoxID, m.BalanceAfter, m.CreatedAt, m.CreatedBy); err != nil {
		return fmt.Errorf("failed to update money box amount %s: %w", m.MoneyBoxID, err)
	}
	return nil
}

// AppendMoneyBoxTransaction appends one ledger entry inside a DB transaction,
// mirroring the cash box append: lock, derive balance_after, reject overdrafts,
// insert, update the cached amount.
func (r *PgxMoneyBoxRepository) AppendMoneyBoxTransaction(ctx context.Context, txn domain.MoneyBoxTransaction) (*domain.MoneyBoxTransaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	balance, name, err := lockMoneyBox(ctx, tx, txn.MoneyBoxID)
	if err != nil {
		return nil, err
	}

	var balanceAfter decimal.Decimal
	switch txn.Direction {
	case domain.Credit:
		balanceAfter = balance.Add(txn.Amount)
	case domain.Debit:
		balanceAfter = balance.Sub(txn.Amount)
		if balanceAfter.IsNegative() {
			return nil, apperrors.NewInsufficientBalanceError(name, balance, txn.Amount)
		}
	default:
		return nil, fmt.Errorf("%w: unknown entry direction %q", apperrors.ErrValidation, txn.Direction)
	}

	txn.BalanceAfter = balanceAfter
	m := mapping.ToModelMoneyBoxTransaction(txn)

	if err := insertMoneyBoxTransaction(ctx, tx, m); err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	result := mapping.ToDomainMoneyBoxTransaction(m)
	return &result, nil
}

// TransferBetweenBoxes moves amount from one box to another in a single DB
// transaction. Boxes are locked in ascending ID order so two concurrent
// opposite transfers cannot deadlock. The pair shares one reference ID; on
// insufficient source balance the transaction rolls back and neither row
// exists.
func (r *PgxMoneyBoxRepository) TransferBetweenBoxes(ctx context.Context, fromBoxID, toBoxID string, amount decimal.Decimal, notes, userID string) (*domain.MoneyBoxTransaction, *domain.MoneyBoxTransaction, error) {
	if fromBoxID == toBoxID {
		return nil, nil, fmt.Errorf("%w: cannot transfer a box into itself", apperrors.ErrValidation)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx)

	// Lock order is by box ID, not by transfer direction.
	first, second := fromBoxID, toBoxID
	if second < first {
		first, second = second, first
	}

	balances := make(map[string]decimal.Decimal, 2)
	names := make(map[string]string, 2)
	for _, id := range []string{first, second} {
		balance, name, err := lockMoneyBox(ctx, tx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, nil, fmt.Errorf("%w: money box %s", apperrors.ErrNotFound, id)
			}
			return nil, nil, err
		}
		balances[id] = balance
		names[id] = name
	}

	fromBalanceAfter := balances[fromBoxID].Sub(amount)
	if fromBalanceAfter.IsNegative() {
		return nil, nil, apperrors.NewInsufficientBalanceError(names[fromBoxID], balances[fromBoxID], amount)
	}
	toBalanceAfter := balances[toBoxID].Add(amount)

	now := time.Now().UTC()
	transferID := uuid.NewString()

	out := models.MoneyBoxTransaction{
		TransactionID: uuid.NewString(),
		MoneyBoxID:    fromBoxID,
		Type:          string(domain.TxnTransferOut),
		Direction:     string(domain.Debit),
		Amount:        amount,
		ReferenceType: string(domain.RefTransfer),
		ReferenceID:   transferID,
		RelatedBoxID:  toBoxID,
		Description:   fmt.Sprintf("transfer to %s", names[toBoxID]),
		Notes:         notes,
		BalanceAfter:  fromBalanceAfter,
		CreatedAt:     now,
		CreatedBy:     userID,
	}
	in := models.MoneyBoxTransaction{
		TransactionID: uuid.NewString(),
		MoneyBoxID:    toBoxID,
		Type:          string(domain.TxnTransferIn),
		Direction:     string(domain.Credit),
		Amount:        amount,
		ReferenceType: string(domain.RefTransfer),
		ReferenceID:   transferID,
		RelatedBoxID:  fromBoxID,
		Description:   fmt.Sprintf("transfer from %s", names[fromBoxID]),
		Notes:         notes,
		BalanceAfter:  toBalanceAfter,
		CreatedAt:     now,
		CreatedBy:     userID,
	}

	if err := insertMoneyBoxTransaction(ctx, tx, out); err != nil {
		return nil, nil, err
	}
	if err := insertMoneyBoxTransaction(ctx, tx, in); err != nil {
		return nil, nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}

	outDomain := mapping.ToDomainMoneyBoxTransaction(out)
	inDomain := mapping.ToDomainMoneyBoxTransaction(in)
	return &outDomain, &inDomain, nil
}

const moneyTxnColumns = `transaction_id, money_box_id, type, direction, amount, reference_type, reference_id, related_box_id, description, notes, balance_after, created_at, created_by`

func scanMoneyBoxTransactions(rows pgx.Rows) ([]models.MoneyBoxTransaction, error) {
	defer rows.Close()

	txns := []models.MoneyBoxTransaction{}
	for rows.Next() {
		var m models.MoneyBoxTransaction
		err := rows.Scan(
			&m.TransactionID,
			&m.MoneyBoxID,
			&m.Type,
			&m.Direction,
			&m.Amount,
			&m.ReferenceType,
			&m.ReferenceID,
			&m.RelatedBoxID,
			&m.Description,
			&m.Notes,
			&m.BalanceAfter,
			&m.CreatedAt,
			&m.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan money box transaction row: %w", err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating money box transaction rows: %w", err)
	}
	return txns, nil
}

// ListMoneyBoxTransactions retrieves a paginated slice of the box's ledger
// using token-based pagination, newest first.
func (r *PgxMoneyBoxRepository) ListMoneyBoxTransactions(ctx context.Context, moneyBoxID string, limit int, nextToken *string) ([]domain.MoneyBoxTransaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `
		SELECT ` + moneyTxnColumns + `
		FROM money_box_transactions
		WHERE money_box_id = $1
	`
	orderByClause := `ORDER BY created_at DESC, transaction_id DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{moneyBoxID}

	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastTxnID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}

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
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions for money box "+moneyBoxID, err)
	}

	txns, err := scanMoneyBoxTransactions(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextTokenVal *string
	if len(txns) > limit {
		last := txns[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
		nextTokenVal = &token
		txns = txns[:limit]
	}

	return mapping.ToDomainMoneyBoxTransactionSlice(txns), nextTokenVal, nil
}

// FindMoneyBoxTransactionsByDateRange retrieves ledger entries created in [from, to].
func (r *PgxMoneyBoxRepository) FindMoneyBoxTransactionsByDateRange(ctx context.Context, moneyBoxID string, from, to time.Time) ([]domain.MoneyBoxTransaction, error) {
	query := `
		SELECT ` + moneyTxnColumns + `
		FROM money_box_transactions
		WHERE money_box_id = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at ASC, transaction_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, moneyBoxID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query money box transactions by date range for %s: %w", moneyBoxID, err)
	}

	txns, err := scanMoneyBoxTransactions(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainMoneyBoxTransactionSlice(txns), nil
}
