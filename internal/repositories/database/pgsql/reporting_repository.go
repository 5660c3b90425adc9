package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/retailware/cashbox_backend/internal/core/domain"
	portsrepo "github.com/retailware/cashbox_backend/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepositoryFacade interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepositoryFacade = (*reportingRepository)(nil)

// SummarizeCashFlow aggregates both ledgers per (ledger, type, direction) over
// [from, to] and derives the overall in/out/net totals.
func (r *reportingRepository) SummarizeCashFlow(ctx context.Context, from, to time.Time) (*domain.CashFlowSummary, error) {
	query := `
		SELECT ledger, type, direction, SUM(amount) AS total, COUNT(*) AS count
		FROM (
			SELECT 'cash_box' AS ledger, type, direction, amount, created_at
			FROM cash_box_transactions
			UNION ALL
			SELECT 'money_box' AS ledger, type, direction, amount, created_at
			FROM money_box_transactions
		) entries
		WHERE created_at >= $1 AND created_at <= $2
		GROUP BY ledger, type, direction
		ORDER BY ledger, type, direction;
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying cash flow data: %w", err)
	}
	defer rows.Close()

	summary := &domain.CashFlowSummary{
		From:  from,
		To:    to,
		Lines: []domain.CashFlowLine{},
	}

	for rows.Next() {
		var line domain.CashFlowLine
		var txnType, direction string

		if err := rows.Scan(
			&line.Ledger,
			&txnType,
			&direction,
			&line.Total,
			&line.Count,
		); err != nil {
			return nil, fmt.Errorf("error scanning cash flow row: %w", err)
		}

		line.Type = domain.TransactionType(txnType)
		line.Direction = domain.EntryDirection(direction)
		summary.Lines = append(summary.Lines, line)

		switch line.Direction {
		case domain.Credit:
			summary.CashIn = summary.CashIn.Add(line.Total)
		case domain.Debit:
			summary.CashOut = summary.CashOut.Add(line.Total)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cash flow rows: %w", err)
	}

	summary.Net = summary.CashIn.Sub(summary.CashOut)
	return summary, nil
}
