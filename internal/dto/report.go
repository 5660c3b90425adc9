package dto

import (
	"time"

	"github.com/retailware/cashbox_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashFlowLineResponse is one (ledger, type) aggregate row.
type CashFlowLineResponse struct {
	Ledger    string          `json:"ledger"`
	Type      string          `json:"type"`
	Direction string          `json:"direction"`
	Total     decimal.Decimal `json:"total"`
	Count     int64           `json:"count"`
}

// CashFlowSummaryResponse aggregates ledger activity over a date range.
type CashFlowSummaryResponse struct {
	From    time.Time              `json:"from"`
	To      time.Time              `json:"to"`
	CashIn  decimal.Decimal        `json:"cashIn"`
	CashOut decimal.Decimal        `json:"cashOut"`
	Net     decimal.Decimal        `json:"net"`
	Lines   []CashFlowLineResponse `json:"lines"`
}

func ToCashFlowSummaryResponse(s *domain.CashFlowSummary) CashFlowSummaryResponse {
	lines := make([]CashFlowLineResponse, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, CashFlowLineResponse{
			Ledger:    l.Ledger,
			Type:      string(l.Type),
			Direction: string(l.Direction),
			Total:     l.Total,
			Count:     l.Count,
		})
	}
	return CashFlowSummaryResponse{
		From:    s.From,
		To:      s.To,
		CashIn:  s.CashIn,
		CashOut: s.CashOut,
		Net:     s.Net,
		Lines:   lines,
	}
}
