package services

import (
	"context"
	"fmt"
	"time"

	"github.com/retailware/cashbox_backend/internal/apperrors"
	"github.com/retailware/cashbox_backend/internal/core/domain"
	portsrepo "github.com/retailware/cashbox_backend/internal/core/ports/repositories"
	portssvc "github.com/retailware/cashbox_backend/internal/core/ports/services"
)

// ReportingService aggregates ledger activity across both ledgers.
type ReportingService struct {
	reportingRepo portsrepo.ReportingRepositoryFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(repo portsrepo.ReportingRepositoryFacade) *ReportingService {
	return &ReportingService{reportingRepo: repo}
}

var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// GetCashFlowSummary aggregates fund movement over [from, to].
func (s *ReportingService) GetCashFlowSummary(ctx context.Context, from, to time.Time) (*domain.CashFlowSummary, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: date range end precedes start", apperrors.ErrValidation)
	}
	return s.reportingRepo.SummarizeCashFlow(ctx, from, to)
}
