package services

import (
	"context"

	"github.com/retailware/cashbox_backend/internal/core/domain"
)

// PostingSvcFacade turns committed business events into ledger entries.
//
// Record services call PostEvent after persisting their own record. The
// posting step is a separate, explicit hook: when it fails the caller decides
// whether to compensate (delete the record it just created) or to surface the
// error as-is.
type PostingSvcFacade interface {
	PostEvent(ctx context.Context, ev domain.FinancialEvent) error
}
