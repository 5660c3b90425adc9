package mapping

import (
	"github.com/retailware/cashbox_backend/internal/core/domain"
	"github.com/retailware/cashbox_backend/internal/models"
)

// ToModelCashBox converts a domain CashBox to a model CashBox
func ToModelCashBox(d domain.CashBox) models.CashBox {
	return models.CashBox{
		CashBoxID:      d.CashBoxID,
		UserID:         d.UserID,
		Status:         models.CashBoxStatus(d.Status),
		OpeningBalance: d.OpeningBalance,
		Balance:        d.Balance,
		OpenedAt:       d.OpenedAt,
		ClosedAt:       d.ClosedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashBox converts a model CashBox to a domain CashBox
func ToDomainCashBox(m models.CashBox) domain.CashBox {
	return domain.CashBox{
		CashBoxID:      m.CashBoxID,
		UserID:         m.UserID,
		Status:         domain.CashBoxStatus(m.Status),
		OpeningBalance: m.OpeningBalance,
		Balance:        m.Balance,
		OpenedAt:       m.OpenedAt,
		ClosedAt:       m.ClosedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCashBoxTransaction converts a domain ledger entry to its model row
func ToModelCashBoxTransaction(d domain.CashBoxTransaction) models.CashBoxTransaction {
	return models.CashBoxTransaction{
		TransactionID: d.TransactionID,
		CashBoxID:     d.CashBoxID,
		UserID:        d.UserID,
		Type:          string(d.Type),
		Direction:     string(d.Direction),
		Amount:        d.Amount,
		ReferenceType: string(d.ReferenceType),
		ReferenceID:   d.ReferenceID,
		Description:   d.Description,
		Notes:         d.Notes,
		BalanceAfter:  d.BalanceAfter,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
}

// ToDomainCashBoxTransaction converts a model row to a domain ledger entry
func ToDomainCashBoxTransaction(m models.CashBoxTransaction) domain.CashBoxTransaction {
	return domain.CashBoxTransaction{
		TransactionID: m.TransactionID,
		CashBoxID:     m.CashBoxID,
		UserID:        m.UserID,
		Type:          domain.TransactionType(m.Type),
		Direction:     domain.EntryDirection(m.Direction),
		Amount:        m.Amount,
		ReferenceType: domain.ReferenceType(m.ReferenceType),
		ReferenceID:   m.ReferenceID,
		Description:   m.Description,
		Notes:         m.Notes,
		BalanceAfter:  m.BalanceAfter,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

// ToDomainCashBoxTransactionSlice converts a slice of model rows to domain entries
func ToDomainCashBoxTransactionSlice(ms []models.CashBoxTransaction) []domain.CashBoxTransaction {
	ds := make([]domain.CashBoxTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashBoxTransaction(m)
	}
	return ds
}
