package mapping

import (
	"github.com/retailware/cashbox_backend/internal/core/domain"
	"github.com/retailware/cashbox_backend/internal/models"
)

// ToModelMoneyBox converts a domain MoneyBox to a model MoneyBox
func ToModelMoneyBox(d domain.MoneyBox) models.MoneyBox {
	return models.MoneyBox{
		MoneyBoxID:  d.MoneyBoxID,
		Name:        d.Name,
		Amount:      d.Amount,
		Notes:       d.Notes,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMoneyBox converts a model MoneyBox to a domain MoneyBox
func ToDomainMoneyBox(m models.MoneyBox) domain.MoneyBox {
	return domain.MoneyBox{
		MoneyBoxID:  m.MoneyBoxID,
		Name:        m.Name,
		Amount:      m.Amount,
		Notes:       m.Notes,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMoneyBoxSlice converts a slice of model MoneyBoxes to domain MoneyBoxes
func ToDomainMoneyBoxSlice(ms []models.MoneyBox) []domain.MoneyBox {
	ds := make([]domain.MoneyBox, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMoneyBox(m)
	}
	return ds
}

// ToModelMoneyBoxTransaction converts a domain ledger entry to its model row
func ToModelMoneyBoxTransaction(d domain.MoneyBoxTransaction) models.MoneyBoxTransaction {
	return models.MoneyBoxTransaction{
		TransactionID: d.TransactionID,
		MoneyBoxID:    d.MoneyBoxID,
		Type:          string(d.Type),
		Direction:     string(d.Direction),
		Amount:        d.Amount,
		ReferenceType: string(d.ReferenceType),
		ReferenceID:   d.ReferenceID,
		RelatedBoxID:  d.RelatedBoxID,
		Description:   d.Description,
		Notes:         d.Notes,
		BalanceAfter:  d.BalanceAfter,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
}

// ToDomainMoneyBoxTransaction converts a model row to a domain ledger entry
func ToDomainMoneyBoxTransaction(m models.MoneyBoxTransaction) domain.MoneyBoxTransaction {
	return domain.MoneyBoxTransaction{
		TransactionID: m.TransactionID,
		MoneyBoxID:    m.MoneyBoxID,
		Type:          domain.TransactionType(m.Type),
		Direction:     domain.EntryDirection(m.Direction),
		Amount:        m.Amount,
		ReferenceType: domain.ReferenceType(m.ReferenceType),
		ReferenceID:   m.ReferenceID,
		RelatedBoxID:  m.RelatedBoxID,
		Description:   m.Description,
		Notes:         m.Notes,
		BalanceAfter:  m.BalanceAfter,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

// ToDomainMoneyBoxTransactionSlice converts a slice of model rows to domain entries
func ToDomainMoneyBoxTransactionSlice(ms []models.MoneyBoxTransaction) []domain.MoneyBoxTransaction {
	ds := make([]domain.MoneyBoxTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMoneyBoxTransaction(m)
	}
	return ds
}
