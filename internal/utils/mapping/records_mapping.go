package mapping

import (
	"github.com/retailware/cashbox_backend/internal/core/domain"
	"github.com/retailware/cashbox_backend/internal/models"
)

// ToModelSale converts a domain Sale to a model Sale
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:        d.SaleID,
		InvoiceNo:     d.InvoiceNo,
		CustomerName:  d.CustomerName,
		TotalAmount:   d.TotalAmount,
		PaidAmount:    d.PaidAmount,
		PaymentMethod: string(d.PaymentMethod),
		MoneyBoxID:    d.MoneyBoxID,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSale converts a model Sale to a domain Sale
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:        m.SaleID,
		InvoiceNo:     m.InvoiceNo,
		CustomerName:  m.CustomerName,
		TotalAmount:   m.TotalAmount,
		PaidAmount:    m.PaidAmount,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		MoneyBoxID:    m.MoneyBoxID,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSaleReturn converts a domain SaleReturn to a model SaleReturn
func ToModelSaleReturn(d domain.SaleReturn) models.SaleReturn {
	return models.SaleReturn{
		ReturnID:     d.ReturnID,
		SaleID:       d.SaleID,
		Amount:       d.Amount,
		RefundMethod: string(d.RefundMethod),
		Reason:       d.Reason,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSaleReturn converts a model SaleReturn to a domain SaleReturn
func ToDomainSaleReturn(m models.SaleReturn) domain.SaleReturn {
	return domain.SaleReturn{
		ReturnID:     m.ReturnID,
		SaleID:       m.SaleID,
		Amount:       m.Amount,
		RefundMethod: domain.PaymentMethod(m.RefundMethod),
		Reason:       m.Reason,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPurchase converts a domain Purchase to a model Purchase
func ToModelPurchase(d domain.Purchase) models.Purchase {
	return models.Purchase{
		PurchaseID:    d.PurchaseID,
		InvoiceNo:     d.InvoiceNo,
		SupplierName:  d.SupplierName,
		TotalAmount:   d.TotalAmount,
		PaidAmount:    d.PaidAmount,
		PaymentMethod: string(d.PaymentMethod),
		MoneyBoxID:    d.MoneyBoxID,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchase converts a model Purchase to a domain Purchase
func ToDomainPurchase(m models.Purchase) domain.Purchase {
	return domain.Purchase{
		PurchaseID:    m.PurchaseID,
		InvoiceNo:     m.InvoiceNo,
		SupplierName:  m.SupplierName,
		TotalAmount:   m.TotalAmount,
		PaidAmount:    m.PaidAmount,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		MoneyBoxID:    m.MoneyBoxID,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPurchaseReturn converts a domain PurchaseReturn to a model PurchaseReturn
func ToModelPurchaseReturn(d domain.PurchaseReturn) models.PurchaseReturn {
	return models.PurchaseReturn{
		ReturnID:     d.ReturnID,
		PurchaseID:   d.PurchaseID,
		Amount:       d.Amount,
		RefundMethod: string(d.RefundMethod),
		Reason:       d.Reason,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchaseReturn converts a model PurchaseReturn to a domain PurchaseReturn
func ToDomainPurchaseReturn(m models.PurchaseReturn) domain.PurchaseReturn {
	return domain.PurchaseReturn{
		ReturnID:     m.ReturnID,
		PurchaseID:   m.PurchaseID,
		Amount:       m.Amount,
		RefundMethod: domain.PaymentMethod(m.RefundMethod),
		Reason:       m.Reason,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:     d.ExpenseID,
		Category:      d.Category,
		Amount:        d.Amount,
		PaymentMethod: string(d.PaymentMethod),
		MoneyBoxID:    d.MoneyBoxID,
		Description:   d.Description,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:     m.ExpenseID,
		Category:      m.Category,
		Amount:        m.Amount,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		MoneyBoxID:    m.MoneyBoxID,
		Description:   m.Description,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCustomerReceipt converts a domain CustomerReceipt to a model CustomerReceipt
func ToModelCustomerReceipt(d domain.CustomerReceipt) models.CustomerReceipt {
	return models.CustomerReceipt{
		ReceiptID:     d.ReceiptID,
		ReceiptNo:     d.ReceiptNo,
		CustomerName:  d.CustomerName,
		Amount:        d.Amount,
		PaymentMethod: string(d.PaymentMethod),
		MoneyBoxID:    d.MoneyBoxID,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustomerReceipt converts a model CustomerReceipt to a domain CustomerReceipt
func ToDomainCustomerReceipt(m models.CustomerReceipt) domain.CustomerReceipt {
	return domain.CustomerReceipt{
		ReceiptID:     m.ReceiptID,
		ReceiptNo:     m.ReceiptNo,
		CustomerName:  m.CustomerName,
		Amount:        m.Amount,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		MoneyBoxID:    m.MoneyBoxID,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelSupplierPayment converts a domain SupplierPaymentReceipt to its model row
func ToModelSupplierPayment(d domain.SupplierPaymentReceipt) models.SupplierPaymentReceipt {
	return models.SupplierPaymentReceipt{
		ReceiptID:     d.ReceiptID,
		ReceiptNo:     d.ReceiptNo,
		SupplierName:  d.SupplierName,
		Amount:        d.Amount,
		PaymentMethod: string(d.PaymentMethod),
		MoneyBoxID:    d.MoneyBoxID,
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSupplierPayment converts a model row to a domain SupplierPaymentReceipt
func ToDomainSupplierPayment(m models.SupplierPaymentReceipt) domain.SupplierPaymentReceipt {
	return domain.SupplierPaymentReceipt{
		ReceiptID:     m.ReceiptID,
		ReceiptNo:     m.ReceiptNo,
		SupplierName:  m.SupplierName,
		Amount:        m.Amount,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		MoneyBoxID:    m.MoneyBoxID,
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelDebt converts a domain Debt to a model Debt
func ToModelDebt(d domain.Debt) models.Debt {
	return models.Debt{
		DebtID:       d.DebtID,
		CustomerName: d.CustomerName,
		TotalAmount:  d.TotalAmount,
		PaidAmount:   d.PaidAmount,
		Status:       string(d.Status),
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDebt converts a model Debt to a domain Debt
func ToDomainDebt(m models.Debt) domain.Debt {
	return domain.Debt{
		DebtID:       m.DebtID,
		CustomerName: m.CustomerName,
		TotalAmount:  m.TotalAmount,
		PaidAmount:   m.PaidAmount,
		Status:       domain.DebtStatus(m.Status),
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDebtSlice converts a slice of model Debts to domain Debts
func ToDomainDebtSlice(ms []models.Debt) []domain.Debt {
	ds := make([]domain.Debt, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDebt(m)
	}
	return ds
}

// ToModelInstallment converts a domain Installment to a model Installment
func ToModelInstallment(d domain.Installment) models.Installment {
	return models.Installment{
		InstallmentID: d.InstallmentID,
		SaleID:        d.SaleID,
		CustomerName:  d.CustomerName,
		DueDate:       d.DueDate,
		Amount:        d.Amount,
		PaidAmount:    d.PaidAmount,
		Status:        string(d.Status),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInstallment converts a model Installment to a domain Installment
func ToDomainInstallment(m models.Installment) domain.Installment {
	return domain.Installment{
		InstallmentID: m.InstallmentID,
		SaleID:        m.SaleID,
		CustomerName:  m.CustomerName,
		DueDate:       m.DueDate,
		Amount:        m.Amount,
		PaidAmount:    m.PaidAmount,
		Status:        domain.InstallmentStatus(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInstallmentSlice converts a slice of model Installments to domain Installments
func ToDomainInstallmentSlice(ms []models.Installment) []domain.Installment {
	ds := make([]domain.Installment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInstallment(m)
	}
	return ds
}
