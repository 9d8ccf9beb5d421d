// internals/features/finance/invoice/service/billing_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	invoiceModel "edcrm_backend/internals/features/finance/invoice/model"
)

var ErrNoOpenInvoice = errors.New("student has no open invoice")

// InvoiceStatusFor derives the status from the paid and final amounts.
// Overpayment stays paid, the balance just goes negative.
func InvoiceStatusFor(paid, final decimal.Decimal) invoiceModel.InvoiceStatus {
	switch {
	case paid.GreaterThanOrEqual(final):
		return invoiceModel.InvoicePaid
	case paid.GreaterThan(decimal.Zero):
		return invoiceModel.InvoicePartial
	default:
		return invoiceModel.InvoicePending
	}
}

// PaidAmount sums every payment row of the invoice in decimal.
func PaidAmount(tx *gorm.DB, invoiceID uuid.UUID) (decimal.Decimal, error) {
	var payments []invoiceModel.PaymentModel
	if err := tx.Where("payment_invoice_id = ?", invoiceID).Find(&payments).Error; err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for i := range payments {
		total = total.Add(payments[i].Total())
	}
	return total, nil
}

// Recompute re-derives and persists the invoice status.
func Recompute(tx *gorm.DB, invoiceID uuid.UUID) error {
	var invoice invoiceModel.InvoiceModel
	if err := tx.First(&invoice, "invoice_id = ?", invoiceID).Error; err != nil {
		return err
	}
	paid, err := PaidAmount(tx, invoiceID)
	if err != nil {
		return err
	}
	status := InvoiceStatusFor(paid, invoice.FinalAmount())
	if status == invoice.InvoiceStatus {
		return nil
	}
	return tx.Model(&invoiceModel.InvoiceModel{}).
		Where("invoice_id = ?", invoiceID).
		Update("invoice_status", status).Error
}

type RecordPaymentInput struct {
	InvoiceID *uuid.UUID
	StudentID *uuid.UUID
	Cash      decimal.Decimal
	Transfer  decimal.Decimal
	Online    decimal.Decimal
	Date      time.Time
	Comment   *string
}

// RecordPayment inserts a payment and recomputes the invoice status in
// one transaction. When only the student is given, the oldest non-paid
// invoice by due date is picked.
func RecordPayment(db *gorm.DB, in RecordPaymentInput) (*invoiceModel.PaymentModel, error) {
	var payment *invoiceModel.PaymentModel
	err := db.Transaction(func(tx *gorm.DB) error {
		invoiceID, err := resolveInvoice(tx, in)
		if err != nil {
			return err
		}
		p := invoiceModel.PaymentModel{
			PaymentInvoiceID:      invoiceID,
			PaymentCashAmount:     in.Cash,
			PaymentTransferAmount: in.Transfer,
			PaymentOnlineAmount:   in.Online,
			PaymentDate:           in.Date,
			PaymentComment:        in.Comment,
		}
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		if err := Recompute(tx, invoiceID); err != nil {
			return err
		}
		payment = &p
		return nil
	})
	return payment, err
}

// UpdatePayment applies new amounts and recomputes in one transaction.
func UpdatePayment(db *gorm.DB, p *invoiceModel.PaymentModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(p).Error; err != nil {
			return err
		}
		return Recompute(tx, p.PaymentInvoiceID)
	})
}

// DeletePayment removes the row and recomputes; deleting the last
// payment reverts the invoice to pending.
func DeletePayment(db *gorm.DB, paymentID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var p invoiceModel.PaymentModel
		if err := tx.First(&p, "payment_id = ?", paymentID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&p).Error; err != nil {
			return err
		}
		return Recompute(tx, p.PaymentInvoiceID)
	})
}

// DeleteInvoice removes the invoice together with its payments, so a
// deleted invoice's money never reaches the payment reports.
func DeleteInvoice(db *gorm.DB, invoiceID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&invoiceModel.InvoiceModel{}, "invoice_id = ?", invoiceID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("payment_invoice_id = ?", invoiceID).
			Delete(&invoiceModel.PaymentModel{}).Error
	})
}

func resolveInvoice(tx *gorm.DB, in RecordPaymentInput) (uuid.UUID, error) {
	if in.InvoiceID != nil {
		var cnt int64
		if err := tx.Model(&invoiceModel.InvoiceModel{}).
			Where("invoice_id = ?", *in.InvoiceID).
			Count(&cnt).Error; err != nil {
			return uuid.Nil, err
		}
		if cnt == 0 {
			return uuid.Nil, gorm.ErrRecordNotFound
		}
		return *in.InvoiceID, nil
	}
	if in.StudentID == nil {
		return uuid.Nil, ErrNoOpenInvoice
	}
	var invoice invoiceModel.InvoiceModel
	err := tx.Where("invoice_student_id = ? AND invoice_status <> ?", *in.StudentID, invoiceModel.InvoicePaid).
		Order("invoice_due_date ASC").
		First(&invoice).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, ErrNoOpenInvoice
	}
	if err != nil {
		return uuid.Nil, err
	}
	return invoice.InvoiceID, nil
}
