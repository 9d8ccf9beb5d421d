// internals/features/finance/invoice/model/invoice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePartial InvoiceStatus = "partial"
	InvoicePaid    InvoiceStatus = "paid"
)

// Status is derived from payments, never set by clients.
type InvoiceModel struct {
	InvoiceID        uuid.UUID  `gorm:"column:invoice_id;type:uuid;primaryKey" json:"invoice_id"`
	InvoiceStudentID uuid.UUID  `gorm:"column:invoice_student_id;type:uuid;not null;index" json:"invoice_student_id"`
	InvoiceMonthID   *uuid.UUID `gorm:"column:invoice_month_id;type:uuid;index" json:"invoice_month_id,omitempty"`

	InvoiceAmount   decimal.Decimal `gorm:"column:invoice_amount;type:numeric(12,2);not null" json:"invoice_amount"`
	InvoiceDiscount decimal.Decimal `gorm:"column:invoice_discount;type:numeric(12,2);not null;default:0" json:"invoice_discount"`

	InvoiceDueDate time.Time     `gorm:"column:invoice_due_date;type:date;not null;index" json:"invoice_due_date"`
	InvoiceStatus  InvoiceStatus `gorm:"column:invoice_status;type:varchar(10);not null;default:pending;index" json:"invoice_status"`
	InvoiceComment *string       `gorm:"column:invoice_comment;type:text" json:"invoice_comment,omitempty"`

	InvoiceCreatedAt time.Time      `gorm:"column:invoice_created_at;not null;autoCreateTime" json:"invoice_created_at"`
	InvoiceUpdatedAt time.Time      `gorm:"column:invoice_updated_at;not null;autoUpdateTime" json:"invoice_updated_at"`
	InvoiceDeletedAt gorm.DeletedAt `gorm:"column:invoice_deleted_at;index" json:"invoice_deleted_at,omitempty"`

	Payments []PaymentModel `gorm:"foreignKey:PaymentInvoiceID;references:InvoiceID" json:"payments,omitempty"`
}

func (InvoiceModel) TableName() string { return "invoices" }

func (i *InvoiceModel) BeforeCreate(tx *gorm.DB) error {
	if i.InvoiceID == uuid.Nil {
		i.InvoiceID = uuid.New()
	}
	if i.InvoiceStatus == "" {
		i.InvoiceStatus = InvoicePending
	}
	return nil
}

// FinalAmount is the amount after discount.
func (i *InvoiceModel) FinalAmount() decimal.Decimal {
	return i.InvoiceAmount.Sub(i.InvoiceDiscount)
}

// A payment can arrive split across methods in one visit; the row keeps
// the three sub-amounts separately for the method breakdown report.
type PaymentModel struct {
	PaymentID        uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey" json:"payment_id"`
	PaymentInvoiceID uuid.UUID `gorm:"column:payment_invoice_id;type:uuid;not null;index" json:"payment_invoice_id"`

	PaymentCashAmount     decimal.Decimal `gorm:"column:payment_cash_amount;type:numeric(12,2);not null;default:0" json:"payment_cash_amount"`
	PaymentTransferAmount decimal.Decimal `gorm:"column:payment_transfer_amount;type:numeric(12,2);not null;default:0" json:"payment_transfer_amount"`
	PaymentOnlineAmount   decimal.Decimal `gorm:"column:payment_online_amount;type:numeric(12,2);not null;default:0" json:"payment_online_amount"`

	PaymentDate    time.Time `gorm:"column:payment_date;type:date;not null;index" json:"payment_date"`
	PaymentComment *string   `gorm:"column:payment_comment;type:text" json:"payment_comment,omitempty"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;not null;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time `gorm:"column:payment_updated_at;not null;autoUpdateTime" json:"payment_updated_at"`
}

func (PaymentModel) TableName() string { return "payments" }

func (p *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if p.PaymentID == uuid.Nil {
		p.PaymentID = uuid.New()
	}
	return nil
}

func (p *PaymentModel) Total() decimal.Decimal {
	return p.PaymentCashAmount.Add(p.PaymentTransferAmount).Add(p.PaymentOnlineAmount)
}
