// internals/features/finance/invoice/dto/invoice_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	invoiceModel "edcrm_backend/internals/features/finance/invoice/model"
)

type CreateInvoiceRequest struct {
	StudentID uuid.UUID       `json:"student_id" validate:"required"`
	MonthID   *uuid.UUID      `json:"month_id"`
	Amount    decimal.Decimal `json:"amount" validate:"required"`
	Discount  decimal.Decimal `json:"discount"`
	DueDate   string          `json:"due_date" validate:"required,datetime=2006-01-02"`
	Comment   *string         `json:"comment"`
}

func (r *CreateInvoiceRequest) ToModel(dueDate time.Time) invoiceModel.InvoiceModel {
	return invoiceModel.InvoiceModel{
		InvoiceStudentID: r.StudentID,
		InvoiceMonthID:   r.MonthID,
		InvoiceAmount:    r.Amount,
		InvoiceDiscount:  r.Discount,
		InvoiceDueDate:   dueDate,
		InvoiceComment:   r.Comment,
	}
}

type UpdateInvoiceRequest struct {
	MonthID  *uuid.UUID       `json:"month_id"`
	Amount   *decimal.Decimal `json:"amount"`
	Discount *decimal.Decimal `json:"discount"`
	DueDate  *string          `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Comment  *string          `json:"comment"`
}

type RecordPaymentRequest struct {
	InvoiceID *uuid.UUID      `json:"invoice_id"`
	StudentID *uuid.UUID      `json:"student_id"`
	Cash      decimal.Decimal `json:"cash"`
	Transfer  decimal.Decimal `json:"transfer"`
	Online    decimal.Decimal `json:"online"`
	Date      *string         `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Comment   *string         `json:"comment"`
}

type UpdatePaymentRequest struct {
	Cash     *decimal.Decimal `json:"cash"`
	Transfer *decimal.Decimal `json:"transfer"`
	Online   *decimal.Decimal `json:"online"`
	Date     *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Comment  *string          `json:"comment"`
}

type InvoiceResponse struct {
	invoiceModel.InvoiceModel
	FinalAmount decimal.Decimal `json:"final_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
	Balance     decimal.Decimal `json:"balance"`
}

func BuildInvoiceResponse(inv *invoiceModel.InvoiceModel, paid decimal.Decimal) InvoiceResponse {
	final := inv.FinalAmount()
	return InvoiceResponse{
		InvoiceModel: *inv,
		FinalAmount:  final,
		PaidAmount:   paid,
		Balance:      final.Sub(paid),
	}
}
