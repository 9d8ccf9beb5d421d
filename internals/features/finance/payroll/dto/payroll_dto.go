// internals/features/finance/payroll/dto/payroll_dto.go
package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	payrollModel "edcrm_backend/internals/features/finance/payroll/model"
)

type UpsertSalaryRequest struct {
	PaymentType   string          `json:"payment_type" validate:"required,oneof=fixed hourly"`
	PaymentAmount decimal.Decimal `json:"payment_amount" validate:"required"`
	PaymentPeriod string          `json:"payment_period" validate:"required,oneof=month per_lesson"`
}

type CalculatePaymentsRequest struct {
	Month int `json:"month" validate:"required,gte=1,lte=12"`
	Year  int `json:"year" validate:"required,gte=2000,lte=2100"`
}

type UpdateTeacherPaymentRequest struct {
	Bonus      *decimal.Decimal `json:"bonus"`
	PaidAmount *decimal.Decimal `json:"paid_amount"`
	IsPaid     *bool            `json:"is_paid"`
}

type TeacherPaymentResponse struct {
	payrollModel.TeacherPaymentModel
	Balance decimal.Decimal `json:"balance"`
}

func BuildTeacherPaymentResponse(m *payrollModel.TeacherPaymentModel) TeacherPaymentResponse {
	return TeacherPaymentResponse{
		TeacherPaymentModel: *m,
		Balance:             m.Balance(),
	}
}

type CreateExpenseRequest struct {
	Category    string          `json:"category" validate:"required,oneof=salary rent marketing office other"`
	Description string          `json:"description" validate:"required,max=255"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	TeacherID   *uuid.UUID      `json:"teacher_id"`
	Comment     *string         `json:"comment"`
}

type UpdateExpenseRequest struct {
	Category    *string          `json:"category" validate:"omitempty,oneof=salary rent marketing office other"`
	Description *string          `json:"description" validate:"omitempty,max=255"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`
	TeacherID   *uuid.UUID       `json:"teacher_id"`
	Comment     *string          `json:"comment"`
}
