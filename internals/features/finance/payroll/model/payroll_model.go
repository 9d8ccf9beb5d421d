// internals/features/finance/payroll/model/payroll_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentType string

const (
	PaymentTypeFixed  PaymentType = "fixed"
	PaymentTypeHourly PaymentType = "hourly"
)

type PaymentPeriod string

const (
	PaymentPeriodMonth     PaymentPeriod = "month"
	PaymentPeriodPerLesson PaymentPeriod = "per_lesson"
)

// One salary profile per teacher, upserted via the salary endpoint.
type TeacherProfileModel struct {
	TeacherProfileID        uuid.UUID       `gorm:"column:teacher_profile_id;type:uuid;primaryKey" json:"teacher_profile_id"`
	TeacherProfileTeacherID uuid.UUID       `gorm:"column:teacher_profile_teacher_id;type:uuid;not null;uniqueIndex" json:"teacher_profile_teacher_id"`
	TeacherProfileType      PaymentType     `gorm:"column:teacher_profile_type;type:varchar(10);not null" json:"teacher_profile_type"`
	TeacherProfileAmount    decimal.Decimal `gorm:"column:teacher_profile_amount;type:numeric(12,2);not null" json:"teacher_profile_amount"`
	TeacherProfilePeriod    PaymentPeriod   `gorm:"column:teacher_profile_period;type:varchar(10);not null;default:month" json:"teacher_profile_period"`
	TeacherProfileCreatedAt time.Time       `gorm:"column:teacher_profile_created_at;not null;autoCreateTime" json:"teacher_profile_created_at"`
	TeacherProfileUpdatedAt time.Time       `gorm:"column:teacher_profile_updated_at;not null;autoUpdateTime" json:"teacher_profile_updated_at"`
}

func (TeacherProfileModel) TableName() string { return "teacher_profiles" }

func (m *TeacherProfileModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeacherProfileID == uuid.Nil {
		m.TeacherProfileID = uuid.New()
	}
	return nil
}

// One payroll row per (teacher, period end date), upserted by the
// calculation run and then topped up manually with bonus/paid amount.
type TeacherPaymentModel struct {
	TeacherPaymentID           uuid.UUID       `gorm:"column:teacher_payment_id;type:uuid;primaryKey" json:"teacher_payment_id"`
	TeacherPaymentTeacherID    uuid.UUID       `gorm:"column:teacher_payment_teacher_id;type:uuid;not null;uniqueIndex:uq_teacher_payment_period" json:"teacher_payment_teacher_id"`
	TeacherPaymentDate         time.Time       `gorm:"column:teacher_payment_date;type:date;not null;uniqueIndex:uq_teacher_payment_period" json:"teacher_payment_date"`
	TeacherPaymentLessonsCount int             `gorm:"column:teacher_payment_lessons_count;not null;default:0" json:"teacher_payment_lessons_count"`
	TeacherPaymentRate         decimal.Decimal `gorm:"column:teacher_payment_rate;type:numeric(12,2);not null;default:0" json:"teacher_payment_rate"`
	TeacherPaymentAmount       decimal.Decimal `gorm:"column:teacher_payment_amount;type:numeric(12,2);not null;default:0" json:"teacher_payment_amount"`
	TeacherPaymentBonus        decimal.Decimal `gorm:"column:teacher_payment_bonus;type:numeric(12,2);not null;default:0" json:"teacher_payment_bonus"`
	TeacherPaymentPaidAmount   decimal.Decimal `gorm:"column:teacher_payment_paid_amount;type:numeric(12,2);not null;default:0" json:"teacher_payment_paid_amount"`
	TeacherPaymentIsPaid       bool            `gorm:"column:teacher_payment_is_paid;not null;default:false" json:"teacher_payment_is_paid"`
	TeacherPaymentCreatedAt    time.Time       `gorm:"column:teacher_payment_created_at;not null;autoCreateTime" json:"teacher_payment_created_at"`
	TeacherPaymentUpdatedAt    time.Time       `gorm:"column:teacher_payment_updated_at;not null;autoUpdateTime" json:"teacher_payment_updated_at"`
}

func (TeacherPaymentModel) TableName() string { return "teacher_payments" }

func (m *TeacherPaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeacherPaymentID == uuid.Nil {
		m.TeacherPaymentID = uuid.New()
	}
	return nil
}

func (m *TeacherPaymentModel) Balance() decimal.Decimal {
	return m.TeacherPaymentAmount.Add(m.TeacherPaymentBonus).Sub(m.TeacherPaymentPaidAmount)
}

type ExpenseCategory string

const (
	ExpenseSalary    ExpenseCategory = "salary"
	ExpenseRent      ExpenseCategory = "rent"
	ExpenseMarketing ExpenseCategory = "marketing"
	ExpenseOffice    ExpenseCategory = "office"
	ExpenseOther     ExpenseCategory = "other"
)

func ValidExpenseCategory(s string) bool {
	switch ExpenseCategory(s) {
	case ExpenseSalary, ExpenseRent, ExpenseMarketing, ExpenseOffice, ExpenseOther:
		return true
	}
	return false
}

type ExpenseModel struct {
	ExpenseID          uuid.UUID       `gorm:"column:expense_id;type:uuid;primaryKey" json:"expense_id"`
	ExpenseCategory    ExpenseCategory `gorm:"column:expense_category;type:varchar(20);not null;index" json:"expense_category"`
	ExpenseDescription string          `gorm:"column:expense_description;type:varchar(255);not null" json:"expense_description"`
	ExpenseAmount      decimal.Decimal `gorm:"column:expense_amount;type:numeric(12,2);not null" json:"expense_amount"`
	ExpenseDate        time.Time       `gorm:"column:expense_date;type:date;not null;index" json:"expense_date"`
	ExpenseTeacherID   *uuid.UUID      `gorm:"column:expense_teacher_id;type:uuid;index" json:"expense_teacher_id,omitempty"`
	ExpenseComment     *string         `gorm:"column:expense_comment;type:text" json:"expense_comment,omitempty"`
	ExpenseCreatedAt   time.Time       `gorm:"column:expense_created_at;not null;autoCreateTime" json:"expense_created_at"`
	ExpenseUpdatedAt   time.Time       `gorm:"column:expense_updated_at;not null;autoUpdateTime" json:"expense_updated_at"`
}

func (ExpenseModel) TableName() string { return "expenses" }

func (m *ExpenseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExpenseID == uuid.Nil {
		m.ExpenseID = uuid.New()
	}
	return nil
}
