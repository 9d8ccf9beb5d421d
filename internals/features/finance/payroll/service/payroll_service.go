// internals/features/finance/payroll/service/payroll_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"edcrm_backend/internals/constants"
	payrollModel "edcrm_backend/internals/features/finance/payroll/model"
	userModel "edcrm_backend/internals/features/users/user/model"
)

// PaymentFor derives the pay for one teacher over one period.
//   fixed + month:      amount as-is
//   fixed + per_lesson: amount x lessons
//   hourly:             amount x lessons x lesson duration (hours)
func PaymentFor(profile *payrollModel.TeacherProfileModel, lessons int, lessonDurationHours decimal.Decimal) decimal.Decimal {
	switch profile.TeacherProfileType {
	case payrollModel.PaymentTypeHourly:
		return profile.TeacherProfileAmount.
			Mul(decimal.NewFromInt(int64(lessons))).
			Mul(lessonDurationHours)
	default:
		if profile.TeacherProfilePeriod == payrollModel.PaymentPeriodPerLesson {
			return profile.TeacherProfileAmount.Mul(decimal.NewFromInt(int64(lessons)))
		}
		return profile.TeacherProfileAmount
	}
}

type CalculationResult struct {
	TeacherID uuid.UUID       `json:"teacher_id"`
	Lessons   int             `json:"lessons"`
	Amount    decimal.Decimal `json:"amount"`
}

// CalculateTeacherPayments runs the payroll for one calendar month:
// every active teacher with a profile gets their scheduled lessons in
// the window counted and a payroll row upserted, keyed on the period
// end date so a re-run updates instead of duplicating.
func CalculateTeacherPayments(db *gorm.DB, month, year int) ([]CalculationResult, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be 1..12, got %d", month)
	}
	periodStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)

	var results []CalculationResult
	err := db.Transaction(func(tx *gorm.DB) error {
		var teachers []userModel.UserModel
		if err := tx.Where("user_role = ? AND user_is_active = ?", constants.RoleTeacher, true).
			Find(&teachers).Error; err != nil {
			return err
		}
		for i := range teachers {
			teacherID := teachers[i].UserID
			var profile payrollModel.TeacherProfileModel
			err := tx.Where("teacher_profile_teacher_id = ?", teacherID).First(&profile).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return err
			}

			lessons, durationHours, err := lessonsInWindow(tx, teacherID, periodStart, periodEnd)
			if err != nil {
				return err
			}

			amount := PaymentFor(&profile, lessons, durationHours)
			if err := upsertPayment(tx, teacherID, periodEnd, lessons, profile.TeacherProfileAmount, amount); err != nil {
				return err
			}
			results = append(results, CalculationResult{
				TeacherID: teacherID,
				Lessons:   lessons,
				Amount:    amount,
			})
		}
		return nil
	})
	return results, err
}

// lessonsInWindow counts scheduled lessons and derives an average
// lesson duration in hours from the booked slots.
func lessonsInWindow(tx *gorm.DB, teacherID uuid.UUID, start, end time.Time) (int, decimal.Decimal, error) {
	type slot struct {
		ScheduleStartTime string
		ScheduleEndTime   string
	}
	var slots []slot
	err := tx.Table("schedules").
		Select("schedule_start_time, schedule_end_time").
		Where("schedule_teacher_id = ?", teacherID).
		Where("schedule_date >= ? AND schedule_date <= ?", start, end).
		Scan(&slots).Error
	if err != nil {
		return 0, decimal.Zero, err
	}
	if len(slots) == 0 {
		return 0, decimal.Zero, nil
	}
	totalMinutes := 0
	for _, s := range slots {
		totalMinutes += slotMinutes(s.ScheduleStartTime, s.ScheduleEndTime)
	}
	avgHours := decimal.NewFromInt(int64(totalMinutes)).
		Div(decimal.NewFromInt(int64(len(slots)))).
		Div(decimal.NewFromInt(60))
	return len(slots), avgHours, nil
}

func slotMinutes(start, end string) int {
	var sh, sm, eh, em int
	if _, err := fmt.Sscanf(start, "%d:%d", &sh, &sm); err != nil {
		return 0
	}
	if _, err := fmt.Sscanf(end, "%d:%d", &eh, &em); err != nil {
		return 0
	}
	m := (eh*60 + em) - (sh*60 + sm)
	if m < 0 {
		return 0
	}
	return m
}

func upsertPayment(tx *gorm.DB, teacherID uuid.UUID, periodEnd time.Time, lessons int, rate, amount decimal.Decimal) error {
	var row payrollModel.TeacherPaymentModel
	err := tx.Where("teacher_payment_teacher_id = ? AND teacher_payment_date = ?", teacherID, periodEnd).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		row = payrollModel.TeacherPaymentModel{
			TeacherPaymentTeacherID:    teacherID,
			TeacherPaymentDate:         periodEnd,
			TeacherPaymentLessonsCount: lessons,
			TeacherPaymentRate:         rate,
			TeacherPaymentAmount:       amount,
		}
		return tx.Create(&row).Error
	}
	if err != nil {
		return err
	}
	row.TeacherPaymentLessonsCount = lessons
	row.TeacherPaymentRate = rate
	row.TeacherPaymentAmount = amount
	return tx.Save(&row).Error
}
