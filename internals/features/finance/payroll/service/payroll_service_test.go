// internals/features/finance/payroll/service/payroll_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"edcrm_backend/internals/constants"
	payrollModel "edcrm_backend/internals/features/finance/payroll/model"
	scheduleModel "edcrm_backend/internals/features/scheduling/model"
	userModel "edcrm_backend/internals/features/users/user/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&payrollModel.TeacherProfileModel{},
		&payrollModel.TeacherPaymentModel{},
		&scheduleModel.ScheduleModel{},
	))
	return db
}

func TestPaymentForFixedMonth(t *testing.T) {
	profile := payrollModel.TeacherProfileModel{
		TeacherProfileType:   payrollModel.PaymentTypeFixed,
		TeacherProfilePeriod: payrollModel.PaymentPeriodMonth,
		TeacherProfileAmount: decimal.NewFromInt(800),
	}
	// lesson count is irrelevant for a monthly salary
	got := PaymentFor(&profile, 13, decimal.NewFromFloat(1.5))
	assert.True(t, got.Equal(decimal.NewFromInt(800)), got.String())
}

func TestPaymentForFixedPerLesson(t *testing.T) {
	profile := payrollModel.TeacherProfileModel{
		TeacherProfileType:   payrollModel.PaymentTypeFixed,
		TeacherProfilePeriod: payrollModel.PaymentPeriodPerLesson,
		TeacherProfileAmount: decimal.NewFromInt(50),
	}
	got := PaymentFor(&profile, 12, decimal.NewFromFloat(1.5))
	assert.True(t, got.Equal(decimal.NewFromInt(600)), got.String())
}

func TestPaymentForHourly(t *testing.T) {
	profile := payrollModel.TeacherProfileModel{
		TeacherProfileType:   payrollModel.PaymentTypeHourly,
		TeacherProfileAmount: decimal.NewFromInt(10),
	}
	// 8 lessons of 1.5h at 10/h
	got := PaymentFor(&profile, 8, decimal.NewFromFloat(1.5))
	assert.True(t, got.Equal(decimal.NewFromInt(120)), got.String())
}

func TestSlotMinutes(t *testing.T) {
	assert.Equal(t, 90, slotMinutes("10:00", "11:30"))
	assert.Equal(t, 60, slotMinutes("09:30", "10:30"))
	assert.Equal(t, 0, slotMinutes("11:00", "10:00"))
	assert.Equal(t, 0, slotMinutes("bad", "10:00"))
}

func createTeacher(t *testing.T, db *gorm.DB, active bool) *userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		UserUsername:  "t-" + uuid.NewString()[:8],
		UserPassword:  "x",
		UserFirstName: "T",
		UserLastName:  "Eacher",
		UserRole:      constants.RoleTeacher,
		UserIsActive:  active,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func bookLesson(t *testing.T, db *gorm.DB, teacherID uuid.UUID, date time.Time, start, end string) {
	t.Helper()
	require.NoError(t, db.Create(&scheduleModel.ScheduleModel{
		ScheduleClassroomID: uuid.New(),
		ScheduleTeacherID:   teacherID,
		ScheduleGroupID:     uuid.New(),
		ScheduleDate:        date,
		ScheduleStartTime:   start,
		ScheduleEndTime:     end,
	}).Error)
}

func TestCalculateTeacherPaymentsHourly(t *testing.T) {
	db := openTestDB(t)
	teacher := createTeacher(t, db, true)
	require.NoError(t, db.Create(&payrollModel.TeacherProfileModel{
		TeacherProfileTeacherID: teacher.UserID,
		TeacherProfileType:      payrollModel.PaymentTypeHourly,
		TeacherProfileAmount:    decimal.NewFromInt(10),
	}).Error)

	// two 90-minute lessons inside March, one outside the window
	bookLesson(t, db, teacher.UserID, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), "10:00", "11:30")
	bookLesson(t, db, teacher.UserID, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), "10:00", "11:30")
	bookLesson(t, db, teacher.UserID, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), "10:00", "11:30")

	results, err := CalculateTeacherPayments(db, 3, 2025)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, teacher.UserID, results[0].TeacherID)
	assert.Equal(t, 2, results[0].Lessons)
	// 10 x 2 lessons x 1.5h
	assert.True(t, results[0].Amount.Equal(decimal.NewFromInt(30)), results[0].Amount.String())
}

func TestCalculateTeacherPaymentsUpsertsOnRerun(t *testing.T) {
	db := openTestDB(t)
	teacher := createTeacher(t, db, true)
	require.NoError(t, db.Create(&payrollModel.TeacherProfileModel{
		TeacherProfileTeacherID: teacher.UserID,
		TeacherProfileType:      payrollModel.PaymentTypeFixed,
		TeacherProfilePeriod:    payrollModel.PaymentPeriodPerLesson,
		TeacherProfileAmount:    decimal.NewFromInt(50),
	}).Error)
	bookLesson(t, db, teacher.UserID, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), "10:00", "12:00")

	_, err := CalculateTeacherPayments(db, 3, 2025)
	require.NoError(t, err)

	// an extra lesson appears, the re-run updates the same row
	bookLesson(t, db, teacher.UserID, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), "10:00", "12:00")
	results, err := CalculateTeacherPayments(db, 3, 2025)
	require.NoError(t, err)
	require.Len(t, results, 1)

	var rows []payrollModel.TeacherPaymentModel
	require.NoError(t, db.Where("teacher_payment_teacher_id = ?", teacher.UserID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].TeacherPaymentLessonsCount)
	assert.True(t, rows[0].TeacherPaymentAmount.Equal(decimal.NewFromInt(100)), rows[0].TeacherPaymentAmount.String())
}

func TestCalculateTeacherPaymentsSkipsInactiveAndProfileless(t *testing.T) {
	db := openTestDB(t)

	inactive := createTeacher(t, db, false)
	require.NoError(t, db.Create(&payrollModel.TeacherProfileModel{
		TeacherProfileTeacherID: inactive.UserID,
		TeacherProfileType:      payrollModel.PaymentTypeFixed,
		TeacherProfileAmount:    decimal.NewFromInt(500),
	}).Error)

	// active but never configured
	createTeacher(t, db, true)

	results, err := CalculateTeacherPayments(db, 3, 2025)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCalculateTeacherPaymentsRejectsBadMonth(t *testing.T) {
	db := openTestDB(t)
	_, err := CalculateTeacherPayments(db, 13, 2025)
	assert.Error(t, err)
	_, err = CalculateTeacherPayments(db, 0, 2025)
	assert.Error(t, err)
}
