// internals/features/finance/report/service/analytics_service_test.go
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

	attendanceModel "edcrm_backend/internals/features/academics/attendance/model"
	groupModel "edcrm_backend/internals/features/academics/group/model"
	invoiceModel "edcrm_backend/internals/features/finance/invoice/model"
	billing "edcrm_backend/internals/features/finance/invoice/service"
	helper "edcrm_backend/internals/helpers"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&invoiceModel.InvoiceModel{},
		&invoiceModel.PaymentModel{},
		&attendanceModel.AttendanceModel{},
		&groupModel.LessonModel{},
	))
	return db
}

func payOn(t *testing.T, db *gorm.DB, date time.Time, cash, transfer, online int64) {
	t.Helper()
	require.NoError(t, db.Create(&invoiceModel.PaymentModel{
		PaymentInvoiceID:      uuid.New(),
		PaymentCashAmount:     decimal.NewFromInt(cash),
		PaymentTransferAmount: decimal.NewFromInt(transfer),
		PaymentOnlineAmount:   decimal.NewFromInt(online),
		PaymentDate:           date,
	}).Error)
}

func TestPaymentsSummaryFor(t *testing.T) {
	db := openTestDB(t)
	inWindow := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	payOn(t, db, inWindow, 100, 200, 0)
	payOn(t, db, inWindow, 50, 0, 300)
	payOn(t, db, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), 999, 0, 0)

	got, err := PaymentsSummaryFor(db,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, got.Count)
	assert.True(t, got.Cash.Equal(decimal.NewFromInt(150)), got.Cash.String())
	assert.True(t, got.Transfer.Equal(decimal.NewFromInt(200)), got.Transfer.String())
	assert.True(t, got.Online.Equal(decimal.NewFromInt(300)), got.Online.String())
	assert.True(t, got.Total.Equal(decimal.NewFromInt(650)), got.Total.String())
}

func TestPaymentsSummaryExcludesDeletedInvoice(t *testing.T) {
	db := openTestDB(t)
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	inv := invoiceModel.InvoiceModel{
		InvoiceStudentID: uuid.New(),
		InvoiceAmount:    decimal.NewFromInt(1000),
		InvoiceDueDate:   day,
	}
	require.NoError(t, db.Create(&inv).Error)
	_, err := billing.RecordPayment(db, billing.RecordPaymentInput{
		InvoiceID: &inv.InvoiceID,
		Cash:      decimal.NewFromInt(700),
		Date:      day,
	})
	require.NoError(t, err)

	require.NoError(t, billing.DeleteInvoice(db, inv.InvoiceID))

	got, err := PaymentsSummaryFor(db, day, helper.EndOfDay(day))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Count)
	assert.True(t, got.Total.IsZero(), got.Total.String())
}

func TestMonthlyIncomeSeriesZeroFilled(t *testing.T) {
	db := openTestDB(t)
	payOn(t, db, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), 1000, 0, 0)
	payOn(t, db, time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC), 500, 1500, 0)
	// payments from another year never leak in
	payOn(t, db, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), 7777, 0, 0)

	series, err := MonthlyIncomeSeries(db, 2025)
	require.NoError(t, err)
	require.Len(t, series, 12)

	for i, entry := range series {
		assert.Equal(t, i+1, entry.Month)
	}
	assert.True(t, series[2].Income.Equal(decimal.NewFromInt(1000)), series[2].Income.String())
	assert.True(t, series[6].Income.Equal(decimal.NewFromInt(2000)), series[6].Income.String())
	for _, i := range []int{0, 1, 3, 4, 5, 7, 8, 9, 10, 11} {
		assert.True(t, series[i].Income.IsZero(), "month %d", i+1)
	}
}

func lessonOn(t *testing.T, db *gorm.DB, date time.Time, order int) *groupModel.LessonModel {
	t.Helper()
	l := groupModel.LessonModel{
		LessonMonthID: uuid.New(),
		LessonOrder:   order,
		LessonTitle:   "Lesson",
		LessonDate:    &date,
	}
	require.NoError(t, db.Create(&l).Error)
	return &l
}

func markAttendance(t *testing.T, db *gorm.DB, lessonID uuid.UUID, status attendanceModel.AttendanceStatus, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, db.Create(&attendanceModel.AttendanceModel{
			AttendanceLessonID:  lessonID,
			AttendanceStudentID: uuid.New(),
			AttendanceStatus:    status,
		}).Error)
	}
}

func TestAttendanceStatsForEmpty(t *testing.T) {
	db := openTestDB(t)
	got, err := AttendanceStatsFor(db,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.EqualValues(t, 0, got.Total)
	assert.Equal(t, 0.0, got.PresentPercent)
	assert.Equal(t, 0.0, got.AbsentPercent)
}

func TestAttendanceStatsForWholePercent(t *testing.T) {
	db := openTestDB(t)
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	lesson := lessonOn(t, db, day, 1)
	markAttendance(t, db, lesson.LessonID, attendanceModel.AttendancePresent, 10)
	markAttendance(t, db, lesson.LessonID, attendanceModel.AttendanceAbsent, 5)

	got, err := AttendanceStatsFor(db, day, helper.EndOfDay(day))
	require.NoError(t, err)
	assert.EqualValues(t, 15, got.Total)
	assert.EqualValues(t, 10, got.Present)
	assert.EqualValues(t, 5, got.Absent)
	// 10/15 and 5/15 round to whole percent
	assert.Equal(t, 67.0, got.PresentPercent)
	assert.Equal(t, 33.0, got.AbsentPercent)
}

func TestAttendanceStatsForScopedToWindow(t *testing.T) {
	db := openTestDB(t)
	monday := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)

	mondayLesson := lessonOn(t, db, monday, 1)
	tuesdayLesson := lessonOn(t, db, tuesday, 2)
	markAttendance(t, db, mondayLesson.LessonID, attendanceModel.AttendancePresent, 3)
	markAttendance(t, db, mondayLesson.LessonID, attendanceModel.AttendanceOnline, 1)
	markAttendance(t, db, tuesdayLesson.LessonID, attendanceModel.AttendanceAbsent, 4)

	got, err := AttendanceStatsFor(db, monday, helper.EndOfDay(monday))
	require.NoError(t, err)
	assert.EqualValues(t, 4, got.Total)
	assert.EqualValues(t, 3, got.Present)
	assert.EqualValues(t, 1, got.Online)
	assert.EqualValues(t, 0, got.Absent)
	// present and online both count as attended
	assert.Equal(t, 100.0, got.PresentPercent)
	assert.Equal(t, 0.0, got.AbsentPercent)

	got, err = AttendanceStatsFor(db, tuesday, helper.EndOfDay(tuesday))
	require.NoError(t, err)
	assert.EqualValues(t, 4, got.Total)
	assert.EqualValues(t, 4, got.Absent)
	assert.Equal(t, 100.0, got.AbsentPercent)

	// the week window sees both days
	got, err = AttendanceStatsFor(db, monday, helper.EndOfDay(tuesday))
	require.NoError(t, err)
	assert.EqualValues(t, 8, got.Total)
	assert.Equal(t, 50.0, got.PresentPercent)
	assert.Equal(t, 50.0, got.AbsentPercent)
}
