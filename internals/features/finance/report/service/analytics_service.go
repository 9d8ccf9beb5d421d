// internals/features/finance/report/service/analytics_service.go
package service

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"edcrm_backend/internals/constants"
	attendanceModel "edcrm_backend/internals/features/academics/attendance/model"
	groupModel "edcrm_backend/internals/features/academics/group/model"
	invoiceModel "edcrm_backend/internals/features/finance/invoice/model"
	leadModel "edcrm_backend/internals/features/leads/model"
	scheduleModel "edcrm_backend/internals/features/scheduling/model"
	userModel "edcrm_backend/internals/features/users/user/model"
	helper "edcrm_backend/internals/helpers"
)

/* =======================================================================
   All analytics are pure reads. Money is summed in decimal and only
   converted for display by the JSON layer; percentage denominators are
   floored at 1 so empty datasets render as zeros instead of errors.
======================================================================= */

type PaymentsSummary struct {
	Cash     decimal.Decimal `json:"cash"`
	Transfer decimal.Decimal `json:"transfer"`
	Online   decimal.Decimal `json:"online"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// PaymentsSummaryFor sums payments by method over [start, end].
func PaymentsSummaryFor(db *gorm.DB, start, end time.Time) (PaymentsSummary, error) {
	var rows []invoiceModel.PaymentModel
	if err := db.Where("payment_date >= ? AND payment_date <= ?", start, end).
		Find(&rows).Error; err != nil {
		return PaymentsSummary{}, err
	}
	out := PaymentsSummary{
		Cash:     decimal.Zero,
		Transfer: decimal.Zero,
		Online:   decimal.Zero,
		Total:    decimal.Zero,
		Count:    len(rows),
	}
	for i := range rows {
		out.Cash = out.Cash.Add(rows[i].PaymentCashAmount)
		out.Transfer = out.Transfer.Add(rows[i].PaymentTransferAmount)
		out.Online = out.Online.Add(rows[i].PaymentOnlineAmount)
	}
	out.Total = out.Cash.Add(out.Transfer).Add(out.Online)
	return out, nil
}

type AttendanceStats struct {
	Total          int64   `json:"total"`
	Present        int64   `json:"present"`
	Online         int64   `json:"online"`
	Absent         int64   `json:"absent"`
	PresentPercent float64 `json:"present_percent"`
	AbsentPercent  float64 `json:"absent_percent"`
}

// AttendanceStatsFor counts statuses over lessons dated inside
// [start, end]; present and online both count as attended for the
// percentage, rounded to whole percent.
func AttendanceStatsFor(db *gorm.DB, start, end time.Time) (AttendanceStats, error) {
	var stats AttendanceStats
	counts := map[attendanceModel.AttendanceStatus]*int64{
		attendanceModel.AttendancePresent: &stats.Present,
		attendanceModel.AttendanceOnline:  &stats.Online,
		attendanceModel.AttendanceAbsent:  &stats.Absent,
	}
	for status, dst := range counts {
		if err := db.Model(&attendanceModel.AttendanceModel{}).
			Joins("JOIN lessons ON lessons.lesson_id = attendances.attendance_lesson_id").
			Where("lessons.lesson_date >= ? AND lessons.lesson_date <= ?", start, end).
			Where("attendance_status = ?", status).
			Count(dst).Error; err != nil {
			return AttendanceStats{}, err
		}
	}
	stats.Total = stats.Present + stats.Online + stats.Absent

	denom := stats.Total
	if denom < 1 {
		denom = 1
	}
	attended := stats.Present + stats.Online
	stats.PresentPercent = math.Round(float64(attended) * 100 / float64(denom))
	stats.AbsentPercent = math.Round(float64(stats.Absent) * 100 / float64(denom))
	return stats, nil
}

type TeacherWorkload struct {
	TeacherID   uuid.UUID       `json:"teacher_id"`
	TeacherName string          `json:"teacher_name"`
	Lessons     int64           `json:"lessons"`
	GroupIncome decimal.Decimal `json:"group_income"`
}

// TeacherWorkloadFor lists teachers with at least one scheduled lesson
// in the window, sorted by lesson count descending. Income is the sum
// of payments from students in the teacher's groups.
func TeacherWorkloadFor(db *gorm.DB, start, end time.Time) ([]TeacherWorkload, error) {
	var teachers []userModel.UserModel
	if err := db.Where("user_role = ?", constants.RoleTeacher).Find(&teachers).Error; err != nil {
		return nil, err
	}

	out := []TeacherWorkload{}
	for i := range teachers {
		teacherID := teachers[i].UserID
		var lessons int64
		if err := db.Model(&scheduleModel.ScheduleModel{}).
			Where("schedule_teacher_id = ?", teacherID).
			Where("schedule_date >= ? AND schedule_date <= ?", start, end).
			Count(&lessons).Error; err != nil {
			return nil, err
		}
		if lessons == 0 {
			continue
		}
		income, err := teacherGroupIncome(db, teacherID, start, end)
		if err != nil {
			return nil, err
		}
		out = append(out, TeacherWorkload{
			TeacherID:   teacherID,
			TeacherName: teachers[i].FullName(),
			Lessons:     lessons,
			GroupIncome: income,
		})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Lessons > out[b].Lessons })
	return out, nil
}

func teacherGroupIncome(db *gorm.DB, teacherID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	var studentIDs []uuid.UUID
	err := db.Model(&groupModel.GroupStudentModel{}).
		Joins("JOIN groups ON groups.group_id = group_students.group_student_group_id").
		Where("groups.group_teacher_id = ?", teacherID).
		Pluck("group_students.group_student_student_id", &studentIDs).Error
	if err != nil {
		return decimal.Zero, err
	}
	if len(studentIDs) == 0 {
		return decimal.Zero, nil
	}
	var payments []invoiceModel.PaymentModel
	err = db.
		Joins("JOIN invoices ON invoices.invoice_id = payments.payment_invoice_id").
		Where("invoices.invoice_student_id IN ?", studentIDs).
		Where("payments.payment_date >= ? AND payments.payment_date <= ?", start, end).
		Find(&payments).Error
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for i := range payments {
		total = total.Add(payments[i].Total())
	}
	return total, nil
}

type DirectionPopularity struct {
	Rank          int             `json:"rank"`
	DirectionID   uuid.UUID       `json:"direction_id"`
	DirectionName string          `json:"direction_name"`
	Students      int64           `json:"students"`
	Groups        int64           `json:"groups"`
	Income        decimal.Decimal `json:"income"`
}

// PopularDirections ranks directions by distinct enrolled students.
func PopularDirections(db *gorm.DB, start, end time.Time) ([]DirectionPopularity, error) {
	type dirRow struct {
		DirectionID   uuid.UUID
		DirectionName string
	}
	var dirs []dirRow
	if err := db.Table("directions").
		Select("direction_id, direction_name").
		Where("direction_deleted_at IS NULL").
		Scan(&dirs).Error; err != nil {
		return nil, err
	}

	out := []DirectionPopularity{}
	for _, d := range dirs {
		var groups int64
		if err := db.Model(&groupModel.GroupModel{}).
			Where("group_direction_id = ?", d.DirectionID).
			Count(&groups).Error; err != nil {
			return nil, err
		}
		var studentIDs []uuid.UUID
		if err := db.Model(&groupModel.GroupStudentModel{}).
			Joins("JOIN groups ON groups.group_id = group_students.group_student_group_id").
			Where("groups.group_direction_id = ?", d.DirectionID).
			Distinct("group_students.group_student_student_id").
			Pluck("group_students.group_student_student_id", &studentIDs).Error; err != nil {
			return nil, err
		}

		income := decimal.Zero
		if len(studentIDs) > 0 {
			var payments []invoiceModel.PaymentModel
			if err := db.
				Joins("JOIN invoices ON invoices.invoice_id = payments.payment_invoice_id").
				Where("invoices.invoice_student_id IN ?", studentIDs).
				Where("payments.payment_date >= ? AND payments.payment_date <= ?", start, end).
				Find(&payments).Error; err != nil {
				return nil, err
			}
			for i := range payments {
				income = income.Add(payments[i].Total())
			}
		}
		out = append(out, DirectionPopularity{
			DirectionID:   d.DirectionID,
			DirectionName: d.DirectionName,
			Students:      int64(len(studentIDs)),
			Groups:        groups,
			Income:        income,
		})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Students > out[b].Students })
	for i := range out {
		out[i].Rank = i + 1
	}
	return out, nil
}

type MonthlyIncomeEntry struct {
	Month  int             `json:"month"`
	Income decimal.Decimal `json:"income"`
}

// MonthlyIncomeSeries returns 12 entries for the year, zero-filled for
// months without payments. Grouping happens in Go so the query stays
// portable.
func MonthlyIncomeSeries(db *gorm.DB, year int) ([]MonthlyIncomeEntry, error) {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)

	var payments []invoiceModel.PaymentModel
	if err := db.Where("payment_date >= ? AND payment_date <= ?", start, end).
		Find(&payments).Error; err != nil {
		return nil, err
	}

	series := make([]MonthlyIncomeEntry, 12)
	for i := range series {
		series[i] = MonthlyIncomeEntry{Month: i + 1, Income: decimal.Zero}
	}
	for i := range payments {
		m := int(payments[i].PaymentDate.Month())
		series[m-1].Income = series[m-1].Income.Add(payments[i].Total())
	}
	return series, nil
}

type DashboardStats struct {
	NewStudents24h   int64                          `json:"new_students_24h"`
	NewStudentsWeek  int64                          `json:"new_students_week"`
	NewStudentsMonth int64                          `json:"new_students_month"`
	NewStudentsYear  int64                          `json:"new_students_year"`
	ActiveStudents   int64                          `json:"active_students"`
	PaymentsToday    PaymentsSummary                `json:"payments_today"`
	UpcomingClasses  []scheduleModel.ScheduleModel  `json:"upcoming_classes"`
	RecentLeads      []leadModel.LeadModel          `json:"recent_leads"`
	Attendance       AttendanceStats                `json:"attendance"`
}

// Dashboard aggregates the admin landing page numbers.
func Dashboard(db *gorm.DB, now time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{}

	windows := map[time.Duration]*int64{
		24 * time.Hour:       &stats.NewStudents24h,
		7 * 24 * time.Hour:   &stats.NewStudentsWeek,
		30 * 24 * time.Hour:  &stats.NewStudentsMonth,
		365 * 24 * time.Hour: &stats.NewStudentsYear,
	}
	for span, dst := range windows {
		if err := db.Model(&userModel.UserModel{}).
			Where("user_role = ? AND user_date_joined >= ?", constants.RoleStudent, now.Add(-span)).
			Count(dst).Error; err != nil {
			return nil, err
		}
	}
	if err := db.Model(&userModel.UserModel{}).
		Where("user_role = ? AND user_is_active = ?", constants.RoleStudent, true).
		Count(&stats.ActiveStudents).Error; err != nil {
		return nil, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	payments, err := PaymentsSummaryFor(db, today, helper.EndOfDay(today))
	if err != nil {
		return nil, err
	}
	stats.PaymentsToday = payments

	if err := db.
		Where("schedule_date >= ?", today).
		Order("schedule_date ASC, schedule_start_time ASC").
		Limit(10).
		Find(&stats.UpcomingClasses).Error; err != nil {
		return nil, err
	}
	if err := db.
		Order("lead_created_at DESC").
		Limit(10).
		Find(&stats.RecentLeads).Error; err != nil {
		return nil, err
	}

	attendance, err := AttendanceStatsFor(db, today, helper.EndOfDay(today))
	if err != nil {
		return nil, err
	}
	stats.Attendance = attendance
	return stats, nil
}
