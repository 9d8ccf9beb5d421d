// internals/features/academics/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendancePresent AttendanceStatus = "present"
	AttendanceOnline  AttendanceStatus = "online"
)

func ValidAttendanceStatus(s string) bool {
	switch AttendanceStatus(s) {
	case AttendanceAbsent, AttendancePresent, AttendanceOnline:
		return true
	}
	return false
}

// One row per (lesson, student). Rows are provisioned with the default
// status and then only updated, never recreated, so history survives
// membership changes.
type AttendanceModel struct {
	AttendanceID        uuid.UUID        `gorm:"column:attendance_id;type:uuid;primaryKey" json:"attendance_id"`
	AttendanceLessonID  uuid.UUID        `gorm:"column:attendance_lesson_id;type:uuid;not null;uniqueIndex:uq_attendance_lesson_student;index" json:"attendance_lesson_id"`
	AttendanceStudentID uuid.UUID        `gorm:"column:attendance_student_id;type:uuid;not null;uniqueIndex:uq_attendance_lesson_student;index" json:"attendance_student_id"`
	AttendanceStatus    AttendanceStatus `gorm:"column:attendance_status;type:varchar(10);not null;default:absent" json:"attendance_status"`
	AttendanceCreatedAt time.Time        `gorm:"column:attendance_created_at;not null;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time        `gorm:"column:attendance_updated_at;not null;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string { return "attendances" }

func (a *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if a.AttendanceID == uuid.Nil {
		a.AttendanceID = uuid.New()
	}
	if a.AttendanceStatus == "" {
		a.AttendanceStatus = AttendanceAbsent
	}
	return nil
}
