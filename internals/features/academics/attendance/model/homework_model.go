// internals/features/academics/attendance/model/homework_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type HomeworkStatus string

const (
	HomeworkNotDone   HomeworkStatus = "not_done"
	HomeworkSubmitted HomeworkStatus = "submitted"
	HomeworkAccepted  HomeworkStatus = "accepted"
	HomeworkRejected  HomeworkStatus = "rejected"
)

func ValidHomeworkStatus(s string) bool {
	switch HomeworkStatus(s) {
	case HomeworkNotDone, HomeworkSubmitted, HomeworkAccepted, HomeworkRejected:
		return true
	}
	return false
}

const MaxProjectLinks = 5

// One row per (lesson, student), provisioned alongside attendance.
type HomeworkSubmissionModel struct {
	HomeworkID        uuid.UUID      `gorm:"column:homework_id;type:uuid;primaryKey" json:"homework_id"`
	HomeworkLessonID  uuid.UUID      `gorm:"column:homework_lesson_id;type:uuid;not null;uniqueIndex:uq_homework_lesson_student;index" json:"homework_lesson_id"`
	HomeworkStudentID uuid.UUID      `gorm:"column:homework_student_id;type:uuid;not null;uniqueIndex:uq_homework_lesson_student;index" json:"homework_student_id"`
	HomeworkStatus    HomeworkStatus `gorm:"column:homework_status;type:varchar(10);not null;default:not_done" json:"homework_status"`

	HomeworkScore          *int                       `gorm:"column:homework_score" json:"homework_score,omitempty"`
	HomeworkTeacherComment *string                    `gorm:"column:homework_teacher_comment;type:text" json:"homework_teacher_comment,omitempty"`
	HomeworkProjectLinks   datatypes.JSONSlice[string] `gorm:"column:homework_project_links" json:"homework_project_links,omitempty"`
	HomeworkSubmittedAt    *time.Time                 `gorm:"column:homework_submitted_at" json:"homework_submitted_at,omitempty"`

	HomeworkCreatedAt time.Time `gorm:"column:homework_created_at;not null;autoCreateTime" json:"homework_created_at"`
	HomeworkUpdatedAt time.Time `gorm:"column:homework_updated_at;not null;autoUpdateTime" json:"homework_updated_at"`

	HomeworkFiles []HomeworkFileModel `gorm:"foreignKey:HomeworkFileHomeworkID;references:HomeworkID" json:"homework_files,omitempty"`
}

func (HomeworkSubmissionModel) TableName() string { return "homework_submissions" }

func (h *HomeworkSubmissionModel) BeforeCreate(tx *gorm.DB) error {
	if h.HomeworkID == uuid.Nil {
		h.HomeworkID = uuid.New()
	}
	if h.HomeworkStatus == "" {
		h.HomeworkStatus = HomeworkNotDone
	}
	return nil
}

type HomeworkFileModel struct {
	HomeworkFileID         uuid.UUID `gorm:"column:homework_file_id;type:uuid;primaryKey" json:"homework_file_id"`
	HomeworkFileHomeworkID uuid.UUID `gorm:"column:homework_file_homework_id;type:uuid;not null;index" json:"homework_file_homework_id"`
	HomeworkFileURL        string    `gorm:"column:homework_file_url;type:text;not null" json:"homework_file_url"`
	HomeworkFileName       string    `gorm:"column:homework_file_name;type:varchar(255);not null" json:"homework_file_name"`
	HomeworkFileCreatedAt  time.Time `gorm:"column:homework_file_created_at;not null;autoCreateTime" json:"homework_file_created_at"`
}

func (HomeworkFileModel) TableName() string { return "homework_files" }

func (f *HomeworkFileModel) BeforeCreate(tx *gorm.DB) error {
	if f.HomeworkFileID == uuid.Nil {
		f.HomeworkFileID = uuid.New()
	}
	return nil
}
