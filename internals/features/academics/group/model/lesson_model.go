// internals/features/academics/group/model/lesson_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LessonModel struct {
	LessonID      uuid.UUID `gorm:"column:lesson_id;type:uuid;primaryKey" json:"lesson_id"`
	LessonMonthID uuid.UUID `gorm:"column:lesson_month_id;type:uuid;not null;uniqueIndex:uq_lesson_month_order;index" json:"lesson_month_id"`
	LessonOrder   int       `gorm:"column:lesson_order;not null;uniqueIndex:uq_lesson_month_order" json:"lesson_order"`

	LessonTitle       string     `gorm:"column:lesson_title;type:varchar(150);not null" json:"lesson_title"`
	LessonDescription *string    `gorm:"column:lesson_description;type:text" json:"lesson_description,omitempty"`
	LessonDate        *time.Time `gorm:"column:lesson_date;index" json:"lesson_date,omitempty"`

	LessonLink          *string `gorm:"column:lesson_link;type:text" json:"lesson_link,omitempty"`
	LessonRecordingLink *string `gorm:"column:lesson_recording_link;type:text" json:"lesson_recording_link,omitempty"`

	LessonHomeworkLink         *string    `gorm:"column:lesson_homework_link;type:text" json:"lesson_homework_link,omitempty"`
	LessonHomeworkDeadline     *time.Time `gorm:"column:lesson_homework_deadline" json:"lesson_homework_deadline,omitempty"`
	LessonHomeworkDescription  *string    `gorm:"column:lesson_homework_description;type:text" json:"lesson_homework_description,omitempty"`
	LessonHomeworkRequirements *string    `gorm:"column:lesson_homework_requirements;type:text" json:"lesson_homework_requirements,omitempty"`

	LessonCreatedAt time.Time `gorm:"column:lesson_created_at;not null;autoCreateTime" json:"lesson_created_at"`
	LessonUpdatedAt time.Time `gorm:"column:lesson_updated_at;not null;autoUpdateTime" json:"lesson_updated_at"`
}

func (LessonModel) TableName() string { return "lessons" }

func (l *LessonModel) BeforeCreate(tx *gorm.DB) error {
	if l.LessonID == uuid.Nil {
		l.LessonID = uuid.New()
	}
	return nil
}
