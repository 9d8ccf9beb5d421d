// internals/features/scheduling/model/schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Times are stored as zero-padded HH:MM strings so plain string
// comparison orders them correctly. The unique indexes are only a
// backstop, the conflict checks run before any insert.
type ScheduleModel struct {
	ScheduleID          uuid.UUID `gorm:"column:schedule_id;type:uuid;primaryKey" json:"schedule_id"`
	ScheduleClassroomID uuid.UUID `gorm:"column:schedule_classroom_id;type:uuid;not null;index;uniqueIndex:uq_schedule_room_slot" json:"schedule_classroom_id"`
	ScheduleTeacherID   uuid.UUID `gorm:"column:schedule_teacher_id;type:uuid;not null;index;uniqueIndex:uq_schedule_teacher_slot" json:"schedule_teacher_id"`
	ScheduleGroupID     uuid.UUID `gorm:"column:schedule_group_id;type:uuid;not null;index" json:"schedule_group_id"`

	ScheduleDate      time.Time `gorm:"column:schedule_date;type:date;not null;index;uniqueIndex:uq_schedule_room_slot;uniqueIndex:uq_schedule_teacher_slot" json:"schedule_date"`
	ScheduleStartTime string    `gorm:"column:schedule_start_time;type:varchar(5);not null;uniqueIndex:uq_schedule_room_slot;uniqueIndex:uq_schedule_teacher_slot" json:"schedule_start_time"`
	ScheduleEndTime   string    `gorm:"column:schedule_end_time;type:varchar(5);not null" json:"schedule_end_time"`

	ScheduleNote *string `gorm:"column:schedule_note;type:text" json:"schedule_note,omitempty"`

	ScheduleCreatedAt time.Time `gorm:"column:schedule_created_at;not null;autoCreateTime" json:"schedule_created_at"`
	ScheduleUpdatedAt time.Time `gorm:"column:schedule_updated_at;not null;autoUpdateTime" json:"schedule_updated_at"`
}

func (ScheduleModel) TableName() string { return "schedules" }

func (m *ScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ScheduleID == uuid.Nil {
		m.ScheduleID = uuid.New()
	}
	return nil
}
