// internals/features/academics/group/model/group_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GroupFormat string

const (
	GroupFormatOnline  GroupFormat = "online"
	GroupFormatOffline GroupFormat = "offline"
)

type GroupCreationType string

const (
	// auto materializes the month/lesson plan at creation time
	GroupCreationAuto   GroupCreationType = "auto"
	GroupCreationManual GroupCreationType = "manual"
)

type GroupModel struct {
	GroupID          uuid.UUID  `gorm:"column:group_id;type:uuid;primaryKey" json:"group_id"`
	GroupName        string     `gorm:"column:group_name;type:varchar(150);not null" json:"group_name"`
	GroupDirectionID uuid.UUID  `gorm:"column:group_direction_id;type:uuid;not null;index" json:"group_direction_id"`
	GroupTeacherID   *uuid.UUID `gorm:"column:group_teacher_id;type:uuid;index" json:"group_teacher_id,omitempty"`

	GroupAgeGroup     *string     `gorm:"column:group_age_group;type:varchar(50)" json:"group_age_group,omitempty"`
	GroupFormat       GroupFormat `gorm:"column:group_format;type:varchar(10);not null;default:offline" json:"group_format"`
	GroupPlannedStart *time.Time  `gorm:"column:group_planned_start" json:"group_planned_start,omitempty"`

	GroupDurationMonths  int     `gorm:"column:group_duration_months;not null;default:1" json:"group_duration_months"`
	GroupLessonsPerMonth int     `gorm:"column:group_lessons_per_month;not null;default:8" json:"group_lessons_per_month"`
	GroupLessonsPerWeek  int     `gorm:"column:group_lessons_per_week;not null;default:2" json:"group_lessons_per_week"`
	GroupLessonDuration  float64 `gorm:"column:group_lesson_duration;not null;default:2" json:"group_lesson_duration"`

	GroupScheduleDays datatypes.JSONSlice[string] `gorm:"column:group_schedule_days" json:"group_schedule_days,omitempty"`
	GroupComment      *string                     `gorm:"column:group_comment;type:text" json:"group_comment,omitempty"`

	GroupIsActive     bool              `gorm:"column:group_is_active;not null;default:true" json:"group_is_active"`
	GroupCreationType GroupCreationType `gorm:"column:group_creation_type;type:varchar(10);not null;default:manual" json:"group_creation_type"`

	GroupCreatedAt time.Time      `gorm:"column:group_created_at;not null;autoCreateTime" json:"group_created_at"`
	GroupUpdatedAt time.Time      `gorm:"column:group_updated_at;not null;autoUpdateTime" json:"group_updated_at"`
	GroupDeletedAt gorm.DeletedAt `gorm:"column:group_deleted_at;index" json:"group_deleted_at,omitempty"`

	Months []MonthModel `gorm:"foreignKey:MonthGroupID;references:GroupID" json:"months,omitempty"`
}

func (GroupModel) TableName() string { return "groups" }

func (g *GroupModel) BeforeCreate(tx *gorm.DB) error {
	if g.GroupID == uuid.Nil {
		g.GroupID = uuid.New()
	}
	return nil
}

// GroupStudentModel is the membership join table.
type GroupStudentModel struct {
	GroupStudentID        uuid.UUID `gorm:"column:group_student_id;type:uuid;primaryKey" json:"group_student_id"`
	GroupStudentGroupID   uuid.UUID `gorm:"column:group_student_group_id;type:uuid;not null;uniqueIndex:uq_group_student;index" json:"group_student_group_id"`
	GroupStudentStudentID uuid.UUID `gorm:"column:group_student_student_id;type:uuid;not null;uniqueIndex:uq_group_student;index" json:"group_student_student_id"`
	GroupStudentCreatedAt time.Time `gorm:"column:group_student_created_at;not null;autoCreateTime" json:"group_student_created_at"`
}

func (GroupStudentModel) TableName() string { return "group_students" }

func (gs *GroupStudentModel) BeforeCreate(tx *gorm.DB) error {
	if gs.GroupStudentID == uuid.Nil {
		gs.GroupStudentID = uuid.New()
	}
	return nil
}
