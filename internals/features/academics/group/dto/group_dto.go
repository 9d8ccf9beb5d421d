// internals/features/academics/group/dto/group_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	groupModel "edcrm_backend/internals/features/academics/group/model"
)

type CreateGroupRequest struct {
	Name            string     `json:"name" validate:"required,max=150"`
	DirectionID     uuid.UUID  `json:"direction_id" validate:"required"`
	TeacherID       *uuid.UUID `json:"teacher_id"`
	AgeGroup        *string    `json:"age_group" validate:"omitempty,max=50"`
	Format          string     `json:"format" validate:"required,oneof=online offline"`
	PlannedStart    *time.Time `json:"planned_start"`
	DurationMonths  int        `json:"duration_months" validate:"required,gte=1,lte=36"`
	LessonsPerMonth int        `json:"lessons_per_month" validate:"required,gte=1,lte=31"`
	LessonsPerWeek  int        `json:"lessons_per_week" validate:"omitempty,gte=1,lte=7"`
	LessonDuration  float64    `json:"lesson_duration" validate:"omitempty,gt=0,lte=12"`
	ScheduleDays    []string   `json:"schedule_days" validate:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Comment         *string    `json:"comment"`
	CreationType    string     `json:"creation_type" validate:"required,oneof=auto manual"`
	StudentIDs      []uuid.UUID `json:"student_ids"`
}

func (r *CreateGroupRequest) ToModel() groupModel.GroupModel {
	lessonsPerWeek := r.LessonsPerWeek
	if lessonsPerWeek == 0 {
		lessonsPerWeek = 2
	}
	lessonDuration := r.LessonDuration
	if lessonDuration == 0 {
		lessonDuration = 2
	}
	return groupModel.GroupModel{
		GroupName:            r.Name,
		GroupDirectionID:     r.DirectionID,
		GroupTeacherID:       r.TeacherID,
		GroupAgeGroup:        r.AgeGroup,
		GroupFormat:          groupModel.GroupFormat(r.Format),
		GroupPlannedStart:    r.PlannedStart,
		GroupDurationMonths:  r.DurationMonths,
		GroupLessonsPerMonth: r.LessonsPerMonth,
		GroupLessonsPerWeek:  lessonsPerWeek,
		GroupLessonDuration:  lessonDuration,
		GroupScheduleDays:    datatypes.NewJSONSlice(r.ScheduleDays),
		GroupComment:         r.Comment,
		GroupIsActive:        true,
		GroupCreationType:    groupModel.GroupCreationType(r.CreationType),
	}
}

type UpdateGroupRequest struct {
	Name            *string     `json:"name" validate:"omitempty,max=150"`
	DirectionID     *uuid.UUID  `json:"direction_id"`
	TeacherID       *uuid.UUID  `json:"teacher_id"`
	AgeGroup        *string     `json:"age_group" validate:"omitempty,max=50"`
	Format          *string     `json:"format" validate:"omitempty,oneof=online offline"`
	PlannedStart    *time.Time  `json:"planned_start"`
	LessonsPerWeek  *int        `json:"lessons_per_week" validate:"omitempty,gte=1,lte=7"`
	LessonDuration  *float64    `json:"lesson_duration" validate:"omitempty,gt=0,lte=12"`
	ScheduleDays    []string    `json:"schedule_days" validate:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Comment         *string     `json:"comment"`
	IsActive        *bool       `json:"is_active"`
	StudentIDs      []uuid.UUID `json:"student_ids"`
	SyncStudents    bool        `json:"sync_students"`
}

type GroupResponse struct {
	groupModel.GroupModel
	CurrentMonth  int         `json:"current_month"`
	CurrentCourse string      `json:"current_course"`
	StudentIDs    []uuid.UUID `json:"student_ids"`
	StudentCount  int         `json:"student_count"`
}
