// internals/features/academics/group/dto/month_lesson_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	groupModel "edcrm_backend/internals/features/academics/group/model"
)

type CreateMonthRequest struct {
	GroupID     uuid.UUID `json:"group_id" validate:"required"`
	Number      int       `json:"number" validate:"required,gte=1,lte=36"`
	Title       string    `json:"title" validate:"required,max=150"`
	Description *string   `json:"description"`
}

func (r *CreateMonthRequest) ToModel() groupModel.MonthModel {
	return groupModel.MonthModel{
		MonthGroupID:     r.GroupID,
		MonthNumber:      r.Number,
		MonthTitle:       r.Title,
		MonthDescription: r.Description,
	}
}

type UpdateMonthRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=150"`
	Description *string `json:"description"`
}

type CreateLessonRequest struct {
	MonthID              uuid.UUID  `json:"month_id" validate:"required"`
	Order                int        `json:"order" validate:"required,gte=1,lte=62"`
	Title                string     `json:"title" validate:"required,max=150"`
	Description          *string    `json:"description"`
	Date                 *time.Time `json:"date"`
	LessonLink           *string    `json:"lesson_link" validate:"omitempty,url"`
	RecordingLink        *string    `json:"recording_link" validate:"omitempty,url"`
	HomeworkLink         *string    `json:"homework_link" validate:"omitempty,url"`
	HomeworkDeadline     *time.Time `json:"homework_deadline"`
	HomeworkDescription  *string    `json:"homework_description"`
	HomeworkRequirements *string    `json:"homework_requirements"`
}

func (r *CreateLessonRequest) ToModel() groupModel.LessonModel {
	return groupModel.LessonModel{
		LessonMonthID:              r.MonthID,
		LessonOrder:                r.Order,
		LessonTitle:                r.Title,
		LessonDescription:          r.Description,
		LessonDate:                 r.Date,
		LessonLink:                 r.LessonLink,
		LessonRecordingLink:        r.RecordingLink,
		LessonHomeworkLink:         r.HomeworkLink,
		LessonHomeworkDeadline:     r.HomeworkDeadline,
		LessonHomeworkDescription:  r.HomeworkDescription,
		LessonHomeworkRequirements: r.HomeworkRequirements,
	}
}

type UpdateLessonRequest struct {
	Title                *string    `json:"title" validate:"omitempty,max=150"`
	Description          *string    `json:"description"`
	Date                 *time.Time `json:"date"`
	LessonLink           *string    `json:"lesson_link" validate:"omitempty,url"`
	RecordingLink        *string    `json:"recording_link" validate:"omitempty,url"`
	HomeworkLink         *string    `json:"homework_link" validate:"omitempty,url"`
	HomeworkDeadline     *time.Time `json:"homework_deadline"`
	HomeworkDescription  *string    `json:"homework_description"`
	HomeworkRequirements *string    `json:"homework_requirements"`
}
