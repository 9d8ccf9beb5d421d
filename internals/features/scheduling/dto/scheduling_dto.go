// internals/features/scheduling/dto/scheduling_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	scheduleModel "edcrm_backend/internals/features/scheduling/model"
)

type CreateClassroomRequest struct {
	Number   string `json:"number" validate:"required,max=20"`
	Capacity int    `json:"capacity" validate:"omitempty,gte=0,lte=1000"`
}

func (r *CreateClassroomRequest) ToModel() scheduleModel.ClassroomModel {
	return scheduleModel.ClassroomModel{
		ClassroomNumber:   r.Number,
		ClassroomCapacity: r.Capacity,
	}
}

type UpdateClassroomRequest struct {
	Number   *string `json:"number" validate:"omitempty,max=20"`
	Capacity *int    `json:"capacity" validate:"omitempty,gte=0,lte=1000"`
}

type CreateScheduleRequest struct {
	ClassroomID uuid.UUID `json:"classroom_id" validate:"required"`
	TeacherID   uuid.UUID `json:"teacher_id" validate:"required"`
	GroupID     uuid.UUID `json:"group_id" validate:"required"`
	Date        string    `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string    `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string    `json:"end_time" validate:"required,datetime=15:04"`
	Note        *string   `json:"note"`
}

func (r *CreateScheduleRequest) ToModel(date time.Time) scheduleModel.ScheduleModel {
	return scheduleModel.ScheduleModel{
		ScheduleClassroomID: r.ClassroomID,
		ScheduleTeacherID:   r.TeacherID,
		ScheduleGroupID:     r.GroupID,
		ScheduleDate:        date,
		ScheduleStartTime:   r.StartTime,
		ScheduleEndTime:     r.EndTime,
		ScheduleNote:        r.Note,
	}
}

type UpdateScheduleRequest struct {
	ClassroomID *uuid.UUID `json:"classroom_id"`
	TeacherID   *uuid.UUID `json:"teacher_id"`
	GroupID     *uuid.UUID `json:"group_id"`
	Date        *string    `json:"date" validate:"omitempty,datetime=2006-01-02"`
	StartTime   *string    `json:"start_time" validate:"omitempty,datetime=15:04"`
	EndTime     *string    `json:"end_time" validate:"omitempty,datetime=15:04"`
	Note        *string    `json:"note"`
}
