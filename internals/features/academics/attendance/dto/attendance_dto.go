// internals/features/academics/attendance/dto/attendance_dto.go
package dto

import (
	"github.com/google/uuid"
)

type MarkAttendanceRequest struct {
	LessonID  uuid.UUID `json:"lesson_id" validate:"required"`
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=absent present online"`
}

type GradeHomeworkRequest struct {
	Status         string  `json:"status" validate:"required,oneof=not_done submitted accepted rejected"`
	Score          *int    `json:"score" validate:"omitempty,gte=0,lte=100"`
	TeacherComment *string `json:"teacher_comment"`
}

type SubmitHomeworkRequest struct {
	LessonID     uuid.UUID `json:"lesson_id" validate:"required"`
	ProjectLinks []string  `json:"project_links" validate:"omitempty,max=5,dive,url"`
}

// One row of the group grades matrix.
type GradeCell struct {
	LessonID         uuid.UUID `json:"lesson_id"`
	LessonOrder      int       `json:"lesson_order"`
	MonthNumber      int       `json:"month_number"`
	AttendanceStatus string    `json:"attendance_status"`
	HomeworkStatus   string    `json:"homework_status"`
	HomeworkScore    *int      `json:"homework_score,omitempty"`
}

type StudentGradesRow struct {
	StudentID uuid.UUID   `json:"student_id"`
	Cells     []GradeCell `json:"cells"`
}
