// internals/features/academics/attendance/controller/attendance_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceDTO "edcrm_backend/internals/features/academics/attendance/dto"
	attendanceModel "edcrm_backend/internals/features/academics/attendance/model"
	groupService "edcrm_backend/internals/features/academics/group/service"
	helper "edcrm_backend/internals/helpers"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validate: validator.New()}
}

// GET /attendances?lesson_id=&student_id=
func (ctrl *AttendanceController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&attendanceModel.AttendanceModel{})
	if v := c.Query("lesson_id"); v != "" {
		q = q.Where("attendance_lesson_id = ?", v)
	}
	if v := c.Query("student_id"); v != "" {
		q = q.Where("attendance_student_id = ?", v)
	}
	var rows []attendanceModel.AttendanceModel
	if err := q.Order("attendance_created_at ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load attendances")
	}
	return helper.JsonList(c, "attendances", rows, nil)
}

// POST /attendances/mark
// The row is provisioned if it somehow does not exist yet, then updated.
func (ctrl *AttendanceController) Mark(c *fiber.Ctx) error {
	var req attendanceDTO.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var row attendanceModel.AttendanceModel
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := groupService.EnsurePair(tx, req.LessonID, req.StudentID); err != nil {
			return err
		}
		if err := tx.Where("attendance_lesson_id = ? AND attendance_student_id = ?", req.LessonID, req.StudentID).
			First(&row).Error; err != nil {
			return err
		}
		row.AttendanceStatus = attendanceModel.AttendanceStatus(req.Status)
		return tx.Save(&row).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to mark attendance")
	}
	return helper.JsonUpdated(c, "attendance marked", row)
}

// GET /groups/:id/grades: matrix of attendance + homework per member
func (ctrl *AttendanceController) GroupGrades(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid group id")
	}

	type cellRow struct {
		LessonID    uuid.UUID
		LessonOrder int
		MonthNumber int
		StudentID   uuid.UUID
		AttStatus   string
		HwStatus    string
		HwScore     *int
	}
	var rows []cellRow
	err = ctrl.DB.
		Table("attendances").
		Select(`lessons.lesson_id AS lesson_id,
			lessons.lesson_order AS lesson_order,
			months.month_number AS month_number,
			attendances.attendance_student_id AS student_id,
			attendances.attendance_status AS att_status,
			homework_submissions.homework_status AS hw_status,
			homework_submissions.homework_score AS hw_score`).
		Joins("JOIN lessons ON lessons.lesson_id = attendances.attendance_lesson_id").
		Joins("JOIN months ON months.month_id = lessons.lesson_month_id").
		Joins(`LEFT JOIN homework_submissions
			ON homework_submissions.homework_lesson_id = attendances.attendance_lesson_id
			AND homework_submissions.homework_student_id = attendances.attendance_student_id`).
		Where("months.month_group_id = ?", groupID).
		Order("months.month_number ASC, lessons.lesson_order ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load grades")
	}

	byStudent := map[uuid.UUID][]attendanceDTO.GradeCell{}
	order := []uuid.UUID{}
	for _, r := range rows {
		if _, seen := byStudent[r.StudentID]; !seen {
			order = append(order, r.StudentID)
		}
		byStudent[r.StudentID] = append(byStudent[r.StudentID], attendanceDTO.GradeCell{
			LessonID:         r.LessonID,
			LessonOrder:      r.LessonOrder,
			MonthNumber:      r.MonthNumber,
			AttendanceStatus: r.AttStatus,
			HomeworkStatus:   r.HwStatus,
			HomeworkScore:    r.HwScore,
		})
	}
	out := make([]attendanceDTO.StudentGradesRow, 0, len(order))
	for _, studentID := range order {
		out = append(out, attendanceDTO.StudentGradesRow{
			StudentID: studentID,
			Cells:     byStudent[studentID],
		})
	}
	return helper.JsonOK(c, "group grades", out)
}

// shared lookup used by the homework controller too
func findSubmission(db *gorm.DB, id uuid.UUID) (*attendanceModel.HomeworkSubmissionModel, error) {
	var hw attendanceModel.HomeworkSubmissionModel
	err := db.Preload("HomeworkFiles").First(&hw, "homework_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "homework submission not found")
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "failed to load homework submission")
	}
	return &hw, nil
}
