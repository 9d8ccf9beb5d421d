// internals/features/academics/attendance/controller/homework_controller.go
package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	attendanceDTO "edcrm_backend/internals/features/academics/attendance/dto"
	attendanceModel "edcrm_backend/internals/features/academics/attendance/model"
	groupService "edcrm_backend/internals/features/academics/group/service"
	helper "edcrm_backend/internals/helpers"
)

type HomeworkController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewHomeworkController(db *gorm.DB) *HomeworkController {
	return &HomeworkController{DB: db, Validate: validator.New()}
}

// GET /homeworks?lesson_id=&student_id=&status=
func (ctrl *HomeworkController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&attendanceModel.HomeworkSubmissionModel{}).Preload("HomeworkFiles")
	if v := c.Query("lesson_id"); v != "" {
		q = q.Where("homework_lesson_id = ?", v)
	}
	if v := c.Query("student_id"); v != "" {
		q = q.Where("homework_student_id = ?", v)
	}
	if v := c.Query("status"); v != "" {
		if !attendanceModel.ValidHomeworkStatus(v) {
			return helper.JsonError(c, fiber.StatusBadRequest, "unknown homework status")
		}
		q = q.Where("homework_status = ?", v)
	}
	var rows []attendanceModel.HomeworkSubmissionModel
	if err := q.Order("homework_created_at ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load homework submissions")
	}
	return helper.JsonList(c, "homework submissions", rows, nil)
}

// GET /homeworks/:id
func (ctrl *HomeworkController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid homework id")
	}
	hw, ferr := findSubmission(ctrl.DB, id)
	if ferr != nil {
		return ferr
	}
	return helper.JsonOK(c, "homework submission", hw)
}

// PATCH /homeworks/:id/grade: teacher review
func (ctrl *HomeworkController) Grade(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid homework id")
	}
	var req attendanceDTO.GradeHomeworkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	hw, ferr := findSubmission(ctrl.DB, id)
	if ferr != nil {
		return ferr
	}
	hw.HomeworkStatus = attendanceModel.HomeworkStatus(req.Status)
	if req.Score != nil {
		hw.HomeworkScore = req.Score
	}
	if req.TeacherComment != nil {
		hw.HomeworkTeacherComment = req.TeacherComment
	}
	if err := ctrl.DB.Save(hw).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to grade homework")
	}
	return helper.JsonUpdated(c, "homework graded", hw)
}

// POST /homeworks/submit: the student hands in their own work.
// Accepts multipart (field "files") alongside the JSON fields.
func (ctrl *HomeworkController) Submit(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return err
	}
	var req attendanceDTO.SubmitHomeworkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var hw attendanceModel.HomeworkSubmissionModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := groupService.EnsurePair(tx, req.LessonID, studentID); err != nil {
			return err
		}
		if err := tx.Where("homework_lesson_id = ? AND homework_student_id = ?", req.LessonID, studentID).
			First(&hw).Error; err != nil {
			return err
		}
		now := time.Now()
		hw.HomeworkStatus = attendanceModel.HomeworkSubmitted
		hw.HomeworkSubmittedAt = &now
		if req.ProjectLinks != nil {
			hw.HomeworkProjectLinks = datatypes.NewJSONSlice(req.ProjectLinks)
		}
		return tx.Save(&hw).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to submit homework")
	}

	// optional attachments
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["files"] {
			url, uerr := helper.UploadHomeworkFile(fh)
			if uerr != nil {
				log.Printf("[ERROR] homework file upload: %v", uerr)
				return helper.JsonError(c, fiber.StatusBadRequest, "failed to store homework file")
			}
			file := attendanceModel.HomeworkFileModel{
				HomeworkFileHomeworkID: hw.HomeworkID,
				HomeworkFileURL:        url,
				HomeworkFileName:       fh.Filename,
			}
			if err := ctrl.DB.Create(&file).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "failed to save homework file")
			}
		}
	}

	out, ferr := findSubmission(ctrl.DB, hw.HomeworkID)
	if ferr != nil {
		return ferr
	}
	return helper.JsonUpdated(c, "homework submitted", out)
}
