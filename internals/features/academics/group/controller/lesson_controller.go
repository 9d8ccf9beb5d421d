// internals/features/academics/group/controller/lesson_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	groupDTO "edcrm_backend/internals/features/academics/group/dto"
	groupModel "edcrm_backend/internals/features/academics/group/model"
	groupService "edcrm_backend/internals/features/academics/group/service"
	helper "edcrm_backend/internals/helpers"
)

type LessonController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLessonController(db *gorm.DB) *LessonController {
	return &LessonController{DB: db, Validate: validator.New()}
}

// GET /lessons?month_id=
func (ctrl *LessonController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&groupModel.LessonModel{})
	if v := c.Query("month_id"); v != "" {
		q = q.Where("lesson_month_id = ?", v)
	}
	var lessons []groupModel.LessonModel
	if err := q.Order("lesson_order ASC").Find(&lessons).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load lessons")
	}
	return helper.JsonList(c, "lessons", lessons, nil)
}

// GET /lessons/:id
func (ctrl *LessonController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid lesson id")
	}
	var lesson groupModel.LessonModel
	if err := ctrl.DB.First(&lesson, "lesson_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "lesson not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load lesson")
	}
	return helper.JsonOK(c, "lesson", lesson)
}

// POST /lessons
// Tracking rows for every current group member are provisioned in the
// same transaction.
func (ctrl *LessonController) Create(c *fiber.Ctx) error {
	var req groupDTO.CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var month groupModel.MonthModel
	if err := ctrl.DB.First(&month, "month_id = ?", req.MonthID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "month_id does not exist")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load month")
	}

	lesson := req.ToModel()
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&lesson).Error; err != nil {
			return err
		}
		return groupService.EnsureForLesson(tx, month.MonthGroupID, lesson.LessonID)
	})
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "this month already has that lesson order")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create lesson")
	}
	return helper.JsonCreated(c, "lesson created", lesson)
}

// PATCH /lessons/:id
func (ctrl *LessonController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid lesson id")
	}
	var req groupDTO.UpdateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	var lesson groupModel.LessonModel
	if err := ctrl.DB.First(&lesson, "lesson_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "lesson not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load lesson")
	}
	applyLessonUpdate(&lesson, &req)
	if err := ctrl.DB.Save(&lesson).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update lesson")
	}
	return helper.JsonUpdated(c, "lesson updated", lesson)
}

// DELETE /lessons/:id
func (ctrl *LessonController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid lesson id")
	}
	res := ctrl.DB.Delete(&groupModel.LessonModel{}, "lesson_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete lesson")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "lesson not found")
	}
	return helper.JsonDeleted(c, "lesson deleted", fiber.Map{"lesson_id": id})
}

func applyLessonUpdate(l *groupModel.LessonModel, req *groupDTO.UpdateLessonRequest) {
	if req.Title != nil {
		l.LessonTitle = *req.Title
	}
	if req.Description != nil {
		l.LessonDescription = req.Description
	}
	if req.Date != nil {
		l.LessonDate = req.Date
	}
	if req.LessonLink != nil {
		l.LessonLink = req.LessonLink
	}
	if req.RecordingLink != nil {
		l.LessonRecordingLink = req.RecordingLink
	}
	if req.HomeworkLink != nil {
		l.LessonHomeworkLink = req.HomeworkLink
	}
	if req.HomeworkDeadline != nil {
		l.LessonHomeworkDeadline = req.HomeworkDeadline
	}
	if req.HomeworkDescription != nil {
		l.LessonHomeworkDescription = req.HomeworkDescription
	}
	if req.HomeworkRequirements != nil {
		l.LessonHomeworkRequirements = req.HomeworkRequirements
	}
}
