// internals/features/academics/group/controller/month_controller.go
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
	helper "edcrm_backend/internals/helpers"
)

type MonthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewMonthController(db *gorm.DB) *MonthController {
	return &MonthController{DB: db, Validate: validator.New()}
}

// GET /months?group_id=
func (ctrl *MonthController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&groupModel.MonthModel{})
	if v := c.Query("group_id"); v != "" {
		q = q.Where("month_group_id = ?", v)
	}
	var months []groupModel.MonthModel
	if err := q.Order("month_number ASC").Find(&months).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load months")
	}
	return helper.JsonList(c, "months", months, nil)
}

// GET /months/:id (lessons preloaded)
func (ctrl *MonthController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid month id")
	}
	var month groupModel.MonthModel
	if err := ctrl.DB.
		Preload("Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("lesson_order ASC") }).
		First(&month, "month_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "month not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load month")
	}
	return helper.JsonOK(c, "month", month)
}

// POST /months
func (ctrl *MonthController) Create(c *fiber.Ctx) error {
	var req groupDTO.CreateMonthRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	month := req.ToModel()
	if err := ctrl.DB.Create(&month).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "this group already has that month number")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create month")
	}
	return helper.JsonCreated(c, "month created", month)
}

// PATCH /months/:id
func (ctrl *MonthController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid month id")
	}
	var req groupDTO.UpdateMonthRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	var month groupModel.MonthModel
	if err := ctrl.DB.First(&month, "month_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "month not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load month")
	}
	if req.Title != nil {
		month.MonthTitle = *req.Title
	}
	if req.Description != nil {
		month.MonthDescription = req.Description
	}
	if err := ctrl.DB.Save(&month).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update month")
	}
	return helper.JsonUpdated(c, "month updated", month)
}

// DELETE /months/:id
func (ctrl *MonthController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid month id")
	}
	res := ctrl.DB.Delete(&groupModel.MonthModel{}, "month_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete month")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "month not found")
	}
	return helper.JsonDeleted(c, "month deleted", fiber.Map{"month_id": id})
}
