// internals/features/finance/report/controller/discount_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	reportDTO "edcrm_backend/internals/features/finance/report/dto"
	reportModel "edcrm_backend/internals/features/finance/report/model"
	helper "edcrm_backend/internals/helpers"
)

type DiscountController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDiscountController(db *gorm.DB) *DiscountController {
	return &DiscountController{DB: db, Validate: validator.New()}
}

// GET /discount-regulations
func (ctrl *DiscountController) List(c *fiber.Ctx) error {
	var rows []reportModel.DiscountRegulationModel
	if err := ctrl.DB.Order("discount_regulation_percent ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load discount regulations")
	}
	return helper.JsonList(c, "discount regulations", rows, nil)
}

// POST /discount-regulations
func (ctrl *DiscountController) Create(c *fiber.Ctx) error {
	var req reportDTO.CreateDiscountRegulationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	row := reportModel.DiscountRegulationModel{
		DiscountRegulationTitle:       req.Title,
		DiscountRegulationPercent:     req.Percent,
		DiscountRegulationDescription: req.Description,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create discount regulation")
	}
	return helper.JsonCreated(c, "discount regulation created", row)
}

// PATCH /discount-regulations/:id
func (ctrl *DiscountController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid discount regulation id")
	}
	var req reportDTO.UpdateDiscountRegulationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	var row reportModel.DiscountRegulationModel
	if err := ctrl.DB.First(&row, "discount_regulation_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "discount regulation not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load discount regulation")
	}
	if req.Title != nil {
		row.DiscountRegulationTitle = *req.Title
	}
	if req.Percent != nil {
		row.DiscountRegulationPercent = *req.Percent
	}
	if req.Description != nil {
		row.DiscountRegulationDescription = req.Description
	}
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update discount regulation")
	}
	return helper.JsonUpdated(c, "discount regulation updated", row)
}

// DELETE /discount-regulations/:id
func (ctrl *DiscountController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid discount regulation id")
	}
	res := ctrl.DB.Delete(&reportModel.DiscountRegulationModel{}, "discount_regulation_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete discount regulation")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "discount regulation not found")
	}
	return helper.JsonDeleted(c, "discount regulation deleted", fiber.Map{"discount_regulation_id": id})
}
