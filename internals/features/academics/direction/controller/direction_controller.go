// internals/features/academics/direction/controller/direction_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	directionDTO "edcrm_backend/internals/features/academics/direction/dto"
	directionModel "edcrm_backend/internals/features/academics/direction/model"
	helper "edcrm_backend/internals/helpers"
)

type DirectionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDirectionController(db *gorm.DB) *DirectionController {
	return &DirectionController{DB: db, Validate: validator.New()}
}

// GET /directions
func (ctrl *DirectionController) List(c *fiber.Ctx) error {
	var directions []directionModel.DirectionModel
	if err := ctrl.DB.Order("direction_name ASC").Find(&directions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load directions")
	}
	return helper.JsonList(c, "directions", directions, nil)
}

// GET /directions/:id
func (ctrl *DirectionController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid direction id")
	}
	var direction directionModel.DirectionModel
	if err := ctrl.DB.First(&direction, "direction_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "direction not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load direction")
	}
	return helper.JsonOK(c, "direction", direction)
}

// POST /directions
func (ctrl *DirectionController) Create(c *fiber.Ctx) error {
	var req directionDTO.CreateDirectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	direction := req.ToModel()
	if err := ctrl.DB.Create(&direction).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "direction name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create direction")
	}
	return helper.JsonCreated(c, "direction created", direction)
}

// PATCH /directions/:id
func (ctrl *DirectionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid direction id")
	}
	var req directionDTO.UpdateDirectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var direction directionModel.DirectionModel
	if err := ctrl.DB.First(&direction, "direction_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "direction not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load direction")
	}
	if req.Name != nil {
		direction.DirectionName = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		direction.DirectionDescription = req.Description
	}
	if err := ctrl.DB.Save(&direction).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update direction")
	}
	return helper.JsonUpdated(c, "direction updated", direction)
}

// DELETE /directions/:id (soft delete)
func (ctrl *DirectionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid direction id")
	}
	res := ctrl.DB.Delete(&directionModel.DirectionModel{}, "direction_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete direction")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "direction not found")
	}
	return helper.JsonDeleted(c, "direction deleted", fiber.Map{"direction_id": id})
}
