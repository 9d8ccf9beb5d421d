// internals/features/scheduling/controller/classroom_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	scheduleDTO "edcrm_backend/internals/features/scheduling/dto"
	scheduleModel "edcrm_backend/internals/features/scheduling/model"
	helper "edcrm_backend/internals/helpers"
)

type ClassroomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassroomController(db *gorm.DB) *ClassroomController {
	return &ClassroomController{DB: db, Validate: validator.New()}
}

// GET /classrooms
func (ctrl *ClassroomController) List(c *fiber.Ctx) error {
	var rooms []scheduleModel.ClassroomModel
	if err := ctrl.DB.Order("classroom_number ASC").Find(&rooms).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load classrooms")
	}
	return helper.JsonList(c, "classrooms", rooms, nil)
}

// POST /classrooms
func (ctrl *ClassroomController) Create(c *fiber.Ctx) error {
	var req scheduleDTO.CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	req.Number = strings.TrimSpace(req.Number)
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	room := req.ToModel()
	if err := ctrl.DB.Create(&room).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "classroom number already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create classroom")
	}
	return helper.JsonCreated(c, "classroom created", room)
}

// PATCH /classrooms/:id
func (ctrl *ClassroomController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid classroom id")
	}
	var req scheduleDTO.UpdateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	var room scheduleModel.ClassroomModel
	if err := ctrl.DB.First(&room, "classroom_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "classroom not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load classroom")
	}
	if req.Number != nil {
		room.ClassroomNumber = strings.TrimSpace(*req.Number)
	}
	if req.Capacity != nil {
		room.ClassroomCapacity = *req.Capacity
	}
	if err := ctrl.DB.Save(&room).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update classroom")
	}
	return helper.JsonUpdated(c, "classroom updated", room)
}

// DELETE /classrooms/:id
func (ctrl *ClassroomController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid classroom id")
	}
	res := ctrl.DB.Delete(&scheduleModel.ClassroomModel{}, "classroom_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete classroom")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "classroom not found")
	}
	return helper.JsonDeleted(c, "classroom deleted", fiber.Map{"classroom_id": id})
}
