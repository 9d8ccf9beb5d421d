// internals/features/users/user/controller/profile_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	userDTO "edcrm_backend/internals/features/users/user/dto"
	userModel "edcrm_backend/internals/features/users/user/model"
	helper "edcrm_backend/internals/helpers"
)

type ProfileController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db, Validate: validator.New()}
}

func (ctrl *ProfileController) currentUser(c *fiber.Ctx) (*userModel.UserModel, error) {
	id, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return nil, err
	}
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "user not found")
	}
	return &user, nil
}

// GET /profile
func (ctrl *ProfileController) Get(c *fiber.Ctx) error {
	user, err := ctrl.currentUser(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "profile", userDTO.FromModel(user))
}

// PATCH /profile (contact fields only, role/active stay admin-managed)
func (ctrl *ProfileController) Update(c *fiber.Ctx) error {
	user, err := ctrl.currentUser(c)
	if err != nil {
		return err
	}
	var req userDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	req.Role = nil
	req.IsActive = nil
	req.Password = nil
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	applyUserUpdate(user, &req)
	if err := ctrl.DB.Save(user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update profile")
	}
	return helper.JsonUpdated(c, "profile updated", userDTO.FromModel(user))
}

// POST /profile/change-password
func (ctrl *ProfileController) ChangePassword(c *fiber.Ctx) error {
	user, err := ctrl.currentUser(c)
	if err != nil {
		return err
	}
	var req userDTO.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.OldPassword)) != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "old password does not match")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
	}
	user.UserPassword = string(hash)
	if err := ctrl.DB.Save(user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to change password")
	}
	return helper.JsonUpdated(c, "password changed", nil)
}

// POST /profile/avatar (multipart form, field "avatar")
func (ctrl *ProfileController) UploadAvatar(c *fiber.Ctx) error {
	user, err := ctrl.currentUser(c)
	if err != nil {
		return err
	}
	fh, err := c.FormFile("avatar")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "avatar file is required")
	}
	url, err := helper.UploadAvatar(fh)
	if err != nil {
		log.Printf("[ERROR] avatar upload: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "failed to store avatar")
	}
	user.UserAvatarURL = &url
	if err := ctrl.DB.Save(user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to save avatar url")
	}
	return helper.JsonUpdated(c, "avatar updated", userDTO.FromModel(user))
}
