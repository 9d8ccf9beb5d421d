// internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"edcrm_backend/internals/constants"
	userDTO "edcrm_backend/internals/features/users/user/dto"
	userModel "edcrm_backend/internals/features/users/user/model"
	helper "edcrm_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

var userSortColumns = map[string]string{
	"created_at": "user_created_at",
	"username":   "user_username",
	"first_name": "user_first_name",
	"role":       "user_role",
}

// GET /users?role=&is_active=&search=
func (ctrl *UserController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&userModel.UserModel{})
	if role := c.Query("role"); role != "" {
		q = q.Where("user_role = ?", role)
	}
	if v := c.Query("is_active"); v != "" {
		q = q.Where("user_is_active = ?", v == "true")
	}
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"lower(user_first_name) LIKE ? OR lower(user_last_name) LIKE ? OR lower(user_username) LIKE ? OR user_phone LIKE ?",
			like, like, like, "%"+s+"%",
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count users")
	}

	var users []userModel.UserModel
	if err := q.Order(p.SafeOrderClause(userSortColumns, "created_at")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load users")
	}

	return helper.JsonList(c, "users", userDTO.FromModels(users), helper.BuildPagination(total, p))
}

// GET /users/:id
func (ctrl *UserController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load user")
	}
	return helper.JsonOK(c, "user", userDTO.FromModel(&user))
}

// POST /users
func (ctrl *UserController) Create(c *fiber.Ctx) error {
	var req userDTO.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	req.Username = strings.TrimSpace(req.Username)
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var cnt int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("lower(user_username) = lower(?)", req.Username).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check username")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "username already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	user := req.ToModel(string(hash))
	if err := ctrl.DB.Create(&user).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "username already taken")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create user")
	}
	return helper.JsonCreated(c, "user created", userDTO.FromModel(&user))
}

// PATCH /users/:id
func (ctrl *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}
	var req userDTO.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load user")
	}

	applyUserUpdate(&user, &req)
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
		}
		user.UserPassword = string(hash)
	}

	// Save (not Updates) so the left-date hook sees the final state.
	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update user")
	}
	return helper.JsonUpdated(c, "user updated", userDTO.FromModel(&user))
}

// DELETE /users/:id deactivates the account instead of removing the row.
func (ctrl *UserController) Deactivate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid user id")
	}
	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load user")
	}
	user.UserIsActive = false
	if err := ctrl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to deactivate user")
	}
	return helper.JsonDeleted(c, "user deactivated", userDTO.FromModel(&user))
}

func applyUserUpdate(u *userModel.UserModel, req *userDTO.UpdateUserRequest) {
	if req.FirstName != nil {
		u.UserFirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.UserLastName = *req.LastName
	}
	if req.Phone != nil {
		u.UserPhone = req.Phone
	}
	if req.Telegram != nil {
		u.UserTelegram = req.Telegram
	}
	if req.Email != nil {
		u.UserEmail = req.Email
	}
	if req.Age != nil {
		u.UserAge = req.Age
	}
	if req.Role != nil {
		if role, ok := constants.ParseRole(*req.Role); ok {
			u.UserRole = role
		}
	}
	if req.IsActive != nil {
		u.UserIsActive = *req.IsActive
	}
}
