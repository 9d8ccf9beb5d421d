// internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"edcrm_backend/internals/constants"
	userModel "edcrm_backend/internals/features/users/user/model"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type CreateUserRequest struct {
	Username  string  `json:"username" validate:"required,min=3,max=150"`
	Password  string  `json:"password" validate:"required,min=6,max=128"`
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name" validate:"max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
	Telegram  *string `json:"telegram" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Age       *int    `json:"age" validate:"omitempty,gte=3,lte=120"`
	Role      string  `json:"role" validate:"required,oneof=admin manager teacher student"`
}

func (r *CreateUserRequest) ToModel(hashedPassword string) userModel.UserModel {
	role, _ := constants.ParseRole(r.Role)
	return userModel.UserModel{
		UserUsername:  r.Username,
		UserPassword:  hashedPassword,
		UserFirstName: r.FirstName,
		UserLastName:  r.LastName,
		UserPhone:     r.Phone,
		UserTelegram:  r.Telegram,
		UserEmail:     r.Email,
		UserAge:       r.Age,
		UserRole:      role,
		UserIsActive:  true,
	}
}

// All fields optional, only non-nil values are applied.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`
	Telegram  *string `json:"telegram" validate:"omitempty,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Age       *int    `json:"age" validate:"omitempty,gte=3,lte=120"`
	Role      *string `json:"role" validate:"omitempty,oneof=admin manager teacher student"`
	IsActive  *bool   `json:"is_active"`
	Password  *string `json:"password" validate:"omitempty,min=6,max=128"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6,max=128"`
}

type UserResponse struct {
	ID         uuid.UUID  `json:"id"`
	Username   string     `json:"username"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	FullName   string     `json:"full_name"`
	Phone      *string    `json:"phone,omitempty"`
	Telegram   *string    `json:"telegram,omitempty"`
	Email      *string    `json:"email,omitempty"`
	Age        *int       `json:"age,omitempty"`
	AvatarURL  *string    `json:"avatar_url,omitempty"`
	Role       string     `json:"role"`
	IsActive   bool       `json:"is_active"`
	LeftDate   *time.Time `json:"left_date,omitempty"`
	DateJoined time.Time  `json:"date_joined"`
}

func FromModel(m *userModel.UserModel) UserResponse {
	return UserResponse{
		ID:         m.UserID,
		Username:   m.UserUsername,
		FirstName:  m.UserFirstName,
		LastName:   m.UserLastName,
		FullName:   m.FullName(),
		Phone:      m.UserPhone,
		Telegram:   m.UserTelegram,
		Email:      m.UserEmail,
		Age:        m.UserAge,
		AvatarURL:  m.UserAvatarURL,
		Role:       string(m.UserRole),
		IsActive:   m.UserIsActive,
		LeftDate:   m.UserLeftDate,
		DateJoined: m.UserDateJoined,
	}
}

func FromModels(ms []userModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
