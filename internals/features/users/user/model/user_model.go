// internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edcrm_backend/internals/constants"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`

	UserUsername  string  `gorm:"column:user_username;type:varchar(150);not null;uniqueIndex" json:"user_username"`
	UserPassword  string  `gorm:"column:user_password;type:varchar(250);not null" json:"-"`
	UserFirstName string  `gorm:"column:user_first_name;type:varchar(100);not null" json:"user_first_name"`
	UserLastName  string  `gorm:"column:user_last_name;type:varchar(100);not null" json:"user_last_name"`
	UserPhone     *string `gorm:"column:user_phone;type:varchar(30)" json:"user_phone,omitempty"`
	UserTelegram  *string `gorm:"column:user_telegram;type:varchar(100)" json:"user_telegram,omitempty"`
	UserEmail     *string `gorm:"column:user_email;type:varchar(150)" json:"user_email,omitempty"`
	UserAge       *int    `gorm:"column:user_age" json:"user_age,omitempty"`
	UserAvatarURL *string `gorm:"column:user_avatar_url;type:text" json:"user_avatar_url,omitempty"`

	UserRole     constants.Role `gorm:"column:user_role;type:varchar(20);not null;index" json:"user_role"`
	UserIsActive bool           `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`
	// Set when the account is deactivated, cleared on reactivation.
	UserLeftDate *time.Time `gorm:"column:user_left_date" json:"user_left_date,omitempty"`

	UserDateJoined time.Time      `gorm:"column:user_date_joined;not null;autoCreateTime" json:"user_date_joined"`
	UserCreatedAt  time.Time      `gorm:"column:user_created_at;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt  time.Time      `gorm:"column:user_updated_at;not null;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt  gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) FullName() string {
	if u.UserLastName == "" {
		return u.UserFirstName
	}
	return u.UserFirstName + " " + u.UserLastName
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}

// BeforeSave keeps left date in sync with the active flag.
func (u *UserModel) BeforeSave(tx *gorm.DB) error {
	if !u.UserIsActive {
		if u.UserLeftDate == nil {
			now := time.Now()
			u.UserLeftDate = &now
		}
	} else {
		u.UserLeftDate = nil
	}
	return nil
}
