// internals/features/users/user/model/user_model_test.go
package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"edcrm_backend/internals/constants"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&UserModel{}))
	return db
}

func TestFullName(t *testing.T) {
	u := UserModel{UserFirstName: "Alice", UserLastName: "Smith"}
	assert.Equal(t, "Alice Smith", u.FullName())

	u.UserLastName = ""
	assert.Equal(t, "Alice", u.FullName())
}

func TestBeforeCreateAssignsID(t *testing.T) {
	db := openTestDB(t)
	u := UserModel{
		UserUsername:  "alice",
		UserPassword:  "x",
		UserFirstName: "Alice",
		UserLastName:  "Smith",
		UserRole:      constants.RoleStudent,
		UserIsActive:  true,
	}
	require.NoError(t, db.Create(&u).Error)
	assert.NotEqual(t, uuid.Nil, u.UserID)
}

func TestLeftDateFollowsActiveFlag(t *testing.T) {
	db := openTestDB(t)
	u := UserModel{
		UserUsername:  "bob",
		UserPassword:  "x",
		UserFirstName: "Bob",
		UserLastName:  "Jones",
		UserRole:      constants.RoleStudent,
		UserIsActive:  true,
	}
	require.NoError(t, db.Create(&u).Error)
	assert.Nil(t, u.UserLeftDate)

	u.UserIsActive = false
	require.NoError(t, db.Save(&u).Error)
	require.NotNil(t, u.UserLeftDate)
	firstLeft := *u.UserLeftDate

	// saving again while inactive keeps the original left date
	require.NoError(t, db.Save(&u).Error)
	require.NotNil(t, u.UserLeftDate)
	assert.True(t, firstLeft.Equal(*u.UserLeftDate))

	// reactivation clears it
	u.UserIsActive = true
	require.NoError(t, db.Save(&u).Error)
	assert.Nil(t, u.UserLeftDate)

	var got UserModel
	require.NoError(t, db.First(&got, "user_id = ?", u.UserID).Error)
	assert.Nil(t, got.UserLeftDate)
	assert.True(t, got.UserIsActive)
}
