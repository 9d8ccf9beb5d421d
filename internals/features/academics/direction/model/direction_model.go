// internals/features/academics/direction/model/direction_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DirectionModel is a study direction (course track) groups belong to.
type DirectionModel struct {
	DirectionID          uuid.UUID      `gorm:"column:direction_id;type:uuid;primaryKey" json:"direction_id"`
	DirectionName        string         `gorm:"column:direction_name;type:varchar(120);not null;uniqueIndex" json:"direction_name"`
	DirectionDescription *string        `gorm:"column:direction_description;type:text" json:"direction_description,omitempty"`
	DirectionCreatedAt   time.Time      `gorm:"column:direction_created_at;not null;autoCreateTime" json:"direction_created_at"`
	DirectionUpdatedAt   time.Time      `gorm:"column:direction_updated_at;not null;autoUpdateTime" json:"direction_updated_at"`
	DirectionDeletedAt   gorm.DeletedAt `gorm:"column:direction_deleted_at;index" json:"direction_deleted_at,omitempty"`
}

func (DirectionModel) TableName() string { return "directions" }

func (d *DirectionModel) BeforeCreate(tx *gorm.DB) error {
	if d.DirectionID == uuid.Nil {
		d.DirectionID = uuid.New()
	}
	return nil
}
