// internals/features/scheduling/model/classroom_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassroomModel struct {
	ClassroomID        uuid.UUID      `gorm:"column:classroom_id;type:uuid;primaryKey" json:"classroom_id"`
	ClassroomNumber    string         `gorm:"column:classroom_number;type:varchar(20);not null;uniqueIndex" json:"classroom_number"`
	ClassroomCapacity  int            `gorm:"column:classroom_capacity;not null;default:0" json:"classroom_capacity"`
	ClassroomCreatedAt time.Time      `gorm:"column:classroom_created_at;not null;autoCreateTime" json:"classroom_created_at"`
	ClassroomUpdatedAt time.Time      `gorm:"column:classroom_updated_at;not null;autoUpdateTime" json:"classroom_updated_at"`
	ClassroomDeletedAt gorm.DeletedAt `gorm:"column:classroom_deleted_at;index" json:"classroom_deleted_at,omitempty"`
}

func (ClassroomModel) TableName() string { return "classrooms" }

func (m *ClassroomModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassroomID == uuid.Nil {
		m.ClassroomID = uuid.New()
	}
	return nil
}
