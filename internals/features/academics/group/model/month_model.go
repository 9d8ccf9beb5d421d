// internals/features/academics/group/model/month_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MonthModel struct {
	MonthID          uuid.UUID `gorm:"column:month_id;type:uuid;primaryKey" json:"month_id"`
	MonthGroupID     uuid.UUID `gorm:"column:month_group_id;type:uuid;not null;uniqueIndex:uq_month_group_number;index" json:"month_group_id"`
	MonthNumber      int       `gorm:"column:month_number;not null;uniqueIndex:uq_month_group_number" json:"month_number"`
	MonthTitle       string    `gorm:"column:month_title;type:varchar(150);not null" json:"month_title"`
	MonthDescription *string   `gorm:"column:month_description;type:text" json:"month_description,omitempty"`
	MonthCreatedAt   time.Time `gorm:"column:month_created_at;not null;autoCreateTime" json:"month_created_at"`
	MonthUpdatedAt   time.Time `gorm:"column:month_updated_at;not null;autoUpdateTime" json:"month_updated_at"`

	Lessons []LessonModel `gorm:"foreignKey:LessonMonthID;references:MonthID" json:"lessons,omitempty"`
}

func (MonthModel) TableName() string { return "months" }

func (m *MonthModel) BeforeCreate(tx *gorm.DB) error {
	if m.MonthID == uuid.Nil {
		m.MonthID = uuid.New()
	}
	return nil
}
