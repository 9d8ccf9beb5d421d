// internals/features/finance/report/model/report_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReportType string

const (
	ReportDaily   ReportType = "daily"
	ReportWeekly  ReportType = "weekly"
	ReportMonthly ReportType = "monthly"
	ReportYearly  ReportType = "yearly"
	ReportCustom  ReportType = "custom"
)

func ValidReportType(s string) bool {
	switch ReportType(s) {
	case ReportDaily, ReportWeekly, ReportMonthly, ReportYearly, ReportCustom:
		return true
	}
	return false
}

// FinancialReportModel records that a report was generated for a
// window. PDF rendering and mail delivery never roll this back.
type FinancialReportModel struct {
	ReportID          uuid.UUID  `gorm:"column:report_id;type:uuid;primaryKey" json:"report_id"`
	ReportType        ReportType `gorm:"column:report_type;type:varchar(10);not null;index" json:"report_type"`
	ReportStartDate   time.Time  `gorm:"column:report_start_date;type:date;not null" json:"report_start_date"`
	ReportEndDate     time.Time  `gorm:"column:report_end_date;type:date;not null" json:"report_end_date"`
	ReportGeneratedAt time.Time  `gorm:"column:report_generated_at;not null;autoCreateTime" json:"report_generated_at"`
}

func (FinancialReportModel) TableName() string { return "financial_reports" }

func (m *FinancialReportModel) BeforeCreate(tx *gorm.DB) error {
	if m.ReportID == uuid.Nil {
		m.ReportID = uuid.New()
	}
	return nil
}

// DiscountRegulationModel is read-mostly reference data shown to
// managers when they set invoice discounts.
type DiscountRegulationModel struct {
	DiscountRegulationID          uuid.UUID `gorm:"column:discount_regulation_id;type:uuid;primaryKey" json:"discount_regulation_id"`
	DiscountRegulationTitle       string    `gorm:"column:discount_regulation_title;type:varchar(150);not null" json:"discount_regulation_title"`
	DiscountRegulationPercent     int       `gorm:"column:discount_regulation_percent;not null" json:"discount_regulation_percent"`
	DiscountRegulationDescription *string   `gorm:"column:discount_regulation_description;type:text" json:"discount_regulation_description,omitempty"`
	DiscountRegulationCreatedAt   time.Time `gorm:"column:discount_regulation_created_at;not null;autoCreateTime" json:"discount_regulation_created_at"`
	DiscountRegulationUpdatedAt   time.Time `gorm:"column:discount_regulation_updated_at;not null;autoUpdateTime" json:"discount_regulation_updated_at"`
}

func (DiscountRegulationModel) TableName() string { return "discount_regulations" }

func (m *DiscountRegulationModel) BeforeCreate(tx *gorm.DB) error {
	if m.DiscountRegulationID == uuid.Nil {
		m.DiscountRegulationID = uuid.New()
	}
	return nil
}
