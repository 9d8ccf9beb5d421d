// internals/features/leads/model/lead_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeadStatus string

const (
	LeadNew        LeadStatus = "new"
	LeadInProgress LeadStatus = "in_progress"
	LeadRegistered LeadStatus = "registered"
	LeadRejected   LeadStatus = "rejected"
)

func ValidLeadStatus(s string) bool {
	switch LeadStatus(s) {
	case LeadNew, LeadInProgress, LeadRegistered, LeadRejected:
		return true
	}
	return false
}

// AllLeadStatuses keeps the funnel order stable for the stats endpoint.
var AllLeadStatuses = []LeadStatus{LeadNew, LeadInProgress, LeadRegistered, LeadRejected}

type LeadModel struct {
	LeadID     uuid.UUID  `gorm:"column:lead_id;type:uuid;primaryKey" json:"lead_id"`
	LeadName   string     `gorm:"column:lead_name;type:varchar(150);not null" json:"lead_name"`
	LeadPhone  string     `gorm:"column:lead_phone;type:varchar(30);not null;index" json:"lead_phone"`
	LeadEmail  *string    `gorm:"column:lead_email;type:varchar(150)" json:"lead_email,omitempty"`
	LeadCourse *string    `gorm:"column:lead_course;type:varchar(120)" json:"lead_course,omitempty"`
	LeadStatus LeadStatus `gorm:"column:lead_status;type:varchar(15);not null;default:new;index" json:"lead_status"`
	LeadSource *string    `gorm:"column:lead_source;type:varchar(100)" json:"lead_source,omitempty"`

	LeadComment         *string    `gorm:"column:lead_comment;type:text" json:"lead_comment,omitempty"`
	LeadNextContactDate *time.Time `gorm:"column:lead_next_contact_date;type:date" json:"lead_next_contact_date,omitempty"`

	LeadCreatedAt time.Time      `gorm:"column:lead_created_at;not null;autoCreateTime" json:"lead_created_at"`
	LeadUpdatedAt time.Time      `gorm:"column:lead_updated_at;not null;autoUpdateTime" json:"lead_updated_at"`
	LeadDeletedAt gorm.DeletedAt `gorm:"column:lead_deleted_at;index" json:"lead_deleted_at,omitempty"`
}

func (LeadModel) TableName() string { return "leads" }

func (m *LeadModel) BeforeCreate(tx *gorm.DB) error {
	if m.LeadID == uuid.Nil {
		m.LeadID = uuid.New()
	}
	if m.LeadStatus == "" {
		m.LeadStatus = LeadNew
	}
	return nil
}
