// internals/features/leads/dto/lead_dto.go
package dto

import (
	"time"

	leadModel "edcrm_backend/internals/features/leads/model"
)

type CreateLeadRequest struct {
	Name            string     `json:"name" validate:"required,max=150"`
	Phone           string     `json:"phone" validate:"required,max=30"`
	Email           *string    `json:"email" validate:"omitempty,email"`
	Course          *string    `json:"course" validate:"omitempty,max=120"`
	Source          *string    `json:"source" validate:"omitempty,max=100"`
	Comment         *string    `json:"comment"`
	NextContactDate *time.Time `json:"next_contact_date"`
}

func (r *CreateLeadRequest) ToModel() leadModel.LeadModel {
	return leadModel.LeadModel{
		LeadName:            r.Name,
		LeadPhone:           r.Phone,
		LeadEmail:           r.Email,
		LeadCourse:          r.Course,
		LeadSource:          r.Source,
		LeadComment:         r.Comment,
		LeadNextContactDate: r.NextContactDate,
		LeadStatus:          leadModel.LeadNew,
	}
}

type UpdateLeadRequest struct {
	Name            *string    `json:"name" validate:"omitempty,max=150"`
	Phone           *string    `json:"phone" validate:"omitempty,max=30"`
	Email           *string    `json:"email" validate:"omitempty,email"`
	Course          *string    `json:"course" validate:"omitempty,max=120"`
	Status          *string    `json:"status" validate:"omitempty,oneof=new in_progress registered rejected"`
	Source          *string    `json:"source" validate:"omitempty,max=100"`
	Comment         *string    `json:"comment"`
	NextContactDate *time.Time `json:"next_contact_date"`
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new in_progress registered rejected"`
}

type LeadStats struct {
	ByStatus map[string]int64 `json:"by_status"`
	Total    int64            `json:"total"`
}
