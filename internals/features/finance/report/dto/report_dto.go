// internals/features/finance/report/dto/report_dto.go
package dto

type GenerateReportRequest struct {
	ReportType string  `json:"report_type" validate:"required,oneof=daily weekly monthly yearly custom"`
	StartDate  *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate    *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type CreateDiscountRegulationRequest struct {
	Title       string  `json:"title" validate:"required,max=150"`
	Percent     int     `json:"percent" validate:"required,gte=1,lte=100"`
	Description *string `json:"description"`
}

type UpdateDiscountRegulationRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=150"`
	Percent     *int    `json:"percent" validate:"omitempty,gte=1,lte=100"`
	Description *string `json:"description"`
}
