// internals/features/finance/report/controller/report_controller.go
package controller

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edcrm_backend/internals/configs"
	reportDTO "edcrm_backend/internals/features/finance/report/dto"
	reportModel "edcrm_backend/internals/features/finance/report/model"
	reportService "edcrm_backend/internals/features/finance/report/service"
	helper "edcrm_backend/internals/helpers"
)

type ReportController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Mailer   reportService.Mailer
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{
		DB:       db,
		Validate: validator.New(),
		Mailer:   reportService.NewMailerFromEnv(),
	}
}

// GET /reports
func (ctrl *ReportController) List(c *fiber.Ctx) error {
	var reports []reportModel.FinancialReportModel
	if err := ctrl.DB.Order("report_generated_at DESC").Find(&reports).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load reports")
	}
	return helper.JsonList(c, "reports", reports, nil)
}

// POST /generate-report
// The window is resolved from the report type; custom carries explicit
// dates. The record plus its payment summary come back together.
func (ctrl *ReportController) Generate(c *fiber.Ctx) error {
	var req reportDTO.GenerateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	start, end, err := ctrl.resolveWindow(&req)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	report := reportModel.FinancialReportModel{
		ReportType:      reportModel.ReportType(req.ReportType),
		ReportStartDate: start,
		ReportEndDate:   end,
	}
	if err := ctrl.DB.Create(&report).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to save report")
	}

	summary, err := reportService.PaymentsSummaryFor(ctrl.DB, start, end)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to summarize payments")
	}
	return helper.JsonCreated(c, "report generated", fiber.Map{
		"report":  report,
		"summary": summary,
	})
}

// POST /reports/send
// Renders the report PDFs and mails them to the manager. Delivery
// failure is reported but never touches the stored data.
func (ctrl *ReportController) SendReports(c *fiber.Ctx) error {
	if configs.ManagerEmail == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "MANAGER_EMAIL is not configured")
	}
	now := time.Now()
	year := now.Year()

	attachments := []reportService.Attachment{}

	if data, err := ctrl.monthlyIncomePDF(year); err == nil {
		attachments = append(attachments, reportService.Attachment{
			Filename: fmt.Sprintf("monthly-income-%d.pdf", year), Content: data,
		})
	} else {
		log.Printf("[ERROR] render monthly income pdf: %v", err)
	}

	start := time.Date(year, 1, 1, 0, 0, 0, 0, now.Location())
	if data, err := ctrl.teacherWorkloadPDF(start, now); err == nil {
		attachments = append(attachments, reportService.Attachment{
			Filename: "teacher-workload.pdf", Content: data,
		})
	} else {
		log.Printf("[ERROR] render teacher workload pdf: %v", err)
	}
	if data, err := ctrl.popularDirectionsPDF(start, now); err == nil {
		attachments = append(attachments, reportService.Attachment{
			Filename: "popular-courses.pdf", Content: data,
		})
	} else {
		log.Printf("[ERROR] render popular courses pdf: %v", err)
	}

	if len(attachments) == 0 {
		return helper.JsonError(c, fiber.StatusInternalServerError, "no report could be rendered")
	}

	subject := "EdCRM reports " + now.Format("2006-01-02")
	body := "Attached are the current financial and academic reports."
	if err := ctrl.Mailer.Send(configs.ManagerEmail, subject, body, attachments); err != nil {
		log.Printf("[ERROR] report mail-out: %v", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "report mail could not be delivered")
	}
	return helper.JsonOK(c, "reports sent", fiber.Map{
		"recipient":   configs.ManagerEmail,
		"attachments": len(attachments),
	})
}

func (ctrl *ReportController) resolveWindow(req *reportDTO.GenerateReportRequest) (time.Time, time.Time, error) {
	if req.ReportType == string(reportModel.ReportCustom) {
		if req.StartDate == nil || req.EndDate == nil {
			return time.Time{}, time.Time{}, fmt.Errorf("custom reports need start_date and end_date")
		}
		start, err := time.Parse(helper.DateLayout, *req.StartDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start_date")
		}
		end, err := time.Parse(helper.DateLayout, *req.EndDate)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end_date")
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, fmt.Errorf("end_date must not be before start_date")
		}
		return start, end, nil
	}
	return helper.ResolveReportWindow(req.ReportType, time.Now())
}
