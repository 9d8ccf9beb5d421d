// internals/features/finance/report/controller/pdf_controller.go
package controller

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	payrollModel "edcrm_backend/internals/features/finance/payroll/model"
	reportModel "edcrm_backend/internals/features/finance/report/model"
	reportService "edcrm_backend/internals/features/finance/report/service"
	helper "edcrm_backend/internals/helpers"
)

func sendPDF(c *fiber.Ctx, filename string, data []byte) error {
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}

// GET /reports/monthly-income-pdf?year=
func (ctrl *ReportController) MonthlyIncomePDF(c *fiber.Ctx) error {
	year := time.Now().Year()
	if v := c.Query("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid year")
		}
		year = y
	}
	data, err := ctrl.monthlyIncomePDF(year)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to render pdf")
	}
	return sendPDF(c, fmt.Sprintf("monthly-income-%d.pdf", year), data)
}

// GET /reports/teacher-workload-pdf
func (ctrl *ReportController) TeacherWorkloadPDF(c *fiber.Ctx) error {
	now := time.Now()
	start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	data, err := ctrl.teacherWorkloadPDF(start, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to render pdf")
	}
	return sendPDF(c, "teacher-workload.pdf", data)
}

// GET /reports/popular-courses-pdf
func (ctrl *ReportController) PopularCoursesPDF(c *fiber.Ctx) error {
	now := time.Now()
	start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	data, err := ctrl.popularDirectionsPDF(start, now)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to render pdf")
	}
	return sendPDF(c, "popular-courses.pdf", data)
}

// GET /reports/expenses-pdf?from=&to=
func (ctrl *ReportController) ExpensesPDF(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&payrollModel.ExpenseModel{})
	if d, err := helper.ParseDateQuery(c.Query("from")); err == nil && d != nil {
		q = q.Where("expense_date >= ?", *d)
	}
	if d, err := helper.ParseDateQuery(c.Query("to")); err == nil && d != nil {
		q = q.Where("expense_date <= ?", *d)
	}
	var expenses []payrollModel.ExpenseModel
	if err := q.Order("expense_date ASC").Find(&expenses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load expenses")
	}
	rows := make([][]string, 0, len(expenses))
	for i := range expenses {
		rows = append(rows, []string{
			expenses[i].ExpenseDate.Format(helper.DateLayout),
			string(expenses[i].ExpenseCategory),
			expenses[i].ExpenseDescription,
			expenses[i].ExpenseAmount.StringFixed(2),
		})
	}
	data, err := reportService.RenderPDF(reportService.PDFTable{
		Title:   "Expenses",
		Headers: []string{"Date", "Category", "Description", "Amount"},
		Rows:    rows,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to render pdf")
	}
	return sendPDF(c, "expenses.pdf", data)
}

// GET /reports/teacher-payments-pdf
func (ctrl *ReportController) TeacherPaymentsPDF(c *fiber.Ctx) error {
	var payments []payrollModel.TeacherPaymentModel
	if err := ctrl.DB.Order("teacher_payment_date DESC").Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load teacher payments")
	}
	rows := make([][]string, 0, len(payments))
	for i := range payments {
		p := &payments[i]
		paidMark := "no"
		if p.TeacherPaymentIsPaid {
			paidMark = "yes"
		}
		rows = append(rows, []string{
			p.TeacherPaymentDate.Format(helper.DateLayout),
			p.TeacherPaymentTeacherID.String()[:8],
			strconv.Itoa(p.TeacherPaymentLessonsCount),
			p.TeacherPaymentAmount.StringFixed(2),
			p.Balance().StringFixed(2),
			paidMark,
		})
	}
	data, err := reportService.RenderPDF(reportService.PDFTable{
		Title:   "Teacher payments",
		Headers: []string{"Period", "Teacher", "Lessons", "Amount", "Balance", "Paid"},
		Rows:    rows,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to render pdf")
	}
	return sendPDF(c, "teacher-payments.pdf", data)
}

// GET /reports/financial-reports-pdf
func (ctrl *ReportController) FinancialReportsPDF(c *fiber.Ctx) error {
	var reports []reportModel.FinancialReportModel
	if err := ctrl.DB.Order("report_generated_at DESC").Find(&reports).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load reports")
	}
	rows := make([][]string, 0, len(reports))
	for i := range reports {
		r := &reports[i]
		rows = append(rows, []string{
			string(r.ReportType),
			r.ReportStartDate.Format(helper.DateLayout),
			r.ReportEndDate.Format(helper.DateLayout),
			r.ReportGeneratedAt.Format("2006-01-02 15:04"),
		})
	}
	data, err := reportService.RenderPDF(reportService.PDFTable{
		Title:   "Financial reports",
		Headers: []string{"Type", "Start", "End", "Generated"},
		Rows:    rows,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to render pdf")
	}
	return sendPDF(c, "financial-reports.pdf", data)
}

/* ===== shared renderers, also used by the mail-out ===== */

func (ctrl *ReportController) monthlyIncomePDF(year int) ([]byte, error) {
	series, err := reportService.MonthlyIncomeSeries(ctrl.DB, year)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(series))
	for _, e := range series {
		rows = append(rows, []string{
			time.Month(e.Month).String(),
			e.Income.StringFixed(2),
		})
	}
	return reportService.RenderPDF(reportService.PDFTable{
		Title:   fmt.Sprintf("Monthly income %d", year),
		Headers: []string{"Month", "Income"},
		Rows:    rows,
	})
}

func (ctrl *ReportController) teacherWorkloadPDF(start, end time.Time) ([]byte, error) {
	workload, err := reportService.TeacherWorkloadFor(ctrl.DB, start, end)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(workload))
	for _, w := range workload {
		rows = append(rows, []string{
			w.TeacherName,
			strconv.FormatInt(w.Lessons, 10),
			w.GroupIncome.StringFixed(2),
		})
	}
	return reportService.RenderPDF(reportService.PDFTable{
		Title:   "Teacher workload",
		Headers: []string{"Teacher", "Lessons", "Group income"},
		Rows:    rows,
	})
}

func (ctrl *ReportController) popularDirectionsPDF(start, end time.Time) ([]byte, error) {
	ranking, err := reportService.PopularDirections(ctrl.DB, start, end)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(ranking))
	for _, r := range ranking {
		rows = append(rows, []string{
			strconv.Itoa(r.Rank),
			r.DirectionName,
			strconv.FormatInt(r.Students, 10),
			strconv.FormatInt(r.Groups, 10),
			r.Income.StringFixed(2),
		})
	}
	return reportService.RenderPDF(reportService.PDFTable{
		Title:   "Popular courses",
		Headers: []string{"Rank", "Course", "Students", "Groups", "Income"},
		Rows:    rows,
	})
}
