// internals/features/finance/report/service/pdf_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPDF(t *testing.T) {
	data, err := RenderPDF(PDFTable{
		Title:   "Monthly income 2025",
		Headers: []string{"Month", "Income"},
		Rows: [][]string{
			{"January", "0.00"},
			{"February", "1500.00"},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderPDFEmptyTable(t *testing.T) {
	data, err := RenderPDF(PDFTable{
		Title:   "Expenses",
		Headers: []string{"Category", "Amount", "Date"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestConsoleMailerSend(t *testing.T) {
	m := &ConsoleMailer{}
	err := m.Send("manager@edcrm.local", "Reports", "see attached", []Attachment{
		{Filename: "income.pdf", Content: []byte("%PDF-")},
	})
	assert.NoError(t, err)
}
