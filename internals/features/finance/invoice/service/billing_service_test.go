// internals/features/finance/invoice/service/billing_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	invoiceModel "edcrm_backend/internals/features/finance/invoice/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&invoiceModel.InvoiceModel{}, &invoiceModel.PaymentModel{}))
	return db
}

func createInvoice(t *testing.T, db *gorm.DB, studentID uuid.UUID, amount, discount int64, due time.Time) *invoiceModel.InvoiceModel {
	t.Helper()
	inv := invoiceModel.InvoiceModel{
		InvoiceStudentID: studentID,
		InvoiceAmount:    decimal.NewFromInt(amount),
		InvoiceDiscount:  decimal.NewFromInt(discount),
		InvoiceDueDate:   due,
	}
	require.NoError(t, db.Create(&inv).Error)
	return &inv
}

func reload(t *testing.T, db *gorm.DB, id uuid.UUID) *invoiceModel.InvoiceModel {
	t.Helper()
	var inv invoiceModel.InvoiceModel
	require.NoError(t, db.First(&inv, "invoice_id = ?", id).Error)
	return &inv
}

func TestInvoiceStatusFor(t *testing.T) {
	final := decimal.NewFromInt(4000)
	assert.Equal(t, invoiceModel.InvoicePending, InvoiceStatusFor(decimal.Zero, final))
	assert.Equal(t, invoiceModel.InvoicePartial, InvoiceStatusFor(decimal.NewFromInt(1), final))
	assert.Equal(t, invoiceModel.InvoicePartial, InvoiceStatusFor(decimal.NewFromInt(3999), final))
	assert.Equal(t, invoiceModel.InvoicePaid, InvoiceStatusFor(final, final))
	// overpayment stays paid
	assert.Equal(t, invoiceModel.InvoicePaid, InvoiceStatusFor(decimal.NewFromInt(5000), final))
}

func TestRecordPaymentMovesStatus(t *testing.T) {
	db := openTestDB(t)
	student := uuid.New()
	inv := createInvoice(t, db, student, 5000, 1000, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, invoiceModel.InvoicePending, inv.InvoiceStatus)

	_, err := RecordPayment(db, RecordPaymentInput{
		InvoiceID: &inv.InvoiceID,
		Cash:      decimal.NewFromInt(1000),
		Date:      time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, invoiceModel.InvoicePartial, reload(t, db, inv.InvoiceID).InvoiceStatus)

	// final amount is 4000 after discount, so 3000 more settles it
	_, err = RecordPayment(db, RecordPaymentInput{
		InvoiceID: &inv.InvoiceID,
		Transfer:  decimal.NewFromInt(3000),
		Date:      time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, invoiceModel.InvoicePaid, reload(t, db, inv.InvoiceID).InvoiceStatus)
}

func TestRecordPaymentOverpaymentStaysPaid(t *testing.T) {
	db := openTestDB(t)
	inv := createInvoice(t, db, uuid.New(), 5000, 1000, time.Now())

	_, err := RecordPayment(db, RecordPaymentInput{
		InvoiceID: &inv.InvoiceID,
		Online:    decimal.NewFromInt(9000),
		Date:      time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, invoiceModel.InvoicePaid, reload(t, db, inv.InvoiceID).InvoiceStatus)

	paid, err := PaidAmount(db, inv.InvoiceID)
	require.NoError(t, err)
	assert.True(t, inv.FinalAmount().Sub(paid).IsNegative())
}

func TestRecordPaymentAutoPicksOldestOpenInvoice(t *testing.T) {
	db := openTestDB(t)
	student := uuid.New()
	older := createInvoice(t, db, student, 1000, 0, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	newer := createInvoice(t, db, student, 1000, 0, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	p, err := RecordPayment(db, RecordPaymentInput{
		StudentID: &student,
		Cash:      decimal.NewFromInt(1000),
		Date:      time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, older.InvoiceID, p.PaymentInvoiceID)
	assert.Equal(t, invoiceModel.InvoicePaid, reload(t, db, older.InvoiceID).InvoiceStatus)
	assert.Equal(t, invoiceModel.InvoicePending, reload(t, db, newer.InvoiceID).InvoiceStatus)

	// the next payment lands on the remaining open invoice
	p, err = RecordPayment(db, RecordPaymentInput{
		StudentID: &student,
		Cash:      decimal.NewFromInt(500),
		Date:      time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, newer.InvoiceID, p.PaymentInvoiceID)
	assert.Equal(t, invoiceModel.InvoicePartial, reload(t, db, newer.InvoiceID).InvoiceStatus)
}

func TestRecordPaymentNoOpenInvoice(t *testing.T) {
	db := openTestDB(t)
	student := uuid.New()

	// no invoices at all
	_, err := RecordPayment(db, RecordPaymentInput{
		StudentID: &student,
		Cash:      decimal.NewFromInt(100),
		Date:      time.Now(),
	})
	assert.ErrorIs(t, err, ErrNoOpenInvoice)

	// every invoice settled
	inv := createInvoice(t, db, student, 100, 0, time.Now())
	_, err = RecordPayment(db, RecordPaymentInput{
		InvoiceID: &inv.InvoiceID,
		Cash:      decimal.NewFromInt(100),
		Date:      time.Now(),
	})
	require.NoError(t, err)

	_, err = RecordPayment(db, RecordPaymentInput{
		StudentID: &student,
		Cash:      decimal.NewFromInt(100),
		Date:      time.Now(),
	})
	assert.ErrorIs(t, err, ErrNoOpenInvoice)
}

func TestRecordPaymentUnknownInvoice(t *testing.T) {
	db := openTestDB(t)
	missing := uuid.New()
	_, err := RecordPayment(db, RecordPaymentInput{
		InvoiceID: &missing,
		Cash:      decimal.NewFromInt(100),
		Date:      time.Now(),
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdatePaymentRecomputes(t *testing.T) {
	db := openTestDB(t)
	inv := createInvoice(t, db, uuid.New(), 1000, 0, time.Now())

	p, err := RecordPayment(db, RecordPaymentInput{
		InvoiceID: &inv.InvoiceID,
		Cash:      decimal.NewFromInt(1000),
		Date:      time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, invoiceModel.InvoicePaid, reload(t, db, inv.InvoiceID).InvoiceStatus)

	p.PaymentCashAmount = decimal.NewFromInt(400)
	require.NoError(t, UpdatePayment(db, p))
	assert.Equal(t, invoiceModel.InvoicePartial, reload(t, db, inv.InvoiceID).InvoiceStatus)
}

func TestDeleteLastPaymentRevertsToPending(t *testing.T) {
	db := openTestDB(t)
	inv := createInvoice(t, db, uuid.New(), 1000, 0, time.Now())

	p, err := RecordPayment(db, RecordPaymentInput{
		InvoiceID: &inv.InvoiceID,
		Cash:      decimal.NewFromInt(1000),
		Date:      time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, invoiceModel.InvoicePaid, reload(t, db, inv.InvoiceID).InvoiceStatus)

	require.NoError(t, DeletePayment(db, p.PaymentID))
	assert.Equal(t, invoiceModel.InvoicePending, reload(t, db, inv.InvoiceID).InvoiceStatus)
}

func TestDeleteInvoiceRemovesPayments(t *testing.T) {
	db := openTestDB(t)
	inv := createInvoice(t, db, uuid.New(), 1000, 0, time.Now())
	other := createInvoice(t, db, uuid.New(), 1000, 0, time.Now())

	_, err := RecordPayment(db, RecordPaymentInput{
		InvoiceID: &inv.InvoiceID,
		Cash:      decimal.NewFromInt(600),
		Date:      time.Now(),
	})
	require.NoError(t, err)
	_, err = RecordPayment(db, RecordPaymentInput{
		InvoiceID: &other.InvoiceID,
		Cash:      decimal.NewFromInt(200),
		Date:      time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, DeleteInvoice(db, inv.InvoiceID))

	// the invoice is soft-deleted and its payments are gone, so nothing
	// of it is left to feed the payment reports
	err = db.First(&invoiceModel.InvoiceModel{}, "invoice_id = ?", inv.InvoiceID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var cnt int64
	require.NoError(t, db.Model(&invoiceModel.PaymentModel{}).
		Where("payment_invoice_id = ?", inv.InvoiceID).
		Count(&cnt).Error)
	assert.EqualValues(t, 0, cnt)

	// the other invoice's payment is untouched
	require.NoError(t, db.Model(&invoiceModel.PaymentModel{}).
		Where("payment_invoice_id = ?", other.InvoiceID).
		Count(&cnt).Error)
	assert.EqualValues(t, 1, cnt)
}

func TestDeleteInvoiceUnknown(t *testing.T) {
	db := openTestDB(t)
	assert.ErrorIs(t, DeleteInvoice(db, uuid.New()), gorm.ErrRecordNotFound)
}
