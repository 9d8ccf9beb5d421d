// internals/features/finance/report/service/mailer_service.go
package service

import (
	"encoding/base64"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"edcrm_backend/internals/configs"
)

type Attachment struct {
	Filename string
	Content  []byte
}

// Mailer delivers report mail. The console backend keeps dev setups
// working without a SendGrid key.
type Mailer interface {
	Send(to, subject, body string, attachments []Attachment) error
}

func NewMailerFromEnv() Mailer {
	if configs.SendgridAPIKey == "" {
		return &ConsoleMailer{}
	}
	return &SendGridMailer{APIKey: configs.SendgridAPIKey}
}

type SendGridMailer struct {
	APIKey string
}

func (m *SendGridMailer) Send(to, subject, body string, attachments []Attachment) error {
	from := mail.NewEmail("EdCRM Reports", configs.FromEmail)
	msg := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), body, body)
	for _, a := range attachments {
		att := mail.NewAttachment()
		att.SetContent(base64.StdEncoding.EncodeToString(a.Content))
		att.SetType("application/pdf")
		att.SetFilename(a.Filename)
		att.SetDisposition("attachment")
		msg.AddAttachment(att)
	}
	client := sendgrid.NewSendClient(m.APIKey)
	resp, err := client.Send(msg)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid send: status %d", resp.StatusCode)
	}
	return nil
}

type ConsoleMailer struct{}

func (m *ConsoleMailer) Send(to, subject, body string, attachments []Attachment) error {
	log.Printf("[INFO] 📧 (console mailer) to=%s subject=%q attachments=%d", to, subject, len(attachments))
	return nil
}
