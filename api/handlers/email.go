package handlers

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// sendOfficeEmail sends a transactional email through SendGrid. Failures are
// logged and returned but callers treat email as best effort: a lost notice never
// fails the request that triggered it.
func sendOfficeEmail(toEmail, toName, subject, htmlContent, plainText string) error {
	from := mail.NewEmail("Kurup & Associates", "no-reply@kurupassociates.in")
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)
	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	response, err := client.Send(message)
	if err != nil {
		zap.S().Errorw("failed to send email", "error", err, "to", toEmail)
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body, "to", toEmail)
		return fmt.Errorf("sendgrid error: status %d", response.StatusCode)
	}
	return nil
}
