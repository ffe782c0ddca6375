package utils

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// MailEnabled reports whether SMTP delivery is configured. When it is
// not, notification e-mails are silently skipped.
func MailEnabled() bool {
	return os.Getenv("SMTP_HOST") != ""
}

// SendNotificationEmail sends a plain-text copy of a portal notification.
func SendNotificationEmail(to, subject, body string) error {
	fromEmail := os.Getenv("SMTP_USER")

	m := gomail.NewMessage()
	m.SetHeader("From", fromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		return errors.Wrap(err, "invalid SMTP_PORT value")
	}
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	return d.DialAndSend(m)
}
