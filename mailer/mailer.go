package mailer

import (
	"fmt"
	"net/smtp"
	"os"
)

// Send delivers one HTML email over SMTP. Credentials come from SMTP_HOST,
// SMTP_PORT, SMTP_FROM, SMTP_PASS.
func Send(to, subject, htmlBody string) error {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	from := os.Getenv("SMTP_FROM")
	pass := os.Getenv("SMTP_PASS")
	if host == "" || from == "" {
		return fmt.Errorf("SMTP not configured")
	}
	if port == "" {
		port = "587"
	}

	msg := []byte("From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" + htmlBody)

	auth := smtp.PlainAuth("", from, pass, host)
	return smtp.SendMail(host+":"+port, auth, from, []string{to}, msg)
}

// DashboardURL builds the deep link embedded in notification emails.
func DashboardURL(path string) string {
	base := os.Getenv("APP_BASE_URL")
	if base == "" {
		base = "http://localhost:3000"
	}
	return base + path
}
