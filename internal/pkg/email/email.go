package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/Chris-debuggs/AttendenceSystem/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService sends punch confirmation mails to employees. Failures are
// retried and then logged; the kiosk never waits on delivery.
type EmailService interface {
	SendPunchIn(to, employeeName, date, clockTime, status string) error
	SendPunchOut(to, employeeName, date, clockTime string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type punchEmailData struct {
	EmployeeName string
	Date         string
	ClockTime    string
	Status       string
}

// SendPunchIn confirms the day's check-in, including the on-time/late
// status it was recorded with.
func (s *emailServiceImpl) SendPunchIn(to, employeeName, date, clockTime, status string) error {
	data := punchEmailData{
		EmployeeName: employeeName,
		Date:         date,
		ClockTime:    clockTime,
		Status:       status,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "punch_in.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Punch In Confirmation - %s", date), body.String())
}

// SendPunchOut confirms the day's check-out.
func (s *emailServiceImpl) SendPunchOut(to, employeeName, date, clockTime string) error {
	data := punchEmailData{
		EmployeeName: employeeName,
		Date:         date,
		ClockTime:    clockTime,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "punch_out.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Punch Out Confirmation - %s", date), body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s\r\n", from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
