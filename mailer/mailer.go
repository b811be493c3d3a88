// Package mailer relays validated contact-form submissions over SMTP.
package mailer

import (
	"fmt"
	"html"
	"net/smtp"

	"portfolio/config"
)

// Submission is one contact-form message, request-scoped and never persisted.
type Submission struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Sender forwards a submission to the delivery mechanism. The handlers depend
// on this interface so tests can count outbound messages.
type Sender interface {
	Send(sub Submission) error
}

// SMTPSender sends through a configured SMTP account. The sender address is
// fixed; replies reach the submitter via the Reply-To header.
type SMTPSender struct {
	cfg config.SMTPConfig
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

const subjectPrefix = "Portfolio Contact: "

// Send issues exactly one outbound message for the submission. A missing
// account is a configuration error, not a validation failure.
func (s *SMTPSender) Send(sub Submission) error {
	if s.cfg.User == "" || s.cfg.Pass == "" {
		return fmt.Errorf("smtp credentials not configured")
	}

	subject := subjectPrefix + sub.Subject
	body := envelope(sub)

	msg := []byte("To: " + s.cfg.To + "\r\n" +
		"From: " + s.cfg.User + "\r\n" +
		"Reply-To: " + sub.Email + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	addr := s.cfg.Host + ":" + s.cfg.Port

	if err := smtp.SendMail(addr, auth, s.cfg.User, []string{s.cfg.To}, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// envelope wraps the submission in the fixed HTML message body. User-supplied
// fields are escaped before embedding.
func envelope(sub Submission) string {
	return fmt.Sprintf(`
<div style="font-family: sans-serif; max-width: 600px; border: 1px solid #eee; padding: 20px;">
  <h2 style="color: #333;">New Message from %s</h2>
  <p><strong>Email:</strong> %s</p>
  <p><strong>Subject:</strong> %s</p>
  <div style="margin-top: 20px; padding: 15px; background: #f9f9f9; border-left: 4px solid #111;">
    <p style="white-space: pre-wrap;">%s</p>
  </div>
  <p style="font-size: 12px; color: #888; margin-top: 30px;">
    Sent from your Portfolio Contact Form
  </p>
</div>`,
		html.EscapeString(sub.Name),
		html.EscapeString(sub.Email),
		html.EscapeString(sub.Subject),
		html.EscapeString(sub.Message))
}
