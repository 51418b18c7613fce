package mailing

import (
	"errors"
	"fmt"
	"html"
	"strconv"

	"nutrition-tracker/internal/utils"

	"gopkg.in/gomail.v2"
)

var ErrMailNotConfigured = errors.New("SMTP_HOST and REPORT_EMAIL must be configured to send reports")

type MailConfig struct {
	ReportEmail  string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		ReportEmail:  utils.GetConfig("REPORT_EMAIL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfigOrDefault("SMTP_PORT", "587"),
		SMTPSender:   utils.GetConfigOrDefault("SMTP_SENDER_NAME", "Nutrition Tracker"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

// Enabled reports whether reports can be mailed at all.
func (m MailConfig) Enabled() bool {
	return m.SMTPHost != "" && m.ReportEmail != ""
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()
	if emailConfig.SMTPHost == "" {
		return ErrMailNotConfigured
	}

	mailer := NewMessage(emailConfig, toEmail, subject, body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return fmt.Errorf("invalid SMTP_PORT %q: %w", emailConfig.SMTPPort, err)
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

// SendReport mails a preformatted plain-text report to REPORT_EMAIL.
func SendReport(subject, report string) error {
	emailConfig := LoadMailConfig()
	if !emailConfig.Enabled() {
		return ErrMailNotConfigured
	}
	return SendMail(emailConfig.ReportEmail, subject, ReportBody(report))
}

func NewMessage(emailConfig MailConfig, toEmail, subject, body string) *gomail.Message {
	mailer := gomail.NewMessage()
	mailer.SetHeader("From", mailer.FormatAddress(emailConfig.SMTPEmail, emailConfig.SMTPSender))
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	return mailer
}

func ReportBody(report string) string {
	return "<pre style=\"font-family: monospace\">" + html.EscapeString(report) + "</pre>"
}
