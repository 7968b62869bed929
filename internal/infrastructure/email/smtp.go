// Package email sends notification mail over SMTP.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	return &SMTPEmailService{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

// SendTaskAssignedEmail notifies a user they were assigned a ticket. Callers
// treat failures as best-effort and only log them.
func (s *SMTPEmailService) SendTaskAssignedEmail(to, assigneeName, taskTitle string, taskID uint) error {
	taskURL := fmt.Sprintf("%s/tasks/%d", s.config.BaseURL, taskID)

	subject := fmt.Sprintf("You were assigned: %s", taskTitle)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<p>Hi %s,</p>
			<p>You have been assigned the ticket <strong>%s</strong>.</p>
			<p><a href="%s">Open the ticket</a></p>
		</body>
		</html>
	`, assigneeName, taskTitle, taskURL)

	return s.send(to, subject, htmlBody)
}

func (s *SMTPEmailService) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
