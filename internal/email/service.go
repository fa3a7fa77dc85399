// Package email delivers notification mail over SMTP.
package email

import (
	"fmt"
	"net/smtp"
	"strings"
)

type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	FromName string
}

// Service sends plain-text mail. An unconfigured service reports itself via
// IsConfigured so callers can drop instead of erroring per message.
type Service struct {
	config Config
	addr   string
	auth   smtp.Auth
}

func NewService(config Config) *Service {
	return &Service{
		config: config,
		addr:   config.Host + ":" + config.Port,
		auth:   smtp.PlainAuth("", config.Username, config.Password, config.Host),
	}
}

func (s *Service) IsConfigured() bool {
	return s.config.Host != "" && s.config.Port != "" && s.config.From != ""
}

// SendEmail delivers one plain-text message to all recipients.
func (s *Service) SendEmail(to []string, subject, body string) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email not configured")
	}

	var msg strings.Builder
	writeHeader := func(name, value string) {
		msg.WriteString(name)
		msg.WriteString(": ")
		msg.WriteString(value)
		msg.WriteString("\r\n")
	}
	writeHeader("To", strings.Join(to, ", "))
	writeHeader("From", s.sender())
	writeHeader("Subject", subject)
	writeHeader("Content-Type", "text/plain; charset=UTF-8")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	return smtp.SendMail(s.addr, s.auth, s.config.From, to, []byte(msg.String()))
}

func (s *Service) sender() string {
	if s.config.FromName == "" {
		return s.config.From
	}
	return fmt.Sprintf("%s <%s>", s.config.FromName, s.config.From)
}
