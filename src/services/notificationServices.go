package services

import (
	"github.com/libreshelf/library-backend/src/config"
	"gopkg.in/gomail.v2"
)

const overdueMailSubject = "Livro com empréstimo atrasado"

// Mailer sends one notification to a set of recipients. Satisfied by
// EmailService; tests substitute a recording fake.
type Mailer interface {
	SendMails(message string, recipients []string) error
}

type EmailService struct {
	dialer *gomail.Dialer
	sender string
}

// NewEmailService creates a new instance of EmailService
func NewEmailService(cfg config.Config) *EmailService {
	return &EmailService{
		dialer: gomail.NewDialer(cfg.MailHost, cfg.MailPort, cfg.MailUsername, cfg.MailPassword),
		sender: cfg.MailSender,
	}
}

// SendMails delivers a single message addressed to the full recipient set.
// Fire and forget: there is no retry and no delivery confirmation.
func (s *EmailService) SendMails(message string, recipients []string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.sender)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", overdueMailSubject)
	m.SetBody("text/plain", message)

	return s.dialer.DialAndSend(m)
}
