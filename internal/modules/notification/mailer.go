package notification

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer dispatches one message to one address. Implementations make exactly
// one delivery attempt.
type Mailer interface {
	Send(to, subject, text, html string) error
}

// SMTPMailer sends through an SMTP relay over implicit TLS, matching the
// site's mail host on port 465.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, password, fromName, fromAddress string) *SMTPMailer {
	dialer := gomail.NewDialer(host, port, user, password)
	dialer.SSL = port == 465

	return &SMTPMailer{
		dialer: dialer,
		from:   fmt.Sprintf("%q <%s>", fromName, fromAddress),
	}
}

func (m *SMTPMailer) Send(to, subject, text, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	if html != "" {
		msg.AddAlternative("text/html", html)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
