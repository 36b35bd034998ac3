package mailer

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
)

// Message is a structured mail handed to the delivery service. Delivery
// is asynchronous from the caller's point of view; no receipt comes back.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, m Message) error
}

type SMTPMailer struct {
	addr     string
	username string
	password string
}

func NewSMTP(addr, username, password string) *SMTPMailer {
	return &SMTPMailer{addr: addr, username: username, password: password}
}

func (s *SMTPMailer) Send(_ context.Context, m Message) error {
	var auth smtp.Auth
	if s.username != "" {
		host, _, err := net.SplitHostPort(s.addr)
		if err != nil {
			return fmt.Errorf("bad smtp addr %q: %w", s.addr, err)
		}
		auth = smtp.PlainAuth("", s.username, s.password, host)
	}

	msg := []byte("From: " + m.From + "\r\n" +
		"To: " + m.To + "\r\n" +
		"Subject: " + m.Subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		`Content-Type: text/html; charset="UTF-8"` + "\r\n" +
		"\r\n" +
		m.HTML + "\r\n")

	return smtp.SendMail(s.addr, auth, m.From, []string{m.To}, msg)
}
