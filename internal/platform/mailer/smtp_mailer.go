package mailer

import (
	"bytes"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/roomly/roomly-backend/internal/domain"
)

type SMTPMailer struct {
	Host string
	Port int
	From string
	User string
	Pass string
}

func NewSMTPMailer(host string, port int, from, user, pass string) *SMTPMailer {
	return &SMTPMailer{
		Host: strings.TrimSpace(host),
		Port: port,
		From: strings.TrimSpace(from),
		User: strings.TrimSpace(user),
		Pass: strings.TrimSpace(pass),
	}
}

func (s *SMTPMailer) SendWelcomeEmail(toEmail, firstName string) error {
	text, _ := welcomeBody(firstName)
	return s.sendEmail(toEmail, welcomeSubject(), text)
}

func (s *SMTPMailer) SendBookingEmail(toEmail, toName string, booking *domain.Booking, roomName string) error {
	text, _ := bookingBody(toName, booking, roomName)
	return s.sendEmail(toEmail, bookingSubject(booking.Status), text)
}

func (s *SMTPMailer) sendEmail(toEmail, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", s.From)
	fmt.Fprintf(&msg, "To: %s\r\n", toEmail)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	msg.WriteString(body)

	var auth smtp.Auth
	if s.User != "" {
		auth = smtp.PlainAuth("", s.User, s.Pass, s.Host)
	}

	return smtp.SendMail(addr, auth, s.From, []string{toEmail}, msg.Bytes())
}
