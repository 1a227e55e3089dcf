package mailer

import "github.com/roomly/roomly-backend/internal/domain"

type Service interface {
	SendWelcomeEmail(toEmail, firstName string) error
	SendBookingEmail(toEmail, toName string, booking *domain.Booking, roomName string) error
}
