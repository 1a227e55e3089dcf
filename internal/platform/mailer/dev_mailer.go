package mailer

import (
	"github.com/roomly/roomly-backend/internal/domain"
	"github.com/roomly/roomly-backend/pkg/logger"
)

// DevMailer logs emails instead of sending them.
type DevMailer struct{}

func NewDevMailer() *DevMailer {
	return &DevMailer{}
}

func (d *DevMailer) SendWelcomeEmail(toEmail, firstName string) error {
	logger.Info("[DEV MAIL] Welcome email",
		"to", toEmail,
		"first_name", firstName,
	)
	return nil
}

func (d *DevMailer) SendBookingEmail(toEmail, toName string, booking *domain.Booking, roomName string) error {
	logger.Info("[DEV MAIL] Booking email",
		"to", toEmail,
		"name", toName,
		"booking_id", booking.ID,
		"room", roomName,
		"date", booking.Date.Format(domain.DateLayout),
		"status", string(booking.Status),
	)
	return nil
}
