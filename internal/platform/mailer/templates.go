package mailer

import (
	"fmt"

	"github.com/roomly/roomly-backend/internal/domain"
)

func welcomeSubject() string {
	return "Welcome to Roomly"
}

func welcomeBody(firstName string) (text, html string) {
	text = fmt.Sprintf("Hi %s,\n\nYour Roomly account has been created. You can now book rooms for your next meeting or event.", firstName)
	html = fmt.Sprintf(`
		<h2>Welcome to Roomly!</h2>
		<p>Hi %s,</p>
		<p>Your account has been created. You can now book rooms for your next meeting or event.</p>
	`, firstName)
	return text, html
}

func bookingSubject(status domain.BookingStatus) string {
	if status == domain.BookingPending {
		return "Your booking is awaiting confirmation"
	}
	return "Your booking is confirmed"
}

func bookingBody(toName string, booking *domain.Booking, roomName string) (text, html string) {
	when := booking.Date.Format(domain.DateLayout)
	if !booking.IsFullDay && booking.StartTime != nil && booking.EndTime != nil {
		when = fmt.Sprintf("%s, %s to %s", when, *booking.StartTime, *booking.EndTime)
	} else {
		when += ", full day"
	}

	statusLine := "Your booking is confirmed."
	if booking.Status == domain.BookingPending {
		statusLine = "Your booking is awaiting confirmation by the room manager, we will let you know as soon as it is approved."
	}

	text = fmt.Sprintf("Hi %s,\n\n%s\n\nRoom: %s\nWhen: %s\nAttendees: %d\nTotal: %.2f EUR",
		toName, statusLine, roomName, when, booking.Attendees, booking.TotalPrice)

	html = fmt.Sprintf(`
		<h2>Your Roomly booking</h2>
		<p>Hi %s,</p>
		<p>%s</p>
		<ul>
			<li>Room: <strong>%s</strong></li>
			<li>When: %s</li>
			<li>Attendees: %d</li>
			<li>Total: %.2f&nbsp;EUR</li>
		</ul>
	`, toName, statusLine, roomName, when, booking.Attendees, booking.TotalPrice)

	return text, html
}
