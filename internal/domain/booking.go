package domain

import (
	"time"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Booking struct {
	ID         string
	RoomID     string
	UserID     *string
	Date       time.Time
	StartTime  *string
	EndTime    *string
	IsFullDay  bool
	Attendees  int
	Services   []string
	TotalPrice float64
	Status     BookingStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CreateBookingRequest struct {
	RoomID     string   `json:"room_id"`
	UserID     *string  `json:"user_id,omitempty"`
	Date       string   `json:"date"`
	StartTime  *string  `json:"start_time,omitempty"`
	EndTime    *string  `json:"end_time,omitempty"`
	IsFullDay  bool     `json:"is_full_day"`
	Attendees  int      `json:"attendees"`
	Services   []string `json:"services"`
	TotalPrice float64  `json:"total_price"`
}

type CreateBookingResponse struct {
	ID      string        `json:"id"`
	Status  BookingStatus `json:"status"`
	Message string        `json:"message"`
}

type BookingResponse struct {
	ID         string        `json:"id"`
	RoomID     string        `json:"room_id"`
	Date       string        `json:"date"`
	IsFullDay  bool          `json:"is_full_day"`
	StartTime  *string       `json:"start_time"`
	EndTime    *string       `json:"end_time"`
	Attendees  int           `json:"attendees"`
	Services   []string      `json:"services"`
	TotalPrice float64       `json:"total_price"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// Validate checks shape only. Start/end ordering and overlapping
// bookings on the same room and date are intentionally not checked.
func (r *CreateBookingRequest) Validate() error {
	v := NewValidationError()
	if r.RoomID == "" {
		v.Add("room_id", "room id is required")
	}
	if r.Date == "" {
		v.Add("date", "date is required")
	} else if _, err := time.Parse(DateLayout, r.Date); err != nil {
		v.Add("date", "date must be formatted as YYYY-MM-DD")
	}
	if r.Attendees < 1 {
		v.Add("attendees", "attendees must be at least 1")
	}
	if r.TotalPrice < 0 {
		v.Add("total_price", "total price must not be negative")
	}

	if !r.IsFullDay {
		if r.StartTime == nil || *r.StartTime == "" {
			v.Add("start_time", "start time is required unless the booking covers the full day")
		} else if _, err := time.Parse(TimeLayout, *r.StartTime); err != nil {
			v.Add("start_time", "start time must be formatted as HH:MM")
		}
		if r.EndTime == nil || *r.EndTime == "" {
			v.Add("end_time", "end time is required unless the booking covers the full day")
		} else if _, err := time.Parse(TimeLayout, *r.EndTime); err != nil {
			v.Add("end_time", "end time must be formatted as HH:MM")
		}
	}

	return v.ErrOrNil()
}

// ParsedDate assumes Validate has run.
func (r *CreateBookingRequest) ParsedDate() time.Time {
	d, _ := time.Parse(DateLayout, r.Date)
	return d
}

func (b *Booking) ToResponse() *BookingResponse {
	services := b.Services
	if services == nil {
		services = []string{}
	}

	return &BookingResponse{
		ID:         b.ID,
		RoomID:     b.RoomID,
		Date:       b.Date.Format(DateLayout),
		IsFullDay:  b.IsFullDay,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Attendees:  b.Attendees,
		Services:   services,
		TotalPrice: b.TotalPrice,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}
