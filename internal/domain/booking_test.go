package domain

import (
	"errors"
	"testing"
	"time"
)

func timePtr(s string) *string { return &s }

func validBookingRequest() *CreateBookingRequest {
	return &CreateBookingRequest{
		RoomID:     "room-1",
		Date:       "2026-10-05",
		StartTime:  timePtr("09:00"),
		EndTime:    timePtr("12:00"),
		Attendees:  4,
		TotalPrice: 180,
	}
}

func TestCreateBookingRequestValidate(t *testing.T) {
	if err := validBookingRequest().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateBookingRequestValidateFullDay(t *testing.T) {
	req := validBookingRequest()
	req.IsFullDay = true
	req.StartTime = nil
	req.EndTime = nil
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateBookingRequestValidateFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateBookingRequest)
		field  string
	}{
		{"missing room", func(r *CreateBookingRequest) { r.RoomID = "" }, "room_id"},
		{"missing date", func(r *CreateBookingRequest) { r.Date = "" }, "date"},
		{"bad date format", func(r *CreateBookingRequest) { r.Date = "05/10/2026" }, "date"},
		{"zero attendees", func(r *CreateBookingRequest) { r.Attendees = 0 }, "attendees"},
		{"negative price", func(r *CreateBookingRequest) { r.TotalPrice = -1 }, "total_price"},
		{"missing start time", func(r *CreateBookingRequest) { r.StartTime = nil }, "start_time"},
		{"bad start time format", func(r *CreateBookingRequest) { r.StartTime = timePtr("9am") }, "start_time"},
		{"missing end time", func(r *CreateBookingRequest) { r.EndTime = nil }, "end_time"},
		{"bad end time format", func(r *CreateBookingRequest) { r.EndTime = timePtr("25:70") }, "end_time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBookingRequest()
			tt.mutate(req)

			var v *ValidationError
			if err := req.Validate(); !errors.As(err, &v) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if _, ok := v.Fields[tt.field]; !ok {
				t.Errorf("expected a message for field %q, got %v", tt.field, v.Fields)
			}
		})
	}
}

func TestCreateBookingRequestEndBeforeStartAllowed(t *testing.T) {
	// Ordering of start and end is not validated; the API has always
	// accepted it and the frontend constrains the pickers.
	req := validBookingRequest()
	req.StartTime = timePtr("15:00")
	req.EndTime = timePtr("09:00")
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBookingToResponse(t *testing.T) {
	booking := &Booking{
		ID:        "booking-1",
		RoomID:    "room-1",
		Date:      time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		IsFullDay: true,
		Attendees: 4,
		Status:    BookingConfirmed,
	}

	resp := booking.ToResponse()
	if resp.Date != "2026-10-05" {
		t.Errorf("expected date 2026-10-05, got %q", resp.Date)
	}
	if resp.Services == nil {
		t.Error("expected services to be an empty list, not nil")
	}
	if resp.StartTime != nil || resp.EndTime != nil {
		t.Errorf("expected nil times on a full-day booking, got %v-%v", resp.StartTime, resp.EndTime)
	}
}

func TestParseBookingStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "cancelled"} {
		if _, ok := ParseBookingStatus(valid); !ok {
			t.Errorf("expected %q to parse", valid)
		}
	}
	if _, ok := ParseBookingStatus("rejected"); ok {
		t.Error("expected unknown status to be rejected")
	}
}
