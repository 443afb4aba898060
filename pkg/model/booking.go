package model

import "fmt"

// BookingStatus is the lifecycle state of a booking. The only legal
// transition is active -> cancelled; bookings are never deleted.
type BookingStatus string

const (
	BookingActive    BookingStatus = "active"
	BookingCancelled BookingStatus = "cancelled"
)

// Display returns the human-readable status used in console output.
func (s BookingStatus) Display() string {
	switch s {
	case BookingActive:
		return "Active"
	case BookingCancelled:
		return "Cancelled"
	}
	return string(s)
}

// Booking is a user's reservation against one event. It references its owner
// and event by ID rather than holding the records, so a deleted event leaves
// a dangling EventID instead of a dangling pointer.
type Booking struct {
	ID      int           `json:"id" validate:"required,min=1"`
	UserID  int           `json:"user_id" validate:"required,min=1"`
	EventID int           `json:"event_id" validate:"required,min=1"`
	Status  BookingStatus `json:"status" validate:"required,oneof=active cancelled"`
}

func (b Booking) String() string {
	return fmt.Sprintf("[%d] user %d -> event %d | Status: %s", b.ID, b.UserID, b.EventID, b.Status.Display())
}
