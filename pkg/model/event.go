package model

import (
	"fmt"
	"time"
)

// DateLayout is the display and input layout for event dates (dd.mm.yyyy hh:mm).
const DateLayout = "02.01.2006 15:04"

// Placeholder values applied when an admin leaves a field blank on AddEvent.
const (
	UntitledEvent       = "Untitled"
	UnspecifiedLocation = "Unspecified"
)

// Event is a schedulable occurrence in the catalog. IDs are assigned by the
// store, strictly increasing, and never reused within a process lifetime.
type Event struct {
	ID       int       `json:"id" validate:"required,min=1"`
	Title    string    `json:"title" validate:"required"`
	Date     time.Time `json:"date" validate:"required"`
	Location string    `json:"location" validate:"required"`
}

func (e Event) String() string {
	return fmt.Sprintf("[%d] %s | %s | %s", e.ID, e.Title, e.Date.Format(DateLayout), e.Location)
}

// EventUpdate carries a partial edit. Zero values mean "keep the current
// value"; Date is a pointer so an omitted date is distinguishable.
type EventUpdate struct {
	Title    string     `json:"title,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
	Location string     `json:"location,omitempty"`
}
