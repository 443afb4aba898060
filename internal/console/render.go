package console

import (
	"fmt"

	apperrors "eventbook/pkg/errors"
	"eventbook/pkg/model"
)

// describeBooking renders a booking with its owner and event resolved
// through the store. A booking may outlive its event; the dangling reference
// is shown rather than hidden.
func (s *Session) describeBooking(b model.Booking) string {
	userName := fmt.Sprintf("user #%d", b.UserID)
	if u, ok := s.store.FindUser(b.UserID); ok {
		userName = u.Name
	}

	eventTitle := fmt.Sprintf("event #%d (removed)", b.EventID)
	if e, ok := s.store.FindEvent(b.EventID); ok {
		eventTitle = e.Title
	}

	return fmt.Sprintf("[%d] %s -> %s | Status: %s", b.ID, userName, eventTitle, b.Status.Display())
}

// printError renders an operation failure as a single line and lets the menu
// loop continue; no error coming out of the engines is fatal.
func (s *Session) printError(err error) {
	fmt.Fprintf(s.out, "%s.\n\n", apperrors.AsAppError(err).Message)
}
