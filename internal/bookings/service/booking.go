package service

import (
	"eventbook/internal/access"
	apperrors "eventbook/pkg/errors"
	"eventbook/pkg/logger"
	"eventbook/pkg/model"
)

// BookingStore is the slice of the state store the booking engine needs.
type BookingStore interface {
	FindEvent(id int) (model.Event, bool)
	InsertBooking(b model.Booking) model.Booking
	SetBookingStatus(id int, status model.BookingStatus) bool
	BookingsByID() []model.Booking
}

type BookingService interface {
	Create(user model.User, eventID int) (model.Booking, error)
	Cancel(user model.User, bookingID int) (model.Booking, error)
	ListForUser(user model.User, activeOnly bool) ([]model.Booking, error)
	ListAll(user model.User) ([]model.Booking, error)
}

type bookingService struct {
	store BookingStore
	log   *logger.Logger
}

func NewBookingService(store BookingStore, log *logger.Logger) BookingService {
	return &bookingService{
		store: store,
		log:   log,
	}
}

// Create books the given event for the user. Nothing prevents the same user
// booking the same event twice; each call appends a fresh booking.
func (s *bookingService) Create(user model.User, eventID int) (model.Booking, error) {
	if err := access.RequireMember(user); err != nil {
		s.log.Warn("Booking denied", "user_id", user.ID, "role", string(user.Role))
		return model.Booking{}, err
	}

	event, ok := s.store.FindEvent(eventID)
	if !ok {
		return model.Booking{}, apperrors.NotFoundWithID("Event", eventID)
	}

	booking := s.store.InsertBooking(model.Booking{
		UserID:  user.ID,
		EventID: event.ID,
		Status:  model.BookingActive,
	})

	s.log.Info("Booking created",
		"id", booking.ID,
		"user_id", booking.UserID,
		"event_id", booking.EventID,
	)
	return booking, nil
}

// Cancel transitions one of the caller's active bookings to cancelled. The
// candidate set is restricted to the caller's own active bookings, so a
// booking that is absent, owned by someone else, or already cancelled all
// surface as the same NOT_FOUND result.
func (s *bookingService) Cancel(user model.User, bookingID int) (model.Booking, error) {
	if err := access.RequireMember(user); err != nil {
		s.log.Warn("Cancel denied", "user_id", user.ID, "role", string(user.Role))
		return model.Booking{}, err
	}

	var booking model.Booking
	found := false
	for _, b := range s.store.BookingsByID() {
		if b.ID == bookingID && b.UserID == user.ID && b.Status == model.BookingActive {
			booking = b
			found = true
			break
		}
	}
	if !found {
		return model.Booking{}, apperrors.NotFoundWithID("Booking", bookingID)
	}

	s.store.SetBookingStatus(booking.ID, model.BookingCancelled)
	booking.Status = model.BookingCancelled

	s.log.Info("Booking cancelled", "id", booking.ID, "user_id", user.ID)
	return booking, nil
}

// ListForUser returns the caller's bookings ordered by ID ascending,
// optionally restricted to active ones.
func (s *bookingService) ListForUser(user model.User, activeOnly bool) ([]model.Booking, error) {
	if err := access.RequireMember(user); err != nil {
		return nil, err
	}

	var out []model.Booking
	for _, b := range s.store.BookingsByID() {
		if b.UserID != user.ID {
			continue
		}
		if activeOnly && b.Status != model.BookingActive {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// ListAll returns every booking ordered by ID ascending. Admin only.
func (s *bookingService) ListAll(user model.User) ([]model.Booking, error) {
	if err := access.RequireAdmin(user); err != nil {
		s.log.Warn("List all bookings denied", "user_id", user.ID, "role", string(user.Role))
		return nil, err
	}
	return s.store.BookingsByID(), nil
}
