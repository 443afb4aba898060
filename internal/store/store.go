// Package store holds the process-lifetime state of the application: the
// event catalog, the fixed user set, and every booking ever created. It is
// the single mutable collection in the system and is always passed in
// explicitly, never reached through a package-level variable.
//
// The application is single-threaded (one interactive session drives all
// operations to completion), so the store does no locking. A service
// deployment would need a mutual-exclusion boundary around every mutating
// call.
package store

import (
	"sort"

	"eventbook/pkg/model"
)

type Store struct {
	events   []model.Event
	users    []model.User
	bookings []model.Booking

	nextEventID   int
	nextBookingID int
}

func New() *Store {
	return &Store{
		nextEventID:   1,
		nextBookingID: 1,
	}
}

// InsertEvent assigns the next event ID and appends the record. IDs are
// strictly increasing and never reused, even after RemoveEvent.
func (s *Store) InsertEvent(e model.Event) model.Event {
	e.ID = s.nextEventID
	s.nextEventID++
	s.events = append(s.events, e)
	return e
}

// FindEvent returns the event with the given ID. Absence is reported through
// the boolean, never as an error; callers must branch on it.
func (s *Store) FindEvent(id int) (model.Event, bool) {
	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return model.Event{}, false
}

// UpdateEvent replaces the stored event matching e.ID in place.
func (s *Store) UpdateEvent(e model.Event) bool {
	for i := range s.events {
		if s.events[i].ID == e.ID {
			s.events[i] = e
			return true
		}
	}
	return false
}

// RemoveEvent deletes the event from the catalog. Bookings referencing it
// are left untouched; their EventID simply no longer resolves.
func (s *Store) RemoveEvent(id int) bool {
	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return true
		}
	}
	return false
}

// EventsByDate returns a copy of the catalog sorted by date ascending.
func (s *Store) EventsByDate() []model.Event {
	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func (s *Store) EventCount() int {
	return len(s.events)
}

// AddUser registers a seed user under its fixed ID. There is no runtime user
// creation; this exists for seeding and tests only.
func (s *Store) AddUser(u model.User) {
	s.users = append(s.users, u)
}

func (s *Store) FindUser(id int) (model.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return model.User{}, false
}

// Users returns a copy of the user set in seed order.
func (s *Store) Users() []model.User {
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

// InsertBooking assigns the next booking ID and appends the record.
func (s *Store) InsertBooking(b model.Booking) model.Booking {
	b.ID = s.nextBookingID
	s.nextBookingID++
	s.bookings = append(s.bookings, b)
	return b
}

func (s *Store) FindBooking(id int) (model.Booking, bool) {
	for _, b := range s.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return model.Booking{}, false
}

// SetBookingStatus mutates the status of the booking with the given ID.
// Status is the only booking field that ever changes after insertion.
func (s *Store) SetBookingStatus(id int, status model.BookingStatus) bool {
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = status
			return true
		}
	}
	return false
}

// BookingsByID returns a copy of all bookings sorted by ID ascending.
func (s *Store) BookingsByID() []model.Booking {
	out := make([]model.Booking, len(s.bookings))
	copy(out, s.bookings)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *Store) BookingCount() int {
	return len(s.bookings)
}
