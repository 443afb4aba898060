package store

import (
	"time"

	"eventbook/pkg/model"
)

// Seed populates the store with the fixed startup catalog: three events and
// one user per role. The user IDs are stable (1..3) and referenced by the
// login prompt; event IDs come from the store's own counter.
func Seed(s *Store, now time.Time) {
	s.InsertEvent(model.Event{
		Title:    "FinTech Conf",
		Date:     now.AddDate(0, 0, 7),
		Location: "Astana IT University",
	})
	s.InsertEvent(model.Event{
		Title:    "Concert",
		Date:     now.AddDate(0, 0, 14),
		Location: "City Theatre",
	})
	s.InsertEvent(model.Event{
		Title:    "Hackathon",
		Date:     now.AddDate(0, 0, 3),
		Location: "Tech Hub",
	})

	s.AddUser(model.User{ID: 1, Name: "Guest", Role: model.RoleGuest})
	s.AddUser(model.User{ID: 2, Name: "Ivan", Role: model.RoleUser})
	s.AddUser(model.User{ID: 3, Name: "Admin", Role: model.RoleAdmin})
}
