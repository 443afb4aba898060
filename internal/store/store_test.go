package store

import (
	"testing"
	"time"

	"eventbook/pkg/model"
)

func TestInsertEvent_AssignsIncreasingIDs(t *testing.T) {
	s := New()

	first := s.InsertEvent(model.Event{Title: "A", Date: time.Now(), Location: "x"})
	second := s.InsertEvent(model.Event{Title: "B", Date: time.Now(), Location: "y"})

	if first.ID != 1 {
		t.Fatalf("expected first event ID 1, got %d", first.ID)
	}
	if second.ID != 2 {
		t.Fatalf("expected second event ID 2, got %d", second.ID)
	}
}

func TestInsertEvent_IDsNotReusedAfterRemove(t *testing.T) {
	s := New()

	e := s.InsertEvent(model.Event{Title: "A", Date: time.Now(), Location: "x"})
	if !s.RemoveEvent(e.ID) {
		t.Fatalf("expected remove to succeed")
	}

	next := s.InsertEvent(model.Event{Title: "B", Date: time.Now(), Location: "y"})
	if next.ID != 2 {
		t.Errorf("expected ID 2 after removal of ID 1, got %d", next.ID)
	}
}

func TestFindEvent_Missing(t *testing.T) {
	s := New()

	if _, ok := s.FindEvent(42); ok {
		t.Errorf("expected FindEvent on empty store to report absence")
	}
}

func TestUpdateEvent_InPlace(t *testing.T) {
	s := New()
	e := s.InsertEvent(model.Event{Title: "Old", Date: time.Now(), Location: "x"})

	e.Title = "New"
	if !s.UpdateEvent(e) {
		t.Fatalf("expected update to succeed")
	}

	got, ok := s.FindEvent(e.ID)
	if !ok {
		t.Fatalf("event disappeared after update")
	}
	if got.Title != "New" {
		t.Errorf("expected title %q, got %q", "New", got.Title)
	}
	if s.EventCount() != 1 {
		t.Errorf("expected 1 event, got %d", s.EventCount())
	}
}

func TestUpdateEvent_Missing(t *testing.T) {
	s := New()

	if s.UpdateEvent(model.Event{ID: 9, Title: "X"}) {
		t.Errorf("expected update of missing event to report false")
	}
}

func TestEventsByDate_SortedAscending(t *testing.T) {
	s := New()
	now := time.Now()

	s.InsertEvent(model.Event{Title: "later", Date: now.AddDate(0, 0, 14), Location: "x"})
	s.InsertEvent(model.Event{Title: "soonest", Date: now.AddDate(0, 0, 3), Location: "x"})
	s.InsertEvent(model.Event{Title: "middle", Date: now.AddDate(0, 0, 7), Location: "x"})

	events := s.EventsByDate()
	want := []string{"soonest", "middle", "later"}
	for i, title := range want {
		if events[i].Title != title {
			t.Errorf("position %d: expected %q, got %q", i, title, events[i].Title)
		}
	}
}

func TestInsertBooking_AssignsIncreasingIDs(t *testing.T) {
	s := New()

	first := s.InsertBooking(model.Booking{UserID: 2, EventID: 1, Status: model.BookingActive})
	second := s.InsertBooking(model.Booking{UserID: 2, EventID: 1, Status: model.BookingActive})

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("expected booking IDs 1 and 2, got %d and %d", first.ID, second.ID)
	}
}

func TestSetBookingStatus(t *testing.T) {
	s := New()
	b := s.InsertBooking(model.Booking{UserID: 2, EventID: 1, Status: model.BookingActive})

	if !s.SetBookingStatus(b.ID, model.BookingCancelled) {
		t.Fatalf("expected status update to succeed")
	}
	got, _ := s.FindBooking(b.ID)
	if got.Status != model.BookingCancelled {
		t.Errorf("expected status %q, got %q", model.BookingCancelled, got.Status)
	}

	if s.SetBookingStatus(99, model.BookingCancelled) {
		t.Errorf("expected status update of missing booking to report false")
	}
}

func TestSeed(t *testing.T) {
	s := New()
	now := time.Now()
	Seed(s, now)

	if s.EventCount() != 3 {
		t.Fatalf("expected 3 seeded events, got %d", s.EventCount())
	}
	users := s.Users()
	if len(users) != 3 {
		t.Fatalf("expected 3 seeded users, got %d", len(users))
	}

	roles := map[int]model.Role{1: model.RoleGuest, 2: model.RoleUser, 3: model.RoleAdmin}
	for id, role := range roles {
		u, ok := s.FindUser(id)
		if !ok {
			t.Fatalf("seed user %d missing", id)
		}
		if u.Role != role {
			t.Errorf("user %d: expected role %q, got %q", id, role, u.Role)
		}
	}

	// Hackathon (now+3d) sorts first, Concert (now+14d) last.
	events := s.EventsByDate()
	if events[0].Title != "Hackathon" || events[2].Title != "Concert" {
		t.Errorf("unexpected seed order: %q .. %q", events[0].Title, events[2].Title)
	}
}
