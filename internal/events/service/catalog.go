package service

import (
	"eventbook/internal/access"
	"eventbook/internal/events/validator"
	apperrors "eventbook/pkg/errors"
	"eventbook/pkg/logger"
	"eventbook/pkg/model"
)

// EventStore is the slice of the state store the catalog manager needs.
type EventStore interface {
	InsertEvent(e model.Event) model.Event
	FindEvent(id int) (model.Event, bool)
	UpdateEvent(e model.Event) bool
	RemoveEvent(id int) bool
	EventsByDate() []model.Event
}

type CatalogService interface {
	Add(user model.User, in AddEventInput) (model.Event, error)
	Edit(user model.User, id int, in EditEventInput) (model.Event, error)
	Delete(user model.User, id int) error
	List() []model.Event
}

// AddEventInput carries the raw field values collected by the presentation
// layer. Date is the unparsed dd.mm.yyyy hh:mm string.
type AddEventInput struct {
	Title    string
	Date     string
	Location string
}

// EditEventInput carries replacement values; blank fields keep the current
// value, and an unparseable date is ignored rather than failing the edit.
type EditEventInput struct {
	Title    string
	Date     string
	Location string
}

type catalogService struct {
	store     EventStore
	validator *validator.EventValidator
	log       *logger.Logger
}

func NewCatalogService(store EventStore, v *validator.EventValidator, log *logger.Logger) CatalogService {
	return &catalogService{
		store:     store,
		validator: v,
		log:       log,
	}
}

func (s *catalogService) Add(user model.User, in AddEventInput) (model.Event, error) {
	if err := access.RequireAdmin(user); err != nil {
		s.log.Warn("Add event denied", "user_id", user.ID, "role", string(user.Role))
		return model.Event{}, err
	}

	date, err := validator.ParseDate(in.Date)
	if err != nil {
		return model.Event{}, apperrors.Validation("Invalid date format", map[string]any{
			"date":   in.Date,
			"layout": model.DateLayout,
		})
	}

	event := model.Event{
		Title:    in.Title,
		Date:     date,
		Location: in.Location,
	}
	if event.Title == "" {
		event.Title = model.UntitledEvent
	}
	if event.Location == "" {
		event.Location = model.UnspecifiedLocation
	}

	if err := s.validator.Validate(&event); err != nil {
		return model.Event{}, apperrors.Validation("Event validation failed", map[string]any{"error": err.Error()})
	}

	event = s.store.InsertEvent(event)
	s.log.Info("Event added", "id", event.ID, "title", event.Title, "date", event.Date)
	return event, nil
}

func (s *catalogService) Edit(user model.User, id int, in EditEventInput) (model.Event, error) {
	if err := access.RequireAdmin(user); err != nil {
		s.log.Warn("Edit event denied", "user_id", user.ID, "role", string(user.Role))
		return model.Event{}, err
	}

	existing, ok := s.store.FindEvent(id)
	if !ok {
		return model.Event{}, apperrors.NotFoundWithID("Event", id)
	}

	merged := s.mergeEventUpdate(existing, in)
	if err := s.validator.Validate(&merged); err != nil {
		return model.Event{}, apperrors.Validation("Event validation failed", map[string]any{"error": err.Error()})
	}

	s.store.UpdateEvent(merged)
	s.log.Info("Event updated", "id", merged.ID, "title", merged.Title)
	return merged, nil
}

// mergeEventUpdate applies the partial-success edit policy: blank fields keep
// the old value, and a date that fails to parse is kept at the old value
// instead of failing the whole operation.
func (s *catalogService) mergeEventUpdate(existing model.Event, in EditEventInput) model.Event {
	merged := existing

	if in.Title != "" {
		merged.Title = in.Title
	}
	if in.Date != "" {
		if date, err := validator.ParseDate(in.Date); err == nil {
			merged.Date = date
		} else {
			s.log.Warn("Unparseable date in event edit, keeping previous value",
				"id", existing.ID, "date", in.Date)
		}
	}
	if in.Location != "" {
		merged.Location = in.Location
	}

	return merged
}

func (s *catalogService) Delete(user model.User, id int) error {
	if err := access.RequireAdmin(user); err != nil {
		s.log.Warn("Delete event denied", "user_id", user.ID, "role", string(user.Role))
		return err
	}

	if !s.store.RemoveEvent(id) {
		return apperrors.NotFoundWithID("Event", id)
	}

	// Bookings referencing the event are deliberately left in place; their
	// EventID no longer resolves and the presentation layer renders them as
	// removed. There is no cascade and no delete guard.
	s.log.Warn("Event deleted; existing bookings for it now reference a missing event", "id", id)
	return nil
}

// List returns the catalog ordered by date ascending. Open to every role,
// including guests.
func (s *catalogService) List() []model.Event {
	return s.store.EventsByDate()
}
