// Package console implements the interactive session: user login, the menu
// loop, and the text rendering of operation results. It adapts free-form
// input into structured service calls and never touches booking or catalog
// rules itself; every outcome it prints comes back from the engines.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"eventbook/internal/access"
	bookingsvc "eventbook/internal/bookings/service"
	eventsvc "eventbook/internal/events/service"
	"eventbook/internal/store"
	"eventbook/pkg/logger"
	"eventbook/pkg/model"

	"github.com/google/uuid"
)

var errInputClosed = errors.New("input closed")

type Session struct {
	in       *bufio.Scanner
	out      io.Writer
	store    *store.Store
	bookings bookingsvc.BookingService
	catalog  eventsvc.CatalogService
	log      *logger.Logger
}

func NewSession(
	in io.Reader,
	out io.Writer,
	st *store.Store,
	bookings bookingsvc.BookingService,
	catalog eventsvc.CatalogService,
	log *logger.Logger,
) *Session {
	return &Session{
		in:       bufio.NewScanner(in),
		out:      out,
		store:    st,
		bookings: bookings,
		catalog:  catalog,
		log:      log,
	}
}

// Run drives the outer login loop until the input stream is closed. A failed
// login retries; a successful one enters the menu loop until the user picks
// "switch user".
func (s *Session) Run() {
	for {
		user, err := s.login()
		if errors.Is(err, errInputClosed) {
			return
		}
		if err != nil {
			continue
		}

		log := s.log.With("session_id", uuid.NewString(), "user_id", user.ID)
		log.Info("User logged in", "name", user.Name, "role", string(user.Role))

		if err := s.menu(user, log); errors.Is(err, errInputClosed) {
			return
		}
		log.Info("User logged out")
	}
}

func (s *Session) login() (model.User, error) {
	fmt.Fprintln(s.out, "Select a user to log in:")
	for _, u := range s.store.Users() {
		fmt.Fprintln(s.out, u)
	}

	id, err := s.promptInt("User ID: ")
	if err != nil {
		if !errors.Is(err, errInputClosed) {
			fmt.Fprintf(s.out, "User not found.\n\n")
		}
		return model.User{}, err
	}

	user, ok := s.store.FindUser(id)
	if !ok {
		fmt.Fprintf(s.out, "User not found.\n\n")
		return model.User{}, fmt.Errorf("no user with id %d", id)
	}

	fmt.Fprintf(s.out, "Logged in as: %s (%s)\n\n", user.Name, user.Role.Display())
	return user, nil
}

func (s *Session) menu(user model.User, log *logger.Logger) error {
	for {
		fmt.Fprintln(s.out, "Menu:")
		fmt.Fprintln(s.out, "1. List events")
		fmt.Fprintln(s.out, "2. Book an event")
		fmt.Fprintln(s.out, "3. Cancel a booking")
		fmt.Fprintln(s.out, "4. (Admin) Add event")
		fmt.Fprintln(s.out, "5. (Admin) Edit event")
		fmt.Fprintln(s.out, "6. (Admin) Delete event")
		fmt.Fprintln(s.out, "7. (Admin) List all bookings")
		fmt.Fprintln(s.out, "0. Switch user")
		fmt.Fprint(s.out, "Choice: ")

		choice, err := s.readLine()
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out)
		log.Debug("Menu choice", "choice", choice)

		switch choice {
		case "1":
			s.showEvents()
		case "2":
			err = s.bookEvent(user)
		case "3":
			err = s.cancelBooking(user)
		case "4":
			err = s.addEvent(user)
		case "5":
			err = s.editEvent(user)
		case "6":
			err = s.deleteEvent(user)
		case "7":
			s.listAllBookings(user)
		case "0":
			return nil
		default:
			fmt.Fprintf(s.out, "Invalid choice.\n\n")
		}
		if errors.Is(err, errInputClosed) {
			return err
		}
	}
}

func (s *Session) showEvents() {
	events := s.catalog.List()
	fmt.Fprintln(s.out, "Events:")
	if len(events) == 0 {
		fmt.Fprintf(s.out, "No events available.\n\n")
		return
	}
	for _, e := range events {
		fmt.Fprintln(s.out, e)
	}
	fmt.Fprintln(s.out)
}

func (s *Session) bookEvent(user model.User) error {
	if err := access.RequireMember(user); err != nil {
		s.printError(err)
		return nil
	}

	s.showEvents()
	eventID, err := s.promptInt("Event ID to book: ")
	if err != nil {
		return s.handleBadNumber(err)
	}

	booking, berr := s.bookings.Create(user, eventID)
	if berr != nil {
		s.printError(berr)
		return nil
	}
	fmt.Fprintf(s.out, "Booking created: %s\n\n", s.describeBooking(booking))
	return nil
}

func (s *Session) cancelBooking(user model.User) error {
	if err := access.RequireMember(user); err != nil {
		s.printError(err)
		return nil
	}

	active, aerr := s.bookings.ListForUser(user, true)
	if aerr != nil {
		s.printError(aerr)
		return nil
	}
	if len(active) == 0 {
		fmt.Fprintf(s.out, "You have no active bookings.\n\n")
		return nil
	}

	fmt.Fprintln(s.out, "Your active bookings:")
	for _, b := range active {
		fmt.Fprintln(s.out, s.describeBooking(b))
	}

	bookingID, err := s.promptInt("Booking ID to cancel: ")
	if err != nil {
		return s.handleBadNumber(err)
	}

	if _, cerr := s.bookings.Cancel(user, bookingID); cerr != nil {
		s.printError(cerr)
		return nil
	}
	fmt.Fprintf(s.out, "Booking cancelled.\n\n")
	return nil
}

func (s *Session) addEvent(user model.User) error {
	if err := access.RequireAdmin(user); err != nil {
		s.printError(err)
		return nil
	}

	title, err := s.prompt("Title: ")
	if err != nil {
		return err
	}
	date, err := s.prompt(fmt.Sprintf("Date (%s): ", strings.ToLower(model.DateLayout)))
	if err != nil {
		return err
	}
	location, err := s.prompt("Location: ")
	if err != nil {
		return err
	}

	event, aerr := s.catalog.Add(user, eventsvc.AddEventInput{
		Title:    title,
		Date:     date,
		Location: location,
	})
	if aerr != nil {
		s.printError(aerr)
		return nil
	}
	fmt.Fprintf(s.out, "Event added: %s\n\n", event)
	return nil
}

func (s *Session) editEvent(user model.User) error {
	if err := access.RequireAdmin(user); err != nil {
		s.printError(err)
		return nil
	}

	s.showEvents()
	id, err := s.promptInt("Event ID to edit: ")
	if err != nil {
		return s.handleBadNumber(err)
	}

	current, ok := s.store.FindEvent(id)
	if !ok {
		fmt.Fprintf(s.out, "Event not found.\n\n")
		return nil
	}

	title, err := s.prompt(fmt.Sprintf("New title (%s): ", current.Title))
	if err != nil {
		return err
	}
	date, err := s.prompt(fmt.Sprintf("New date (%s): ", current.Date.Format(model.DateLayout)))
	if err != nil {
		return err
	}
	location, err := s.prompt(fmt.Sprintf("New location (%s): ", current.Location))
	if err != nil {
		return err
	}

	if _, eerr := s.catalog.Edit(user, id, eventsvc.EditEventInput{
		Title:    title,
		Date:     date,
		Location: location,
	}); eerr != nil {
		s.printError(eerr)
		return nil
	}
	fmt.Fprintf(s.out, "Event updated.\n\n")
	return nil
}

func (s *Session) deleteEvent(user model.User) error {
	if err := access.RequireAdmin(user); err != nil {
		s.printError(err)
		return nil
	}

	s.showEvents()
	id, err := s.promptInt("Event ID to delete: ")
	if err != nil {
		return s.handleBadNumber(err)
	}

	if derr := s.catalog.Delete(user, id); derr != nil {
		s.printError(derr)
		return nil
	}
	fmt.Fprintf(s.out, "Event deleted.\n\n")
	return nil
}

func (s *Session) listAllBookings(user model.User) {
	bookings, err := s.bookings.ListAll(user)
	if err != nil {
		s.printError(err)
		return
	}

	fmt.Fprintln(s.out, "All bookings:")
	if len(bookings) == 0 {
		fmt.Fprintf(s.out, "No bookings.\n\n")
		return
	}
	for _, b := range bookings {
		fmt.Fprintln(s.out, s.describeBooking(b))
	}
	fmt.Fprintln(s.out)
}

// handleBadNumber distinguishes a closed input stream from a line that simply
// did not parse as a number.
func (s *Session) handleBadNumber(err error) error {
	if errors.Is(err, errInputClosed) {
		return err
	}
	fmt.Fprintf(s.out, "Invalid ID.\n\n")
	return nil
}

func (s *Session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	return s.readLine()
}

func (s *Session) promptInt(label string) (int, error) {
	line, err := s.prompt(label)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", line)
	}
	return id, nil
}

func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		return "", errInputClosed
	}
	return s.in.Text(), nil
}
