package main

import (
	"os"
	"time"

	bookingsvc "eventbook/internal/bookings/service"
	"eventbook/internal/console"
	eventsvc "eventbook/internal/events/service"
	"eventbook/internal/events/validator"
	"eventbook/internal/store"
	"eventbook/pkg/config"

	"github.com/joho/godotenv"
)

const ServiceName = "eventbook"

func main() {
	// Optional .env; real environment variables win.
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.LogConfiguration()

	st := store.New()
	store.Seed(st, time.Now())
	cfg.Log.Info("Seed data loaded", "events", st.EventCount(), "users", len(st.Users()))

	eventValidator := validator.NewEventValidator(cfg.Log)
	catalog := eventsvc.NewCatalogService(st, eventValidator, cfg.Log)
	bookings := bookingsvc.NewBookingService(st, cfg.Log)

	session := console.NewSession(os.Stdin, os.Stdout, st, bookings, catalog, cfg.Log)
	session.Run()

	cfg.Log.Info("Session ended")
}
