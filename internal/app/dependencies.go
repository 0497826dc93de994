package app

import (
	"context"
	"database/sql"

	"github.com/tidbok/tidbok/internal/event_bus"
	"github.com/tidbok/tidbok/internal/utils"
	"github.com/tidbok/tidbok/pkg/booking"
	"github.com/tidbok/tidbok/pkg/calendar"
	"github.com/tidbok/tidbok/pkg/settings"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus   *event_bus.EventBus
	Clock utils.Clock

	SettingsRepo    settings.Repository
	SettingsService settings.Service
	SettingsHandler *settings.Handler

	BookingRepo    booking.Repository
	BookingService booking.Service
	BookingHandler *booking.Handler

	CalendarHandler *calendar.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.SettingsRepo = settings.NewRepository(db)
	deps.SettingsService = settings.NewService(deps.SettingsRepo, deps.Bus)
	deps.SettingsHandler = settings.NewHandler(deps.SettingsService)

	deps.BookingRepo = booking.NewRepository(db)
	deps.BookingService = booking.NewService(deps.BookingRepo, deps.SettingsService, deps.Clock, deps.Bus)
	deps.BookingHandler = booking.NewHandler(deps.BookingService)

	deps.CalendarHandler = calendar.NewHandler(
		func(ctx context.Context) ([]string, error) {
			return deps.BookingService.BookedDates(ctx), nil
		},
		deps.BookingService.MinBookableDate,
		deps.Clock,
	)

	return deps
}
