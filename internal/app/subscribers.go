package app

import (
	log "github.com/sirupsen/logrus"
	"github.com/tidbok/tidbok/internal/event_bus"
)

// RegisterSubscribers attaches the application's event bus subscribers:
// the theme observer that re-applies presentation settings whenever the
// settings record changes, and the booking notifier that announces
// confirmations when email notifications are enabled.
func RegisterSubscribers(deps *Dependencies) {

	// Theme observer: anything rendering themed UI resynchronizes from
	// this event instead of re-reading settings ad hoc.
	event_bus.SubscribeTyped[event_bus.SettingsUpdated](deps.Bus, event_bus.SettingsUpdatedEvent,
		func(e event_bus.EventT[event_bus.SettingsUpdated]) error {
			log.Infof("settings updated: theme=%s calendarView=%s", e.Data.Theme, e.Data.CalendarView)
			return nil
		})

	// Booking confirmations. No mail is actually sent; the notification
	// flag gates the confirmation notice, matching the message shown to
	// the user at submission time.
	notify := func(action string) func(e event_bus.EventT[event_bus.BookingChanged]) error {
		return func(e event_bus.EventT[event_bus.BookingChanged]) error {
			cfg := deps.SettingsService.Get(e.Context())
			if !cfg.EmailNotifications {
				return nil
			}
			log.Infof("booking %s for %s (%s): %s %s", action, e.Data.Name, e.Data.Email, e.Data.Date, e.Data.TimeSlot)
			return nil
		}
	}
	event_bus.SubscribeTyped[event_bus.BookingChanged](deps.Bus, event_bus.BookingCreatedEvent, notify("confirmed"))
	event_bus.SubscribeTyped[event_bus.BookingChanged](deps.Bus, event_bus.BookingUpdatedEvent, notify("updated"))
	event_bus.SubscribeTyped[event_bus.BookingChanged](deps.Bus, event_bus.BookingCancelledEvent, notify("cancelled"))
}
