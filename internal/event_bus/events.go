package event_bus

const (
	SettingsUpdatedEvent  EventType = "settings.updated"
	BookingCreatedEvent   EventType = "booking.created"
	BookingUpdatedEvent   EventType = "booking.updated"
	BookingCancelledEvent EventType = "booking.cancelled"
)

// SettingsUpdated is published whenever the settings record is replaced,
// including a reset to defaults. Subscribers re-apply presentation state
// (theme, calendar view) from it.
type SettingsUpdated struct {
	Theme              string
	CalendarView       string
	EmailNotifications bool
}

// BookingChanged is the payload for booking.created, booking.updated and
// booking.cancelled events.
type BookingChanged struct {
	ID       string
	Date     string
	TimeSlot string
	Name     string
	Email    string
}
