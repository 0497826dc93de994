package app

import (
	"github.com/gorilla/mux"
	"github.com/tidbok/tidbok/internal/rest"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Bookings
	r.HandleFunc("/api/booking", deps.BookingHandler.ListBookings).Methods("GET")
	r.HandleFunc("/api/booking", deps.BookingHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/api/booking/availability", deps.BookingHandler.GetAvailability).Queries("date", "{date}").Methods("GET")
	r.HandleFunc("/api/booking/{bookingId}", deps.BookingHandler.UpdateBooking).Methods("PUT")
	r.HandleFunc("/api/booking/{bookingId}", deps.BookingHandler.DeleteBooking).Methods("DELETE")

	// Calendar grid
	r.HandleFunc("/api/calendar", deps.CalendarHandler.GetMonth).Queries("year", "{year}", "month", "{month}").Methods("GET")

	// Settings
	r.HandleFunc("/api/settings", deps.SettingsHandler.GetSettings).Methods("GET")
	r.HandleFunc("/api/settings", deps.SettingsHandler.UpdateSettings).Methods("PUT")
	r.HandleFunc("/api/settings/reset", deps.SettingsHandler.ResetSettings).Methods("POST")

	// Fixed acknowledgment for an endpoint polled by browser extensions and
	// cached requests; carries no domain logic.
	notImplemented := rest.NotImplementedHandler("Translation process endpoint not implemented in this application")
	r.HandleFunc("/api/admin/translation-process", notImplemented).Methods("GET", "POST")
}
