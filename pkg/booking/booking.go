package booking

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

// Booking is a confirmed reservation of a single time slot on a single date.
type Booking struct {
	ID   string
	Date string // "YYYY-MM-DD"
	// TimeSlot is the slot label, e.g. "09:00-10:00". For a fixed date no
	// two stored bookings may share the same label; the service enforces
	// this, the storage schema does not.
	TimeSlot  string
	Name      string
	Email     string
	Phone     string
	Notes     string
	CreatedAt time.Time
}

// BookingRequest carries the user-supplied fields of a booking submission.
type BookingRequest struct {
	Date     string
	TimeSlot string
	Name     string
	Email    string
	Phone    string
	Notes    string
}

var (
	// ErrSlotTaken is returned by the authoritative submission check when
	// another booking already occupies the requested date and slot.
	ErrSlotTaken = errors.New("time slot is already booked")
	// ErrDateNotBookable is returned when the requested date falls inside
	// the advance-notice window.
	ErrDateNotBookable = errors.New("date is not open for booking")
	ErrBookingNotFound = errors.New("booking not found")
)

// ValidationError maps field names to human-readable messages.
type ValidationError map[string]string

func (v ValidationError) Error() string {
	return fmt.Sprintf("invalid booking: %d field(s) rejected", len(v))
}

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Validate checks the contact and date fields of a submission. All failing
// fields are reported at once; a valid request may still be rejected later
// by the conflict or advance-notice checks.
func (r BookingRequest) Validate() error {
	errs := ValidationError{}

	if !datePattern.MatchString(r.Date) {
		errs["date"] = "Ogiltigt datum"
	}
	if r.TimeSlot == "" {
		errs["timeSlot"] = "Tid är obligatoriskt"
	}
	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "Namn är obligatoriskt"
	}
	if strings.TrimSpace(r.Email) == "" {
		errs["email"] = "E-post är obligatoriskt"
	} else if !emailPattern.MatchString(strings.TrimSpace(r.Email)) {
		errs["email"] = "Ogiltig e-postadress"
	}
	if strings.TrimSpace(r.Phone) == "" {
		errs["phone"] = "Telefon är obligatoriskt"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SortBookings orders bookings by date ascending, then by slot label
// ascending. Both fields are zero-padded, so lexicographic order matches
// chronological order.
func SortBookings(bookings []Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].Date != bookings[j].Date {
			return bookings[i].Date < bookings[j].Date
		}
		return bookings[i].TimeSlot < bookings[j].TimeSlot
	})
}
