package booking

import (
	"time"

	"github.com/tidbok/tidbok/pkg/calendar"
)

// The functions in this file are pure: they operate on a snapshot of
// bookings handed to them and perform no I/O. AvailableSlots is the advisory
// check used to render slot pickers; CheckConflict is the authoritative
// check the service runs against fresh storage right before a write. The
// two must not be collapsed: the advisory snapshot may be stale relative to
// another process writing to the same store.

// AvailableSlots returns the subset of allSlots not occupied by any booking
// on the given date. excludeID ignores one booking's own slot, so that an
// edited booking does not conflict with itself; pass "" when creating.
func AvailableSlots(date string, allSlots []string, bookings []Booking, excludeID string) []string {
	taken := takenSlots(date, bookings, excludeID)

	available := make([]string, 0, len(allSlots))
	for _, slot := range allSlots {
		if !taken[slot] {
			available = append(available, slot)
		}
	}
	return available
}

// CheckConflict returns ErrSlotTaken if a booking other than excludeID
// already occupies the date and slot.
func CheckConflict(date string, slot string, bookings []Booking, excludeID string) error {
	if takenSlots(date, bookings, excludeID)[slot] {
		return ErrSlotTaken
	}
	return nil
}

func takenSlots(date string, bookings []Booking, excludeID string) map[string]bool {
	taken := make(map[string]bool)
	for _, b := range bookings {
		if b.Date == date && (excludeID == "" || b.ID != excludeID) {
			taken[b.TimeSlot] = true
		}
	}
	return taken
}

// MinBookableDate returns the earliest date open for booking, at day
// granularity: the calendar date of now plus the advance-notice hours. With
// the default 24 hour notice this is simply tomorrow; a booking late tonight
// for early tomorrow is accepted even though the actual lead time is under
// an hour. That is deliberate and matches the day-level comparison the
// calendar uses.
func MinBookableDate(now time.Time, advanceHours int) string {
	return calendar.FormatDate(now.Add(time.Duration(advanceHours) * time.Hour))
}

// IsDateBookable reports whether the date string is on or after the minimum
// bookable date. Zero-padded ISO dates make the string comparison
// chronological.
func IsDateBookable(date string, now time.Time, advanceHours int) bool {
	return date >= MinBookableDate(now, advanceHours)
}
