package calendar

import (
	"fmt"
	"time"
)

const timeOfDayLayout = "15:04"

// Slots generates the ordered list of bookable slot labels between startTime
// and endTime (both "HH:MM"), stepping by intervalMinutes. Each label has the
// form "HH:MM-HH:MM". A slot is only emitted if it ends at or before endTime,
// so the default 09:00-18:00 hours with a 60 minute interval yield nine slots
// from "09:00-10:00" to "17:00-18:00".
func Slots(startTime string, endTime string, intervalMinutes int) ([]string, error) {
	start, err := time.Parse(timeOfDayLayout, startTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q: %w", startTime, err)
	}
	end, err := time.Parse(timeOfDayLayout, endTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time %q: %w", endTime, err)
	}
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("invalid slot interval: %d minutes", intervalMinutes)
	}
	if !start.Before(end) {
		return nil, fmt.Errorf("start time %s is not before end time %s", startTime, endTime)
	}

	interval := time.Duration(intervalMinutes) * time.Minute
	slots := make([]string, 0, int(end.Sub(start)/interval))
	for cur := start; !cur.Add(interval).After(end); cur = cur.Add(interval) {
		slots = append(slots, fmt.Sprintf("%s-%s", cur.Format(timeOfDayLayout), cur.Add(interval).Format(timeOfDayLayout)))
	}
	return slots, nil
}
