package settings

import (
	"fmt"
	"regexp"
	"strings"
)

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

type CalendarView string

const (
	SingleMonthView CalendarView = "single"
	DualMonthView   CalendarView = "dual"
)

type BusinessHours struct {
	StartTime string `json:"startTime"` // e.g. "09:00"
	EndTime   string `json:"endTime"`   // e.g. "18:00"
}

type Settings struct {
	BusinessHours BusinessHours `json:"businessHours"`
	// TimeInterval is the slot length in minutes.
	TimeInterval int    `json:"timeInterval"`
	BusinessName string `json:"businessName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	// AdvanceBookingHours is the minimum lead time required before a
	// date becomes bookable.
	AdvanceBookingHours int          `json:"advanceBookingHours"`
	Theme               Theme        `json:"theme"`
	EmailNotifications  bool         `json:"emailNotifications"`
	CalendarView        CalendarView `json:"calendarView"`
}

// Default returns the fixed default settings used whenever no stored
// record exists or the stored record cannot be read.
func Default() Settings {
	return Settings{
		BusinessHours: BusinessHours{
			StartTime: "09:00",
			EndTime:   "18:00",
		},
		TimeInterval:        60,
		BusinessName:        "Bookningskalender",
		ContactEmail:        "info@exempel.se",
		ContactPhone:        "070-123 45 67",
		AdvanceBookingHours: 24,
		Theme:               ThemeSystem,
		EmailNotifications:  true,
		CalendarView:        SingleMonthView,
	}
}

// ValidationError maps field names to human-readable messages.
type ValidationError map[string]string

func (v ValidationError) Error() string {
	return fmt.Sprintf("invalid settings: %d field(s) rejected", len(v))
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks a settings record before it is persisted. All failing
// fields are reported at once.
func (s Settings) Validate() error {
	errs := ValidationError{}

	if s.BusinessHours.StartTime >= s.BusinessHours.EndTime {
		errs["businessHours"] = "Starttid måste vara före sluttid"
	}
	if s.TimeInterval < 15 || s.TimeInterval > 240 {
		errs["timeInterval"] = "Tidsintervall måste vara mellan 15 och 240 minuter"
	}
	if len(strings.TrimSpace(s.BusinessName)) < 2 {
		errs["businessName"] = "Företagsnamn måste vara minst 2 tecken"
	}
	if !emailPattern.MatchString(s.ContactEmail) {
		errs["contactEmail"] = "Ange en giltig e-postadress"
	}
	if len(s.ContactPhone) < 8 {
		errs["contactPhone"] = "Ange ett giltigt telefonnummer"
	}
	if s.AdvanceBookingHours < 0 || s.AdvanceBookingHours > 720 {
		errs["advanceBookingHours"] = "Måste vara mellan 0 och 720 timmar"
	}
	switch s.Theme {
	case ThemeLight, ThemeDark, ThemeSystem:
	default:
		errs["theme"] = "Ogiltigt tema"
	}
	switch s.CalendarView {
	case SingleMonthView, DualMonthView:
	default:
		errs["calendarView"] = "Ogiltig kalendervy"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
