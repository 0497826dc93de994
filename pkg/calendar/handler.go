package calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/tidbok/tidbok/internal/rest"
	"github.com/tidbok/tidbok/internal/utils"
)

// BookedDatesProvider returns the set of dates that carry at least one booking.
type BookedDatesProvider func(ctx context.Context) ([]string, error)

// MinDateProvider returns the earliest bookable date as a "YYYY-MM-DD" string.
type MinDateProvider func(ctx context.Context) (string, error)

type Handler struct {
	bookedDates BookedDatesProvider
	minDate     MinDateProvider
	clock       utils.Clock
}

type DayDTO struct {
	Date           string `json:"date"`
	Day            int    `json:"day"`
	InCurrentMonth bool   `json:"inCurrentMonth"`
	Today          bool   `json:"today"`
	Selectable     bool   `json:"selectable"`
	HasBooking     bool   `json:"hasBooking"`
}

type MonthDTO struct {
	Year     int      `json:"year"`
	Month    int      `json:"month"`
	Name     string   `json:"name"`
	Weekdays []string `json:"weekdays"`
	Days     []DayDTO `json:"days"`
}

func NewHandler(bookedDates BookedDatesProvider, minDate MinDateProvider, clock utils.Clock) *Handler {
	return &Handler{bookedDates: bookedDates, minDate: minDate, clock: clock}
}

// GetMonth returns the 42-cell grid for the requested year and month.
// The month parameter is 0-indexed (0 = Januari).
func (h *Handler) GetMonth(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{
			Error:   "Invalid year",
			Details: "'year' must be an integer",
		})
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 0 || month > 11 {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{
			Error:   "Invalid month",
			Details: "'month' must be an integer between 0 and 11",
		})
		return
	}

	booked, err := h.bookedDates(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	bookedSet := make(map[string]bool, len(booked))
	for _, d := range booked {
		bookedSet[d] = true
	}

	minDate, err := h.minDate(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	today := FormatDate(h.clock.Now())

	days := DaysInMonth(year, time.Month(month+1))
	dayDTOs := make([]DayDTO, 0, len(days))
	for _, d := range days {
		dateStr := FormatDate(d)
		dayDTOs = append(dayDTOs, DayDTO{
			Date:           dateStr,
			Day:            d.Day(),
			InCurrentMonth: d.Month() == time.Month(month+1),
			Today:          dateStr == today,
			Selectable:     dateStr >= minDate,
			HasBooking:     bookedSet[dateStr],
		})
	}

	dto := MonthDTO{
		Year:     year,
		Month:    month,
		Name:     MonthName(month),
		Weekdays: WeekdayNames(),
		Days:     dayDTOs,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
