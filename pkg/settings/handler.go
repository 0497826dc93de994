package settings

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tidbok/tidbok/internal/rest"
)

type Handler struct {
	service Service
}

type BusinessHoursDTO struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type SettingsDTO struct {
	BusinessHours       BusinessHoursDTO `json:"businessHours"`
	TimeInterval        int              `json:"timeInterval"`
	BusinessName        string           `json:"businessName"`
	ContactEmail        string           `json:"contactEmail"`
	ContactPhone        string           `json:"contactPhone"`
	AdvanceBookingHours int              `json:"advanceBookingHours"`
	Theme               string           `json:"theme"`
	EmailNotifications  bool             `json:"emailNotifications"`
	CalendarView        string           `json:"calendarView"`
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	current := h.service.Get(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(settingsToDTO(current)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var dto SettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{
			Error:   "Invalid settings payload",
			Details: err.Error(),
		})
		return
	}

	if err := h.service.Save(r.Context(), dtoToSettings(dto)); err != nil {
		var validationErr ValidationError
		if errors.As(err, &validationErr) {
			rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{
				Error:  "Invalid settings",
				Fields: validationErr,
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ResetSettings(w http.ResponseWriter, r *http.Request) {
	defaults, err := h.service.Reset(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(settingsToDTO(defaults)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func settingsToDTO(s Settings) SettingsDTO {
	return SettingsDTO{
		BusinessHours: BusinessHoursDTO{
			StartTime: s.BusinessHours.StartTime,
			EndTime:   s.BusinessHours.EndTime,
		},
		TimeInterval:        s.TimeInterval,
		BusinessName:        s.BusinessName,
		ContactEmail:        s.ContactEmail,
		ContactPhone:        s.ContactPhone,
		AdvanceBookingHours: s.AdvanceBookingHours,
		Theme:               string(s.Theme),
		EmailNotifications:  s.EmailNotifications,
		CalendarView:        string(s.CalendarView),
	}
}

func dtoToSettings(dto SettingsDTO) Settings {
	return Settings{
		BusinessHours: BusinessHours{
			StartTime: dto.BusinessHours.StartTime,
			EndTime:   dto.BusinessHours.EndTime,
		},
		TimeInterval:        dto.TimeInterval,
		BusinessName:        dto.BusinessName,
		ContactEmail:        dto.ContactEmail,
		ContactPhone:        dto.ContactPhone,
		AdvanceBookingHours: dto.AdvanceBookingHours,
		Theme:               Theme(dto.Theme),
		EmailNotifications:  dto.EmailNotifications,
		CalendarView:        CalendarView(dto.CalendarView),
	}
}
