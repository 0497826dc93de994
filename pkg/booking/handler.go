package booking

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/tidbok/tidbok/internal/rest"
)

type Handler struct {
	service Service
}

type BookingDTO struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	TimeSlot  string    `json:"timeSlot"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type BookingRequestDTO struct {
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Notes    string `json:"notes"`
}

type SlotDTO struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings := h.service.List(r.Context())

	dtos := make([]BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		dtos = append(dtos, bookingToDTO(b))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var dto BookingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{
			Error:   "Invalid booking payload",
			Details: err.Error(),
		})
		return
	}

	created, err := h.service.Create(r.Context(), dtoToRequest(dto))
	if err != nil {
		writeBookingError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(bookingToDTO(*created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingId := vars["bookingId"]

	var dto BookingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{
			Error:   "Invalid booking payload",
			Details: err.Error(),
		})
		return
	}

	updated, err := h.service.Update(r.Context(), bookingId, dtoToRequest(dto))
	if err != nil {
		writeBookingError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(bookingToDTO(*updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingId := vars["bookingId"]

	if err := h.service.Delete(r.Context(), bookingId); err != nil {
		writeBookingError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{
			Error:   "Missing date",
			Details: "'date' must be provided as YYYY-MM-DD",
		})
		return
	}
	excludeID := r.URL.Query().Get("excludeId")

	slots, err := h.service.Availability(r.Context(), date, excludeID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]SlotDTO, 0, len(slots))
	for _, slot := range slots {
		dtos = append(dtos, SlotDTO{Time: slot.Time, Available: slot.Available})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func writeBookingError(w http.ResponseWriter, err error) {
	var validationErr ValidationError
	switch {
	case errors.As(err, &validationErr):
		rest.WriteError(w, http.StatusBadRequest, rest.ErrorResponse{
			Error:  "Invalid booking",
			Fields: validationErr,
		})
	case errors.Is(err, ErrSlotTaken):
		rest.WriteError(w, http.StatusConflict, rest.ErrorResponse{
			Error:   "Time slot is already booked",
			Details: "Tyvärr, denna tid är redan bokad. Vänligen välj en annan tid.",
		})
	case errors.Is(err, ErrDateNotBookable):
		rest.WriteError(w, http.StatusConflict, rest.ErrorResponse{
			Error:   "Date is not open for booking",
			Details: "Datumet ligger inom framförhållningsfönstret.",
		})
	case errors.Is(err, ErrBookingNotFound):
		rest.WriteError(w, http.StatusNotFound, rest.ErrorResponse{
			Error: "Booking not found",
		})
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func bookingToDTO(b Booking) BookingDTO {
	return BookingDTO{
		ID:        b.ID,
		Date:      b.Date,
		TimeSlot:  b.TimeSlot,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
	}
}

func dtoToRequest(dto BookingRequestDTO) BookingRequest {
	return BookingRequest{
		Date:     dto.Date,
		TimeSlot: dto.TimeSlot,
		Name:     dto.Name,
		Email:    dto.Email,
		Phone:    dto.Phone,
		Notes:    dto.Notes,
	}
}
