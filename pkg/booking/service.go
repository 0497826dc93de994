package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/tidbok/tidbok/internal/event_bus"
	"github.com/tidbok/tidbok/internal/utils"
	"github.com/tidbok/tidbok/pkg/calendar"
	"github.com/tidbok/tidbok/pkg/settings"
)

// Slot pairs a slot label with its advisory availability for one date.
type Slot struct {
	Time      string
	Available bool
}

type Service interface {
	// List returns all bookings ordered by date, then slot label.
	List(ctx context.Context) []Booking
	ByDate(ctx context.Context, date string) []Booking
	BookedDates(ctx context.Context) []string
	// Availability is the advisory check: every slot of the date with a
	// flag telling whether it is still free. excludeID skips one booking's
	// own slot when editing.
	Availability(ctx context.Context, date string, excludeID string) ([]Slot, error)
	MinBookableDate(ctx context.Context) (string, error)
	Create(ctx context.Context, request BookingRequest) (*Booking, error)
	Update(ctx context.Context, id string, request BookingRequest) (*Booking, error)
	Delete(ctx context.Context, id string) error
}

type ServiceImpl struct {
	repo     Repository
	settings settings.Service
	clock    utils.Clock
	bus      *event_bus.EventBus
}

func NewService(repo Repository, settingsService settings.Service, clock utils.Clock, bus *event_bus.EventBus) *ServiceImpl {
	return &ServiceImpl{
		repo:     repo,
		settings: settingsService,
		clock:    clock,
		bus:      bus,
	}
}

// List degrades to an empty result when the store cannot be read. An empty
// booking list is a valid (if degraded) state; read failures are logged at
// the repository boundary and must not surface here.
func (s *ServiceImpl) List(ctx context.Context) []Booking {
	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		return []Booking{}
	}
	return bookings
}

func (s *ServiceImpl) ByDate(ctx context.Context, date string) []Booking {
	bookings, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		return []Booking{}
	}
	return bookings
}

func (s *ServiceImpl) BookedDates(ctx context.Context) []string {
	dates, err := s.repo.GetBookedDates(ctx)
	if err != nil {
		return []string{}
	}
	return dates
}

func (s *ServiceImpl) Availability(ctx context.Context, date string, excludeID string) ([]Slot, error) {
	allSlots, err := s.allSlots(ctx)
	if err != nil {
		return nil, err
	}

	available := AvailableSlots(date, allSlots, s.ByDate(ctx, date), excludeID)
	availableSet := make(map[string]bool, len(available))
	for _, slot := range available {
		availableSet[slot] = true
	}

	slots := make([]Slot, 0, len(allSlots))
	for _, slot := range allSlots {
		slots = append(slots, Slot{Time: slot, Available: availableSet[slot]})
	}
	return slots, nil
}

func (s *ServiceImpl) MinBookableDate(ctx context.Context) (string, error) {
	cfg := s.settings.Get(ctx)
	return MinBookableDate(s.clock.Now(), cfg.AdvanceBookingHours), nil
}

func (s *ServiceImpl) Create(ctx context.Context, request BookingRequest) (*Booking, error) {
	if err := s.checkSubmission(ctx, request, ""); err != nil {
		return nil, err
	}

	newBooking := Booking{
		ID:        uuid.New().String(),
		Date:      request.Date,
		TimeSlot:  request.TimeSlot,
		Name:      request.Name,
		Email:     request.Email,
		Phone:     request.Phone,
		Notes:     request.Notes,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.Store(ctx, newBooking); err != nil {
		return nil, fmt.Errorf("failed to store booking: %w", err)
	}

	s.publish(ctx, event_bus.BookingCreatedEvent, newBooking)
	return &newBooking, nil
}

func (s *ServiceImpl) Update(ctx context.Context, id string, request BookingRequest) (*Booking, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkSubmission(ctx, request, id); err != nil {
		return nil, err
	}

	updated := existing
	updated.Date = request.Date
	updated.TimeSlot = request.TimeSlot
	updated.Name = request.Name
	updated.Email = request.Email
	updated.Phone = request.Phone
	updated.Notes = request.Notes

	if err := s.repo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	s.publish(ctx, event_bus.BookingUpdatedEvent, updated)
	return &updated, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.publish(ctx, event_bus.BookingCancelledEvent, existing)
	return nil
}

// checkSubmission is the authoritative gate before any write: field
// validation, advance-notice rule, then the conflict check against a fresh
// read of the store. The advisory availability the caller may have seen is
// never trusted here, since that snapshot can be stale relative to another
// process writing to the same store.
func (s *ServiceImpl) checkSubmission(ctx context.Context, request BookingRequest, excludeID string) error {
	if err := request.Validate(); err != nil {
		return err
	}

	cfg := s.settings.Get(ctx)
	if !IsDateBookable(request.Date, s.clock.Now(), cfg.AdvanceBookingHours) {
		return ErrDateNotBookable
	}

	allSlots, err := s.allSlots(ctx)
	if err != nil {
		return err
	}
	if !contains(allSlots, request.TimeSlot) {
		return ValidationError{"timeSlot": "Ogiltig tid"}
	}

	return CheckConflict(request.Date, request.TimeSlot, s.ByDate(ctx, request.Date), excludeID)
}

func (s *ServiceImpl) allSlots(ctx context.Context) ([]string, error) {
	cfg := s.settings.Get(ctx)
	slots, err := calendar.Slots(cfg.BusinessHours.StartTime, cfg.BusinessHours.EndTime, cfg.TimeInterval)
	if err != nil {
		return nil, fmt.Errorf("failed to generate time slots: %w", err)
	}
	return slots, nil
}

func (s *ServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, b Booking) {
	err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, event_bus.BookingChanged{
		ID:       b.ID,
		Date:     b.Date,
		TimeSlot: b.TimeSlot,
		Name:     b.Name,
		Email:    b.Email,
	}))
	if err != nil {
		log.Warnf("failed to publish %s event: %v", eventType, err)
	}
}

func contains(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
