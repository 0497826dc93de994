package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidbok/tidbok/internal/event_bus"
	"github.com/tidbok/tidbok/internal/utils"
	"github.com/tidbok/tidbok/pkg/settings"
)

// Test setup helper. The clock is fixed so that 2025-07-01 and later are
// bookable under the default 24 hour advance notice.
func setupServiceTest(t *testing.T) (*ServiceImpl, *RepositoryStub, *utils.MockClock, *event_bus.EventBus) {
	repo := NewRepositoryStub()
	bus := event_bus.NewEventBus()
	settingsService := settings.NewService(settings.NewRepositoryStub(), bus)
	clock := &utils.MockClock{FixedNow: time.Date(2025, time.June, 1, 12, 0, 0, 0, time.Local)}
	service := NewService(repo, settingsService, clock, bus)
	return service, repo, clock, bus
}

func validRequest(date, timeSlot string) BookingRequest {
	return BookingRequest{
		Date:     date,
		TimeSlot: timeSlot,
		Name:     "Anna Andersson",
		Email:    "anna@exempel.se",
		Phone:    "070-123 45 67",
	}
}

func TestService_Create(t *testing.T) {
	service, _, clock, _ := setupServiceTest(t)
	ctx := context.Background()

	created, err := service.Create(ctx, validRequest("2025-07-01", "10:00-11:00"))

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, clock.Now(), created.CreatedAt)

	listed := service.List(ctx)
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)
}

func TestService_Create_RejectsConflict(t *testing.T) {
	service, _, _, _ := setupServiceTest(t)
	ctx := context.Background()

	_, err := service.Create(ctx, validRequest("2025-07-01", "10:00-11:00"))
	require.NoError(t, err)

	// Same date and slot must be rejected and nothing written.
	_, err = service.Create(ctx, validRequest("2025-07-01", "10:00-11:00"))

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Len(t, service.List(ctx), 1)
}

func TestService_Create_RejectsDateInsideAdvanceNotice(t *testing.T) {
	service, _, clock, _ := setupServiceTest(t)
	ctx := context.Background()

	today := "2025-06-01"
	tomorrow := "2025-06-02"
	require.Equal(t, time.Date(2025, time.June, 1, 12, 0, 0, 0, time.Local), clock.Now())

	_, err := service.Create(ctx, validRequest(today, "10:00-11:00"))
	assert.ErrorIs(t, err, ErrDateNotBookable)

	_, err = service.Create(ctx, validRequest(tomorrow, "10:00-11:00"))
	assert.NoError(t, err)
}

func TestService_Create_ValidationErrors(t *testing.T) {
	service, _, _, _ := setupServiceTest(t)
	ctx := context.Background()

	testCases := []struct {
		name      string
		mutate    func(*BookingRequest)
		wantField string
	}{
		{name: "empty name", mutate: func(r *BookingRequest) { r.Name = "  " }, wantField: "name"},
		{name: "empty email", mutate: func(r *BookingRequest) { r.Email = "" }, wantField: "email"},
		{name: "malformed email", mutate: func(r *BookingRequest) { r.Email = "not-an-email" }, wantField: "email"},
		{name: "empty phone", mutate: func(r *BookingRequest) { r.Phone = "" }, wantField: "phone"},
		{name: "malformed date", mutate: func(r *BookingRequest) { r.Date = "01/07/2025" }, wantField: "date"},
		{name: "empty slot", mutate: func(r *BookingRequest) { r.TimeSlot = "" }, wantField: "timeSlot"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			request := validRequest("2025-07-01", "10:00-11:00")
			tc.mutate(&request)

			_, err := service.Create(ctx, request)

			var validationErr ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr, tc.wantField)
			// Nothing may be written on a validation failure.
			assert.Empty(t, service.List(ctx))
		})
	}
}

func TestService_Create_RejectsUnknownSlotLabel(t *testing.T) {
	service, _, _, _ := setupServiceTest(t)

	_, err := service.Create(context.Background(), validRequest("2025-07-01", "06:00-07:00"))

	var validationErr ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr, "timeSlot")
}

func TestService_Update_DoesNotConflictWithItself(t *testing.T) {
	service, _, _, _ := setupServiceTest(t)
	ctx := context.Background()

	created, err := service.Create(ctx, validRequest("2025-07-01", "10:00-11:00"))
	require.NoError(t, err)

	// A no-op edit keeps the same date and slot and must be accepted.
	updated, err := service.Update(ctx, created.ID, validRequest("2025-07-01", "10:00-11:00"))

	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
}

func TestService_Update_RejectsTakenSlot(t *testing.T) {
	service, _, _, _ := setupServiceTest(t)
	ctx := context.Background()

	first, err := service.Create(ctx, validRequest("2025-07-01", "10:00-11:00"))
	require.NoError(t, err)
	second, err := service.Create(ctx, validRequest("2025-07-01", "11:00-12:00"))
	require.NoError(t, err)

	_, err = service.Update(ctx, second.ID, validRequest("2025-07-01", "10:00-11:00"))

	assert.ErrorIs(t, err, ErrSlotTaken)

	// The losing update must not have partially written anything.
	stored := service.ByDate(ctx, "2025-07-01")
	require.Len(t, stored, 2)
	assert.Equal(t, first.ID, stored[0].ID)
	assert.Equal(t, "10:00-11:00", stored[0].TimeSlot)
	assert.Equal(t, second.ID, stored[1].ID)
	assert.Equal(t, "11:00-12:00", stored[1].TimeSlot)
}

func TestService_Update_NotFound(t *testing.T) {
	service, _, _, _ := setupServiceTest(t)

	_, err := service.Update(context.Background(), "missing", validRequest("2025-07-01", "10:00-11:00"))

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Availability(t *testing.T) {
	service, _, _, _ := setupServiceTest(t)
	ctx := context.Background()

	created, err := service.Create(ctx, validRequest("2025-07-01", "10:00-11:00"))
	require.NoError(t, err)

	slots, err := service.Availability(ctx, "2025-07-01", "")
	require.NoError(t, err)
	require.Len(t, slots, 9)
	for _, slot := range slots {
		if slot.Time == "10:00-11:00" {
			assert.False(t, slot.Available, "booked slot must not be offered")
		} else {
			assert.True(t, slot.Available, "slot %s should be free", slot.Time)
		}
	}

	// Excluding the booking's own id frees its slot for editing.
	slots, err = service.Availability(ctx, "2025-07-01", created.ID)
	require.NoError(t, err)
	for _, slot := range slots {
		assert.True(t, slot.Available, "slot %s should be free when excluding own booking", slot.Time)
	}
}

func TestService_MinBookableDate(t *testing.T) {
	service, _, _, _ := setupServiceTest(t)

	minDate, err := service.MinBookableDate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", minDate)
}

func TestService_DegradesToEmptyWhenStoreUnreadable(t *testing.T) {
	service, repo, _, _ := setupServiceTest(t)
	ctx := context.Background()

	repo.FailReadsWith(errors.New("storage unavailable"))

	assert.Empty(t, service.List(ctx))
	assert.Empty(t, service.ByDate(ctx, "2025-07-01"))
	assert.Empty(t, service.BookedDates(ctx))

	// With no readable bookings every slot looks free: an accepted,
	// degraded state rather than a failure.
	slots, err := service.Availability(ctx, "2025-07-01", "")
	require.NoError(t, err)
	for _, slot := range slots {
		assert.True(t, slot.Available)
	}
}

func TestService_Delete(t *testing.T) {
	service, _, _, _ := setupServiceTest(t)
	ctx := context.Background()

	created, err := service.Create(ctx, validRequest("2025-07-01", "10:00-11:00"))
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.ID))
	assert.Empty(t, service.List(ctx))

	assert.ErrorIs(t, service.Delete(ctx, created.ID), ErrBookingNotFound)
}

func TestService_PublishesBookingEvents(t *testing.T) {
	service, _, _, bus := setupServiceTest(t)
	ctx := context.Background()

	var received []event_bus.EventType
	for _, eventType := range []event_bus.EventType{
		event_bus.BookingCreatedEvent,
		event_bus.BookingUpdatedEvent,
		event_bus.BookingCancelledEvent,
	} {
		eventType := eventType
		event_bus.SubscribeTyped[event_bus.BookingChanged](bus, eventType,
			func(e event_bus.EventT[event_bus.BookingChanged]) error {
				received = append(received, eventType)
				return nil
			})
	}

	created, err := service.Create(ctx, validRequest("2025-07-01", "10:00-11:00"))
	require.NoError(t, err)
	_, err = service.Update(ctx, created.ID, validRequest("2025-07-02", "10:00-11:00"))
	require.NoError(t, err)
	require.NoError(t, service.Delete(ctx, created.ID))

	assert.Equal(t, []event_bus.EventType{
		event_bus.BookingCreatedEvent,
		event_bus.BookingUpdatedEvent,
		event_bus.BookingCancelledEvent,
	}, received)
}

// The full lifecycle from the original flow: book, collide, rebook, cancel.
func TestService_BookingLifecycle(t *testing.T) {
	service, _, _, _ := setupServiceTest(t)
	ctx := context.Background()

	// Create booking A
	bookingA, err := service.Create(ctx, validRequest("2025-07-01", "10:00-11:00"))
	require.NoError(t, err)
	require.Len(t, service.List(ctx), 1)

	// Booking B for the same date and slot is rejected, list unchanged
	_, err = service.Create(ctx, validRequest("2025-07-01", "10:00-11:00"))
	assert.ErrorIs(t, err, ErrSlotTaken)
	require.Len(t, service.List(ctx), 1)

	// Moving A to the next day frees the original slot
	_, err = service.Update(ctx, bookingA.ID, validRequest("2025-07-02", "10:00-11:00"))
	require.NoError(t, err)
	listed := service.List(ctx)
	require.Len(t, listed, 1)
	assert.Equal(t, "2025-07-02", listed[0].Date)

	available := AvailableSlots("2025-07-01", allSlots, service.ByDate(ctx, "2025-07-01"), "")
	assert.Contains(t, available, "10:00-11:00")

	// Deleting A empties the list
	require.NoError(t, service.Delete(ctx, bookingA.ID))
	assert.Empty(t, service.List(ctx))
}
