package booking

import (
	"context"
	"sync"
)

type RepositoryStub struct {
	mu      sync.RWMutex
	items   map[string]Booking
	readErr error
}

func NewRepositoryStub() *RepositoryStub {
	return &RepositoryStub{items: make(map[string]Booking)}
}

func (r *RepositoryStub) GetAll(ctx context.Context) ([]Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.readErr != nil {
		return nil, r.readErr
	}
	bookings := make([]Booking, 0, len(r.items))
	for _, b := range r.items {
		bookings = append(bookings, b)
	}
	SortBookings(bookings)
	return bookings, nil
}

func (r *RepositoryStub) GetByDate(ctx context.Context, date string) ([]Booking, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	bookings := make([]Booking, 0, len(all))
	for _, b := range all {
		if b.Date == date {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (r *RepositoryStub) GetByID(ctx context.Context, id string) (Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.readErr != nil {
		return Booking{}, r.readErr
	}
	b, ok := r.items[id]
	if !ok {
		return Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (r *RepositoryStub) GetBookedDates(ctx context.Context) ([]string, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	dates := make([]string, 0, len(all))
	for _, b := range all {
		if !seen[b.Date] {
			seen[b.Date] = true
			dates = append(dates, b.Date)
		}
	}
	return dates, nil
}

func (r *RepositoryStub) Store(ctx context.Context, booking Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[booking.ID] = booking
	return nil
}

func (r *RepositoryStub) Update(ctx context.Context, booking Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[booking.ID]; !ok {
		return ErrBookingNotFound
	}
	r.items[booking.ID] = booking
	return nil
}

func (r *RepositoryStub) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrBookingNotFound
	}
	delete(r.items, id)
	return nil
}

// FailReadsWith makes every read operation return err, simulating an
// unavailable store.
func (r *RepositoryStub) FailReadsWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.readErr = err
}
