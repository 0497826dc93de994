package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Booking, error)
	GetByDate(ctx context.Context, date string) ([]Booking, error)
	GetByID(ctx context.Context, id string) (Booking, error)
	// GetBookedDates returns the distinct dates that carry at least one booking.
	GetBookedDates(ctx context.Context) ([]string, error)
	Store(ctx context.Context, booking Booking) error
	Update(ctx context.Context, booking Booking) error
	Delete(ctx context.Context, id string) error
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

const bookingColumns = `id, date, time_slot, name, email, phone, notes, created_at`

func (r *RepositoryImpl) GetAll(ctx context.Context) ([]Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              ORDER BY date, time_slot`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query bookings: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *RepositoryImpl) GetByDate(ctx context.Context, date string) ([]Booking, error) {
	query := `SELECT ` + bookingColumns + `
              FROM bookings
              WHERE date = ?
              ORDER BY time_slot`

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		err := fmt.Errorf("could not query bookings for date %s: %w", date, err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *RepositoryImpl) GetByID(ctx context.Context, id string) (Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`

	b, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}
	if err != nil {
		err := fmt.Errorf("could not query booking %s: %w", id, err)
		log.Error(err)
		return Booking{}, err
	}
	return b, nil
}

func (r *RepositoryImpl) GetBookedDates(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT date FROM bookings ORDER BY date`)
	if err != nil {
		err := fmt.Errorf("could not query booked dates: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	dates := make([]string, 0, 10)
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		dates = append(dates, date)
	}
	return dates, rows.Err()
}

func (r *RepositoryImpl) Store(ctx context.Context, booking Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.Date,
		booking.TimeSlot,
		booking.Name,
		booking.Email,
		booking.Phone,
		booking.Notes,
		booking.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		err := fmt.Errorf("could not store booking: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) Update(ctx context.Context, booking Booking) error {
	query := `UPDATE bookings
              SET date = ?, time_slot = ?, name = ?, email = ?, phone = ?, notes = ?
              WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		booking.Date,
		booking.TimeSlot,
		booking.Name,
		booking.Email,
		booking.Phone,
		booking.Notes,
		booking.ID,
	)
	if err != nil {
		err := fmt.Errorf("could not update booking: %w", err)
		log.Error(err)
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (r *RepositoryImpl) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		err := fmt.Errorf("could not delete booking: %w", err)
		log.Error(err)
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (Booking, error) {
	var b Booking
	var createdAt string
	if err := row.Scan(&b.ID, &b.Date, &b.TimeSlot, &b.Name, &b.Email, &b.Phone, &b.Notes, &createdAt); err != nil {
		return Booking{}, err
	}
	parsed, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return Booking{}, fmt.Errorf("could not parse created_at %q: %w", createdAt, err)
	}
	b.CreatedAt = parsed
	return b, nil
}

func scanBookings(rows *sql.Rows) ([]Booking, error) {
	bookings := make([]Booking, 0, 10)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			err := fmt.Errorf("could not scan row: %w", err)
			log.Error(err)
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
