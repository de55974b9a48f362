package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/travelease/booking/internal/domain"
)

const pgUniqueViolation = "23505"

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	Delete(ctx context.Context, reference string) error
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	err := r.db.QueryRow(ctx, `INSERT INTO bookings (reference, flight_id, flight_details, seat_number, email, amount_paid, transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`,
		booking.Reference, booking.FlightID, booking.FlightDetails, booking.SeatNumber, booking.Email, booking.AmountPaid, booking.TransactionID).
		Scan(&booking.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *PGBookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT reference, flight_id, flight_details, seat_number, email, amount_paid, transaction_id, created_at FROM bookings WHERE reference=$1`, reference)
	var b domain.Booking
	if err := row.Scan(&b.Reference, &b.FlightID, &b.FlightDetails, &b.SeatNumber, &b.Email, &b.AmountPaid, &b.TransactionID, &b.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) Delete(ctx context.Context, reference string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE reference=$1`, reference)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
