package repository

import (
	"context"
	"sync"

	"github.com/travelease/booking/internal/domain"
)

// MemoryBookingRepository keeps bookings in a map. It backs local runs and
// tests; the mutex makes Delete atomic, so two racing cancellations can never
// both observe the record as deleted by themselves.
type MemoryBookingRepository struct {
	mu       sync.Mutex
	bookings map[string]domain.Booking
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{bookings: make(map[string]domain.Booking)}
}

func (r *MemoryBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[booking.Reference]; ok {
		return ErrAlreadyExists
	}
	r.bookings[booking.Reference] = *booking
	return nil
}

func (r *MemoryBookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[reference]
	if !ok {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (r *MemoryBookingRepository) Delete(ctx context.Context, reference string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[reference]; !ok {
		return ErrNotFound
	}
	delete(r.bookings, reference)
	return nil
}

var _ BookingRepository = (*MemoryBookingRepository)(nil)
