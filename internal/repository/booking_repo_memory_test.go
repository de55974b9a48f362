package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/travelease/booking/internal/domain"
)

func TestMemoryBookingRepository_CreateAndGet(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	booking := &domain.Booking{
		Reference:     "BK-AB12CD",
		FlightID:      "AI202",
		FlightDetails: "DEL-BOM",
		SeatNumber:    "12A",
		Email:         "a@b.com",
		AmountPaid:    5000,
		TransactionID: "TXN-ABCD1234",
	}

	assert.NoError(t, repo.Create(ctx, booking))

	stored, err := repo.GetByReference(ctx, "BK-AB12CD")
	assert.NoError(t, err)
	assert.Equal(t, booking.Email, stored.Email)
	assert.Equal(t, booking.AmountPaid, stored.AmountPaid)
}

func TestMemoryBookingRepository_DuplicateReference(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	booking := &domain.Booking{Reference: "BK-AB12CD", Email: "a@b.com"}

	assert.NoError(t, repo.Create(ctx, booking))
	assert.ErrorIs(t, repo.Create(ctx, booking), ErrAlreadyExists)
}

func TestMemoryBookingRepository_GetMissing(t *testing.T) {
	repo := NewMemoryBookingRepository()

	_, err := repo.GetByReference(context.Background(), "BK-MISSING")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryBookingRepository_Delete(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, &domain.Booking{Reference: "BK-AB12CD"}))
	assert.NoError(t, repo.Delete(ctx, "BK-AB12CD"))

	_, err := repo.GetByReference(ctx, "BK-AB12CD")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "BK-AB12CD"), ErrNotFound)
}

// Racing deletes of the same reference: exactly one wins.
func TestMemoryBookingRepository_ConcurrentDelete(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, &domain.Booking{Reference: "BK-AB12CD"}))

	const attempts = 16
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- repo.Delete(ctx, "BK-AB12CD")
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrNotFound)
		}
	}
	assert.Equal(t, 1, succeeded)
}

// Mutation of a returned booking must not leak back into the store.
func TestMemoryBookingRepository_GetReturnsCopy(t *testing.T) {
	repo := NewMemoryBookingRepository()
	ctx := context.Background()

	assert.NoError(t, repo.Create(ctx, &domain.Booking{Reference: "BK-AB12CD", AmountPaid: 5000}))

	first, err := repo.GetByReference(ctx, "BK-AB12CD")
	assert.NoError(t, err)
	first.AmountPaid = 1

	second, err := repo.GetByReference(ctx, "BK-AB12CD")
	assert.NoError(t, err)
	assert.Equal(t, 5000.0, second.AmountPaid)
}
