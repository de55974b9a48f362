package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/travelease/booking/internal/domain"
	"github.com/travelease/booking/internal/notification"
	"github.com/travelease/booking/internal/payment"
	"github.com/travelease/booking/internal/repository"
)

type BookingUseCase interface {
	Create(ctx context.Context, input CreateInput) (*CreateResult, error)
	Cancel(ctx context.Context, input CancelInput) (*CancelResult, error)
}

// Locker serializes cancellations per reference. Optional: without it the
// store's atomic delete still guarantees a single successful cancellation,
// the lock just keeps the second caller from racing through the read.
type Locker interface {
	AcquireCancelLock(ctx context.Context, reference string, ttl time.Duration) (bool, error)
	ReleaseCancelLock(ctx context.Context, reference string) error
}

type CreateInput struct {
	FlightID      string  `json:"flight_id"`
	FlightDetails string  `json:"flight_details"`
	SeatNumber    string  `json:"seat_number"`
	Email         string  `json:"email"`
	AmountPaid    float64 `json:"amount_paid"`
	// TransactionID carries an externally authorized payment; when set the
	// authorizer is skipped and CardNumber is ignored.
	TransactionID string `json:"transaction_id"`
	CardNumber    string `json:"card_number"`
}

type CreateResult struct {
	Booking          *domain.Booking
	NotificationSent bool
}

type CancelInput struct {
	Reference string
	Email     string
}

type CancelResult struct {
	Reference        string
	RefundAmount     float64
	NotificationSent bool
}

type BookingService struct {
	bookings         repository.BookingRepository
	authorizer       payment.Authorizer
	notifier         notification.Notifier
	locks            Locker
	refundRate       float64
	cancelLockTTL    time.Duration
	authorizeTimeout time.Duration
	storeTimeout     time.Duration
	notifyTimeout    time.Duration
}

type BookingServiceOption func(*BookingService)

func WithLocker(locks Locker, ttl time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		s.locks = locks
		s.cancelLockTTL = ttl
	}
}

func WithTimeouts(authorize, store, notify time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		s.authorizeTimeout = authorize
		s.storeTimeout = store
		s.notifyTimeout = notify
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	authorizer payment.Authorizer,
	notifier notification.Notifier,
	refundRate float64,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:   bookings,
		authorizer: authorizer,
		notifier:   notifier,
		refundRate: refundRate,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Create validates the request, authorizes payment unless the caller already
// holds a transaction id, persists the booking and sends a confirmation.
// The booking either becomes durable or the call fails; a failed notification
// only flips NotificationSent.
func (s *BookingService) Create(ctx context.Context, input CreateInput) (*CreateResult, error) {
	if strings.TrimSpace(input.FlightID) == "" ||
		strings.TrimSpace(input.FlightDetails) == "" ||
		strings.TrimSpace(input.SeatNumber) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		input.AmountPaid <= 0 {
		return nil, ErrIncompleteRequest
	}

	transactionID := input.TransactionID
	if transactionID == "" {
		authCtx, cancel := s.boundedContext(ctx, s.authorizeTimeout)
		result, err := s.authorizer.Authorize(authCtx, payment.Charge{
			CardNumber:    input.CardNumber,
			Amount:        input.AmountPaid,
			FlightID:      input.FlightID,
			FlightDetails: input.FlightDetails,
			SeatNumber:    input.SeatNumber,
			Email:         input.Email,
		})
		cancel()
		if err != nil {
			return nil, err
		}
		if !result.Approved {
			return nil, fmt.Errorf("%w: %s", ErrPaymentDeclined, result.Reason)
		}
		transactionID = result.TransactionID
	}

	booking := &domain.Booking{
		Reference:     NewReference(),
		FlightID:      input.FlightID,
		FlightDetails: input.FlightDetails,
		SeatNumber:    input.SeatNumber,
		Email:         input.Email,
		AmountPaid:    input.AmountPaid,
		TransactionID: transactionID,
	}

	storeCtx, cancel := s.boundedContext(ctx, s.storeTimeout)
	err := s.bookings.Create(storeCtx, booking)
	cancel()
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			// Generated references should never collide; treat it as an
			// internal invariant violation, not something to overwrite.
			return nil, fmt.Errorf("%w: reference collision on %s", ErrStoreUnavailable, booking.Reference)
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	notifyCtx, cancel := s.boundedContext(ctx, s.notifyTimeout)
	sent := s.notifier.SendConfirmation(notifyCtx, booking)
	cancel()
	if !sent {
		log.Printf("WARNING: confirmation notification failed for booking %s", booking.Reference)
	}

	return &CreateResult{Booking: booking, NotificationSent: sent}, nil
}

// Cancel looks up the booking, computes the refund, deletes the record and
// then notifies the customer. The delete happens before success is reported,
// so a second cancel for the same reference always sees not-found and the
// refund is never communicated twice.
func (s *BookingService) Cancel(ctx context.Context, input CancelInput) (*CancelResult, error) {
	if strings.TrimSpace(input.Reference) == "" || strings.TrimSpace(input.Email) == "" {
		return nil, ErrIncompleteRequest
	}

	if s.locks != nil {
		ok, err := s.locks.AcquireCancelLock(ctx, input.Reference, s.cancelLockTTL)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		if !ok {
			return nil, ErrCancellationInProgress
		}
		defer func() {
			if err := s.locks.ReleaseCancelLock(ctx, input.Reference); err != nil {
				log.Printf("WARNING: failed to release cancel lock for %s: %v", input.Reference, err)
			}
		}()
	}

	storeCtx, cancel := s.boundedContext(ctx, s.storeTimeout)
	booking, err := s.bookings.GetByReference(storeCtx, input.Reference)
	cancel()
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	refund := roundToCents(booking.AmountPaid * s.refundRate)

	storeCtx, cancel = s.boundedContext(ctx, s.storeTimeout)
	err = s.bookings.Delete(storeCtx, input.Reference)
	cancel()
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Lost the race to another cancellation.
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	notifyCtx, cancel := s.boundedContext(ctx, s.notifyTimeout)
	sent := s.notifier.SendCancellation(notifyCtx, booking, refund)
	cancel()
	if !sent {
		log.Printf("WARNING: cancellation notification failed for booking %s", booking.Reference)
	}

	return &CancelResult{
		Reference:        booking.Reference,
		RefundAmount:     refund,
		NotificationSent: sent,
	}, nil
}

func (s *BookingService) boundedContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// NewReference generates a BK-XXXXXX booking reference. Statistically unique;
// the store's duplicate check backstops the remote chance of a collision.
func NewReference() string {
	return "BK-" + strings.ToUpper(uuid.NewString()[:6])
}

// roundToCents rounds half up to two decimal places.
func roundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

var _ BookingUseCase = (*BookingService)(nil)
