package notification

import (
	"context"
	"log"

	"github.com/travelease/booking/internal/domain"
	"github.com/travelease/booking/internal/kafka"
)

// Notifier delivers customer-facing messages. Implementations report failure
// as false, never as an error, and must not retry internally: the workflow
// treats notification as advisory and never rolls back a committed booking
// because of it.
type Notifier interface {
	SendConfirmation(ctx context.Context, booking *domain.Booking) bool
	SendCancellation(ctx context.Context, booking *domain.Booking, refundAmount float64) bool
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// KafkaNotifier hands events to the notifications topic; the worker does the
// actual email delivery. A true result means the broker accepted the event,
// so delivery is optimistic from the caller's point of view.
type KafkaNotifier struct {
	producer Producer
	topic    string
}

func NewKafkaNotifier(producer Producer, topic string) *KafkaNotifier {
	return &KafkaNotifier{producer: producer, topic: topic}
}

func (n *KafkaNotifier) SendConfirmation(ctx context.Context, booking *domain.Booking) bool {
	return n.publish(ctx, kafka.BookingEvent{
		Type:          kafka.EventBookingConfirmed,
		Reference:     booking.Reference,
		FlightID:      booking.FlightID,
		FlightDetails: booking.FlightDetails,
		SeatNumber:    booking.SeatNumber,
		Email:         booking.Email,
		AmountPaid:    booking.AmountPaid,
		TransactionID: booking.TransactionID,
	})
}

func (n *KafkaNotifier) SendCancellation(ctx context.Context, booking *domain.Booking, refundAmount float64) bool {
	return n.publish(ctx, kafka.BookingEvent{
		Type:          kafka.EventBookingCancelled,
		Reference:     booking.Reference,
		FlightID:      booking.FlightID,
		FlightDetails: booking.FlightDetails,
		SeatNumber:    booking.SeatNumber,
		Email:         booking.Email,
		AmountPaid:    booking.AmountPaid,
		RefundAmount:  refundAmount,
		TransactionID: booking.TransactionID,
	})
}

func (n *KafkaNotifier) publish(ctx context.Context, event kafka.BookingEvent) bool {
	if n.producer == nil || n.topic == "" {
		return false
	}
	if err := n.producer.Publish(ctx, n.topic, event.Reference, event); err != nil {
		log.Printf("WARNING: failed to publish %s event for booking %s: %v", event.Type, event.Reference, err)
		return false
	}
	return true
}

// LogNotifier is the no-broker fallback for local runs.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) SendConfirmation(ctx context.Context, booking *domain.Booking) bool {
	log.Printf("confirmation for %s to %s: flight %s seat %s", booking.Reference, booking.Email, booking.FlightID, booking.SeatNumber)
	return true
}

func (n *LogNotifier) SendCancellation(ctx context.Context, booking *domain.Booking, refundAmount float64) bool {
	log.Printf("cancellation for %s to %s: refund %.2f", booking.Reference, booking.Email, refundAmount)
	return true
}

var (
	_ Notifier = (*KafkaNotifier)(nil)
	_ Notifier = (*LogNotifier)(nil)
)
