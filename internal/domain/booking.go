package domain

import "time"

// Booking is a confirmed seat reservation tied to a payment. Records are
// inserted once and deleted on cancellation, never updated in place.
type Booking struct {
	Reference     string
	FlightID      string
	FlightDetails string
	SeatNumber    string
	Email         string
	AmountPaid    float64
	TransactionID string
	CreatedAt     time.Time
}
