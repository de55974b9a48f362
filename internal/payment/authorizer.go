package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrInvalidRequest is returned when the charge is missing trip fields or
	// carries a non-positive amount. The request never reaches card validation.
	ErrInvalidRequest = errors.New("invalid or missing payment data")

	// ErrInvalidCard is returned for malformed card numbers. Distinct from a
	// decline: a declined card is well formed and produces a result, not an error.
	ErrInvalidCard = errors.New("invalid card number")
)

// Charge is a candidate payment for a trip.
type Charge struct {
	CardNumber    string
	Amount        float64
	FlightID      string
	FlightDetails string
	SeatNumber    string
	Email         string
}

// AuthorizationResult is the accept/decline decision for a well-formed charge.
type AuthorizationResult struct {
	Approved      bool
	TransactionID string
	Reason        string
}

type Authorizer interface {
	Authorize(ctx context.Context, charge Charge) (*AuthorizationResult, error)
}

// CardAuthorizer approves cards beginning with a configured test prefix.
// It holds no state and is safe to retry.
type CardAuthorizer struct {
	approvedPrefix string
	cardLength     int
}

func NewCardAuthorizer(approvedPrefix string, cardLength int) *CardAuthorizer {
	return &CardAuthorizer{approvedPrefix: approvedPrefix, cardLength: cardLength}
}

func (a *CardAuthorizer) Authorize(ctx context.Context, charge Charge) (*AuthorizationResult, error) {
	for _, field := range []struct {
		name  string
		value string
	}{
		{"flight_id", charge.FlightID},
		{"flight_details", charge.FlightDetails},
		{"seat_number", charge.SeatNumber},
		{"email", charge.Email},
	} {
		if strings.TrimSpace(field.value) == "" {
			return nil, fmt.Errorf("%w: missing %s", ErrInvalidRequest, field.name)
		}
	}
	if charge.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidRequest)
	}

	card := normalizeCardNumber(charge.CardNumber)
	for _, c := range card {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: card number must contain only digits", ErrInvalidCard)
		}
	}
	if len(card) != a.cardLength {
		return nil, fmt.Errorf("%w: card number must be %d digits", ErrInvalidCard, a.cardLength)
	}

	if !strings.HasPrefix(card, a.approvedPrefix) {
		return &AuthorizationResult{
			Approved: false,
			Reason:   "Your bank declined the transaction",
		}, nil
	}

	return &AuthorizationResult{
		Approved:      true,
		TransactionID: NewTransactionID(),
	}, nil
}

// NewTransactionID generates a TXN-XXXXXXXX identifier correlating a booking
// to its authorization decision.
func NewTransactionID() string {
	return "TXN-" + strings.ToUpper(uuid.NewString()[:8])
}

func normalizeCardNumber(card string) string {
	return strings.Join(strings.Fields(card), "")
}

var _ Authorizer = (*CardAuthorizer)(nil)
