package email

import (
	"context"
	"fmt"
	"log"
	"net/smtp"

	"github.com/travelease/booking/config"
	"github.com/travelease/booking/internal/kafka"
)

// Sender turns booking events into customer email. Transport failures are
// logged and reported as false; they never propagate.
type Sender struct {
	cfg config.SMTPConfig
}

func NewSender(cfg config.SMTPConfig) *Sender {
	return &Sender{cfg: cfg}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) bool {
	var subject, body string
	switch event.Type {
	case kafka.EventBookingConfirmed:
		subject = "TravelEase: Your Booking Is Confirmed"
		body = fmt.Sprintf("Your booking is confirmed.\r\n\r\nBooking Reference: %s\r\nFlight: %s (%s)\r\nSeat: %s\r\nAmount Paid: %.2f\r\nTransaction ID: %s\r\n",
			event.Reference, event.FlightID, event.FlightDetails, event.SeatNumber, event.AmountPaid, event.TransactionID)
	case kafka.EventBookingCancelled:
		subject = "TravelEase: Your Booking Has Been Cancelled"
		body = fmt.Sprintf("Your booking has been cancelled.\r\n\r\nBooking Reference: %s\r\nFlight: %s (%s)\r\nOriginal Price: %.2f\r\nRefund Amount: %.2f\r\n\r\nThe refund will be processed within 5-7 business days.\r\n",
			event.Reference, event.FlightID, event.FlightDetails, event.AmountPaid, event.RefundAmount)
	default:
		log.Printf("skipping unknown event type %q for booking %s", event.Type, event.Reference)
		return false
	}

	if s.cfg.Host == "" {
		// No transport configured, log-only delivery for local runs.
		log.Printf("send email to %s: %s", event.Email, subject)
		return true
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", s.cfg.From, event.Email, subject, body)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{event.Email}, []byte(msg)); err != nil {
		log.Printf("email send failed for booking %s: %v", event.Reference, err)
		return false
	}
	return true
}
