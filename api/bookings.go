package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/travelease/booking/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	FlightID      string  `json:"flight_id"`
	FlightDetails string  `json:"flight_details"`
	SeatNumber    string  `json:"seat_number"`
	Email         string  `json:"email"`
	AmountPaid    float64 `json:"amount_paid"`
	TransactionID string  `json:"transaction_id"`
	CardNumber    string  `json:"card_number"`
}

type bookingResponse struct {
	Reference        string  `json:"reference"`
	FlightID         string  `json:"flight_id"`
	FlightDetails    string  `json:"flight_details"`
	SeatNumber       string  `json:"seat_number"`
	Email            string  `json:"email"`
	AmountPaid       float64 `json:"amount_paid"`
	TransactionID    string  `json:"transaction_id"`
	NotificationSent bool    `json:"notification_sent"`
	CreatedAt        string  `json:"created_at,omitempty"`
}

type cancellationResponse struct {
	Reference        string  `json:"reference"`
	RefundAmount     float64 `json:"refund_amount"`
	NotificationSent bool    `json:"notification_sent"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.DELETE("/:reference", h.cancel)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.service.Create(c.Request.Context(), booking.CreateInput{
		FlightID:      req.FlightID,
		FlightDetails: req.FlightDetails,
		SeatNumber:    req.SeatNumber,
		Email:         req.Email,
		AmountPaid:    req.AmountPaid,
		TransactionID: req.TransactionID,
		CardNumber:    req.CardNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	b := result.Booking
	createdAt := ""
	if !b.CreatedAt.IsZero() {
		createdAt = b.CreatedAt.Format(time.RFC3339)
	}
	c.JSON(http.StatusCreated, bookingResponse{
		Reference:        b.Reference,
		FlightID:         b.FlightID,
		FlightDetails:    b.FlightDetails,
		SeatNumber:       b.SeatNumber,
		Email:            b.Email,
		AmountPaid:       b.AmountPaid,
		TransactionID:    b.TransactionID,
		NotificationSent: result.NotificationSent,
		CreatedAt:        createdAt,
	})
}

func (h *BookingHandler) cancel(c *gin.Context) {
	result, err := h.service.Cancel(c.Request.Context(), booking.CancelInput{
		Reference: c.Param("reference"),
		Email:     c.Query("email"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cancellationResponse{
		Reference:        result.Reference,
		RefundAmount:     result.RefundAmount,
		NotificationSent: result.NotificationSent,
	})
}
