package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/travelease/booking/internal/payment"
)

type PaymentHandler struct {
	authorizer payment.Authorizer
}

type authorizePaymentRequest struct {
	CardNumber    string  `json:"card_number"`
	Amount        float64 `json:"amount"`
	FlightID      string  `json:"flight_id"`
	FlightDetails string  `json:"flight_details"`
	SeatNumber    string  `json:"seat_number"`
	Email         string  `json:"email"`
}

type authorizePaymentResponse struct {
	Approved      bool   `json:"approved"`
	TransactionID string `json:"transaction_id,omitempty"`
	Reason        string `json:"reason,omitempty"`
}

func NewPaymentHandler(authorizer payment.Authorizer) *PaymentHandler {
	return &PaymentHandler{authorizer: authorizer}
}

func (h *PaymentHandler) Register(router *gin.RouterGroup) {
	router.POST("/authorize", h.authorize)
}

func (h *PaymentHandler) authorize(c *gin.Context) {
	var req authorizePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.authorizer.Authorize(c.Request.Context(), payment.Charge{
		CardNumber:    req.CardNumber,
		Amount:        req.Amount,
		FlightID:      req.FlightID,
		FlightDetails: req.FlightDetails,
		SeatNumber:    req.SeatNumber,
		Email:         req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if !result.Approved {
		c.JSON(http.StatusPaymentRequired, authorizePaymentResponse{
			Approved: false,
			Reason:   result.Reason,
		})
		return
	}

	c.JSON(http.StatusOK, authorizePaymentResponse{
		Approved:      true,
		TransactionID: result.TransactionID,
	})
}
