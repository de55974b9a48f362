package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/travelease/booking/internal/domain"
	"github.com/travelease/booking/internal/repository"
	"github.com/travelease/booking/internal/service/booking"
)

// MockBookingUseCase is a mock implementation of booking.BookingUseCase
type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) Create(ctx context.Context, input booking.CreateInput) (*booking.CreateResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.CreateResult), args.Error(1)
}

func (m *MockBookingUseCase) Cancel(ctx context.Context, input booking.CancelInput) (*booking.CancelResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.CancelResult), args.Error(1)
}

func TestBookingHandler_create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	input := booking.CreateInput{
		FlightID:      "AI202",
		FlightDetails: "DEL-BOM",
		SeatNumber:    "12A",
		Email:         "a@b.com",
		AmountPaid:    5000,
		CardNumber:    "4242424242424242",
	}
	body, _ := json.Marshal(input)
	c.Request = httptest.NewRequest("POST", "/api/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	result := &booking.CreateResult{
		Booking: &domain.Booking{
			Reference:     "BK-AB12CD",
			FlightID:      "AI202",
			FlightDetails: "DEL-BOM",
			SeatNumber:    "12A",
			Email:         "a@b.com",
			AmountPaid:    5000,
			TransactionID: "TXN-ABCD1234",
		},
		NotificationSent: true,
	}

	mockService.On("Create", c.Request.Context(), input).Return(result, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response bookingResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "BK-AB12CD", response.Reference)
	assert.Equal(t, "TXN-ABCD1234", response.TransactionID)
	assert.Equal(t, 5000.0, response.AmountPaid)
	assert.True(t, response.NotificationSent)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_declined(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(booking.CreateInput{
		FlightID:      "AI202",
		FlightDetails: "DEL-BOM",
		SeatNumber:    "12A",
		Email:         "a@b.com",
		AmountPaid:    5000,
		CardNumber:    "1111111111111111",
	})
	c.Request = httptest.NewRequest("POST", "/api/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Create", c.Request.Context(), mock.AnythingOfType("booking.CreateInput")).
		Return(nil, fmt.Errorf("%w: Your bank declined the transaction", booking.ErrPaymentDeclined))

	handler.create(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_incomplete(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body, _ := json.Marshal(booking.CreateInput{FlightID: "AI202"})
	c.Request = httptest.NewRequest("POST", "/api/bookings", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Create", c.Request.Context(), mock.AnythingOfType("booking.CreateInput")).
		Return(nil, booking.ErrIncompleteRequest)

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_cancel(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "reference", Value: "BK-AB12CD"}}
	c.Request = httptest.NewRequest("DELETE", "/api/bookings/BK-AB12CD?email=a@b.com", nil)

	result := &booking.CancelResult{
		Reference:        "BK-AB12CD",
		RefundAmount:     2750.0,
		NotificationSent: true,
	}

	mockService.On("Cancel", c.Request.Context(), booking.CancelInput{
		Reference: "BK-AB12CD",
		Email:     "a@b.com",
	}).Return(result, nil)

	handler.cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response cancellationResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "BK-AB12CD", response.Reference)
	assert.Equal(t, 2750.0, response.RefundAmount)
	assert.True(t, response.NotificationSent)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_cancel_notFound(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "reference", Value: "BK-MISSING"}}
	c.Request = httptest.NewRequest("DELETE", "/api/bookings/BK-MISSING?email=a@b.com", nil)

	mockService.On("Cancel", c.Request.Context(), mock.AnythingOfType("booking.CancelInput")).
		Return(nil, repository.ErrNotFound)

	handler.cancel(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingHandler_cancel_storeUnavailable(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "reference", Value: "BK-AB12CD"}}
	c.Request = httptest.NewRequest("DELETE", "/api/bookings/BK-AB12CD?email=a@b.com", nil)

	mockService.On("Cancel", c.Request.Context(), mock.AnythingOfType("booking.CancelInput")).
		Return(nil, fmt.Errorf("%w: connection refused", booking.ErrStoreUnavailable))

	handler.cancel(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
