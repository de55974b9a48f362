package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/travelease/booking/api"
	"github.com/travelease/booking/config"
	"github.com/travelease/booking/internal/middleware"
	"github.com/travelease/booking/internal/payment"
	"github.com/travelease/booking/internal/service/booking"
	"github.com/travelease/booking/internal/service/flights"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, bookingSvc booking.BookingUseCase, flightSvc flights.FlightUseCase, authorizer payment.Authorizer, redisClient *redis.Client) error {
	router := newRouter(bookingSvc, flightSvc, authorizer, redisClient)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}

func newRouter(bookingSvc booking.BookingUseCase, flightSvc flights.FlightUseCase, authorizer payment.Authorizer, redisClient *redis.Client) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Booking Service is running!"})
	})

	apiGroup := router.Group("/api")
	if redisClient != nil {
		apiGroup.Use(middleware.Idempotency(redisClient))
	}

	api.NewBookingHandler(bookingSvc).Register(apiGroup.Group("/bookings"))
	api.NewPaymentHandler(authorizer).Register(apiGroup.Group("/payments"))
	api.NewFlightHandler(flightSvc).Register(apiGroup.Group("/flights"))

	return router
}
