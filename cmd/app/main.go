package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/travelease/booking/config"
	"github.com/travelease/booking/internal/bootstrap"
	"github.com/travelease/booking/internal/cache"
	"github.com/travelease/booking/internal/kafka"
	"github.com/travelease/booking/internal/notification"
	"github.com/travelease/booking/internal/payment"
	"github.com/travelease/booking/internal/repository"
	"github.com/travelease/booking/internal/service/booking"
	"github.com/travelease/booking/internal/service/flights"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, cfg.Booking.FlightsCacheTTL())

	var notifier notification.Notifier = notification.NewLogNotifier()
	if len(cfg.Kafka.Brokers) > 0 && cfg.Kafka.NotificationsTopic != "" {
		producer := kafka.NewProducer(cfg.Kafka.Brokers)
		defer producer.Close()
		notifier = notification.NewKafkaNotifier(producer, cfg.Kafka.NotificationsTopic)
	}

	authorizer := payment.NewCardAuthorizer(cfg.Payment.ApprovedPrefix, cfg.Payment.CardLength)

	bookingRepo := repository.NewBookingRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)

	bookingService := booking.NewBookingService(
		bookingRepo,
		authorizer,
		notifier,
		cfg.Booking.RefundRate,
		booking.WithLocker(redisCache, cfg.Booking.CancelLockTTL()),
		booking.WithTimeouts(cfg.Booking.AuthorizeTimeout(), cfg.Booking.StoreTimeout(), cfg.Booking.NotifyTimeout()),
	)
	flightService := flights.NewFlightService(flightRepo, redisCache)

	if err := bootstrap.Run(ctx, cfg, bookingService, flightService, authorizer, redisCache.Client()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
