package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Payment  PaymentConfig  `yaml:"payment"`
	Booking  BookingConfig  `yaml:"booking"`
	SMTP     SMTPConfig     `yaml:"smtp"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

// PaymentConfig holds the test-mode authorization policy. A real payment
// network integration replaces the authorizer implementation, not this shape.
type PaymentConfig struct {
	ApprovedPrefix string `yaml:"approved_prefix"`
	CardLength     int    `yaml:"card_length"`
}

type BookingConfig struct {
	RefundRate              float64 `yaml:"refund_rate"`
	FlightsCacheTTLSeconds  int     `yaml:"flights_cache_ttl_seconds"`
	CancelLockTTLSeconds    int     `yaml:"cancel_lock_ttl_seconds"`
	AuthorizeTimeoutSeconds int     `yaml:"authorize_timeout_seconds"`
	StoreTimeoutSeconds     int     `yaml:"store_timeout_seconds"`
	NotifyTimeoutSeconds    int     `yaml:"notify_timeout_seconds"`
}

func (b BookingConfig) FlightsCacheTTL() time.Duration {
	return time.Duration(b.FlightsCacheTTLSeconds) * time.Second
}

func (b BookingConfig) CancelLockTTL() time.Duration {
	return time.Duration(b.CancelLockTTLSeconds) * time.Second
}

func (b BookingConfig) AuthorizeTimeout() time.Duration {
	return time.Duration(b.AuthorizeTimeoutSeconds) * time.Second
}

func (b BookingConfig) StoreTimeout() time.Duration {
	return time.Duration(b.StoreTimeoutSeconds) * time.Second
}

func (b BookingConfig) NotifyTimeout() time.Duration {
	return time.Duration(b.NotifyTimeoutSeconds) * time.Second
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Payment.ApprovedPrefix == "" {
		c.Payment.ApprovedPrefix = "4242"
	}
	if c.Payment.CardLength == 0 {
		c.Payment.CardLength = 16
	}
	if c.Booking.RefundRate == 0 {
		c.Booking.RefundRate = 0.55
	}
	if c.Booking.CancelLockTTLSeconds == 0 {
		c.Booking.CancelLockTTLSeconds = 30
	}
	if c.Booking.AuthorizeTimeoutSeconds == 0 {
		c.Booking.AuthorizeTimeoutSeconds = 10
	}
	if c.Booking.StoreTimeoutSeconds == 0 {
		c.Booking.StoreTimeoutSeconds = 5
	}
	if c.Booking.NotifyTimeoutSeconds == 0 {
		c.Booking.NotifyTimeoutSeconds = 5
	}
}
