package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores database connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a postgres connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Kafka stores rating-event consumer settings. Empty brokers disable the consumer.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// RateLimit stores HTTP rate limiter settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Worker stores background worker settings.
type Worker struct {
	OfferExpiryInterval time.Duration
}

// Pprof stores the debug profiling server settings.
type Pprof struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Config stores service settings.
type Config struct {
	Port      int
	DB        DB
	Kafka     Kafka
	RateLimit RateLimit
	Worker    Worker
	Pprof     Pprof
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      DefaultPort(),
		DB:        DefaultDB(),
		Kafka:     DefaultKafka(),
		RateLimit: DefaultRateLimit(),
		Worker:    DefaultWorker(),
		Pprof:     DefaultPprof(),
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	envString(&cfg.DB.Host, "DB_HOST")
	envString(&cfg.DB.Port, "DB_PORT")
	envString(&cfg.DB.User, "DB_USER")
	envString(&cfg.DB.Pass, "DB_PASS")
	envString(&cfg.DB.Name, "DB_NAME")
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitList(v)
	}
	envString(&cfg.Kafka.Topic, "KAFKA_RATINGS_TOPIC")
	envString(&cfg.Kafka.GroupID, "KAFKA_GROUP_ID")
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		cfg.RateLimit.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("OFFER_EXPIRY_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Worker.OfferExpiryInterval = d
		}
	}
	if v := os.Getenv("PPROF_ENABLED"); v != "" {
		cfg.Pprof.Enabled = v == "true" || v == "1"
	}
	envString(&cfg.Pprof.Addr, "PPROF_ADDR")
	envString(&cfg.Pprof.User, "PPROF_USER")
	envString(&cfg.Pprof.Pass, "PPROF_PASS")

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded settings.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if _, err := strconv.Atoi(c.DB.Port); err != nil {
		return fmt.Errorf("invalid db port: %q", c.DB.Port)
	}
	if c.Worker.OfferExpiryInterval <= 0 {
		return fmt.Errorf("invalid offer expiry interval: %v", c.Worker.OfferExpiryInterval)
	}
	return nil
}

func envString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
