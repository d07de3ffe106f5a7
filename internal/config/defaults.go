package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "freight",
	Pass: "freight",
	Name: "freight_match",
}

var defaultKafka = Kafka{
	Brokers: nil, // consumer disabled unless brokers are configured
	Topic:   "ratings.submitted",
	GroupID: "freight-match-ratings",
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       20,
	Burst:      40,
	TTL:        5 * time.Minute,
	MaxBuckets: 10_000,
}

var defaultWorker = Worker{
	OfferExpiryInterval: 30 * time.Second,
}

var defaultPprof = Pprof{
	Enabled: false,
	Addr:    "127.0.0.1:6060",
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default rating-consumer settings.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultRateLimit returns the default rate limiter settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultWorker returns the default worker settings.
func DefaultWorker() Worker {
	return defaultWorker
}

// DefaultPprof returns the default profiling server settings.
func DefaultPprof() Pprof {
	return defaultPprof
}
