package config

import "time"

const defaultPort = 8080

var defaultMongo = Mongo{
	URI:  "mongodb://127.0.0.1:27017",
	Name: "parcelDB",
}

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       50,
	Burst:      100,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultPprof = Pprof{
	Enabled: false,
	Addr:    "127.0.0.1:6060",
}

var defaultReconciler = Reconciler{
	Interval:   30 * time.Second,
	PendingAge: 2 * time.Minute,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultMongo returns the default document store settings.
func DefaultMongo() Mongo {
	return defaultMongo
}

// DefaultRateLimit returns the default rate limiter settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultPprof returns the default pprof server settings.
func DefaultPprof() Pprof {
	return defaultPprof
}

// DefaultReconciler returns the default reconciler settings.
func DefaultReconciler() Reconciler {
	return defaultReconciler
}
