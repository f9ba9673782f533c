package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores parcel-server settings.
type Config struct {
	Port       int
	Mongo      Mongo
	Stripe     Stripe
	RateLimit  RateLimit
	Pprof      Pprof
	Kafka      Kafka
	Reconciler Reconciler
}

// Mongo stores document store connection settings.
type Mongo struct {
	URI  string
	User string
	Pass string
	Host string
	Name string
}

// ConnURI returns the connection string. An explicit MONGO_URI wins;
// otherwise the URI is assembled from credentials the way the hosted
// cluster expects it.
func (m Mongo) ConnURI() string {
	if m.URI != "" {
		return m.URI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(m.User), url.QueryEscape(m.Pass), m.Host)
}

// Stripe stores payment gateway settings.
type Stripe struct {
	SecretKey string
}

// RateLimit stores HTTP rate limiter settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pprof stores the debug server settings.
type Pprof struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Kafka stores tracking event consumer settings. Empty brokers disable the consumer.
type Kafka struct {
	Brokers []string
	Topic   string
	GroupID string
}

// Reconciler stores the pending payment reconciler settings.
type Reconciler struct {
	Interval   time.Duration
	PendingAge time.Duration
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:       DefaultPort(),
		Mongo:      DefaultMongo(),
		RateLimit:  DefaultRateLimit(),
		Pprof:      DefaultPprof(),
		Reconciler: DefaultReconciler(),
	}

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = p
	}

	readStr(&cfg.Mongo.URI, "MONGO_URI")
	readStr(&cfg.Mongo.User, "DB_USER")
	readStr(&cfg.Mongo.Pass, "DB_PASS")
	readStr(&cfg.Mongo.Host, "DB_HOST")
	readStr(&cfg.Mongo.Name, "DB_NAME")

	readStr(&cfg.Stripe.SecretKey, "PAYMENT_GATEWAY_KEY")

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		cfg.RateLimit.Enabled = v == "true" || v == "1"
	}
	if err := readFloat(&cfg.RateLimit.Rate, "RATE_LIMIT_RATE"); err != nil {
		return nil, err
	}
	if err := readInt(&cfg.RateLimit.Burst, "RATE_LIMIT_BURST"); err != nil {
		return nil, err
	}
	if err := readDuration(&cfg.RateLimit.TTL, "RATE_LIMIT_TTL"); err != nil {
		return nil, err
	}
	if err := readInt(&cfg.RateLimit.MaxBuckets, "RATE_LIMIT_MAX_BUCKETS"); err != nil {
		return nil, err
	}

	if v := os.Getenv("PPROF_ENABLED"); v != "" {
		cfg.Pprof.Enabled = v == "true" || v == "1"
	}
	readStr(&cfg.Pprof.Addr, "PPROF_ADDR")
	readStr(&cfg.Pprof.User, "PPROF_USER")
	readStr(&cfg.Pprof.Pass, "PPROF_PASS")

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.Kafka.Brokers = append(cfg.Kafka.Brokers, b)
			}
		}
	}
	readStr(&cfg.Kafka.Topic, "KAFKA_TOPIC")
	readStr(&cfg.Kafka.GroupID, "KAFKA_GROUP_ID")

	if err := readDuration(&cfg.Reconciler.Interval, "RECONCILE_INTERVAL"); err != nil {
		return nil, err
	}
	if err := readDuration(&cfg.Reconciler.PendingAge, "RECONCILE_PENDING_AGE"); err != nil {
		return nil, err
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	// tolerate foreign flags (e.g. the test runner's)
	pflag.CommandLine.ParseErrorsWhitelist.UnknownFlags = true
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Mongo.Name == "" {
		return nil, fmt.Errorf("empty database name")
	}
	if cfg.Reconciler.Interval <= 0 || cfg.Reconciler.PendingAge <= 0 {
		return nil, fmt.Errorf("reconciler interval and pending age must be positive")
	}
	return cfg, nil
}

func readStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func readInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}

func readFloat(dst *float64, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = f
	return nil
}

func readDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = d
	return nil
}
