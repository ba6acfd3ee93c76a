package cmd

import (
	"fmt"
	"strconv"

	"storefront/internal/pkg/errs"
)

const (
	defaultHTTPPort         = "8080"
	defaultOutboxRelayBatch = 100
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// KafkaHost is a comma separated broker list. The outbox relay is off
	// when it is empty; events accumulate until it is set.
	KafkaHost                    string
	KafkaOrderStatusChangedTopic string

	OutboxRelaySchedule string
	OutboxRelayBatch    int

	// JaegerEndpoint is the collector URL. Spans are not exported when empty.
	JaegerEndpoint string
}

// NewConfigFromEnv reads the configuration through getenv, typically
// os.Getenv after the .env file has been loaded.
func NewConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		HTTPPort:                     getenv("HTTP_PORT"),
		DBHost:                       getenv("DB_HOST"),
		DBPort:                       getenv("DB_PORT"),
		DBUser:                       getenv("DB_USER"),
		DBPassword:                   getenv("DB_PASSWORD"),
		DBName:                       getenv("DB_NAME"),
		DBSslMode:                    getenv("DB_SSLMODE"),
		KafkaHost:                    getenv("KAFKA_HOST"),
		KafkaOrderStatusChangedTopic: getenv("KAFKA_ORDER_STATUS_CHANGED_TOPIC"),
		OutboxRelaySchedule:          getenv("OUTBOX_RELAY_SCHEDULE"),
		OutboxRelayBatch:             defaultOutboxRelayBatch,
		JaegerEndpoint:               getenv("JAEGER_ENDPOINT"),
	}

	if cfg.HTTPPort == "" {
		cfg.HTTPPort = defaultHTTPPort
	}
	if cfg.DBSslMode == "" {
		cfg.DBSslMode = "disable"
	}

	if raw := getenv("OUTBOX_RELAY_BATCH"); raw != "" {
		batch, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, errs.NewValueIsInvalidErrorWithCause("OUTBOX_RELAY_BATCH", err)
		}
		cfg.OutboxRelayBatch = batch
	}

	if cfg.DBHost == "" || cfg.DBName == "" {
		return Config{}, errs.NewValueIsRequiredError("DB_HOST and DB_NAME")
	}

	return cfg, nil
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) RelayEnabled() bool {
	return c.KafkaHost != ""
}
