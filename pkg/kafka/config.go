package kafka

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvBrokers              = "KAFKA_BROKERS"
	EnvProducerMaxAttempts  = "KAFKA_PRODUCER_MAX_ATTEMPTS"
	EnvProducerBatchTimeout = "KAFKA_PRODUCER_BATCH_TIMEOUT"
	EnvConsumerMaxWait      = "KAFKA_CONSUMER_MAX_WAIT"
	EnvConsumerMinBytes     = "KAFKA_CONSUMER_MIN_BYTES"
	EnvConsumerMaxBytes     = "KAFKA_CONSUMER_MAX_BYTES"
)

const (
	defaultBrokers              = "localhost:9092"
	defaultProducerMaxAttempts  = 3
	defaultProducerBatchTimeout = 10 * time.Millisecond
	defaultConsumerMaxWait      = 500 * time.Millisecond
	defaultConsumerMinBytes     = 1
	defaultConsumerMaxBytes     = 10 * 1024 * 1024
)

type Config struct {
	Brokers []string

	ProducerMaxAttempts  int
	ProducerBatchTimeout time.Duration

	ConsumerMinBytes int
	ConsumerMaxBytes int
	ConsumerMaxWait  time.Duration
}

func LoadConfig() (*Config, error) {
	brokersStr := getEnvStr(EnvBrokers, defaultBrokers)
	brokers := strings.Split(brokersStr, ",")
	for i, broker := range brokers {
		brokers[i] = strings.TrimSpace(broker)
	}

	cfg := &Config{
		Brokers:              brokers,
		ProducerMaxAttempts:  getEnvInt(EnvProducerMaxAttempts, defaultProducerMaxAttempts),
		ProducerBatchTimeout: getEnvDuration(EnvProducerBatchTimeout, defaultProducerBatchTimeout),
		ConsumerMinBytes:     getEnvInt(EnvConsumerMinBytes, defaultConsumerMinBytes),
		ConsumerMaxBytes:     getEnvInt(EnvConsumerMaxBytes, defaultConsumerMaxBytes),
		ConsumerMaxWait:      getEnvDuration(EnvConsumerMaxWait, defaultConsumerMaxWait),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Brokers) == 0 || c.Brokers[0] == "" {
		return fmt.Errorf("at least one kafka broker is required")
	}
	if c.ProducerMaxAttempts < 1 {
		return fmt.Errorf("producer max attempts must be at least 1, got %d", c.ProducerMaxAttempts)
	}
	if c.ConsumerMinBytes < 1 || c.ConsumerMaxBytes < c.ConsumerMinBytes {
		return fmt.Errorf("invalid consumer byte bounds: min=%d max=%d", c.ConsumerMinBytes, c.ConsumerMaxBytes)
	}
	return nil
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
