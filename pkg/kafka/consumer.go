package kafka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/segmentio/kafka-go"
)

// Consumer wraps a kafka-go reader and dispatches each message to a
// handler. Handler errors are logged by the caller-supplied handler;
// consumption continues either way.
type Consumer struct {
	reader  *kafka.Reader
	handler MessageHandler
	closed  bool
	mu      sync.RWMutex
}

func NewConsumer(cfg *Config, topic, groupID string, handler MessageHandler) (*Consumer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic cannot be empty")
	}
	if groupID == "" {
		return nil, fmt.Errorf("group ID cannot be empty")
	}
	if handler == nil {
		return nil, fmt.Errorf("message handler cannot be nil")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: cfg.ConsumerMinBytes,
		MaxBytes: cfg.ConsumerMaxBytes,
		MaxWait:  cfg.ConsumerMaxWait,
		Logger:   kafka.LoggerFunc(func(string, ...any) {}),
	})

	return &Consumer{reader: reader, handler: handler}, nil
}

// Run consumes until ctx is cancelled or the consumer is closed.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		kafkaMsg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return nil
			}
			c.mu.RLock()
			closed := c.closed
			c.mu.RUnlock()
			if closed {
				return nil
			}
			return fmt.Errorf("failed to read message: %w", err)
		}

		msg := Message{
			Key:       string(kafkaMsg.Key),
			Value:     kafkaMsg.Value,
			Topic:     kafkaMsg.Topic,
			Partition: kafkaMsg.Partition,
			Offset:    kafkaMsg.Offset,
			Timestamp: kafkaMsg.Time,
			Headers:   make(map[string]string, len(kafkaMsg.Headers)),
		}
		for _, h := range kafkaMsg.Headers {
			msg.Headers[h.Key] = string(h.Value)
		}

		_ = c.handler(ctx, msg)
	}
}

func (c *Consumer) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.reader.Close()
}
