package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Message is a kafka-go message with the header conventions used by this
// service's event stream.
type Message struct {
	Key       string
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
}

const (
	HeaderEventID       = "event-id"
	HeaderEventType     = "event-type"
	HeaderCorrelationID = "correlation-id"
	HeaderSource        = "source"
	HeaderTimestamp     = "timestamp"
)

// NewEventMessage builds a message carrying a JSON-encoded payload with
// the standard headers populated.
func NewEventMessage(key, eventType, correlationID, source string, payload any) (Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}

	now := time.Now()
	return Message{
		Key:       key,
		Value:     data,
		Timestamp: now,
		Headers: map[string]string{
			HeaderEventID:       uuid.NewString(),
			HeaderEventType:     eventType,
			HeaderCorrelationID: correlationID,
			HeaderSource:        source,
			HeaderTimestamp:     now.Format(time.RFC3339),
		},
	}, nil
}

// MessageHandler processes a consumed message. Returning an error marks
// the message as failed.
type MessageHandler func(ctx context.Context, msg Message) error

func (m *Message) DecodeValue(v any) error {
	return json.Unmarshal(m.Value, v)
}

func (m *Message) GetHeader(key string) (string, bool) {
	value, exists := m.Headers[key]
	return value, exists
}

func (m *Message) GetEventID() string {
	return m.Headers[HeaderEventID]
}

func (m *Message) GetEventType() string {
	return m.Headers[HeaderEventType]
}

func (m *Message) GetCorrelationID() string {
	return m.Headers[HeaderCorrelationID]
}
