package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"reserva/pkg/config"
	"reserva/pkg/kafka"
	"reserva/pkg/model"
)

const ServiceName = "audittail"

// audittail follows the audit event stream and prints one line per event.
// Degraded booking pipelines leave their trace here and in the Audit_log
// collection; this is the quickest way to watch them live.
func main() {
	cfg := config.Load(ServiceName)

	kafkaCfg, err := kafka.LoadConfig()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}

	groupID := ServiceName
	if v := os.Getenv("AUDIT_TAIL_GROUP_ID"); v != "" {
		groupID = v
	}

	consumer, err := kafka.NewConsumer(kafkaCfg, cfg.AuditTopic, groupID, printEntry)
	if err != nil {
		cfg.Log.Fatal("Failed to create consumer", "topic", cfg.AuditTopic, "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg.Log.Info("Tailing audit events", "topic", cfg.AuditTopic, "group_id", groupID)
	if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		cfg.Log.Error("Consumer stopped", "error", err)
	}
	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close consumer", "error", err)
	}
}

func printEntry(_ context.Context, msg kafka.Message) error {
	var entry model.AuditLogEntry
	if err := msg.DecodeValue(&entry); err != nil {
		// not an audit payload; show it raw rather than stall the stream
		fmt.Printf("%s\t<undecodable>\t%s\n", msg.Key, string(msg.Value))
		return nil
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	fmt.Printf("%s\t%s\t%s\n", entry.CreatedAt.Format("2006-01-02T15:04:05Z07:00"), entry.EventKind, line)
	return nil
}
