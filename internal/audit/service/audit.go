package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"reserva/internal/audit/repository"
	"reserva/pkg/config"
	"reserva/pkg/kafka"
	"reserva/pkg/logger"
	"reserva/pkg/model"
)

const drainWriteTimeout = 10 * time.Second

// AuditService records operator audit events and serves them back for
// inspection. Record is fire-and-forget: the caller never blocks and never
// observes a failure. Entries flow through a bounded queue drained by a
// background goroutine; when the queue is full the entry is dropped and
// counted, never the request delayed.
type AuditService interface {
	Record(entry model.AuditLogEntry)
	List(ctx context.Context, limit int, offset int64) ([]*model.AuditLogEntry, int64, error)
	Stop()
}

type auditService struct {
	repo     repository.AuditRepository
	producer *kafka.Producer
	log      *logger.Logger

	queue    chan model.AuditLogEntry
	done     chan struct{}
	stopOnce sync.Once

	mu      sync.Mutex
	dropped int64
}

// NewAuditService starts the drain goroutine. The producer is optional;
// when nil, entries are persisted without being published.
func NewAuditService(repo repository.AuditRepository, producer *kafka.Producer, cfg *config.Config, log *logger.Logger) AuditService {
	s := &auditService{
		repo:     repo,
		producer: producer,
		log:      log,
		queue:    make(chan model.AuditLogEntry, cfg.AuditQueueSize),
		done:     make(chan struct{}),
	}
	go s.drain()
	return s
}

func (s *auditService) Record(entry model.AuditLogEntry) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}
	select {
	case s.queue <- entry:
	default:
		s.mu.Lock()
		s.dropped++
		n := s.dropped
		s.mu.Unlock()
		s.log.Warn("Audit queue full, dropping entry",
			"event_kind", entry.EventKind,
			"correlation_id", entry.CorrelationID,
			"dropped_total", n,
		)
	}
}

func (s *auditService) List(ctx context.Context, limit int, offset int64) ([]*model.AuditLogEntry, int64, error) {
	entries, err := s.repo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// Stop closes the queue and waits for the drain goroutine to flush the
// remaining entries.
func (s *auditService) Stop() {
	s.stopOnce.Do(func() {
		close(s.queue)
		<-s.done
	})
}

func (s *auditService) drain() {
	defer close(s.done)
	for entry := range s.queue {
		s.write(entry)
	}
}

func (s *auditService) write(entry model.AuditLogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), drainWriteTimeout)
	defer cancel()

	e := entry
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if err := s.repo.Insert(ctx, &e); err != nil {
		s.log.Error("Failed to persist audit entry",
			"event_kind", e.EventKind,
			"correlation_id", e.CorrelationID,
			"error", err,
		)
		return
	}

	if s.producer == nil {
		return
	}
	msg, err := kafka.NewEventMessage(e.ID, e.EventKind, e.CorrelationID, "reserva", e)
	if err != nil {
		s.log.Error("Failed to encode audit event", "error", err)
		return
	}
	if err := s.producer.Publish(ctx, msg); err != nil {
		s.log.Warn("Failed to publish audit event",
			"event_kind", e.EventKind,
			"correlation_id", e.CorrelationID,
			"error", err,
		)
	}
}
