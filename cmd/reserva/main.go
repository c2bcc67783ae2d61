package main

import (
	"context"
	"os"

	audithandler "reserva/internal/audit/handler"
	auditrepository "reserva/internal/audit/repository"
	auditservice "reserva/internal/audit/service"
	availabilityhandler "reserva/internal/availability/handler"
	availabilityservice "reserva/internal/availability/service"
	bookinghandler "reserva/internal/bookings/handler"
	bookingrepository "reserva/internal/bookings/repository"
	bookingservice "reserva/internal/bookings/service"
	bookingvalidator "reserva/internal/bookings/validator"
	"reserva/internal/calendar"
	"reserva/internal/notify"
	"reserva/pkg/app"
	"reserva/pkg/config"
	"reserva/pkg/kafka"
)

const ServiceName = "reserva"

func main() {
	cfg := config.Load(ServiceName)

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal("Invalid configuration", "error", err)
	}
	cfg.LogConfiguration()

	cfg.Log.Info("Starting Reserva service")
	cfg.SetMongo()

	ctx := context.Background()

	cal := initCalendar(ctx, cfg)
	sender := initSender(cfg)
	producer := initProducer(cfg)

	bookingRepo := bookingrepository.NewMongoBookingRepository(cfg)
	if err := bookingRepo.EnsureIndexes(ctx); err != nil {
		cfg.Log.Fatal("Failed to ensure booking indexes", "error", err)
	}

	auditRepo := auditrepository.NewMongoAuditRepository(cfg)
	auditSvc := auditservice.NewAuditService(auditRepo, producer, cfg, cfg.Log)

	bookingSvc := bookingservice.NewBookingService(
		bookingRepo,
		bookingvalidator.NewBookingValidator(cfg.Log),
		bookingservice.NewIDGenerator(),
		cal,
		sender,
		auditSvc,
		cfg,
		cfg.Log,
	)
	availabilitySvc := availabilityservice.NewAvailabilityService(cal, cfg)

	serverApp := app.NewApplication()
	serverApp.SetApp(cfg,
		bookinghandler.NewBookingHandler(bookingSvc, cfg.Log),
		availabilityhandler.NewAvailabilityHandler(availabilitySvc, cfg.Log),
		audithandler.NewAuditHandler(auditSvc, cfg.Log),
	)
	serverApp.OnShutdown(func() {
		auditSvc.Stop()
		if producer != nil {
			if err := producer.Close(); err != nil {
				cfg.Log.Error("Failed to close Kafka producer", "error", err)
			}
		}
		cfg.Client.GracefulShutdown(cfg.Log)
	})
	serverApp.Run()
}

func initCalendar(ctx context.Context, cfg *config.Config) calendar.Service {
	if cfg.GoogleCalendarID == "" {
		cfg.Log.Info("Calendar integration disabled, all slots treated as free")
		return nil
	}
	svc, err := calendar.NewGoogleService(ctx, cfg.GoogleCalendarID, cfg.GoogleCredentialsFile, cfg.BusinessTimeZone, cfg.Log)
	if err != nil {
		cfg.Log.Warn("Calendar integration unavailable, continuing without it", "error", err)
		return nil
	}
	cfg.Log.Info("Calendar integration enabled", "calendar_id", cfg.GoogleCalendarID)
	return svc
}

func initSender(cfg *config.Config) notify.Sender {
	if cfg.SendGridAPIKey == "" {
		cfg.Log.Info("Email delivery disabled, notifications logged only")
		return notify.NewLogSender(cfg.Log)
	}
	sender, err := notify.NewSendGridSender(cfg.SendGridAPIKey, cfg.EmailFromAddress, cfg.EmailFromName, cfg.Log)
	if err != nil {
		cfg.Log.Warn("Email delivery unavailable, notifications logged only", "error", err)
		return notify.NewLogSender(cfg.Log)
	}
	cfg.Log.Info("Email delivery enabled", "from", cfg.EmailFromAddress)
	return sender
}

// initProducer wires the audit event stream only when brokers are set
// explicitly; audit entries are still persisted without it.
func initProducer(cfg *config.Config) *kafka.Producer {
	if os.Getenv(kafka.EnvBrokers) == "" {
		cfg.Log.Info("Kafka publishing disabled, audit entries persisted only")
		return nil
	}
	kafkaCfg, err := kafka.LoadConfig()
	if err != nil {
		cfg.Log.Warn("Kafka configuration invalid, audit publishing disabled", "error", err)
		return nil
	}
	producer, err := kafka.NewProducer(kafkaCfg, cfg.AuditTopic)
	if err != nil {
		cfg.Log.Warn("Kafka producer unavailable, audit publishing disabled", "error", err)
		return nil
	}
	cfg.Log.Info("Audit event publishing enabled", "topic", cfg.AuditTopic)
	return producer
}
