package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"reserva/pkg/client"
	"reserva/pkg/logger"
)

type Config struct {
	MongoURI          string
	MongoDatabaseName string
	MongoConnTimeout  time.Duration

	Port string

	RequestTimeout time.Duration
	IdempotencyTTL time.Duration
	MaxRequestSize int

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Working-hours window for the single business calendar. Slot start
	// times fall within [WorkingHoursStart, WorkingHoursEnd).
	WorkingHoursStart  int
	WorkingHoursEnd    int
	SlotIntervalMin    int
	DefaultDurationMin int
	BusinessTimeZone   string

	GoogleCalendarID       string
	GoogleCredentialsFile  string
	CalendarRequestTimeout time.Duration

	SendGridAPIKey      string
	EmailFromAddress    string
	EmailFromName       string
	BusinessEmail       string
	EmailRequestTimeout time.Duration

	AuditTopic     string
	AuditQueueSize int

	Log    *logger.Logger
	Client *client.Client
}

func Load(serviceName string) *Config {
	cfg := &Config{
		MongoURI:          getEnvStr(EnvMongoURI, DefaultMongoURI),
		MongoDatabaseName: getEnvStr(EnvMongoDatabaseName, DefaultMongoDatabaseName),
		MongoConnTimeout:  getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		Port: getEnvStr(EnvPort, DefaultPort),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		IdempotencyTTL: getEnvDuration(EnvIdempotencyTTL, DefaultIdempotencyTTL),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		WorkingHoursStart:  getEnvNum(EnvWorkingHoursStart, DefaultWorkingHoursStart),
		WorkingHoursEnd:    getEnvNum(EnvWorkingHoursEnd, DefaultWorkingHoursEnd),
		SlotIntervalMin:    getEnvNum(EnvSlotIntervalMin, DefaultSlotIntervalMin),
		DefaultDurationMin: getEnvNum(EnvDefaultDurationMin, DefaultDefaultDurationMin),
		BusinessTimeZone:   getEnvStr(EnvBusinessTimeZone, DefaultBusinessTimeZone),

		GoogleCalendarID:       getEnvStr(EnvGoogleCalendarID, ""),
		GoogleCredentialsFile:  getEnvStr(EnvGoogleCredentialsFile, ""),
		CalendarRequestTimeout: getEnvDuration(EnvCalendarRequestTimeout, DefaultCalendarRequestTimeout),

		SendGridAPIKey:      getEnvStr(EnvSendGridAPIKey, ""),
		EmailFromAddress:    getEnvStr(EnvEmailFromAddress, ""),
		EmailFromName:       getEnvStr(EnvEmailFromName, "Reserva Bookings"),
		BusinessEmail:       getEnvStr(EnvBusinessEmail, ""),
		EmailRequestTimeout: getEnvDuration(EnvEmailRequestTimeout, DefaultEmailRequestTimeout),

		AuditTopic:     getEnvStr(EnvAuditTopic, DefaultAuditTopic),
		AuditQueueSize: getEnvNum(EnvAuditQueueSize, DefaultAuditQueueSize),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			AddSource: true,
			Service:   serviceName,
		}),
		Client: client.NewClient(),
	}

	return cfg
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURI, cfg.MongoConnTimeout)
}

func (cfg *Config) Location() *time.Location {
	loc, err := time.LoadLocation(cfg.BusinessTimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (cfg *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.MongoURI == "" {
		errs = append(errs, "MongoURI cannot be empty")
	} else if !strings.HasPrefix(cfg.MongoURI, "mongodb://") && !strings.HasPrefix(cfg.MongoURI, "mongodb+srv://") {
		errs = append(errs, fmt.Sprintf("MongoURI must start with 'mongodb://' or 'mongodb+srv://', got: %s", cfg.MongoURI))
	}
	if cfg.MongoDatabaseName == "" {
		errs = append(errs, "MongoDatabaseName cannot be empty")
	}
	if cfg.MongoConnTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
	}

	if cfg.WorkingHoursStart < 0 || cfg.WorkingHoursStart > 23 {
		errs = append(errs, fmt.Sprintf("WorkingHoursStart must be an hour between 0 and 23, got: %d", cfg.WorkingHoursStart))
	}
	if cfg.WorkingHoursEnd < 1 || cfg.WorkingHoursEnd > 24 {
		errs = append(errs, fmt.Sprintf("WorkingHoursEnd must be an hour between 1 and 24, got: %d", cfg.WorkingHoursEnd))
	}
	if cfg.WorkingHoursEnd <= cfg.WorkingHoursStart {
		errs = append(errs, fmt.Sprintf("WorkingHoursEnd (%d) must be after WorkingHoursStart (%d)", cfg.WorkingHoursEnd, cfg.WorkingHoursStart))
	}
	if cfg.SlotIntervalMin <= 0 || cfg.SlotIntervalMin > 120 {
		errs = append(errs, fmt.Sprintf("SlotIntervalMin must be between 1 and 120, got: %d", cfg.SlotIntervalMin))
	}
	if cfg.DefaultDurationMin <= 0 {
		errs = append(errs, fmt.Sprintf("DefaultDurationMin must be positive, got: %d", cfg.DefaultDurationMin))
	}
	if _, err := time.LoadLocation(cfg.BusinessTimeZone); err != nil {
		errs = append(errs, fmt.Sprintf("BusinessTimeZone is not a valid IANA zone: %s", cfg.BusinessTimeZone))
	}

	if cfg.CalendarRequestTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("CalendarRequestTimeout must be positive, got: %s", cfg.CalendarRequestTimeout))
	}
	if cfg.EmailRequestTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("EmailRequestTimeout must be positive, got: %s", cfg.EmailRequestTimeout))
	}
	if cfg.RequestTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.ReadTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.AuditQueueSize <= 0 {
		errs = append(errs, fmt.Sprintf("AuditQueueSize must be positive, got: %d", cfg.AuditQueueSize))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded",
		"port", cfg.Port,
		"mongo_database", cfg.MongoDatabaseName,
		"working_hours_start", cfg.WorkingHoursStart,
		"working_hours_end", cfg.WorkingHoursEnd,
		"slot_interval_min", cfg.SlotIntervalMin,
		"default_duration_min", cfg.DefaultDurationMin,
		"business_time_zone", cfg.BusinessTimeZone,
		"calendar_configured", cfg.GoogleCalendarID != "",
		"email_configured", cfg.SendGridAPIKey != "",
		"calendar_request_timeout", cfg.CalendarRequestTimeout,
		"email_request_timeout", cfg.EmailRequestTimeout,
		"audit_topic", cfg.AuditTopic,
		"audit_queue_size", cfg.AuditQueueSize,
	)
}
