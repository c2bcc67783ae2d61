package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "reserva"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultWorkingHoursStart  = 9
	DefaultWorkingHoursEnd    = 18
	DefaultSlotIntervalMin    = 30
	DefaultDefaultDurationMin = 120
	DefaultBusinessTimeZone   = "UTC"

	// Collaborator calls are bounded so a calendar or email outage cannot
	// hold a request open past these deadlines.
	DefaultCalendarRequestTimeout = 5 * time.Second
	DefaultEmailRequestTimeout    = 10 * time.Second

	DefaultAuditTopic     = "reserva.audit"
	DefaultAuditQueueSize = 256

	DefaultPaginationLimit = 100
)

func NormalizePaginationLimit(limit int) int {
	if limit <= 0 {
		return 10
	}
	if limit > DefaultPaginationLimit {
		return DefaultPaginationLimit
	}
	return limit
}

func NormalizeOffset(offset int64) int64 {
	if offset < 0 {
		return 0
	}
	return offset
}
