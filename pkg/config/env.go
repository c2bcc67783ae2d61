package config

const (
	EnvMongoURI          = "MONGO_URI"
	EnvMongoDatabaseName = "MONGO_DATABASE_NAME"
	EnvMongoConnTimeout  = "MONGO_CONN_TIMEOUT"

	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvIdempotencyTTL = "IDEMPOTENCY_TTL"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"

	EnvWorkingHoursStart  = "WORKING_HOURS_START"
	EnvWorkingHoursEnd    = "WORKING_HOURS_END"
	EnvSlotIntervalMin    = "SLOT_INTERVAL_MIN"
	EnvDefaultDurationMin = "DEFAULT_DURATION_MIN"
	EnvBusinessTimeZone   = "BUSINESS_TIME_ZONE"

	EnvGoogleCalendarID       = "GOOGLE_CALENDAR_ID"
	EnvGoogleCredentialsFile  = "GOOGLE_CREDENTIALS_FILE"
	EnvCalendarRequestTimeout = "CALENDAR_REQUEST_TIMEOUT"

	EnvSendGridAPIKey      = "SENDGRID_API_KEY"
	EnvEmailFromAddress    = "EMAIL_FROM_ADDRESS"
	EnvEmailFromName       = "EMAIL_FROM_NAME"
	EnvBusinessEmail       = "BUSINESS_EMAIL"
	EnvEmailRequestTimeout = "EMAIL_REQUEST_TIMEOUT"

	EnvAuditTopic     = "AUDIT_TOPIC"
	EnvAuditQueueSize = "AUDIT_QUEUE_SIZE"
)
