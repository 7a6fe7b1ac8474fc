package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit triggers cleanup once this many log files exist
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files left after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingSpinWheel   = "Starting SpinWheel"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Storage
// =============================================================================

const (
	LogMsgStorageInitialized    = "Storage initialized"
	LogMsgMigrationsApplied     = "Database migrations applied"
	ErrMsgFailedConnectDatabase = "failed to connect to database"
	ErrMsgFailedMigrate         = "failed to apply database migrations"
	ErrMsgFailedSeedWheel       = "failed to seed wheel configuration"
	ErrMsgUnknownBackend        = "unknown storage backend %q"
)

// =============================================================================
// Rate Limiting
// =============================================================================

const (
	LogMsgRateLimitDisabled = "Per-user rate limiting disabled"
	LogMsgRateLimitMemory   = "Rate limiter using process memory"
	LogMsgRateLimitRedis    = "Rate limiter using Redis"
	LogMsgRedisCloseFailed  = "Redis client close failed"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSpinAuditRegistered        = "Spin audit logger registered"
	LogMsgSpinAudit                  = "Spin recorded"
	LogMsgWheelAudit                 = "Wheel configuration published"
	ErrMsgDecodeAuditPayload         = "failed to decode audit payload"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingStorage       = "Closing storage..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
