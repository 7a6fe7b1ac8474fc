package config

import "time"

// Storage backends
const (
	StorageBackendPostgres = "postgres"
	StorageBackendMemory   = "memory"
)

// Defaults
const (
	DefaultPort               = 8080
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
	DefaultLogDir             = "logs"
	DefaultEnvironment        = "dev"
	DefaultServiceName        = "spinwheel"
	DefaultDBName             = "spinwheel"
	DefaultDBMaxConns         = 20
	DefaultDBMaxConnIdleTime  = 5 * time.Minute
	DefaultDBMaxConnLifetime  = 30 * time.Minute
	DefaultJWTIssuer          = "spinwheel"
	DefaultJWTTTL             = 24 * time.Hour
	DefaultWheelConfigPath    = "configs/wheel/default.json"
	DefaultConfigCacheTTL     = 30 * time.Second
	DefaultRateLimitPerMinute = 30
	DefaultShutdownTimeout    = 10 * time.Second
	DefaultAPIURL             = "http://localhost:8080"
)

// Error messages
const (
	ErrMsgInvalidPort       = "invalid PORT value"
	ErrMsgAPIKeyRequired    = "API_KEY environment variable must be set for security"
	ErrMsgJWTSecretRequired = "JWT_SECRET environment variable must be set to sign user tokens"
	ErrMsgInvalidBackend    = "STORAGE_BACKEND must be one of: postgres, memory"
)
