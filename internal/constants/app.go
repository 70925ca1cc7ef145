package constants

// Application Information
const (
	AppName    = "Transportadora API"
	AppVersion = "1.0.0"
)

// Environment Types
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Cache Key Prefixes
const (
	CacheKeyPrefix = "transportadora:"
	CacheKeyStats  = CacheKeyPrefix + "estatisticas"
)

// Log Levels
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)
