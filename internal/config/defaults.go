package config

import "time"

// Default constants for application configuration
const (
	DefaultLogLevel       = "warn"
	DefaultJSONLog        = false
	DefaultUserAgent      = ""
	DefaultHTTPTimeout    = 20 * time.Second
	DefaultRateLimitRPS   = 0 // off unless PROFILEHUNT_RPS is set
	DefaultRateLimitBurst = 1
	DefaultDDGMaxPages    = 30
	DefaultEnvFile        = ".env"

	// Search API defaults
	DefaultPages   = 5
	DefaultPerPage = 20
	DefaultHL      = "en"
	DefaultDelay   = 0.7
)

// Environment variables read by Load
const (
	EnvUserAgent   = "PROFILEHUNT_USER_AGENT"
	EnvProxy       = "PROFILEHUNT_PROXY"
	EnvTimeout     = "PROFILEHUNT_TIMEOUT"
	EnvDDGMaxPages = "PROFILEHUNT_DDG_MAX_PAGES"
	EnvRateLimit   = "PROFILEHUNT_RPS"
)
