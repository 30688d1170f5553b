package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Config holds application configuration values
type Config struct {
	// Logging
	LogLevel   string
	JSONLog    bool
	NoProgress bool

	// HTTP
	HTTPTimeout time.Duration
	UserAgent   string
	Proxy       string
	Headers     []string

	// Rate Limiting
	RateLimitRPS   float64
	RateLimitBurst int

	// Deep feed
	DDGMaxPages int

	// Export path, empty for none
	Output string
}

// Load builds a Config by combining defaults, an optional dotenv file, environment variables, and CLI flags.
// Caller should pass the root *cobra.Command so flags can be read.
func Load(cmd *cobra.Command) (*Config, error) {
	cfg := &Config{
		LogLevel:       DefaultLogLevel,
		JSONLog:        DefaultJSONLog,
		HTTPTimeout:    DefaultHTTPTimeout,
		UserAgent:      DefaultUserAgent,
		RateLimitRPS:   DefaultRateLimitRPS,
		RateLimitBurst: DefaultRateLimitBurst,
		DDGMaxPages:    DefaultDDGMaxPages,
	}

	envFile := DefaultEnvFile
	if cmd != nil {
		if f := cmd.Flags().Lookup("env-file"); f != nil {
			envFile = f.Value.String()
		}
	}
	if err := loadDotEnv(envFile); err != nil {
		return nil, err
	}

	if err := applyEnv(cfg); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	if cmd != nil {
		if err := applyFlags(cmd, cfg); err != nil {
			return nil, err
		}
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadDotEnv populates unset environment variables from path. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	err := godotenv.Load(path)
	if err == nil {
		log.Debug().Str("path", path).Msg("Loaded dotenv file")
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load %s: %w", path, err)
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvUserAgent); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv(EnvProxy); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.HTTPTimeout = d
	}
	if v := os.Getenv(EnvDDGMaxPages); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDDGMaxPages, err)
		}
		cfg.DDGMaxPages = n
	}
	if v := os.Getenv(EnvRateLimit); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRateLimit, err)
		}
		cfg.RateLimitRPS = rps
	}
	return nil
}

func applyFlags(cmd *cobra.Command, cfg *Config) error {
	flags := cmd.Flags()

	if f := flags.Lookup("user-agent"); f != nil {
		if s := f.Value.String(); s != "" {
			cfg.UserAgent = s
		}
	}
	if f := flags.Lookup("proxy"); f != nil {
		if s := f.Value.String(); s != "" {
			cfg.Proxy = s
		}
	}
	if f := flags.Lookup("timeout"); f != nil && f.Changed {
		d, err := time.ParseDuration(f.Value.String())
		if err != nil {
			return fmt.Errorf("invalid --timeout: %w", err)
		}
		cfg.HTTPTimeout = d
	}
	if h, err := flags.GetStringArray("header"); err == nil {
		cfg.Headers = h
	}
	if f := flags.Lookup("output"); f != nil {
		cfg.Output = strings.TrimSpace(f.Value.String())
	}
	if f := flags.Lookup("json"); f != nil && f.Value.String() == "true" {
		cfg.JSONLog = true
	}
	if f := flags.Lookup("no-progress"); f != nil && f.Value.String() == "true" {
		cfg.NoProgress = true
	}
	if f := flags.Lookup("verbose"); f != nil && f.Value.String() == "true" {
		cfg.LogLevel = "debug"
	}
	if f := flags.Lookup("quiet"); f != nil && f.Value.String() == "true" {
		cfg.LogLevel = "error"
		cfg.NoProgress = true
	}
	return nil
}
