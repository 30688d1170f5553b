// Package app provides the core application initialization and lifecycle management.
package app

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"

	"github.com/law-makers/profilehunt/internal/config"
	"github.com/law-makers/profilehunt/internal/credentials"
	"github.com/law-makers/profilehunt/internal/provider/ddg"
	"github.com/law-makers/profilehunt/internal/provider/serper"
	"github.com/law-makers/profilehunt/internal/proxy"
	"github.com/law-makers/profilehunt/internal/ratelimit"
	"github.com/law-makers/profilehunt/internal/render"
	"github.com/law-makers/profilehunt/internal/utils/headers"
)

// Application holds all application dependencies and manages their lifecycle.
//
// It is created once per command run. Use Close() to release idle connections.
type Application struct {
	Config      *config.Config
	Logger      *zerolog.Logger
	RateLimiter ratelimit.RateLimiter
	ProxyPool   *proxy.ProxyPool
	HTTPClient  *http.Client
	// Overrides are the -H headers applied on top of every profile
	Overrides map[string]string
	startTime time.Time

	transport *proxy.Transport
}

// DDGOptions selects deep feed behaviour for one run
type DDGOptions struct {
	// Render loads the front page in headless Chrome
	Render bool
	// FrontURL overrides the search engine endpoint
	FrontURL string
}

// SerperOptions selects search API behaviour for one run
type SerperOptions struct {
	Endpoint string
	APIKey   string
	Pages    int
	PerPage  int
	GL       string
	HL       string
	Delay    time.Duration
	Progress serper.Progress
}

// New creates and initializes a new Application with all dependencies.
//
// It configures logging, the per-host rate limiter, the proxy pool and the
// shared HTTP client. If any step fails, an error is returned.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := configureLogger(cfg)

	proxies, err := proxy.ParseList(cfg.Proxy)
	if err != nil {
		return nil, err
	}
	pool := proxy.NewProxyPool(proxies)

	rotating := proxy.NewTransport(pool, newBaseTransport)
	httpClient := &http.Client{
		Timeout:   cfg.HTTPTimeout,
		Transport: rotating,
	}

	var rateLimiter ratelimit.RateLimiter
	if cfg.RateLimitRPS > 0 {
		rateLimiter = ratelimit.NewDomainLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		httpClient.Transport = &ratelimit.Transport{
			Base:    rotating,
			Limiter: rateLimiter,
		}
		logger.Debug().
			Float64("rps", cfg.RateLimitRPS).
			Int("burst", cfg.RateLimitBurst).
			Msg("Rate limiter initialized")
	}
	logger.Debug().Int("proxies", pool.Len()).Msg("Proxy pool initialized")
	logger.Debug().
		Dur("timeout", cfg.HTTPTimeout).
		Msg("HTTP client initialized")

	app := &Application{
		Config:      cfg,
		Logger:      &logger,
		RateLimiter: rateLimiter,
		ProxyPool:   pool,
		HTTPClient:  httpClient,
		Overrides:   headers.ParseHeaders(cfg.Headers),
		startTime:   time.Now(),
		transport:   rotating,
	}

	logger.Info().Msg("Application initialized successfully")
	return app, nil
}

func configureLogger(cfg *config.Config) zerolog.Logger {
	zerolog.SetGlobalLevel(levelFor(cfg.LogLevel))

	var logWriter io.Writer
	if cfg.JSONLog {
		logWriter = os.Stderr
	} else {
		logWriter = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	log.Logger = zerolog.New(logWriter).With().Timestamp().Logger()
	logger := log.Logger

	logger.Debug().
		Str("level", cfg.LogLevel).
		Bool("json", cfg.JSONLog).
		Msg("Logger initialized")
	return logger
}

// levelFor maps a configured level name to zerolog. Warnings stay visible
// unless --quiet asked for errors only.
func levelFor(name string) zerolog.Level {
	switch name {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// newBaseTransport builds the HTTP/2 capable transport for one proxy
func newBaseTransport(proxyURL *url.URL) http.RoundTripper {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	if proxyURL != nil {
		t.Proxy = http.ProxyURL(proxyURL)
	}
	if err := http2.ConfigureTransport(t); err != nil {
		log.Debug().Err(err).Msg("HTTP/2 unavailable, using HTTP/1.1")
	}
	return t
}

// NewDDG builds the deep feed provider
func (a *Application) NewDDG(opts DDGOptions) *ddg.Client {
	front := opts.FrontURL
	if front == "" {
		front = ddg.DefaultFrontURL
	}
	ua := a.Config.UserAgent

	frontHeaders := headers.FrontPage(ua).With(a.Overrides)
	dopts := ddg.Options{
		FrontURL:     front,
		FrontHeaders: frontHeaders,
		DeepHeaders:  headers.DeepScript(ua, front).With(a.Overrides),
		MaxPages:     a.Config.DDGMaxPages,
	}

	if opts.Render {
		r := render.New(frontHeaders.Get("User-Agent"), frontHeaders, a.ProxyPool.GetNext(), a.Config.HTTPTimeout*3)
		dopts.Renderer = r
		a.Logger.Debug().Msg("Front page will be rendered in headless Chrome")
	}

	return ddg.New(a.HTTPClient, dopts)
}

// NewSerper builds the search API provider. An empty APIKey is resolved from
// the environment or the OS keyring.
func (a *Application) NewSerper(opts SerperOptions) (*serper.Client, error) {
	key := opts.APIKey
	if key == "" {
		resolved, err := credentials.Resolve()
		if err != nil {
			return nil, err
		}
		key = resolved
	}

	return serper.New(a.HTTPClient, serper.Options{
		Endpoint: opts.Endpoint,
		APIKey:   key,
		Headers:  headers.API(a.Config.UserAgent, key).With(a.Overrides),
		Pages:    opts.Pages,
		PerPage:  opts.PerPage,
		GL:       opts.GL,
		HL:       opts.HL,
		Delay:    opts.Delay,
		Progress: opts.Progress,
	}), nil
}

// Close gracefully shuts down the application and all its resources.
func (a *Application) Close(ctx context.Context) error {
	if a.transport != nil {
		a.transport.CloseIdleConnections()
	}

	a.Logger.Info().Dur("uptime", a.Uptime()).Msg("Application shutdown complete")
	return nil
}

// Uptime returns how long the application has been running.
func (a *Application) Uptime() time.Duration {
	return time.Since(a.startTime)
}
