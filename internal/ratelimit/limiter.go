// internal/ratelimit/limiter.go
package ratelimit

import (
	"context"
	"net/http"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiter throttles outgoing requests, keyed by the host of the target URL.
type RateLimiter interface {
	// Wait blocks until a request for the given URL can proceed.
	// If the context is cancelled first, an error is returned.
	Wait(ctx context.Context, urlStr string) error

	// Allow reports whether a request for the given URL can proceed immediately.
	Allow(urlStr string) bool
}

// DomainLimiter keeps one token bucket per host so that the search engine
// front page and its script endpoint are throttled independently.
type DomainLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	perHost  rate.Limit // Requests per second per host
	burst    int
}

// NewDomainLimiter creates a new rate limiter with the specified per-host rate
func NewDomainLimiter(requestsPerSecond float64, burst int) *DomainLimiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 2.0
	}
	if burst <= 0 {
		burst = 1
	}

	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		perHost:  rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// Wait blocks until the request for the given URL can proceed according to rate limits
func (dl *DomainLimiter) Wait(ctx context.Context, urlStr string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	host := extractHost(urlStr)
	if host == "" {
		// Invalid URL, let it proceed (the request will fail elsewhere)
		return nil
	}

	return dl.getLimiter(host).Wait(ctx)
}

// Allow checks if a request can proceed immediately without blocking
func (dl *DomainLimiter) Allow(urlStr string) bool {
	host := extractHost(urlStr)
	if host == "" {
		return true
	}

	return dl.getLimiter(host).Allow()
}

// getLimiter returns or creates the limiter for host
func (dl *DomainLimiter) getLimiter(host string) *rate.Limiter {
	dl.mu.RLock()
	limiter, exists := dl.limiters[host]
	dl.mu.RUnlock()

	if exists {
		return limiter
	}

	dl.mu.Lock()
	defer dl.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := dl.limiters[host]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(dl.perHost, dl.burst)
	dl.limiters[host] = limiter

	return limiter
}

// Transport is an http.RoundTripper that waits on a RateLimiter before every request
type Transport struct {
	Base    http.RoundTripper
	Limiter RateLimiter
}

// RoundTrip implements http.RoundTripper
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.Limiter != nil {
		if err := t.Limiter.Wait(req.Context(), req.URL.String()); err != nil {
			return nil, err
		}
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

// extractHost extracts the host from a URL string
func extractHost(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return u.Host
}
