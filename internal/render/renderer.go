// Package render loads a page in headless Chrome and returns its final HTML.
// It is the fallback for front pages that only expose the deep link after
// client-side scripts ran.
package render

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/rs/zerolog/log"

	"github.com/law-makers/profilehunt/internal/provider"
	"github.com/law-makers/profilehunt/internal/utils/headers"
)

// Renderer drives a fresh headless browser per Render call
type Renderer struct {
	UserAgent string
	Headers   headers.Profile
	Proxy     string
	Timeout   time.Duration
	// WaitSelector is awaited before the document is captured
	WaitSelector string
}

// New creates a Renderer with the given request identity
func New(userAgent string, h headers.Profile, proxy string, timeout time.Duration) *Renderer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Renderer{
		UserAgent:    userAgent,
		Headers:      h,
		Proxy:        proxy,
		Timeout:      timeout,
		WaitSelector: "body",
	}
}

// Render navigates to pageURL and returns the outer HTML of the document
func (r *Renderer) Render(ctx context.Context, pageURL string) (string, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	ctx, allocCancel := chromedp.NewExecAllocator(ctx, r.allocatorOptions()...)
	defer allocCancel()

	ctx, browserCancel := chromedp.NewContext(ctx)
	defer browserCancel()

	var status int64
	chromedp.ListenTarget(ctx, func(ev interface{}) {
		if e, ok := ev.(*network.EventResponseReceived); ok && e.Response.URL == pageURL {
			status = e.Response.Status
		}
	})

	var html string
	tasks := chromedp.Tasks{network.Enable()}
	if extra := ExtraHeaders(r.Headers); len(extra) > 0 {
		tasks = append(tasks, network.SetExtraHTTPHeaders(extra))
	}
	tasks = append(tasks,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady(r.WaitSelector, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)

	if err := chromedp.Run(ctx, tasks); err != nil {
		return "", fmt.Errorf("chromedp failed to render %s: %w", pageURL, err)
	}

	if status >= 400 {
		return "", &provider.StatusError{Code: int(status), Status: http.StatusText(int(status)), URL: pageURL}
	}

	log.Debug().
		Str("url", pageURL).
		Int64("status", status).
		Int("bytes", len(html)).
		Dur("duration", time.Since(start)).
		Msg("Front page rendered")

	return html, nil
}

func (r *Renderer) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("headless", "new"),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("disable-translate", true),
		chromedp.Flag("mute-audio", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("window-size", "1920,1080"),
	}
	if r.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(r.UserAgent))
	}
	if path := FindChrome(); path != "" {
		opts = append([]chromedp.ExecAllocatorOption{chromedp.ExecPath(path)}, opts...)
	}
	if r.Proxy != "" {
		opts = append(opts, chromedp.ProxyServer(r.Proxy))
	}
	return opts
}

// browserManaged headers are set by Chrome itself and must not be overridden
var browserManaged = map[string]bool{
	"User-Agent":      true,
	"Accept-Encoding": true,
	"Host":            true,
}

// ExtraHeaders converts a header profile into the DevTools extra header map
func ExtraHeaders(p headers.Profile) network.Headers {
	out := network.Headers{}
	for _, k := range p.Keys() {
		if browserManaged[k] {
			continue
		}
		out[k] = p.Get(k)
	}
	return out
}
