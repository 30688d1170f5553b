// Package serper implements the JSON search API provider. Every built query is
// paginated by page number until a page yields no names or the page bound is hit.
package serper

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/law-makers/profilehunt/internal/extract"
	"github.com/law-makers/profilehunt/internal/provider"
	"github.com/law-makers/profilehunt/internal/query"
	"github.com/law-makers/profilehunt/internal/reqctx"
	"github.com/law-makers/profilehunt/internal/utils/headers"
	"github.com/law-makers/profilehunt/pkg/models"
)

const (
	DefaultEndpoint = "https://google.serper.dev/search"
	DefaultPages    = 5
	DefaultPerPage  = 20
	DefaultHL       = "en"
	DefaultDelay    = 700 * time.Millisecond

	maxBodyBytes = 8 << 20
)

// Progress receives one tick per page slot. *progressbar.ProgressBar satisfies it.
type Progress interface {
	Describe(description string)
	Add(num int) error
}

// Options configures a Client
type Options struct {
	Endpoint string
	APIKey   string
	Headers  headers.Profile
	Pages    int
	PerPage  int
	GL       string
	HL       string
	Delay    time.Duration
	Progress Progress
}

// Client searches LinkedIn profiles through the JSON search API
type Client struct {
	http *http.Client
	opts Options
}

var _ provider.Provider = (*Client)(nil)

// searchRequest is the POST body of one page request
type searchRequest struct {
	Q    string `json:"q"`
	Page int    `json:"page"`
	Num  int    `json:"num"`
	GL   string `json:"gl,omitempty"`
	HL   string `json:"hl,omitempty"`
}

// New creates a Client. Zero-valued options fall back to defaults, except
// Delay, which is honoured as given.
func New(client *http.Client, opts Options) *Client {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.Pages <= 0 {
		opts.Pages = DefaultPages
	}
	if opts.PerPage <= 0 {
		opts.PerPage = DefaultPerPage
	}
	if opts.HL == "" {
		opts.HL = DefaultHL
	}
	if opts.Delay < 0 {
		opts.Delay = 0
	}
	if opts.Headers.Len() == 0 {
		opts.Headers = headers.API("", opts.APIKey)
	}
	return &Client{http: client, opts: opts}
}

// Name returns the provider identifier
func (c *Client) Name() string {
	return "serper"
}

// Search runs every query built from term and merges the extracted name pairs.
//
// A failed page request aborts pagination for that query only.
func (c *Client) Search(ctx context.Context, term string) (*models.ResultSet, error) {
	if strings.TrimSpace(c.opts.APIKey) == "" {
		return nil, provider.NewProviderError(provider.ErrCodeMissingCredential, "SERPER_API_KEY", provider.ErrMissingAPIKey)
	}
	queries := query.Build(term)
	if len(queries) == 0 {
		return nil, provider.NewProviderError(provider.ErrCodeValidation, "query", provider.ErrEmptyTerm)
	}
	logger := reqctx.Logger(ctx)

	rs := models.NewResultSet()
	for i, q := range queries {
		c.describe(q)
		for page := 1; page <= c.opts.Pages; page++ {
			c.tick(1)

			start := time.Now()
			parsed, err := c.FetchPage(ctx, q, page)
			if err != nil {
				if ctx.Err() != nil {
					return rs, ctx.Err()
				}
				logger.Warn().Err(err).Int("query", i+1).Int("page", page).Msg("Search request failed, skipping rest of query")
				c.tick(c.opts.Pages - page)
				break
			}

			added := 0
			for _, p := range parsed.Pairs {
				if rs.AddPair(p) {
					added++
				}
			}
			for _, l := range parsed.Links {
				rs.AddLink(l)
			}

			logger.Debug().
				Int("query", i+1).
				Int("page", page).
				Int("pairs", len(parsed.Pairs)).
				Int("new", added).
				Dur("duration", time.Since(start)).
				Msg("Search page parsed")

			if len(parsed.Pairs) == 0 {
				c.tick(c.opts.Pages - page)
				break
			}

			if page < c.opts.Pages {
				if err := sleep(ctx, c.opts.Delay); err != nil {
					return rs, err
				}
			}
		}
	}

	return rs, nil
}

// FetchPage requests one result page for q and extracts it
func (c *Client) FetchPage(ctx context.Context, q string, page int) (extract.Page, error) {
	payload, err := json.Marshal(searchRequest{
		Q:    q,
		Page: page,
		Num:  c.opts.PerPage,
		GL:   c.opts.GL,
		HL:   c.opts.HL,
	})
	if err != nil {
		return extract.Page{}, provider.NewProviderError(provider.ErrCodeValidation, "failed to encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return extract.Page{}, provider.NewProviderError(provider.ErrCodeValidation, "invalid endpoint", err)
	}
	c.opts.Headers.Apply(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return extract.Page{}, provider.NewProviderError(provider.ErrCodeNetworkError, "search request failed", err)
	}
	defer resp.Body.Close()

	if err := provider.CheckStatus(resp); err != nil {
		return extract.Page{}, provider.NewProviderError(provider.ErrCodeHTTPStatus, "search request rejected", err).
			WithDetail("page", page)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return extract.Page{}, provider.NewProviderError(provider.ErrCodeNetworkError, "failed to read search response", err)
	}

	parsed, err := extract.ParseOrganic(body)
	if err != nil {
		return extract.Page{}, provider.NewProviderError(provider.ErrCodeDecodeError, "invalid search response", err)
	}
	return parsed, nil
}

func (c *Client) describe(q string) {
	if c.opts.Progress != nil {
		c.opts.Progress.Describe(q)
	}
}

func (c *Client) tick(n int) {
	if c.opts.Progress != nil && n > 0 {
		_ = c.opts.Progress.Add(n)
	}
}

// sleep waits for d or until ctx is done
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
