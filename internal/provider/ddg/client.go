// Package ddg implements the deep-link script feed provider: it loads the search
// engine's HTML front page, follows the preloaded deep script and walks its
// continuation chain.
package ddg

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/law-makers/profilehunt/internal/extract"
	"github.com/law-makers/profilehunt/internal/provider"
	"github.com/law-makers/profilehunt/internal/query"
	"github.com/law-makers/profilehunt/internal/reqctx"
	"github.com/law-makers/profilehunt/internal/utils/headers"
	urlutil "github.com/law-makers/profilehunt/internal/utils/url"
	"github.com/law-makers/profilehunt/pkg/models"
)

const (
	// DefaultFrontURL is the HTML rendering endpoint of the search engine
	DefaultFrontURL = "https://duckduckgo.com/"
	// DefaultMaxPages bounds the continuation chain
	DefaultMaxPages = 30

	maxBodyBytes = 16 << 20
)

// deepLinkPattern is used when the front page is not parseable as HTML
var deepLinkPattern = regexp.MustCompile(`<link\s+id="deep_preload_link"[^>]*href="([^"]+)"`)

// Renderer produces the final HTML of a page, typically with a headless browser
type Renderer interface {
	Render(ctx context.Context, pageURL string) (string, error)
}

// Options configures a Client
type Options struct {
	FrontURL     string
	FrontHeaders headers.Profile
	DeepHeaders  headers.Profile
	MaxPages     int
	// Renderer, when set, replaces the plain HTTP fetch of the front page
	Renderer Renderer
}

// Client searches LinkedIn profiles through the deep-link script feed
type Client struct {
	http *http.Client
	opts Options
}

var _ provider.Provider = (*Client)(nil)

// New creates a Client. Zero-valued options fall back to defaults.
func New(client *http.Client, opts Options) *Client {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	if opts.FrontURL == "" {
		opts.FrontURL = DefaultFrontURL
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = DefaultMaxPages
	}
	if opts.FrontHeaders.Len() == 0 {
		opts.FrontHeaders = headers.FrontPage("")
	}
	if opts.DeepHeaders.Len() == 0 {
		opts.DeepHeaders = headers.DeepScript("", opts.FrontURL)
	}
	return &Client{http: client, opts: opts}
}

// Name returns the provider identifier
func (c *Client) Name() string {
	return "ddg"
}

// SearchURL returns the front page URL for q
func (c *Client) SearchURL(q string) string {
	return c.opts.FrontURL + "?t=h_&q=" + url.QueryEscape(q)
}

// Search walks the deep script chain for term.
//
// A missing deep link is fatal. A failed deep page fetch ends the chain and
// whatever was accumulated so far is returned.
func (c *Client) Search(ctx context.Context, term string) (*models.ResultSet, error) {
	if strings.TrimSpace(term) == "" {
		return nil, provider.NewProviderError(provider.ErrCodeValidation, "company name", provider.ErrEmptyTerm)
	}
	logger := reqctx.Logger(ctx)

	q := query.Simple(term)
	deepURL, err := c.FindDeepLink(ctx, q)
	if err != nil {
		return nil, err
	}

	rs := models.NewResultSet()
	for page := 1; deepURL != ""; page++ {
		if page > c.opts.MaxPages {
			logger.Warn().Int("max_pages", c.opts.MaxPages).Msg("Deep page limit reached")
			break
		}

		start := time.Now()
		js, err := c.FetchDeep(ctx, deepURL)
		if err != nil {
			if ctx.Err() != nil {
				return rs, ctx.Err()
			}
			logger.Warn().Err(err).Int("page", page).Str("url", deepURL).Msg("Deep page fetch failed, stopping")
			break
		}

		parsed := extract.ParseDeepScript(js, urlutil.Origin(deepURL))
		added := merge(rs, parsed)

		logger.Debug().
			Int("page", page).
			Int("urls", len(parsed.URLs)).
			Int("names", len(parsed.Names)).
			Int("new", added).
			Bool("has_next", parsed.Next != "").
			Dur("duration", time.Since(start)).
			Msg("Deep page parsed")

		if parsed.Next == "" || added == 0 {
			break
		}
		deepURL = parsed.Next
	}

	return rs, nil
}

// FindDeepLink loads the front page for q and returns the absolute deep script URL
func (c *Client) FindDeepLink(ctx context.Context, q string) (string, error) {
	frontURL := c.SearchURL(q)

	html, err := c.frontPage(ctx, frontURL)
	if err != nil {
		return "", err
	}

	href := deepLinkHref(html)
	if href == "" {
		return "", provider.NewProviderError(provider.ErrCodeNotFound, "front page has no deep link", provider.ErrDeepLinkNotFound).
			WithDetail("url", frontURL)
	}

	deepURL := urlutil.ResolveURL(frontURL, href)
	reqctx.Logger(ctx).Debug().Str("deep_url", deepURL).Msg("Deep link located")
	return deepURL, nil
}

// FetchDeep downloads one deep script page and returns its decoded text
func (c *Client) FetchDeep(ctx context.Context, deepURL string) (string, error) {
	if err := urlutil.ValidateURL(deepURL); err != nil {
		return "", provider.NewProviderError(provider.ErrCodeValidation, "invalid deep URL", err).
			WithDetail("url", deepURL)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, deepURL, nil)
	if err != nil {
		return "", provider.NewProviderError(provider.ErrCodeValidation, "invalid deep URL", err)
	}
	c.opts.DeepHeaders.Apply(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", provider.NewProviderError(provider.ErrCodeNetworkError, "deep script request failed", err)
	}
	defer resp.Body.Close()

	if err := provider.CheckStatus(resp); err != nil {
		return "", provider.NewProviderError(provider.ErrCodeHTTPStatus, "deep script request rejected", err)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", provider.NewProviderError(provider.ErrCodeNetworkError, "failed to read deep script", err)
	}

	return DecodeBody(body, resp.Header.Get("Content-Encoding"), resp.Header.Get("Content-Type")), nil
}

func (c *Client) frontPage(ctx context.Context, frontURL string) (string, error) {
	if c.opts.Renderer != nil {
		html, err := c.opts.Renderer.Render(ctx, frontURL)
		if err != nil {
			return "", provider.NewProviderError(provider.ErrCodeNetworkError, "failed to render front page", err)
		}
		return html, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, frontURL, nil)
	if err != nil {
		return "", provider.NewProviderError(provider.ErrCodeValidation, "invalid front page URL", err)
	}
	c.opts.FrontHeaders.Apply(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", provider.NewProviderError(provider.ErrCodeNetworkError, "front page request failed", err)
	}
	defer resp.Body.Close()

	if err := provider.CheckStatus(resp); err != nil {
		return "", provider.NewProviderError(provider.ErrCodeHTTPStatus, "front page request rejected", err)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", provider.NewProviderError(provider.ErrCodeNetworkError, "failed to read front page", err)
	}
	return string(body), nil
}

// deepLinkHref finds the href of <link id="deep_preload_link">
func deepLinkHref(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err == nil {
		if href, ok := doc.Find("link#deep_preload_link").First().Attr("href"); ok && href != "" {
			return strings.TrimSpace(href)
		}
	}

	if m := deepLinkPattern.FindStringSubmatch(html); m != nil {
		return m[1]
	}
	return ""
}

// merge adds a parsed page to rs and returns how many candidates were new
func merge(rs *models.ResultSet, page extract.Page) int {
	added := 0
	for _, u := range page.URLs {
		if rs.AddURL(u) {
			added++
		}
	}
	for _, n := range page.Names {
		if rs.AddName(n) {
			added++
		}
	}
	for _, l := range page.Links {
		rs.AddLink(l)
	}
	return added
}
