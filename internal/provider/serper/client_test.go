package serper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/law-makers/profilehunt/internal/provider"
	"github.com/law-makers/profilehunt/pkg/models"
)

type recordedRequest struct {
	body   searchRequest
	apiKey string
}

// apiServer answers each request through respond and records what it received
func apiServer(t *testing.T, respond func(req searchRequest) (int, string)) (*httptest.Server, func() []recordedRequest) {
	t.Helper()

	var mu sync.Mutex
	var seen []recordedRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		var body searchRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("Invalid request body: %v", err)
		}

		mu.Lock()
		seen = append(seen, recordedRequest{body: body, apiKey: r.Header.Get("X-API-KEY")})
		mu.Unlock()

		status, payload := respond(body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(payload))
	}))

	return server, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedRequest(nil), seen...)
	}
}

func organic(items ...string) string {
	return `{"organic":[` + strings.Join(items, ",") + `]}`
}

func item(title, link string) string {
	return fmt.Sprintf(`{"title":%q,"link":%q}`, title, link)
}

func newTestClient(server *httptest.Server, opts Options) *Client {
	opts.Endpoint = server.URL
	if opts.APIKey == "" {
		opts.APIKey = "test-key"
	}
	return New(&http.Client{Timeout: 5 * time.Second}, opts)
}

func TestSearch_StopsQueryOnEmptyPage(t *testing.T) {
	server, requests := apiServer(t, func(req searchRequest) (int, string) {
		if req.Page == 1 {
			return http.StatusOK, organic(item("Jane Doe - Engineer - Acme", "https://www.linkedin.com/in/janedoe"))
		}
		return http.StatusOK, organic()
	})
	defer server.Close()

	rs, err := newTestClient(server, Options{Pages: 5}).Search(context.Background(), "Acme")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	// 4 company queries, each stopping after its empty second page
	if got := len(requests()); got != 8 {
		t.Errorf("Expected 8 requests, got %d", got)
	}

	pairs := rs.SortedPairs()
	if len(pairs) != 1 || pairs[0] != (models.NamePair{First: "Jane", Last: "Doe"}) {
		t.Errorf("Unexpected pairs: %+v", pairs)
	}
}

func TestSearch_RequestBody(t *testing.T) {
	server, requests := apiServer(t, func(req searchRequest) (int, string) {
		return http.StatusOK, organic()
	})
	defer server.Close()

	c := newTestClient(server, Options{APIKey: "secret", PerPage: 10, GL: "de", HL: "fr"})
	if _, err := c.Search(context.Background(), "acme.io"); err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	got := requests()
	if len(got) != 3 {
		t.Fatalf("Expected one request per domain query, got %d", len(got))
	}
	first := got[0]
	if first.apiKey != "secret" {
		t.Errorf("API key header = %q", first.apiKey)
	}
	want := searchRequest{
		Q:    `site:linkedin.com/in ("acme.io" OR "@acme.io") -jobs -hiring`,
		Page: 1,
		Num:  10,
		GL:   "de",
		HL:   "fr",
	}
	if first.body != want {
		t.Errorf("Request body = %+v, want %+v", first.body, want)
	}
}

func TestFetchPage_DefaultLocale(t *testing.T) {
	var raw string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		raw = string(b)
		w.Write([]byte(organic()))
	}))
	defer server.Close()

	c := New(&http.Client{}, Options{Endpoint: server.URL, APIKey: "k"})
	if _, err := c.FetchPage(context.Background(), "q", 2); err != nil {
		t.Fatalf("FetchPage failed: %v", err)
	}
	if strings.Contains(raw, `"gl"`) {
		t.Errorf("Expected gl to be omitted, got %s", raw)
	}
	if !strings.Contains(raw, `"hl":"en"`) || !strings.Contains(raw, `"page":2`) || !strings.Contains(raw, `"num":20`) {
		t.Errorf("Unexpected body %s", raw)
	}
}

func TestSearch_FailedQueryDoesNotAbortRun(t *testing.T) {
	server, requests := apiServer(t, func(req searchRequest) (int, string) {
		if strings.Contains(req.Q, "(team OR") {
			return http.StatusOK, organic(item("Bob Stone | Acme", "https://www.linkedin.com/in/bob"))
		}
		return http.StatusInternalServerError, `{"message":"boom"}`
	})
	defer server.Close()

	rs, err := newTestClient(server, Options{Pages: 2}).Search(context.Background(), "Acme")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	// three failing queries stop at page 1, the team query runs both pages
	if got := len(requests()); got != 5 {
		t.Errorf("Expected 5 requests, got %d", got)
	}
	if len(rs.SortedPairs()) != 1 {
		t.Errorf("Expected one pair, got %+v", rs.SortedPairs())
	}
	if len(rs.SortedURLs()) != 1 {
		t.Errorf("Expected one profile URL, got %v", rs.SortedURLs())
	}
}

func TestSearch_DedupAcrossQueries(t *testing.T) {
	server, _ := apiServer(t, func(req searchRequest) (int, string) {
		return http.StatusOK, organic(
			item("Jane Doe - Acme", "https://www.linkedin.com/in/janedoe"),
			item("jane doe | Acme", "https://www.linkedin.com/in/janedoe-1"),
			item("Adam Zed - Acme", "https://www.linkedin.com/in/adam"),
		)
	})
	defer server.Close()

	rs, err := newTestClient(server, Options{Pages: 2}).Search(context.Background(), "Acme")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	pairs := rs.SortedPairs()
	want := []models.NamePair{{First: "Jane", Last: "Doe"}, {First: "Adam", Last: "Zed"}}
	if len(pairs) != len(want) {
		t.Fatalf("Pairs = %+v, want %+v", pairs, want)
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("Pairs[%d] = %+v, want %+v", i, pairs[i], want[i])
		}
	}
}

func TestSearch_InvalidJSONAbortsQuery(t *testing.T) {
	server, requests := apiServer(t, func(req searchRequest) (int, string) {
		return http.StatusOK, `<html>not json</html>`
	})
	defer server.Close()

	rs, err := newTestClient(server, Options{Pages: 3}).Search(context.Background(), "Acme")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if got := len(requests()); got != 4 {
		t.Errorf("Expected one request per query, got %d", got)
	}
	if len(rs.SortedPairs()) != 0 || len(rs.SortedURLs()) != 0 {
		t.Errorf("Expected no results, got %v %v", rs.SortedPairs(), rs.SortedURLs())
	}
}

func TestSearch_MissingAPIKey(t *testing.T) {
	_, err := New(nil, Options{}).Search(context.Background(), "Acme")
	if !errors.Is(err, provider.ErrMissingAPIKey) {
		t.Fatalf("Expected ErrMissingAPIKey, got %v", err)
	}
	if !errors.Is(err, &provider.ProviderError{Code: provider.ErrCodeMissingCredential}) {
		t.Errorf("Expected MISSING_CREDENTIAL code, got %v", err)
	}
}

func TestSearch_EmptyTerm(t *testing.T) {
	_, err := New(nil, Options{APIKey: "k"}).Search(context.Background(), " ")
	if !errors.Is(err, provider.ErrEmptyTerm) {
		t.Fatalf("Expected ErrEmptyTerm, got %v", err)
	}
}

func TestSearch_DelayHonoursCancellation(t *testing.T) {
	server, _ := apiServer(t, func(req searchRequest) (int, string) {
		return http.StatusOK, organic(item("Jane Doe - Acme", "https://www.linkedin.com/in/janedoe"))
	})
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	rs, err := newTestClient(server, Options{Delay: time.Hour}).Search(ctx, "Acme")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Expected deadline error, got %v", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Errorf("Delay ignored cancellation")
	}
	if rs == nil || len(rs.SortedPairs()) != 1 {
		t.Errorf("Expected partial results to be returned")
	}
}

type countingProgress struct {
	total int
	descs []string
}

func (p *countingProgress) Describe(d string) { p.descs = append(p.descs, d) }

func (p *countingProgress) Add(n int) error {
	p.total += n
	return nil
}

func TestSearch_ProgressCoversEverySlot(t *testing.T) {
	server, _ := apiServer(t, func(req searchRequest) (int, string) {
		if req.Page == 1 {
			return http.StatusOK, organic(item("Jane Doe - Acme", "https://www.linkedin.com/in/janedoe"))
		}
		return http.StatusBadGateway, ``
	})
	defer server.Close()

	p := &countingProgress{}
	if _, err := newTestClient(server, Options{Pages: 3, Progress: p}).Search(context.Background(), "acme.io"); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if p.total != 9 {
		t.Errorf("Expected 9 progress ticks, got %d", p.total)
	}
	if len(p.descs) != 3 {
		t.Errorf("Expected a description per query, got %v", p.descs)
	}
}
