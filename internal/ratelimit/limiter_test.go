package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDomainLimiter_PerHostBuckets(t *testing.T) {
	dl := NewDomainLimiter(1, 1)

	if !dl.Allow("https://duckduckgo.com/?q=a") {
		t.Fatal("First request to host should be allowed")
	}
	if dl.Allow("https://duckduckgo.com/?q=b") {
		t.Error("Second immediate request to same host should be throttled")
	}
	if !dl.Allow("https://links.duckduckgo.com/d.js") {
		t.Error("Other host should have its own bucket")
	}
}

func TestDomainLimiter_InvalidURL(t *testing.T) {
	dl := NewDomainLimiter(1, 1)
	if !dl.Allow("::not a url") {
		t.Error("Invalid URLs should not be throttled")
	}
	if err := dl.Wait(context.Background(), "::not a url"); err != nil {
		t.Errorf("Wait on invalid URL returned %v", err)
	}
}

func TestDomainLimiter_WaitHonoursContext(t *testing.T) {
	dl := NewDomainLimiter(0.01, 1)
	dl.Allow("https://example.com")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := dl.Wait(ctx, "https://example.com/next"); err == nil {
		t.Error("Expected Wait to fail once the context expires")
	}
}

func TestTransport_RoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := &http.Client{Transport: &Transport{Limiter: NewDomainLimiter(100, 5)}}
	resp, err := client.Get(server.URL)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("Expected 204, got %d", resp.StatusCode)
	}
}
