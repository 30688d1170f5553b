package proxy

import (
	"errors"
	"net/http"
	"net/url"
	"testing"
)

type stubTripper struct {
	proxy *url.URL
	fail  bool
	calls int
}

func (s *stubTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	s.calls++
	if s.fail {
		return nil, errors.New("connection refused")
	}
	return &http.Response{StatusCode: http.StatusOK, Request: req}, nil
}

func TestTransport_RotatesAndCoolsDown(t *testing.T) {
	stubs := map[string]*stubTripper{}
	factory := func(u *url.URL) http.RoundTripper {
		s := &stubTripper{proxy: u, fail: u.Host == "bad:1"}
		stubs[u.Host] = s
		return s
	}

	pool := NewProxyPool([]string{"http://bad:1", "http://good:2"})
	tr := NewTransport(pool, factory)
	req, _ := http.NewRequest(http.MethodGet, "https://duckduckgo.com/", nil)

	if _, err := tr.RoundTrip(req); err == nil {
		t.Fatal("Expected first proxy to fail")
	}
	for i := 0; i < 3; i++ {
		if _, err := tr.RoundTrip(req); err != nil {
			t.Fatalf("Expected healthy proxy, got %v", err)
		}
	}

	if stubs["bad:1"].calls != 1 {
		t.Errorf("Failed proxy should be skipped during cooldown, got %d calls", stubs["bad:1"].calls)
	}
	if stubs["good:2"].calls != 3 {
		t.Errorf("Expected 3 calls through good proxy, got %d", stubs["good:2"].calls)
	}
	if len(stubs) != 2 {
		t.Errorf("Expected one transport per proxy, got %d", len(stubs))
	}
}

func TestTransport_Direct(t *testing.T) {
	var got *url.URL
	built := 0
	tr := NewTransport(NewProxyPool(nil), func(u *url.URL) http.RoundTripper {
		built++
		got = u
		return &stubTripper{}
	})
	req, _ := http.NewRequest(http.MethodGet, "https://duckduckgo.com/", nil)

	for i := 0; i < 2; i++ {
		if _, err := tr.RoundTrip(req); err != nil {
			t.Fatalf("RoundTrip failed: %v", err)
		}
	}
	if got != nil {
		t.Errorf("Expected direct connection, got proxy %v", got)
	}
	if built != 1 {
		t.Errorf("Expected the direct transport to be reused, built %d", built)
	}
}
