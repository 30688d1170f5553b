package proxy

import (
	"net/http"
	"net/url"
	"sync"

	"github.com/rs/zerolog/log"
)

// TransportFactory builds the transport used for one proxy. proxyURL is nil for direct connections.
type TransportFactory func(proxyURL *url.URL) http.RoundTripper

// Transport picks the next proxy of the pool for every request and keeps one
// underlying transport per proxy. Transport level failures put the proxy on cooldown.
type Transport struct {
	pool    *ProxyPool
	factory TransportFactory

	mu         sync.Mutex
	transports map[string]http.RoundTripper
}

// NewTransport creates a rotating transport over pool
func NewTransport(pool *ProxyPool, factory TransportFactory) *Transport {
	return &Transport{
		pool:       pool,
		factory:    factory,
		transports: make(map[string]http.RoundTripper),
	}
}

// RoundTrip implements http.RoundTripper
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	p := t.pool.GetNext()

	rt, err := t.transportFor(p)
	if err != nil {
		return nil, err
	}

	resp, err := rt.RoundTrip(req)
	if p == "" {
		return resp, err
	}
	if err != nil {
		log.Debug().Err(err).Str("proxy", p).Msg("Proxy request failed, cooling down")
		t.pool.MarkFailed(p)
		return nil, err
	}
	t.pool.MarkHealthy(p)
	return resp, nil
}

// CloseIdleConnections closes idle connections of every underlying transport
func (t *Transport) CloseIdleConnections() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, rt := range t.transports {
		if c, ok := rt.(interface{ CloseIdleConnections() }); ok {
			c.CloseIdleConnections()
		}
	}
}

func (t *Transport) transportFor(p string) (http.RoundTripper, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if rt, ok := t.transports[p]; ok {
		return rt, nil
	}

	var proxyURL *url.URL
	if p != "" {
		u, err := url.Parse(p)
		if err != nil {
			return nil, err
		}
		proxyURL = u
	}

	rt := t.factory(proxyURL)
	t.transports[p] = rt
	return rt, nil
}
