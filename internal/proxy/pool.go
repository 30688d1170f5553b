package proxy

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"
)

// failureCooldown is how long a failed proxy is skipped
const failureCooldown = 5 * time.Minute

// ProxyPool rotates outgoing requests across a list of proxies
type ProxyPool struct {
	proxies []string
	index   int
	mu      sync.Mutex
	failed  map[string]time.Time
}

// NewProxyPool creates a new ProxyPool
func NewProxyPool(proxies []string) *ProxyPool {
	return &ProxyPool{
		proxies: proxies,
		failed:  make(map[string]time.Time),
	}
}

// ParseList splits a comma-separated proxy list and validates every entry
func ParseList(list string) ([]string, error) {
	var out []string
	for _, p := range strings.Split(list, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		u, err := url.Parse(p)
		if err != nil || u.Host == "" {
			return nil, fmt.Errorf("invalid proxy %q", p)
		}
		out = append(out, p)
	}
	return out, nil
}

// Len returns the number of configured proxies
func (p *ProxyPool) Len() int {
	return len(p.proxies)
}

// GetNext returns the next healthy proxy from the pool
func (p *ProxyPool) GetNext() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.proxies) == 0 {
		return ""
	}

	start := p.index
	for {
		proxy := p.proxies[p.index]
		p.index = (p.index + 1) % len(p.proxies)

		if failTime, ok := p.failed[proxy]; ok {
			if time.Since(failTime) < failureCooldown {
				if p.index == start {
					// Every proxy is cooling down; use this one anyway
					return proxy
				}
				continue
			}
			delete(p.failed, proxy)
		}

		return proxy
	}
}

// MarkFailed marks a proxy as failed so it will be skipped for a while
func (p *ProxyPool) MarkFailed(proxy string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failed[proxy] = time.Now()
}

// MarkHealthy clears the failure status of a proxy
func (p *ProxyPool) MarkHealthy(proxy string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.failed, proxy)
}
