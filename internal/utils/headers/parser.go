// Package headers builds the fixed request header sets sent to search endpoints.
// A Profile is never mutated after construction; overrides produce a new Profile.
package headers

import (
	"net/http"
	"sort"
	"strings"
)

// DefaultBrowserUA is the desktop browser identity presented to the search engine
const DefaultBrowserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/137.0.0.0 Safari/537.36"

const defaultAcceptLanguage = "en-US,en;q=0.9"

// Profile is an immutable set of request headers
type Profile struct {
	values map[string]string
}

// NewProfile copies m into a new Profile. Keys are canonicalised.
func NewProfile(m map[string]string) Profile {
	values := make(map[string]string, len(m))
	for k, v := range m {
		values[http.CanonicalHeaderKey(k)] = v
	}
	return Profile{values: values}
}

// Get returns the value for key, or an empty string
func (p Profile) Get(key string) string {
	return p.values[http.CanonicalHeaderKey(key)]
}

// Len returns the number of headers in the profile
func (p Profile) Len() int {
	return len(p.values)
}

// Keys returns the header names in sorted order
func (p Profile) Keys() []string {
	keys := make([]string, 0, len(p.values))
	for k := range p.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// With returns a copy of p with overrides applied on top
func (p Profile) With(overrides map[string]string) Profile {
	merged := make(map[string]string, len(p.values)+len(overrides))
	for k, v := range p.values {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[http.CanonicalHeaderKey(k)] = v
	}
	return Profile{values: merged}
}

// Apply sets every header of the profile on req. "Host" is applied to req.Host.
func (p Profile) Apply(req *http.Request) {
	for k, v := range p.values {
		if k == "Host" {
			req.Host = v
			continue
		}
		req.Header.Set(k, v)
	}
}

// FrontPage returns the headers for the search engine's HTML front door
func FrontPage(userAgent string) Profile {
	return NewProfile(map[string]string{
		"User-Agent":      orDefault(userAgent),
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8",
		"Accept-Language": defaultAcceptLanguage,
	})
}

// DeepScript returns the headers for the deep-link script endpoint
func DeepScript(userAgent, referer string) Profile {
	return NewProfile(map[string]string{
		"User-Agent":         orDefault(userAgent),
		"Accept":             "*/*",
		"Accept-Language":    defaultAcceptLanguage,
		"Accept-Encoding":    "gzip, deflate, br",
		"Referer":            referer,
		"Sec-Ch-Ua":          `"Chromium";v="137", "Not/A)Brand";v="24"`,
		"Sec-Ch-Ua-Mobile":   "?0",
		"Sec-Ch-Ua-Platform": `"Windows"`,
		"Sec-Fetch-Site":     "same-site",
		"Sec-Fetch-Mode":     "no-cors",
		"Sec-Fetch-Dest":     "script",
		"Priority":           "u=1",
	})
}

// API returns the headers for the JSON search API
func API(userAgent, apiKey string) Profile {
	return NewProfile(map[string]string{
		"User-Agent":   orDefault(userAgent),
		"Content-Type": "application/json",
		"Accept":       "application/json",
		"X-Api-Key":    apiKey,
	})
}

// ParseHeaders converts an array of header strings ("Key: Value") into a map
func ParseHeaders(h []string) map[string]string {
	m := make(map[string]string)
	for _, hdr := range h {
		parts := strings.SplitN(hdr, ":", 2)
		if len(parts) == 2 {
			m[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
		}
	}
	return m
}

func orDefault(userAgent string) string {
	if userAgent == "" {
		return DefaultBrowserUA
	}
	return userAgent
}
