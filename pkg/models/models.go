package models

import (
	"sort"
	"strings"
)

// NamePair is a cleaned (first name, last name) candidate derived from a result title
type NamePair struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

// String returns "First Last"
func (p NamePair) String() string {
	return p.First + " " + p.Last
}

// Link associates a profile URL with the name seen in the same search record
type Link struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
}

// ResultSet accumulates unique profile candidates across every page and query of a run.
// It only grows. It is not safe for concurrent use.
type ResultSet struct {
	names map[string]struct{}
	urls  map[string]struct{}
	pairs map[NamePair]struct{}
	links map[string]string
}

// NewResultSet creates an empty ResultSet
func NewResultSet() *ResultSet {
	return &ResultSet{
		names: make(map[string]struct{}),
		urls:  make(map[string]struct{}),
		pairs: make(map[NamePair]struct{}),
		links: make(map[string]string),
	}
}

// AddName records a raw name string. Returns true if it was not seen before.
func (rs *ResultSet) AddName(name string) bool {
	if _, ok := rs.names[name]; ok {
		return false
	}
	rs.names[name] = struct{}{}
	return true
}

// AddURL records a profile URL. Returns true if it was not seen before.
func (rs *ResultSet) AddURL(u string) bool {
	if _, ok := rs.urls[u]; ok {
		return false
	}
	rs.urls[u] = struct{}{}
	return true
}

// AddPair records a name pair. Returns true if it was not seen before.
func (rs *ResultSet) AddPair(p NamePair) bool {
	if _, ok := rs.pairs[p]; ok {
		return false
	}
	rs.pairs[p] = struct{}{}
	return true
}

// AddLink remembers the first name observed for a URL. The URL itself is added too.
func (rs *ResultSet) AddLink(l Link) bool {
	added := rs.AddURL(l.URL)
	if rs.links[l.URL] == "" {
		rs.links[l.URL] = l.Name
	}
	return added
}

// SortedNames returns raw names in byte order
func (rs *ResultSet) SortedNames() []string {
	return sortedKeys(rs.names)
}

// SortedURLs returns profile URLs in byte order
func (rs *ResultSet) SortedURLs() []string {
	return sortedKeys(rs.urls)
}

// SortedPairs returns name pairs ordered by last name then first name, ignoring case
func (rs *ResultSet) SortedPairs() []NamePair {
	out := make([]NamePair, 0, len(rs.pairs))
	for p := range rs.pairs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		li, lj := strings.ToLower(out[i].Last), strings.ToLower(out[j].Last)
		if li != lj {
			return li < lj
		}
		fi, fj := strings.ToLower(out[i].First), strings.ToLower(out[j].First)
		if fi != fj {
			return fi < fj
		}
		// Stable total order for pairs that differ only in case
		return out[i].String() < out[j].String()
	})
	return out
}

// Links returns every known URL with its associated name, ordered by URL.
// URLs that never appeared in a titled record have an empty name.
func (rs *ResultSet) Links() []Link {
	urls := rs.SortedURLs()
	out := make([]Link, 0, len(urls))
	for _, u := range urls {
		out = append(out, Link{URL: u, Name: rs.links[u]})
	}
	return out
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
