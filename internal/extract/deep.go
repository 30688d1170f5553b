// Package extract holds the pure parsers that turn raw search payloads into
// profile candidates. Nothing here performs I/O.
package extract

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	urlutil "github.com/law-makers/profilehunt/internal/utils/url"
	"github.com/law-makers/profilehunt/pkg/models"
)

// profilePathMarker identifies profile URLs inside the deep-link script feed
const profilePathMarker = "linkedin.com/in/"

var (
	languagesPattern = regexp.MustCompile(`DDG\.inject\('DDG\.Data\.languages\.resultLanguages',\s*(\{.+?\})\);`)
	recordPattern    = regexp.MustCompile(`"u":"(https?://[^"]+?)".+?"t":"(.*?)"`)
	nextPattern      = regexp.MustCompile(`"n"\s*:\s*"([^"]+)"`)
)

// Page is the result of parsing one raw payload
type Page struct {
	Names []string
	URLs  []string
	Links []models.Link
	Pairs []models.NamePair
	// Next is the absolute URL of the following page, empty when there is none
	Next string
}

// Empty reports whether the page produced no candidates at all
func (p Page) Empty() bool {
	return len(p.Names) == 0 && len(p.URLs) == 0 && len(p.Pairs) == 0
}

// ParseDeepScript scans a deep-link script body for profile URLs, the names found
// next to them and the relative path of the next page, which is resolved against origin.
// Malformed embedded JSON is ignored.
func ParseDeepScript(js, origin string) Page {
	var page Page
	seenURL := make(map[string]bool)
	seenName := make(map[string]bool)

	addURL := func(u string) {
		if !seenURL[u] {
			seenURL[u] = true
			page.URLs = append(page.URLs, u)
		}
	}

	if m := languagesPattern.FindStringSubmatch(js); m != nil {
		for _, u := range languageURLs(m[1]) {
			if strings.Contains(u, profilePathMarker) {
				addURL(u)
			}
		}
	}

	for _, m := range recordPattern.FindAllStringSubmatch(js, -1) {
		u, title := m[1], m[2]
		if !strings.Contains(u, profilePathMarker) {
			continue
		}
		addURL(u)

		name := recordName(title)
		if !seenName[name] {
			seenName[name] = true
			page.Names = append(page.Names, name)
		}
		page.Links = append(page.Links, models.Link{URL: u, Name: name})
	}

	if m := nextPattern.FindStringSubmatch(js); m != nil {
		page.Next = urlutil.ResolveURL(origin, m[1])
	}

	return page
}

// languageURLs decodes the resultLanguages object and returns the URLs listed under "en"
func languageURLs(raw string) []string {
	var byLang map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &byLang); err != nil {
		return nil
	}

	var urls []string
	if err := json.Unmarshal(byLang["en"], &urls); err != nil {
		return nil
	}
	return urls
}

// recordName keeps the part of the title before the first " -" and percent-decodes it
func recordName(title string) string {
	if idx := strings.Index(title, " -"); idx >= 0 {
		title = title[:idx]
	}
	return percentDecode(title)
}

// percentDecode decodes every valid %XX escape and leaves stray '%' as is.
// Byte sequences that do not form UTF-8 become U+FFFD.
func percentDecode(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && !(i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2])) {
			b.WriteString("%25")
			continue
		}
		b.WriteByte(s[i])
	}
	decoded, err := url.PathUnescape(b.String())
	if err != nil {
		return s
	}
	return strings.ToValidUTF8(decoded, "\uFFFD")
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}
