package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/law-makers/profilehunt/pkg/models"
)

// organicResponse mirrors the parts of the search API response we read
type organicResponse struct {
	Organic []organicItem `json:"organic"`
}

type organicItem struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// ParseOrganic extracts name pairs from a search API JSON response.
// Items without a title, without a link or pointing outside LinkedIn profiles are skipped.
func ParseOrganic(body []byte) (Page, error) {
	var resp organicResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Page{}, fmt.Errorf("failed to decode search response: %w", err)
	}

	var page Page
	seen := make(map[models.NamePair]bool)
	for _, item := range resp.Organic {
		link := strings.TrimSpace(item.Link)
		title := strings.TrimSpace(item.Title)
		if link == "" || title == "" || !IsProfileURL(link) {
			continue
		}

		pair, ok := NameFromTitle(title)
		if !ok {
			continue
		}
		if !seen[pair] {
			seen[pair] = true
			page.Pairs = append(page.Pairs, pair)
		}
		page.Links = append(page.Links, models.Link{URL: link, Name: pair.String()})
	}

	return page, nil
}
