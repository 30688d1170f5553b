// Package output renders a ResultSet for the terminal and exports it to files.
package output

import (
	"github.com/law-makers/profilehunt/pkg/models"
)

// Row is one flattened profile candidate used by the file exports
type Row struct {
	Name  string `json:"name,omitempty"`
	First string `json:"first_name,omitempty"`
	Last  string `json:"last_name,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Rows flattens rs: every URL with the name seen next to it, then names and
// pairs that were never attached to a URL.
func Rows(rs *models.ResultSet) []Row {
	pairs := rs.SortedPairs()
	byName := make(map[string]models.NamePair, len(pairs))
	for _, p := range pairs {
		byName[p.String()] = p
	}

	used := make(map[string]bool)
	var rows []Row
	for _, l := range rs.Links() {
		r := Row{Name: l.Name, URL: l.URL}
		if p, ok := byName[l.Name]; ok {
			r.First, r.Last = p.First, p.Last
		}
		if l.Name != "" {
			used[l.Name] = true
		}
		rows = append(rows, r)
	}

	for _, n := range rs.SortedNames() {
		if !used[n] {
			used[n] = true
			rows = append(rows, Row{Name: n})
		}
	}
	for _, p := range pairs {
		if !used[p.String()] {
			rows = append(rows, Row{Name: p.String(), First: p.First, Last: p.Last})
		}
	}
	return rows
}
