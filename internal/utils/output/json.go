package output

import (
	"encoding/json"
	"os"

	"github.com/law-makers/profilehunt/pkg/models"
)

// Export is the JSON document written by SaveJSON
type Export struct {
	Names    []string          `json:"names,omitempty"`
	URLs     []string          `json:"urls,omitempty"`
	Pairs    []models.NamePair `json:"pairs,omitempty"`
	Profiles []Row             `json:"profiles"`
}

// NewExport builds the export document for rs
func NewExport(rs *models.ResultSet) Export {
	profiles := Rows(rs)
	if profiles == nil {
		profiles = []Row{}
	}
	return Export{
		Names:    rs.SortedNames(),
		URLs:     rs.SortedURLs(),
		Pairs:    rs.SortedPairs(),
		Profiles: profiles,
	}
}

// SaveJSON writes an indented JSON export of rs to filepath
func SaveJSON(rs *models.ResultSet, filepath string) error {
	content, err := json.MarshalIndent(NewExport(rs), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, content, 0644)
}
