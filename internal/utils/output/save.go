package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/law-makers/profilehunt/pkg/models"
)

// Formats lists the export extensions understood by Save
var Formats = []string{".json", ".csv", ".html", ".md"}

// Save exports rs to path, choosing the format from its extension
func Save(rs *models.ResultSet, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SaveJSON(rs, path)
	case ".csv":
		return SaveCSV(rs, path)
	case ".html", ".htm":
		return SaveHTML(rs, path)
	case ".md", ".markdown":
		return SaveMarkdown(rs, path)
	default:
		return fmt.Errorf("unsupported output format %q (use one of %s)", filepath.Ext(path), strings.Join(Formats, ", "))
	}
}
