package output

import (
	"fmt"
	"io"

	"github.com/law-makers/profilehunt/pkg/models"
)

// DeepHeader precedes the deep feed listing
const DeepHeader = "===== Profiles found ====="

// WriteDeepText prints the deep feed results.
//
// By default the independently sorted names and URLs are zipped line by line,
// stopping at the shorter list, so a line's name and URL need not belong together.
// With paired set each URL is printed with the name observed in the same record.
func WriteDeepText(w io.Writer, rs *models.ResultSet, paired bool) error {
	if _, err := fmt.Fprintf(w, "\n%s\n", DeepHeader); err != nil {
		return err
	}

	if paired {
		for _, l := range rs.Links() {
			name := l.Name
			if name == "" {
				name = "?"
			}
			if _, err := fmt.Fprintf(w, "%s: %s\n", name, l.URL); err != nil {
				return err
			}
		}
		return nil
	}

	names, urls := rs.SortedNames(), rs.SortedURLs()
	for i := 0; i < len(names) && i < len(urls); i++ {
		if _, err := fmt.Fprintf(w, "%s: %s\n", names[i], urls[i]); err != nil {
			return err
		}
	}
	return nil
}

// WriteNamesText prints the count line followed by one "First Last" line per pair
func WriteNamesText(w io.Writer, rs *models.ResultSet) error {
	pairs := rs.SortedPairs()
	if _, err := fmt.Fprintf(w, "Found %d unique names\n", len(pairs)); err != nil {
		return err
	}
	for _, p := range pairs {
		if _, err := fmt.Fprintln(w, p.String()); err != nil {
			return err
		}
	}
	return nil
}
