package output

import (
	"encoding/csv"
	"os"

	"github.com/law-makers/profilehunt/pkg/models"
)

var csvHeader = []string{"name", "first_name", "last_name", "url"}

// SaveCSV writes one row per profile candidate to filepath. Returns an error on failure.
func SaveCSV(rs *models.ResultSet, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range Rows(rs) {
		if err := writer.Write([]string{r.Name, r.First, r.Last, r.URL}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
