package output

import (
	"bytes"
	"html/template"
	"os"

	"github.com/law-makers/profilehunt/pkg/models"
)

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Profiles found</title></head>
<body>
<h1>Profiles found</h1>
<p>{{len .}} candidates</p>
<table>
<thead><tr><th>Name</th><th>First name</th><th>Last name</th><th>Profile</th></tr></thead>
<tbody>
{{- range .}}
<tr><td>{{.Name}}</td><td>{{.First}}</td><td>{{.Last}}</td><td>{{if .URL}}<a href="{{.URL}}">{{.URL}}</a>{{end}}</td></tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`))

// RenderHTML returns a standalone HTML report of rs
func RenderHTML(rs *models.ResultSet) (string, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, Rows(rs)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SaveHTML writes the HTML report of rs to filepath
func SaveHTML(rs *models.ResultSet, filepath string) error {
	report, err := RenderHTML(rs)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, []byte(report), 0644)
}
