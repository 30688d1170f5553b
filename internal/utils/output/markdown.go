package output

import (
	"os"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"

	"github.com/law-makers/profilehunt/pkg/models"
)

// RenderMarkdown converts the HTML report of rs into GitHub flavoured Markdown
func RenderMarkdown(rs *models.ResultSet) (string, error) {
	report, err := RenderHTML(rs)
	if err != nil {
		return "", err
	}

	converter := md.NewConverter("", true, nil)
	converter.Use(plugin.GitHubFlavored())
	return converter.ConvertString(report)
}

// SaveMarkdown writes the Markdown report of rs to filepath
func SaveMarkdown(rs *models.ResultSet, filepath string) error {
	mdStr, err := RenderMarkdown(rs)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, []byte(mdStr+"\n"), 0644)
}
