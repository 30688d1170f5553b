package ui

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// NewProgress returns a progress bar over total steps written to stderr.
// When disabled the bar writes nowhere.
func NewProgress(total int, description string, enabled bool) *progressbar.ProgressBar {
	var out io.Writer = os.Stderr
	if !enabled {
		out = io.Discard
	}

	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionEnableColorCodes(enabled),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[cyan]=[reset]",
			SaucerHead:    "[cyan]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

// Truncate shortens s to at most n runes, marking the cut with "..."
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
