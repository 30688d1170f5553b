// internal/render/chrome.go
package render

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog/log"
)

// FindChrome locates a Chrome/Chromium executable. CHROME_PATH wins over the
// standard install locations, which win over PATH. An empty result lets
// chromedp fall back to its own lookup.
func FindChrome() string {
	if path := os.Getenv("CHROME_PATH"); path != "" {
		if isExecutable(path) {
			log.Debug().Str("path", path).Msg("Chrome found via CHROME_PATH")
			return path
		}
		log.Warn().Str("path", path).Msg("CHROME_PATH set but not executable")
	}

	for _, path := range candidates() {
		if isExecutable(path) {
			log.Debug().Str("path", path).Str("os", runtime.GOOS).Msg("Chrome found at standard location")
			return path
		}
	}

	for _, name := range []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser", "chrome", "msedge"} {
		if path, err := exec.LookPath(name); err == nil {
			log.Debug().Str("path", path).Msg("Chrome found in PATH")
			return path
		}
	}

	log.Warn().Str("os", runtime.GOOS).Msg("Chrome not found, using chromedp default")
	return ""
}

func candidates() []string {
	home := os.Getenv("HOME")

	switch runtime.GOOS {
	case "darwin":
		list := []string{
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
			"/Applications/Chromium.app/Contents/MacOS/Chromium",
			"/Applications/Microsoft Edge.app/Contents/MacOS/Microsoft Edge",
		}
		if home != "" {
			list = append(list, filepath.Join(home, "Applications/Google Chrome.app/Contents/MacOS/Google Chrome"))
		}
		return list

	case "windows":
		var list []string
		for _, base := range []string{os.Getenv("ProgramFiles"), os.Getenv("ProgramFiles(x86)"), os.Getenv("LocalAppData")} {
			if base == "" {
				continue
			}
			list = append(list,
				filepath.Join(base, "Google\\Chrome\\Application\\chrome.exe"),
				filepath.Join(base, "Chromium\\Application\\chrome.exe"),
				filepath.Join(base, "Microsoft\\Edge\\Application\\msedge.exe"),
			)
		}
		return list

	default:
		list := []string{
			"/usr/bin/google-chrome-stable",
			"/usr/bin/google-chrome",
			"/usr/bin/chromium-browser",
			"/usr/bin/chromium",
			"/snap/bin/chromium",
		}
		if home != "" {
			list = append(list, filepath.Join(home, ".local/share/flatpak/exports/bin/org.chromium.Chromium"))
		}
		return list
	}
}

// isExecutable checks if a file exists and is executable
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if runtime.GOOS == "windows" {
		return !info.IsDir()
	}
	return !info.IsDir() && info.Mode()&0111 != 0
}
