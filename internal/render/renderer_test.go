package render

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/law-makers/profilehunt/internal/utils/headers"
)

func TestExtraHeaders_SkipsBrowserManaged(t *testing.T) {
	p := headers.FrontPage("custom-agent").With(map[string]string{
		"Accept-Encoding": "br",
		"X-Trace":         "1",
	})

	got := ExtraHeaders(p)
	if _, ok := got["User-Agent"]; ok {
		t.Error("User-Agent must be left to the browser")
	}
	if _, ok := got["Accept-Encoding"]; ok {
		t.Error("Accept-Encoding must be left to the browser")
	}
	if got["X-Trace"] != "1" {
		t.Errorf("Expected X-Trace to be forwarded, got %v", got)
	}
	if got["Accept-Language"] != "en-US,en;q=0.9" {
		t.Errorf("Expected Accept-Language to be forwarded, got %v", got["Accept-Language"])
	}
}

func TestFindChrome_EnvOverride(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bit check is unix only")
	}
	path := filepath.Join(t.TempDir(), "fake-chrome")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("failed to write fake browser: %v", err)
	}
	t.Setenv("CHROME_PATH", path)

	if got := FindChrome(); got != path {
		t.Errorf("FindChrome() = %q, want %q", got, path)
	}
}

func TestIsExecutable(t *testing.T) {
	dir := t.TempDir()
	if isExecutable(dir) {
		t.Error("A directory is not executable")
	}
	if isExecutable(filepath.Join(dir, "missing")) {
		t.Error("A missing file is not executable")
	}
}

func TestNew_Defaults(t *testing.T) {
	r := New("ua", headers.Profile{}, "", 0)
	if r.Timeout <= 0 || r.WaitSelector != "body" {
		t.Errorf("Unexpected defaults: %+v", r)
	}
}
