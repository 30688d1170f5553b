package urlutil

import "testing"

func TestValidate(t *testing.T) {
	valid := []string{
		"http://example.com",
		"https://example.com/path",
	}
	for _, u := range valid {
		if err := ValidateURL(u); err != nil {
			t.Fatalf("expected valid, got error: %v", err)
		}
	}

	invalid := []string{"ftp://example.com", "//example.com", "http:///"}
	for _, u := range invalid {
		if err := ValidateURL(u); err == nil {
			t.Fatalf("expected invalid for %s", u)
		}
	}
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		base, href, want string
	}{
		{"https://links.duckduckgo.com", "/d.js?q=x&s=20", "https://links.duckduckgo.com/d.js?q=x&s=20"},
		{"https://duckduckgo.com/?q=x", "https://links.duckduckgo.com/d.js", "https://links.duckduckgo.com/d.js"},
		{"https://duckduckgo.com/a/b", "c.js", "https://duckduckgo.com/a/c.js"},
	}
	for _, tt := range tests {
		if got := ResolveURL(tt.base, tt.href); got != tt.want {
			t.Errorf("ResolveURL(%q, %q) = %q, want %q", tt.base, tt.href, got, tt.want)
		}
	}
}

func TestOrigin(t *testing.T) {
	if got := Origin("https://links.duckduckgo.com/d.js?q=1"); got != "https://links.duckduckgo.com" {
		t.Errorf("Origin() = %q", got)
	}
	if got := Origin("not a url"); got != "" {
		t.Errorf("Origin() of garbage = %q, want empty", got)
	}
}
