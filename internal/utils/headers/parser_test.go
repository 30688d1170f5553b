package headers

import (
	"net/http"
	"reflect"
	"testing"
)

func TestParseHeaders(t *testing.T) {
	in := []string{"User-Agent: Bot", "Accept: text/html", "BadHeader"}
	out := ParseHeaders(in)
	expected := map[string]string{"User-Agent": "Bot", "Accept": "text/html"}
	if !reflect.DeepEqual(out, expected) {
		t.Fatalf("unexpected parse result: %#v", out)
	}
}

func TestProfile_WithDoesNotMutate(t *testing.T) {
	base := FrontPage("")
	over := base.With(map[string]string{"accept-language": "de-DE"})

	if base.Get("Accept-Language") != "en-US,en;q=0.9" {
		t.Errorf("Base profile was mutated: %q", base.Get("Accept-Language"))
	}
	if over.Get("Accept-Language") != "de-DE" {
		t.Errorf("Override not applied: %q", over.Get("Accept-Language"))
	}
}

func TestProfile_Apply(t *testing.T) {
	req, _ := http.NewRequest("GET", "http://127.0.0.1/d.js", nil)
	DeepScript("", "https://duckduckgo.com/").With(map[string]string{"host": "links.duckduckgo.com"}).Apply(req)

	if req.Host != "links.duckduckgo.com" {
		t.Errorf("Expected Host override, got %q", req.Host)
	}
	if req.Header.Get("Sec-Fetch-Dest") != "script" {
		t.Errorf("Expected Sec-Fetch-Dest header, got %q", req.Header.Get("Sec-Fetch-Dest"))
	}
	if req.Header.Get("User-Agent") != DefaultBrowserUA {
		t.Errorf("Expected default browser UA, got %q", req.Header.Get("User-Agent"))
	}
}

func TestAPI(t *testing.T) {
	p := API("ua/1.0", "secret")
	if p.Get("X-API-KEY") != "secret" {
		t.Errorf("Expected API key header, got %q", p.Get("X-API-KEY"))
	}
	if p.Len() != 4 {
		t.Errorf("Expected 4 headers, got %d: %v", p.Len(), p.Keys())
	}
}
