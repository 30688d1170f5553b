package extract

import (
	"reflect"
	"testing"

	"github.com/law-makers/profilehunt/pkg/models"
)

func TestNameTokens(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{"headline and company", "Jane Doe - Senior Security Engineer | Acme Corp", []string{"Jane", "Doe"}},
		{"pipe delimiter", "John Smith | LinkedIn", []string{"John", "Smith"}},
		{"em dash delimiter", "Marie Curie — Physicist", []string{"Marie", "Curie"}},
		{"leftmost delimiter wins", "Ann Lee | CTO - Acme", []string{"Ann", "Lee"}},
		{"commas become spaces", "Doe,Jane", []string{"Doe", "Jane"}},
		{"role token dropped", "Engineer Alice Wong Bob", []string{"Alice", "Wong", "Bob"}},
		{"role kept when only two tokens", "Engineer Alice", []string{"Engineer", "Alice"}},
		{"acronym removed", "Tom IBM Anderson", []string{"Tom", "Anderson"}},
		{"org words removed", "Acme Inc Ltd", []string{"Acme"}},
		{"non alphabetic removed", "Jane (she/her) Doe 2024", []string{"Jane", "Doe"}},
		{"apostrophes and hyphens", "Seán O'Brien-Smith", []string{"Seán", "O'Brien-Smith"}},
		{"at most three tokens", "Maria Luisa Garcia Lopez", []string{"Maria", "Luisa", "Garcia"}},
		{"single letter initial kept", "J Doe", []string{"J", "Doe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NameTokens(tt.title)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NameTokens(%q) = %v, want %v", tt.title, got, tt.want)
			}
		})
	}
}

func TestNameFromTitle(t *testing.T) {
	tests := []struct {
		title string
		want  models.NamePair
		ok    bool
	}{
		{"Jane Doe - Senior Security Engineer | Acme Corp", models.NamePair{First: "Jane", Last: "Doe"}, true},
		{"Engineer Alice Wong Bob", models.NamePair{First: "Alice", Last: "Bob"}, true},
		{"jANE dOE", models.NamePair{First: "Jane", Last: "Doe"}, true},
		{"Tom IBM Anderson", models.NamePair{First: "Tom", Last: "Anderson"}, true},
		{"J Doe", models.NamePair{}, false},
		{"Jane X", models.NamePair{}, false},
		{"Madonna", models.NamePair{}, false},
		{"IBM | Careers", models.NamePair{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got, ok := NameFromTitle(tt.title)
			if ok != tt.ok {
				t.Fatalf("NameFromTitle(%q) ok = %v, want %v", tt.title, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("NameFromTitle(%q) = %+v, want %+v", tt.title, got, tt.want)
			}
		})
	}
}

func TestNameFromTitle_LengthBounds(t *testing.T) {
	long := "Abcdefghijabcdefghijabcdefghijk Doe" // 31 letter first name
	if _, ok := NameFromTitle(long); ok {
		t.Errorf("Expected first name longer than 30 to be rejected")
	}
}

func TestIsProfileURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.linkedin.com/in/janedoe", true},
		{"https://uk.linkedin.com/in/janedoe", true},
		{"https://linkedin.com/pub/jane-doe/1/2/3", true},
		{"HTTPS://WWW.LINKEDIN.COM/IN/JANEDOE", true},
		{"https://www.linkedin.com/company/acme", false},
		{"https://www.linkedin.com/jobs/view/123", false},
		{"https://example.com/in/janedoe", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := IsProfileURL(tt.url); got != tt.want {
				t.Errorf("IsProfileURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"jane":    "Jane",
		"DOE":     "Doe",
		"o'brien": "O'brien",
		"élodie":  "Élodie",
		"":        "",
	}
	for in, want := range tests {
		if got := Capitalize(in); got != want {
			t.Errorf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
