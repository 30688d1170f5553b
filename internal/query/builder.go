// Package query turns a raw company name or domain into search engine queries
// restricted to LinkedIn profile pages.
package query

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	profileScope = "site:linkedin.com/in"
	legacyScope  = "site:linkedin.com/pub"
	negatives    = "-jobs -hiring"
)

// roleKeywords is the disjunction used to bias results towards staff profiles
var roleKeywords = []string{"engineer", "manager", "director", "founder", "developer", "head"}

// leadershipKeywords targets team pages and senior staff
var leadershipKeywords = []string{"team", "leadership", "executive", `"head of"`}

// IsDomain reports whether term looks like a domain: it contains a dot and no whitespace.
func IsDomain(term string) bool {
	term = strings.TrimSpace(term)
	if !strings.Contains(term, ".") {
		return false
	}
	return strings.IndexFunc(term, unicode.IsSpace) < 0
}

// Build returns the ordered query list for term.
// Domain-like terms produce 3 queries, anything else produces 4. An empty term produces none.
func Build(term string) []string {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	if IsDomain(term) {
		return buildDomain(term)
	}
	return buildCompany(term)
}

// Simple returns the single query used by the deep-link feed
func Simple(term string) string {
	return profileScope + " " + strings.TrimSpace(term)
}

func buildDomain(domain string) []string {
	domain = strings.ToLower(strings.TrimPrefix(domain, "@"))
	mention := fmt.Sprintf(`("%s" OR "@%s")`, domain, domain)

	return []string{
		join(profileScope, mention, negatives),
		join(profileScope, mention, disjunction(roleKeywords), negatives),
		join(legacyScope, mention, negatives),
	}
}

func buildCompany(company string) []string {
	quoted := `"` + strings.ReplaceAll(company, `"`, "") + `"`

	return []string{
		join(profileScope, quoted, negatives),
		join(profileScope, quoted, disjunction(roleKeywords), negatives),
		join(profileScope, quoted, disjunction(leadershipKeywords), negatives),
		join(legacyScope, quoted, negatives),
	}
}

func disjunction(words []string) string {
	return "(" + strings.Join(words, " OR ") + ")"
}

func join(parts ...string) string {
	return strings.Join(parts, " ")
}
