package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/law-makers/profilehunt/pkg/models"
)

const (
	maxNameTokens = 3
	minFirstLen   = 2
	maxFirstLen   = 30
	minLastLen    = 2
	maxLastLen    = 40
)

var (
	profileURLPattern = regexp.MustCompile(`(?i)^https?://([a-z0-9-]+\.)?linkedin\.com/(in|pub)/`)

	// Letters including Latin-1 and Latin Extended-A/B, plus apostrophes and hyphens
	nameTokenPattern = regexp.MustCompile(`^[A-Za-z\x{00C0}-\x{00D6}\x{00D8}-\x{00F6}\x{00F8}-\x{024F}'\x{2019}-]+$`)

	// Delimiters that separate the person's name from headline and company
	titleDelimiters = []string{"|", "—", " - "}
)

var orgStopWords = toSet(
	"inc", "llc", "ltd", "limited", "corp", "corporation", "company", "co",
	"group", "gmbh", "ag", "sa", "plc", "llp", "holdings", "technologies",
	"solutions", "services", "university", "linkedin",
)

var roleStopWords = toSet(
	"engineer", "founder", "cofounder", "co-founder", "ceo", "cto", "cfo", "coo",
	"manager", "director", "president", "developer", "consultant", "recruiter",
	"designer", "analyst", "architect", "senior", "lead", "head", "vp", "partner",
	"owner", "intern", "specialist", "scientist",
)

// IsProfileURL reports whether link points at a LinkedIn /in/ or /pub/ profile
func IsProfileURL(link string) bool {
	return profileURLPattern.MatchString(link)
}

// NameTokens returns at most three name-like tokens extracted from a search result title
func NameTokens(title string) []string {
	title = truncateTitle(title)
	title = strings.ReplaceAll(title, ",", " ")

	var tokens []string
	for _, tok := range strings.Fields(title) {
		if !nameTokenPattern.MatchString(tok) {
			continue
		}
		if _, stop := orgStopWords[strings.ToLower(tok)]; stop {
			continue
		}
		if isAcronym(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}

	if len(tokens) >= 3 {
		if _, role := roleStopWords[strings.ToLower(tokens[0])]; role {
			tokens = tokens[1:]
		}
	}

	if len(tokens) > maxNameTokens {
		tokens = tokens[:maxNameTokens]
	}
	return tokens
}

// NameFromTitle derives a capitalised (first, last) pair from a result title.
// The second return value is false when the title does not carry a plausible name.
func NameFromTitle(title string) (models.NamePair, bool) {
	tokens := NameTokens(title)
	if len(tokens) < 2 {
		return models.NamePair{}, false
	}

	pair := models.NamePair{
		First: Capitalize(tokens[0]),
		Last:  Capitalize(tokens[len(tokens)-1]),
	}

	if n := utf8.RuneCountInString(pair.First); n < minFirstLen || n > maxFirstLen {
		return models.NamePair{}, false
	}
	if n := utf8.RuneCountInString(pair.Last); n < minLastLen || n > maxLastLen {
		return models.NamePair{}, false
	}
	return pair, true
}

// Capitalize upper-cases the first rune and lower-cases the rest
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// truncateTitle cuts the title at the leftmost delimiter
func truncateTitle(title string) string {
	cut := len(title)
	for _, d := range titleDelimiters {
		if idx := strings.Index(title, d); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	return title[:cut]
}

// isAcronym treats fully upper-case tokens of two or more runes as initials or company names
func isAcronym(tok string) bool {
	if utf8.RuneCountInString(tok) < 2 {
		return false
	}
	return strings.ToUpper(tok) == tok && strings.ToLower(tok) != tok
}

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
