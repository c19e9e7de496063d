// Package textutil provides the text normalization primitives shared by the
// search, scoring and clustering stages.
package textutil

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	tokenSplitRe = regexp.MustCompile(`[^a-z0-9]+`)
	slugSepRe    = regexp.MustCompile(`[-_]+`)
	digitRunRe   = regexp.MustCompile(`\b\d+\b`)
)

// NormalizeWhitespace collapses runs of whitespace to single spaces and trims.
func NormalizeWhitespace(value string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(value, " "))
}

// NormalizeLink unwraps DuckDuckGo redirect links of the form
// //duckduckgo.com/l/?uddg=<target>. Other URLs pass through untouched.
func NormalizeLink(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if strings.Contains(parsed.Host, "duckduckgo.com") && parsed.Path == "/l/" {
		if target := parsed.Query().Get("uddg"); target != "" {
			return target
		}
	}
	return rawURL
}

// NameTokens splits a name into lowercase alphanumeric tokens.
func NameTokens(name string) []string {
	var tokens []string
	for _, tok := range tokenSplitRe.Split(strings.ToLower(name), -1) {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// NameFromLinkedIn recovers a display name from a LinkedIn profile URL's
// /in/<slug> segment: separators become spaces, bare digit runs are dropped,
// and the remainder is title-cased. Returns "" when no usable slug exists.
func NameFromLinkedIn(linkedinURL string) string {
	parsed, err := url.Parse(linkedinURL)
	if err != nil {
		return ""
	}
	parts := splitPath(parsed.Path)
	for i, part := range parts {
		if part == "in" && i+1 < len(parts) {
			slug := slugSepRe.ReplaceAllString(parts[i+1], " ")
			slug = digitRunRe.ReplaceAllString(slug, "")
			slug = NormalizeWhitespace(slug)
			if slug == "" {
				return ""
			}
			return titleCase(slug)
		}
	}
	return ""
}

// Domain returns the lowercase host of a URL, or "" when unparseable.
func Domain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Host)
}

func splitPath(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}
