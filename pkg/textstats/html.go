package textstats

import (
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-shiori/go-readability"
)

var (
	// (?s) allows dot to match newlines
	// (?i) makes it case-insensitive
	reRT = regexp.MustCompile(`(?si)<rt\b[^>]*>.*?</rt>`)
	reRP = regexp.MustCompile(`(?si)<rp\b[^>]*>.*?</rp>`)
)

// SanitizeRuby removes ruby text (<rt>...</rt>) and ruby parentheses
// (<rp>...</rp>) from HTML content, so annotated words are not counted twice
// (e.g. "漢字" becoming "漢字かんじ").
func SanitizeRuby(content []byte) []byte {
	cleaned := reRT.ReplaceAll(content, []byte{})
	cleaned = reRP.ReplaceAll(cleaned, []byte{})
	return cleaned
}

// ExtractArticle returns the readable text of an HTML page. path is only used
// to give readability a base URL for the document.
func ExtractArticle(html, path string) (string, error) {
	sanitized := SanitizeRuby([]byte(html))

	base := &url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	if abs, err := filepath.Abs(path); err == nil {
		base.Path = filepath.ToSlash(abs)
	}

	article, err := readability.FromReader(strings.NewReader(string(sanitized)), base)
	if err != nil {
		return "", err
	}
	return article.TextContent, nil
}
