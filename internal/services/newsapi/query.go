package newsapi

import (
	"net/url"
	"strings"

	"github.com/killallgit/news-finder/internal/models"
)

// BuildURL maps a parameter set to a request URL against endpoint. The API key
// always comes first, followed by one parameter per non-empty field. Empty
// fields are left out entirely since the endpoint treats an absent parameter
// differently from a blank one. Only the keywords are percent-encoded; every
// other value is passed through as-is and left for the endpoint to judge.
func BuildURL(endpoint, apiKey string, p models.SearchParameters) string {
	var b strings.Builder
	b.WriteString(endpoint)

	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	add := func(key, value string) {
		b.WriteString(sep)
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(value)
		sep = "&"
	}

	add("apiKey", apiKey)
	if p.Keywords != "" {
		add("q", encodeComponent(p.Keywords))
	}
	if p.SearchScope != "" {
		add("searchIn", string(p.SearchScope))
	}
	if p.FromDate != "" {
		add("from", p.FromDate)
	}
	if p.ToDate != "" {
		add("to", p.ToDate)
	}
	if p.Language != "" {
		add("language", string(p.Language))
	}
	add("sortBy", string(p.EffectiveSortOrder()))

	return b.String()
}

// encodeComponent escapes s for a query value with spaces as %20
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// RedactURL hides the apiKey value so request URLs can be logged or printed
func RedactURL(rawURL string) string {
	i := strings.Index(rawURL, "apiKey=")
	if i < 0 {
		return rawURL
	}
	start := i + len("apiKey=")
	end := strings.IndexByte(rawURL[start:], '&')
	if end < 0 {
		return rawURL[:start] + "REDACTED"
	}
	return rawURL[:start] + "REDACTED" + rawURL[start+end:]
}
