package finder

import (
	"time"

	"golang.org/x/text/language"
)

// isoDateLayout is used for CJK locales and whenever no locale matches
const isoDateLayout = "2006-01-02"

// dateLayouts pairs each supported locale with its short date layout. The
// first entry is the matcher's fallback.
var dateLayouts = []struct {
	tag    language.Tag
	layout string
}{
	{language.Und, isoDateLayout},
	{language.AmericanEnglish, "1/2/2006"},
	{language.BritishEnglish, "02/01/2006"},
	{language.French, "02/01/2006"},
	{language.Spanish, "02/01/2006"},
	{language.Italian, "02/01/2006"},
	{language.Portuguese, "02/01/2006"},
	{language.Dutch, "02/01/2006"},
	{language.Greek, "02/01/2006"},
	{language.German, "02.01.2006"},
	{language.Russian, "02.01.2006"},
	{language.Norwegian, "02.01.2006"},
	{language.Polish, "02.01.2006"},
	{language.Turkish, "02.01.2006"},
	{language.Swedish, isoDateLayout},
	{language.Chinese, isoDateLayout},
	{language.Japanese, isoDateLayout},
	{language.Korean, isoDateLayout},
}

var dateMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(dateLayouts))
	for i, l := range dateLayouts {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// dateLayoutFor picks a short date layout for an Accept-Language header value
func dateLayoutFor(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return isoDateLayout
	}

	_, index, confidence := dateMatcher.Match(tags...)
	if confidence == language.No {
		return isoDateLayout
	}
	return dateLayouts[index].layout
}

// formatDate renders t with layout, or "Unknown" when t is unset
func formatDate(t time.Time, layout string) string {
	if t.IsZero() {
		return "Unknown"
	}
	return t.UTC().Format(layout)
}
