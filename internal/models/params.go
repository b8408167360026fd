package models

import "fmt"

// SearchScope restricts which article fields the keywords are matched against
type SearchScope string

const (
	ScopeAll         SearchScope = ""
	ScopeTitle       SearchScope = "title"
	ScopeDescription SearchScope = "description"
	ScopeContent     SearchScope = "content"
)

// Language is one of the article languages the endpoint can filter on
type Language string

const (
	LanguageAll        Language = ""
	LanguageArabic     Language = "ar"
	LanguageGerman     Language = "de"
	LanguageEnglish    Language = "en"
	LanguageSpanish    Language = "es"
	LanguageFrench     Language = "fr"
	LanguageHebrew     Language = "he"
	LanguageItalian    Language = "it"
	LanguageDutch      Language = "nl"
	LanguageNorwegian  Language = "no"
	LanguagePortuguese Language = "pt"
	LanguageRussian    Language = "ru"
	LanguageSwedish    Language = "sv"
	LanguageUrdu       Language = "ud"
	LanguageChinese    Language = "zh"
)

// SortOrder is the ordering requested from the endpoint
type SortOrder string

const (
	SortPublishedAt SortOrder = "publishedAt"
	SortRelevancy   SortOrder = "relevancy"
	SortPopularity  SortOrder = "popularity"

	// DefaultSortOrder applies whenever no sort order was chosen
	DefaultSortOrder = SortPublishedAt
)

// Option is a value/label pair for a form select
type Option struct {
	Value string
	Label string
}

// ScopeOptions lists the selectable search scopes in display order
var ScopeOptions = []Option{
	{string(ScopeAll), "All Fields"},
	{string(ScopeTitle), "Title"},
	{string(ScopeDescription), "Description"},
	{string(ScopeContent), "Content"},
}

// LanguageOptions lists the selectable languages in display order
var LanguageOptions = []Option{
	{string(LanguageAll), "All Languages"},
	{string(LanguageArabic), "Arabic"},
	{string(LanguageGerman), "German"},
	{string(LanguageEnglish), "English"},
	{string(LanguageSpanish), "Spanish"},
	{string(LanguageFrench), "French"},
	{string(LanguageHebrew), "Hebrew"},
	{string(LanguageItalian), "Italian"},
	{string(LanguageDutch), "Dutch"},
	{string(LanguageNorwegian), "Norwegian"},
	{string(LanguagePortuguese), "Portuguese"},
	{string(LanguageRussian), "Russian"},
	{string(LanguageSwedish), "Swedish"},
	{string(LanguageUrdu), "Urdu"},
	{string(LanguageChinese), "Chinese"},
}

// SortOptions lists the selectable sort orders in display order
var SortOptions = []Option{
	{string(SortPublishedAt), "Published date"},
	{string(SortRelevancy), "Relevancy"},
	{string(SortPopularity), "Popularity"},
}

// SearchParameters is the user-editable filter set sent with each query.
// The zero value is the cleared form.
type SearchParameters struct {
	Keywords    string      `json:"keywords,omitempty" form:"q"`
	SearchScope SearchScope `json:"searchIn,omitempty" form:"searchIn"`
	FromDate    string      `json:"from,omitempty" form:"from"`
	ToDate      string      `json:"to,omitempty" form:"to"`
	Language    Language    `json:"language,omitempty" form:"language"`
	SortOrder   SortOrder   `json:"sortBy,omitempty" form:"sortBy"`
}

// EffectiveSortOrder resolves an unset sort order to the default
func (p SearchParameters) EffectiveSortOrder() SortOrder {
	if p.SortOrder == "" {
		return DefaultSortOrder
	}
	return p.SortOrder
}

// Validate checks the enumerated fields. Dates and keywords are left to the endpoint.
func (p SearchParameters) Validate() error {
	if !validOption(ScopeOptions, string(p.SearchScope)) {
		return fmt.Errorf("unknown search scope %q", p.SearchScope)
	}
	if !validOption(LanguageOptions, string(p.Language)) {
		return fmt.Errorf("unknown language %q", p.Language)
	}
	if p.SortOrder != "" && !validOption(SortOptions, string(p.SortOrder)) {
		return fmt.Errorf("unknown sort order %q", p.SortOrder)
	}
	return nil
}

func validOption(options []Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}
