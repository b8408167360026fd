package finder

import (
	"github.com/killallgit/news-finder/internal/models"
	finderService "github.com/killallgit/news-finder/internal/services/finder"
)

// selectOption is a form option with its selected flag resolved
type selectOption struct {
	Value    string
	Label    string
	Selected bool
}

// card is one rendered article
type card struct {
	Title       string
	Description string
	Published   string
	Source      string
	Author      string
	URL         string
}

// pageView is everything the page template reads
type pageView struct {
	Screen          string
	Loading         bool
	Modal           *models.Modal
	Params          models.SearchParameters
	ScopeOptions    []selectOption
	LanguageOptions []selectOption
	SortOptions     []selectOption
	Cards           []card
}

func newPageView(s finderService.State, dateLayout string) pageView {
	v := pageView{
		Screen:          string(s.View.Screen),
		Loading:         s.View.Screen == models.ScreenLoading,
		Modal:           s.View.Modal,
		Params:          s.Params,
		ScopeOptions:    resolveOptions(models.ScopeOptions, string(s.Params.SearchScope)),
		LanguageOptions: resolveOptions(models.LanguageOptions, string(s.Params.Language)),
		SortOptions:     resolveOptions(models.SortOptions, string(s.Params.EffectiveSortOrder())),
	}

	if s.View.Screen == models.ScreenResults {
		v.Cards = make([]card, 0, len(s.Articles))
		for _, a := range s.Articles {
			v.Cards = append(v.Cards, card{
				Title:       a.Title,
				Description: a.Description,
				Published:   formatDate(a.PublishedAt, dateLayout),
				Source:      a.SourceName,
				Author:      a.DisplayAuthor(),
				URL:         a.URL,
			})
		}
	}

	return v
}

func resolveOptions(options []models.Option, selected string) []selectOption {
	resolved := make([]selectOption, len(options))
	for i, o := range options {
		resolved[i] = selectOption{Value: o.Value, Label: o.Label, Selected: o.Value == selected}
	}
	return resolved
}
