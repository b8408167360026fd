package finder

import "github.com/killallgit/news-finder/internal/models"

// State is everything the page needs to render one session. Transitions never
// mutate a State in place; they return a new one.
type State struct {
	View     models.ViewState        `json:"view"`
	Params   models.SearchParameters `json:"params"`
	Articles []models.Article        `json:"articles,omitempty"`
}

// Initial is the state of a session that has never been touched
func Initial() State {
	return State{
		View: models.ViewState{Screen: models.ScreenSearch},
	}
}

// HasResults reports whether an article list is held
func (s State) HasResults() bool {
	return len(s.Articles) > 0
}
