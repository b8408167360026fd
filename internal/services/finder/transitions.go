package finder

import (
	"github.com/killallgit/news-finder/internal/models"
	"github.com/killallgit/news-finder/internal/services/newsapi"
)

// Event is a user action or search outcome that moves the state forward
type Event interface {
	event()
}

// ParametersEdited replaces the current parameters
type ParametersEdited struct {
	Params models.SearchParameters
}

// SearchStarted marks a search as outstanding
type SearchStarted struct{}

// SearchCompleted carries the classified outcome of a search
type SearchCompleted struct {
	Result newsapi.Result
}

// ParametersCleared resets every parameter to empty
type ParametersCleared struct{}

// ModalClosed dismisses the modal
type ModalClosed struct{}

// BackToSearch returns from the results page to the form
type BackToSearch struct{}

func (ParametersEdited) event()  {}
func (SearchStarted) event()     {}
func (SearchCompleted) event()   {}
func (ParametersCleared) event() {}
func (ModalClosed) event()       {}
func (BackToSearch) event()      {}

// Apply returns the state that follows s after ev. Unknown events leave s unchanged.
func Apply(s State, ev Event) State {
	next := s

	switch e := ev.(type) {
	case ParametersEdited:
		next.Params = e.Params

	case SearchStarted:
		next.View.Screen = models.ScreenLoading

	case SearchCompleted:
		switch e.Result.Kind {
		case newsapi.KindSuccess:
			next.Articles = e.Result.Articles
			next.View.Screen = models.ScreenResults
		default:
			// Empty and Error both leave a usable form behind the modal
			next.Articles = nil
			next.View.Screen = models.ScreenSearch
			next.View.Modal = &models.Modal{Message: e.Result.Message()}
		}

	case ParametersCleared:
		next.Params = models.SearchParameters{}
		next.Articles = nil

	case ModalClosed:
		next.View.Modal = nil

	case BackToSearch:
		next.View.Screen = models.ScreenSearch
	}

	return next
}

// ApplyAll folds events over s in order
func ApplyAll(s State, events ...Event) State {
	for _, ev := range events {
		s = Apply(s, ev)
	}
	return s
}
