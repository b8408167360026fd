package types

import (
	"time"

	"github.com/killallgit/news-finder/internal/models"
	"github.com/killallgit/news-finder/internal/services/finder"
)

// FromArticle transforms a domain article to the API representation
func FromArticle(a models.Article) Article {
	var published string
	if !a.PublishedAt.IsZero() {
		published = a.PublishedAt.UTC().Format(time.RFC3339)
	}

	return Article{
		Title:       a.Title,
		Description: a.Description,
		PublishedAt: published,
		Source:      a.SourceName,
		Author:      a.DisplayAuthor(),
		URL:         a.URL,
	}
}

// FromArticles transforms a list, keeping order. Never returns nil.
func FromArticles(articles []models.Article) []Article {
	result := make([]Article, 0, len(articles))
	for _, a := range articles {
		result = append(result, FromArticle(a))
	}
	return result
}

// FromState transforms finder state to a session response body
func FromState(sessionID string, s finder.State) SessionResponse {
	view := View{Screen: string(s.View.Screen)}
	if s.View.Modal != nil {
		view.ModalMessage = s.View.Modal.Message
	}

	return SessionResponse{
		BaseResponse: BaseResponse{
			Status:  StatusOK,
			Message: "Session state retrieved successfully",
		},
		SessionID: sessionID,
		View:      view,
		Params:    s.Params,
		Articles:  FromArticles(s.Articles),
	}
}
