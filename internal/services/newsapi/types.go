package newsapi

import (
	"time"

	"github.com/killallgit/news-finder/internal/models"
)

// EverythingResponse is the body returned by the /v2/everything endpoint.
// Pointer and slice fields stay nil when the key is absent so the classifier
// can tell "missing" from "zero".
type EverythingResponse struct {
	Status       string       `json:"status"`
	TotalResults *int         `json:"totalResults"`
	Articles     []APIArticle `json:"articles"`
	Code         string       `json:"code,omitempty"`
	Message      string       `json:"message,omitempty"`
}

// APIArticle is an article as the endpoint serializes it
type APIArticle struct {
	Source      Source `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

// Source identifies the publisher of an article
type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToArticle converts the wire article into the domain model. An unparseable
// publish date becomes the zero time.
func (a APIArticle) ToArticle() models.Article {
	published, err := time.Parse(time.RFC3339, a.PublishedAt)
	if err != nil {
		published = time.Time{}
	}

	return models.Article{
		Title:       a.Title,
		Description: a.Description,
		PublishedAt: published,
		SourceName:  a.Source.Name,
		Author:      a.Author,
		URL:         a.URL,
	}
}

// ToArticles converts a list of wire articles, preserving order
func ToArticles(in []APIArticle) []models.Article {
	out := make([]models.Article, 0, len(in))
	for _, a := range in {
		out = append(out, a.ToArticle())
	}
	return out
}
