package models

import "time"

// UnknownAuthor is displayed for articles that carry no author
const UnknownAuthor = "Unknown"

// Article is one news item returned by the endpoint
type Article struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	SourceName  string    `json:"sourceName"`
	Author      string    `json:"author,omitempty"`
	URL         string    `json:"url"`
}

// DisplayAuthor returns the author, or UnknownAuthor when none was given
func (a Article) DisplayAuthor() string {
	if a.Author == "" {
		return UnknownAuthor
	}
	return a.Author
}
