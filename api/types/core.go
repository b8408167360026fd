package types

// Article is one news item as returned by the JSON API
type Article struct {
	Title       string `json:"title" example:"Markets rally on rate news"`
	Description string `json:"description,omitempty"`
	PublishedAt string `json:"publishedAt" example:"2024-03-01T09:30:00Z"` // RFC3339, empty if unknown
	Source      string `json:"source" example:"Reuters"`
	Author      string `json:"author" example:"Unknown"` // "Unknown" when the item has no author
	URL         string `json:"url" example:"https://example.com/story"`
}

// View is the screen and modal of a browser session
type View struct {
	Screen       string `json:"screen" example:"search"` // search, loading or results
	ModalMessage string `json:"modalMessage,omitempty"`
}
