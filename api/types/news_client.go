package types

import (
	"context"

	"github.com/killallgit/news-finder/internal/models"
	"github.com/killallgit/news-finder/internal/services/newsapi"
)

// NewsSearcher runs one classified news search
type NewsSearcher interface {
	Search(ctx context.Context, p models.SearchParameters) newsapi.Result
}
