package sessions

import (
	"context"
	"time"

	"github.com/killallgit/news-finder/internal/models"
)

// Repository defines the interface for session data access
type Repository interface {
	// Get retrieves a session by ID
	Get(ctx context.Context, id string) (*models.Session, error)

	// Save inserts the session or replaces its state
	Save(ctx context.Context, session *models.Session) error

	// Delete removes a session by ID
	Delete(ctx context.Context, id string) error

	// PurgeIdle removes sessions not updated since the cutoff and reports how many
	PurgeIdle(ctx context.Context, cutoff time.Time) (int64, error)
}
