package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/killallgit/news-finder/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// repository implements Repository on top of gorm
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new session repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Get retrieves a session by ID
func (r *repository) Get(ctx context.Context, id string) (*models.Session, error) {
	if id == "" {
		return nil, ErrInvalidSessionID
	}

	var session models.Session
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&session).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return &session, nil
}

// Save inserts the session or replaces its state
func (r *repository) Save(ctx context.Context, session *models.Session) error {
	if session.ID == "" {
		return ErrInvalidSessionID
	}

	session.UpdatedAt = time.Now().UTC()

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"state", "updated_at"}),
		}).
		Create(session).Error
}

// Delete removes a session by ID
func (r *repository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Session{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// PurgeIdle removes sessions not updated since the cutoff
func (r *repository) PurgeIdle(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("updated_at < ?", cutoff.UTC()).
		Delete(&models.Session{})

	return result.RowsAffected, result.Error
}
