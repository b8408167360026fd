package sessions

import apperrors "github.com/killallgit/news-finder/pkg/errors"

var (
	// ErrSessionNotFound is returned when a session does not exist
	ErrSessionNotFound = apperrors.New(apperrors.ErrCodeSessionNotFound, "session not found")

	// ErrInvalidSessionID is returned for an empty session ID
	ErrInvalidSessionID = apperrors.New(apperrors.ErrCodeInvalidInput, "invalid session ID")
)
