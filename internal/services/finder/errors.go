package finder

import apperrors "github.com/killallgit/news-finder/pkg/errors"

// ErrSearchInProgress is returned when a session submits while its previous
// search has not completed
var ErrSearchInProgress = apperrors.New(apperrors.ErrCodeSearchInProgress, "a search is already in progress for this session")
