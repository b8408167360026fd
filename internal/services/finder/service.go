package finder

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/killallgit/news-finder/internal/models"
	"github.com/killallgit/news-finder/internal/services/newsapi"
	"github.com/killallgit/news-finder/internal/services/sessions"
	apperrors "github.com/killallgit/news-finder/pkg/errors"
	"gorm.io/datatypes"
)

// Searcher runs one search and classifies the outcome
type Searcher interface {
	Search(ctx context.Context, p models.SearchParameters) newsapi.Result
}

// Service drives per-session state through the transitions in Apply
type Service struct {
	store         sessions.Repository
	searcher      Searcher
	searchTimeout time.Duration
	locks         *keyedMutex
	inFlight      sync.Map
}

// Option configures a Service
type Option func(*Service)

// WithSearchTimeout bounds each fetch. Zero leaves the fetch bound only to the caller's context.
func WithSearchTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.searchTimeout = d
	}
}

// NewService creates a new finder service
func NewService(store sessions.Repository, searcher Searcher, opts ...Option) *Service {
	s := &Service{
		store:    store,
		searcher: searcher,
		locks:    newKeyedMutex(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state for a session, creating it if needed
func (s *Service) State(ctx context.Context, sessionID string) (State, error) {
	return s.update(ctx, sessionID)
}

// Searching reports whether a fetch is outstanding for the session
func (s *Service) Searching(sessionID string) bool {
	_, ok := s.inFlight.Load(sessionID)
	return ok
}

// SubmitSearch stores params, runs the search and records its outcome.
// Only one search per session may be outstanding; a second call fails with
// ErrSearchInProgress and leaves the state alone.
func (s *Service) SubmitSearch(ctx context.Context, sessionID string, params models.SearchParameters) (State, error) {
	if err := params.Validate(); err != nil {
		return State{}, apperrors.ValidationError("params", err.Error())
	}

	if _, busy := s.inFlight.LoadOrStore(sessionID, struct{}{}); busy {
		return State{}, ErrSearchInProgress
	}
	defer s.inFlight.Delete(sessionID)

	if _, err := s.update(ctx, sessionID, ParametersEdited{Params: params}, SearchStarted{}); err != nil {
		return State{}, err
	}

	fetchCtx := ctx
	if s.searchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, s.searchTimeout)
		defer cancel()
	}

	start := time.Now()
	result := s.searcher.Search(fetchCtx, params)
	if result.Err != nil {
		log.Printf("[WARN] Search for session %s failed after %v: %v", sessionID, time.Since(start), result.Err)
	} else {
		log.Printf("[DEBUG] Search for session %s finished in %v: %s (%d articles)",
			sessionID, time.Since(start), result.Kind, len(result.Articles))
	}

	// The outcome is recorded even if the caller went away, so the session
	// never stays on the loading screen
	return s.update(context.WithoutCancel(ctx), sessionID, SearchCompleted{Result: result})
}

// ClearParameters resets the form and drops any held results
func (s *Service) ClearParameters(ctx context.Context, sessionID string) (State, error) {
	return s.update(ctx, sessionID, ParametersCleared{})
}

// CloseModal dismisses the modal
func (s *Service) CloseModal(ctx context.Context, sessionID string) (State, error) {
	return s.update(ctx, sessionID, ModalClosed{})
}

// BackToSearch returns to the form
func (s *Service) BackToSearch(ctx context.Context, sessionID string) (State, error) {
	return s.update(ctx, sessionID, BackToSearch{})
}

// update loads, applies and saves under the session lock. With no events it
// still saves, which creates the session and refreshes its idle clock.
func (s *Service) update(ctx context.Context, sessionID string, events ...Event) (State, error) {
	if sessionID == "" {
		return State{}, apperrors.New(apperrors.ErrCodeInvalidInput, "session id is required")
	}

	unlock := s.locks.Lock(sessionID)
	defer unlock()

	current, err := s.load(ctx, sessionID)
	if err != nil {
		return State{}, err
	}

	next := ApplyAll(current, events...)
	if err := s.save(ctx, sessionID, next); err != nil {
		return State{}, err
	}

	return next, nil
}

func (s *Service) load(ctx context.Context, sessionID string) (State, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			return Initial(), nil
		}
		return State{}, apperrors.DatabaseError("load session", err)
	}

	state := Initial()
	if len(session.State) > 0 {
		if err := json.Unmarshal(session.State, &state); err != nil {
			log.Printf("[WARN] Discarding unreadable state for session %s: %v", sessionID, err)
			return Initial(), nil
		}
	}

	// A loading screen with nothing in flight belongs to a search that died
	// with a previous process
	if state.View.Screen == models.ScreenLoading && !s.Searching(sessionID) {
		state.View.Screen = models.ScreenSearch
	}

	return state, nil
}

func (s *Service) save(ctx context.Context, sessionID string, state State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to encode session state")
	}

	session := &models.Session{ID: sessionID, State: datatypes.JSON(data)}
	if err := s.store.Save(ctx, session); err != nil {
		return apperrors.DatabaseError("save session", err)
	}
	return nil
}
