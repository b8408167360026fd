package cleanup

import (
	"context"
	"log"
	"time"
)

// Purger removes sessions that have been idle since the cutoff
type Purger interface {
	PurgeIdle(ctx context.Context, cutoff time.Time) (int64, error)
}

// Service periodically drops idle browser sessions
type Service struct {
	purger          Purger
	maxIdle         time.Duration
	cleanupInterval time.Duration
	cancel          context.CancelFunc
	done            chan struct{}
	now             func() time.Time
}

// NewService creates a new cleanup service
func NewService(purger Purger, maxIdle, cleanupInterval time.Duration) *Service {
	return &Service{
		purger:          purger,
		maxIdle:         maxIdle,
		cleanupInterval: cleanupInterval,
		now:             time.Now,
	}
}

// Start runs one purge immediately and then one per interval until Stop or ctx is done
func (s *Service) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	s.cleanup(ctx)

	ticker := time.NewTicker(s.cleanupInterval)
	go func() {
		defer close(s.done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.cleanup(ctx)
			case <-ctx.Done():
				log.Println("[INFO] Session cleanup stopped")
				return
			}
		}
	}()

	log.Printf("[INFO] Session cleanup started (interval: %v, max idle: %v)", s.cleanupInterval, s.maxIdle)
}

// Stop stops the cleanup service and waits for the loop to exit
func (s *Service) Stop() {
	if s.cancel != nil {
		s.cancel()
		<-s.done
	}
}

func (s *Service) cleanup(ctx context.Context) {
	cutoff := s.now().Add(-s.maxIdle)
	removed, err := s.purger.PurgeIdle(ctx, cutoff)
	if err != nil {
		log.Printf("[ERROR] Session cleanup failed: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("[DEBUG] Removed %d idle session(s)", removed)
	}
}
