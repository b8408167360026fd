package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/killallgit/news-finder/api/types"
	apperrors "github.com/killallgit/news-finder/pkg/errors"
	"golang.org/x/time/rate"
)

// clientLimiter holds a rate limiter and its last accessed time
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

func (cl *clientLimiter) touch(now time.Time) {
	cl.lastSeen.Store(now.UnixNano())
}

func (cl *clientLimiter) idleSince(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, cl.lastSeen.Load()))
}

// CORS allows the given origins. An empty list or "*" allows every origin.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.MaxAge = 24 * time.Hour

	return cors.New(cfg)
}

func RequestSizeLimit() gin.HandlerFunc {
	return RequestSizeLimitWithSize(1024 * 1024)
}

func RequestSizeLimitWithSize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodPost ||
			c.Request.Method == http.MethodPut ||
			c.Request.Method == http.MethodPatch {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

func PerClientRateLimit(rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once, rps int, burst int) gin.HandlerFunc {
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = 2 * rps
	}

	cleanupInitialized.Do(func() {
		go cleanupOldRateLimiters(rateLimiters, cleanupStop)
	})

	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		now := time.Now()

		fresh := &clientLimiter{
			limiter: rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), burst),
		}
		fresh.touch(now)

		limiterInterface, _ := rateLimiters.LoadOrStore(clientIP, fresh)
		cl := limiterInterface.(*clientLimiter)
		cl.touch(now)

		if !cl.limiter.Allow() {
			types.RespondError(c, apperrors.RateLimitError("search", fmt.Sprintf("%d req/s, burst %d", rps, burst)))
			c.Abort()
			return
		}
		c.Next()
	}
}

func cleanupOldRateLimiters(rateLimiters *sync.Map, cleanupStop chan struct{}) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			rateLimiters.Range(func(key, value interface{}) bool {
				cl := value.(*clientLimiter)
				if cl.idleSince(now) > 10*time.Minute {
					rateLimiters.Delete(key)
				}
				return true
			})
		case <-cleanupStop:
			return
		}
	}
}

// DefaultSessionCookie names the session cookie when none is configured
const DefaultSessionCookie = "news_finder_session"

// Sessions identifies the browser by a random id kept in a cookie and stores
// it under types.SessionIDKey. Missing or malformed cookies get a new id.
func Sessions(cookieName string, secure bool) gin.HandlerFunc {
	if cookieName == "" {
		cookieName = DefaultSessionCookie
	}

	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || !validSessionID(id) {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cookieName, id, 0, "/", "", secure, true)
		}

		c.Set(types.SessionIDKey, id)
		c.Next()
	}
}

func validSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil && len(id) == 36
}

// JSONLogger writes one JSON object per request instead of gin's text line
func JSONLogger() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(p gin.LogFormatterParams) string {
		entry := map[string]interface{}{
			"time":      p.TimeStamp.UTC().Format(time.RFC3339),
			"status":    p.StatusCode,
			"method":    p.Method,
			"path":      p.Path,
			"latencyMs": p.Latency.Milliseconds(),
			"clientIp":  p.ClientIP,
			"bodySize":  p.BodySize,
		}
		if p.ErrorMessage != "" {
			entry["error"] = p.ErrorMessage
		}

		line, err := json.Marshal(entry)
		if err != nil {
			return fmt.Sprintf("{\"error\":%q}\n", err.Error())
		}
		return string(line) + "\n"
	})
}
