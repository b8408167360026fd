package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// NoStore marks responses as uncacheable. Pages rendered from session state
// change on every transition and must be fetched fresh.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Header("Pragma", "no-cache")
		c.Next()
	}
}

// responseWriter buffers the response so an ETag can be computed before
// anything reaches the client
type responseWriter struct {
	gin.ResponseWriter
	body   *bytes.Buffer
	status int
}

func (w *responseWriter) Write(data []byte) (int, error) {
	return w.body.Write(data)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	return w.body.WriteString(s)
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
}

// ETag answers GET requests with a content hash and replies 304 Not Modified
// when the client already holds the same body. Only 200 responses are tagged.
func ETag() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		out := c.Writer
		w := &responseWriter{
			ResponseWriter: out,
			body:           bytes.NewBuffer(nil),
			status:         http.StatusOK,
		}
		c.Writer = w

		c.Next()

		c.Writer = out

		if w.status == http.StatusOK && w.body.Len() > 0 {
			etag := generateETag(w.body.Bytes())
			out.Header().Set("ETag", etag)

			if matchesETag(c.Request.Header.Get("If-None-Match"), etag) {
				out.WriteHeader(http.StatusNotModified)
				out.WriteHeaderNow()
				return
			}
		}

		out.WriteHeader(w.status)
		_, _ = out.Write(w.body.Bytes())
	}
}

// matchesETag reports whether an If-None-Match header names etag
func matchesETag(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}

// generateETag creates an ETag for the response body
func generateETag(body []byte) string {
	hash := sha256.Sum256(body)
	return fmt.Sprintf(`"%s"`, hex.EncodeToString(hash[:16]))
}
