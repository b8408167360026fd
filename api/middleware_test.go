package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/news-finder/api/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name            string
		origins         []string
		method          string
		origin          string
		expectedStatus  int
		expectedOrigin  string
		expectedMethods string
	}{
		{
			name:            "preflight request",
			origins:         []string{"*"},
			method:          http.MethodOptions,
			origin:          "https://client.example.org",
			expectedStatus:  http.StatusNoContent,
			expectedOrigin:  "*",
			expectedMethods: "GET",
		},
		{
			name:           "regular GET request",
			origins:        []string{"*"},
			method:         http.MethodGet,
			origin:         "https://client.example.org",
			expectedStatus: http.StatusOK,
			expectedOrigin: "*",
		},
		{
			// httptest requests are addressed to example.com
			name:           "same-origin request gets no CORS headers",
			origins:        []string{"*"},
			method:         http.MethodGet,
			origin:         "https://example.com",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "request without origin",
			origins:        nil,
			method:         http.MethodPost,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "listed origin is echoed",
			origins:        []string{"https://news.example.com"},
			method:         http.MethodGet,
			origin:         "https://news.example.com",
			expectedStatus: http.StatusOK,
			expectedOrigin: "https://news.example.com",
		},
		{
			name:           "unlisted origin is rejected",
			origins:        []string{"https://news.example.com"},
			method:         http.MethodGet,
			origin:         "https://evil.example.com",
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CORS(tt.origins))
			router.Any("/test", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"message": "success"})
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/test", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			}

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			if tt.expectedMethods != "" {
				assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), tt.expectedMethods)
			}
		})
	}
}

func readBodyHandler(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": len(body)})
}

func TestRequestSizeLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		bodySize       int
		expectedStatus int
	}{
		{
			name:           "small request under limit",
			bodySize:       100,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "request at limit",
			bodySize:       1024 * 1024,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "large request over limit",
			bodySize:       2 * 1024 * 1024,
			expectedStatus: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestSizeLimit())
			router.POST("/test", readBodyHandler)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(strings.Repeat("a", tt.bodySize)))
			req.Header.Set("Content-Type", "text/plain")

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRequestSizeLimitWithSize_IgnoresGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestSizeLimitWithSize(10))
	router.GET("/test", readBodyHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", bytes.NewReader(make([]byte, 100)))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPerClientRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name              string
		requestCount      int
		requestsPerSecond int
		burstSize         int
		expectSomeBlocked bool
		waitBetween       time.Duration
	}{
		{
			name:              "requests under rate limit",
			requestCount:      3,
			requestsPerSecond: 10,
			burstSize:         5,
		},
		{
			name:              "burst requests",
			requestCount:      6,
			requestsPerSecond: 2,
			burstSize:         3,
			expectSomeBlocked: true,
		},
		{
			name:              "spaced requests",
			requestCount:      5,
			requestsPerSecond: 10,
			burstSize:         2,
			waitBetween:       150 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rateLimiters := &sync.Map{}
			cleanupStop := make(chan struct{})
			defer close(cleanupStop)

			router := gin.New()
			router.Use(PerClientRateLimit(rateLimiters, cleanupStop, &sync.Once{}, tt.requestsPerSecond, tt.burstSize))
			router.GET("/test", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"message": "success"})
			})

			successCount := 0
			blockedCount := 0
			for i := 0; i < tt.requestCount; i++ {
				if tt.waitBetween > 0 && i > 0 {
					time.Sleep(tt.waitBetween)
				}

				w := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodGet, "/test", nil)
				req.RemoteAddr = "127.0.0.1:12345"
				router.ServeHTTP(w, req)

				switch w.Code {
				case http.StatusOK:
					successCount++
				case http.StatusTooManyRequests:
					blockedCount++
					var resp types.ErrorResponse
					require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
					assert.Equal(t, "API_RATE_LIMIT", resp.Error)
				}
			}

			if tt.expectSomeBlocked {
				assert.Greater(t, blockedCount, 0, "Expected some requests to be blocked")
			} else {
				assert.Equal(t, 0, blockedCount, "Expected no requests to be blocked")
				assert.Equal(t, tt.requestCount, successCount, "Expected all requests to succeed")
			}
		})
	}
}

func TestPerClientRateLimit_DifferentClients(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rateLimiters := &sync.Map{}
	cleanupStop := make(chan struct{})
	defer close(cleanupStop)

	router := gin.New()
	router.Use(PerClientRateLimit(rateLimiters, cleanupStop, &sync.Once{}, 2, 2))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "127.0.0.1:12345"
		router.ServeHTTP(w, req)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = "192.168.1.1:54321"
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClientLimiterIdle(t *testing.T) {
	cl := &clientLimiter{}
	now := time.Now()
	cl.touch(now.Add(-15 * time.Minute))

	assert.Greater(t, cl.idleSince(now), 10*time.Minute)
}

func TestSessions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Sessions("sid", false))
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, types.SessionID(c))
	})

	t.Run("new visitor gets a cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "sid", cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, cookies[0].Value, w.Body.String())
		assert.Len(t, w.Body.String(), 36)
	})

	t.Run("existing cookie is reused", func(t *testing.T) {
		id := "3f2b8c1e-9a4d-4e7b-8c6a-1d2e3f4a5b6c"
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.AddCookie(&http.Cookie{Name: "sid", Value: id})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, id, w.Body.String())
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("malformed cookie is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.AddCookie(&http.Cookie{Name: "sid", Value: "../../etc/passwd"})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.NotEqual(t, "../../etc/passwd", w.Body.String())
		assert.Len(t, w.Result().Cookies(), 1)
	})
}

func TestJSONLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	previous := gin.DefaultWriter
	gin.DefaultWriter = &buf
	defer func() { gin.DefaultWriter = previous }()

	router := gin.New()
	router.Use(JSONLogger())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusTeapot)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/test", entry["path"])
}
