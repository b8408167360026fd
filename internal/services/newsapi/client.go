package newsapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/killallgit/news-finder/internal/models"
	apperrors "github.com/killallgit/news-finder/pkg/errors"
)

// DefaultEndpoint is the NewsAPI article search endpoint
const DefaultEndpoint = "https://newsapi.org/v2/everything"

// maxBodyBytes bounds how much of a response is read
const maxBodyBytes = 8 << 20

// Client handles communication with the news search endpoint
type Client struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	userAgent  string
}

// Config holds configuration for the news search client
type Config struct {
	APIKey    string
	Endpoint  string
	UserAgent string
	Timeout   time.Duration
}

// NewClient creates a new news search client
func NewClient(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = "NewsFinder/1.0"
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
	}
}

// URL builds the request URL for p with the client's credential injected
func (c *Client) URL(p models.SearchParameters) string {
	return BuildURL(c.endpoint, c.apiKey, p)
}

// Fetch performs a GET against rawURL and returns the body. Non-2xx answers
// still return their body because the endpoint reports errors as JSON.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, apperrors.NetworkError(ServiceName, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	log.Printf("[DEBUG] Querying news endpoint: %s", RedactURL(rawURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeAPITimeout, "news search timed out").
				WithDetail("service", ServiceName)
		}
		return nil, apperrors.NetworkError(ServiceName, fmt.Errorf("executing request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, apperrors.NetworkError(ServiceName, fmt.Errorf("reading response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[WARN] News endpoint returned status %d", resp.StatusCode)
	}

	return body, nil
}

// Search builds the URL for p, fetches it and classifies the outcome
func (c *Client) Search(ctx context.Context, p models.SearchParameters) Result {
	body, err := c.Fetch(ctx, c.URL(p))
	result := Classify(body, err)
	if result.Kind == KindError {
		log.Printf("[ERROR] News search failed: %v", result.Err)
	}
	return result
}
