package types

import "github.com/killallgit/news-finder/internal/models"

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// SearchResponse for the stateless search endpoint
type SearchResponse struct {
	BaseResponse
	Outcome      string    `json:"outcome" example:"success"` // success, empty or error
	Code         string    `json:"code,omitempty"`            // ZERO_RESULTS or the failure code
	TotalResults int       `json:"totalResults"`              // Total reported by the news endpoint
	Count        int       `json:"count"`                     // Number of articles in this response
	Articles     []Article `json:"articles"`
}

// SessionResponse for the caller's view state
type SessionResponse struct {
	BaseResponse
	SessionID string                  `json:"sessionId"`
	View      View                    `json:"view"`
	Params    models.SearchParameters `json:"params"`
	Articles  []Article               `json:"articles"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}
