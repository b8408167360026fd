package newsapi

import (
	"encoding/json"
	"errors"

	"github.com/killallgit/news-finder/internal/models"
	apperrors "github.com/killallgit/news-finder/pkg/errors"
)

// ServiceName identifies the endpoint in errors and logs
const ServiceName = "newsapi"

// Messages shown to the user for the non-success outcomes
const (
	MessageNoArticles = "No articles found. Change parameters and try again."
	MessageFetchError = "Error fetching news. Please try again later."
)

// Kind is the classification of a search response
type Kind int

const (
	KindError Kind = iota
	KindEmpty
	KindSuccess
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindSuccess:
		return "success"
	default:
		return "error"
	}
}

// Result is the classified outcome of one search
type Result struct {
	Kind         Kind
	Articles     []models.Article
	TotalResults int
	// Err explains an Error result and is nil otherwise
	Err error
}

// Code returns the outcome's error code: ZERO_RESULTS for Empty, the
// cause's code for Error and "" for Success
func (r Result) Code() apperrors.ErrorCode {
	switch r.Kind {
	case KindSuccess:
		return ""
	case KindEmpty:
		return apperrors.ErrCodeZeroResults
	default:
		return apperrors.GetCode(r.Err)
	}
}

// Message returns the text the user should see for this result, or "" for success
func (r Result) Message() string {
	switch r.Kind {
	case KindSuccess:
		return ""
	case KindEmpty:
		return MessageNoArticles
	default:
		return MessageFetchError
	}
}

// Classify maps a raw response body, or the failure that prevented one, to
// Empty, Success or Error. It performs no side effects.
//
// A totalResults of zero is Empty whether or not articles are present. A
// positive total with an articles list is Success, and the articles keep the
// order they were received in. Everything else, including transport and
// decode failures and error bodies, is Error.
func Classify(body []byte, fetchErr error) Result {
	if fetchErr != nil {
		var appErr *apperrors.AppError
		if !errors.As(fetchErr, &appErr) {
			appErr = apperrors.NetworkError(ServiceName, fetchErr)
		}
		return Result{Kind: KindError, Err: appErr}
	}

	var resp EverythingResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Result{Kind: KindError, Err: apperrors.ParseError(ServiceName, err)}
	}

	if resp.TotalResults != nil && *resp.TotalResults == 0 {
		return Result{Kind: KindEmpty}
	}

	if resp.Status == "error" {
		return Result{Kind: KindError, Err: apperrors.RemoteError(ServiceName, resp.Code, resp.Message)}
	}

	if resp.TotalResults != nil && *resp.TotalResults > 0 && resp.Articles != nil {
		return Result{
			Kind:         KindSuccess,
			Articles:     ToArticles(resp.Articles),
			TotalResults: *resp.TotalResults,
		}
	}

	return Result{
		Kind: KindError,
		Err:  apperrors.ParseError(ServiceName, errors.New("response has neither results nor an error")),
	}
}
