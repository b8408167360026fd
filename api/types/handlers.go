package types

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	apperrors "github.com/killallgit/news-finder/pkg/errors"
)

// SessionIDKey is the gin context key holding the caller's session id
const SessionIDKey = "sessionID"

// SessionID returns the session id set by the session middleware, or ""
func SessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}

// RespondError writes err as an ErrorResponse with the status its code maps to
func RespondError(c *gin.Context, err error) {
	status := apperrors.GetHTTPCode(err)
	if status >= 500 {
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	resp := ErrorResponse{
		Status:  StatusError,
		Message: err.Error(),
		Error:   string(apperrors.GetCode(err)),
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		resp.Message = appErr.Message
		if len(appErr.Details) > 0 {
			resp.Details = appErr.Details
		}
	}

	c.JSON(status, resp)
}
