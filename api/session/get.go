package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/news-finder/api/types"
	apperrors "github.com/killallgit/news-finder/pkg/errors"
)

// Get returns the caller's view state
// @Summary      Current session state
// @Description  Returns the screen, modal, parameters and held articles of the browser session identified by the session cookie
// @Tags         session
// @Produce      json
// @Success      200 {object} types.SessionResponse "Session state"
// @Failure      500 {object} types.ErrorResponse "Session store failure"
// @Router       /api/v1/session [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Finder == nil {
			types.RespondError(c, apperrors.New(apperrors.ErrCodeInternal, "Session service not available"))
			return
		}

		id := types.SessionID(c)
		state, err := deps.Finder.State(c.Request.Context(), id)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.FromState(id, state))
	}
}
