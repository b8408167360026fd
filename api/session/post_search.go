package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/news-finder/api/types"
	apperrors "github.com/killallgit/news-finder/pkg/errors"
)

// PostSearch runs a search for the caller's session and returns the new state
// @Summary      Search within the session
// @Description  Stores the parameters in the browser session, runs the search and returns the resulting view state. An empty or failed search shows up as the modal message.
// @Tags         session
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        q         formData string false "Keywords or phrase"
// @Param        searchIn  formData string false "Restrict matching to title, description or content"
// @Param        from      formData string false "Oldest publication date (YYYY-MM-DD)"
// @Param        to        formData string false "Newest publication date (YYYY-MM-DD)"
// @Param        language  formData string false "Two-letter article language"
// @Param        sortBy    formData string false "publishedAt, relevancy or popularity" default(publishedAt)
// @Success      200 {object} types.SessionResponse "Session state after the search"
// @Failure      400 {object} types.ErrorResponse "Unknown option value"
// @Failure      409 {object} types.ErrorResponse "A search is already running for this session"
// @Failure      429 {object} types.ErrorResponse "Rate limit exceeded"
// @Router       /api/v1/session/search [post]
func PostSearch(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps == nil || deps.Finder == nil {
			types.RespondError(c, apperrors.New(apperrors.ErrCodeInternal, "Session service not available"))
			return
		}

		params, err := types.BindSearchParameters(c)
		if err != nil {
			types.RespondError(c, apperrors.Wrap(err, apperrors.ErrCodeInvalidInput, "Invalid request format"))
			return
		}

		id := types.SessionID(c)
		state, err := deps.Finder.SubmitSearch(c.Request.Context(), id, params)
		if err != nil {
			types.RespondError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.FromState(id, state))
	}
}
