package search

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/news-finder/api/types"
	"github.com/killallgit/news-finder/internal/services/newsapi"
	apperrors "github.com/killallgit/news-finder/pkg/errors"
)

// Get handles stateless news search requests
// @Summary      Search news articles
// @Description  Runs one search against the news endpoint and returns the classified outcome. Nothing is stored.
// @Tags         search
// @Produce      json
// @Param        q         query string false "Keywords or phrase"
// @Param        searchIn  query string false "Restrict matching to title, description or content"
// @Param        from      query string false "Oldest publication date (YYYY-MM-DD)"
// @Param        to        query string false "Newest publication date (YYYY-MM-DD)"
// @Param        language  query string false "Two-letter article language"
// @Param        sortBy    query string false "publishedAt, relevancy or popularity" default(publishedAt)
// @Success      200 {object} types.SearchResponse "Articles found, or none matched"
// @Failure      400 {object} types.ErrorResponse "Unknown option value"
// @Failure      429 {object} types.ErrorResponse "Rate limit exceeded"
// @Failure      502 {object} types.SearchResponse "The news endpoint failed or returned an error"
// @Router       /api/v1/search [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		params, err := types.BindSearchParameters(c)
		if err != nil {
			types.RespondError(c, apperrors.Wrap(err, apperrors.ErrCodeInvalidInput, "Invalid request format"))
			return
		}

		if err := params.Validate(); err != nil {
			types.RespondError(c, apperrors.ValidationError("params", err.Error()))
			return
		}

		if deps == nil || deps.NewsClient == nil {
			types.RespondError(c, apperrors.New(apperrors.ErrCodeInternal, "Search service not available"))
			return
		}

		result := deps.NewsClient.Search(c.Request.Context(), params)
		c.JSON(statusFor(result), toResponse(result))
	}
}

func statusFor(result newsapi.Result) int {
	if result.Kind == newsapi.KindError {
		return http.StatusBadGateway
	}
	return http.StatusOK
}

func toResponse(result newsapi.Result) types.SearchResponse {
	articles := types.FromArticles(result.Articles)

	resp := types.SearchResponse{
		BaseResponse: types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Search results retrieved successfully",
		},
		Outcome:      result.Kind.String(),
		Code:         string(result.Code()),
		TotalResults: result.TotalResults,
		Count:        len(articles),
		Articles:     articles,
	}

	switch result.Kind {
	case newsapi.KindEmpty:
		resp.Message = result.Message()
	case newsapi.KindError:
		resp.Status = types.StatusError
		resp.Message = result.Message()
	}

	return resp
}
