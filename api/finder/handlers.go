package finder

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/killallgit/news-finder/api/types"
	finderService "github.com/killallgit/news-finder/internal/services/finder"
	apperrors "github.com/killallgit/news-finder/pkg/errors"
)

// Get renders the page for the caller's session
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := deps.Finder.State(c.Request.Context(), types.SessionID(c))
		if err != nil {
			respondError(c, err)
			return
		}

		view := newPageView(state, dateLayoutFor(c.GetHeader("Accept-Language")))

		c.Render(http.StatusOK, render.HTML{
			Template: pageTemplate,
			Name:     pageTemplateName,
			Data:     view,
		})
	}
}

// PostSearch stores the submitted form, runs the search and returns to the page
func PostSearch(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		params, err := types.BindSearchParameters(c)
		if err != nil {
			respondError(c, apperrors.Wrap(err, apperrors.ErrCodeInvalidInput, "Invalid form submission"))
			return
		}

		_, err = deps.Finder.SubmitSearch(c.Request.Context(), types.SessionID(c), params)
		if err != nil && !errors.Is(err, finderService.ErrSearchInProgress) {
			respondError(c, err)
			return
		}

		// A second submit lands on the loading page of the first
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// PostClear resets every parameter
func PostClear(deps *types.Dependencies) gin.HandlerFunc {
	return action(deps.Finder.ClearParameters)
}

// PostBack returns from the results page to the form
func PostBack(deps *types.Dependencies) gin.HandlerFunc {
	return action(deps.Finder.BackToSearch)
}

// PostCloseModal dismisses the modal
func PostCloseModal(deps *types.Dependencies) gin.HandlerFunc {
	return action(deps.Finder.CloseModal)
}

type sessionAction func(ctx context.Context, sessionID string) (finderService.State, error)

func action(apply sessionAction) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := apply(c.Request.Context(), types.SessionID(c)); err != nil {
			respondError(c, err)
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func respondError(c *gin.Context, err error) {
	status := apperrors.GetHTTPCode(err)
	message := http.StatusText(status)

	var appErr *apperrors.AppError
	if status < 500 && errors.As(err, &appErr) {
		message = appErr.Message
	}
	if status >= 500 {
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	c.String(status, "%s", message)
}
