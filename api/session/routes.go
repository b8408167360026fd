package session

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/news-finder/api/types"
)

// RegisterRoutes registers session routes. searchLimit guards the route that
// reaches the news endpoint.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, searchLimit gin.HandlerFunc) {
	// GET /api/v1/session (router already includes /session prefix)
	router.GET("", Get(deps))
	router.POST("/search", searchLimit, PostSearch(deps))
}
