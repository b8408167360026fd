package finder

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/news-finder/api/types"
)

// RegisterRoutes registers the HTML pages. searchLimit guards the one route
// that reaches the news endpoint.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, searchLimit gin.HandlerFunc) {
	router.GET("/", Get(deps))
	router.POST("/search", searchLimit, PostSearch(deps))
	router.POST("/clear", PostClear(deps))
	router.POST("/back", PostBack(deps))
	router.POST("/modal/close", PostCloseModal(deps))
}
