package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/news-finder/api/types"
)

// Get handles version requests
// @Summary      Version information
// @Description  Returns the build version of the running server
// @Tags         system
// @Produce      json
// @Success      200 {object} map[string]interface{} "Version information"
// @Router       /version [get]
func Get(build types.BuildInfo) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "News Finder",
			"version":     build.Version,
			"commit":      build.GitCommit,
			"buildTime":   build.BuildTime,
			"description": "Search news articles across languages",
			"status":      "running",
		})
	}
}
