package types

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/news-finder/internal/models"
)

// BindSearchParameters reads the search fields from the query string or a
// submitted form. Values are kept exactly as typed.
func BindSearchParameters(c *gin.Context) (models.SearchParameters, error) {
	var p models.SearchParameters
	if err := c.ShouldBind(&p); err != nil {
		return models.SearchParameters{}, err
	}
	return p, nil
}
