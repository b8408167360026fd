package types

import (
	"github.com/killallgit/news-finder/internal/database"
	"github.com/killallgit/news-finder/internal/services/finder"
	"github.com/killallgit/news-finder/pkg/config"
)

// BuildInfo identifies the running binary
type BuildInfo struct {
	Version   string
	GitCommit string
	BuildTime string
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB         *database.DB
	Finder     *finder.Service
	NewsClient NewsSearcher
	Config     *config.Config
	Build      BuildInfo
}
