package main

import "github.com/killallgit/news-finder/cmd"

// @title           News Finder API
// @version         1.0.0
// @description     Search news articles across languages through NewsAPI
// @contact.name    API Support
// @contact.url     https://github.com/killallgit/news-finder
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
