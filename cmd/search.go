package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/killallgit/news-finder/internal/models"
	"github.com/killallgit/news-finder/internal/services/newsapi"
	"github.com/killallgit/news-finder/pkg/config"
	apperrors "github.com/killallgit/news-finder/pkg/errors"
	"github.com/spf13/cobra"
)

var searchParams models.SearchParameters

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search news articles from the command line",
	Long: `Run one news search with the same parameters as the web form and
print the matching articles.

An empty result prints the "no articles" message and exits successfully.
A failed request prints the error message and exits non-zero.

Example:
  news-finder search --q "donald trump" --language ru
  news-finder search --q climate --search-in title --from 2024-01-01 --sort-by popularity
  news-finder search --q climate --print-url`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchParams.Keywords, "q", "", "keywords or phrase to search for")
	searchCmd.Flags().StringVar((*string)(&searchParams.SearchScope), "search-in", "", "restrict matching to title, description or content")
	searchCmd.Flags().StringVar(&searchParams.FromDate, "from", "", "oldest publication date (YYYY-MM-DD)")
	searchCmd.Flags().StringVar(&searchParams.ToDate, "to", "", "newest publication date (YYYY-MM-DD)")
	searchCmd.Flags().StringVar((*string)(&searchParams.Language), "language", "", "two-letter article language")
	searchCmd.Flags().StringVar((*string)(&searchParams.SortOrder), "sort-by", string(models.DefaultSortOrder), "publishedAt, relevancy or popularity")
	searchCmd.Flags().Bool("print-url", false, "print the request URL with the API key redacted")
}

func runSearch(cmd *cobra.Command, args []string) error {
	params := searchParams
	if err := params.Validate(); err != nil {
		return apperrors.ValidationError("params", err.Error())
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	client := newsapi.NewClient(newsapi.Config{
		APIKey:    cfg.NewsAPI.APIKey,
		Endpoint:  cfg.NewsAPI.Endpoint,
		UserAgent: cfg.NewsAPI.UserAgent,
		Timeout:   cfg.NewsAPI.Timeout,
	})

	out := cmd.OutOrStdout()
	if printURL, _ := cmd.Flags().GetBool("print-url"); printURL {
		fmt.Fprintln(out, newsapi.RedactURL(client.URL(params)))
	}

	result := client.Search(cmd.Context(), params)
	switch result.Kind {
	case newsapi.KindSuccess:
		printArticles(out, result)
		return nil
	case newsapi.KindEmpty:
		fmt.Fprintln(out, result.Message())
		return nil
	default:
		fmt.Fprintln(out, result.Message())
		return result.Err
	}
}

func printArticles(out io.Writer, result newsapi.Result) {
	fmt.Fprintf(out, "%d of %d articles\n", len(result.Articles), result.TotalResults)

	for _, a := range result.Articles {
		fmt.Fprintln(out, strings.Repeat("-", 40))
		fmt.Fprintln(out, a.Title)
		if a.Description != "" {
			fmt.Fprintln(out, a.Description)
		}

		published := "Unknown"
		if !a.PublishedAt.IsZero() {
			published = a.PublishedAt.UTC().Format("2006-01-02")
		}
		fmt.Fprintf(out, "Published on: %s\n", published)
		fmt.Fprintf(out, "Source: %s | Author: %s\n", a.SourceName, a.DisplayAuthor())
		fmt.Fprintf(out, "Read more: %s\n", a.URL)
	}
}
