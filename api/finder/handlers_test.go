package finder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/killallgit/news-finder/api/types"
	"github.com/killallgit/news-finder/internal/database"
	"github.com/killallgit/news-finder/internal/models"
	finderService "github.com/killallgit/news-finder/internal/services/finder"
	"github.com/killallgit/news-finder/internal/services/newsapi"
	"github.com/killallgit/news-finder/internal/services/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSession = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

type mockSearcher struct {
	mock.Mock
}

func (m *mockSearcher) Search(ctx context.Context, p models.SearchParameters) newsapi.Result {
	args := m.Called(ctx, p)
	return args.Get(0).(newsapi.Result)
}

type testApp struct {
	router   *gin.Engine
	finder   *finderService.Service
	searcher *mockSearcher
}

func setupApp(t *testing.T) *testApp {
	gin.SetMode(gin.TestMode)

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { db.Close() })

	searcher := &mockSearcher{}
	svc := finderService.NewService(sessions.NewRepository(db.DB), searcher)

	router := gin.New()
	group := router.Group("/", func(c *gin.Context) {
		c.Set(types.SessionIDKey, testSession)
	})
	RegisterRoutes(group, &types.Dependencies{Finder: svc}, func(c *gin.Context) { c.Next() })

	return &testApp{router: router, finder: svc, searcher: searcher}
}

func (a *testApp) get(t *testing.T, acceptLanguage string) *goquery.Document {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	return doc
}

func (a *testApp) post(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func sampleArticles() []models.Article {
	return []models.Article{
		{
			Title:       "Markets rally",
			Description: "Stocks rose sharply.",
			PublishedAt: time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC),
			SourceName:  "Wire",
			Author:      "Ann Lee",
			URL:         "https://example.com/markets",
		},
		{
			Title:       "Storm warning",
			PublishedAt: time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC),
			SourceName:  "Daily",
			URL:         "https://example.com/storm",
		},
	}
}

func TestGet_SearchScreen(t *testing.T) {
	app := setupApp(t)
	doc := app.get(t, "")

	assert.Equal(t, "News Finder", strings.TrimSpace(doc.Find("h1").Text()))
	assert.Equal(t, 1, doc.Find("p.intro").Length())

	for _, name := range []string{"q", "searchIn", "language", "sortBy", "from", "to"} {
		assert.Equal(t, 1, doc.Find("[name="+name+"]").Length(), "field %s", name)
	}

	assert.Equal(t, len(models.ScopeOptions), doc.Find("#searchIn option").Length())
	assert.Equal(t, len(models.LanguageOptions), doc.Find("#language option").Length())
	assert.Equal(t, "publishedAt", doc.Find("#sortBy option[selected]").AttrOr("value", ""))

	assert.Equal(t, "Search News", strings.TrimSpace(doc.Find("button.search").Text()))
	assert.Equal(t, "/clear", doc.Find("button.clear").AttrOr("formaction", ""))
	assert.Equal(t, "Clear Parameters", strings.TrimSpace(doc.Find("button.clear").Text()))

	assert.Zero(t, doc.Find(".modal").Length())
	assert.Zero(t, doc.Find("article.card").Length())
}

func TestPostSearch_Success(t *testing.T) {
	app := setupApp(t)
	params := models.SearchParameters{Keywords: "markets", Language: models.LanguageEnglish, SortOrder: models.SortRelevancy}
	app.searcher.On("Search", mock.Anything, params).
		Return(newsapi.Result{Kind: newsapi.KindSuccess, Articles: sampleArticles(), TotalResults: 2}).Once()

	w := app.post(t, "/search", url.Values{"q": {"markets"}, "language": {"en"}, "sortBy": {"relevancy"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	doc := app.get(t, "en-US")

	assert.Equal(t, "Back to Search", strings.TrimSpace(doc.Find("button.back").Text()))
	assert.Zero(t, doc.Find("#search-form").Length())

	cards := doc.Find("article.card")
	require.Equal(t, 2, cards.Length())

	first := cards.Eq(0)
	assert.Equal(t, "Markets rally", first.Find("h2").Text())
	assert.Equal(t, "Stocks rose sharply.", first.Find("p.description").Text())
	assert.Equal(t, "Published on: 3/9/2024", first.Find("p.published").Text())
	assert.Equal(t, "Source: Wire | Author: Ann Lee", first.Find("p.byline").Text())

	link := first.Find("a")
	assert.Equal(t, "Read more", link.Text())
	assert.Equal(t, "https://example.com/markets", link.AttrOr("href", ""))
	assert.Equal(t, "_blank", link.AttrOr("target", ""))
	assert.Equal(t, "noopener noreferrer", link.AttrOr("rel", ""))

	second := cards.Eq(1)
	assert.Equal(t, "Storm warning", second.Find("h2").Text())
	assert.Equal(t, "Source: Daily | Author: Unknown", second.Find("p.byline").Text())

	app.searcher.AssertExpectations(t)
}

func TestGet_DateFollowsAcceptLanguage(t *testing.T) {
	app := setupApp(t)
	app.searcher.On("Search", mock.Anything, mock.Anything).
		Return(newsapi.Result{Kind: newsapi.KindSuccess, Articles: sampleArticles()[:1], TotalResults: 1}).Once()

	app.post(t, "/search", url.Values{"q": {"markets"}})

	assert.Equal(t, "Published on: 09.03.2024", app.get(t, "de-DE").Find("p.published").Text())
	assert.Equal(t, "Published on: 09/03/2024", app.get(t, "en-GB").Find("p.published").Text())
	assert.Equal(t, "Published on: 2024-03-09", app.get(t, "").Find("p.published").Text())
}

func TestPostSearch_EmptyShowsModal(t *testing.T) {
	app := setupApp(t)
	app.searcher.On("Search", mock.Anything, mock.Anything).Return(newsapi.Result{Kind: newsapi.KindEmpty}).Once()

	w := app.post(t, "/search", url.Values{"q": {"zzzz"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	doc := app.get(t, "")
	assert.Equal(t, newsapi.MessageNoArticles, doc.Find(".modal-message").Text())
	assert.Equal(t, "Close", strings.TrimSpace(doc.Find(".modal button").Text()))
	assert.Equal(t, 1, doc.Find("#search-form").Length())
	assert.Equal(t, "zzzz", doc.Find("#q").AttrOr("value", ""))

	w = app.post(t, "/modal/close", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	doc = app.get(t, "")
	assert.Zero(t, doc.Find(".modal").Length())
	assert.Equal(t, "zzzz", doc.Find("#q").AttrOr("value", ""))
}

func TestPostSearch_ErrorShowsModal(t *testing.T) {
	app := setupApp(t)
	app.searcher.On("Search", mock.Anything, mock.Anything).
		Return(newsapi.Result{Kind: newsapi.KindError, Err: assert.AnError}).Once()

	app.post(t, "/search", url.Values{"q": {"markets"}})

	doc := app.get(t, "")
	assert.Equal(t, newsapi.MessageFetchError, doc.Find(".modal-message").Text())
	assert.Equal(t, 1, doc.Find("#search-form").Length())
}

func TestPostSearch_UnknownOption(t *testing.T) {
	app := setupApp(t)

	w := app.post(t, "/search", url.Values{"sortBy": {"newest"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	app.searcher.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestPostClear(t *testing.T) {
	app := setupApp(t)
	app.searcher.On("Search", mock.Anything, mock.Anything).Return(newsapi.Result{Kind: newsapi.KindEmpty}).Once()

	app.post(t, "/search", url.Values{"q": {"markets"}, "language": {"fr"}, "from": {"2024-01-01"}})
	w := app.post(t, "/clear", url.Values{"q": {"ignored"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	doc := app.get(t, "")
	assert.Equal(t, "", doc.Find("#q").AttrOr("value", "missing"))
	assert.Equal(t, "", doc.Find("#from").AttrOr("value", "missing"))
	assert.Equal(t, "", doc.Find("#language option[selected]").AttrOr("value", "missing"))
	// Clearing leaves the modal alone
	assert.Equal(t, 1, doc.Find(".modal").Length())
}

func TestPostBack(t *testing.T) {
	app := setupApp(t)
	app.searcher.On("Search", mock.Anything, mock.Anything).
		Return(newsapi.Result{Kind: newsapi.KindSuccess, Articles: sampleArticles(), TotalResults: 2}).Once()

	app.post(t, "/search", url.Values{"q": {"markets"}, "searchIn": {"title"}})

	w := app.post(t, "/back", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	doc := app.get(t, "")
	assert.Equal(t, 1, doc.Find("#search-form").Length())
	assert.Zero(t, doc.Find("article.card").Length())
	assert.Equal(t, "markets", doc.Find("#q").AttrOr("value", ""))
	assert.Equal(t, "title", doc.Find("#searchIn option[selected]").AttrOr("value", ""))
}

func TestGet_LoadingScreen(t *testing.T) {
	app := setupApp(t)

	started := make(chan struct{})
	release := make(chan struct{})
	app.searcher.On("Search", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			close(started)
			<-release
		}).
		Return(newsapi.Result{Kind: newsapi.KindEmpty}).Once()

	done := make(chan struct{})
	go func() {
		defer close(done)
		app.post(t, "/search", url.Values{"q": {"slow"}})
	}()
	<-started

	doc := app.get(t, "")
	assert.Equal(t, 1, doc.Find("p.loading").Length())
	assert.Equal(t, 1, doc.Find(`meta[http-equiv="refresh"]`).Length())
	assert.Zero(t, doc.Find("button.search").Length())

	// A second submit while the first is outstanding lands on the same page
	w := app.post(t, "/search", url.Values{"q": {"again"}})
	assert.Equal(t, http.StatusSeeOther, w.Code)

	close(release)
	<-done

	app.searcher.AssertNumberOfCalls(t, "Search", 1)
}

func TestGet_EscapesArticleContent(t *testing.T) {
	app := setupApp(t)
	app.searcher.On("Search", mock.Anything, mock.Anything).
		Return(newsapi.Result{Kind: newsapi.KindSuccess, TotalResults: 1, Articles: []models.Article{
			{Title: "<script>alert(1)</script>", SourceName: "X", URL: "javascript:alert(1)"},
		}}).Once()

	app.post(t, "/search", url.Values{"q": {"x"}})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.NotContains(t, w.Body.String(), "<script>alert(1)</script>")
	assert.NotContains(t, w.Body.String(), `href="javascript:`)
}
