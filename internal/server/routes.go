// ABOUTME: Route registration for the NewsWave API surface
// ABOUTME: Maps every endpoint onto its handler and category configuration

package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/newswave/newswave/internal/classify"
)

func (s *Server) registerRoutes() {
	e := s.echo

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	api := e.Group("/api")

	api.GET("/news", s.handleNews)

	// Keyword-classified categories filter the full aggregate.
	api.GET("/andhra", s.keywordCategoryHandler(classify.Andhra, "andhra"))
	api.GET("/telangana", s.keywordCategoryHandler(classify.Telangana, "telangana"))
	api.GET("/politics", s.keywordCategoryHandler(classify.Politics, "politics"))
	api.GET("/tech", s.keywordCategoryHandler(classify.Tech, "tech"))
	api.GET("/telugu", s.keywordCategoryHandler(classify.Telugu, "telugu"))

	// Dedicated-feed categories aggregate their own source list.
	api.GET("/movies", s.feedCategoryHandler("movies"))
	api.GET("/sports", s.feedCategoryHandler("sports"))
	api.GET("/business", s.feedCategoryHandler("business"))

	api.POST("/submit-news", s.handleSubmit)
	api.GET("/submitted-news", s.handleSubmitted)

	api.GET("/videos", s.handleVideos)

	api.GET("/languages", s.handleLanguages)
	api.GET("/translations/:lang", s.handleTranslations)
	api.GET("/translation/:lang/:key", s.handleTranslationKey)

	e.GET("/proxy/hls", s.handleHLSProxy)
}
