// ABOUTME: HTTP handlers for news, categories, submissions, videos and languages
// ABOUTME: Read endpoints always answer 200 with JSON, degrading to static payloads

package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/newswave/newswave/internal/classify"
	"github.com/newswave/newswave/internal/models"
	"github.com/newswave/newswave/internal/store"
)

// submitResponse is the submission endpoint's success body.
type submitResponse struct {
	Success  bool                     `json:"success"`
	Message  string                   `json:"message"`
	NewsItem *models.SubmittedArticle `json:"newsItem,omitempty"`
}

func (s *Server) handleNews(c echo.Context) error {
	articles, err := s.aggregateAll(c.Request().Context())
	if err != nil {
		s.logger.Error("news aggregation failed", "error", err)
		return c.JSON(http.StatusOK, fallbackFor("news"))
	}
	return c.JSON(http.StatusOK, articles)
}

// keywordCategoryHandler serves a category by classifying the full aggregate.
// Zero matches degrade to the head of the unfiltered aggregate; total
// aggregation failure degrades to the category's static payload.
func (s *Server) keywordCategoryHandler(category, fallbackKey string) echo.HandlerFunc {
	return func(c echo.Context) error {
		base, err := s.aggregateAll(c.Request().Context())
		if err != nil {
			s.logger.Error("category aggregation failed", "category", category, "error", err)
			return c.JSON(http.StatusOK, fallbackFor(fallbackKey))
		}

		matched := classify.Filter(base, category)
		if len(matched) == 0 {
			return c.JSON(http.StatusOK, head(base, s.cfg.Aggregation.UnfilteredHead))
		}
		return c.JSON(http.StatusOK, head(matched, s.cfg.Aggregation.CategoryLimit))
	}
}

// feedCategoryHandler serves a category from its own dedicated feed list.
func (s *Server) feedCategoryHandler(category string) echo.HandlerFunc {
	return func(c echo.Context) error {
		sources := s.cfg.CategorySources(category)
		articles, err := s.agg.FromSources(c.Request().Context(), sources, s.cfg.Aggregation.CategoryLimit)
		if err != nil {
			s.logger.Error("category feed failed", "category", category, "error", err)
			return c.JSON(http.StatusOK, fallbackFor(category))
		}
		return c.JSON(http.StatusOK, articles)
	}
}

func (s *Server) handleSubmit(c echo.Context) error {
	var in store.Input
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, submitResponse{
			Success: false,
			Message: "Invalid request body",
		})
	}

	item, err := s.store.Submit(in)
	if err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, submitResponse{
				Success: false,
				Message: verr.Error(),
			})
		}
		s.logger.Error("submission failed", "error", err)
		return c.JSON(http.StatusInternalServerError, submitResponse{
			Success: false,
			Message: "Failed to submit news",
		})
	}

	s.invalidateCache()
	return c.JSON(http.StatusCreated, submitResponse{
		Success:  true,
		Message:  "News submitted successfully",
		NewsItem: item,
	})
}

func (s *Server) handleSubmitted(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.List())
}

func (s *Server) handleVideos(c echo.Context) error {
	return c.JSON(http.StatusOK, s.cfg.Videos)
}

func (s *Server) handleLanguages(c echo.Context) error {
	return c.JSON(http.StatusOK, s.lang.Supported())
}

func (s *Server) handleTranslations(c echo.Context) error {
	code := c.Param("lang")
	if !s.lang.IsSupported(code) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Language not supported"})
	}
	return c.JSON(http.StatusOK, s.lang.Translations(code))
}

func (s *Server) handleTranslationKey(c echo.Context) error {
	code := c.Param("lang")
	if !s.lang.IsSupported(code) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Language not supported"})
	}
	key := c.Param("key")
	return c.JSON(http.StatusOK, map[string]string{"translation": s.lang.Translation(code, key)})
}

// head returns the first n articles, or all of them when fewer exist.
func head(articles []models.Article, n int) []models.Article {
	if n > 0 && len(articles) > n {
		return articles[:n]
	}
	return articles
}
