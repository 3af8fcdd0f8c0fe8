// Package httpapi exposes the processing results over HTTP. The JSON
// shapes served here (sections / article_categories / stats) are the
// stable contract the browser UI depends on.
package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mailsift/mailsift/internal/config"
	"github.com/mailsift/mailsift/internal/core"
)

// Pipeline triggers a processing run.
type Pipeline interface {
	Run(ctx context.Context, query string, maxResults int) (*core.ProcessingResult, error)
}

// ResultReader loads the last persisted processing result.
type ResultReader interface {
	Load(ctx context.Context) (*core.ProcessingResult, error)
}

// Handler serves the email-processing API.
type Handler struct {
	pipeline Pipeline
	store    ResultReader
	defaults config.PipelineConfig
	logger   *zap.Logger
}

// NewHandler creates a new API handler.
func NewHandler(pipeline Pipeline, store ResultReader, defaults config.PipelineConfig, logger *zap.Logger) *Handler {
	return &Handler{
		pipeline: pipeline,
		store:    store,
		defaults: defaults,
		logger:   logger,
	}
}

// Register mounts all routes on the engine.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/health", h.GetHealth)

	api := r.Group("/api")
	api.POST("/process-emails", h.ProcessEmails)
	api.POST("/refresh", h.ProcessEmails)
	api.GET("/emails", h.GetEmails)
	api.GET("/emails/section/:section", h.GetSection)
	api.GET("/emails/category/:category", h.GetCategory)
	api.GET("/stats", h.GetStats)
}

type processRequest struct {
	Query      string `json:"query"`
	MaxResults *int   `json:"max_results"`
}

// ProcessEmails runs the pipeline and returns the fresh result. The
// request body is optional; absent fields fall back to the configured
// defaults.
func (h *Handler) ProcessEmails(c *gin.Context) {
	req := processRequest{}
	_ = c.ShouldBindJSON(&req)

	query := req.Query
	if query == "" {
		query = h.defaults.Query
	}
	maxResults := h.defaults.MaxResults
	if req.MaxResults != nil {
		maxResults = *req.MaxResults
	}

	result, err := h.pipeline.Run(c.Request.Context(), query, maxResults)
	if err != nil {
		h.logger.Error("Pipeline run failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// GetEmails returns the last stored result.
func (h *Handler) GetEmails(c *gin.Context) {
	result, err := h.store.Load(c.Request.Context())
	if err != nil {
		if errors.Is(err, core.ErrNoResult) {
			c.JSON(http.StatusOK, gin.H{
				"success": false,
				"message": "No processed emails found. Please process emails first.",
			})
			return
		}
		h.logger.Error("Failed to load result", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Storage error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// GetSection returns one functional-type section of the stored result.
func (h *Handler) GetSection(c *gin.Context) {
	section, ok := core.ParseFunctionalType(c.Param("section"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid section"})
		return
	}

	result, err := h.loadOrEmpty(c)
	if err != nil {
		return
	}

	emails, _ := result.Sections.Get(section)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"section": section,
		"count":   result.Sections.Count(section),
		"emails":  emails,
	})
}

// GetCategory returns one topic bucket of the article section; the
// special category "all" returns every article.
func (h *Handler) GetCategory(c *gin.Context) {
	category := c.Param("category")

	result, err := h.loadOrEmpty(c)
	if err != nil {
		return
	}

	var articles []core.ClassifiedArticle
	if category == "all" {
		articles = result.Sections.Articles
	} else {
		articles = result.ArticleCategories[core.TopicLabel(category)]
	}
	if articles == nil {
		articles = make([]core.ClassifiedArticle, 0)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"category": category,
		"count":    len(articles),
		"emails":   articles,
	})
}

type categoryBreakdown struct {
	Count        int      `json:"count"`
	RecentTitles []string `json:"recent_titles"`
}

// GetStats returns the stored run statistics with a per-topic breakdown.
func (h *Handler) GetStats(c *gin.Context) {
	result, err := h.store.Load(c.Request.Context())
	if err != nil {
		if errors.Is(err, core.ErrNoResult) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "No data available"})
			return
		}
		h.logger.Error("Failed to load result", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Storage error"})
		return
	}

	breakdown := make(map[core.TopicLabel]categoryBreakdown, len(result.ArticleCategories))
	for topic, articles := range result.ArticleCategories {
		titles := make([]string, 0, 3)
		for _, a := range articles {
			if len(titles) == 3 {
				break
			}
			titles = append(titles, a.Title)
		}
		breakdown[topic] = categoryBreakdown{Count: len(articles), RecentTitles: titles}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"total_emails":             result.Stats.TotalEmails,
			"by_section":               result.Stats.BySection,
			"article_categories_found": result.Stats.ArticleCategoriesFound,
			"category_breakdown":       breakdown,
		},
	})
}

// GetHealth reports store reachability. An empty store is healthy; a
// store that cannot be read is not.
func (h *Handler) GetHealth(c *gin.Context) {
	if _, err := h.store.Load(c.Request.Context()); err != nil && !errors.Is(err, core.ErrNoResult) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// loadOrEmpty loads the stored result, substituting an empty result
// when none is stored. Storage failures are reported and terminate the
// request.
func (h *Handler) loadOrEmpty(c *gin.Context) (*core.ProcessingResult, error) {
	result, err := h.store.Load(c.Request.Context())
	if err == nil {
		return result, nil
	}
	if errors.Is(err, core.ErrNoResult) {
		return core.NewProcessingResult(), nil
	}
	h.logger.Error("Failed to load result", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Storage error"})
	return nil, err
}
