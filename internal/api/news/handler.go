package news

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kisanmitra/kisanmitra/internal/domain"
	"github.com/kisanmitra/kisanmitra/internal/i18n"
	"github.com/kisanmitra/kisanmitra/internal/news"
)

// Handler handles news feed API requests
type Handler struct {
	newsService *news.Service
}

// NewHandler creates a new news handler
func NewHandler(newsService *news.Service) *Handler {
	return &Handler{newsService: newsService}
}

// RegisterRoutes registers news routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/refresh", h.Refresh)
}

// Refresh fetches a fresh news batch. Fetch failure and an empty parse are
// indistinguishable here: both come back as an empty batch, and the client
// offers a manual retry.
func (h *Handler) Refresh(c *gin.Context) {
	var req domain.RefreshNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lang, ok := i18n.ByCode(req.Language)
	if !ok {
		lang = i18n.Default()
	}

	items := h.newsService.Refresh(c.Request.Context(), lang.Name)
	if items == nil {
		items = []domain.NewsItem{}
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      items,
		"updated_at": time.Now(),
	})
}
