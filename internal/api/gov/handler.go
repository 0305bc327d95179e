package gov

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kisanmitra/kisanmitra/internal/domain"
	"github.com/kisanmitra/kisanmitra/internal/gov"
	"github.com/kisanmitra/kisanmitra/internal/i18n"
)

// Handler handles government-services API requests
type Handler struct {
	govService *gov.Service
}

// NewHandler creates a new gov handler
func NewHandler(govService *gov.Service) *Handler {
	return &Handler{govService: govService}
}

// RegisterRoutes registers gov routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/queries", h.SubmitQuery)
	r.GET("/queries", h.ListQueries)
	r.GET("/advisories", h.ListAdvisories)
}

// SubmitQuery validates and stores a citizen query
func (h *Handler) SubmitQuery(c *gin.Context) {
	var req domain.SubmitGovQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query, err := h.govService.Submit(req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "all fields are required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"message": i18n.Lookup(req.Language).Gov.SuccessMsg,
	})
}

// ListQueries returns all submitted queries, newest first
func (h *Handler) ListQueries(c *gin.Context) {
	queries, err := h.govService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if queries == nil {
		queries = []*domain.GovQuery{}
	}
	c.JSON(http.StatusOK, gin.H{"queries": queries})
}

// ListAdvisories returns the localized government advisories
func (h *Handler) ListAdvisories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"advisories": h.govService.Advisories(c.Query("lang")),
	})
}
