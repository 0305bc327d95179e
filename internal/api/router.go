package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	chatapi "github.com/kisanmitra/kisanmitra/internal/api/chat"
	govapi "github.com/kisanmitra/kisanmitra/internal/api/gov"
	"github.com/kisanmitra/kisanmitra/internal/api/middleware"
	newsapi "github.com/kisanmitra/kisanmitra/internal/api/news"
	"github.com/kisanmitra/kisanmitra/internal/chat"
	"github.com/kisanmitra/kisanmitra/internal/gov"
	"github.com/kisanmitra/kisanmitra/internal/i18n"
	"github.com/kisanmitra/kisanmitra/internal/news"
	"github.com/kisanmitra/kisanmitra/internal/speech"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	AllowOrigins []string
}

// SetupRouter sets up the Gin router
func SetupRouter(
	chatManager *chat.Manager,
	newsService *news.Service,
	govService *gov.Service,
	cfg RouterConfig,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middleware.CORS(cfg.AllowOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Language registry and localized string tables
	r.GET("/api/languages", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"languages": i18n.Languages()})
	})
	r.GET("/api/strings/:code", func(c *gin.Context) {
		c.JSON(http.StatusOK, i18n.Lookup(c.Param("code")))
	})

	// Voice command matching (session-less; the client sends transcripts)
	r.POST("/api/speech/command", matchCommand)

	chatHandler := chatapi.NewHandler(chatManager)
	chatGroup := r.Group("/api/chat")
	chatHandler.RegisterRoutes(chatGroup)

	newsHandler := newsapi.NewHandler(newsService)
	newsGroup := r.Group("/api/news")
	newsHandler.RegisterRoutes(newsGroup)

	govHandler := govapi.NewHandler(govService)
	govGroup := r.Group("/api/gov")
	govHandler.RegisterRoutes(govGroup)

	return r
}

func matchCommand(c *gin.Context) {
	var req struct {
		Transcript string `json:"transcript" binding:"required"`
		Language   string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cmd, ok := speech.MatchCommand(req.Transcript, req.Language)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"matched": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matched": true, "command": cmd})
}
