package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4/internal/service/game"
	"github.com/iamasit07/connect4/internal/transport/http/middleware"
	"github.com/iamasit07/connect4/internal/transport/websocket"
)

type RouterConfig struct {
	SessionManager *game.SessionManager
	WSHandler      *websocket.Handler
	AllowedOrigins []string
	IndexHTML      []byte
	Static         http.FileSystem
}

// NewRouter wires every route the browser client needs.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())

	gamesHandler := NewGamesHandler(cfg.SessionManager)

	api := router.Group("/api")
	api.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	{
		api.GET("/health", gamesHandler.Health)
		api.GET("/games", gamesHandler.GetLiveGames)
		// preflight requests only need to reach the CORS middleware
		api.OPTIONS("/*path", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}

	// WebSocket Route (origin checked by the upgrader)
	router.GET("/ws", cfg.WSHandler.HandleWebSocket)

	if cfg.Static != nil {
		router.StaticFS("/static", cfg.Static)
	}
	router.GET("/", func(c *gin.Context) {
		if len(cfg.IndexHTML) == 0 {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", cfg.IndexHTML)
	})

	return router
}
