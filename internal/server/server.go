package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"radlands-tracker/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Server struct {
	db  *gorm.DB
	cfg config.Config
}

func New(conn *gorm.DB, cfg config.Config) *Server {
	return &Server{
		db:  conn,
		cfg: cfg,
	}
}

// Router builds the gin engine: the JSON API under the configured prefix and
// the pre-built frontend bundle for everything else.
func (s *Server) Router() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	engine.Use(cors.New(corsCfg))

	api := engine.Group(s.cfg.APIPrefix)
	api.GET("/health", s.handleHealth)
	api.POST("/games", s.handleCreateGame)
	api.GET("/games/:id", s.handleGetGame)
	api.POST("/games/:id/water", s.handleUpdateWater)
	api.POST("/games/:id/events", s.handleCreateEvent)
	api.DELETE("/games/:id/events/:eventID", s.handleDeleteEvent)
	api.PUT("/games/:id/board", s.handleUpdateBoard)
	api.POST("/games/:id/turn", s.handleNextTurn)
	api.GET("/cards", s.handleListCards)
	api.POST("/cards/seed", s.handleSeedCards)

	engine.NoRoute(s.handleFrontend)
	return engine
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Radlands API is running",
	})
}

// handleFrontend serves the static bundle, falling back to index.html for
// unmatched paths so client-side routing works.
func (s *Server) handleFrontend(c *gin.Context) {
	path := c.Request.URL.Path
	if path == s.cfg.APIPrefix || strings.HasPrefix(path, s.cfg.APIPrefix+"/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if s.cfg.StaticDir != "" {
		candidate := filepath.Join(s.cfg.StaticDir, filepath.Clean("/"+path))
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			c.File(candidate)
			return
		}
		index := filepath.Join(s.cfg.StaticDir, "index.html")
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}
	}
	c.Status(http.StatusNotFound)
}
