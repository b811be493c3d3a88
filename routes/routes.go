package routes

import (
	"time"

	"portfolio/config"
	"portfolio/handlers"
	"portfolio/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Contact submissions per IP per window.
const (
	contactLimit  = 5
	contactWindow = time.Minute
)

func SetupRouter(h *handlers.Handler, cfg config.Config) *gin.Engine {
	router := gin.Default()

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	router.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORS.Origins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	api := router.Group("/api")

	// Content, one endpoint per page.
	api.GET("/home", h.Home)
	api.GET("/projects", h.ListProjects)
	api.GET("/projects/:slug", h.GetProject)
	api.GET("/writings", h.ListWritings)
	api.GET("/writings/:slug", h.GetWriting)

	// Contact form.
	api.POST("/contact", middleware.RateLimit(contactLimit, contactWindow), h.Contact)

	router.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{
				"error": "Endpoint not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}
