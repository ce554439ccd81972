package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/techchallange/contact-backend/internal/handlers"
	"github.com/techchallange/contact-backend/internal/middleware"
)

type RouterConfig struct {
	ContactHandler *handlers.ContactHandler
	RequestLogger  *middleware.RequestLogger
	CORSOrigins    []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	if cfg.RequestLogger != nil {
		router.Use(cfg.RequestLogger.Handler())
	}

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/contact", cfg.ContactHandler.Create)
		api.GET("/contact/all", cfg.ContactHandler.GetAllPaged)
		api.GET("/contact/by-ddd/:ddd", cfg.ContactHandler.GetByDDD)
		api.GET("/contact/by-id/:id", cfg.ContactHandler.GetByID)
		api.PUT("/contact", cfg.ContactHandler.Update)
		api.DELETE("/contact/:id", cfg.ContactHandler.Delete)
	}

	return router
}
