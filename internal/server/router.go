package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/megamarket/catalog-backend/internal/handlers"
	"github.com/megamarket/catalog-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName   string
	NodeHandler   *handlers.NodeHandler
	ImportHandler *handlers.ImportHandler
	SalesHandler  *handlers.SalesHandler
	RequestLogger *middleware.RequestLogger
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.RequestLogger != nil {
		router.Use(cfg.RequestLogger.Handle())
	}
	router.Use(otelgin.Middleware(cfg.ServiceName))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With"},
		AllowCredentials: false,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)
	router.GET("/nodes/:id", cfg.NodeHandler.GetNode)
	router.GET("/sales", cfg.SalesHandler.GetSales)
	router.POST("/imports", cfg.ImportHandler.Import)
	router.DELETE("/delete/:id", cfg.NodeHandler.DeleteNode)

	return router
}
