package app

import (
	"github.com/gin-gonic/gin"

	"github.com/megamarket/catalog-backend/internal/server"
)

func wireRouter(cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ServiceName:   cfg.ServiceName,
		NodeHandler:   handlers.Node,
		ImportHandler: handlers.Import,
		SalesHandler:  handlers.Sales,
		RequestLogger: middleware.RequestLogger,
	})
}
