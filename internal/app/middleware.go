package app

import (
	"github.com/megamarket/catalog-backend/internal/logger"
	"github.com/megamarket/catalog-backend/internal/middleware"
)

type Middleware struct {
	RequestLogger *middleware.RequestLogger
}

func wireMiddleware(log *logger.Logger) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		RequestLogger: middleware.NewRequestLogger(log),
	}
}
