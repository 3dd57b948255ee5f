package app

import (
	"github.com/megamarket/catalog-backend/internal/logger"
	"github.com/megamarket/catalog-backend/internal/services"
	"github.com/megamarket/catalog-backend/internal/store"
)

type Services struct {
	Catalog services.CatalogService
}

func wireServices(st store.NodeStore, log *logger.Logger) Services {
	log.Info("Wiring services...")
	return Services{
		Catalog: services.NewCatalogService(st, log),
	}
}
