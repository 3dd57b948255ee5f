package app

import (
	"github.com/megamarket/catalog-backend/internal/handlers"
	"github.com/megamarket/catalog-backend/internal/logger"
)

type Handlers struct {
	Node   *handlers.NodeHandler
	Import *handlers.ImportHandler
	Sales  *handlers.SalesHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Node:   handlers.NewNodeHandler(log, services.Catalog),
		Import: handlers.NewImportHandler(log, services.Catalog),
		Sales:  handlers.NewSalesHandler(log, services.Catalog),
	}
}
