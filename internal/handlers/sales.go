package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/megamarket/catalog-backend/internal/logger"
	"github.com/megamarket/catalog-backend/internal/services"
	"github.com/megamarket/catalog-backend/internal/types"
)

type SalesHandler struct {
	log     *logger.Logger
	catalog services.CatalogService
}

func NewSalesHandler(log *logger.Logger, catalog services.CatalogService) *SalesHandler {
	return &SalesHandler{log: log.With("handler", "SalesHandler"), catalog: catalog}
}

func (sh *SalesHandler) GetSales(c *gin.Context) {
	date, ok := c.GetQuery("date")
	if !ok {
		RespondValidationFailed(c)
		return
	}
	nodes, err := sh.catalog.GetSales(c.Request.Context(), date)
	if err != nil {
		sh.log.Debug("get sales failed", "date", date, "error", err)
		RespondError(c, err)
		return
	}
	items := make([]types.SaleView, 0, len(nodes))
	for _, n := range nodes {
		items = append(items, types.NewSaleView(n))
	}
	c.JSON(http.StatusOK, types.SalesResponse{Items: items})
}
