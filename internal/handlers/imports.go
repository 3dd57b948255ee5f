package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/megamarket/catalog-backend/internal/logger"
	"github.com/megamarket/catalog-backend/internal/services"
	"github.com/megamarket/catalog-backend/internal/types"
)

type ImportHandler struct {
	log     *logger.Logger
	catalog services.CatalogService
}

func NewImportHandler(log *logger.Logger, catalog services.CatalogService) *ImportHandler {
	return &ImportHandler{log: log.With("handler", "ImportHandler"), catalog: catalog}
}

func (ih *ImportHandler) Import(c *gin.Context) {
	var req types.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ih.log.Debug("import body rejected", "error", err)
		RespondValidationFailed(c)
		return
	}
	if err := ih.catalog.Import(c.Request.Context(), req); err != nil {
		ih.log.Debug("import failed", "error", err)
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
