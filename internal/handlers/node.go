package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/megamarket/catalog-backend/internal/logger"
	"github.com/megamarket/catalog-backend/internal/services"
)

type NodeHandler struct {
	log     *logger.Logger
	catalog services.CatalogService
}

func NewNodeHandler(log *logger.Logger, catalog services.CatalogService) *NodeHandler {
	return &NodeHandler{log: log.With("handler", "NodeHandler"), catalog: catalog}
}

func (nh *NodeHandler) GetNode(c *gin.Context) {
	view, err := nh.catalog.GetNode(c.Request.Context(), c.Param("id"))
	if err != nil {
		nh.log.Debug("get node failed", "id", c.Param("id"), "error", err)
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (nh *NodeHandler) DeleteNode(c *gin.Context) {
	if err := nh.catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		nh.log.Debug("delete node failed", "id", c.Param("id"), "error", err)
		RespondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
