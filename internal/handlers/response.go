package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/megamarket/catalog-backend/internal/apperr"
	"github.com/megamarket/catalog-backend/internal/types"
)

// RespondError collapses internal error kinds to the two canonical bodies;
// anything else is a plain 500.
func RespondError(c *gin.Context, err error) {
	switch {
	case apperr.IsNotFound(err):
		c.JSON(http.StatusNotFound, types.ErrorResponse{Code: 404, Message: "Item not found"})
	case apperr.IsValidation(err):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Code: 400, Message: "Validation Failed"})
	default:
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Code: 500, Message: "Internal Server Error"})
	}
}

func RespondValidationFailed(c *gin.Context) {
	c.JSON(http.StatusBadRequest, types.ErrorResponse{Code: 400, Message: "Validation Failed"})
}
