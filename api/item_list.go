package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ItemList is unauthenticated; returns every matching item, no pagination.
func (a *API) ItemList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	items, err := a.Items.List(c.Query("cat"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to retrieve items",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list items", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, items)
}
