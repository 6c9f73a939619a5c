package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserItems lists every item the caller has posted.
func (a *API) UserItems(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	claims := currentUser(c)

	items, err := a.Items.ListByAuthor(claims.Email)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to fetch items",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list user items", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, items)
}
