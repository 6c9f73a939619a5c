package api

import (
	"net/http"

	"campusswap/marketplace-api/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ItemUpdate applies a sparse patch: only the fields present in the body are
// changed, and dateAdded stays as it was at creation.
func (a *API) ItemUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	claims := currentUser(c)

	itemID := c.Param("id")
	if itemID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "ID is missing",
			"requestID": requestID,
		})
		return
	}

	var patch store.ItemPatch
	if err := c.BindJSON(&patch); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Error("Failed to read JSON body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if abortStoreError(c, requestID, a.Items.Update(claims.Email, itemID, &patch), "Item") {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item updated successfully",
	})
}
