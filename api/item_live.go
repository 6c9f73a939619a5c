package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ItemToggleLive flips the listing between live ("y") and hidden ("n").
func (a *API) ItemToggleLive(c *gin.Context) {
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

	newState, err := a.Items.ToggleLive(claims.Email, itemID)
	if abortStoreError(c, requestID, err, "Item") {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item live status updated successfully",
		"live":    newState,
	})
}
