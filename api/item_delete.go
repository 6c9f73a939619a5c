package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ItemDelete removes a listing. No referential cleanup happens: favorites and
// posted-item references pointing at the id stay behind.
func (a *API) ItemDelete(c *gin.Context) {
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

	if abortStoreError(c, requestID, a.Items.Delete(claims.Email, itemID), "Item") {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item deleted successfully",
	})
}
