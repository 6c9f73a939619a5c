package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) EventList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	events, err := a.Events.List(c.Query("cat"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to retrieve events",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list events", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, events)
}
