package api

import (
	"net/http"

	"campusswap/marketplace-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) EventCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	claims := currentUser(c)

	var event model.Event
	if err := c.ShouldBind(&event); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if event.Name == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Event name can't be empty",
			"requestID": requestID,
		})
		return
	}

	if err := a.Events.Create(claims, &event); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to post event",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create event", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event successfully posted",
		"event":   event,
	})
}
