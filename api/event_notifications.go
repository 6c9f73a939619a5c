package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type eventNotificationBody struct {
	FCMToken string `json:"fcmToken"`
}

// EventNotifications registers a push token on the event's reminder set.
// Idempotent, and open to any authenticated caller, not just the owner.
func (a *API) EventNotifications(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	eventID := c.Param("id")
	if eventID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "ID is missing",
			"requestID": requestID,
		})
		return
	}

	var data eventNotificationBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.FCMToken == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "fcmToken field can't be empty",
			"requestID": requestID,
		})
		return
	}

	if abortStoreError(c, requestID, a.Events.AddNotificationToken(eventID, data.FCMToken), "Event") {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "FCM token added successfully to event",
	})
}
