package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type pushTokenBody struct {
	Token string `json:"token"`
}

// UserSetToken registers the caller's push delivery token.
func (a *API) UserSetToken(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	claims := currentUser(c)

	var data pushTokenBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Token == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Token field can't be empty",
			"requestID": requestID,
		})
		return
	}

	if abortStoreError(c, requestID, a.Users.SetPushToken(claims.Email, data.Token), "User") {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "FCM token updated successfully",
	})
}

// UserHasToken reports whether the caller has a push token registered.
func (a *API) UserHasToken(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	claims := currentUser(c)

	has, err := a.Users.HasPushToken(claims.Email)
	if abortStoreError(c, requestID, err, "User") {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hasFcmToken": has,
	})
}
