package api

import (
	"net/http"

	"campusswap/marketplace-api/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type phoneBody struct {
	NewPhoneNumber string `json:"newPhoneNumber"`
}

// UserUpdatePhone updates the caller's contact number, rewrites the
// denormalized copy on every item they authored and re-issues a short-lived
// session token so the embedded claims catch up.
func (a *API) UserUpdatePhone(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	claims := currentUser(c)

	var data phoneBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.NewPhoneNumber == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "New phone number is required",
			"requestID": requestID,
		})
		return
	}

	updatedItems, err := a.Users.UpdateContactNumber(claims.Email, data.NewPhoneNumber)
	if abortStoreError(c, requestID, err, "User") {
		return
	}

	token, err := auth.IssueToken(&auth.Claims{
		Email:         claims.Email,
		Name:          claims.Name,
		Picture:       claims.Picture,
		ContactNumber: data.NewPhoneNumber,
	}, auth.ShortTTL)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to issue session token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	setSessionCookie(c, token, auth.ShortTTL)

	c.JSON(http.StatusOK, gin.H{
		"message":           "Phone number updated successfully",
		"updatedItemsCount": updatedItems,
	})
}
