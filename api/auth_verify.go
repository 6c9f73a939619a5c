package api

import (
	"errors"
	"net/http"

	"campusswap/marketplace-api/auth"
	"campusswap/marketplace-api/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthVerify re-reads the caller's stored profile and re-issues a short-lived
// session token from it. Used to refresh stale embedded claims after a
// profile mutation.
func (a *API) AuthVerify(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	claims := currentUser(c)

	user, err := a.Users.FindByEmail(claims.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "User not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	token, err := auth.IssueToken(&auth.Claims{
		Email:         user.Email,
		Name:          user.Name,
		Picture:       user.Picture,
		ContactNumber: user.ContactNumber,
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
		"message": "User verified successfully",
		"user":    user,
	})
}
