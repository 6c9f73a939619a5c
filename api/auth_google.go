package api

import (
	"errors"
	"net/http"

	"campusswap/marketplace-api/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type googleAuthBody struct {
	Token         string `json:"token"`
	ContactNumber string `json:"contactNumber"`
}

// AuthGoogle exchanges a Google ID token plus contact number for a session.
// First sight of an email creates the user record; repeat sign-ins return it
// unchanged and in particular never overwrite the stored contact number.
func (a *API) AuthGoogle(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data googleAuthBody
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

	external, err := a.Verifier.Verify(c.Request.Context(), data.Token)
	if err != nil {
		if errors.Is(err, auth.ErrExternalToken) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Authentication failed",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Authentication failed",
			"requestID": requestID,
		})

		zap.L().Error("Identity provider verification failed", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	user, firstTime, err := a.Users.UpsertOnFirstSight(external.Email, external.Name, external.Picture, data.ContactNumber)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Authentication failed",
			"requestID": requestID,
		})

		zap.L().Error("Failed to upsert user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	token, err := auth.IssueToken(&auth.Claims{
		Email:         user.Email,
		Name:          user.Name,
		Picture:       user.Picture,
		ContactNumber: user.ContactNumber,
	}, auth.LongTTL)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Authentication failed",
			"requestID": requestID,
		})

		zap.L().Error("Failed to issue session token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	setSessionCookie(c, token, auth.LongTTL)

	c.JSON(http.StatusOK, gin.H{
		"message":   "Google Authentication successful",
		"user":      user,
		"firstTime": firstTime,
	})
}
