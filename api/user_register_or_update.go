package api

import (
	"errors"
	"net/http"

	"campusswap/marketplace-api/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserRegisterOrUpdate is the unauthenticated alternate entry: it verifies
// the Google ID token itself, creates the user on first sight and otherwise
// explicitly updates the contact number (with the cascade to items). Either
// way a fresh short-lived session is issued.
func (a *API) UserRegisterOrUpdate(c *gin.Context) {
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
			"error":     "Failed to register/update user",
			"requestID": requestID,
		})

		zap.L().Error("Identity provider verification failed", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	user, firstTime, err := a.Users.UpsertOnFirstSight(external.Email, external.Name, external.Picture, data.ContactNumber)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to register/update user",
			"requestID": requestID,
		})

		zap.L().Error("Failed to upsert user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !firstTime && data.ContactNumber != "" && data.ContactNumber != user.ContactNumber {
		if _, err := a.Users.UpdateContactNumber(user.Email, data.ContactNumber); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Failed to register/update user",
				"requestID": requestID,
			})

			zap.L().Error("Failed to update contact number", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		user.ContactNumber = data.ContactNumber
	}

	if !firstTime {
		// Re-read so the response and claims reflect the stored profile.
		user, err = a.Users.FindByEmail(external.Email)
		if abortStoreError(c, requestID, err, "User") {
			return
		}
	}

	token, err := auth.IssueToken(&auth.Claims{
		Email:         user.Email,
		Name:          user.Name,
		Picture:       user.Picture,
		ContactNumber: user.ContactNumber,
	}, auth.ShortTTL)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to register/update user",
			"requestID": requestID,
		})

		zap.L().Error("Failed to issue session token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	setSessionCookie(c, token, auth.ShortTTL)

	c.JSON(http.StatusOK, gin.H{
		"message": "User registered/updated successfully",
		"user":    user,
	})
}
