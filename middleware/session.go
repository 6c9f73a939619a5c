package middleware

import (
	"errors"
	"net/http"

	"campusswap/marketplace-api/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "token"

// UserKey is the gin context key holding the decoded *auth.Claims.
const UserKey = "user"

// NewSessionMiddleware decodes the session token from the request cookie and
// attaches the claims to the context. Missing, malformed and expired tokens
// all collapse to 401; ownership violations are only raised later by the
// resource stores.
func NewSessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		tokenStr, err := c.Cookie(SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Missing session token",
				"requestID": requestID,
			})
			return
		}

		claims, err := auth.DecodeToken(tokenStr)
		if err != nil {
			msg := "Session token invalid"
			if errors.Is(err, auth.ErrTokenExpired) {
				msg = "Session expired. Please log in again"
			} else {
				zap.L().Error("Failed to decode session token", zap.Error(err), zap.String("requestID", requestID))
			}

			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     msg,
				"requestID": requestID,
			})
			return
		}

		c.Set(UserKey, claims)
		c.Next()
	}
}
