package api

import (
	"net/http"
	"time"

	"campusswap/marketplace-api/auth"
	"campusswap/marketplace-api/middleware"

	"github.com/gin-gonic/gin"
)

// currentUser returns the claims attached by the session middleware.
func currentUser(c *gin.Context) *auth.Claims {
	return c.MustGet(middleware.UserKey).(*auth.Claims)
}

// setSessionCookie stores the session token in an HttpOnly, cross-site
// cookie. The token is opaque to scripts; the server keeps no session table.
// Secure is always set: SameSite=None cookies are rejected without it, and
// TLS is often terminated in front of the process.
func setSessionCookie(c *gin.Context, token string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.SessionCookie, token, int(ttl.Seconds()), "/", "", true, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", true, true)
}
