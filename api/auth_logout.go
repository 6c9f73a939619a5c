package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthLogout clears the session cookie. Tokens are stateless, so there is no
// server-side session to tear down.
func (a *API) AuthLogout(c *gin.Context) {
	clearSessionCookie(c)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}
