package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserCheckLogin echoes the identity decoded from the session token.
func (a *API) UserCheckLogin(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user": currentUser(c),
	})
}
