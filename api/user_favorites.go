package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type favoriteBody struct {
	ItemID string `json:"itemId"`
}

// UserFavorites returns the caller's favorite item ids. An empty set is a
// 200, not an error.
func (a *API) UserFavorites(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	claims := currentUser(c)

	favorites, err := a.Users.ListFavorites(claims.Email)
	if abortStoreError(c, requestID, err, "User") {
		return
	}

	c.JSON(http.StatusOK, favorites)
}

// UserToggleFavorite adds the item to the caller's favorite set if absent and
// removes it otherwise. Toggling twice restores the original set.
func (a *API) UserToggleFavorite(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	claims := currentUser(c)

	var data favoriteBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.ItemID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "itemId field can't be empty",
			"requestID": requestID,
		})
		return
	}

	nowFavorite, err := a.Users.ToggleFavorite(claims.Email, data.ItemID)
	if abortStoreError(c, requestID, err, "User") {
		return
	}

	msg := "Item removed from favorites"
	if nowFavorite {
		msg = "Item added to favorites"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  msg,
		"favorite": nowFavorite,
	})
}
