package api

import (
	"context"
	"net/http"

	"campusswap/marketplace-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ItemCreate persists a new listing stamped with the author snapshot, appends
// its id to the author's posted-items set and broadcasts a push notification.
// The broadcast and the posted-items append are best-effort: the listing is
// already committed when they run.
func (a *API) ItemCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	claims := currentUser(c)

	var item model.Item
	if err := c.ShouldBind(&item); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if item.Name == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Item name can't be empty",
			"requestID": requestID,
		})
		return
	}

	if err := a.Items.Create(claims, &item); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to post item",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create item", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := a.Users.AppendPostedItem(claims.Email, item.ID); err != nil {
		zap.L().Error("Failed to append posted item reference", zap.Error(err), zap.String("requestID", requestID))
	}

	go a.broadcastNewItem(item.Name)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Item successfully posted",
		"item":    item,
	})
}

func (a *API) broadcastNewItem(name string) {
	tokens, err := a.Users.AllPushTokens()
	if err != nil {
		zap.L().Error("Failed to collect push tokens for broadcast", zap.Error(err))
		return
	}

	if len(tokens) == 0 {
		return
	}

	err = a.Notifier.Send(context.Background(), tokens, "New item posted", name+" is now up for grabs!")
	if err != nil {
		zap.L().Error("Failed to broadcast new item notification", zap.Error(err))
	}
}
