package api

import (
	"errors"
	"net/http"

	"campusswap/marketplace-api/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// abortStoreError translates store failures to the response taxonomy:
// missing record -> 404, ownership violation -> 403, anything else -> 500.
// Returns true if the request was aborted.
func abortStoreError(c *gin.Context, requestID string, err error, kind string) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error":     kind + " not found",
			"requestID": requestID,
		})
	case errors.Is(err, store.ErrForbidden):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":     "You do not have permission to modify this " + kind,
			"requestID": requestID,
		})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Store operation failed", zap.Error(err), zap.String("requestID", requestID))
	}

	return true
}
