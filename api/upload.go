package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Upload hands out a time-limited presigned PUT URL keyed under the caller's
// email. The actual upload happens directly against object storage.
func (a *API) Upload(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	claims := currentUser(c)

	if a.S3 == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Uploads are not available",
			"requestID": requestID,
		})
		return
	}

	url, key, err := a.S3.PresignUpload(c.Request.Context(), claims.Email)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Error generating presigned URL",
			"requestID": requestID,
		})

		zap.L().Error("Failed to presign upload URL", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url": url,
		"key": key,
	})
}
