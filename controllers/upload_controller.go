package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/macadoo18/growing-up-server/config"
)

// ImageUploader stores an image and returns a public URL for it. The blob
// store is an external collaborator; we only keep the reference string.
// utils.S3Uploader satisfies this.
type ImageUploader interface {
	UploadBase64(ctx context.Context, base64Data, prefix string) (string, error)
}

type UploadController struct {
	cfg      *config.Config
	uploader ImageUploader
}

func NewUploadController(cfg *config.Config, uploader ImageUploader) *UploadController {
	return &UploadController{cfg: cfg, uploader: uploader}
}

func (ct *UploadController) Upload(c *gin.Context) {
	if ct.uploader == nil {
		internalError(c, ct.cfg, errors.New("image uploads are not configured"))
		return
	}

	var body struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	url, err := ct.uploader.UploadBase64(c.Request.Context(), body.ImageBase64, "child-pictures")
	if err != nil {
		internalError(c, ct.cfg, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
