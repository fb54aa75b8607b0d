package api

import (
	"arena45/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MediaHandler hands out direct-to-storage upload URLs for images.
type MediaHandler struct {
	mediaService service.MediaService
	errs         *ErrorWriter
}

func NewMediaHandler(mediaService service.MediaService, errs *ErrorWriter) *MediaHandler {
	return &MediaHandler{mediaService: mediaService, errs: errs}
}

// RequestUploadURL godoc
// @Summary Get a presigned URL for an image upload
// @Description The client PUTs the file to uploadUrl with the same Content-Type,
// @Description then stores imageUrl in the program or testimonial.
// @Tags Media
// @Accept json
// @Produce json
// @Param upload body service.ImageUploadInput true "Folder and content type"
// @Success 200 {object} Response
// @Failure 400 {object} Response "Validation error"
// @Failure 503 {object} Response "Image uploads are not available"
// @Router /api/media/upload-url [post]
func (h *MediaHandler) RequestUploadURL(c *gin.Context) {
	var req service.ImageUploadInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.BadRequest(c, err)
		return
	}

	upload, err := h.mediaService.RequestImageUpload(c.Request.Context(), req)
	if err != nil {
		h.errs.Write(c, err, "Failed to prepare upload")
		return
	}
	respondOK(c, "", upload)
}

// DeleteMedia godoc
// @Summary Delete an uploaded image
// @Tags Media
// @Produce json
// @Param id path string true "Media upload ID"
// @Success 200 {object} Response "Image deleted successfully"
// @Failure 404 {object} Response "Media upload not found"
// @Failure 503 {object} Response "Image uploads are not available"
// @Router /api/media/{id} [delete]
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	id, err := pathID(c, service.ErrMediaNotFound)
	if err != nil {
		h.errs.Write(c, err, "Failed to delete image")
		return
	}
	if err := h.mediaService.Delete(c.Request.Context(), id); err != nil {
		h.errs.Write(c, err, "Failed to delete image")
		return
	}
	respondOK(c, "Image deleted successfully", nil)
}
