package handler

import (
	"github.com/agustiinveraa/inmoflow/internal/application/service"
	"github.com/agustiinveraa/inmoflow/internal/presentation/http/dto/response"
	"github.com/agustiinveraa/inmoflow/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// MediaHandler handles property image upload and removal HTTP requests
type MediaHandler struct {
	mediaService *service.MediaService
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(mediaService *service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// UploadImages handles POST /properties/:id/images. The multipart form
// field is "images"; each file gets its own result entry.
func (h *MediaHandler) UploadImages(c *gin.Context) {
	id, err := ParseIDParam(c, "id")
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid property ID"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid multipart form"))
		return
	}

	files := form.File["images"]
	output, err := h.mediaService.UploadImages(c.Request.Context(), id, files)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Upload processed", output)
}

// DeleteImage handles DELETE /properties/:id/images
func (h *MediaHandler) DeleteImage(c *gin.Context) {
	id, err := ParseIDParam(c, "id")
	if err != nil {
		response.Error(c, apperror.NewBadRequestError("Invalid property ID"))
		return
	}

	var input struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	property, err := h.mediaService.DeleteImage(c.Request.Context(), id, input.URL)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Image deleted successfully", property)
}
