package api

import (
	"alcyxob/fitness-tracker/internal/service"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PhotoHandler holds the progress photo service dependency.
type PhotoHandler struct {
	photoService service.ProgressPhotoService
}

// NewPhotoHandler creates a new PhotoHandler.
func NewPhotoHandler(photoService service.ProgressPhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// --- DTOs ---

// RequestUploadRequest defines the expected JSON for requesting a photo upload.
type RequestUploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

// PhotoUploadResponse returns the stored metadata and the URL to PUT the file to.
type PhotoUploadResponse struct {
	ID          string    `json:"id"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	UploadedAt  time.Time `json:"uploadedAt"`
	UploadURL   string    `json:"uploadUrl"`
}

// PhotoResponse is one listed photo with its temporary download URL.
type PhotoResponse struct {
	ID          string    `json:"id"`
	FileName    string    `json:"fileName"`
	ContentType string    `json:"contentType"`
	UploadedAt  time.Time `json:"uploadedAt"`
	DownloadURL string    `json:"downloadUrl,omitempty"`
}

// --- Handler Methods ---

// RequestUpload handles POST /api/users/photos.
func (h *PhotoHandler) RequestUpload(c *gin.Context) {
	var req RequestUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "fileName and contentType are required.")
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}

	upload, err := h.photoService.RequestUpload(c.Request.Context(), userID, req.FileName, req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "contentType must be an image type.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to prepare photo upload.")
		}
		return
	}

	c.JSON(http.StatusCreated, PhotoUploadResponse{
		ID:          upload.Photo.ID.Hex(),
		FileName:    upload.Photo.FileName,
		ContentType: upload.Photo.ContentType,
		UploadedAt:  upload.Photo.UploadedAt,
		UploadURL:   upload.UploadURL,
	})
}

// ListPhotos handles GET /api/users/photos.
func (h *PhotoHandler) ListPhotos(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}

	photos, err := h.photoService.ListPhotos(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list photos.")
		return
	}

	responses := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		responses[i] = PhotoResponse{
			ID:          p.Photo.ID.Hex(),
			FileName:    p.Photo.FileName,
			ContentType: p.Photo.ContentType,
			UploadedAt:  p.Photo.UploadedAt,
			DownloadURL: p.DownloadURL,
		}
	}

	c.JSON(http.StatusOK, responses)
}

// DeletePhoto handles DELETE /api/users/photos/:id.
func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user.")
		return
	}

	photoID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid photo ID.")
		return
	}

	if err := h.photoService.DeletePhoto(c.Request.Context(), userID, photoID); err != nil {
		if errors.Is(err, service.ErrPhotoNotFound) {
			abortWithError(c, http.StatusNotFound, "Photo not found.")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete photo.")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
