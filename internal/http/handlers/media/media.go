package media

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/bragboard/bragboard-service/internal/http/middleware"
	mediaService "github.com/bragboard/bragboard-service/internal/services/media"
	"github.com/bragboard/bragboard-service/internal/utils/response"
)

type MediaHandlers struct {
	mediaService *mediaService.Service
}

type UploadURLRequest struct {
	ContentType string `json:"content_type" validate:"required"`
}

type DownloadURLResponse struct {
	ObjectKey   string `json:"object_key"`
	DownloadURL string `json:"download_url"`
	ExpiresAt   int64  `json:"expires_at"`
}

func NewMediaHandlers(mediaService *mediaService.Service) *MediaHandlers {
	return &MediaHandlers{
		mediaService: mediaService,
	}
}

// GenerateUploadURL issues a presigned PUT URL for a shoutout image
// @Summary Generate presigned upload URL
// @Description Generate a presigned URL for uploading a shoutout image
// @Tags media
// @Accept json
// @Produce json
// @Param request body UploadURLRequest true "Upload URL request"
// @Success 200 {object} response.Response "Upload URL generated successfully"
// @Failure 400 {object} response.Response "Bad request"
// @Failure 401 {object} response.Response "Unauthorized"
// @Security BearerAuth
// @Router /media/upload-url [post]
func (h *MediaHandlers) GenerateUploadURL() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserIDFromContext(r.Context())
		if !ok {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not authenticated")))
			return
		}

		var req UploadURLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("invalid request body")))
			return
		}

		uploadInfo, err := h.mediaService.GeneratePresignedUploadURL(userID, req.ContentType)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Upload URL generated successfully", uploadInfo))
	}
}

// GenerateDownloadURL issues a presigned GET URL for a stored image
// @Summary Generate presigned download URL
// @Description Generate a presigned URL for downloading a shoutout image
// @Tags media
// @Produce json
// @Param object_key path string true "Object key"
// @Success 200 {object} response.Response "Download URL generated successfully"
// @Failure 400 {object} response.Response "Bad request"
// @Failure 401 {object} response.Response "Unauthorized"
// @Failure 404 {object} response.Response "Media not found"
// @Security BearerAuth
// @Router /media/{object_key}/download-url [get]
func (h *MediaHandlers) GenerateDownloadURL() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not authenticated")))
			return
		}

		objectKey := r.PathValue("object_key")
		if objectKey == "" {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("object key is required")))
			return
		}

		exists, err := h.mediaService.ObjectExists(objectKey)
		if err != nil || !exists {
			response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errors.New("media not found")))
			return
		}

		const expiry = time.Hour
		downloadURL, err := h.mediaService.GeneratePresignedDownloadURL(objectKey, expiry)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to generate download URL")))
			return
		}

		resp := DownloadURLResponse{
			ObjectKey:   objectKey,
			DownloadURL: downloadURL.String(),
			ExpiresAt:   time.Now().Add(expiry).Unix(),
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Download URL generated successfully", resp))
	}
}

// DeleteMedia removes an uploaded image the user owns
// @Summary Delete media file
// @Description Delete an uploaded image belonging to the authenticated user
// @Tags media
// @Param object_key path string true "Object key"
// @Success 200 {object} response.Response "Media file deleted successfully"
// @Failure 401 {object} response.Response "Unauthorized"
// @Failure 403 {object} response.Response "Forbidden"
// @Security BearerAuth
// @Router /media/{object_key} [delete]
func (h *MediaHandlers) DeleteMedia() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserIDFromContext(r.Context())
		if !ok {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not authenticated")))
			return
		}

		objectKey := r.PathValue("object_key")
		if objectKey == "" {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("object key is required")))
			return
		}

		// Object keys are prefixed with the uploading user's ID
		expectedPrefix := "users/" + userID + "/images/"
		if !strings.HasPrefix(objectKey, expectedPrefix) {
			response.WriteJSON(w, http.StatusForbidden, response.GeneralError(errors.New("access denied")))
			return
		}

		if err := h.mediaService.DeleteObject(objectKey); err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to delete media file")))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Media file deleted successfully", nil))
	}
}
