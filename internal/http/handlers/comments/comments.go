package comments

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/bragboard/bragboard-service/internal/events"
	"github.com/bragboard/bragboard-service/internal/http/middleware"
	"github.com/bragboard/bragboard-service/internal/storage"
	"github.com/bragboard/bragboard-service/internal/types"
	"github.com/bragboard/bragboard-service/internal/utils/response"
)

func decodeCommentRequest(w http.ResponseWriter, r *http.Request) (types.CommentRequest, bool) {
	var req types.CommentRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if errors.Is(err, io.EOF) {
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("request body cannot be empty")))
		return req, false
	} else if err != nil {
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return req, false
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(ve))
			return req, false
		}
		response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
		return req, false
	}

	return req, true
}

// Add handles posting a comment on a shoutout
// @Summary Comment on a shoutout
// @Tags comments
// @Accept json
// @Produce json
// @Param shoutout_id path string true "Shoutout ID"
// @Param comment body types.CommentRequest true "Comment content"
// @Success 201 {object} map[string]string "Comment created successfully"
// @Failure 400 {object} response.Response "Bad request"
// @Failure 401 {object} response.Response "Unauthorized"
// @Failure 404 {object} response.Response "Shoutout not found"
// @Security BearerAuth
// @Router /comments/{shoutout_id} [post]
func Add(store storage.Storage, publisher events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserIDFromContext(r.Context())
		if !ok {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not authenticated")))
			return
		}

		shoutoutID := r.PathValue("shoutout_id")
		if shoutoutID == "" {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("shoutout ID is required")))
			return
		}

		req, ok := decodeCommentRequest(w, r)
		if !ok {
			return
		}

		so, err := store.GetShoutOutByID(shoutoutID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errors.New("shoutout not found")))
				return
			}
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		commentID, err := store.CreateComment(shoutoutID, userID, req.Content)
		if err != nil {
			slog.Error("Failed to create comment", slog.String("error", err.Error()), slog.String("shoutout_id", shoutoutID))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to create comment")))
			return
		}

		if publisher != nil {
			publisher.PublishShoutOutCommented(shoutoutID, commentID, userID, so.GiverID, so.ReceiverID)
		}

		response.WriteJSON(w, http.StatusCreated, map[string]string{"id": commentID})
	}
}

// List handles fetching a shoutout's comments
// @Summary List comments
// @Description Non-deleted comments on a shoutout, oldest first, with usernames
// @Tags comments
// @Produce json
// @Param shoutout_id path string true "Shoutout ID"
// @Success 200 {array} types.Comment "Comments fetched successfully"
// @Failure 401 {object} response.Response "Unauthorized"
// @Failure 404 {object} response.Response "Shoutout not found"
// @Security BearerAuth
// @Router /comments/{shoutout_id} [get]
func List(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not authenticated")))
			return
		}

		shoutoutID := r.PathValue("shoutout_id")
		if shoutoutID == "" {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("shoutout ID is required")))
			return
		}

		if _, err := store.GetShoutOutByID(shoutoutID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errors.New("shoutout not found")))
				return
			}
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		comments, err := store.ListComments(shoutoutID)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Comments fetched successfully", comments))
	}
}

// Update handles editing a comment
// @Summary Edit a comment
// @Description Edit a comment's content. Only the author can edit; edits stamp edited_at.
// @Tags comments
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Param comment body types.CommentRequest true "New content"
// @Success 200 {object} response.Response "Comment updated successfully"
// @Failure 400 {object} response.Response "Bad request"
// @Failure 401 {object} response.Response "Unauthorized"
// @Failure 403 {object} response.Response "Only the author can edit"
// @Failure 404 {object} response.Response "Comment not found"
// @Security BearerAuth
// @Router /comments/{id} [put]
func Update(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserIDFromContext(r.Context())
		if !ok {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not authenticated")))
			return
		}

		commentID := r.PathValue("id")
		if commentID == "" {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("comment ID is required")))
			return
		}

		req, ok := decodeCommentRequest(w, r)
		if !ok {
			return
		}

		comment, err := store.GetCommentByID(commentID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errors.New("comment not found")))
				return
			}
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		if comment.UserID != userID {
			response.WriteJSON(w, http.StatusForbidden, response.GeneralError(errors.New("only the author can edit a comment")))
			return
		}

		if err := store.UpdateComment(commentID, req.Content); err != nil {
			slog.Error("Failed to update comment", slog.String("error", err.Error()), slog.String("comment_id", commentID))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to update comment")))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Comment updated successfully", nil))
	}
}

// Delete handles soft-deleting a comment
// @Summary Delete a comment
// @Description Soft-delete a comment. The author or an admin can delete.
// @Tags comments
// @Param id path string true "Comment ID"
// @Success 200 {object} response.Response "Comment deleted successfully"
// @Failure 401 {object} response.Response "Unauthorized"
// @Failure 403 {object} response.Response "Forbidden"
// @Failure 404 {object} response.Response "Comment not found"
// @Security BearerAuth
// @Router /comments/{id} [delete]
func Delete(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserIDFromContext(r.Context())
		if !ok {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not authenticated")))
			return
		}

		commentID := r.PathValue("id")
		if commentID == "" {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("comment ID is required")))
			return
		}

		comment, err := store.GetCommentByID(commentID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errors.New("comment not found")))
				return
			}
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		if comment.UserID != userID {
			caller, err := store.GetUserByID(userID)
			if err != nil || caller.Role != string(types.RoleAdmin) {
				response.WriteJSON(w, http.StatusForbidden, response.GeneralError(errors.New("only the author or an admin can delete a comment")))
				return
			}
		}

		if err := store.SoftDeleteComment(commentID); err != nil {
			slog.Error("Failed to delete comment", slog.String("error", err.Error()), slog.String("comment_id", commentID))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to delete comment")))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Comment deleted successfully", nil))
	}
}
