package reports

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/bragboard/bragboard-service/internal/http/middleware"
	"github.com/bragboard/bragboard-service/internal/storage"
	"github.com/bragboard/bragboard-service/internal/types"
	"github.com/bragboard/bragboard-service/internal/utils/response"
)

// Create handles reporting a shoutout for moderation
// @Summary Report a shoutout
// @Description Flag a shoutout for admin review. One pending report per reporter per shoutout.
// @Tags reports
// @Accept json
// @Produce json
// @Param shoutout_id path string true "Shoutout ID"
// @Param report body types.ReportRequest true "Report reason"
// @Success 201 {object} map[string]string "Report created successfully"
// @Failure 400 {object} response.Response "Bad request"
// @Failure 401 {object} response.Response "Unauthorized"
// @Failure 404 {object} response.Response "Shoutout not found"
// @Failure 409 {object} response.Response "Already reported"
// @Security BearerAuth
// @Router /reports/{shoutout_id} [post]
func Create(store storage.Storage) http.HandlerFunc {
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

		var req types.ReportRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("request body cannot be empty")))
			return
		} else if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		validate := validator.New()
		if err := validate.Struct(req); err != nil {
			if ve, ok := err.(validator.ValidationErrors); ok {
				response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(ve))
				return
			}
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
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

		reportID, err := store.CreateReport(shoutoutID, userID, req.Reason)
		if err != nil {
			if errors.Is(err, storage.ErrConflict) {
				response.WriteJSON(w, http.StatusConflict, response.GeneralError(errors.New("you already have a pending report for this shoutout")))
				return
			}
			slog.Error("Failed to create report", slog.String("error", err.Error()), slog.String("shoutout_id", shoutoutID))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to create report")))
			return
		}

		response.WriteJSON(w, http.StatusCreated, map[string]string{"id": reportID})
	}
}
