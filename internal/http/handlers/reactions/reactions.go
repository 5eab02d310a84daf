package reactions

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

// ToggleResponse reports what the toggle did along with fresh counts.
type ToggleResponse struct {
	Outcome types.ToggleOutcome        `json:"outcome"`
	Counts  map[types.ReactionType]int `json:"counts"`
}

// Toggle handles adding, switching or removing a reaction
// @Summary Toggle a reaction
// @Description React to a shoutout. Same type removes the reaction, a different type switches it.
// @Tags reactions
// @Accept json
// @Produce json
// @Param shoutout_id path string true "Shoutout ID"
// @Param reaction body types.ReactionRequest true "Reaction type"
// @Success 200 {object} ToggleResponse "Reaction toggled successfully"
// @Failure 400 {object} response.Response "Bad request"
// @Failure 401 {object} response.Response "Unauthorized"
// @Failure 404 {object} response.Response "Shoutout not found"
// @Security BearerAuth
// @Router /reactions/{shoutout_id} [post]
func Toggle(store storage.Storage, publisher events.Publisher) http.HandlerFunc {
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

		var req types.ReactionRequest

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

		// Verify the shoutout exists and is not deleted
		so, err := store.GetShoutOutByID(shoutoutID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errors.New("shoutout not found")))
				return
			}
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		outcome, err := store.ToggleReaction(shoutoutID, userID, req.ReactionType)
		if err != nil {
			slog.Error("Failed to toggle reaction", slog.String("error", err.Error()), slog.String("shoutout_id", shoutoutID))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to toggle reaction")))
			return
		}

		if outcome != types.ToggleRemoved && publisher != nil {
			publisher.PublishShoutOutReacted(shoutoutID, userID, so.GiverID, req.ReactionType)
		}

		counts, err := store.ReactionCounts(shoutoutID, userID)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		resp := ToggleResponse{
			Outcome: outcome,
			Counts:  counts.Counts,
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Reaction toggled successfully", resp))
	}
}

// Counts handles the per-shoutout reaction breakdown
// @Summary Get reaction counts
// @Description Per-type reaction counts for a shoutout, zero-filled, plus the caller's own reaction
// @Tags reactions
// @Produce json
// @Param shoutout_id path string true "Shoutout ID"
// @Success 200 {object} types.ReactionCounts "Reaction counts fetched successfully"
// @Failure 401 {object} response.Response "Unauthorized"
// @Failure 404 {object} response.Response "Shoutout not found"
// @Security BearerAuth
// @Router /reactions/{shoutout_id} [get]
func Counts(store storage.Storage) http.HandlerFunc {
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

		if _, err := store.GetShoutOutByID(shoutoutID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errors.New("shoutout not found")))
				return
			}
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		counts, err := store.ReactionCounts(shoutoutID, userID)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Reaction counts fetched successfully", counts))
	}
}
