package achievements

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bragboard/bragboard-service/internal/http/middleware"
	"github.com/bragboard/bragboard-service/internal/stats"
	"github.com/bragboard/bragboard-service/internal/storage"
	"github.com/bragboard/bragboard-service/internal/utils/response"
)

// UserAchievements handles the caller's achievement list
// @Summary Get achievements
// @Description Full achievement list for the authenticated user, with badge tiers
// @Tags achievements
// @Produce json
// @Success 200 {array} stats.Achievement "Achievements fetched successfully"
// @Failure 401 {object} response.Response "Unauthorized"
// @Security BearerAuth
// @Router /achievements [get]
func UserAchievements(svc *stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserIDFromContext(r.Context())
		if !ok {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not authenticated")))
			return
		}

		achievements, err := svc.UserAchievements(userID)
		if err != nil {
			slog.Error("Failed to compute achievements", slog.String("error", err.Error()), slog.String("user_id", userID))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to compute achievements")))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Achievements fetched successfully", achievements))
	}
}

// Streak handles the caller's activity streak
// @Summary Get activity streak
// @Description Consecutive-day shoutout activity streak for the authenticated user
// @Tags achievements
// @Produce json
// @Success 200 {object} map[string]int "Streak fetched successfully"
// @Failure 401 {object} response.Response "Unauthorized"
// @Security BearerAuth
// @Router /achievements/streak [get]
func Streak(svc *stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserIDFromContext(r.Context())
		if !ok {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not authenticated")))
			return
		}

		streak, err := svc.UserStreak(userID)
		if err != nil {
			slog.Error("Failed to compute streak", slog.String("error", err.Error()), slog.String("user_id", userID))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to compute streak")))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Streak fetched successfully", map[string]int{"streak": streak}))
	}
}

// Leaderboard handles the weighted leaderboard
// @Summary Get the leaderboard
// @Description Global top-N, caller's department top-N, and top departments by shoutouts given
// @Tags achievements
// @Produce json
// @Param top_n query int false "List size (default from config)"
// @Success 200 {object} stats.Leaderboard "Leaderboard fetched successfully"
// @Failure 400 {object} response.Response "Bad request"
// @Failure 401 {object} response.Response "Unauthorized"
// @Security BearerAuth
// @Router /achievements/leaderboard [get]
func Leaderboard(store storage.Storage, svc *stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserIDFromContext(r.Context())
		if !ok {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not authenticated")))
			return
		}

		topN := 0
		if v := r.URL.Query().Get("top_n"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("top_n must be an integer")))
				return
			}
			topN = n
		}

		caller, err := store.GetUserByID(userID)
		if err != nil {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not found")))
			return
		}

		leaderboard, err := svc.UserLeaderboard(caller.Department, topN)
		if err != nil {
			if errors.Is(err, stats.ErrInvalidArgument) {
				response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
				return
			}
			slog.Error("Failed to compute leaderboard", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to compute leaderboard")))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Leaderboard fetched successfully", leaderboard))
	}
}
