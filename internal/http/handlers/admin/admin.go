package admin

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bragboard/bragboard-service/internal/http/middleware"
	"github.com/bragboard/bragboard-service/internal/stats"
	"github.com/bragboard/bragboard-service/internal/storage"
	"github.com/bragboard/bragboard-service/internal/utils/export"
	"github.com/bragboard/bragboard-service/internal/utils/response"
)

func parseTopN(r *http.Request) (int, error) {
	v := r.URL.Query().Get("top_n")
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New("top_n must be an integer")
	}
	return n, nil
}

// Stats handles the sitewide admin summary
// @Summary Get admin statistics
// @Description Sitewide counters, top contributor and department breakdown
// @Tags admin
// @Produce json
// @Success 200 {object} stats.AdminStats "Statistics fetched successfully"
// @Failure 401 {object} response.Response "Unauthorized"
// @Failure 403 {object} response.Response "Admin access required"
// @Security BearerAuth
// @Router /admin/stats [get]
func Stats(svc *stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.SiteSummary()
		if err != nil {
			slog.Error("Failed to compute admin stats", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to compute statistics")))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Statistics fetched successfully", summary))
	}
}

// Trend handles the N-day activity trend
// @Summary Get activity trend
// @Description Daily shoutout counts for the last N days, zero-filled, oldest first
// @Tags admin
// @Produce json
// @Param days query int false "Window size in days (default 7, max 90)"
// @Success 200 {array} stats.TrendPoint "Trend fetched successfully"
// @Failure 400 {object} response.Response "Bad request"
// @Failure 401 {object} response.Response "Unauthorized"
// @Failure 403 {object} response.Response "Admin access required"
// @Security BearerAuth
// @Router /admin/trend [get]
func Trend(svc *stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days := 7
		if v := r.URL.Query().Get("days"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("days must be an integer")))
				return
			}
			days = n
		}

		trend, err := svc.ActivityTrend(days)
		if err != nil {
			if errors.Is(err, stats.ErrInvalidArgument) {
				response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
				return
			}
			slog.Error("Failed to compute trend", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to compute trend")))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Trend fetched successfully", trend))
	}
}

// TopContributors handles the most-active-givers ranking
// @Summary Get top contributors
// @Description Top-N users by shoutouts sent
// @Tags admin
// @Produce json
// @Param top_n query int false "List size (default from config)"
// @Success 200 {array} types.NamedCount "Top contributors fetched successfully"
// @Failure 400 {object} response.Response "Bad request"
// @Failure 401 {object} response.Response "Unauthorized"
// @Failure 403 {object} response.Response "Admin access required"
// @Security BearerAuth
// @Router /admin/top-contributors [get]
func TopContributors(svc *stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topN, err := parseTopN(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		ranked, err := svc.RankedContributors(topN)
		if err != nil {
			if errors.Is(err, stats.ErrInvalidArgument) {
				response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
				return
			}
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to compute top contributors")))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Top contributors fetched successfully", ranked))
	}
}

// MostTagged handles the most-tagged-users ranking
// @Summary Get most tagged users
// @Description Top-N users by times tagged in shoutouts
// @Tags admin
// @Produce json
// @Param top_n query int false "List size (default from config)"
// @Success 200 {array} types.NamedCount "Most tagged fetched successfully"
// @Failure 400 {object} response.Response "Bad request"
// @Failure 401 {object} response.Response "Unauthorized"
// @Failure 403 {object} response.Response "Admin access required"
// @Security BearerAuth
// @Router /admin/most-tagged [get]
func MostTagged(svc *stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topN, err := parseTopN(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		ranked, err := svc.RankedTagged(topN)
		if err != nil {
			if errors.Is(err, stats.ErrInvalidArgument) {
				response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
				return
			}
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to compute most tagged")))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Most tagged fetched successfully", ranked))
	}
}

// PendingReports handles the moderation queue
// @Summary List pending reports
// @Description Pending reports joined with the reported shoutout and its giver
// @Tags admin
// @Produce json
// @Success 200 {array} types.ReportDetail "Reports fetched successfully"
// @Failure 401 {object} response.Response "Unauthorized"
// @Failure 403 {object} response.Response "Admin access required"
// @Security BearerAuth
// @Router /admin/reports [get]
func PendingReports(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reports, err := store.PendingReports()
		if err != nil {
			slog.Error("Failed to list reports", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to list reports")))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Reports fetched successfully", reports))
	}
}

// ResolveReport handles closing a report
// @Summary Resolve a report
// @Description Mark a report resolved, recording the acting admin
// @Tags admin
// @Param id path string true "Report ID"
// @Success 200 {object} response.Response "Report resolved successfully"
// @Failure 401 {object} response.Response "Unauthorized"
// @Failure 403 {object} response.Response "Admin access required"
// @Failure 404 {object} response.Response "Report not found"
// @Security BearerAuth
// @Router /admin/reports/{id}/resolve [put]
func ResolveReport(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, ok := middleware.GetUserIDFromContext(r.Context())
		if !ok {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not authenticated")))
			return
		}

		reportID := r.PathValue("id")
		if reportID == "" {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("report ID is required")))
			return
		}

		err := store.ResolveReport(reportID, adminID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errors.New("report not found")))
				return
			}
			slog.Error("Failed to resolve report", slog.String("error", err.Error()), slog.String("report_id", reportID))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to resolve report")))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Report resolved successfully", nil))
	}
}

// DeleteShoutOut handles admin removal of a shoutout
// @Summary Delete a shoutout (admin)
// @Description Soft-delete any shoutout as an admin
// @Tags admin
// @Param id path string true "Shoutout ID"
// @Success 200 {object} response.Response "Shoutout deleted successfully"
// @Failure 401 {object} response.Response "Unauthorized"
// @Failure 403 {object} response.Response "Admin access required"
// @Failure 404 {object} response.Response "Shoutout not found"
// @Security BearerAuth
// @Router /admin/shoutouts/{id} [delete]
func DeleteShoutOut(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shoutoutID := r.PathValue("id")
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

		if err := store.SoftDeleteShoutOut(shoutoutID); err != nil {
			slog.Error("Failed to delete shoutout", slog.String("error", err.Error()), slog.String("shoutout_id", shoutoutID))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to delete shoutout")))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Shoutout deleted successfully", nil))
	}
}

// ExportShoutOuts handles the CSV data export
// @Summary Export shoutouts as CSV
// @Description All non-deleted shoutouts as CSV rows
// @Tags admin
// @Produce text/csv
// @Success 200 {string} string "CSV export"
// @Failure 401 {object} response.Response "Unauthorized"
// @Failure 403 {object} response.Response "Admin access required"
// @Security BearerAuth
// @Router /admin/export/shoutouts [get]
func ExportShoutOuts(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shoutouts, err := store.AllShoutOuts()
		if err != nil {
			slog.Error("Failed to export shoutouts", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to export shoutouts")))
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="shoutouts.csv"`)

		if err := export.WriteShoutOutsCSV(w, shoutouts); err != nil {
			slog.Error("Failed to write CSV", slog.String("error", err.Error()))
		}
	}
}
