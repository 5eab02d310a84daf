package shoutouts

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/bragboard/bragboard-service/internal/events"
	"github.com/bragboard/bragboard-service/internal/http/middleware"
	"github.com/bragboard/bragboard-service/internal/storage"
	"github.com/bragboard/bragboard-service/internal/types"
	"github.com/bragboard/bragboard-service/internal/utils/response"
)

// DashboardResponse is the per-user summary shown on the home screen.
type DashboardResponse struct {
	Sent                int `json:"sent"`
	Received            int `json:"received"`
	DepartmentHeadcount int `json:"department_headcount"`
}

// visibleTo applies the feed visibility rules: public shoutouts are visible to
// everyone, department_only to members of either department snapshot, private
// to the giver, receiver and tagged users.
func visibleTo(so types.ShoutOut, userID, userDepartment string) bool {
	if so.GiverID == userID || so.ReceiverID == userID {
		return true
	}

	switch so.Visibility {
	case types.VisibilityPublic:
		return true
	case types.VisibilityDepartment:
		return userDepartment != "" &&
			(so.GiverDepartment == userDepartment || so.ReceiverDepartment == userDepartment)
	case types.VisibilityPrivate:
		for _, tu := range so.TaggedUsers {
			if tu.ID == userID {
				return true
			}
		}
		return false
	}
	return false
}

// PostShoutOut handles creating a new shoutout
// @Summary Create a new shoutout
// @Description Recognize a colleague with a shoutout; optionally tag other users
// @Tags shoutouts
// @Accept json
// @Produce json
// @Param shoutout body types.ShoutOutPostRequest true "Shoutout content"
// @Success 201 {object} map[string]string "Shoutout created successfully"
// @Failure 400 {object} response.Response "Bad request"
// @Failure 401 {object} response.Response "Unauthorized"
// @Failure 404 {object} response.Response "Receiver or tagged user not found"
// @Security BearerAuth
// @Router /shoutouts [post]
func PostShoutOut(store storage.Storage, publisher events.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserIDFromContext(r.Context())
		if !ok {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not authenticated")))
			return
		}

		var req types.ShoutOutPostRequest

		err := json.NewDecoder(r.Body).Decode(&req)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("request body cannot be empty")))
			return
		} else if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// Validate request
		validate := validator.New()
		err = validate.Struct(req)
		if err != nil {
			if ve, ok := err.(validator.ValidationErrors); ok {
				response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(ve))
				return
			}
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if req.ReceiverID == userID {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("cannot send a shoutout to yourself")))
			return
		}

		giver, err := store.GetUserByID(userID)
		if err != nil {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not found")))
			return
		}

		receiver, err := store.GetUserByID(req.ReceiverID)
		if err != nil {
			response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errors.New("receiver not found")))
			return
		}

		// Tagged users must exist; the giver and receiver are implicit
		taggedIDs := make([]string, 0, len(req.TaggedUserIDs))
		for _, id := range req.TaggedUserIDs {
			if id == userID || id == req.ReceiverID {
				continue
			}
			if _, err := store.GetUserByID(id); err != nil {
				response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errors.New("tagged user not found: "+id)))
				return
			}
			taggedIDs = append(taggedIDs, id)
		}

		title := req.Title
		if title == "" {
			title = "Shoutout from " + giver.Username
		}

		so := types.ShoutOut{
			Title:              title,
			Message:            req.Message,
			GiverID:            giver.ID,
			GiverName:          giver.Username,
			ReceiverID:         receiver.ID,
			ReceiverName:       receiver.Username,
			GiverDepartment:    giver.Department,
			ReceiverDepartment: receiver.Department,
			Category:           req.Category,
			Visibility:         req.Visibility,
			ImageKey:           req.ImageKey,
		}

		shoutoutID, err := store.CreateShoutOut(so, taggedIDs)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}
		slog.Info("Shoutout created with ID:", slog.String("shoutout_id", shoutoutID))

		so.ID = shoutoutID
		so.CreatedAt = time.Now().UTC().Format(time.RFC3339)
		if publisher != nil {
			publisher.PublishShoutOutReceived(so, taggedIDs)
		}

		response.WriteJSON(w, http.StatusCreated, map[string]string{"id": shoutoutID})
	}
}

// UpdateShoutOut handles editing a shoutout
// @Summary Edit a shoutout
// @Description Edit a shoutout's content. Only the giver can edit; edits stamp edited_at.
// @Tags shoutouts
// @Accept json
// @Produce json
// @Param id path string true "Shoutout ID"
// @Param shoutout body types.ShoutOutUpdateRequest true "Fields to update"
// @Success 200 {object} response.Response "Shoutout updated successfully"
// @Failure 400 {object} response.Response "Bad request"
// @Failure 401 {object} response.Response "Unauthorized"
// @Failure 403 {object} response.Response "Only the giver can edit"
// @Failure 404 {object} response.Response "Shoutout not found"
// @Security BearerAuth
// @Router /shoutouts/{id} [put]
func UpdateShoutOut(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserIDFromContext(r.Context())
		if !ok {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not authenticated")))
			return
		}

		shoutoutID := r.PathValue("id")
		if shoutoutID == "" {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("shoutout ID is required")))
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

		if so.GiverID != userID {
			response.WriteJSON(w, http.StatusForbidden, response.GeneralError(errors.New("only the giver can edit a shoutout")))
			return
		}

		var req types.ShoutOutUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if req.Title != nil {
			so.Title = *req.Title
		}
		if req.Message != nil {
			if *req.Message == "" {
				response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("message cannot be empty")))
				return
			}
			so.Message = *req.Message
		}
		if req.Category != nil {
			so.Category = *req.Category
		}
		if req.Visibility != nil {
			so.Visibility = *req.Visibility
		}
		if req.ImageKey != nil {
			so.ImageKey = *req.ImageKey
		}

		var taggedIDs *[]string
		if req.TaggedUserIDs != nil {
			ids := make([]string, 0, len(*req.TaggedUserIDs))
			for _, id := range *req.TaggedUserIDs {
				if id == so.GiverID || id == so.ReceiverID {
					continue
				}
				if _, err := store.GetUserByID(id); err != nil {
					response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errors.New("tagged user not found: "+id)))
					return
				}
				ids = append(ids, id)
			}
			taggedIDs = &ids
		}

		if err := store.UpdateShoutOut(so, taggedIDs); err != nil {
			slog.Error("Failed to update shoutout", slog.String("error", err.Error()), slog.String("shoutout_id", shoutoutID))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to update shoutout")))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Shoutout updated successfully", nil))
	}
}

// DeleteShoutOut handles soft-deleting a shoutout
// @Summary Delete a shoutout
// @Description Soft-delete a shoutout. The giver or an admin can delete.
// @Tags shoutouts
// @Param id path string true "Shoutout ID"
// @Success 200 {object} response.Response "Shoutout deleted successfully"
// @Failure 401 {object} response.Response "Unauthorized"
// @Failure 403 {object} response.Response "Forbidden"
// @Failure 404 {object} response.Response "Shoutout not found"
// @Security BearerAuth
// @Router /shoutouts/{id} [delete]
func DeleteShoutOut(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserIDFromContext(r.Context())
		if !ok {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not authenticated")))
			return
		}

		shoutoutID := r.PathValue("id")
		if shoutoutID == "" {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("shoutout ID is required")))
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

		if so.GiverID != userID {
			caller, err := store.GetUserByID(userID)
			if err != nil || caller.Role != string(types.RoleAdmin) {
				response.WriteJSON(w, http.StatusForbidden, response.GeneralError(errors.New("only the giver or an admin can delete a shoutout")))
				return
			}
		}

		if err := store.SoftDeleteShoutOut(shoutoutID); err != nil {
			slog.Error("Failed to delete shoutout", slog.String("error", err.Error()), slog.String("shoutout_id", shoutoutID))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to delete shoutout")))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Shoutout deleted successfully", nil))
	}
}

// Feed handles the shoutout feed endpoint
// @Summary Get the shoutout feed
// @Description Non-deleted shoutouts visible to the caller, newest first
// @Tags shoutouts
// @Produce json
// @Param department query string false "Filter by department (either side)"
// @Param sender query string false "Filter by giver user ID"
// @Param date_from query string false "RFC3339 lower bound on created_at"
// @Param date_to query string false "RFC3339 upper bound on created_at"
// @Param search query string false "Case-insensitive message search"
// @Param offset query int false "Pagination offset"
// @Param limit query int false "Page size (default 20, max 100)"
// @Success 200 {array} types.ShoutOut "Shoutouts fetched successfully"
// @Failure 400 {object} response.Response "Bad request"
// @Failure 401 {object} response.Response "Unauthorized"
// @Security BearerAuth
// @Router /shoutouts/feed [get]
func Feed(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserIDFromContext(r.Context())
		if !ok {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not authenticated")))
			return
		}

		caller, err := store.GetUserByID(userID)
		if err != nil {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not found")))
			return
		}

		filter, err := parseFeedFilter(r)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		shoutouts, err := store.FeedShoutOuts(filter)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		// Visibility is evaluated per caller, after the storage filters
		visible := make([]types.ShoutOut, 0, len(shoutouts))
		for _, so := range shoutouts {
			if visibleTo(so, userID, caller.Department) {
				visible = append(visible, so)
			}
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Shoutouts fetched successfully", visible))
	}
}

func parseFeedFilter(r *http.Request) (types.FeedFilter, error) {
	q := r.URL.Query()

	filter := types.FeedFilter{
		Department: q.Get("department"),
		SenderID:   q.Get("sender"),
		Search:     q.Get("search"),
		Limit:      20,
	}

	if v := q.Get("date_from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("date_from must be RFC3339")
		}
		filter.DateFrom = &t
	}
	if v := q.Get("date_to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, errors.New("date_to must be RFC3339")
		}
		filter.DateTo = &t
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return filter, errors.New("offset must be a non-negative integer")
		}
		filter.Offset = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 100 {
			return filter, errors.New("limit must be between 1 and 100")
		}
		filter.Limit = n
	}

	return filter, nil
}

// Mine handles listing the caller's own shoutouts
// @Summary Get own shoutouts
// @Description Shoutouts the caller gave or received, newest first
// @Tags shoutouts
// @Produce json
// @Param days query int false "Only include the last N days"
// @Success 200 {array} types.ShoutOut "Shoutouts fetched successfully"
// @Failure 401 {object} response.Response "Unauthorized"
// @Security BearerAuth
// @Router /shoutouts/mine [get]
func Mine(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserIDFromContext(r.Context())
		if !ok {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not authenticated")))
			return
		}

		days := 0
		if v := r.URL.Query().Get("days"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("days must be a positive integer")))
				return
			}
			days = n
		}

		shoutouts, err := store.UserShoutOuts(userID, "", days)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Shoutouts fetched successfully", shoutouts))
	}
}

// Dashboard handles the per-user recognition summary
// @Summary Get recognition dashboard
// @Description Sent/received counts plus the caller's department headcount
// @Tags shoutouts
// @Produce json
// @Success 200 {object} DashboardResponse "Dashboard fetched successfully"
// @Failure 401 {object} response.Response "Unauthorized"
// @Security BearerAuth
// @Router /shoutouts/dashboard [get]
func Dashboard(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserIDFromContext(r.Context())
		if !ok {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not authenticated")))
			return
		}

		caller, err := store.GetUserByID(userID)
		if err != nil {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not found")))
			return
		}

		sent, err := store.CountShoutouts(types.ShoutOutCountFilter{GiverID: userID})
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		received, err := store.CountShoutouts(types.ShoutOutCountFilter{ReceiverID: userID})
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		headcount, err := store.CountUsersInDepartment(caller.Department)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}

		resp := DashboardResponse{
			Sent:                sent,
			Received:            received,
			DepartmentHeadcount: headcount,
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Dashboard fetched successfully", resp))
	}
}
