package users

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/bragboard/bragboard-service/internal/config"
	"github.com/bragboard/bragboard-service/internal/http/middleware"
	"github.com/bragboard/bragboard-service/internal/storage"
	"github.com/bragboard/bragboard-service/internal/types"
	"github.com/bragboard/bragboard-service/internal/types/users"
	"github.com/bragboard/bragboard-service/internal/utils/jwt"
	"github.com/bragboard/bragboard-service/internal/utils/password"
	"github.com/bragboard/bragboard-service/internal/utils/response"
)

func issueTokens(userID string, cfg config.JWT) (users.TokenResponse, error) {
	accessToken, err := jwt.CreateAccessToken(userID, cfg.Secret,
		time.Duration(cfg.AccessTTLMinutes)*time.Minute)
	if err != nil {
		return users.TokenResponse{}, err
	}

	refreshToken, err := jwt.CreateRefreshToken(userID, cfg.Secret,
		time.Duration(cfg.RefreshTTLDays)*24*time.Hour)
	if err != nil {
		return users.TokenResponse{}, err
	}

	return users.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

// SignUp handles user registration
// @Summary Register a new user
// @Description Register a new user account with username, email, password and department
// @Tags users
// @Accept json
// @Produce json
// @Param user body users.SignUpRequest true "User registration details"
// @Success 201 {object} map[string]string "User created successfully"
// @Failure 400 {object} response.Response "Bad request"
// @Failure 409 {object} response.Response "Email or username already taken"
// @Failure 500 {object} response.Response "Internal server error"
// @Router /users/register [post]
func SignUp(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var signupReq users.SignUpRequest

		err := json.NewDecoder(r.Body).Decode(&signupReq)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// Validate request
		validate := validator.New()
		err = validate.Struct(signupReq)
		if err != nil {
			if ve, ok := err.(validator.ValidationErrors); ok {
				response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(ve))
				return
			}
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		role := signupReq.Role
		if role == "" {
			role = string(types.RoleEmployee)
		}

		hashedPassword, err := password.HashPassword(signupReq.Password)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to hash password")))
			return
		}

		userID, err := store.CreateUser(signupReq.Username, signupReq.Email, hashedPassword, signupReq.Department, role)
		if err != nil {
			if errors.Is(err, storage.ErrConflict) {
				response.WriteJSON(w, http.StatusConflict, response.GeneralError(errors.New("email or username already taken")))
				return
			}
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
			return
		}
		slog.Info("User created with ID:", slog.String("user_id", userID))

		response.WriteJSON(w, http.StatusCreated, map[string]string{
			"id": userID,
		})
	}
}


// Login handles user authentication
// @Summary Authenticate a user
// @Description Authenticate a user and return access and refresh tokens
// @Tags users
// @Accept json
// @Produce json
// @Param user body users.SignInRequest true "User login details"
// @Success 200 {object} users.TokenResponse "User authenticated successfully"
// @Failure 400 {object} response.Response "Bad request"
// @Failure 401 {object} response.Response "Unauthorized"
// @Router /users/login [post]
func Login(store storage.Storage, jwtConfig config.JWT) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var signinReq users.SignInRequest

		err := json.NewDecoder(r.Body).Decode(&signinReq)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// Validate request
		validate := validator.New()
		err = validate.Struct(signinReq)
		if err != nil {
			if ve, ok := err.(validator.ValidationErrors); ok {
				response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(ve))
				return
			}
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		user, err := store.GetUserByEmail(signinReq.Email)
		if err != nil {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("invalid email or password")))
			return
		}

		if !password.CheckPasswordHash(signinReq.Password, user.Password) {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("invalid email or password")))
			return
		}

		tokens, err := issueTokens(user.ID, jwtConfig)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to generate token")))
			return
		}

		response.WriteJSON(w, http.StatusOK, tokens)
	}
}

// Refresh exchanges a refresh token for a fresh token pair
// @Summary Refresh tokens
// @Description Exchange a valid refresh token for a new access/refresh token pair
// @Tags users
// @Accept json
// @Produce json
// @Param request body users.RefreshRequest true "Refresh token"
// @Success 200 {object} users.TokenResponse "Tokens refreshed successfully"
// @Failure 400 {object} response.Response "Bad request"
// @Failure 401 {object} response.Response "Invalid refresh token"
// @Router /users/refresh [post]
func Refresh(store storage.Storage, jwtConfig config.JWT) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var refreshReq users.RefreshRequest

		err := json.NewDecoder(r.Body).Decode(&refreshReq)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		validate := validator.New()
		if err := validate.Struct(refreshReq); err != nil {
			if ve, ok := err.(validator.ValidationErrors); ok {
				response.WriteJSON(w, http.StatusBadRequest, response.ValidationError(ve))
				return
			}
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		userID, err := jwt.ExtractUserIDFromRefreshToken(refreshReq.RefreshToken, jwtConfig.Secret)
		if err != nil {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("invalid refresh token")))
			return
		}

		// The user may have been deleted since the token was issued
		if _, err := store.GetUserByID(userID); err != nil {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("invalid refresh token")))
			return
		}

		tokens, err := issueTokens(userID, jwtConfig)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to generate token")))
			return
		}

		response.WriteJSON(w, http.StatusOK, tokens)
	}
}

// Profile returns the authenticated user's own profile
// @Summary Get own profile
// @Tags users
// @Produce json
// @Success 200 {object} users.User "Profile fetched successfully"
// @Failure 401 {object} response.Response "Unauthorized"
// @Security BearerAuth
// @Router /users/profile [get]
func Profile(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserIDFromContext(r.Context())
		if !ok {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not authenticated")))
			return
		}

		user, err := store.GetUserByID(userID)
		if err != nil {
			response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errors.New("user not found")))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Profile fetched successfully", user))
	}
}

// ListUsers lists users for receiver and tag pickers
// @Summary List users
// @Description List users, optionally filtered by department or a name search
// @Tags users
// @Produce json
// @Param department query string false "Filter by department"
// @Param search query string false "Case-insensitive username search"
// @Param limit query int false "Maximum number of results (default 50)"
// @Success 200 {array} users.User "Users fetched successfully"
// @Failure 401 {object} response.Response "Unauthorized"
// @Security BearerAuth
// @Router /users [get]
func ListUsers(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not authenticated")))
			return
		}

		department := r.URL.Query().Get("department")
		search := r.URL.Query().Get("search")

		limit := 50
		if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
			parsed, err := strconv.Atoi(limitParam)
			if err != nil || parsed <= 0 {
				response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("limit must be a positive integer")))
				return
			}
			limit = parsed
		}

		userList, err := store.ListUsers(department, search, limit)
		if err != nil {
			slog.Error("Failed to list users", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to list users")))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("Users fetched successfully", userList))
	}
}

// DeleteUser removes a user account
// @Summary Delete a user
// @Description Delete a user account. Users can delete their own account, admins can delete anyone.
// @Tags users
// @Param id path string true "User ID to delete"
// @Success 200 {object} response.Response "User deleted successfully"
// @Failure 401 {object} response.Response "Unauthorized"
// @Failure 403 {object} response.Response "Forbidden"
// @Failure 404 {object} response.Response "User not found"
// @Security BearerAuth
// @Router /users/{id} [delete]
func DeleteUser(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := middleware.GetUserIDFromContext(r.Context())
		if !ok {
			response.WriteJSON(w, http.StatusUnauthorized, response.GeneralError(errors.New("user not authenticated")))
			return
		}

		targetID := r.PathValue("id")
		if targetID == "" {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(errors.New("user id is required")))
			return
		}

		if callerID != targetID {
			caller, err := store.GetUserByID(callerID)
			if err != nil || caller.Role != string(types.RoleAdmin) {
				response.WriteJSON(w, http.StatusForbidden, response.GeneralError(errors.New("cannot delete another user's account")))
				return
			}
		}

		err := store.DeleteUser(targetID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				response.WriteJSON(w, http.StatusNotFound, response.GeneralError(errors.New("user not found")))
				return
			}
			slog.Error("Failed to delete user", slog.String("error", err.Error()), slog.String("user_id", targetID))
			response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(errors.New("failed to delete user")))
			return
		}

		response.WriteJSON(w, http.StatusOK, response.RequestOK("User deleted successfully", nil))
	}
}

